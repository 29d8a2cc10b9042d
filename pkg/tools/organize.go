package tools

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidybot/tidybot/pkg/config"
	"github.com/tidybot/tidybot/pkg/organize"
	"github.com/tidybot/tidybot/pkg/progress"
)

// OrganizerTool moves the files of one directory into per-category
// subfolders under a destination root. The scan is non-recursive and an
// existing file is never overwritten.
type OrganizerTool struct {
	classifier *organize.Classifier
	sink       progress.Sink
}

// NewOrganizerTool creates an organizer tool from configuration, loading the
// optional extension rules file. A nil sink uses the process-wide default.
func NewOrganizerTool(cfg *config.Config, sink progress.Sink) (*OrganizerTool, error) {
	classifier := organize.NewClassifier()
	if cfg.Organize.RulesPath != "" {
		if err := classifier.ApplyRulesFile(cfg.Organize.RulesPath); err != nil {
			return nil, err
		}
	}
	if sink == nil {
		sink = progress.Default()
	}
	return &OrganizerTool{classifier: classifier, sink: sink}, nil
}

// Name returns the tool name
func (t *OrganizerTool) Name() string {
	return "organize_folder"
}

// Description returns the tool description
func (t *OrganizerTool) Description() string {
	return `Organize the files of a directory into subfolders by file type.

Args:
- source_dir (string): Directory whose files are organized. Must exist.
  Can use ~ for the home directory. Example: "~/Downloads"
- destination_root (string): Directory that receives the category subfolders
  (documents, images, archives, code, other). Created if absent.
  Example: "~/Downloads/sorted"

Only files directly inside source_dir are moved (no recursion). Symlinks and
special files are skipped and reported. A name collision at the destination
gets a numeric suffix (report.pdf -> report_1.pdf); nothing is ever
overwritten. Re-running on an already-organized directory moves nothing.

Output: "N moved, M skipped" plus per-category counts and skip reasons.

Example: {"tool": "organize_folder", "args": {"source_dir": "~/Downloads", "destination_root": "~/Downloads/sorted"}}`
}

// InputSchema returns the JSON Schema for tool arguments
func (t *OrganizerTool) InputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"source_dir": map[string]interface{}{
				"type":        "string",
				"description": "directory whose files are organized; ~ expands to the home directory",
				"examples":    []interface{}{"~/Downloads"},
			},
			"destination_root": map[string]interface{}{
				"type":        "string",
				"description": "directory receiving the category subfolders; created if absent",
				"examples":    []interface{}{"~/Downloads/sorted"},
			},
		},
		"required":             []interface{}{"source_dir", "destination_root"},
		"additionalProperties": false,
	}
}

// Metadata returns registry metadata
func (t *OrganizerTool) Metadata() *ToolMetadata {
	return &ToolMetadata{
		Category:    CategoryFilesystem,
		Optionality: ToolRequired,
	}
}

// Execute executes the organizer tool
func (t *OrganizerTool) Execute(ctx context.Context, args map[string]interface{}) (*Result, error) {
	sourceDir, _ := args["source_dir"].(string)
	destRoot, _ := args["destination_root"].(string)

	sourceDir, err := expandPath(sourceDir)
	if err != nil {
		return ErrorResult(fmt.Sprintf("invalid source_dir %q: %v; pass an absolute or ~-relative directory, e.g. \"~/Downloads\"", sourceDir, err)), nil
	}
	destRoot, err = expandPath(destRoot)
	if err != nil {
		return ErrorResult(fmt.Sprintf("invalid destination_root %q: %v; pass an absolute or ~-relative directory, e.g. \"~/Downloads/sorted\"", destRoot, err)), nil
	}

	// Both paths are validated before any move happens.
	info, err := os.Stat(sourceDir)
	if err != nil {
		return ErrorResult(fmt.Sprintf("source_dir %q does not exist or is not readable: %v; pass an existing directory, e.g. \"~/Downloads\"", sourceDir, err)), nil
	}
	if !info.IsDir() {
		return ErrorResult(fmt.Sprintf("source_dir %q is not a directory; pass a directory, e.g. \"~/Downloads\"", sourceDir)), nil
	}
	if err := os.MkdirAll(destRoot, 0755); err != nil {
		return ErrorResult(fmt.Sprintf("destination_root %q cannot be created: %v; pass a writable location, e.g. \"~/Downloads/sorted\"", destRoot, err)), nil
	}

	organizer := organize.NewOrganizer(t.classifier)
	organizer.OnMove = func(name string, cat organize.Category) {
		t.sink.Record(progress.Event{
			Invocation: InvocationID(ctx),
			Tool:       t.Name(),
			Message:    fmt.Sprintf("moved %s to %s/", name, cat),
		})
	}

	report, err := organizer.Run(sourceDir, destRoot)
	if err != nil {
		return ErrorResult(fmt.Sprintf("failed to organize %q: %v", sourceDir, err)), nil
	}

	return &Result{
		Success:       true,
		Output:        describeReport(report),
		ModifiedFiles: report.MovedFiles,
		Data: map[string]interface{}{
			"moved":   movedCounts(report),
			"skipped": len(report.Skipped),
			"total":   report.TotalMoved(),
		},
	}, nil
}

// describeReport renders the report as the summary the agent reads back
func describeReport(report *organize.MoveReport) string {
	var b strings.Builder
	b.WriteString(report.Summary())

	for _, cat := range organize.Categories() {
		if n := report.Moved[cat]; n > 0 {
			fmt.Fprintf(&b, "\n%s: %d", cat, n)
		}
	}
	for _, s := range report.Skipped {
		fmt.Fprintf(&b, "\nskipped %s: %s", s.Name, s.Reason)
	}
	return b.String()
}

// movedCounts flattens per-category counts for the result data map
func movedCounts(report *organize.MoveReport) map[string]interface{} {
	counts := make(map[string]interface{}, len(report.Moved))
	for cat, n := range report.Moved {
		counts[string(cat)] = n
	}
	return counts
}

// expandPath resolves a leading ~ to the home directory and cleans the path
func expandPath(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("empty path")
	}
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot resolve home directory: %v", err)
		}
		path = filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return filepath.Clean(path), nil
}
