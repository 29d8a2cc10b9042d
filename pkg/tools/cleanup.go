package tools

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/tidybot/tidybot/pkg/cleanup"
	"github.com/tidybot/tidybot/pkg/config"
	"github.com/tidybot/tidybot/pkg/progress"
)

// CleanupTool frees disk space through the external cleanup engine. The
// engine is only ever invoked with pre-registered category selectors; the
// tool offers no way to delete an arbitrary path, no matter what the agent
// asks for.
type CleanupTool struct {
	engine     cleanup.Engine
	categories *cleanup.CategorySet
	sink       progress.Sink
}

// NewCleanupTool creates a cleanup tool from configuration. A nil engine
// uses the BleachBit CLI; a nil sink uses the process-wide default.
func NewCleanupTool(cfg *config.Config, engine cleanup.Engine, sink progress.Sink) (*CleanupTool, error) {
	enabled := cfg.Cleanup.EnabledCategories
	if len(enabled) == 0 {
		enabled = cleanup.ValidNames()
	}
	categories, err := cleanup.NewCategorySet(enabled)
	if err != nil {
		return nil, err
	}
	if engine == nil {
		engine = cleanup.NewBleachBit(cfg.Cleanup.EnginePath, timeoutSeconds(cfg.Cleanup.TimeoutSeconds))
	}
	if sink == nil {
		sink = progress.Default()
	}
	return &CleanupTool{engine: engine, categories: categories, sink: sink}, nil
}

// Name returns the tool name
func (t *CleanupTool) Name() string {
	return "clean_system"
}

// Description returns the tool description
func (t *CleanupTool) Description() string {
	return `Free disk space by running the system cleanup engine on selected categories.

Args:
- target_categories (string): Comma-separated cleanup categories.
  Valid values: cache, temp, trash, logs. Example: "cache,temp"
- dry_run (boolean): If true, report what would be removed without deleting
  anything. Defaults to false. Example: true

Only the pre-registered categories above are ever cleaned; this tool cannot
delete arbitrary paths. Repeating a call with the same arguments is safe:
an already-clean category reports 0 B freed, not an error.

Output: one summary line with the space freed and the categories cleaned,
plus any category that had to be skipped with its reason.

Example: {"tool": "clean_system", "args": {"target_categories": "cache,temp", "dry_run": true}}`
}

// InputSchema returns the JSON Schema for tool arguments
func (t *CleanupTool) InputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"target_categories": map[string]interface{}{
				"type":        "string",
				"description": "comma-separated cleanup categories (cache, temp, trash, logs)",
				"examples":    []interface{}{"cache,temp"},
			},
			"dry_run": map[string]interface{}{
				"type":        "boolean",
				"description": "report what would be removed without deleting anything",
				"examples":    []interface{}{true},
			},
		},
		"required":             []interface{}{"target_categories"},
		"additionalProperties": false,
	}
}

// Metadata returns registry metadata
func (t *CleanupTool) Metadata() *ToolMetadata {
	return &ToolMetadata{
		Category:             CategoryMaintenance,
		Optionality:          ToolRequired,
		RequiresCapabilities: []Capability{CapabilityBleachBit},
	}
}

// Execute executes the cleanup tool
func (t *CleanupTool) Execute(ctx context.Context, args map[string]interface{}) (*Result, error) {
	rawCategories, _ := args["target_categories"].(string)
	dryRun, _ := args["dry_run"].(bool)

	// Category resolution is atomic: one unknown name fails the whole call
	// before the engine runs at all.
	cats, err := t.categories.Resolve(strings.Split(rawCategories, ","))
	if err != nil {
		return ErrorResult(fmt.Sprintf("%v; pass target_categories as a comma-separated string, e.g. \"cache,temp\"", err)), nil
	}

	// Engine absence is the one fatal failure: no agent retry can fix it.
	if err := t.engine.Available(); err != nil {
		return ErrorResult(err.Error()), nil
	}

	if dryRun {
		return t.preview(ctx, cats)
	}
	return t.clean(ctx, cats)
}

// preview computes what would be removed, performing no mutation
func (t *CleanupTool) preview(ctx context.Context, cats []Category) (*Result, error) {
	t.step(ctx, fmt.Sprintf("previewing categories: %s", joinCategories(cats)))

	report, err := t.engine.Preview(ctx, cats)
	if err != nil {
		return ErrorResult(fmt.Sprintf("cleanup preview failed: %v; the engine is installed, so retrying the same call may succeed", err)), nil
	}

	output := fmt.Sprintf("Dry run: %s would be freed across %s. No files were deleted.",
		humanize.Bytes(report.BytesFreed), joinCategories(cats))
	if report.Output != "" {
		output += "\n" + report.Output
	}

	return &Result{
		Success: true,
		Output:  output,
		Data: map[string]interface{}{
			"bytes_freed":        report.BytesFreed,
			"categories_cleaned": categoryNames(cats),
			"dry_run":            true,
		},
	}, nil
}

// clean runs the engine category by category. One category failing does not
// abort the rest: partial success is reported, not treated as total failure.
func (t *CleanupTool) clean(ctx context.Context, cats []Category) (*Result, error) {
	var (
		totalFreed uint64
		cleaned    []string
		skipped    []string
	)

	for _, cat := range cats {
		t.step(ctx, fmt.Sprintf("cleaning category: %s", cat))

		report, err := t.engine.Clean(ctx, cat)
		if err != nil {
			skipped = append(skipped, fmt.Sprintf("%s (%v)", cat, err))
			continue
		}
		totalFreed += report.BytesFreed
		cleaned = append(cleaned, string(cat))
	}

	output := fmt.Sprintf("Cleanup complete: freed %s", humanize.Bytes(totalFreed))
	if len(cleaned) > 0 {
		output += fmt.Sprintf(" across %s", strings.Join(cleaned, ", "))
	}
	if len(skipped) > 0 {
		output += fmt.Sprintf("; skipped %s", strings.Join(skipped, "; "))
	}

	return &Result{
		Success: true,
		Output:  output,
		Data: map[string]interface{}{
			"bytes_freed":        totalFreed,
			"categories_cleaned": cleaned,
			"skipped":            skipped,
			"dry_run":            false,
		},
	}, nil
}

// step emits a sub-step progress event correlated to the invocation
func (t *CleanupTool) step(ctx context.Context, msg string) {
	t.sink.Record(progress.Event{
		Invocation: InvocationID(ctx),
		Tool:       t.Name(),
		Message:    msg,
	})
}

// Category aliases the cleanup package's category for tool-level signatures
type Category = cleanup.Category

func timeoutSeconds(s int) time.Duration {
	return time.Duration(s) * time.Second
}

func joinCategories(cats []Category) string {
	return strings.Join(categoryNames(cats), ", ")
}

func categoryNames(cats []Category) []string {
	names := make([]string, len(cats))
	for i, c := range cats {
		names[i] = string(c)
	}
	return names
}
