package tools

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// WriteFileTool writes caller-supplied content to a path, creating parent
// directories as needed.
type WriteFileTool struct{}

// NewWriteFileTool creates a write-file tool
func NewWriteFileTool() *WriteFileTool {
	return &WriteFileTool{}
}

// Name returns the tool name
func (t *WriteFileTool) Name() string {
	return "write_file"
}

// Description returns the tool description
func (t *WriteFileTool) Description() string {
	return `Write content to a file, creating parent directories if needed.

Args:
- path (string): Full path of the file to write. Can use ~ for the home
  directory. Example: "~/Documents/report.txt"
- content (string): The text to write. Example: "quarterly summary..."

An existing file at the path is replaced with the new content.

Output: "File saved: <path> (<n> bytes)"

Example: {"tool": "write_file", "args": {"path": "/tmp/summary.log", "content": "done"}}`
}

// InputSchema returns the JSON Schema for tool arguments
func (t *WriteFileTool) InputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"path": map[string]interface{}{
				"type":        "string",
				"description": "full path of the file to write; ~ expands to the home directory",
				"examples":    []interface{}{"~/Documents/report.txt"},
			},
			"content": map[string]interface{}{
				"type":        "string",
				"description": "the text to write",
				"examples":    []interface{}{"quarterly summary"},
			},
		},
		"required":             []interface{}{"path", "content"},
		"additionalProperties": false,
	}
}

// Metadata returns registry metadata
func (t *WriteFileTool) Metadata() *ToolMetadata {
	return &ToolMetadata{
		Category:    CategoryFilesystem,
		Optionality: ToolOptional,
	}
}

// Execute executes the write-file tool
func (t *WriteFileTool) Execute(ctx context.Context, args map[string]interface{}) (*Result, error) {
	rawPath, _ := args["path"].(string)
	content, _ := args["content"].(string)

	path, err := expandPath(rawPath)
	if err != nil {
		return ErrorResult(fmt.Sprintf("invalid path %q: %v; pass a file path, e.g. \"~/Documents/report.txt\"", rawPath, err)), nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return ErrorResult(fmt.Sprintf("failed to create parent directories for %q: %v", path, err)), nil
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		if os.IsPermission(err) {
			return ErrorResult(fmt.Sprintf("permission denied writing to %q; choose a writable location, e.g. \"/tmp/summary.log\"", path)), nil
		}
		return ErrorResult(fmt.Sprintf("failed to write %q: %v", path, err)), nil
	}

	return &Result{
		Success:       true,
		Output:        fmt.Sprintf("File saved: %s (%d bytes)", path, len(content)),
		ModifiedFiles: []string{path},
	}, nil
}
