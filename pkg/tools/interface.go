package tools

import "context"

// Tool represents an executable maintenance tool
type Tool interface {
	// Name returns the tool name
	Name() string

	// Description returns the tool description. The description is part of the
	// contract: the invoking agent reads it to decide how to call the tool, so
	// it must state each parameter's exact textual format with a literal
	// example, and the output format.
	Description() string

	// InputSchema returns the JSON Schema for tool arguments
	InputSchema() map[string]interface{}

	// Execute executes the tool with given arguments. User-facing failures are
	// expressed through the Result; the returned error is reserved for invoker
	// plumbing and is nil in normal operation.
	Execute(ctx context.Context, args map[string]interface{}) (*Result, error)
}

// Result represents a tool execution result
type Result struct {
	Success       bool                   `json:"success"`
	Output        string                 `json:"output"`
	Error         string                 `json:"error,omitempty"`
	ModifiedFiles []string               `json:"modified_files,omitempty"`
	Data          map[string]interface{} `json:"data,omitempty"`
}

// ErrorResult creates an error result with the given message
func ErrorResult(msg string) *Result {
	return &Result{
		Success: false,
		Error:   msg,
	}
}

// ToolCategory groups tools by what they operate on
type ToolCategory string

const (
	CategoryMaintenance ToolCategory = "maintenance"
	CategoryFilesystem  ToolCategory = "filesystem"
	CategoryDiagnostics ToolCategory = "diagnostics"
	CategoryDesktop     ToolCategory = "desktop"
)

// ToolOptionality indicates whether a bundle requires the tool
type ToolOptionality string

const (
	ToolRequired ToolOptionality = "required"
	ToolOptional ToolOptionality = "optional"
)

// ToolMetadata carries registry-level information about a tool
type ToolMetadata struct {
	Category    ToolCategory
	Optionality ToolOptionality

	// RequiresCapabilities lists system capabilities the tool needs at runtime
	// (external binaries, /proc, a desktop session). Tools listing a missing
	// capability are filtered out of ListAvailable.
	RequiresCapabilities []Capability
}

// ExtendedTool is a Tool that exposes metadata for discovery and filtering
type ExtendedTool interface {
	Tool

	// Metadata returns registry metadata, or nil for plain tools
	Metadata() *ToolMetadata
}
