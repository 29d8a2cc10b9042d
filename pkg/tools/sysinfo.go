package tools

import (
	"context"

	"github.com/tidybot/tidybot/pkg/sysinfo"
)

// SysinfoTool reports disk, memory, GPU, and process status in one call.
// Read-only: it mutates nothing and is always safe to repeat.
type SysinfoTool struct {
	gatherer *sysinfo.Gatherer
}

// NewSysinfoTool creates a sysinfo tool
func NewSysinfoTool() *SysinfoTool {
	return &SysinfoTool{gatherer: sysinfo.NewGatherer()}
}

// Name returns the tool name
func (t *SysinfoTool) Name() string {
	return "get_system_info"
}

// Description returns the tool description
func (t *SysinfoTool) Description() string {
	return `Get system status: disk storage, RAM usage, GPU memory, and the top 5 processes.

Takes no arguments; pass an empty object.

Output: sectioned text with DISK STORAGE (df), RAM USAGE (total/used/available),
GPU MEMORY (when an NVIDIA GPU is present), and TOP 5 PROCESSES by CPU.
Sections that cannot be gathered are listed as unavailable with the reason.

Example: {"tool": "get_system_info", "args": {}}`
}

// InputSchema returns the JSON Schema for tool arguments
func (t *SysinfoTool) InputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type":                 "object",
		"properties":           map[string]interface{}{},
		"additionalProperties": false,
	}
}

// Metadata returns registry metadata
func (t *SysinfoTool) Metadata() *ToolMetadata {
	return &ToolMetadata{
		Category:    CategoryDiagnostics,
		Optionality: ToolOptional,
	}
}

// Execute executes the sysinfo tool
func (t *SysinfoTool) Execute(ctx context.Context, args map[string]interface{}) (*Result, error) {
	report := t.gatherer.Gather(ctx)
	if report.Empty() {
		return ErrorResult("no system information could be gathered: " + report.String()), nil
	}
	return &Result{
		Success: true,
		Output:  report.String(),
	}, nil
}
