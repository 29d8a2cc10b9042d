package tools

import "context"

// SimpleExtendedTool wraps a basic Tool to implement ExtendedTool with nil
// metadata, so plain tools can live in the same registry as annotated ones.
type SimpleExtendedTool struct {
	tool Tool
}

// NewSimpleExtendedTool wraps a Tool as an ExtendedTool
func NewSimpleExtendedTool(tool Tool) *SimpleExtendedTool {
	return &SimpleExtendedTool{tool: tool}
}

// Name returns the tool name
func (s *SimpleExtendedTool) Name() string {
	return s.tool.Name()
}

// Description returns the tool description
func (s *SimpleExtendedTool) Description() string {
	return s.tool.Description()
}

// InputSchema returns the wrapped tool's schema
func (s *SimpleExtendedTool) InputSchema() map[string]interface{} {
	return s.tool.InputSchema()
}

// Execute runs the wrapped tool
func (s *SimpleExtendedTool) Execute(ctx context.Context, args map[string]interface{}) (*Result, error) {
	return s.tool.Execute(ctx, args)
}

// Metadata returns nil for tools without metadata
func (s *SimpleExtendedTool) Metadata() *ToolMetadata {
	return nil
}

// Unwrap returns the underlying Tool
func (s *SimpleExtendedTool) Unwrap() Tool {
	return s.tool
}
