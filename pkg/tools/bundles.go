package tools

// ToolBundle defines a named set of tools for a specific agent profile
type ToolBundle struct {
	Name        string   // Bundle name (e.g., "maintenance", "diagnostics")
	Description string   // What this bundle is for
	Required    []string // Tool names that must be available
	Optional    []string // Tool names that can be used if available
}

// ApplyBundle registers all tools from a bundle with a registry
// Returns list of tools that couldn't be registered (not found in source registry)
func (b *ToolBundle) ApplyBundle(source, target *ToolRegistry) []string {
	var missing []string

	// Register required tools
	for _, toolName := range b.Required {
		if tool, ok := source.Get(toolName); ok {
			_ = target.Register(tool) // Error only if already registered, which is fine
		} else {
			missing = append(missing, toolName)
		}
	}

	// Register optional tools (don't track as missing)
	for _, toolName := range b.Optional {
		if tool, ok := source.Get(toolName); ok {
			_ = target.Register(tool) // Error only if already registered, which is fine
		}
	}

	return missing
}

// AllToolNames returns all tool names in this bundle (required + optional)
func (b *ToolBundle) AllToolNames() []string {
	all := make([]string, 0, len(b.Required)+len(b.Optional))
	all = append(all, b.Required...)
	all = append(all, b.Optional...)
	return all
}

// HasTool checks if a tool is part of this bundle
func (b *ToolBundle) HasTool(name string) bool {
	for _, n := range b.Required {
		if n == name {
			return true
		}
	}
	for _, n := range b.Optional {
		if n == name {
			return true
		}
	}
	return false
}

// Predefined bundles for different agent profiles

// MaintenanceBundle contains the disk hygiene tools every maintenance
// agent gets
var MaintenanceBundle = &ToolBundle{
	Name:        "maintenance",
	Description: "Tools for freeing disk space and organizing user folders",
	Required:    []string{"clean_system", "organize_folder"},
	Optional:    []string{"get_system_info"},
}

// DiagnosticsBundle contains read-only tools for inspecting machine state
var DiagnosticsBundle = &ToolBundle{
	Name:        "diagnostics",
	Description: "Read-only tools for inspecting disk, memory, and processes",
	Required:    []string{"get_system_info"},
	Optional:    []string{},
}

// DesktopBundle contains tools that touch the user's desktop session
var DesktopBundle = &ToolBundle{
	Name:        "desktop",
	Description: "Tools for launching applications and saving files for the user",
	Required:    []string{},
	Optional:    []string{"open_app", "write_file"},
}

// AllBundles returns all predefined bundles
func AllBundles() []*ToolBundle {
	return []*ToolBundle{
		MaintenanceBundle,
		DiagnosticsBundle,
		DesktopBundle,
	}
}

// GetBundle returns a bundle by name, or nil if not found
func GetBundle(name string) *ToolBundle {
	for _, b := range AllBundles() {
		if b.Name == name {
			return b
		}
	}
	return nil
}
