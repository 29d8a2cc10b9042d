package tools

import (
	"fmt"
	"sort"
	"sync"
)

// RegistryEventType represents the type of registry event
type RegistryEventType string

const (
	EventToolRegistered   RegistryEventType = "registered"
	EventToolUnregistered RegistryEventType = "unregistered"
)

// RegistryEvent is emitted when the registry changes
type RegistryEvent struct {
	Type     RegistryEventType
	ToolName string
	Tool     ExtendedTool
}

// RegistryEventListener is called when registry events occur
type RegistryEventListener func(event RegistryEvent)

// ToolDefinition is the exported shape of one tool: what the agent runtime
// reads to decide which tool to call and how.
type ToolDefinition struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	Parameters  map[string]interface{} `json:"parameters"`
}

// ToolRegistry provides centralized tool management with discovery,
// filtering, and event notification capabilities
type ToolRegistry struct {
	mu        sync.RWMutex
	tools     map[string]ExtendedTool
	listeners []RegistryEventListener
}

// NewToolRegistry creates a new empty tool registry
func NewToolRegistry() *ToolRegistry {
	return &ToolRegistry{
		tools:     make(map[string]ExtendedTool),
		listeners: make([]RegistryEventListener, 0),
	}
}

// Register adds a tool to the registry. If the tool doesn't implement
// ExtendedTool, it will be wrapped with SimpleExtendedTool.
func (r *ToolRegistry) Register(tool Tool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := tool.Name()
	if _, exists := r.tools[name]; exists {
		return fmt.Errorf("tool %q already registered", name)
	}

	var extTool ExtendedTool
	if et, ok := tool.(ExtendedTool); ok {
		extTool = et
	} else {
		extTool = NewSimpleExtendedTool(tool)
	}

	r.tools[name] = extTool
	r.notifyListeners(RegistryEvent{
		Type:     EventToolRegistered,
		ToolName: name,
		Tool:     extTool,
	})

	return nil
}

// Unregister removes a tool from the registry
func (r *ToolRegistry) Unregister(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tool, exists := r.tools[name]
	if !exists {
		return fmt.Errorf("tool %q not found", name)
	}

	delete(r.tools, name)
	r.notifyListeners(RegistryEvent{
		Type:     EventToolUnregistered,
		ToolName: name,
		Tool:     tool,
	})

	return nil
}

// Get retrieves a tool by name
func (r *ToolRegistry) Get(name string) (ExtendedTool, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tool, exists := r.tools[name]
	return tool, exists
}

// List returns all registered tools
func (r *ToolRegistry) List() []ExtendedTool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tools := make([]ExtendedTool, 0, len(r.tools))
	for _, tool := range r.tools {
		tools = append(tools, tool)
	}
	return tools
}

// ListNames returns the sorted names of all registered tools
func (r *ToolRegistry) ListNames() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.tools))
	for name := range r.tools {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Count returns the number of registered tools
func (r *ToolRegistry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.tools)
}

// FilterByCategory returns tools matching the given category
func (r *ToolRegistry) FilterByCategory(category ToolCategory) []ExtendedTool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var filtered []ExtendedTool
	for _, tool := range r.tools {
		meta := tool.Metadata()
		if meta != nil && meta.Category == category {
			filtered = append(filtered, tool)
		}
	}
	return filtered
}

// ListAvailable filters registry tools by their required capabilities.
// Returns only tools whose RequiresCapabilities are all satisfied.
func (r *ToolRegistry) ListAvailable(checker CapabilityChecker) []ExtendedTool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var available []ExtendedTool
	for _, tool := range r.tools {
		meta := tool.Metadata()
		if meta == nil {
			// Tools without metadata are always available
			available = append(available, tool)
			continue
		}

		allAvailable := true
		for _, c := range meta.RequiresCapabilities {
			if !checker.Check(c) {
				allAvailable = false
				break
			}
		}

		if allAvailable {
			available = append(available, tool)
		}
	}

	return available
}

// Definitions returns the definitions of all registered tools, sorted by
// name, suitable for handing to an agent runtime.
func (r *ToolRegistry) Definitions() []ToolDefinition {
	r.mu.RLock()
	defer r.mu.RUnlock()

	defs := make([]ToolDefinition, 0, len(r.tools))
	for _, tool := range r.tools {
		defs = append(defs, ToolDefinition{
			Name:        tool.Name(),
			Description: tool.Description(),
			Parameters:  tool.InputSchema(),
		})
	}
	sort.Slice(defs, func(i, j int) bool { return defs[i].Name < defs[j].Name })
	return defs
}

// AddListener registers an event listener that will be called on registry changes
func (r *ToolRegistry) AddListener(listener RegistryEventListener) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.listeners = append(r.listeners, listener)
}

// notifyListeners calls all registered listeners with the given event
// Must be called with lock held
func (r *ToolRegistry) notifyListeners(event RegistryEvent) {
	for _, listener := range r.listeners {
		listener(event)
	}
}
