package tools

import (
	"github.com/tidybot/tidybot/pkg/cleanup"
	"github.com/tidybot/tidybot/pkg/config"
	"github.com/tidybot/tidybot/pkg/progress"
)

// MaintenanceToolsSetup holds a registry, a runner, and the maintenance
// tools. This provides the one consistent tool set every agent runtime
// embedding this library starts from.
type MaintenanceToolsSetup struct {
	Registry      *ToolRegistry
	Runner        *Runner
	CleanupTool   *CleanupTool
	OrganizerTool *OrganizerTool
	SysinfoTool   *SysinfoTool
	WriteFileTool *WriteFileTool
	OpenAppTool   *OpenAppTool
}

// NewMaintenanceToolsSetup creates the maintenance tools from configuration
// and registers them with a fresh registry. The engine and sink parameters
// exist for tests; pass nil for the real BleachBit engine and the
// process-wide progress sink.
func NewMaintenanceToolsSetup(cfg *config.Config, engine cleanup.Engine, sink progress.Sink) (*MaintenanceToolsSetup, error) {
	if sink == nil {
		sink = progress.Default()
	}

	registry := NewToolRegistry()
	registry.AddListener(func(event RegistryEvent) {
		sink.Record(progress.Event{
			Tool:    event.ToolName,
			Message: "tool " + string(event.Type),
		})
	})

	cleanupTool, err := NewCleanupTool(cfg, engine, sink)
	if err != nil {
		return nil, err
	}
	organizerTool, err := NewOrganizerTool(cfg, sink)
	if err != nil {
		return nil, err
	}

	setup := &MaintenanceToolsSetup{
		Registry:      registry,
		CleanupTool:   cleanupTool,
		OrganizerTool: organizerTool,
		SysinfoTool:   NewSysinfoTool(),
		WriteFileTool: NewWriteFileTool(),
		OpenAppTool:   NewOpenAppTool(cfg),
	}
	setup.Runner = NewRunner(registry, sink)

	// Register errors are safe to ignore here - tool names are unique
	_ = registry.Register(setup.CleanupTool)
	_ = registry.Register(setup.OrganizerTool)
	_ = registry.Register(setup.SysinfoTool)
	_ = registry.Register(setup.WriteFileTool)
	_ = registry.Register(setup.OpenAppTool)

	return setup, nil
}
