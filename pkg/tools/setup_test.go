package tools

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tidybot/tidybot/pkg/config"
	"github.com/tidybot/tidybot/pkg/progress"
)

func TestNewMaintenanceToolsSetup(t *testing.T) {
	cfg := &config.Config{}
	cfg.Cleanup.EnabledCategories = []string{"cache", "temp", "trash", "logs"}

	setup, err := NewMaintenanceToolsSetup(cfg, &fakeEngine{}, progress.NewMemory())
	require.NoError(t, err)

	// Verify all tools created
	require.NotNil(t, setup.CleanupTool, "CleanupTool should be created")
	require.NotNil(t, setup.OrganizerTool, "OrganizerTool should be created")
	require.NotNil(t, setup.SysinfoTool, "SysinfoTool should be created")
	require.NotNil(t, setup.WriteFileTool, "WriteFileTool should be created")
	require.NotNil(t, setup.OpenAppTool, "OpenAppTool should be created")

	// Verify registry created and tools registered
	require.NotNil(t, setup.Registry, "Registry should be created")
	require.NotNil(t, setup.Runner, "Runner should be created")
	assert.Equal(t, 5, setup.Registry.Count(), "Should have 5 tools in registry")

	expectedTools := []string{"clean_system", "organize_folder", "get_system_info", "write_file", "open_app"}
	for _, expected := range expectedTools {
		_, ok := setup.Registry.Get(expected)
		assert.True(t, ok, "Tool %s should be in registry", expected)
	}

	// Verify all tools have proper metadata and a complete contract surface
	for _, tool := range setup.Registry.List() {
		assert.NotEmpty(t, tool.Name(), "Tool name should not be empty")
		assert.NotEmpty(t, tool.Description(), "Tool description should not be empty")
		assert.NotNil(t, tool.InputSchema(), "Tool schema should not be nil")
		require.NotNil(t, tool.Metadata(), "Tool %s should carry metadata", tool.Name())
		assert.NotEmpty(t, tool.Metadata().Category, "Tool %s should have a category", tool.Name())
	}
}

func TestMaintenanceToolsSetup_InvalidConfig(t *testing.T) {
	cfg := &config.Config{}
	cfg.Cleanup.EnabledCategories = []string{"home_directory"}

	_, err := NewMaintenanceToolsSetup(cfg, &fakeEngine{}, progress.NewMemory())
	require.Error(t, err, "unknown cleanup category should fail setup")
	assert.Contains(t, err.Error(), "home_directory")
}

func TestMaintenanceToolsSetup_RunnerInvokesRegisteredTool(t *testing.T) {
	cfg := &config.Config{}
	sink := progress.NewMemory()

	setup, err := NewMaintenanceToolsSetup(cfg, &fakeEngine{}, sink)
	require.NoError(t, err)

	result := setup.Runner.Invoke(context.Background(), "clean_system", map[string]interface{}{
		"target_categories": "cache",
		"dry_run":           true,
	})
	require.NotNil(t, result)
	assert.True(t, result.Success, "dry run through the runner should succeed: %s", result.Error)

	// Registration events plus the invocation lifecycle all land in one sink
	assert.NotEmpty(t, sink.Events())
}
