package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/tidybot/tidybot/pkg/apps"
	"github.com/tidybot/tidybot/pkg/config"
)

// catalogLimit bounds how many applications a catalog listing shows
const catalogLimit = 15

// OpenAppTool launches a desktop application by exact or approximate name,
// or lists the installed applications.
type OpenAppTool struct {
	desktopDirs   []string
	matchDistance int

	// scan and launch are swappable for tests
	scan   func(dirs []string) *apps.Catalog
	launch func(id string) error
}

// NewOpenAppTool creates an open-app tool from configuration
func NewOpenAppTool(cfg *config.Config) *OpenAppTool {
	return &OpenAppTool{
		desktopDirs:   cfg.Apps.DesktopDirs,
		matchDistance: cfg.Apps.MatchDistance,
		scan:          apps.Scan,
		launch:        apps.NewLauncher().Launch,
	}
}

// Name returns the tool name
func (t *OpenAppTool) Name() string {
	return "open_app"
}

// Description returns the tool description
func (t *OpenAppTool) Description() string {
	return `Launch a desktop application, or list the installed applications.

Args:
- app_name (string): Exact or approximate launcher name.
  Examples: "firefox", "org.gimp.GIMP". Pass "" (empty string) to get a
  catalog of installed applications instead of launching one.

A close approximate name is matched and launched automatically; a vague one
returns the closest candidates to choose from.

Output: a success/failure notice naming the launched application, or the
application catalog as "id (Display Name)" lines.

Example: {"tool": "open_app", "args": {"app_name": "firefox"}}`
}

// InputSchema returns the JSON Schema for tool arguments
func (t *OpenAppTool) InputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"app_name": map[string]interface{}{
				"type":        "string",
				"description": "exact or approximate launcher name; empty lists the catalog",
				"examples":    []interface{}{"firefox"},
			},
		},
		"required":             []interface{}{"app_name"},
		"additionalProperties": false,
	}
}

// Metadata returns registry metadata
func (t *OpenAppTool) Metadata() *ToolMetadata {
	return &ToolMetadata{
		Category:             CategoryDesktop,
		Optionality:          ToolOptional,
		RequiresCapabilities: []Capability{CapabilityDesktop},
	}
}

// Execute executes the open-app tool
func (t *OpenAppTool) Execute(ctx context.Context, args map[string]interface{}) (*Result, error) {
	appName, _ := args["app_name"].(string)
	appName = strings.TrimSpace(appName)

	catalog := t.scan(t.desktopDirs)

	// Catalog mode
	if appName == "" {
		return &Result{
			Success: true,
			Output:  fmt.Sprintf("Available applications (%d installed):\n%s", catalog.Len(), catalog.Listing(catalogLimit)),
		}, nil
	}

	// Exact (case-insensitive) match launches directly
	if entry, ok := catalog.Get(appName); ok {
		if err := t.launch(entry.ID); err != nil {
			return ErrorResult(err.Error()), nil
		}
		return &Result{
			Success: true,
			Output:  fmt.Sprintf("Successfully launched %s (%s)", entry.ID, entry.Name),
		}, nil
	}

	// Fuzzy match: a confident hit launches automatically, anything vaguer
	// returns candidates for the agent to pick from.
	matches := catalog.Closest(appName, 5)
	if len(matches) > 0 && matches[0].Distance <= t.matchDistance {
		best := matches[0]
		if err := t.launch(best.ID); err != nil {
			return ErrorResult(err.Error()), nil
		}
		return &Result{
			Success: true,
			Output:  fmt.Sprintf("Successfully launched %s (%s), matched from %q", best.ID, best.Name, appName),
		}, nil
	}

	if len(matches) == 0 {
		return ErrorResult(fmt.Sprintf("application %q not found; call open_app with app_name \"\" to list installed applications", appName)), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "application %q not found; closest candidates:\n", appName)
	for _, m := range matches {
		fmt.Fprintf(&b, "  %s (%s)\n", m.ID, m.Name)
	}
	b.WriteString("retry open_app with one of these exact names")
	return ErrorResult(b.String()), nil
}
