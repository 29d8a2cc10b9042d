package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the tidybot configuration. It is constructed once at
// startup and passed explicitly into each tool constructor; which
// directories and categories are safe to touch is never looked up from
// ambient global state.
type Config struct {
	Cleanup  CleanupConfig  `json:"cleanup"`
	Organize OrganizeConfig `json:"organize"`
	Apps     AppsConfig     `json:"apps"`
	Debug    DebugConfig    `json:"debug"`
}

// CleanupConfig contains disk-cleanup settings
type CleanupConfig struct {
	// EnginePath overrides the bleachbit binary location; empty means PATH lookup
	EnginePath string `json:"engine_path,omitempty"`

	// EnabledCategories restricts which cleanup categories the agent may
	// request. Names must come from the closed set: cache, temp, trash, logs.
	EnabledCategories []string `json:"enabled_categories"`

	// TimeoutSeconds bounds one engine run
	TimeoutSeconds int `json:"timeout_seconds"`
}

// OrganizeConfig contains file-organizer settings
type OrganizeConfig struct {
	// RulesPath optionally points to a YAML file with extra
	// extension-to-category rules
	RulesPath string `json:"rules_path,omitempty"`
}

// AppsConfig contains desktop application settings
type AppsConfig struct {
	// DesktopDirs lists directories scanned for .desktop entries
	DesktopDirs []string `json:"desktop_dirs"`

	// MatchDistance is the maximum edit distance accepted for an automatic
	// fuzzy-match launch
	MatchDistance int `json:"match_distance"`
}

// DebugConfig contains debug settings
type DebugConfig struct {
	LogLevel string `json:"log_level"`
}

// Load loads configuration from a file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	config.setDefaults()

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// LoadDefault attempts to load .tidybot.json from current directory or home,
// falling back to built-in defaults when neither exists.
func LoadDefault() (*Config, error) {
	if _, err := os.Stat(".tidybot.json"); err == nil {
		return Load(".tidybot.json")
	}

	home, err := os.UserHomeDir()
	if err == nil {
		homePath := filepath.Join(home, ".tidybot.json")
		if _, err := os.Stat(homePath); err == nil {
			return Load(homePath)
		}
	}

	config := &Config{}
	config.setDefaults()
	return config, nil
}

// setDefaults sets default values for configuration
func (c *Config) setDefaults() {
	// Cleanup defaults
	if len(c.Cleanup.EnabledCategories) == 0 {
		c.Cleanup.EnabledCategories = []string{"cache", "temp", "trash", "logs"}
	}
	if c.Cleanup.TimeoutSeconds == 0 {
		c.Cleanup.TimeoutSeconds = 300
	}

	// Apps defaults
	if len(c.Apps.DesktopDirs) == 0 {
		dirs := []string{
			"/usr/share/applications",
			"/usr/local/share/applications",
		}
		if home, err := os.UserHomeDir(); err == nil {
			dirs = append(dirs, filepath.Join(home, ".local/share/applications"))
		}
		c.Apps.DesktopDirs = dirs
	}
	if c.Apps.MatchDistance == 0 {
		c.Apps.MatchDistance = 2
	}

	// Debug defaults
	if c.Debug.LogLevel == "" {
		c.Debug.LogLevel = "info"
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	validCategories := map[string]bool{
		"cache": true, "temp": true, "trash": true, "logs": true,
	}
	for _, cat := range c.Cleanup.EnabledCategories {
		if !validCategories[cat] {
			return fmt.Errorf("invalid cleanup category: %s (must be one of cache, temp, trash, logs)", cat)
		}
	}

	if c.Cleanup.TimeoutSeconds < 0 {
		return fmt.Errorf("timeout_seconds must not be negative: %d", c.Cleanup.TimeoutSeconds)
	}

	if c.Organize.RulesPath != "" {
		if _, err := os.Stat(c.Organize.RulesPath); err != nil {
			return fmt.Errorf("organize rules file not found: %s", c.Organize.RulesPath)
		}
	}

	if c.Apps.MatchDistance < 0 {
		return fmt.Errorf("match_distance must not be negative: %d", c.Apps.MatchDistance)
	}

	return nil
}
