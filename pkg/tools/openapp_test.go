package tools

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tidybot/tidybot/pkg/config"
)

// writeDesktopEntry creates one .desktop file under dir
func writeDesktopEntry(t *testing.T, dir, id, name string) {
	t.Helper()
	content := "[Desktop Entry]\nType=Application\nName=" + name + "\nExec=" + id + "\n"
	if err := os.WriteFile(filepath.Join(dir, id+".desktop"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func newOpenAppTool(t *testing.T, dir string) (*OpenAppTool, *[]string) {
	t.Helper()
	cfg := &config.Config{}
	cfg.Apps.DesktopDirs = []string{dir}
	cfg.Apps.MatchDistance = 2

	var launched []string
	tool := NewOpenAppTool(cfg)
	tool.launch = func(id string) error {
		launched = append(launched, id)
		return nil
	}
	return tool, &launched
}

func TestOpenAppTool_ExactMatchLaunches(t *testing.T) {
	dir := t.TempDir()
	writeDesktopEntry(t, dir, "firefox", "Firefox Web Browser")
	tool, launched := newOpenAppTool(t, dir)

	result, err := tool.Execute(context.Background(), map[string]interface{}{"app_name": "firefox"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Success {
		t.Fatalf("expected success, got %q", result.Error)
	}
	if len(*launched) != 1 || (*launched)[0] != "firefox" {
		t.Errorf("expected firefox launched, got %v", *launched)
	}
	if !strings.Contains(result.Output, "Firefox Web Browser") {
		t.Errorf("output should carry the display name: %q", result.Output)
	}
}

func TestOpenAppTool_CaseInsensitiveExactMatch(t *testing.T) {
	dir := t.TempDir()
	writeDesktopEntry(t, dir, "firefox", "Firefox Web Browser")
	tool, launched := newOpenAppTool(t, dir)

	result, _ := tool.Execute(context.Background(), map[string]interface{}{"app_name": "Firefox"})
	if !result.Success {
		t.Fatalf("expected success, got %q", result.Error)
	}
	if len(*launched) != 1 {
		t.Errorf("expected one launch, got %v", *launched)
	}
}

func TestOpenAppTool_CloseFuzzyMatchAutoLaunches(t *testing.T) {
	dir := t.TempDir()
	writeDesktopEntry(t, dir, "firefox", "Firefox Web Browser")
	writeDesktopEntry(t, dir, "nautilus", "Files")
	tool, launched := newOpenAppTool(t, dir)

	result, _ := tool.Execute(context.Background(), map[string]interface{}{"app_name": "firefx"})
	if !result.Success {
		t.Fatalf("expected auto-launch on close match, got %q", result.Error)
	}
	if len(*launched) != 1 || (*launched)[0] != "firefox" {
		t.Errorf("expected firefox launched, got %v", *launched)
	}
	if !strings.Contains(result.Output, "matched from") {
		t.Errorf("output should say the name was matched: %q", result.Output)
	}
}

func TestOpenAppTool_VagueNameReturnsCandidates(t *testing.T) {
	dir := t.TempDir()
	writeDesktopEntry(t, dir, "firefox", "Firefox Web Browser")
	writeDesktopEntry(t, dir, "nautilus", "Files")
	tool, launched := newOpenAppTool(t, dir)

	result, _ := tool.Execute(context.Background(), map[string]interface{}{"app_name": "completely-different"})
	if result.Success {
		t.Fatal("expected failure for a vague name")
	}
	if len(*launched) != 0 {
		t.Errorf("nothing should launch on a vague name, got %v", *launched)
	}
	if !strings.Contains(result.Error, "firefox") && !strings.Contains(result.Error, "nautilus") {
		t.Errorf("error should list candidates: %q", result.Error)
	}
	if !strings.Contains(result.Error, "retry open_app") {
		t.Errorf("error should tell the agent how to retry: %q", result.Error)
	}
}

func TestOpenAppTool_EmptyNameListsCatalog(t *testing.T) {
	dir := t.TempDir()
	writeDesktopEntry(t, dir, "firefox", "Firefox Web Browser")
	writeDesktopEntry(t, dir, "gimp", "GNU Image Manipulation Program")
	tool, launched := newOpenAppTool(t, dir)

	result, _ := tool.Execute(context.Background(), map[string]interface{}{"app_name": ""})
	if !result.Success {
		t.Fatalf("catalog mode should succeed, got %q", result.Error)
	}
	if len(*launched) != 0 {
		t.Errorf("catalog mode must not launch, got %v", *launched)
	}
	if !strings.Contains(result.Output, "2 installed") {
		t.Errorf("output should count applications: %q", result.Output)
	}
	if !strings.Contains(result.Output, "firefox (Firefox Web Browser)") {
		t.Errorf("output should list id and display name: %q", result.Output)
	}
}

func TestOpenAppTool_HiddenEntriesExcluded(t *testing.T) {
	dir := t.TempDir()
	writeDesktopEntry(t, dir, "visible", "Visible App")
	content := "[Desktop Entry]\nType=Application\nNoDisplay=true\nName=Hidden App\n"
	if err := os.WriteFile(filepath.Join(dir, "hidden.desktop"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	tool, _ := newOpenAppTool(t, dir)

	result, _ := tool.Execute(context.Background(), map[string]interface{}{"app_name": ""})
	if strings.Contains(result.Output, "Hidden App") {
		t.Errorf("NoDisplay entries must not be listed: %q", result.Output)
	}
}

func TestOpenAppTool_LaunchFailureIsReported(t *testing.T) {
	dir := t.TempDir()
	writeDesktopEntry(t, dir, "broken", "Broken App")
	tool, _ := newOpenAppTool(t, dir)
	tool.launch = func(id string) error {
		return errors.New("unable to launch \"broken\"")
	}

	result, _ := tool.Execute(context.Background(), map[string]interface{}{"app_name": "broken"})
	if result.Success {
		t.Fatal("expected failure when launch fails")
	}
	if !strings.Contains(result.Error, "broken") {
		t.Errorf("error should name the application: %q", result.Error)
	}
}

func TestOpenAppTool_EmptyCatalog(t *testing.T) {
	tool, _ := newOpenAppTool(t, t.TempDir())

	result, _ := tool.Execute(context.Background(), map[string]interface{}{"app_name": "anything"})
	if result.Success {
		t.Fatal("expected failure with an empty catalog")
	}
}

func TestOpenAppTool_DefaultScanToleratesMissingDirs(t *testing.T) {
	tool := NewOpenAppTool(&config.Config{})
	catalog := tool.scan([]string{"/nonexistent-dir-for-test"})
	if catalog.Len() != 0 {
		t.Errorf("expected empty catalog, got %d", catalog.Len())
	}
}
