package apps

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeEntry(t *testing.T, dir, id, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, id+".desktop"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func appEntry(name string) string {
	return "[Desktop Entry]\nType=Application\nName=" + name + "\nExec=true\n"
}

func TestScan(t *testing.T) {
	dir := t.TempDir()
	writeEntry(t, dir, "firefox", appEntry("Firefox Web Browser"))
	writeEntry(t, dir, "org.gimp.GIMP", appEntry("GNU Image Manipulation Program"))

	c := Scan([]string{dir})
	if c.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", c.Len())
	}

	e, ok := c.Get("org.gimp.GIMP")
	if !ok {
		t.Fatal("expected gimp entry")
	}
	if e.Name != "GNU Image Manipulation Program" {
		t.Errorf("unexpected display name %q", e.Name)
	}
}

func TestScan_SkipsHiddenAndNoDisplay(t *testing.T) {
	dir := t.TempDir()
	writeEntry(t, dir, "visible", appEntry("Visible"))
	writeEntry(t, dir, "nodisplay", "[Desktop Entry]\nNoDisplay=true\nName=Ghost\n")
	writeEntry(t, dir, "hidden", "[Desktop Entry]\nHidden=true\nName=Ghost 2\n")

	c := Scan([]string{dir})
	if c.Len() != 1 {
		t.Errorf("expected only the visible entry, got %d", c.Len())
	}
}

func TestScan_SkipsNonDesktopFiles(t *testing.T) {
	dir := t.TempDir()
	writeEntry(t, dir, "app", appEntry("App"))
	if err := os.WriteFile(filepath.Join(dir, "README.txt"), []byte("not an entry"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.Mkdir(filepath.Join(dir, "subdir.desktop"), 0755); err != nil {
		t.Fatal(err)
	}

	c := Scan([]string{dir})
	if c.Len() != 1 {
		t.Errorf("expected 1 entry, got %d", c.Len())
	}
}

func TestScan_MissingDirsTolerated(t *testing.T) {
	dir := t.TempDir()
	writeEntry(t, dir, "app", appEntry("App"))

	c := Scan([]string{"/nonexistent-a", dir, "/nonexistent-b"})
	if c.Len() != 1 {
		t.Errorf("expected 1 entry despite missing dirs, got %d", c.Len())
	}
}

func TestScan_EntryWithoutNameSkipped(t *testing.T) {
	dir := t.TempDir()
	writeEntry(t, dir, "nameless", "[Desktop Entry]\nType=Application\nExec=true\n")

	c := Scan([]string{dir})
	if c.Len() != 0 {
		t.Errorf("entries without a Name are unusable, got %d", c.Len())
	}
}

func TestCatalog_GetCaseInsensitive(t *testing.T) {
	dir := t.TempDir()
	writeEntry(t, dir, "Firefox", appEntry("Firefox"))

	c := Scan([]string{dir})
	if _, ok := c.Get("firefox"); !ok {
		t.Error("expected case-insensitive lookup to hit")
	}
	if _, ok := c.Get("chrome"); ok {
		t.Error("expected miss for unknown id")
	}
}

func TestCatalog_IDsSorted(t *testing.T) {
	dir := t.TempDir()
	for _, id := range []string{"zed", "alpha", "mid"} {
		writeEntry(t, dir, id, appEntry(id))
	}

	ids := Scan([]string{dir}).IDs()
	want := []string{"alpha", "mid", "zed"}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, ids)
		}
	}
}

func TestCatalog_Listing(t *testing.T) {
	dir := t.TempDir()
	for _, id := range []string{"a", "b", "c", "d"} {
		writeEntry(t, dir, id, appEntry("App "+strings.ToUpper(id)))
	}
	c := Scan([]string{dir})

	listing := c.Listing(2)
	if !strings.Contains(listing, "a (App A)") {
		t.Errorf("listing should show id and name: %q", listing)
	}
	if !strings.Contains(listing, "... and 2 more") {
		t.Errorf("listing should note the remainder: %q", listing)
	}

	full := c.Listing(0)
	if strings.Contains(full, "more") {
		t.Errorf("unlimited listing should show everything: %q", full)
	}
}

func TestCatalog_ListingEmpty(t *testing.T) {
	c := Scan(nil)
	if got := c.Listing(10); !strings.Contains(got, "No applications found") {
		t.Errorf("unexpected empty listing %q", got)
	}
}
