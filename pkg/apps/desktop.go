// Package apps catalogs installed desktop applications from .desktop entries
// and launches them by name, with fuzzy matching for the approximate names an
// agent tends to produce.
package apps

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// Entry is one installed application
type Entry struct {
	// ID is the launcher name, the .desktop file stem (e.g. "org.gimp.GIMP")
	ID string

	// Name is the human-readable display name (e.g. "GNU Image Manipulation Program")
	Name string
}

// Catalog holds the scanned application entries
type Catalog struct {
	mu      sync.RWMutex
	entries map[string]Entry // ID -> Entry
}

// Scan reads .desktop files from the given directories. Hidden and
// NoDisplay entries are excluded; unreadable files are skipped. Missing
// directories are not an error; most machines have only a subset.
func Scan(dirs []string) *Catalog {
	c := &Catalog{entries: make(map[string]Entry)}

	for _, dir := range dirs {
		files, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, f := range files {
			if f.IsDir() || !strings.HasSuffix(f.Name(), ".desktop") {
				continue
			}
			data, err := os.ReadFile(filepath.Join(dir, f.Name()))
			if err != nil {
				continue
			}
			entry, ok := parseDesktopEntry(strings.TrimSuffix(f.Name(), ".desktop"), string(data))
			if !ok {
				continue
			}
			c.entries[entry.ID] = entry
		}
	}

	return c
}

// parseDesktopEntry extracts the display name from .desktop file content
func parseDesktopEntry(id, content string) (Entry, bool) {
	if strings.Contains(content, "NoDisplay=true") || strings.Contains(content, "Hidden=true") {
		return Entry{}, false
	}
	for _, line := range strings.Split(content, "\n") {
		if name, ok := strings.CutPrefix(line, "Name="); ok {
			return Entry{ID: id, Name: strings.TrimSpace(name)}, true
		}
	}
	return Entry{}, false
}

// Get returns the entry with the given ID (case-insensitive)
func (c *Catalog) Get(id string) (Entry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if e, ok := c.entries[id]; ok {
		return e, true
	}
	lower := strings.ToLower(id)
	for key, e := range c.entries {
		if strings.ToLower(key) == lower {
			return e, true
		}
	}
	return Entry{}, false
}

// IDs returns all launcher IDs, sorted
func (c *Catalog) IDs() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	ids := make([]string, 0, len(c.entries))
	for id := range c.entries {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Len returns the number of cataloged applications
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Listing renders up to limit entries as "id (Display Name)" lines plus a
// remainder count.
func (c *Catalog) Listing(limit int) string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	lines := make([]string, 0, len(c.entries))
	for id, e := range c.entries {
		lines = append(lines, id+" ("+e.Name+")")
	}
	sort.Strings(lines)

	total := len(lines)
	if total == 0 {
		return "No applications found. Try common names like 'firefox', 'code', 'nautilus'."
	}
	if limit > 0 && total > limit {
		lines = lines[:limit]
		lines = append(lines, fmt.Sprintf("... and %d more", total-limit))
	}
	return strings.Join(lines, "\n")
}
