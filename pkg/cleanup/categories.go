// Package cleanup wraps a third-party disk-cleaning engine behind a closed
// set of pre-registered cleanup targets. The engine is only ever invoked with
// category selectors from this set, never with an arbitrary path; that is
// the safety invariant protecting against a prompt-injected or hallucinated
// destructive instruction.
package cleanup

import (
	"fmt"
	"sort"
	"strings"
)

// Category is one pre-registered cleanup target
type Category string

const (
	Cache Category = "cache"
	Temp  Category = "temp"
	Trash Category = "trash"
	Logs  Category = "logs"
)

// cleanerIDs maps each category to the BleachBit cleaner selector it is
// allowed to run. Nothing outside this table ever reaches the engine.
var cleanerIDs = map[Category]string{
	Cache: "system.cache",
	Temp:  "system.tmp",
	Trash: "system.trash",
	Logs:  "system.rotated_logs",
}

// All returns every known category, sorted
func All() []Category {
	cats := make([]Category, 0, len(cleanerIDs))
	for c := range cleanerIDs {
		cats = append(cats, c)
	}
	sort.Slice(cats, func(i, j int) bool { return cats[i] < cats[j] })
	return cats
}

// ValidNames returns the names of every known category, sorted, for use in
// validation error messages
func ValidNames() []string {
	cats := All()
	names := make([]string, len(cats))
	for i, c := range cats {
		names[i] = string(c)
	}
	return names
}

// CleanerID returns the engine selector for a category
func CleanerID(c Category) string {
	return cleanerIDs[c]
}

// CategorySet is the per-deployment subset of categories the agent may
// request, built once from configuration.
type CategorySet struct {
	enabled map[Category]bool
}

// NewCategorySet builds a set from configured category names. Unknown names
// are rejected so a config typo surfaces at startup, not at cleanup time.
func NewCategorySet(names []string) (*CategorySet, error) {
	enabled := make(map[Category]bool, len(names))
	for _, name := range names {
		c := Category(strings.ToLower(strings.TrimSpace(name)))
		if _, ok := cleanerIDs[c]; !ok {
			return nil, fmt.Errorf("unknown cleanup category %q (valid: %s)",
				name, strings.Join(ValidNames(), ", "))
		}
		enabled[c] = true
	}
	return &CategorySet{enabled: enabled}, nil
}

// Resolve maps requested category names to categories. Resolution is atomic:
// any unknown or disabled name fails the whole request before any mutation,
// naming the offending entry and listing the valid set.
func (s *CategorySet) Resolve(names []string) ([]Category, error) {
	seen := make(map[Category]bool, len(names))
	cats := make([]Category, 0, len(names))
	for _, name := range names {
		if strings.TrimSpace(name) == "" {
			continue
		}
		c := Category(strings.ToLower(strings.TrimSpace(name)))
		if _, known := cleanerIDs[c]; !known || !s.enabled[c] {
			return nil, fmt.Errorf("unrecognized cleanup category %q: valid categories are %s",
				strings.TrimSpace(name), strings.Join(s.Names(), ", "))
		}
		if !seen[c] {
			seen[c] = true
			cats = append(cats, c)
		}
	}
	if len(cats) == 0 {
		return nil, fmt.Errorf("no categories requested: valid categories are %s", strings.Join(s.Names(), ", "))
	}
	return cats, nil
}

// Names returns the enabled category names, sorted
func (s *CategorySet) Names() []string {
	names := make([]string, 0, len(s.enabled))
	for c := range s.enabled {
		names = append(names, string(c))
	}
	sort.Strings(names)
	return names
}
