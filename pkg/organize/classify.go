// Package organize classifies files by extension and moves them into
// per-category subfolders. The category set is closed: every file lands in
// exactly one of documents, images, archives, code, or other; unknown
// extensions are never dropped and never left unclassified.
package organize

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// Category is one destination bucket
type Category string

const (
	Documents Category = "documents"
	Images    Category = "images"
	Archives  Category = "archives"
	Code      Category = "code"
	Other     Category = "other"
)

// Categories returns the closed category set, sorted
func Categories() []Category {
	return []Category{Archives, Code, Documents, Images, Other}
}

// validCategory reports whether c is in the closed set
func validCategory(c Category) bool {
	switch c {
	case Documents, Images, Archives, Code, Other:
		return true
	}
	return false
}

// Classifier maps file extensions to categories
type Classifier struct {
	mu    sync.RWMutex
	byExt map[string]Category // lowercase extension with dot -> category
}

// NewClassifier creates a classifier with the built-in extension table
func NewClassifier() *Classifier {
	c := &Classifier{byExt: make(map[string]Category)}
	c.registerDefaults()
	return c
}

// registerDefaults registers the built-in extension table
func (c *Classifier) registerDefaults() {
	defaults := map[Category][]string{
		Documents: {
			".pdf", ".doc", ".docx", ".odt", ".rtf", ".txt", ".md",
			".xls", ".xlsx", ".ods", ".csv", ".ppt", ".pptx", ".odp", ".epub",
		},
		Images: {
			".jpg", ".jpeg", ".png", ".gif", ".bmp", ".svg", ".webp",
			".tif", ".tiff", ".ico", ".heic", ".raw",
		},
		Archives: {
			".zip", ".tar", ".gz", ".tgz", ".bz2", ".xz", ".7z", ".rar",
			".iso", ".deb", ".rpm",
		},
		Code: {
			".go", ".py", ".js", ".ts", ".c", ".h", ".cpp", ".hpp", ".rs",
			".java", ".rb", ".sh", ".pl", ".php", ".html", ".css", ".sql",
			".json", ".yaml", ".yml", ".toml", ".xml",
		},
	}

	for cat, exts := range defaults {
		for _, ext := range exts {
			c.byExt[ext] = cat
		}
	}
}

// Classify returns the category for a filename. Unknown extensions (and
// files without one) map to Other.
func (c *Classifier) Classify(filename string) Category {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		return Other
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	if cat, ok := c.byExt[ext]; ok {
		return cat
	}
	return Other
}

// AddRule maps an extension to a category. The category must come from the
// closed set; the extension is normalized to lowercase with a leading dot.
func (c *Classifier) AddRule(ext string, cat Category) error {
	if !validCategory(cat) {
		names := make([]string, 0, 5)
		for _, v := range Categories() {
			names = append(names, string(v))
		}
		return fmt.Errorf("unknown category %q for extension %q (valid: %s)",
			cat, ext, strings.Join(names, ", "))
	}

	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext == "" {
		return fmt.Errorf("empty extension in rule for category %q", cat)
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.byExt[ext] = cat
	return nil
}

// Extensions returns the registered extensions for a category, sorted
func (c *Classifier) Extensions(cat Category) []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var exts []string
	for ext, got := range c.byExt {
		if got == cat {
			exts = append(exts, ext)
		}
	}
	sort.Strings(exts)
	return exts
}
