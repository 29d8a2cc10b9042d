package organize

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"syscall"
)

// SkippedEntry records one file that was not moved, and why
type SkippedEntry struct {
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

// MoveReport summarizes one organize run
type MoveReport struct {
	// Moved counts moved files per category
	Moved map[Category]int `json:"moved"`

	// MovedFiles lists the destination paths of every moved file
	MovedFiles []string `json:"moved_files"`

	// Skipped lists files that were not moved, with reasons
	Skipped []SkippedEntry `json:"skipped"`
}

// TotalMoved returns the number of files moved
func (r *MoveReport) TotalMoved() int {
	total := 0
	for _, n := range r.Moved {
		total += n
	}
	return total
}

// Summary renders the "N moved, M skipped" line the tool reports
func (r *MoveReport) Summary() string {
	return fmt.Sprintf("%d moved, %d skipped", r.TotalMoved(), len(r.Skipped))
}

// Organizer moves the files of one directory into per-category subfolders
type Organizer struct {
	classifier *Classifier

	// OnMove, when set, is called after each successful move. Moving a large
	// directory is the one long-running operation here, so each step is
	// surfaced rather than going dark until the end.
	OnMove func(name string, cat Category)
}

// NewOrganizer creates an organizer using the given classifier
func NewOrganizer(classifier *Classifier) *Organizer {
	return &Organizer{classifier: classifier}
}

// Run moves every regular file directly inside sourceDir into
// destRoot/<category>/. The scan is non-recursive to bound the blast radius
// of one call. Symlinks and special files are skipped and reported, never
// dereferenced. Name collisions get a numeric suffix; an existing file is
// never overwritten. Re-running over an already-organized directory moves
// nothing, so a retry after interruption is always safe.
//
// The returned error covers only the up-front scan; per-file failures land
// in the report's skipped list.
func (o *Organizer) Run(sourceDir, destRoot string) (*MoveReport, error) {
	entries, err := os.ReadDir(sourceDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read source directory: %w", err)
	}

	report := &MoveReport{Moved: make(map[Category]int)}

	for _, entry := range entries {
		name := entry.Name()

		if entry.IsDir() {
			continue // subfolders stay put, including category folders from earlier runs
		}
		if entry.Type()&os.ModeSymlink != 0 {
			report.Skipped = append(report.Skipped, SkippedEntry{Name: name, Reason: "symlink excluded"})
			continue
		}
		if !entry.Type().IsRegular() {
			report.Skipped = append(report.Skipped, SkippedEntry{Name: name, Reason: "special file excluded"})
			continue
		}

		cat := o.classifier.Classify(name)
		destDir := filepath.Join(destRoot, string(cat))
		if err := os.MkdirAll(destDir, 0755); err != nil {
			report.Skipped = append(report.Skipped, SkippedEntry{
				Name: name, Reason: fmt.Sprintf("failed to create %s: %v", destDir, err),
			})
			continue
		}

		src := filepath.Join(sourceDir, name)
		dest := filepath.Join(destDir, name)
		if src == dest {
			continue // already in place from an earlier run
		}

		dest, collided := resolveCollision(dest)
		if err := moveFile(src, dest); err != nil {
			report.Skipped = append(report.Skipped, SkippedEntry{
				Name: name, Reason: fmt.Sprintf("move failed: %v", err),
			})
			continue
		}

		report.Moved[cat]++
		report.MovedFiles = append(report.MovedFiles, dest)
		if collided {
			report.Skipped = append(report.Skipped, SkippedEntry{
				Name: name, Reason: fmt.Sprintf("collision resolved: stored as %s", filepath.Base(dest)),
			})
		}
		if o.OnMove != nil {
			o.OnMove(name, cat)
		}
	}

	return report, nil
}

// resolveCollision returns a destination path that does not exist yet,
// appending _1, _2, ... before the extension when needed. Reports whether a
// suffix was applied.
func resolveCollision(dest string) (string, bool) {
	if _, err := os.Lstat(dest); os.IsNotExist(err) {
		return dest, false
	}

	dir := filepath.Dir(dest)
	base := filepath.Base(dest)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)

	for i := 1; ; i++ {
		candidate := filepath.Join(dir, fmt.Sprintf("%s_%d%s", stem, i, ext))
		if _, err := os.Lstat(candidate); os.IsNotExist(err) {
			return candidate, true
		}
	}
}

// moveFile renames src to dest, falling back to copy-and-remove when the
// destination is on a different filesystem.
func moveFile(src, dest string) error {
	err := os.Rename(src, dest)
	if err == nil {
		return nil
	}
	if !errors.Is(err, syscall.EXDEV) {
		return err
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}

	out, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_EXCL, info.Mode().Perm())
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(dest)
		return err
	}
	if err := out.Close(); err != nil {
		os.Remove(dest)
		return err
	}

	return os.Remove(src)
}
