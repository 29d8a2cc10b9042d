package apps

import (
	"fmt"
	"os/exec"
)

// Launcher starts applications by launcher ID using tiered strategies:
// direct executable, gtk-launch for .desktop entries, then xdg-open. Launch
// processes are detached and never waited on; a tool call must not block on
// a GUI application's lifetime.
type Launcher struct {
	// lookPath and start are swappable for tests
	lookPath func(name string) (string, error)
	start    func(name string, args ...string) error
}

// NewLauncher creates a launcher using the real exec functions
func NewLauncher() *Launcher {
	return &Launcher{
		lookPath: exec.LookPath,
		start: func(name string, args ...string) error {
			cmd := exec.Command(name, args...)
			if err := cmd.Start(); err != nil {
				return err
			}
			// Reap the child in the background so it doesn't linger as a zombie.
			go func() { _ = cmd.Wait() }()
			return nil
		},
	}
}

// Launch attempts each strategy in order and returns nil on the first that
// starts. The error lists what was tried so the failure message is
// self-contained.
func (l *Launcher) Launch(id string) error {
	var attempts []string

	// 1. direct executable in PATH
	if _, err := l.lookPath(id); err == nil {
		if err := l.start(id); err == nil {
			return nil
		}
		attempts = append(attempts, "direct exec")
	}

	// 2. gtk-launch resolves .desktop entries
	if _, err := l.lookPath("gtk-launch"); err == nil {
		if err := l.start("gtk-launch", id); err == nil {
			return nil
		}
		attempts = append(attempts, "gtk-launch")
	}

	// 3. xdg-open as a last resort
	if _, err := l.lookPath("xdg-open"); err == nil {
		if err := l.start("xdg-open", id); err == nil {
			return nil
		}
		attempts = append(attempts, "xdg-open")
	}

	if len(attempts) == 0 {
		return fmt.Errorf("no launch strategy available for %q: none of the launcher binaries (gtk-launch, xdg-open) are installed and %q is not in PATH", id, id)
	}
	return fmt.Errorf("unable to launch %q (tried %v); the application may need reinstalling or extra permissions", id, attempts)
}
