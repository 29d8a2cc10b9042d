package cleanup

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

const (
	defaultTimeout = 5 * time.Minute

	// outputTailLines bounds how much engine output a report carries; the
	// interesting summary lines are at the end.
	outputTailLines = 10
)

// runFunc executes a command and returns its combined output. Swappable so
// tests run against a fake instead of the real binary.
type runFunc func(ctx context.Context, name string, args ...string) ([]byte, error)

func execRun(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var buf bytes.Buffer
	cmd.Stdout = &buf
	cmd.Stderr = &buf
	err := cmd.Run()
	return buf.Bytes(), err
}

// BleachBit drives the BleachBit CLI (https://www.bleachbit.org) with
// per-category cleaner selectors.
type BleachBit struct {
	// Path overrides the binary location; empty means PATH lookup
	Path string

	// Timeout bounds one engine run; zero means the 5-minute default
	Timeout time.Duration

	run runFunc
}

// NewBleachBit creates an engine with the given binary path ("" for PATH
// lookup) and run timeout (0 for the default).
func NewBleachBit(path string, timeout time.Duration) *BleachBit {
	return &BleachBit{Path: path, Timeout: timeout, run: execRun}
}

// binary resolves the engine binary name
func (b *BleachBit) binary() string {
	if b.Path != "" {
		return b.Path
	}
	return "bleachbit"
}

// Available checks that the engine binary can be found. The returned error
// message tells the operator how to fix the installation, because no agent
// retry can.
func (b *BleachBit) Available() error {
	if _, err := exec.LookPath(b.binary()); err != nil {
		return fmt.Errorf("cleanup engine not found: install BleachBit (e.g. sudo apt install bleachbit) or set cleanup.engine_path in the config")
	}
	return nil
}

// Preview runs the engine in preview mode for the given categories,
// performing no mutation.
func (b *BleachBit) Preview(ctx context.Context, cats []Category) (*Report, error) {
	args := []string{"--preview"}
	for _, c := range cats {
		args = append(args, CleanerID(c))
	}
	return b.invoke(ctx, args)
}

// Clean removes the files of a single category.
func (b *BleachBit) Clean(ctx context.Context, cat Category) (*Report, error) {
	return b.invoke(ctx, []string{"--clean", CleanerID(cat)})
}

func (b *BleachBit) invoke(ctx context.Context, args []string) (*Report, error) {
	timeout := b.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	out, err := b.run(ctx, b.binary(), args...)
	output := outputTail(string(out))
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return nil, fmt.Errorf("engine run timed out after %s", timeout)
		}
		// Non-zero exits still often carry a usable summary; surface both.
		return nil, fmt.Errorf("engine run failed: %v: %s", err, output)
	}

	return &Report{
		BytesFreed: parseRecovered(string(out)),
		Output:     output,
	}, nil
}

// parseRecovered extracts the "Disk space recovered: 12.3MB" figure from
// engine output. Missing or unparseable figures report zero rather than an
// error: preview output for an already-clean target has nothing to recover.
func parseRecovered(output string) uint64 {
	for _, line := range strings.Split(output, "\n") {
		idx := strings.Index(strings.ToLower(line), "disk space recovered:")
		if idx < 0 {
			idx = strings.Index(strings.ToLower(line), "disk space to be recovered:")
		}
		if idx < 0 {
			continue
		}
		value := strings.TrimSpace(line[strings.LastIndex(line, ":")+1:])
		if n, err := humanize.ParseBytes(value); err == nil {
			return n
		}
	}
	return 0
}

// outputTail keeps the last few lines of engine output
func outputTail(output string) string {
	lines := strings.Split(strings.TrimSpace(output), "\n")
	if len(lines) > outputTailLines {
		lines = lines[len(lines)-outputTailLines:]
	}
	return strings.Join(lines, "\n")
}
