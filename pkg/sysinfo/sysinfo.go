// Package sysinfo gathers a read-only snapshot of system status: disk usage,
// memory, GPU memory, and the busiest processes. Each probe degrades
// independently; a missing GPU or an unreadable /proc never fails the whole
// report.
package sysinfo

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

const probeTimeout = 10 * time.Second

// runFunc executes a command and returns its combined output; swappable for tests
type runFunc func(ctx context.Context, name string, args ...string) ([]byte, error)

func execRun(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var buf bytes.Buffer
	cmd.Stdout = &buf
	cmd.Stderr = &buf
	err := cmd.Run()
	return buf.Bytes(), err
}

// MemoryStats holds parsed /proc/meminfo figures in bytes
type MemoryStats struct {
	Total     uint64
	Used      uint64
	Available uint64
}

// UsagePercent returns used memory as a percentage of total
func (m MemoryStats) UsagePercent() float64 {
	if m.Total == 0 {
		return 0
	}
	return float64(m.Used) / float64(m.Total) * 100
}

// Report is one system status snapshot. Empty sections were unavailable;
// their probe errors are collected in Errors.
type Report struct {
	Disk      string
	Memory    string
	GPU       string
	Processes string
	Errors    []string
}

// Empty reports whether no section could be gathered at all
func (r *Report) Empty() bool {
	return r.Disk == "" && r.Memory == "" && r.GPU == "" && r.Processes == ""
}

// String renders the report as the sectioned text block handed back to the agent
func (r *Report) String() string {
	var sections []string
	if r.Disk != "" {
		sections = append(sections, "DISK STORAGE:\n"+r.Disk)
	}
	if r.Memory != "" {
		sections = append(sections, "RAM USAGE:\n"+r.Memory)
	}
	if r.GPU != "" {
		sections = append(sections, "GPU MEMORY:\n"+r.GPU)
	}
	if r.Processes != "" {
		sections = append(sections, "TOP 5 PROCESSES:\n"+r.Processes)
	}
	for _, e := range r.Errors {
		sections = append(sections, "unavailable: "+e)
	}
	return strings.Join(sections, "\n\n")
}

// Gatherer collects system information
type Gatherer struct {
	// MeminfoPath overrides /proc/meminfo, for tests
	MeminfoPath string

	run runFunc
}

// NewGatherer creates a gatherer using the real commands and /proc
func NewGatherer() *Gatherer {
	return &Gatherer{MeminfoPath: "/proc/meminfo", run: execRun}
}

// Gather assembles a full report. It never returns an error; probes that
// fail contribute an entry to Report.Errors instead.
func (g *Gatherer) Gather(ctx context.Context) *Report {
	r := &Report{}

	if out, err := g.disk(ctx); err != nil {
		r.Errors = append(r.Errors, fmt.Sprintf("disk: %v", err))
	} else {
		r.Disk = out
	}

	if mem, err := g.Memory(); err != nil {
		r.Errors = append(r.Errors, fmt.Sprintf("memory: %v", err))
	} else {
		r.Memory = fmt.Sprintf("Total: %s\nUsed: %s (%.1f%%)\nAvailable: %s",
			humanize.IBytes(mem.Total), humanize.IBytes(mem.Used),
			mem.UsagePercent(), humanize.IBytes(mem.Available))
	}

	if out, err := g.gpu(ctx); err != nil {
		r.Errors = append(r.Errors, fmt.Sprintf("gpu: %v", err))
	} else {
		r.GPU = out // empty when no GPU is present, which is not an error
	}

	if out, err := g.processes(ctx); err != nil {
		r.Errors = append(r.Errors, fmt.Sprintf("processes: %v", err))
	} else {
		r.Processes = out
	}

	return r
}

// disk reports filesystem usage via df, excluding tmpfs mounts
func (g *Gatherer) disk(ctx context.Context) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	out, err := g.run(ctx, "df", "-h", "--exclude-type=tmpfs", "--exclude-type=devtmpfs")
	if err != nil {
		return "", fmt.Errorf("df failed: %v", err)
	}
	return strings.TrimSpace(string(out)), nil
}

// Memory parses /proc/meminfo into byte figures
func (g *Gatherer) Memory() (MemoryStats, error) {
	data, err := os.ReadFile(g.MeminfoPath)
	if err != nil {
		return MemoryStats{}, fmt.Errorf("read %s: %v", g.MeminfoPath, err)
	}

	var total, available uint64
	for _, line := range strings.Split(string(data), "\n") {
		switch {
		case strings.HasPrefix(line, "MemTotal:"):
			total = meminfoBytes(line)
		case strings.HasPrefix(line, "MemAvailable:"):
			available = meminfoBytes(line)
		}
	}
	if total == 0 || available == 0 {
		return MemoryStats{}, fmt.Errorf("could not parse MemTotal/MemAvailable from %s", g.MeminfoPath)
	}

	return MemoryStats{Total: total, Used: total - available, Available: available}, nil
}

// meminfoBytes parses "MemTotal:  16314728 kB" into bytes
func meminfoBytes(line string) uint64 {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return 0
	}
	kb, err := strconv.ParseUint(fields[1], 10, 64)
	if err != nil {
		return 0
	}
	return kb * 1024
}

// gpu reports NVIDIA GPU memory via nvidia-smi when present
func (g *Gatherer) gpu(ctx context.Context) (string, error) {
	if _, err := exec.LookPath("nvidia-smi"); err != nil {
		return "", nil // no NVIDIA GPU, the common case
	}

	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	out, err := g.run(ctx, "nvidia-smi",
		"--query-gpu=memory.total,memory.used,memory.free",
		"--format=csv,noheader,nounits")
	if err != nil {
		return "", fmt.Errorf("nvidia-smi failed: %v", err)
	}

	var lines []string
	for i, line := range strings.Split(strings.TrimSpace(string(out)), "\n") {
		parts := strings.Split(line, ",")
		if len(parts) != 3 {
			continue
		}
		total, _ := strconv.Atoi(strings.TrimSpace(parts[0]))
		used, _ := strconv.Atoi(strings.TrimSpace(parts[1]))
		if total == 0 {
			continue
		}
		lines = append(lines, fmt.Sprintf("GPU %d: %dMB/%dMB used (%.1f%%)",
			i, used, total, float64(used)/float64(total)*100))
	}
	if len(lines) == 0 {
		return "", fmt.Errorf("no GPU figures in nvidia-smi output")
	}
	return strings.Join(lines, "\n"), nil
}

// processes reports the top five processes by CPU via ps
func (g *Gatherer) processes(ctx context.Context) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	out, err := g.run(ctx, "ps", "aux", "--sort=-pcpu")
	if err != nil {
		return "", fmt.Errorf("ps failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	if len(lines) < 2 {
		return "", fmt.Errorf("no process data in ps output")
	}

	rows := []string{fmt.Sprintf("%-8s %-20s %-7s %-7s", "PID", "NAME", "CPU%", "MEM%")}
	for _, line := range lines[1:] {
		if len(rows) > 5 {
			break
		}
		fields := strings.Fields(line)
		if len(fields) < 11 {
			continue
		}
		name := fields[10]
		if len(name) > 20 {
			name = name[:20]
		}
		rows = append(rows, fmt.Sprintf("%-8s %-20s %-7s %-7s", fields[1], name, fields[2], fields[3]))
	}
	return strings.Join(rows, "\n"), nil
}
