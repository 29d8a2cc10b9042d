package tools

import (
	"os"
	"os/exec"
)

// Capability represents a system capability that tools may require
type Capability string

const (
	// CapabilityBleachBit indicates the bleachbit binary is in PATH
	CapabilityBleachBit Capability = "bleachbit"

	// CapabilityProc indicates /proc is mounted (memory statistics)
	CapabilityProc Capability = "proc"

	// CapabilityDesktop indicates a graphical session is available
	CapabilityDesktop Capability = "desktop"

	// CapabilityNvidiaSMI indicates nvidia-smi is in PATH (GPU statistics)
	CapabilityNvidiaSMI Capability = "nvidia_smi"
)

// CapabilityChecker checks for system capabilities at runtime
type CapabilityChecker interface {
	// Check returns true if the capability is available
	Check(cap Capability) bool

	// CheckAll returns a list of missing capabilities from the input
	CheckAll(caps []Capability) []Capability

	// Available returns all capabilities that are currently available
	Available() []Capability
}

// DefaultCapabilityChecker is the standard implementation that checks
// PATH, /proc, and the session environment
type DefaultCapabilityChecker struct {
	// Override allows tests to inject specific capability states
	Override map[Capability]bool
}

// NewCapabilityChecker creates a new default capability checker
func NewCapabilityChecker() *DefaultCapabilityChecker {
	return &DefaultCapabilityChecker{
		Override: make(map[Capability]bool),
	}
}

// Check returns true if the capability is available
func (c *DefaultCapabilityChecker) Check(cap Capability) bool {
	// Check override first (for testing)
	if override, ok := c.Override[cap]; ok {
		return override
	}

	switch cap {
	case CapabilityBleachBit:
		return c.checkBinary("bleachbit")
	case CapabilityProc:
		return c.checkProc()
	case CapabilityDesktop:
		return c.checkDesktop()
	case CapabilityNvidiaSMI:
		return c.checkBinary("nvidia-smi")
	default:
		return false
	}
}

// CheckAll returns a list of missing capabilities
func (c *DefaultCapabilityChecker) CheckAll(caps []Capability) []Capability {
	var missing []Capability
	for _, cap := range caps {
		if !c.Check(cap) {
			missing = append(missing, cap)
		}
	}
	return missing
}

// Available returns all capabilities that are currently available
func (c *DefaultCapabilityChecker) Available() []Capability {
	allCaps := []Capability{
		CapabilityBleachBit,
		CapabilityProc,
		CapabilityDesktop,
		CapabilityNvidiaSMI,
	}

	var available []Capability
	for _, cap := range allCaps {
		if c.Check(cap) {
			available = append(available, cap)
		}
	}
	return available
}

// checkBinary checks if the named binary is available in PATH
func (c *DefaultCapabilityChecker) checkBinary(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

// checkProc checks if /proc/meminfo is readable
func (c *DefaultCapabilityChecker) checkProc() bool {
	_, err := os.Stat("/proc/meminfo")
	return err == nil
}

// checkDesktop checks if a graphical session is present
func (c *DefaultCapabilityChecker) checkDesktop() bool {
	return os.Getenv("DISPLAY") != "" || os.Getenv("WAYLAND_DISPLAY") != ""
}
