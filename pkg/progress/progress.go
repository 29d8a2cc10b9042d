// Package progress provides the process-wide progress sink that every tool
// invocation reports to. The sink is append-only and ordered: an agent (or a
// human reading the log after the fact) reconstructs what a tool did from these
// events alone, so every phase transition and sub-step of a side-effecting
// operation must be recorded here.
package progress

import (
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
)

// Phase identifies a stage of a tool invocation lifecycle.
type Phase string

const (
	PhaseReceived  Phase = "received"
	PhaseValidated Phase = "validated"
	PhaseExecuting Phase = "executing"
	PhaseCompleted Phase = "completed"
	PhaseFailed    Phase = "failed"
)

// Event is a single progress record for a tool invocation.
type Event struct {
	Invocation string                 // correlates all events of one call
	Tool       string                 // tool name
	Phase      Phase                  // lifecycle phase, or "" for a sub-step
	Message    string                 // human-readable detail
	Fields     map[string]interface{} // structured extras (counts, sizes...)
}

// Sink receives progress events in invocation order.
type Sink interface {
	Record(e Event)
}

// LogSink writes events as structured log lines via zerolog.
type LogSink struct {
	log zerolog.Logger
}

// NewLogSink creates a sink writing structured events to w at the given level.
// Unparseable levels fall back to info.
func NewLogSink(w io.Writer, level string) *LogSink {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	logger := zerolog.New(w).Level(lvl).With().Timestamp().Logger()
	return &LogSink{log: logger}
}

// Record writes the event as one log line.
func (s *LogSink) Record(e Event) {
	ev := s.log.Info().
		Str("invocation", e.Invocation).
		Str("tool", e.Tool)
	if e.Phase != "" {
		ev = ev.Str("phase", string(e.Phase))
	}
	if len(e.Fields) > 0 {
		ev = ev.Fields(e.Fields)
	}
	ev.Msg(e.Message)
}

// Memory is an in-memory sink for tests and for runtimes that surface
// progress to the agent directly.
type Memory struct {
	mu     sync.Mutex
	events []Event
}

// NewMemory creates an empty in-memory sink.
func NewMemory() *Memory {
	return &Memory{}
}

// Record appends the event.
func (m *Memory) Record(e Event) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, e)
}

// Events returns a copy of all recorded events in order.
func (m *Memory) Events() []Event {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Event, len(m.events))
	copy(out, m.events)
	return out
}

var (
	defaultMu   sync.RWMutex
	defaultSink Sink = NewLogSink(os.Stderr, "info")
)

// Init replaces the process-wide default sink. Call once at process start,
// before any tool is invoked.
func Init(s Sink) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultSink = s
}

// Default returns the process-wide sink.
func Default() Sink {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultSink
}
