package progress

import (
	"bytes"
	"encoding/json"
	"sync"
	"testing"
)

func TestMemory_RecordsInOrder(t *testing.T) {
	m := NewMemory()
	m.Record(Event{Invocation: "inv-1", Tool: "clean_system", Phase: PhaseReceived})
	m.Record(Event{Invocation: "inv-1", Tool: "clean_system", Phase: PhaseValidated})
	m.Record(Event{Invocation: "inv-1", Tool: "clean_system", Phase: PhaseCompleted})

	events := m.Events()
	if len(events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(events))
	}
	want := []Phase{PhaseReceived, PhaseValidated, PhaseCompleted}
	for i, p := range want {
		if events[i].Phase != p {
			t.Errorf("events[%d].Phase = %q, want %q", i, events[i].Phase, p)
		}
	}
}

func TestMemory_EventsReturnsCopy(t *testing.T) {
	m := NewMemory()
	m.Record(Event{Tool: "a"})

	events := m.Events()
	events[0].Tool = "mutated"

	if m.Events()[0].Tool != "a" {
		t.Error("mutating the returned slice must not affect the sink")
	}
}

func TestMemory_ConcurrentRecord(t *testing.T) {
	m := NewMemory()
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.Record(Event{Tool: "concurrent"})
		}()
	}
	wg.Wait()
	if got := len(m.Events()); got != 20 {
		t.Errorf("expected 20 events, got %d", got)
	}
}

func TestLogSink_WritesStructuredLine(t *testing.T) {
	var buf bytes.Buffer
	s := NewLogSink(&buf, "info")

	s.Record(Event{
		Invocation: "inv-42",
		Tool:       "organize_folder",
		Phase:      PhaseExecuting,
		Message:    "executing",
		Fields:     map[string]interface{}{"moved": 3},
	})

	var line map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("expected one JSON log line: %v (%q)", err, buf.String())
	}
	if line["invocation"] != "inv-42" {
		t.Errorf("expected invocation field, got %v", line)
	}
	if line["tool"] != "organize_folder" {
		t.Errorf("expected tool field, got %v", line)
	}
	if line["phase"] != "executing" {
		t.Errorf("expected phase field, got %v", line)
	}
	if line["moved"] != float64(3) {
		t.Errorf("expected structured extras, got %v", line)
	}
	if line["message"] != "executing" {
		t.Errorf("expected message, got %v", line)
	}
}

func TestLogSink_SubStepOmitsPhase(t *testing.T) {
	var buf bytes.Buffer
	s := NewLogSink(&buf, "info")
	s.Record(Event{Invocation: "inv-1", Tool: "clean_system", Message: "cleaning category: cache"})

	var line map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatal(err)
	}
	if _, ok := line["phase"]; ok {
		t.Error("sub-step events should carry no phase field")
	}
}

func TestNewLogSink_BadLevelFallsBack(t *testing.T) {
	var buf bytes.Buffer
	s := NewLogSink(&buf, "extremely-verbose")
	s.Record(Event{Tool: "x", Message: "still logged"})
	if buf.Len() == 0 {
		t.Error("unparseable level should fall back to info, not discard")
	}
}

func TestInitAndDefault(t *testing.T) {
	old := Default()
	defer Init(old)

	m := NewMemory()
	Init(m)
	if Default() != Sink(m) {
		t.Error("Default should return the sink passed to Init")
	}

	Default().Record(Event{Tool: "via-default"})
	if len(m.Events()) != 1 {
		t.Error("events through Default should reach the installed sink")
	}
}
