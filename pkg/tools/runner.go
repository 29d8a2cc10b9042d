package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/tidybot/tidybot/pkg/progress"
)

// Runner enforces the calling convention around every tool invocation:
// arguments are validated against the tool's schema before any side effect,
// every phase transition is reported to the progress sink, and no fault
// (not even a panic inside a tool) propagates to the caller. The agent
// runtime always gets a Result back.
type Runner struct {
	registry *ToolRegistry
	sink     progress.Sink
}

// NewRunner creates a runner over the given registry. A nil sink uses the
// process-wide default.
func NewRunner(registry *ToolRegistry, sink progress.Sink) *Runner {
	if sink == nil {
		sink = progress.Default()
	}
	return &Runner{registry: registry, sink: sink}
}

// Invoke runs the named tool with the given arguments. Every exit path
// returns a Result; callers never see an error or a panic.
func (r *Runner) Invoke(ctx context.Context, name string, args map[string]interface{}) (result *Result) {
	inv := uuid.NewString()

	r.record(inv, name, progress.PhaseReceived, "invocation received", map[string]interface{}{
		"args": fmt.Sprintf("%v", args),
	})

	tool, ok := r.registry.Get(name)
	if !ok {
		result = ErrorResult(fmt.Sprintf(
			"unknown tool %q: available tools are %s",
			name, strings.Join(r.registry.ListNames(), ", ")))
		r.record(inv, name, progress.PhaseFailed, result.Error, nil)
		return result
	}

	if msg := ValidateArgs(tool.InputSchema(), args); msg != "" {
		result = ErrorResult(msg)
		r.record(inv, name, progress.PhaseFailed, msg, nil)
		return result
	}
	r.record(inv, name, progress.PhaseValidated, "arguments validated", nil)

	defer func() {
		if rec := recover(); rec != nil {
			result = ErrorResult(fmt.Sprintf("tool %q panicked: %v; retrying with the same arguments is safe", name, rec))
			r.record(inv, name, progress.PhaseFailed, result.Error, nil)
		}
	}()

	r.record(inv, name, progress.PhaseExecuting, "executing", nil)

	result, err := tool.Execute(withInvocation(ctx, inv), args)
	if err != nil {
		// Tools are expected to flatten their own failures into the Result;
		// an error here is invoker plumbing gone wrong, still caught.
		result = ErrorResult(fmt.Sprintf("tool %q failed: %v", name, err))
	}
	if result == nil {
		result = ErrorResult(fmt.Sprintf("tool %q returned no result", name))
	}

	phase := progress.PhaseCompleted
	msg := result.Output
	if !result.Success {
		phase = progress.PhaseFailed
		msg = result.Error
	}
	r.record(inv, name, phase, msg, map[string]interface{}{"success": result.Success})

	return result
}

func (r *Runner) record(inv, tool string, phase progress.Phase, msg string, fields map[string]interface{}) {
	r.sink.Record(progress.Event{
		Invocation: inv,
		Tool:       tool,
		Phase:      phase,
		Message:    msg,
		Fields:     fields,
	})
}

type invocationKey struct{}

// withInvocation tags the context with the invocation ID so tools can emit
// correlated sub-step events.
func withInvocation(ctx context.Context, inv string) context.Context {
	return context.WithValue(ctx, invocationKey{}, inv)
}

// InvocationID returns the invocation ID carried by the context, or "".
func InvocationID(ctx context.Context) string {
	id, _ := ctx.Value(invocationKey{}).(string)
	return id
}
