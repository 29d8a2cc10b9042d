package cleanup

import "context"

// Report summarizes one engine run
type Report struct {
	// BytesFreed is how much disk space the run recovered (or would recover,
	// in preview mode). Zero is a valid outcome: an already-clean target
	// reports zero, not an error.
	BytesFreed uint64

	// Output is the tail of the engine's console output
	Output string
}

// Engine is the external disk-cleaning engine. Absence or failure to launch
// is the only fatal failure mode of the cleanup tool; per-category run errors
// are recoverable and reported inline.
type Engine interface {
	// Available returns nil if the engine can run; otherwise an error whose
	// message tells the operator what to install
	Available() error

	// Preview computes what the given categories would remove without
	// performing any mutation
	Preview(ctx context.Context, cats []Category) (*Report, error)

	// Clean removes the files of a single category. Called per category so
	// one failure does not abort the rest of the request.
	Clean(ctx context.Context, cat Category) (*Report, error)
}
