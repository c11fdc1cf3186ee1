package solver

import (
	"time"

	"github.com/hupe1980/zof/method"
)

// Result is the immutable outcome of one solve call. Root is nil when a
// fatal condition prevented any estimate; on max-iteration exhaustion it
// carries the last estimate with Converged false. Trace holds one Row per
// completed iteration and is empty when the very first precondition check
// fails.
type Result struct {
	// ID correlates this solve across logs; it is the only field that differs
	// between two solves of identical input.
	ID string `json:"id"`

	// Method is the canonical identifier of the method that ran.
	Method string `json:"method"`

	// Trace is the append-only iteration history, at most MaxIter rows.
	Trace []method.Row `json:"trace"`

	// Root is the converged root or best available estimate, nil on fatal
	// precondition or denominator failures.
	Root *float64 `json:"root,omitempty"`

	// Converged reports whether the tolerance was met.
	Converged bool `json:"converged"`

	// ErrMsg carries the terminal condition for non-converged results:
	// precondition violations, zero denominators, or exhaustion.
	ErrMsg string `json:"error_msg,omitempty"`

	// Elapsed is wall-clock solve time.
	Elapsed time.Duration `json:"elapsed"`
}

// Iterations returns the number of completed iterations.
func (r Result) Iterations() int {
	return len(r.Trace)
}
