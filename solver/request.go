package solver

import (
	"fmt"

	"github.com/hupe1980/zof/method"
	"github.com/hupe1980/zof/polynomial"
)

// DefaultDelta is the Modified Secant perturbation fraction used when the
// caller leaves Delta unset.
const DefaultDelta = 0.01

// Request carries everything one solve call needs. X1 is the upper bracket
// bound for bracketing methods and the second guess for Secant; other methods
// ignore it. Delta is only read by Modified Secant.
type Request struct {
	Method  method.Method
	Coeffs  polynomial.Polynomial
	X0      float64
	X1      float64
	Delta   float64
	Tol     float64
	MaxIter int
}

// Validate rejects requests the engine must never run: empty coefficient
// vectors, non-positive tolerances or iteration budgets, and a non-positive
// delta for Modified Secant. Boundary layers are expected to catch malformed
// text before building a Request; Validate is the engine's last line.
func (r Request) Validate() error {
	if len(r.Coeffs) == 0 {
		return fmt.Errorf("coefficients must not be empty")
	}
	if r.Tol <= 0 {
		return fmt.Errorf("tolerance must be positive, got %g", r.Tol)
	}
	if r.MaxIter <= 0 {
		return fmt.Errorf("max iterations must be positive, got %d", r.MaxIter)
	}
	if r.Method.NeedsDelta() && r.Delta < 0 {
		return fmt.Errorf("delta must not be negative, got %g", r.Delta)
	}
	return nil
}

// withDefaults fills the optional delta.
func (r Request) withDefaults() Request {
	if r.Delta == 0 {
		r.Delta = DefaultDelta
	}
	return r
}
