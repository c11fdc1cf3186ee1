package method

import (
	"fmt"
	"math"
	"strings"

	"github.com/hupe1980/zof/polynomial"
)

// Method identifies one of the six root-finding iterations.
type Method int

const (
	// Bisection halves a sign-changing bracket each step.
	Bisection Method = iota
	// RegulaFalsi replaces the midpoint with the secant-line intercept of the
	// bracket endpoints.
	RegulaFalsi
	// Secant iterates on the last two estimates without a bracket.
	Secant
	// NewtonRaphson uses the analytic derivative of the coefficient vector.
	NewtonRaphson
	// FixedPoint treats the coefficient vector as an iteration function g and
	// computes x_next = g(x).
	FixedPoint
	// ModifiedSecant approximates the derivative with a proportional
	// perturbation h = delta*x.
	ModifiedSecant
)

// Methods returns all variants in menu order.
func Methods() []Method {
	return []Method{Bisection, RegulaFalsi, Secant, NewtonRaphson, FixedPoint, ModifiedSecant}
}

// String returns the canonical identifier used on the wire and in flags.
func (m Method) String() string {
	switch m {
	case Bisection:
		return "bisection"
	case RegulaFalsi:
		return "regula_falsi"
	case Secant:
		return "secant"
	case NewtonRaphson:
		return "newton"
	case FixedPoint:
		return "fixed_point"
	case ModifiedSecant:
		return "modified_secant"
	default:
		return "unknown"
	}
}

// DisplayName returns the human-readable name shown in menus and tables.
func (m Method) DisplayName() string {
	switch m {
	case Bisection:
		return "Bisection"
	case RegulaFalsi:
		return "Regula Falsi"
	case Secant:
		return "Secant"
	case NewtonRaphson:
		return "Newton-Raphson"
	case FixedPoint:
		return "Fixed Point"
	case ModifiedSecant:
		return "Modified Secant"
	default:
		return "Unknown"
	}
}

// Parse resolves a method identifier. It accepts the canonical names from
// String plus common spellings ("newton-raphson", "regula-falsi", case
// insensitive).
func Parse(s string) (Method, error) {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	switch normalized {
	case "bisection":
		return Bisection, nil
	case "regula_falsi", "false_position":
		return RegulaFalsi, nil
	case "secant":
		return Secant, nil
	case "newton", "newton_raphson":
		return NewtonRaphson, nil
	case "fixed_point", "fixedpoint":
		return FixedPoint, nil
	case "modified_secant", "mod_secant":
		return ModifiedSecant, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMethod, s)
	}
}

// State carries the per-iteration position of a method. Bracketing methods
// use A and B (Regula Falsi additionally threads the previous intercept
// through Prev for its error metric); the secant family uses Prev and Curr;
// single-point methods use Curr only. Step functions replace the value rather
// than mutating it.
type State struct {
	A    float64
	B    float64
	Prev float64
	Curr float64
}

// Extra holds method-specific data precomputed once before the loop: the
// derivative coefficients for Newton-Raphson and the perturbation fraction
// for Modified Secant. Other methods ignore it.
type Extra struct {
	Deriv polynomial.Polynomial
	Delta float64
}

// Row is one completed iteration in the trace: the 1-based iteration index
// plus the method-specific field values listed by Headers.
type Row struct {
	Iter   int                `json:"iter"`
	Values map[string]float64 `json:"values"`
}

// Headers returns the ordered field names each Row of this method carries,
// excluding the iteration index, which renderers prepend themselves.
func (m Method) Headers() []string {
	switch m {
	case Bisection, RegulaFalsi:
		return []string{"a", "b", "x_val", "f_x", "error"}
	case Secant:
		return []string{"x_prev", "x_curr", "x_val", "f_x", "error"}
	case NewtonRaphson:
		return []string{"x_curr", "f_x", "df_x", "x_val", "error"}
	case FixedPoint:
		return []string{"x_curr", "x_val", "error"}
	case ModifiedSecant:
		return []string{"x_curr", "f_x", "x_val", "error"}
	default:
		return nil
	}
}

// IsBracketing reports whether the method maintains a sign-changing interval.
func (m Method) IsBracketing() bool {
	return m == Bisection || m == RegulaFalsi
}

// NeedsSecondPoint reports whether the method requires a second initial value
// (an upper bound for bracketing methods, a second guess for Secant).
func (m Method) NeedsSecondPoint() bool {
	return m.IsBracketing() || m == Secant
}

// NeedsDelta reports whether the method consumes the perturbation fraction.
func (m Method) NeedsDelta() bool {
	return m == ModifiedSecant
}

// Init builds the initial State from the caller's guesses and validates the
// bracket precondition for bracketing methods. A precondition failure before
// the first step leaves the trace empty.
func (m Method) Init(p polynomial.Polynomial, x0, x1 float64) (State, error) {
	switch m {
	case Bisection, RegulaFalsi:
		if p.Evaluate(x0)*p.Evaluate(x1) >= 0 {
			return State{}, ErrNotBracketed
		}
		// Prev is NaN until Regula Falsi produces its first intercept; the
		// first-iteration error metric falls back to the bracket width.
		return State{A: x0, B: x1, Prev: math.NaN()}, nil
	case Secant:
		return State{Prev: x0, Curr: x1}, nil
	default:
		return State{Curr: x0}, nil
	}
}

// Step advances one iteration. It returns the replacement state, the trace
// row, the error magnitude, and the current root estimate. A non-nil error is
// fatal: the engine stops immediately without appending a row.
func (m Method) Step(p polynomial.Polynomial, s State, extra Extra) (State, Row, float64, float64, error) {
	switch m {
	case Bisection:
		return stepBisection(p, s)
	case RegulaFalsi:
		return stepRegulaFalsi(p, s)
	case Secant:
		return stepSecant(p, s)
	case NewtonRaphson:
		return stepNewton(p, s, extra)
	case FixedPoint:
		return stepFixedPoint(p, s)
	case ModifiedSecant:
		return stepModifiedSecant(p, s, extra)
	default:
		return s, Row{}, 0, 0, fmt.Errorf("%w: %d", ErrUnknownMethod, int(m))
	}
}
