package method

import (
	"math"

	"github.com/hupe1980/zof/polynomial"
)

// stepBisection halves the bracket, keeping the half where the sign changes.
// Its error magnitude is the bracket width |b-a|.
//
// The precondition f(a)*f(b) < 0 is re-validated every step rather than
// assumed from Init; a numerically lost bracket terminates the solve.
func stepBisection(p polynomial.Polynomial, s State) (State, Row, float64, float64, error) {
	fa := p.Evaluate(s.A)
	fb := p.Evaluate(s.B)

	if fa*fb >= 0 {
		return s, Row{}, 0, 0, ErrNotBracketed
	}

	mid := (s.A + s.B) / 2
	fMid := p.Evaluate(mid)
	errMag := math.Abs(s.B - s.A)

	next := State{A: mid, B: s.B}
	if fa*fMid < 0 {
		next = State{A: s.A, B: mid}
	}

	row := Row{Values: map[string]float64{
		"a":     s.A,
		"b":     s.B,
		"x_val": mid,
		"f_x":   fMid,
		"error": errMag,
	}}

	return next, row, errMag, mid, nil
}

// stepRegulaFalsi replaces the midpoint with the secant-line intercept of the
// bracket endpoints. Its error magnitude is |x_new - x_prev| against the
// previous intercept, falling back to the bracket width on the first
// iteration (State.Prev is NaN until an intercept exists).
func stepRegulaFalsi(p polynomial.Polynomial, s State) (State, Row, float64, float64, error) {
	fa := p.Evaluate(s.A)
	fb := p.Evaluate(s.B)

	if fa*fb >= 0 {
		return s, Row{}, 0, 0, ErrNotBracketed
	}

	xNew := (s.A*fb - s.B*fa) / (fb - fa)
	fNew := p.Evaluate(xNew)

	errMag := math.Abs(s.B - s.A)
	if !math.IsNaN(s.Prev) {
		errMag = math.Abs(xNew - s.Prev)
	}

	next := State{A: xNew, B: s.B, Prev: xNew}
	if fa*fNew < 0 {
		next = State{A: s.A, B: xNew, Prev: xNew}
	}

	row := Row{Values: map[string]float64{
		"a":     s.A,
		"b":     s.B,
		"x_val": xNew,
		"f_x":   fNew,
		"error": errMag,
	}}

	return next, row, errMag, xNew, nil
}
