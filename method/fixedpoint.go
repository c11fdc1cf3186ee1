package method

import (
	"math"

	"github.com/hupe1980/zof/polynomial"
)

// stepFixedPoint computes x_next = g(x), treating the coefficient vector as
// the iteration function g rather than the target polynomial. Its error
// magnitude is |x_next - x_curr|. There is no division, so the only exits are
// convergence or max-iteration exhaustion; divergence simply grows the error
// until the iteration budget runs out.
func stepFixedPoint(g polynomial.Polynomial, s State) (State, Row, float64, float64, error) {
	x := s.Curr
	xNext := g.Evaluate(x)
	errMag := math.Abs(xNext - x)

	row := Row{Values: map[string]float64{
		"x_curr": x,
		"x_val":  xNext,
		"error":  errMag,
	}}

	return State{Curr: xNext}, row, errMag, xNext, nil
}
