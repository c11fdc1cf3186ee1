package method

import (
	"fmt"
	"math"

	"github.com/hupe1980/zof/polynomial"
)

// stepNewton advances one Newton-Raphson iteration using the precomputed
// derivative coefficients in extra. Its error magnitude is |x_next - x_curr|.
// A vanishing derivative is a fatal zero denominator.
func stepNewton(p polynomial.Polynomial, s State, extra Extra) (State, Row, float64, float64, error) {
	x := s.Curr
	fx := p.Evaluate(x)
	dfx := extra.Deriv.Evaluate(x)

	if dfx == 0 {
		return s, Row{}, 0, 0, fmt.Errorf("%w: derivative is zero at x=%g", ErrZeroDenominator, x)
	}

	xNext := x - fx/dfx
	errMag := math.Abs(xNext - x)

	row := Row{Values: map[string]float64{
		"x_curr": x,
		"f_x":    fx,
		"df_x":   dfx,
		"x_val":  xNext,
		"error":  errMag,
	}}

	return State{Curr: xNext}, row, errMag, xNext, nil
}
