package method

import (
	"fmt"
	"math"

	"github.com/hupe1980/zof/polynomial"
)

// stepSecant advances the two-point secant iteration. Its error magnitude is
// |x_next - x_curr|. A zero ordinate difference f(x_curr) = f(x_prev) is a
// fatal zero denominator.
func stepSecant(p polynomial.Polynomial, s State) (State, Row, float64, float64, error) {
	f0 := p.Evaluate(s.Prev)
	f1 := p.Evaluate(s.Curr)

	if f1-f0 == 0 {
		return s, Row{}, 0, 0, fmt.Errorf("%w: f(x_curr) - f(x_prev) = 0", ErrZeroDenominator)
	}

	xNext := s.Curr - f1*(s.Curr-s.Prev)/(f1-f0)
	fNext := p.Evaluate(xNext)
	errMag := math.Abs(xNext - s.Curr)

	row := Row{Values: map[string]float64{
		"x_prev": s.Prev,
		"x_curr": s.Curr,
		"x_val":  xNext,
		"f_x":    fNext,
		"error":  errMag,
	}}

	return State{Prev: s.Curr, Curr: xNext}, row, errMag, xNext, nil
}

// stepModifiedSecant approximates the derivative with the proportional
// perturbation h = delta*x, so x_next = x - h*f(x) / (f(x+h) - f(x)). Its
// error magnitude is |x_next - x_curr|. A zero perturbation difference
// (which includes the x = 0 case, where h collapses to 0) is a fatal zero
// denominator.
func stepModifiedSecant(p polynomial.Polynomial, s State, extra Extra) (State, Row, float64, float64, error) {
	x := s.Curr
	h := extra.Delta * x

	fx := p.Evaluate(x)
	fxh := p.Evaluate(x + h)

	denom := fxh - fx
	if denom == 0 {
		return s, Row{}, 0, 0, fmt.Errorf("%w: f(x+delta*x) - f(x) = 0", ErrZeroDenominator)
	}

	xNext := x - h*fx/denom
	errMag := math.Abs(xNext - x)

	row := Row{Values: map[string]float64{
		"x_curr": x,
		"f_x":    fx,
		"x_val":  xNext,
		"error":  errMag,
	}}

	return State{Curr: xNext}, row, errMag, xNext, nil
}
