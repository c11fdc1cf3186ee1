package method

import "fmt"

var (
	// ErrNotBracketed is returned when a bracketing method's precondition
	// f(a)*f(b) < 0 does not hold, either on the initial interval or after a
	// bracket update.
	ErrNotBracketed = fmt.Errorf("root not bracketed: f(a) and f(b) must have opposite signs")

	// ErrZeroDenominator is returned when a method's update rule would divide
	// by exactly zero (equal secant ordinates, a vanishing derivative, or a
	// zero modified-secant perturbation difference).
	ErrZeroDenominator = fmt.Errorf("division by zero")

	// ErrUnknownMethod is returned by Parse for unrecognized method names.
	ErrUnknownMethod = fmt.Errorf("unknown method")
)
