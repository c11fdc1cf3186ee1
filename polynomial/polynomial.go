package polynomial

import (
	"fmt"
	"strconv"
	"strings"
)

// Polynomial holds real coefficients ordered highest degree first, so
// Polynomial{1, 0, -2} is x^2 - 2. The zero-length slice is invalid; Parse
// never produces it and callers constructing literals are expected to supply
// at least one coefficient.
type Polynomial []float64

// Parse converts whitespace-delimited coefficient text into a Polynomial.
// It returns an error for empty input and for any token that is not a finite
// real number.
func Parse(s string) (Polynomial, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return nil, fmt.Errorf("no coefficients provided")
	}

	p := make(Polynomial, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid coefficient %q: %w", f, err)
		}
		p[i] = v
	}

	return p, nil
}

// Degree returns the polynomial degree, len-1. A single coefficient is a
// constant of degree zero.
func (p Polynomial) Degree() int {
	return len(p) - 1
}

// Evaluate computes p(x) using Horner's method in O(degree) multiplications.
// Large inputs may overflow to +/-Inf; that is acceptable and surfaces as a
// non-convergent error value downstream.
func (p Polynomial) Evaluate(x float64) float64 {
	result := 0.0
	for _, c := range p {
		result = result*x + c
	}
	return result
}

// Derivative returns the coefficient vector of p', scaling each coefficient
// by its power. The derivative of a constant is the single coefficient 0.
func (p Polynomial) Derivative() Polynomial {
	n := p.Degree()
	if n < 1 {
		return Polynomial{0}
	}

	deriv := make(Polynomial, n)
	for i := 0; i < n; i++ {
		deriv[i] = p[i] * float64(n-i)
	}

	return deriv
}

// IsZero reports whether every coefficient is exactly zero.
func (p Polynomial) IsZero() bool {
	for _, c := range p {
		if c != 0 {
			return false
		}
	}
	return true
}

// String renders the polynomial in the display form used by both front ends,
// e.g. "1.00x^2 + -2.00". Zero terms are skipped; the all-zero polynomial
// renders as "0".
func (p Polynomial) String() string {
	n := p.Degree()

	var terms []string
	for i, c := range p {
		if c == 0 {
			continue
		}
		power := n - i
		if power > 0 {
			terms = append(terms, fmt.Sprintf("%.2fx^%d", c, power))
		} else {
			terms = append(terms, fmt.Sprintf("%.2f", c))
		}
	}

	if len(terms) == 0 {
		return "0"
	}

	return strings.Join(terms, " + ")
}
