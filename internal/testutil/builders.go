package testutil

import (
	"github.com/hupe1980/zof/method"
	"github.com/hupe1980/zof/polynomial"
	"github.com/hupe1980/zof/solver"
)

// SqrtTwoPoly is x^2 - 2, whose positive root is sqrt(2).
func SqrtTwoPoly() polynomial.Polynomial {
	return polynomial.Polynomial{1, 0, -2}
}

// AlwaysPositivePoly is x^2 + 2, which has no real root and brackets nothing.
func AlwaysPositivePoly() polynomial.Polynomial {
	return polynomial.Polynomial{1, 0, 2}
}

// FlatAtZeroPoly is x^2, whose derivative vanishes at the origin.
func FlatAtZeroPoly() polynomial.Polynomial {
	return polynomial.Polynomial{1, 0, 0}
}

// NewRequest builds a solve request with the suite's defaults (tolerance
// 1e-6, 50 iterations) that override functions can adjust.
func NewRequest(m method.Method, p polynomial.Polynomial, optFns ...func(r *solver.Request)) solver.Request {
	req := solver.Request{
		Method:  m,
		Coeffs:  p,
		Tol:     1e-6,
		MaxIter: 50,
	}

	for _, fn := range optFns {
		fn(&req)
	}

	return req
}
