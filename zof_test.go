package zof_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/zof"
	"github.com/hupe1980/zof/method"
	"github.com/hupe1980/zof/polynomial"
	"github.com/hupe1980/zof/solver"
)

func TestFacade_Solve(t *testing.T) {
	z := zof.New()

	res, err := z.Solve(context.Background(), solver.Request{
		Method:  method.NewtonRaphson,
		Coeffs:  polynomial.Polynomial{1, 0, -2},
		X0:      1,
		Tol:     1e-6,
		MaxIter: 20,
	})
	require.NoError(t, err)

	assert.True(t, res.Converged)
	require.NotNil(t, res.Root)
	assert.InDelta(t, math.Sqrt2, *res.Root, 1e-6)
}

func TestFacade_OptionsApply(t *testing.T) {
	z := zof.New(func(o *zof.Options) {
		o.MaxTrace = 3
	})

	// Divergent fixed point: the cap bounds the trace, not the request.
	res, err := z.Solve(context.Background(), solver.Request{
		Method:  method.FixedPoint,
		Coeffs:  polynomial.Polynomial{2, 1},
		X0:      1,
		Tol:     1e-6,
		MaxIter: 100,
	})
	require.NoError(t, err)
	assert.Len(t, res.Trace, 3)
}

func TestPackageLevelSolve(t *testing.T) {
	res, err := zof.Solve(context.Background(), solver.Request{
		Method:  method.Bisection,
		Coeffs:  polynomial.Polynomial{1, 0, -2},
		X0:      0,
		X1:      2,
		Tol:     1e-4,
		MaxIter: 50,
	})
	require.NoError(t, err)
	assert.True(t, res.Converged)
}
