package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/zof/method"
	"github.com/hupe1980/zof/polynomial"
	"github.com/hupe1980/zof/solver"
)

func TestCenter(t *testing.T) {
	assert.Equal(t, "  ab ", center("ab", 5))
	assert.Equal(t, "abcdef", center("abcdef", 5))
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "Max iterations reached.", capitalize("max iterations reached"))
	assert.Equal(t, "", capitalize(""))
}

func TestRenderTable(t *testing.T) {
	p := polynomial.Polynomial{1, 0, -2}
	s, err := method.Bisection.Init(p, 0, 2)
	require.NoError(t, err)

	_, row, _, _, err := method.Bisection.Step(p, s, method.Extra{})
	require.NoError(t, err)
	row.Iter = 1

	out := renderTable(method.Bisection, []method.Row{row})
	assert.Contains(t, out, "1.000000") // midpoint x_val
	assert.Contains(t, out, "2.000000") // bracket width error
}

func TestRenderSummary(t *testing.T) {
	root := 1.41421356

	res := solver.Result{Converged: true, Root: &root}
	assert.Contains(t, renderSummary(res), "Converged")

	res = solver.Result{Root: &root, ErrMsg: solver.MaxIterationsMsg}
	assert.Contains(t, renderSummary(res), "Approx root")

	res = solver.Result{ErrMsg: "division by zero"}
	assert.Contains(t, renderSummary(res), "Error")
}
