package polynomial

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	p, err := Parse("1 0 -2")
	require.NoError(t, err)
	assert.Equal(t, Polynomial{1, 0, -2}, p)
	assert.Equal(t, 2, p.Degree())
}

func TestParse_Whitespace(t *testing.T) {
	p, err := Parse("  3.5\t-1  \n 0.25 ")
	require.NoError(t, err)
	assert.Equal(t, Polynomial{3.5, -1, 0.25}, p)
}

func TestParse_Empty(t *testing.T) {
	_, err := Parse("   ")
	assert.Error(t, err)
}

func TestParse_NonNumeric(t *testing.T) {
	_, err := Parse("1 two 3")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "two")
}

func TestEvaluate(t *testing.T) {
	// x^2 - 2
	p := Polynomial{1, 0, -2}

	assert.InDelta(t, -2.0, p.Evaluate(0), 1e-12)
	assert.InDelta(t, -1.0, p.Evaluate(1), 1e-12)
	assert.InDelta(t, 2.0, p.Evaluate(2), 1e-12)
	assert.InDelta(t, 0.0, p.Evaluate(math.Sqrt2), 1e-12)
}

func TestEvaluate_Constant(t *testing.T) {
	p := Polynomial{7.5}
	for _, x := range []float64{-100, 0, 0.5, 42} {
		assert.Equal(t, 7.5, p.Evaluate(x))
	}
}

func TestDerivative(t *testing.T) {
	// d/dx (a x^2 + b x + c) = 2a x + b
	p := Polynomial{3, -4, 5}
	assert.Equal(t, Polynomial{6, -4}, p.Derivative())
}

func TestDerivative_Cubic(t *testing.T) {
	p := Polynomial{2, 0, -1, 7}
	assert.Equal(t, Polynomial{6, 0, -1}, p.Derivative())
}

func TestDerivative_Constant(t *testing.T) {
	p := Polynomial{9}
	assert.Equal(t, Polynomial{0}, p.Derivative())
}

func TestDerivative_DoesNotMutate(t *testing.T) {
	p := Polynomial{1, 2, 3}
	_ = p.Derivative()
	assert.Equal(t, Polynomial{1, 2, 3}, p)
}

func TestString(t *testing.T) {
	assert.Equal(t, "1.00x^2 + -2.00", Polynomial{1, 0, -2}.String())
	assert.Equal(t, "2.50x^1 + 1.00", Polynomial{2.5, 1}.String())
	assert.Equal(t, "4.00", Polynomial{4}.String())
	assert.Equal(t, "0", Polynomial{0, 0, 0}.String())
}

func TestIsZero(t *testing.T) {
	assert.True(t, Polynomial{0, 0}.IsZero())
	assert.False(t, Polynomial{0, 1}.IsZero())
}
