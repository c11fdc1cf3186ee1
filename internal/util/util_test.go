package util

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewID_Unique(t *testing.T) {
	assert.NotEqual(t, NewID(), NewID())
}

func TestFormatCell(t *testing.T) {
	assert.Equal(t, "1.414214", FormatCell(1.41421356))
	assert.Equal(t, "-2.000000", FormatCell(-2))
	assert.Equal(t, "+Inf", FormatCell(math.Inf(1)))
	assert.Equal(t, "NaN", FormatCell(math.NaN()))
}
