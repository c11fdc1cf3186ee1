// Package util holds small unexported helpers shared by the solver and both
// front ends. This lives in internal to avoid committing to public API
// stability prematurely.
package util

import (
	"math"
	"strconv"

	"github.com/google/uuid"
)

// NewID returns a fresh identifier for correlating a solve call across logs
// and results.
func NewID() string {
	return uuid.NewString()
}

// FormatCell renders a table cell value with six decimal places, the
// precision both front ends display. Non-finite values render as their Go
// names (+Inf, NaN) rather than a misleading number.
func FormatCell(v float64) string {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strconv.FormatFloat(v, 'f', 6, 64)
}
