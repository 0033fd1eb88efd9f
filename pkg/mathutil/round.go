// Package mathutil provides common mathematical utility functions.
package mathutil

import (
	"math"

	"github.com/swcost/cocomo-estimate/pkg/constants"
)

// Round2 rounds a value to two decimals, the display precision for effort,
// duration, and staffing figures.
func Round2(val float64) float64 {
	return math.Round(val*constants.DisplayPrecision) / constants.DisplayPrecision
}

// Round3 rounds a value to three decimals, the display precision for the
// effort adjustment factor.
func Round3(val float64) float64 {
	return math.Round(val*constants.EAFPrecision) / constants.EAFPrecision
}

// RoundWhole rounds a value to the nearest whole number, the display
// precision for cost figures.
func RoundWhole(val float64) float64 {
	return math.Round(val)
}

// WithinTolerance checks if two values are within a specified tolerance.
func WithinTolerance(val1, val2, tolerance float64) bool {
	return math.Abs(val1-val2) <= tolerance
}
