// Package validation provides common validation utilities.
package validation

import (
	"fmt"
	"math"

	"github.com/swcost/cocomo-estimate/pkg/constants"
)

// ValidateOutputFormat checks if the output format is one of the supported formats.
func ValidateOutputFormat(format string) error {
	if format != constants.OutputFormatPretty && format != constants.OutputFormatCSV {
		return fmt.Errorf("expected output format of %s or %s, got %s",
			constants.OutputFormatPretty, constants.OutputFormatCSV, format)
	}
	return nil
}

// ValidateMagnitude checks that a named numeric input is a positive finite
// number. NaN and infinity count as non-numeric.
func ValidateMagnitude(name string, value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return fmt.Errorf("%s must be a number", name)
	}
	if value <= 0 {
		return fmt.Errorf("%s must be positive, got %g", name, value)
	}
	return nil
}
