package validation

import (
	"math"
	"strings"
	"testing"
)

func TestValidateOutputFormat(t *testing.T) {
	tests := []struct {
		name      string
		format    string
		wantError bool
	}{
		{"Pretty format", "pretty", false},
		{"CSV format", "csv", false},
		{"Unknown format", "xml", true},
		{"Empty format", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputFormat(tt.format)
			if tt.wantError && err == nil {
				t.Errorf("ValidateOutputFormat(%q) expected error but got none", tt.format)
			}
			if !tt.wantError && err != nil {
				t.Errorf("ValidateOutputFormat(%q) error = %v", tt.format, err)
			}
		})
	}
}

func TestValidateMagnitude(t *testing.T) {
	tests := []struct {
		name      string
		value     float64
		wantError string
	}{
		{"Positive value", 10.5, ""},
		{"Small positive value", 0.1, ""},
		{"Zero", 0, "must be positive"},
		{"Negative", -3, "must be positive"},
		{"NaN", math.NaN(), "must be a number"},
		{"Positive infinity", math.Inf(1), "must be a number"},
		{"Negative infinity", math.Inf(-1), "must be a number"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateMagnitude("size", tt.value)
			if tt.wantError == "" {
				if err != nil {
					t.Errorf("ValidateMagnitude(size, %g) error = %v", tt.value, err)
				}
				return
			}
			if err == nil {
				t.Fatalf("ValidateMagnitude(size, %g) expected error but got none", tt.value)
			}
			if !strings.Contains(err.Error(), tt.wantError) {
				t.Errorf("error = %v, want containing %q", err, tt.wantError)
			}
			if !strings.Contains(err.Error(), "size") {
				t.Errorf("error = %v, should name the field", err)
			}
		})
	}
}
