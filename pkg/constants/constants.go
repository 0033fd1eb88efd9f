// Package constants provides shared constants for the cocomo-estimate
// application.
package constants

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the web UI
	DefaultServerAddress = ":8080"
)

// Form defaults shown when no value has been supplied yet. These mirror the
// presets of the original estimation form.
const (
	// DefaultSizeKLOC is the prefilled project size in thousands of lines
	DefaultSizeKLOC = 10.0

	// DefaultMonthlyLaborCost is the prefilled cost of one person-month
	DefaultMonthlyLaborCost = 8000.0
)

// Presentation constants
const (
	// DisplayPrecision is the rounding precision for effort, duration, and
	// staffing (2 decimal places)
	DisplayPrecision = 100

	// EAFPrecision is the rounding precision for the effort adjustment
	// factor (3 decimal places)
	EAFPrecision = 1000

	// ComparisonTolerance is the tolerance for floating-point comparisons
	ComparisonTolerance = 1e-9
)
