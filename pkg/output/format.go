// Package output provides utilities for formatting and displaying estimation
// results.
package output

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/swcost/cocomo-estimate/internal/engine"
	"github.com/swcost/cocomo-estimate/pkg/mathutil"
)

var printer = message.NewPrinter(language.English)

// Money formats a cost rounded to whole units with a currency symbol and
// thousands separators (e.g., "$2,701,600").
func Money(amount float64) string {
	return printer.Sprintf("$%.0f", mathutil.RoundWhole(amount))
}

// Decimal formats a value at two decimals with thousands separators.
func Decimal(value float64) string {
	return printer.Sprintf("%.2f", mathutil.Round2(value))
}

// PrettyFormat outputs a human-readable rather than machine-readable table.
func PrettyFormat(result *engine.Result) {
	fmt.Printf("--- COCOMO estimate: %s project, %s KLOC ---\n", result.Mode, Decimal(result.SizeKLOC))
	fmt.Printf("Effort           | %s PM\n", Decimal(result.EffortPersonMonths))
	fmt.Printf("Duration         | %s months\n", Decimal(result.DurationMonths))
	fmt.Printf("Average staffing | %s people\n", Decimal(result.AverageStaffing))
	fmt.Printf("Total cost       | %s\n", Money(result.TotalCost))
	fmt.Printf("EAF              | %.3f\n", mathutil.Round3(result.EAF))
}

// CsvFormat outputs in comma-separated value format.
func CsvFormat(result *engine.Result) {
	fmt.Printf("\"mode\",\"kloc\",\"eaf\",\"effort_pm\",\"duration_months\",\"avg_staffing\",\"total_cost\"\n")
	fmt.Printf("\"%s\",\"%.2f\",\"%.3f\",\"%.2f\",\"%.2f\",\"%.2f\",\"%.0f\"\n",
		result.Mode,
		result.SizeKLOC,
		mathutil.Round3(result.EAF),
		mathutil.Round2(result.EffortPersonMonths),
		mathutil.Round2(result.DurationMonths),
		mathutil.Round2(result.AverageStaffing),
		mathutil.RoundWhole(result.TotalCost),
	)
}
