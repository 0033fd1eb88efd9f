// Package engine computes COCOMO Intermediate ('81) estimates. Estimate is a
// pure function of its input and the static catalog; it holds no state and is
// safe for unlimited concurrent callers.
package engine

import (
	"math"

	"github.com/swcost/cocomo-estimate/internal/catalog"
)

// Input carries one validated estimation request. Drivers maps a driver key
// (e.g. "RELY") to the selected multiplier; a missing key means the nominal
// rating.
type Input struct {
	SizeKLOC         float64
	Mode             catalog.Mode
	Drivers          map[string]float64
	MonthlyLaborCost float64
}

// Result is one computed estimate. Numeric fields are unrounded; rounding is
// a presentation concern.
type Result struct {
	EffortPersonMonths float64
	DurationMonths     float64
	AverageStaffing    float64
	TotalCost          float64
	EAF                float64
	SizeKLOC           float64
	Mode               string
}

// Estimate validates in against the catalog and computes the estimate.
// Validation happens before any arithmetic; the returned errors are the four
// kinds defined in errors.go.
func Estimate(in Input) (*Result, error) {
	params, err := catalog.ModeParams(in.Mode)
	if err != nil {
		return nil, err
	}

	if !positiveFinite(in.SizeKLOC) || !positiveFinite(in.MonthlyLaborCost) {
		return nil, ErrInvalidMagnitude
	}

	// Reject unknown driver keys before applying defaults so a typo never
	// silently becomes nominal.
	for key, value := range in.Drivers {
		if _, ok := catalog.DriverByKey(key); !ok {
			return nil, &DriverValueError{Key: key, Value: value}
		}
	}

	eaf := 1.0
	for _, driver := range catalog.Drivers() {
		value, selected := in.Drivers[driver.Key]
		if !selected {
			value = driver.Nominal
		} else if !driver.HasValue(value) {
			return nil, &DriverValueError{Key: driver.Key, Value: value}
		}
		eaf *= value
	}

	effort := params.A * math.Pow(in.SizeKLOC, params.B) * eaf
	duration := params.C * math.Pow(effort, params.D)
	if !(duration > 0) {
		return nil, ErrDegenerateSchedule
	}

	return &Result{
		EffortPersonMonths: effort,
		DurationMonths:     duration,
		AverageStaffing:    effort / duration,
		TotalCost:          effort * in.MonthlyLaborCost,
		EAF:                eaf,
		SizeKLOC:           in.SizeKLOC,
		Mode:               in.Mode.DisplayName(),
	}, nil
}

func positiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}
