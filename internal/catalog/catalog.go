// Package catalog defines the fixed constants of the COCOMO Intermediate
// ('81) model: the development-mode equation parameters and the cost-driver
// rating tables. All data is immutable after process start.
package catalog

import (
	"errors"
	"strings"
)

// Mode is one of the three COCOMO development modes.
type Mode string

const (
	ModeOrganic      Mode = "organic"
	ModeSemidetached Mode = "semidetached"
	ModeEmbedded     Mode = "embedded"
)

// ErrUnknownMode indicates a mode outside the three defined variants.
var ErrUnknownMode = errors.New("unknown development mode")

// Params holds the equation constants for one mode:
// effort = A * KLOC^B, duration = C * effort^D.
type Params struct {
	A float64
	B float64
	C float64
	D float64
}

// Level is a single rating level of a cost driver.
type Level struct {
	Code       string
	Multiplier float64
}

// Driver is one cost driver with its ordered rating levels. Not every driver
// defines the full VL..EH range; the N level always carries the nominal
// multiplier.
type Driver struct {
	Key     string
	Name    string
	Levels  []Level
	Nominal float64
}

var modeParams = map[Mode]Params{
	ModeOrganic:      {A: 2.4, B: 1.05, C: 2.5, D: 0.38},
	ModeSemidetached: {A: 3.0, B: 1.12, C: 2.5, D: 0.35},
	ModeEmbedded:     {A: 3.6, B: 1.20, C: 2.5, D: 0.32},
}

var modeOrder = []Mode{ModeOrganic, ModeSemidetached, ModeEmbedded}

var drivers = []Driver{
	{
		Key:  "RELY",
		Name: "Required Software Reliability",
		Levels: []Level{
			{"VL", 0.75}, {"L", 0.88}, {"N", 1.00}, {"H", 1.15}, {"VH", 1.40},
		},
		Nominal: 1.00,
	},
	{
		Key:  "DATA",
		Name: "Database Size/Program Size",
		Levels: []Level{
			{"L", 0.94}, {"N", 1.00}, {"H", 1.08}, {"VH", 1.16},
		},
		Nominal: 1.00,
	},
	{
		Key:  "CPLX",
		Name: "Product Complexity",
		Levels: []Level{
			{"VL", 0.70}, {"L", 0.85}, {"N", 1.00}, {"H", 1.15}, {"VH", 1.30}, {"EH", 1.65},
		},
		Nominal: 1.00,
	},
	{
		Key:  "TOOL",
		Name: "Use of Software Tools",
		Levels: []Level{
			{"VL", 1.24}, {"L", 1.10}, {"N", 1.00}, {"H", 0.91}, {"VH", 0.82},
		},
		Nominal: 1.00,
	},
	{
		Key:  "VIRT",
		Name: "Virtual Machine Volatility",
		Levels: []Level{
			{"L", 0.87}, {"N", 1.00}, {"H", 1.15}, {"VH", 1.30},
		},
		Nominal: 1.00,
	},
}

// ModeParams returns the equation constants for the given mode.
func ModeParams(mode Mode) (Params, error) {
	params, ok := modeParams[mode]
	if !ok {
		return Params{}, ErrUnknownMode
	}
	return params, nil
}

// Modes returns the three development modes in presentation order.
func Modes() []Mode {
	out := make([]Mode, len(modeOrder))
	copy(out, modeOrder)
	return out
}

// DisplayName returns the title-cased form of the mode for presentation.
func (m Mode) DisplayName() string {
	s := string(m)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// Drivers returns the five cost drivers in presentation order. Callers must
// not mutate the returned definitions.
func Drivers() []Driver {
	return drivers
}

// DriverByKey looks up a driver definition by its key (e.g. "RELY").
func DriverByKey(key string) (Driver, bool) {
	for _, d := range drivers {
		if d.Key == key {
			return d, true
		}
	}
	return Driver{}, false
}

// ValueForCode maps a rating code (e.g. "VH") to its multiplier.
func (d Driver) ValueForCode(code string) (float64, bool) {
	for _, level := range d.Levels {
		if level.Code == code {
			return level.Multiplier, true
		}
	}
	return 0, false
}

// HasValue reports whether v equals one of the driver's level multipliers.
// Comparison is exact: selections originate from this same table, so a
// correct caller round-trips bit-identical values.
func (d Driver) HasValue(v float64) bool {
	for _, level := range d.Levels {
		if level.Multiplier == v {
			return true
		}
	}
	return false
}
