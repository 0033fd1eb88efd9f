package engine

import (
	"errors"
	"fmt"

	"github.com/swcost/cocomo-estimate/internal/catalog"
)

// Estimation failures are all input-validation errors; the computation itself
// cannot fail once inputs are validated.
var (
	// ErrInvalidMode indicates a development mode outside the catalog.
	ErrInvalidMode = catalog.ErrUnknownMode

	// ErrInvalidMagnitude indicates a non-positive or non-numeric size or
	// labor cost.
	ErrInvalidMagnitude = errors.New("size and labor cost must be positive numbers")

	// ErrInvalidDriverValue indicates a cost-driver selection that does not
	// match any defined rating level. Use errors.As with *DriverValueError to
	// recover the offending key.
	ErrInvalidDriverValue = errors.New("driver value does not match a defined rating level")

	// ErrDegenerateSchedule indicates a computed duration that is not
	// positive. Unreachable with valid catalog constants; kept so a bad
	// constant can never surface as NaN or infinity in a result.
	ErrDegenerateSchedule = errors.New("computed schedule duration is not positive")
)

// DriverValueError reports which cost driver carried an undefined value.
type DriverValueError struct {
	Key   string
	Value float64
}

func (e *DriverValueError) Error() string {
	return fmt.Sprintf("driver %s: value %g does not match a defined rating level", e.Key, e.Value)
}

func (e *DriverValueError) Unwrap() error {
	return ErrInvalidDriverValue
}
