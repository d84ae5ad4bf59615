// Package calculator validates target calculation requests, runs the
// spherical solutions and assembles verified, accuracy-annotated results.
package calculator

import (
	"errors"
	"fmt"
	"math"

	"github.com/NhuNhui/GPS/internal/models"
)

// AccuracyLimitKm is the slant distance beyond which the spherical model is
// considered degraded. Longer requests still compute, but carry a warning.
const AccuracyLimitKm = 100.0

// Validation failures for calculation requests and DMS angles.
var (
	ErrLatitudeRange  = errors.New("latitude out of range [-90, 90]")
	ErrLongitudeRange = errors.New("longitude out of range [-180, 180]")
	ErrBearingRange   = errors.New("bearing out of range [0, 360]")
	ErrDistanceRange  = errors.New("distance must be positive")
	ErrNotANumber     = errors.New("input is not a number")
	ErrMinutesRange   = errors.New("minutes out of range [0, 60)")
	ErrSecondsRange   = errors.New("seconds out of range [0, 60)")
	ErrDegreesRange   = errors.New("degrees out of range for axis")
)

// Axis identifies which coordinate axis a DMS angle belongs to, which
// decides its degree bounds.
type Axis string

const (
	AxisLatitude  Axis = "latitude"  // |degrees| <= 90
	AxisLongitude Axis = "longitude" // |degrees| <= 180
)

// Outcome is the result of validating a calculation request: valid, valid
// with a non-fatal accuracy warning, or invalid with a hard failure. It is
// never an ambiguous empty string. The zero value is valid.
type Outcome struct {
	err     error
	warning string
}

func valid() Outcome              { return Outcome{} }
func warn(message string) Outcome { return Outcome{warning: message} }
func invalid(err error) Outcome   { return Outcome{err: err} }

// OK reports whether the request may be computed. Warning outcomes are OK.
func (o Outcome) OK() bool { return o.err == nil }

// Err returns the hard validation failure, or nil.
func (o Outcome) Err() error { return o.err }

// Warning returns the non-fatal accuracy advisory and whether one is present.
func (o Outcome) Warning() (string, bool) { return o.warning, o.warning != "" }

// Validate checks a calculation request for well-formedness. Checks run in a
// fixed precedence order and the first failing check wins: latitude range,
// longitude range, bearing range, distance positivity, the non-fatal
// long-range accuracy warning, and finally a NaN guard. NaN inputs fall
// through every range comparison, so the final guard is what reports them.
func Validate(observer models.GeoPoint, bearingDeg, distanceKm float64) Outcome {
	if observer.Latitude < -90 || observer.Latitude > 90 {
		return invalid(fmt.Errorf("%w: got %v", ErrLatitudeRange, observer.Latitude))
	}
	if observer.Longitude < -180 || observer.Longitude > 180 {
		return invalid(fmt.Errorf("%w: got %v", ErrLongitudeRange, observer.Longitude))
	}
	if bearingDeg < 0 || bearingDeg > 360 {
		return invalid(fmt.Errorf("%w: got %v", ErrBearingRange, bearingDeg))
	}
	if distanceKm <= 0 {
		return invalid(fmt.Errorf("%w: got %v", ErrDistanceRange, distanceKm))
	}
	if isNaN(observer.Latitude, observer.Longitude, bearingDeg, distanceKm) {
		return invalid(ErrNotANumber)
	}
	if distanceKm > AccuracyLimitKm {
		return warn(fmt.Sprintf(
			"distance %.1f km exceeds %.0f km; spherical-earth accuracy degrades at long range",
			distanceKm, AccuracyLimitKm))
	}
	return valid()
}

// ValidateDMS checks a degrees-minutes-seconds triple against the bounds of
// the given axis.
func ValidateDMS(deg, min int, sec float64, axis Axis) error {
	limit := 90
	if axis == AxisLongitude {
		limit = 180
	}
	if deg < -limit || deg > limit {
		return fmt.Errorf("%w: %s degrees %d outside [-%d, %d]", ErrDegreesRange, axis, deg, limit, limit)
	}
	if min < 0 || min >= 60 {
		return fmt.Errorf("%w: got %d", ErrMinutesRange, min)
	}
	if sec < 0 || sec >= 60 || math.IsNaN(sec) {
		return fmt.Errorf("%w: got %v", ErrSecondsRange, sec)
	}
	return nil
}

func isNaN(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) {
			return true
		}
	}
	return false
}
