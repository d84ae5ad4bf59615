package calculator

import (
	"math"

	"github.com/NhuNhui/GPS/internal/geodesy"
	"github.com/NhuNhui/GPS/internal/models"
)

// Calculator computes target coordinates from an observer fix and a
// directional offset. It is stateless apart from its error budget and is
// safe for concurrent use.
type Calculator struct {
	budget ErrorBudget
}

// New returns a Calculator that annotates results using the given error
// budget.
func New(budget ErrorBudget) *Calculator {
	return &Calculator{budget: budget}
}

// CalculateTarget validates the request, solves the spherical forward
// problem, re-derives distance and bearing from the computed target as a
// round-trip self-check, and returns the assembled result with its accuracy
// estimate. A hard validation failure returns the diagnostic error and no
// result; the long-range accuracy advisory is carried on the result instead.
func (c *Calculator) CalculateTarget(req models.CalculationRequest) (*models.CalculationResult, error) {
	outcome := Validate(req.Observer, req.BearingDeg, req.DistanceKm)
	if err := outcome.Err(); err != nil {
		return nil, err
	}

	lat, lon := geodesy.DestinationPoint(
		req.Observer.Latitude, req.Observer.Longitude, req.BearingDeg, req.DistanceKm,
	)
	target := models.GeoPoint{Latitude: lat, Longitude: lon}

	verifiedDistance := geodesy.Distance(
		req.Observer.Latitude, req.Observer.Longitude, target.Latitude, target.Longitude,
	)

	// The inverse bearing is undefined when observer and target coincide;
	// report the requested bearing with zero error instead of a spurious
	// delta.
	verifiedBearing := req.BearingDeg
	bearingError := 0.0
	if verifiedDistance > 0 {
		verifiedBearing = geodesy.Bearing(
			req.Observer.Latitude, req.Observer.Longitude, target.Latitude, target.Longitude,
		)
		bearingError = angularDelta(req.BearingDeg, verifiedBearing)
	}

	result := &models.CalculationResult{
		Observer:    req.Observer,
		ObserverDMS: toDMSPoint(req.Observer),
		Target:      target,
		TargetDMS:   toDMSPoint(target),
		Measurement: models.Measurement{
			BearingDeg: req.BearingDeg,
			DistanceKm: req.DistanceKm,
		},
		Verification: models.Verification{
			DistanceKm:      verifiedDistance,
			BearingDeg:      verifiedBearing,
			DistanceErrorKm: math.Abs(verifiedDistance - req.DistanceKm),
			BearingErrorDeg: bearingError,
		},
		EstimatedErrorM: c.budget.EstimateErrorM(req.DistanceKm),
		DistanceLabel:   FormatDistance(req.DistanceKm),
		BearingLabel:    FormatBearing(req.BearingDeg),
	}

	if warning, ok := outcome.Warning(); ok {
		result.Warning = warning
	}

	return result, nil
}

// Budget returns the error budget the calculator annotates results with.
func (c *Calculator) Budget() ErrorBudget {
	return c.budget
}

func toDMSPoint(p models.GeoPoint) models.DMSPoint {
	return models.DMSPoint{
		Latitude:  geodesy.DecimalToDMS(p.Latitude),
		Longitude: geodesy.DecimalToDMS(p.Longitude),
	}
}

// angularDelta returns the absolute difference between two bearings, taking
// the short way around the circle so 359.9° and 0.1° differ by 0.2°.
func angularDelta(a, b float64) float64 {
	d := math.Abs(a - b)
	if d > 180 {
		d = 360 - d
	}
	return d
}
