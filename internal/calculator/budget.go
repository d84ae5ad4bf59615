package calculator

import "math"

// Default measurement error sources for a handheld GPS fix with a compass
// bearing and a laser rangefinder distance.
const (
	DefaultGPSErrorM       = 10.0
	DefaultAzimuthErrorDeg = 0.5
	DefaultRangeErrorM     = 0.5
)

// ErrorBudget holds the independent measurement error sources that compound
// into the position accuracy estimate of a computed target.
type ErrorBudget struct {
	GPSErrorM       float64 // GPSErrorM is the horizontal error of the observer fix, meters.
	AzimuthErrorDeg float64 // AzimuthErrorDeg is the bearing measurement error, degrees.
	RangeErrorM     float64 // RangeErrorM is the distance measurement error, meters.
}

// DefaultErrorBudget returns the default error sources.
func DefaultErrorBudget() ErrorBudget {
	return ErrorBudget{
		GPSErrorM:       DefaultGPSErrorM,
		AzimuthErrorDeg: DefaultAzimuthErrorDeg,
		RangeErrorM:     DefaultRangeErrorM,
	}
}

// EstimateErrorM compounds the error sources by root sum square for a target
// at the given distance. The azimuth term is the cross-range displacement of
// the bearing error, so it grows linearly with distance.
func (b ErrorBudget) EstimateErrorM(distanceKm float64) float64 {
	crossRangeM := distanceKm * 1000 * math.Sin(b.AzimuthErrorDeg*math.Pi/180)
	return math.Sqrt(b.GPSErrorM*b.GPSErrorM + crossRangeM*crossRangeM + b.RangeErrorM*b.RangeErrorM)
}
