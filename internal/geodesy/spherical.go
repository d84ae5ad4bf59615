// Package geodesy implements the spherical-earth forward and inverse
// solutions and the angle unit conversions used by the target calculator.
// All functions are pure and safe for concurrent use.
package geodesy

import "math"

// EarthRadiusKm is the mean Earth radius used by the spherical model.
const EarthRadiusKm = 6371.0

const (
	radians = math.Pi / 180
	degrees = 180 / math.Pi
)

// DestinationPoint solves the spherical forward problem: given a start point,
// an initial bearing and a distance, it returns the destination point in
// decimal degrees. The result latitude stays within [-90, 90] even when the
// great circle crosses a pole, and the longitude is normalized into
// [-180, 180] unconditionally so antimeridian crossings wrap correctly.
func DestinationPoint(lat, lon, bearingDeg, distanceKm float64) (float64, float64) {
	delta := distanceKm / EarthRadiusKm
	theta := bearingDeg * radians
	phi1 := lat * radians

	sinPhi2 := math.Sin(phi1)*math.Cos(delta) + math.Cos(phi1)*math.Sin(delta)*math.Cos(theta)
	// Floating-point overshoot past ±1 would make Asin return NaN.
	sinPhi2 = clamp(sinPhi2, -1, 1)
	phi2 := math.Asin(sinPhi2)

	y := math.Sin(theta) * math.Sin(delta) * math.Cos(phi1)
	x := math.Cos(delta) - math.Sin(phi1)*sinPhi2
	lon2 := lon + math.Atan2(y, x)*degrees

	return phi2 * degrees, NormalizeLon(lon2)
}

// Distance returns the haversine great-circle distance between two points in
// kilometers. It is symmetric and returns 0 for identical points.
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	phi1 := lat1 * radians
	phi2 := lat2 * radians
	dPhi := (lat2 - lat1) * radians
	dLambda := (lon2 - lon1) * radians

	sinPhi := math.Sin(dPhi / 2)
	sinLambda := math.Sin(dLambda / 2)
	a := sinPhi*sinPhi + math.Cos(phi1)*math.Cos(phi2)*sinLambda*sinLambda
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKm * c
}

// Bearing returns the initial great-circle bearing from the first point to
// the second, in degrees clockwise from true north, mapped into [0, 360).
func Bearing(lat1, lon1, lat2, lon2 float64) float64 {
	phi1 := lat1 * radians
	phi2 := lat2 * radians
	dLambda := (lon2 - lon1) * radians

	y := math.Sin(dLambda) * math.Cos(phi2)
	x := math.Cos(phi1)*math.Sin(phi2) - math.Sin(phi1)*math.Cos(phi2)*math.Cos(dLambda)
	theta := math.Atan2(y, x) * degrees

	return math.Mod(theta+360, 360)
}

// NormalizeLon wraps a longitude into [-180, 180].
func NormalizeLon(lon float64) float64 {
	return math.Mod(lon+540, 360) - 180
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
