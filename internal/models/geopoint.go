package models

// GeoPoint represents a geographic position in decimal degrees (WGS 84).
// Latitude is in [-90, 90]; longitude is always normalized into [-180, 180].
type GeoPoint struct {
	Latitude  float64 `json:"latitude"`  // Latitude of the geographical point, degrees north.
	Longitude float64 `json:"longitude"` // Longitude of the geographical point, degrees east.
}

// DMSAngle is a degrees-minutes-seconds rendering of an angle.
// The sign is carried on Degrees; Minutes and Seconds are always non-negative.
// An integer zero cannot carry the sign of a south or west angle smaller than
// one degree, so Negative records the hemisphere explicitly. It is set for
// every negative angle and is authoritative when Degrees is zero.
type DMSAngle struct {
	Degrees  int     `json:"degrees"`  // Signed whole degrees.
	Minutes  int     `json:"minutes"`  // Arc minutes in [0, 60).
	Seconds  float64 `json:"seconds"`  // Arc seconds in [0, 60), rounded to 2 decimal places.
	Negative bool    `json:"negative"` // Hemisphere flag for south/west angles.
}

// DMSPoint is the degrees-minutes-seconds rendering of a GeoPoint.
type DMSPoint struct {
	Latitude  DMSAngle `json:"latitude"`
	Longitude DMSAngle `json:"longitude"`
}
