package models

// FixTask represents a queued target calculation with an ID and the raw
// measurement supplied by a field client.
type FixTask struct {
	ID          int     // ID is the unique identifier for the fix request.
	ObserverLat float64 // ObserverLat is the observer latitude in decimal degrees.
	ObserverLon float64 // ObserverLon is the observer longitude in decimal degrees.
	AzimuthDeg  float64 // AzimuthDeg is the measured azimuth in degrees from true north.
	DistanceKm  float64 // DistanceKm is the measured slant distance in kilometers.
}
