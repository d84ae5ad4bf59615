package models

// CalculationRequest is the sole input to the target calculation engine:
// an observer fix plus a directional offset measured from it.
type CalculationRequest struct {
	Observer   GeoPoint `json:"observer"`    // Observer is the position the measurement was taken from.
	BearingDeg float64  `json:"bearing_deg"` // BearingDeg is the azimuth in degrees clockwise from true north, [0, 360].
	DistanceKm float64  `json:"distance_km"` // DistanceKm is the slant distance to the target in kilometers.
}

// Measurement echoes the directional offset a result was computed from.
type Measurement struct {
	BearingDeg float64 `json:"bearing_deg"`
	DistanceKm float64 `json:"distance_km"`
}

// Verification holds the round-trip self-check of a calculation: the inverse
// solution is re-derived from the computed target and compared to the inputs.
// Both error terms should be near zero under IEEE double precision; they are
// exposed to the caller as a sanity signal rather than silently discarded.
type Verification struct {
	DistanceKm      float64 `json:"recomputed_distance_km"` // Distance recomputed from observer to target.
	BearingDeg      float64 `json:"recomputed_bearing_deg"` // Bearing recomputed from observer to target.
	DistanceErrorKm float64 `json:"distance_error_km"`      // Absolute difference against the requested distance.
	BearingErrorDeg float64 `json:"bearing_error_deg"`      // Absolute angular difference against the requested bearing.
}

// CalculationResult is the structured outcome of a single target calculation.
// It is produced once per request and never mutated after creation.
type CalculationResult struct {
	Observer     GeoPoint     `json:"observer"`
	ObserverDMS  DMSPoint     `json:"observer_dms"`
	Target       GeoPoint     `json:"target"`
	TargetDMS    DMSPoint     `json:"target_dms"`
	Measurement  Measurement  `json:"measurement"`
	Verification Verification `json:"verification"`

	// EstimatedErrorM is the root-sum-square compounding of the independent
	// measurement error sources, in meters.
	EstimatedErrorM float64 `json:"estimated_error_m"`

	// DistanceLabel and BearingLabel are display renderings of the
	// measurement (meters vs. kilometers, nearest-of-8 cardinal direction).
	DistanceLabel string `json:"distance_label"`
	BearingLabel  string `json:"bearing_label"`

	// Warning carries the non-fatal accuracy advisory for long-range
	// requests. Empty when the request is within the accuracy envelope.
	Warning string `json:"warning,omitempty"`
}
