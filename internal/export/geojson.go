// Package export renders calculation results as GeoJSON documents for
// downstream map tooling. The engine itself stays format-agnostic; this is
// the one collaborator-facing serialization the repository ships.
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/NhuNhui/GPS/internal/models"
)

// Geometry is a GeoJSON geometry object. Coordinates follow the GeoJSON
// axis order: longitude first.
type Geometry struct {
	Type        string `json:"type"`
	Coordinates any    `json:"coordinates"`
}

// Feature is a GeoJSON feature object.
type Feature struct {
	Type       string         `json:"type"`
	Geometry   Geometry       `json:"geometry"`
	Properties map[string]any `json:"properties"`
}

// FeatureCollection is a GeoJSON feature collection.
type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

// Scenario builds the target-scenario document for a calculation result:
// the observer point, the computed target point, and the line of sight
// between them, annotated with the measurement and the accuracy estimate.
func Scenario(result *models.CalculationResult) FeatureCollection {
	timestamp := time.Now().UTC().Format(time.RFC3339)

	observer := Feature{
		Type: "Feature",
		Geometry: Geometry{
			Type:        "Point",
			Coordinates: []float64{result.Observer.Longitude, result.Observer.Latitude},
		},
		Properties: map[string]any{
			"name":      "Observer",
			"type":      "observer",
			"timestamp": timestamp,
		},
	}

	target := Feature{
		Type: "Feature",
		Geometry: Geometry{
			Type:        "Point",
			Coordinates: []float64{result.Target.Longitude, result.Target.Latitude},
		},
		Properties: map[string]any{
			"name":              "Target",
			"type":              "target",
			"bearing_deg":       result.Measurement.BearingDeg,
			"distance_km":       result.Measurement.DistanceKm,
			"estimated_error_m": result.EstimatedErrorM,
			"timestamp":         timestamp,
		},
	}
	if result.Warning != "" {
		target.Properties["accuracy_warning"] = result.Warning
	}

	sightLine := Feature{
		Type: "Feature",
		Geometry: Geometry{
			Type: "LineString",
			Coordinates: [][]float64{
				{result.Observer.Longitude, result.Observer.Latitude},
				{result.Target.Longitude, result.Target.Latitude},
			},
		},
		Properties: map[string]any{
			"name": "Line of sight",
			"type": "sight_line",
		},
	}

	return FeatureCollection{
		Type:     "FeatureCollection",
		Features: []Feature{observer, target, sightLine},
	}
}

// WriteScenario writes the target-scenario GeoJSON for a result to the given
// path, creating parent directories as needed.
func WriteScenario(path string, result *models.CalculationResult) error {
	doc, err := json.MarshalIndent(Scenario(result), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode scenario: %w", err)
	}

	if err = os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	const filePerm = 0o644
	if err = os.WriteFile(path, doc, filePerm); err != nil {
		return fmt.Errorf("failed to write scenario file: %w", err)
	}

	return nil
}
