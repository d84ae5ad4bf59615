package export_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/Flaque/filet"
	"github.com/NhuNhui/GPS/internal/export"
	"github.com/NhuNhui/GPS/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResult() *models.CalculationResult {
	return &models.CalculationResult{
		Observer: models.GeoPoint{Latitude: 10.762622, Longitude: 106.660172},
		Target:   models.GeoPoint{Latitude: 10.778519, Longitude: 106.676355},
		Measurement: models.Measurement{
			BearingDeg: 45,
			DistanceKm: 2.5,
		},
		EstimatedErrorM: 24.0,
	}
}

func TestScenario(t *testing.T) {
	t.Parallel()

	t.Run("three features in lon-lat order", func(t *testing.T) {
		t.Parallel()
		doc := export.Scenario(sampleResult())

		require.Equal(t, "FeatureCollection", doc.Type)
		require.Len(t, doc.Features, 3)

		observer := doc.Features[0]
		assert.Equal(t, "Point", observer.Geometry.Type)
		assert.Equal(t, []float64{106.660172, 10.762622}, observer.Geometry.Coordinates)
		assert.Equal(t, "observer", observer.Properties["type"])

		target := doc.Features[1]
		assert.Equal(t, []float64{106.676355, 10.778519}, target.Geometry.Coordinates)
		assert.Equal(t, "target", target.Properties["type"])
		assert.InDelta(t, 24.0, target.Properties["estimated_error_m"], 1e-9)

		sightLine := doc.Features[2]
		assert.Equal(t, "LineString", sightLine.Geometry.Type)
		assert.Equal(t, "sight_line", sightLine.Properties["type"])
	})

	t.Run("accuracy warning carried on target properties", func(t *testing.T) {
		t.Parallel()
		result := sampleResult()
		result.Warning = "distance 150.0 km exceeds 100 km"

		doc := export.Scenario(result)

		assert.Equal(t, result.Warning, doc.Features[1].Properties["accuracy_warning"])

		_, present := export.Scenario(sampleResult()).Features[1].Properties["accuracy_warning"]
		assert.False(t, present)
	})
}

func TestWriteScenario(t *testing.T) {
	defer filet.CleanUp(t)

	dir := filet.TmpDir(t, "")
	path := filepath.Join(dir, "output", "scenario.geojson")

	require.NoError(t, export.WriteScenario(path, sampleResult()))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc export.FeatureCollection
	require.NoError(t, json.Unmarshal(raw, &doc))
	assert.Equal(t, "FeatureCollection", doc.Type)
	assert.Len(t, doc.Features, 3)
}
