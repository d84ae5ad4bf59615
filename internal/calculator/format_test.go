package calculator_test

import (
	"testing"

	"github.com/NhuNhui/GPS/internal/calculator"
	"github.com/NhuNhui/GPS/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestFormatDistance(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "250 m", calculator.FormatDistance(0.25))
	assert.Equal(t, "999 m", calculator.FormatDistance(0.999))
	assert.Equal(t, "1.00 km", calculator.FormatDistance(1))
	assert.Equal(t, "2.50 km", calculator.FormatDistance(2.5))
	assert.Equal(t, "150.00 km", calculator.FormatDistance(150))
}

func TestFormatBearing(t *testing.T) {
	t.Parallel()

	cases := []struct {
		bearing float64
		want    string
	}{
		{0, "0.0° N"},
		{45, "45.0° NE"},
		{90, "90.0° E"},
		{135, "135.0° SE"},
		{180, "180.0° S"},
		{225, "225.0° SW"},
		{270, "270.0° W"},
		{315, "315.0° NW"},
		{359.9, "359.9° N"},
		{22.4, "22.4° N"},
		{22.5, "22.5° NE"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, calculator.FormatBearing(tc.bearing), "bearing %v", tc.bearing)
	}
}

func TestFormatDMS(t *testing.T) {
	t.Parallel()

	north := models.DMSAngle{Degrees: 10, Minutes: 45, Seconds: 45.44}
	assert.Equal(t, `10°45'45.44"N`, calculator.FormatDMS(north, calculator.AxisLatitude))

	south := models.DMSAngle{Degrees: -33, Minutes: 52, Seconds: 7.68, Negative: true}
	assert.Equal(t, `33°52'07.68"S`, calculator.FormatDMS(south, calculator.AxisLatitude))

	east := models.DMSAngle{Degrees: 106, Minutes: 39, Seconds: 36.62}
	assert.Equal(t, `106°39'36.62"E`, calculator.FormatDMS(east, calculator.AxisLongitude))

	// Sub-degree west angles cannot carry a sign on the integer degrees;
	// the hemisphere flag decides.
	west := models.DMSAngle{Degrees: 0, Minutes: 30, Seconds: 0, Negative: true}
	assert.Equal(t, `0°30'00.00"W`, calculator.FormatDMS(west, calculator.AxisLongitude))
}
