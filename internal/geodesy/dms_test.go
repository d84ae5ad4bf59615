package geodesy_test

import (
	"testing"

	"github.com/NhuNhui/GPS/internal/geodesy"
	"github.com/NhuNhui/GPS/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestDMSToDecimal(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		angle models.DMSAngle
		want  float64
	}{
		{"positive", models.DMSAngle{Degrees: 10, Minutes: 45, Seconds: 45.4392}, 10.762622},
		{"negative on degrees", models.DMSAngle{Degrees: -33, Minutes: 52, Seconds: 7.68}, -33.8688},
		{"whole degrees", models.DMSAngle{Degrees: 106}, 106},
		{"zero", models.DMSAngle{}, 0},
		{"south of less than one degree", models.DMSAngle{Degrees: 0, Minutes: 30, Seconds: 29.88, Negative: true}, -0.5083},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.InDelta(t, tc.want, geodesy.DMSToDecimal(tc.angle), 1e-6)
		})
	}
}

func TestDecimalToDMS(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		decimal float64
		want    models.DMSAngle
	}{
		{"positive", 10.762622, models.DMSAngle{Degrees: 10, Minutes: 45, Seconds: 45.44}},
		{"longitude magnitude", 106.660172, models.DMSAngle{Degrees: 106, Minutes: 39, Seconds: 36.62}},
		{"negative", -33.8688, models.DMSAngle{Degrees: -33, Minutes: 52, Seconds: 7.68, Negative: true}},
		{"sub-degree south keeps hemisphere flag", -0.5083, models.DMSAngle{Degrees: 0, Minutes: 30, Seconds: 29.88, Negative: true}},
		{"seconds round-up carries to minutes", 10.7499999, models.DMSAngle{Degrees: 10, Minutes: 45, Seconds: 0}},
		{"carry propagates to degrees", 10.9999999, models.DMSAngle{Degrees: 11, Minutes: 0, Seconds: 0}},
		{"exact degree boundary", 31.0, models.DMSAngle{Degrees: 31}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := geodesy.DecimalToDMS(tc.decimal)

			assert.Equal(t, tc.want.Degrees, got.Degrees)
			assert.Equal(t, tc.want.Minutes, got.Minutes)
			assert.InDelta(t, tc.want.Seconds, got.Seconds, 0.01)
			assert.Equal(t, tc.want.Negative, got.Negative)
			assert.Less(t, got.Seconds, 60.0)
			assert.Less(t, got.Minutes, 60)
		})
	}
}

func TestDMSRoundTrip(t *testing.T) {
	t.Parallel()

	angles := []models.DMSAngle{
		{Degrees: 10, Minutes: 45, Seconds: 45.44},
		{Degrees: 0, Minutes: 0, Seconds: 0.01},
		{Degrees: -89, Minutes: 59, Seconds: 59.99},
		{Degrees: 179, Minutes: 59, Seconds: 59.99},
		{Degrees: 0, Minutes: 30, Seconds: 0, Negative: true},
		{Degrees: -106, Minutes: 39, Seconds: 36.62},
	}

	for _, angle := range angles {
		got := geodesy.DecimalToDMS(geodesy.DMSToDecimal(angle))

		assert.Equal(t, angle.Degrees, got.Degrees, "degrees for %+v", angle)
		assert.Equal(t, angle.Minutes, got.Minutes, "minutes for %+v", angle)
		assert.InDelta(t, angle.Seconds, got.Seconds, 0.01, "seconds for %+v", angle)
	}
}
