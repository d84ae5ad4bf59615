package calculator

import (
	"fmt"
	"math"

	"github.com/NhuNhui/GPS/internal/models"
)

var compassPoints = []string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

// FormatDistance renders a distance for display: meters below 1 km,
// kilometers at or above.
func FormatDistance(distanceKm float64) string {
	if distanceKm < 1 {
		return fmt.Sprintf("%.0f m", distanceKm*1000)
	}
	return fmt.Sprintf("%.2f km", distanceKm)
}

// FormatBearing renders a bearing for display with its nearest-of-8 cardinal
// direction label, e.g. "45.0° NE".
func FormatBearing(bearingDeg float64) string {
	idx := int(math.Mod(bearingDeg+22.5, 360)/45) % 8
	return fmt.Sprintf("%.1f° %s", bearingDeg, compassPoints[idx])
}

// FormatDMS renders a DMS angle with the hemisphere letter of its axis,
// e.g. `10°45'45.44"N`.
func FormatDMS(angle models.DMSAngle, axis Axis) string {
	hemisphere := "N"
	negative := angle.Degrees < 0 || (angle.Degrees == 0 && angle.Negative)
	switch {
	case axis == AxisLatitude && negative:
		hemisphere = "S"
	case axis == AxisLongitude && !negative:
		hemisphere = "E"
	case axis == AxisLongitude && negative:
		hemisphere = "W"
	}

	deg := angle.Degrees
	if deg < 0 {
		deg = -deg
	}
	return fmt.Sprintf("%d°%02d'%05.2f\"%s", deg, angle.Minutes, angle.Seconds, hemisphere)
}
