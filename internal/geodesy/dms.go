package geodesy

import (
	"math"

	"github.com/NhuNhui/GPS/internal/models"
)

// DMSToDecimal converts a degrees-minutes-seconds angle to decimal degrees.
// The sign is taken from the Degrees field; for angles smaller than one
// degree, where an integer zero cannot carry a sign, the Negative hemisphere
// flag decides.
func DMSToDecimal(angle models.DMSAngle) float64 {
	magnitude := math.Abs(float64(angle.Degrees)) + float64(angle.Minutes)/60 + angle.Seconds/3600
	if angle.Degrees < 0 || (angle.Degrees == 0 && angle.Negative) {
		return -magnitude
	}
	return magnitude
}

// DecimalToDMS converts decimal degrees to a degrees-minutes-seconds angle.
// Seconds are rounded to 2 decimal places; a value that rounds to 60.00
// carries into minutes, and minutes into degrees, so the result never shows
// 60 in either field.
func DecimalToDMS(decimal float64) models.DMSAngle {
	negative := math.Signbit(decimal)
	abs := math.Abs(decimal)

	deg := int(math.Floor(abs))
	minutesFloat := (abs - float64(deg)) * 60
	min := int(math.Floor(minutesFloat))
	sec := math.Round((minutesFloat-float64(min))*60*100) / 100

	if sec >= 60 {
		sec -= 60
		min++
	}
	if min >= 60 {
		min -= 60
		deg++
	}

	angle := models.DMSAngle{Degrees: deg, Minutes: min, Seconds: sec, Negative: negative}
	if negative {
		angle.Degrees = -deg
	}
	return angle
}
