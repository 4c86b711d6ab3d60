package domain

import "math"

const (
	kmhPerMeterPerSecond   = 3.6
	knotsPerMeterPerSecond = 1.944
	degreesPerSector       = 22.5
)

var cardinals = [16]string{
	"N", "NNE", "NE", "ENE", "E", "ESE", "SE", "SSE",
	"S", "SSW", "SW", "WSW", "W", "WNW", "NW", "NNW",
}

// MetersPerSecondToKmh converts m/s to km/h.
func MetersPerSecondToKmh(v float64) float64 {
	return v * kmhPerMeterPerSecond
}

// MetersPerSecondToKnots converts m/s to knots.
func MetersPerSecondToKnots(v float64) float64 {
	return v * knotsPerMeterPerSecond
}

// DegreesToCardinal maps a bearing to one of 16 compass points.
// Bearings outside [0, 360) are wrapped first. Non-finite input returns "".
func DegreesToCardinal(degrees float64) string {
	if math.IsNaN(degrees) || math.IsInf(degrees, 0) {
		return ""
	}
	degrees = math.Mod(degrees, 360)
	if degrees < 0 {
		degrees += 360
	}
	index := int(math.Round(degrees/degreesPerSector)) % len(cardinals)
	return cardinals[index]
}
