package domain

import "math"

// WindIntensity is a Beaufort-like classification of a wind speed.
type WindIntensity struct {
	Scale       int    `json:"scale"`
	Description string `json:"description"`
	Color       string `json:"color"` // hex presentation hint
}

// intensityTier covers speeds in [previous tier's upperKmh, upperKmh).
type intensityTier struct {
	upperKmh  float64
	intensity WindIntensity
}

var intensityTiers = []intensityTier{
	{1, WindIntensity{0, "Calm", "#87CEEB"}},
	{6, WindIntensity{1, "Light air", "#98FB98"}},
	{12, WindIntensity{2, "Light breeze", "#90EE90"}},
	{20, WindIntensity{3, "Gentle breeze", "#FFFF99"}},
	{29, WindIntensity{4, "Moderate breeze", "#FFD700"}},
	{39, WindIntensity{5, "Fresh breeze", "#FFA500"}},
	{50, WindIntensity{6, "Strong breeze", "#FF8C00"}},
	{62, WindIntensity{7, "Near gale", "#FF6347"}},
	{75, WindIntensity{8, "Gale", "#FF4500"}},
	{89, WindIntensity{9, "Strong gale", "#FF0000"}},
	{103, WindIntensity{10, "Storm", "#DC143C"}},
	{118, WindIntensity{11, "Violent storm", "#8B0000"}},
	{math.Inf(1), WindIntensity{12, "Hurricane", "#4B0082"}},
}

// ClassifyIntensity maps a speed in m/s onto the 0–12 scale. The scale is
// total over [0, ∞): negative speeds and NaN classify as Calm, and anything at
// or above 118 km/h is a Hurricane.
func ClassifyIntensity(speedMetersPerSecond float64) WindIntensity {
	if math.IsNaN(speedMetersPerSecond) {
		return intensityTiers[0].intensity
	}
	kmh := MetersPerSecondToKmh(speedMetersPerSecond)
	for _, tier := range intensityTiers {
		if kmh < tier.upperKmh {
			return tier.intensity
		}
	}
	return intensityTiers[len(intensityTiers)-1].intensity
}

// IntensityScale returns every tier in ascending order.
func IntensityScale() []WindIntensity {
	scale := make([]WindIntensity, len(intensityTiers))
	for i, tier := range intensityTiers {
		scale[i] = tier.intensity
	}
	return scale
}
