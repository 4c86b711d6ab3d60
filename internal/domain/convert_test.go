package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMetersPerSecondToKmh(t *testing.T) {
	assert.InDelta(t, 36.0, MetersPerSecondToKmh(10), 1e-9)
	assert.Equal(t, 0.0, MetersPerSecondToKmh(0))
}

func TestMetersPerSecondToKnots(t *testing.T) {
	assert.InDelta(t, 19.44, MetersPerSecondToKnots(10), 1e-9)
	assert.InDelta(t, 1.944, MetersPerSecondToKnots(1), 1e-9)
}

func TestDegreesToCardinal(t *testing.T) {
	tests := []struct {
		degrees float64
		want    string
	}{
		{0, "N"},
		{359, "N"},
		{360, "N"},
		{11.24, "N"},
		{11.25, "NNE"},
		{22.5, "NNE"},
		{45, "NE"},
		{67.5, "ENE"},
		{90, "E"},
		{112.5, "ESE"},
		{135, "SE"},
		{157.5, "SSE"},
		{180, "S"},
		{202.5, "SSW"},
		{225, "SW"},
		{247.5, "WSW"},
		{270, "W"},
		{292.5, "WNW"},
		{315, "NW"},
		{337.5, "NNW"},
		{348.75, "N"},
		{-90, "W"},
		{450, "E"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DegreesToCardinal(tt.degrees), "degrees=%v", tt.degrees)
	}
}

func TestDegreesToCardinal_NonFinite(t *testing.T) {
	assert.Empty(t, DegreesToCardinal(math.NaN()))
	assert.Empty(t, DegreesToCardinal(math.Inf(1)))
	assert.Empty(t, DegreesToCardinal(math.Inf(-1)))
}

func TestDegreesToCardinal_Pure(t *testing.T) {
	for d := 0.0; d < 360; d += 7.3 {
		assert.Equal(t, DegreesToCardinal(d), DegreesToCardinal(d))
	}
}
