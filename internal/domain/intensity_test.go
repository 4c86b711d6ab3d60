package domain

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func kmh(v float64) float64 { return v / kmhPerMeterPerSecond }

func TestClassifyIntensity(t *testing.T) {
	tests := []struct {
		name  string
		speed float64
		want  WindIntensity
	}{
		{"zero", 0, WindIntensity{0, "Calm", "#87CEEB"}},
		{"light air", kmh(3), WindIntensity{1, "Light air", "#98FB98"}},
		{"light breeze", kmh(8), WindIntensity{2, "Light breeze", "#90EE90"}},
		{"gentle breeze", 5, WindIntensity{3, "Gentle breeze", "#FFFF99"}},
		{"moderate breeze", kmh(25), WindIntensity{4, "Moderate breeze", "#FFD700"}},
		{"fresh breeze", 10, WindIntensity{5, "Fresh breeze", "#FFA500"}},
		{"strong breeze", kmh(45), WindIntensity{6, "Strong breeze", "#FF8C00"}},
		{"near gale", 15, WindIntensity{7, "Near gale", "#FF6347"}},
		{"gale", 20, WindIntensity{8, "Gale", "#FF4500"}},
		{"strong gale", kmh(80), WindIntensity{9, "Strong gale", "#FF0000"}},
		{"storm", kmh(100), WindIntensity{10, "Storm", "#DC143C"}},
		{"violent storm", kmh(110), WindIntensity{11, "Violent storm", "#8B0000"}},
		{"hurricane", 40, WindIntensity{12, "Hurricane", "#4B0082"}},
		{"far above scale", 1000, WindIntensity{12, "Hurricane", "#4B0082"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, ClassifyIntensity(tt.speed)); diff != "" {
				t.Errorf("ClassifyIntensity(%v) mismatch (-want +got):\n%s", tt.speed, diff)
			}
		})
	}
}

func TestClassifyIntensity_TierBoundaries(t *testing.T) {
	uppers := []float64{1, 6, 12, 20, 29, 39, 50, 62, 75, 89, 103, 118}
	for i, upper := range uppers {
		assert.Equal(t, i, ClassifyIntensity(kmh(upper-0.01)).Scale, "just below %v km/h", upper)
		assert.Equal(t, i+1, ClassifyIntensity(kmh(upper+0.01)).Scale, "just above %v km/h", upper)
	}
}

func TestClassifyIntensity_MonotonicAndTotal(t *testing.T) {
	prev := 0
	for s := 0.0; s <= 60; s += 0.05 {
		scale := ClassifyIntensity(s).Scale
		assert.GreaterOrEqual(t, scale, prev, "speed=%v", s)
		assert.GreaterOrEqual(t, scale, 0)
		assert.LessOrEqual(t, scale, 12)
		prev = scale
	}
	assert.Equal(t, 12, prev)
}

func TestClassifyIntensity_OutOfDomain(t *testing.T) {
	assert.Equal(t, 0, ClassifyIntensity(-3).Scale)
	assert.Equal(t, 0, ClassifyIntensity(math.NaN()).Scale)
	assert.Equal(t, 12, ClassifyIntensity(math.Inf(1)).Scale)
}

func TestIntensityScale(t *testing.T) {
	scale := IntensityScale()
	assert.Len(t, scale, 13)
	for i, tier := range scale {
		assert.Equal(t, i, tier.Scale)
		assert.NotEmpty(t, tier.Description)
		assert.Regexp(t, `^#[0-9A-F]{6}$`, tier.Color)
	}

	// Returned slice is a copy.
	scale[0].Description = "mutated"
	assert.Equal(t, "Calm", IntensityScale()[0].Description)
}
