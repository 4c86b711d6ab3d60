package stormglass

import (
	"math/rand/v2"
	"time"

	"github.com/couchcryptid/surf-wind-service/internal/domain"
)

// RandomSource yields uniform values in [0, 1). *rand.Rand satisfies it.
type RandomSource interface {
	Float64() float64
}

// globalRandom draws from the math/rand/v2 top-level source, which is safe for
// concurrent use.
type globalRandom struct{}

func (globalRandom) Float64() float64 { return rand.Float64() }

// valueRange is a half-open range [base, base+width).
type valueRange struct {
	base  float64
	width float64
}

func (s valueRange) draw(r RandomSource) float64 {
	return s.base + r.Float64()*s.width
}

// syntheticProfile parameterizes the stand-in observation for one failure mode.
type syntheticProfile struct {
	direction valueRange
	speed     valueRange
	gust      valueRange
}

var (
	// Upstream answered with a non-OK status: NE-ish, 5–15 m/s.
	rejectedProfile = syntheticProfile{
		direction: valueRange{45, 20},
		speed:     valueRange{5, 10},
		gust:      valueRange{8, 15},
	}
	// Transport or decode failure: ENE-ish, 7–15 m/s.
	transportProfile = syntheticProfile{
		direction: valueRange{60, 30},
		speed:     valueRange{7, 8},
		gust:      valueRange{10, 12},
	}
)

// isoMillis is ISO-8601 UTC with millisecond precision.
const isoMillis = "2006-01-02T15:04:05.000Z07:00"

func (p syntheticProfile) observation(r RandomSource, now time.Time) domain.WindObservation {
	return domain.WindObservation{
		DirectionDegrees:     p.direction.draw(r),
		SpeedMetersPerSecond: p.speed.draw(r),
		GustMetersPerSecond:  p.gust.draw(r),
		ObservedAt:           now.UTC().Format(isoMillis),
	}
}
