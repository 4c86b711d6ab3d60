package domain

import (
	"context"
	"errors"
)

// ErrWindDataUnavailable is returned when the upstream answered successfully
// but had no hourly records for the requested window.
var ErrWindDataUnavailable = errors.New("wind data unavailable")

// WindObservation is a single current wind reading. Values are never partially
// populated: a provider returns a complete observation or ErrWindDataUnavailable.
type WindObservation struct {
	DirectionDegrees     float64 `json:"direction_degrees"`       // bearing the wind blows from, [0, 360)
	SpeedMetersPerSecond float64 `json:"speed_meters_per_second"` // >= 0
	GustMetersPerSecond  float64 `json:"gust_meters_per_second"`  // >= 0, may exceed speed
	ObservedAt           string  `json:"observed_at"`             // ISO-8601
}

// WindProvider fetches the best available current observation for a point.
type WindProvider interface {
	GetWindData(ctx context.Context, latitude, longitude float64) (WindObservation, error)
}
