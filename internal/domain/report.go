package domain

import "time"

// WindReport is the presentation-ready view of an observation: the raw values
// plus everything a map overlay or info panel derives from them.
type WindReport struct {
	Latitude    float64         `json:"latitude"`
	Longitude   float64         `json:"longitude"`
	Observation WindObservation `json:"observation"`
	Cardinal    string          `json:"cardinal"`
	SpeedKmh    float64         `json:"speed_kmh"`
	SpeedKnots  float64         `json:"speed_knots"`
	GustKmh     float64         `json:"gust_kmh"`
	Intensity   WindIntensity   `json:"intensity"`
	FetchedAt   time.Time       `json:"fetched_at"`

	// Outcome is how the observation was obtained. It travels as message
	// metadata, not in the report body.
	Outcome FetchOutcome `json:"-"`
}

// NewWindReport derives a WindReport from an observation taken at (lat, lng).
func NewWindReport(lat, lng float64, obs WindObservation) WindReport {
	return WindReport{
		Latitude:    lat,
		Longitude:   lng,
		Observation: obs,
		Cardinal:    DegreesToCardinal(obs.DirectionDegrees),
		SpeedKmh:    MetersPerSecondToKmh(obs.SpeedMetersPerSecond),
		SpeedKnots:  MetersPerSecondToKnots(obs.SpeedMetersPerSecond),
		GustKmh:     MetersPerSecondToKmh(obs.GustMetersPerSecond),
		Intensity:   ClassifyIntensity(obs.SpeedMetersPerSecond),
		FetchedAt:   clock.Now().UTC(),
	}
}
