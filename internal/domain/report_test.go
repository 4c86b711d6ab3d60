package domain

import (
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
)

func TestNewWindReport(t *testing.T) {
	now := time.Date(2025, 7, 28, 14, 0, 0, 0, time.UTC)
	SetClock(clockwork.NewFakeClockAt(now))
	defer SetClock(nil)

	obs := WindObservation{
		DirectionDegrees:     90,
		SpeedMetersPerSecond: 10,
		GustMetersPerSecond:  12.5,
		ObservedAt:           "2025-07-28T14:00:00+00:00",
	}
	r := NewWindReport(-22.8948315, -42.0285161, obs)

	assert.Equal(t, obs, r.Observation)
	assert.Equal(t, -22.8948315, r.Latitude)
	assert.Equal(t, -42.0285161, r.Longitude)
	assert.Equal(t, "E", r.Cardinal)
	assert.InDelta(t, 36.0, r.SpeedKmh, 1e-9)
	assert.InDelta(t, 19.44, r.SpeedKnots, 1e-9)
	assert.InDelta(t, 45.0, r.GustKmh, 1e-9)
	assert.Equal(t, 5, r.Intensity.Scale)
	assert.Equal(t, now, r.FetchedAt)
}

func TestFetchOutcome(t *testing.T) {
	labels := make([]string, 0, 4)
	for _, o := range FetchOutcomes() {
		labels = append(labels, o.String())
	}
	assert.Equal(t, []string{"ok", "upstream_rejected", "transport_error", "empty_dataset"}, labels)
	assert.Equal(t, "unknown", FetchOutcome(42).String())

	assert.False(t, OutcomeOK.Synthetic())
	assert.True(t, OutcomeUpstreamRejected.Synthetic())
	assert.True(t, OutcomeTransportError.Synthetic())
	assert.False(t, OutcomeEmptyDataset.Synthetic())
}

func TestOutcomeRecorder(t *testing.T) {
	ctx, read := WithOutcomeRecorder(context.Background())

	_, ok := read()
	assert.False(t, ok, "nothing recorded yet")

	RecordOutcome(ctx, OutcomeTransportError)
	got, ok := read()
	assert.True(t, ok)
	assert.Equal(t, OutcomeTransportError, got)

	// Without a recorder attached the call is a no-op.
	RecordOutcome(context.Background(), OutcomeOK)
}
