package observability

import (
	"testing"
	"time"

	"github.com/couchcryptid/surf-wind-service/internal/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_ObserveFetch(t *testing.T) {
	m := NewMetricsForTesting()

	m.ObserveFetch(domain.OutcomeOK, 120*time.Millisecond)
	m.ObserveFetch(domain.OutcomeTransportError, 2*time.Second)
	m.ObserveFetch(domain.OutcomeTransportError, time.Second)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.WindFetches.WithLabelValues("ok")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.WindFetches.WithLabelValues("transport_error")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.WindFetches.WithLabelValues("upstream_rejected")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.WindFetchDuration))
}

func TestMetrics_ObserveReport(t *testing.T) {
	m := NewMetricsForTesting()

	m.ObserveReport(domain.NewWindReport(0, 0, domain.WindObservation{
		DirectionDegrees:     225,
		SpeedMetersPerSecond: 12,
		GustMetersPerSecond:  16,
	}))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.WindAvailable))
	assert.Equal(t, 12.0, testutil.ToFloat64(m.LatestSpeed))
	assert.Equal(t, 16.0, testutil.ToFloat64(m.LatestGust))
	assert.Equal(t, 225.0, testutil.ToFloat64(m.LatestDirection))
	assert.Equal(t, 6.0, testutil.ToFloat64(m.LatestIntensity))
}

func TestMetrics_RegisterOnFreshRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetricsForTesting()
	require.NoError(t, reg.Register(m.WindFetches))

	n, err := testutil.GatherAndCount(reg, "surfwind_wind_fetches_total")
	require.NoError(t, err)
	assert.Equal(t, 4, n, "every outcome label is pre-initialized")
}
