package observability

import (
	"time"

	"github.com/couchcryptid/surf-wind-service/internal/domain"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "surfwind"

// Metrics holds the Prometheus collectors for wind fetching and publication.
type Metrics struct {
	// Fetch telemetry. Masked failures are counted here even though callers
	// receive synthetic data.
	WindFetches       *prometheus.CounterVec   // labels: outcome={ok,upstream_rejected,transport_error,empty_dataset}
	WindFetchDuration *prometheus.HistogramVec // labels: outcome

	PollerRunning prometheus.Gauge
	WindAvailable prometheus.Gauge

	// Latest observation values.
	LatestSpeed     prometheus.Gauge
	LatestGust      prometheus.Gauge
	LatestDirection prometheus.Gauge
	LatestIntensity prometheus.Gauge

	ReportsPublished prometheus.Counter
	PublishErrors    prometheus.Counter
}

func newMetrics() *Metrics {
	m := &Metrics{
		WindFetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "wind_fetches_total",
			Help:      "Wind data fetches by outcome.",
		}, []string{"outcome"}),
		WindFetchDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "wind_fetch_duration_seconds",
			Help:      "Storm Glass request duration in seconds, by outcome.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"outcome"}),
		PollerRunning: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "poller_running",
			Help:      "1 when the wind poller is active, 0 when shut down.",
		}),
		WindAvailable: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "wind_available",
			Help:      "1 when the latest fetch produced an observation, 0 when the upstream had no data.",
		}),
		LatestSpeed: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "wind_speed_meters_per_second",
			Help:      "Wind speed of the latest observation.",
		}),
		LatestGust: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "wind_gust_meters_per_second",
			Help:      "Wind gust of the latest observation.",
		}),
		LatestDirection: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "wind_direction_degrees",
			Help:      "Bearing the latest observed wind blows from.",
		}),
		LatestIntensity: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "wind_intensity_scale",
			Help:      "Beaufort-like intensity (0-12) of the latest observation.",
		}),
		ReportsPublished: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reports_published_total",
			Help:      "Wind reports written to the sink topic.",
		}),
		PublishErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "publish_errors_total",
			Help:      "Wind reports dropped after exhausting publish retries.",
		}),
	}

	for _, o := range domain.FetchOutcomes() {
		m.WindFetches.WithLabelValues(o.String())
	}
	return m
}

func (m *Metrics) collectors() []prometheus.Collector {
	return []prometheus.Collector{
		m.WindFetches,
		m.WindFetchDuration,
		m.PollerRunning,
		m.WindAvailable,
		m.LatestSpeed,
		m.LatestGust,
		m.LatestDirection,
		m.LatestIntensity,
		m.ReportsPublished,
		m.PublishErrors,
	}
}

// NewMetrics creates and registers all metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(m.collectors()...)
	return m
}

// NewMetricsForTesting creates unregistered Metrics to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

// ObserveFetch records a fetch outcome. It satisfies stormglass.Observer.
func (m *Metrics) ObserveFetch(outcome domain.FetchOutcome, elapsed time.Duration) {
	m.WindFetches.WithLabelValues(outcome.String()).Inc()
	m.WindFetchDuration.WithLabelValues(outcome.String()).Observe(elapsed.Seconds())
}

// ObserveReport updates the latest-value gauges.
func (m *Metrics) ObserveReport(r domain.WindReport) {
	m.WindAvailable.Set(1)
	m.LatestSpeed.Set(r.Observation.SpeedMetersPerSecond)
	m.LatestGust.Set(r.Observation.GustMetersPerSecond)
	m.LatestDirection.Set(r.Observation.DirectionDegrees)
	m.LatestIntensity.Set(float64(r.Intensity.Scale))
}
