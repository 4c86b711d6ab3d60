package poller

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	sharedretry "github.com/couchcryptid/storm-data-shared/retry"
	"github.com/couchcryptid/surf-wind-service/internal/domain"
	"github.com/couchcryptid/surf-wind-service/internal/observability"
	"github.com/jonboulle/clockwork"
)

const maxPublishAttempts = 3

// Publisher delivers a fresh report downstream.
type Publisher interface {
	Publish(ctx context.Context, report domain.WindReport) error
}

// Settings describes what to poll and how often.
type Settings struct {
	Latitude     float64
	Longitude    float64
	Interval     time.Duration
	FetchTimeout time.Duration
}

// Poller re-fetches wind data on a fixed interval and keeps the latest report.
type Poller struct {
	provider   domain.WindProvider
	publishers []Publisher
	settings   Settings
	clock      clockwork.Clock
	logger     *slog.Logger
	metrics    *observability.Metrics

	initialBackoff time.Duration
	maxBackoff     time.Duration

	// latest is replaced wholesale; readers never see a partial report.
	latest atomic.Pointer[domain.WindReport]
	ready  atomic.Bool
}

// Option configures a Poller.
type Option func(*Poller)

// WithClock sets the ticker source.
func WithClock(c clockwork.Clock) Option {
	return func(p *Poller) { p.clock = c }
}

// WithPublisher adds a downstream sink for every fresh report.
func WithPublisher(pub Publisher) Option {
	return func(p *Poller) { p.publishers = append(p.publishers, pub) }
}

// WithPublishBackoff overrides the publish retry backoff bounds.
func WithPublishBackoff(initial, maxBackoff time.Duration) Option {
	return func(p *Poller) {
		p.initialBackoff = initial
		p.maxBackoff = maxBackoff
	}
}

// New creates a Poller for a single point. Interval and FetchTimeout must be positive.
func New(provider domain.WindProvider, settings Settings, logger *slog.Logger, metrics *observability.Metrics, opts ...Option) (*Poller, error) {
	if settings.Interval <= 0 {
		return nil, fmt.Errorf("poll interval must be positive, got %s", settings.Interval)
	}
	if settings.FetchTimeout <= 0 {
		return nil, fmt.Errorf("fetch timeout must be positive, got %s", settings.FetchTimeout)
	}

	p := &Poller{
		provider:       provider,
		settings:       settings,
		clock:          clockwork.NewRealClock(),
		logger:         logger,
		metrics:        metrics,
		initialBackoff: 200 * time.Millisecond,
		maxBackoff:     5 * time.Second,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Latest returns the most recent report, or false when there is none yet or
// the upstream last reported no data.
func (p *Poller) Latest() (domain.WindReport, bool) {
	r := p.latest.Load()
	if r == nil {
		return domain.WindReport{}, false
	}
	return *r, true
}

// CheckReadiness returns nil once the first fetch cycle has completed.
func (p *Poller) CheckReadiness(_ context.Context) error {
	if !p.ready.Load() {
		return errors.New("wind poller has not completed a fetch yet")
	}
	return nil
}

// Run fetches immediately and then once per interval until ctx is cancelled.
func (p *Poller) Run(ctx context.Context) error {
	p.logger.Info("wind poller started",
		"lat", p.settings.Latitude,
		"lng", p.settings.Longitude,
		"interval", p.settings.Interval,
	)
	p.metrics.PollerRunning.Set(1)
	defer p.metrics.PollerRunning.Set(0)

	ticker := p.clock.NewTicker(p.settings.Interval)
	defer ticker.Stop()

	p.poll(ctx)
	for {
		select {
		case <-ctx.Done():
			p.logger.Info("wind poller stopping", "reason", ctx.Err())
			return nil
		case <-ticker.Chan():
			p.poll(ctx)
		}
	}
}

// poll runs one fetch-derive-publish cycle.
func (p *Poller) poll(ctx context.Context) {
	fetchCtx, outcomeOf := domain.WithOutcomeRecorder(ctx)
	fetchCtx, cancel := context.WithTimeout(fetchCtx, p.settings.FetchTimeout)
	obs, err := p.provider.GetWindData(fetchCtx, p.settings.Latitude, p.settings.Longitude)
	cancel()

	if ctx.Err() != nil {
		return
	}

	if errors.Is(err, domain.ErrWindDataUnavailable) {
		p.logger.Warn("wind data unavailable", "lat", p.settings.Latitude, "lng", p.settings.Longitude)
		p.latest.Store(nil)
		p.metrics.WindAvailable.Set(0)
		p.ready.Store(true)
		return
	}
	if err != nil {
		p.logger.Error("wind fetch failed, keeping previous report", "error", err)
		p.ready.Store(true)
		return
	}

	report := domain.NewWindReport(p.settings.Latitude, p.settings.Longitude, obs)
	if outcome, ok := outcomeOf(); ok {
		report.Outcome = outcome
	}
	p.latest.Store(&report)
	p.metrics.ObserveReport(report)
	p.ready.Store(true)
	p.logger.Info("wind updated",
		"cardinal", report.Cardinal,
		"direction", obs.DirectionDegrees,
		"speed_kmh", report.SpeedKmh,
		"intensity", report.Intensity.Description,
		"synthetic", report.Outcome.Synthetic(),
		"observed_at", obs.ObservedAt,
	)

	for _, pub := range p.publishers {
		p.publish(ctx, pub, report)
	}
}

// publish retries a failed write with exponential backoff, then drops the report.
func (p *Poller) publish(ctx context.Context, pub Publisher, report domain.WindReport) {
	backoff := p.initialBackoff
	for attempt := 1; ; attempt++ {
		err := pub.Publish(ctx, report)
		if err == nil {
			p.metrics.ReportsPublished.Inc()
			return
		}
		if ctx.Err() != nil {
			return
		}
		if attempt == maxPublishAttempts {
			p.logger.Error("publish wind report failed, dropping", "error", err, "attempts", attempt)
			p.metrics.PublishErrors.Inc()
			return
		}
		p.logger.Warn("publish wind report failed, retrying", "error", err, "attempt", attempt, "backoff", backoff)
		if !sharedretry.SleepWithContext(ctx, backoff) {
			return
		}
		backoff = sharedretry.NextBackoff(backoff, p.maxBackoff)
	}
}
