package stormglass

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/couchcryptid/surf-wind-service/internal/domain"
	"github.com/jonboulle/clockwork"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	// DefaultBaseURL is the Storm Glass v2 API root.
	DefaultBaseURL = "https://api.stormglass.io/v2"

	windParams     = "windDirection,windSpeed,windGust"
	windowSeconds  = 3600
	errorBodyLimit = 512
)

var tracer = otel.Tracer("github.com/couchcryptid/surf-wind-service/internal/adapter/stormglass")

// Observer receives the outcome of every fetch, including the ones masked by
// synthetic data.
type Observer interface {
	ObserveFetch(outcome domain.FetchOutcome, elapsed time.Duration)
}

// Client implements domain.WindProvider using the Storm Glass point weather API.
// It holds no mutable state and is safe for concurrent use.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	clock      clockwork.Clock
	random     RandomSource
	observer   Observer
	logger     *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL points the client at a different API root, e.g. a local mock.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) { c.baseURL = baseURL }
}

// WithHTTPClient replaces the instrumented default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithClock sets the time source for the request window and synthetic timestamps.
func WithClock(clk clockwork.Clock) Option {
	return func(c *Client) { c.clock = clk }
}

// WithRandom sets the source used to draw synthetic observations.
func WithRandom(r RandomSource) Option {
	return func(c *Client) { c.random = r }
}

// WithObserver registers a telemetry sink for fetch outcomes.
func WithObserver(o Observer) Option {
	return func(c *Client) { c.observer = o }
}

// NewClient creates a Storm Glass wind client. The client imposes no timeout
// of its own; bound each call with the context passed to GetWindData.
func NewClient(apiKey string, logger *slog.Logger, opts ...Option) *Client {
	c := &Client{
		apiKey:  apiKey,
		baseURL: DefaultBaseURL,
		httpClient: &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		clock:  clockwork.NewRealClock(),
		random: globalRandom{},
		logger: logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetWindData returns the current wind observation for a point.
//
// Upstream rejections and transport or decode failures are not returned as
// errors; they yield a synthetic observation instead. The only error is
// domain.ErrWindDataUnavailable, for a successful response with no hourly data.
func (c *Client) GetWindData(ctx context.Context, latitude, longitude float64) (domain.WindObservation, error) {
	ctx, span := tracer.Start(ctx, "stormglass.GetWindData", trace.WithAttributes(
		attribute.Float64("wind.latitude", latitude),
		attribute.Float64("wind.longitude", longitude),
	))
	defer span.End()

	start := c.clock.Now()
	obs, outcome, cause := c.fetch(ctx, latitude, longitude)

	// A cancelled caller has stopped listening, so the failure is not the upstream's.
	callerGone := outcome == domain.OutcomeTransportError && cancelled(ctx)

	var err error
	switch outcome {
	case domain.OutcomeUpstreamRejected:
		c.logger.Warn("stormglass rejected request, serving synthetic wind data",
			"lat", latitude, "lng", longitude, "error", cause)
		obs = rejectedProfile.observation(c.random, c.clock.Now())
	case domain.OutcomeTransportError:
		if callerGone {
			c.logger.Debug("stormglass request cancelled by caller", "lat", latitude, "lng", longitude)
		} else {
			c.logger.Warn("stormglass request failed, serving synthetic wind data",
				"lat", latitude, "lng", longitude, "error", cause)
		}
		obs = transportProfile.observation(c.random, c.clock.Now())
	case domain.OutcomeEmptyDataset:
		c.logger.Warn("stormglass returned no hourly records", "lat", latitude, "lng", longitude)
		err = domain.ErrWindDataUnavailable
	}

	domain.RecordOutcome(ctx, outcome)
	if c.observer != nil && !callerGone {
		c.observer.ObserveFetch(outcome, c.clock.Since(start))
	}

	span.SetAttributes(
		attribute.String("wind.fetch_outcome", outcome.String()),
		attribute.Bool("wind.synthetic", outcome.Synthetic()),
	)
	if cause != nil {
		span.RecordError(cause)
		span.SetStatus(codes.Error, outcome.String())
	}

	return obs, err
}

// fetch performs one upstream round trip. On any outcome other than OK the
// returned observation is zero and cause explains the failure.
func (c *Client) fetch(ctx context.Context, latitude, longitude float64) (domain.WindObservation, domain.FetchOutcome, error) {
	req, err := c.newRequest(ctx, latitude, longitude)
	if err != nil {
		return domain.WindObservation{}, domain.OutcomeTransportError, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.WindObservation{}, domain.OutcomeTransportError, fmt.Errorf("wind data request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyLimit))
		return domain.WindObservation{}, domain.OutcomeUpstreamRejected,
			fmt.Errorf("stormglass API error: status %d: %s", resp.StatusCode, body)
	}

	var sgResp response
	if err := json.NewDecoder(resp.Body).Decode(&sgResp); err != nil {
		return domain.WindObservation{}, domain.OutcomeTransportError, fmt.Errorf("decode response: %w", err)
	}

	if len(sgResp.Hours) == 0 {
		return domain.WindObservation{}, domain.OutcomeEmptyDataset, nil
	}

	// The first hour is the most current.
	h := sgResp.Hours[0]
	if h == nil || h.Time == "" {
		return domain.WindObservation{}, domain.OutcomeTransportError, errors.New("malformed hour record: missing time")
	}
	return domain.WindObservation{
		DirectionDegrees:     h.WindDirection.value(),
		SpeedMetersPerSecond: h.WindSpeed.value(),
		GustMetersPerSecond:  h.WindGust.value(),
		ObservedAt:           h.Time,
	}, domain.OutcomeOK, nil
}

func (c *Client) newRequest(ctx context.Context, latitude, longitude float64) (*http.Request, error) {
	start := c.clock.Now().Unix()
	params := url.Values{
		"lat":    {strconv.FormatFloat(latitude, 'f', -1, 64)},
		"lng":    {strconv.FormatFloat(longitude, 'f', -1, 64)},
		"params": {windParams},
		"start":  {strconv.FormatInt(start, 10)},
		"end":    {strconv.FormatInt(start+windowSeconds, 10)},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/weather/point?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", c.apiKey)
	req.Header.Set("Accept", "application/json")
	return req, nil
}

// cancelled reports an explicit cancellation, as opposed to an expired deadline.
func cancelled(ctx context.Context) bool {
	return errors.Is(ctx.Err(), context.Canceled)
}
