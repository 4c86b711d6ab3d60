package http

import (
	"context"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"time"

	sharedobs "github.com/couchcryptid/storm-data-shared/observability"
	"github.com/couchcryptid/surf-wind-service/internal/domain"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// WindSource exposes the most recent wind report.
type WindSource interface {
	Latest() (domain.WindReport, bool)
}

// Server exposes health, metrics, and wind report HTTP endpoints.
type Server struct {
	httpServer *http.Server
	wind       WindSource
	logger     *slog.Logger
}

// NewServer creates an HTTP server with /healthz, /readyz, /metrics and /wind routes.
func NewServer(addr string, ready sharedobs.ReadinessChecker, wind WindSource, logger *slog.Logger) *Server {
	mux := http.NewServeMux()

	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		wind:   wind,
		logger: logger,
	}

	mux.HandleFunc("GET /healthz", sharedobs.LivenessHandler())
	mux.HandleFunc("GET /readyz", sharedobs.ReadinessHandler(ready))
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.HandleFunc("GET /wind", s.handleWind)
	mux.HandleFunc("GET /wind/intensity", handleIntensity)
	mux.HandleFunc("GET /wind/scale", handleScale)

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

func (s *Server) handleWind(w http.ResponseWriter, _ *http.Request) {
	report, ok := s.wind.Latest()
	if !ok {
		sharedobs.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		return
	}
	sharedobs.WriteJSON(w, http.StatusOK, report)
}

type intensityResponse struct {
	SpeedMetersPerSecond float64              `json:"speed_meters_per_second"`
	SpeedKmh             float64              `json:"speed_kmh"`
	SpeedKnots           float64              `json:"speed_knots"`
	Intensity            domain.WindIntensity `json:"intensity"`
}

func handleIntensity(w http.ResponseWriter, r *http.Request) {
	speed, err := strconv.ParseFloat(r.URL.Query().Get("speed_ms"), 64)
	if err != nil || speed < 0 || math.IsNaN(speed) || math.IsInf(speed, 0) {
		sharedobs.WriteJSON(w, http.StatusBadRequest, map[string]string{
			"error": "speed_ms must be a non-negative number",
		})
		return
	}
	sharedobs.WriteJSON(w, http.StatusOK, intensityResponse{
		SpeedMetersPerSecond: speed,
		SpeedKmh:             domain.MetersPerSecondToKmh(speed),
		SpeedKnots:           domain.MetersPerSecondToKnots(speed),
		Intensity:            domain.ClassifyIntensity(speed),
	})
}

func handleScale(w http.ResponseWriter, _ *http.Request) {
	sharedobs.WriteJSON(w, http.StatusOK, domain.IntensityScale())
}
