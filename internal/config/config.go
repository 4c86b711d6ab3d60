package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	sharedcfg "github.com/couchcryptid/storm-data-shared/config"
)

// Default surf spot: Praia do Forte, Cabo Frio, RJ.
const (
	defaultLatitude  = "-22.8948315"
	defaultLongitude = "-42.0285161"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	// Storm Glass upstream.
	StormGlassAPIKey  string
	StormGlassBaseURL string
	FetchTimeout      time.Duration

	// Point to watch and how often to refresh it.
	Latitude     float64
	Longitude    float64
	PollInterval time.Duration

	KafkaEnabled bool
	KafkaBrokers []string
	KafkaTopic   string

	// OTLP/HTTP trace endpoint; empty disables tracing.
	OTelEndpoint string
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	shutdownTimeout, err := sharedcfg.ParseShutdownTimeout()
	if err != nil {
		return nil, err
	}

	fetchTimeout, err := parsePositiveDuration("FETCH_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}

	pollInterval, err := parsePositiveDuration("POLL_INTERVAL", "10m")
	if err != nil {
		return nil, err
	}

	lat, err := parseCoordinate("WIND_LATITUDE", defaultLatitude, 90)
	if err != nil {
		return nil, err
	}
	lng, err := parseCoordinate("WIND_LONGITUDE", defaultLongitude, 180)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		HTTPAddr:        sharedcfg.EnvOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:        sharedcfg.EnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:       sharedcfg.EnvOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout: shutdownTimeout,

		StormGlassAPIKey:  os.Getenv("STORMGLASS_API_KEY"),
		StormGlassBaseURL: sharedcfg.EnvOrDefault("STORMGLASS_BASE_URL", "https://api.stormglass.io/v2"),
		FetchTimeout:      fetchTimeout,

		Latitude:     lat,
		Longitude:    lng,
		PollInterval: pollInterval,

		KafkaEnabled: os.Getenv("KAFKA_ENABLED") == "true",
		KafkaBrokers: sharedcfg.ParseBrokers(sharedcfg.EnvOrDefault("KAFKA_BROKERS", "localhost:9092")),
		KafkaTopic:   sharedcfg.EnvOrDefault("KAFKA_TOPIC", "wind-reports"),

		OTelEndpoint: os.Getenv("OTEL_ENDPOINT"),
	}

	if cfg.KafkaEnabled && len(cfg.KafkaBrokers) == 0 {
		return nil, errors.New("KAFKA_ENABLED is true but KAFKA_BROKERS is empty")
	}

	return cfg, nil
}

func parsePositiveDuration(key, fallback string) (time.Duration, error) {
	d, err := time.ParseDuration(sharedcfg.EnvOrDefault(key, fallback))
	if err != nil || d <= 0 {
		return 0, errors.New("invalid " + key)
	}
	return d, nil
}

// parseCoordinate reads a decimal degree value bounded by ±limit.
func parseCoordinate(key, fallback string, limit float64) (float64, error) {
	v, err := strconv.ParseFloat(sharedcfg.EnvOrDefault(key, fallback), 64)
	if err != nil || v < -limit || v > limit {
		return 0, errors.New("invalid " + key)
	}
	return v, nil
}
