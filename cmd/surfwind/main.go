package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	httpadapter "github.com/couchcryptid/surf-wind-service/internal/adapter/http"
	kafkaadapter "github.com/couchcryptid/surf-wind-service/internal/adapter/kafka"
	"github.com/couchcryptid/surf-wind-service/internal/adapter/stormglass"
	"github.com/couchcryptid/surf-wind-service/internal/config"
	"github.com/couchcryptid/surf-wind-service/internal/observability"
	"github.com/couchcryptid/surf-wind-service/internal/poller"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg.LogLevel, cfg.LogFormat)
	metrics := observability.NewMetrics()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := observability.SetupTracing(ctx, "surfwind", cfg.OTelEndpoint)
	if err != nil {
		logger.Error("tracing setup failed, continuing without traces", "error", err)
	}

	if cfg.StormGlassAPIKey == "" {
		logger.Warn("STORMGLASS_API_KEY not set, upstream will reject requests and synthetic wind data will be served")
	}
	client := stormglass.NewClient(cfg.StormGlassAPIKey, logger,
		stormglass.WithBaseURL(cfg.StormGlassBaseURL),
		stormglass.WithObserver(metrics),
	)

	opts := []poller.Option{}
	var writer *kafkaadapter.Writer
	if cfg.KafkaEnabled {
		writer = kafkaadapter.NewWriter(cfg, logger)
		opts = append(opts, poller.WithPublisher(writer))
		logger.Info("kafka publishing enabled", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaTopic)
	} else {
		logger.Info("kafka publishing disabled")
	}

	p, err := poller.New(client, poller.Settings{
		Latitude:     cfg.Latitude,
		Longitude:    cfg.Longitude,
		Interval:     cfg.PollInterval,
		FetchTimeout: cfg.FetchTimeout,
	}, logger, metrics, opts...)
	if err != nil {
		logger.Error("failed to create poller", "error", err)
		os.Exit(1)
	}

	srv := httpadapter.NewServer(cfg.HTTPAddr, p, p, logger)

	// Start HTTP server.
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	// Start wind poller.
	go func() {
		if err := p.Run(ctx); err != nil {
			logger.Error("poller error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	if writer != nil {
		if err := writer.Close(); err != nil {
			logger.Error("kafka writer close error", "error", err)
		}
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		logger.Error("tracing shutdown error", "error", err)
	}

	logger.Info("shutdown complete")
}
