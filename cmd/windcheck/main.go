// Command windcheck fetches the current wind for one point and prints the
// derived report. It goes through the same client as the service, so it also
// shows whether the data was real or synthetic.
//
// Usage:
//
//	STORMGLASS_API_KEY=... go run ./cmd/windcheck -lat -22.8948315 -lng -42.0285161
//	go run ./cmd/windcheck -base-url http://localhost:8081 -json
//
// Exit status is 2 when the upstream has no data for the window.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/couchcryptid/surf-wind-service/internal/adapter/stormglass"
	"github.com/couchcryptid/surf-wind-service/internal/domain"
)

const (
	exitOK          = 0
	exitError       = 1
	exitUnavailable = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// outcomeRecorder keeps the last fetch outcome for the report footer.
type outcomeRecorder struct {
	mu      sync.Mutex
	outcome domain.FetchOutcome
	elapsed time.Duration
}

func (o *outcomeRecorder) ObserveFetch(outcome domain.FetchOutcome, elapsed time.Duration) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.outcome = outcome
	o.elapsed = elapsed
}

type checkResult struct {
	Report    domain.WindReport `json:"report"`
	Outcome   string            `json:"outcome"`
	Synthetic bool              `json:"synthetic"`
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("windcheck", flag.ContinueOnError)
	fs.SetOutput(stderr)
	lat := fs.Float64("lat", -22.8948315, "latitude in decimal degrees")
	lng := fs.Float64("lng", -42.0285161, "longitude in decimal degrees")
	apiKey := fs.String("api-key", os.Getenv("STORMGLASS_API_KEY"), "Storm Glass API key (default $STORMGLASS_API_KEY)")
	baseURL := fs.String("base-url", stormglass.DefaultBaseURL, "Storm Glass API root")
	timeout := fs.Duration("timeout", 10*time.Second, "request deadline")
	asJSON := fs.Bool("json", false, "print the report as JSON")
	verbose := fs.Bool("v", false, "log client warnings to stderr")
	if err := fs.Parse(args); err != nil {
		return exitError
	}

	logLevel := slog.LevelError
	if *verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: logLevel}))

	rec := &outcomeRecorder{}
	client := stormglass.NewClient(*apiKey, logger,
		stormglass.WithBaseURL(*baseURL),
		stormglass.WithObserver(rec),
	)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	obs, err := client.GetWindData(ctx, *lat, *lng)
	if errors.Is(err, domain.ErrWindDataUnavailable) {
		fmt.Fprintf(stderr, "no wind data available for %v, %v\n", *lat, *lng)
		return exitUnavailable
	}
	if err != nil {
		fmt.Fprintf(stderr, "windcheck: %v\n", err)
		return exitError
	}

	result := checkResult{
		Report:    domain.NewWindReport(*lat, *lng, obs),
		Outcome:   rec.outcome.String(),
		Synthetic: rec.outcome.Synthetic(),
	}

	if *asJSON {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			fmt.Fprintf(stderr, "windcheck: encode: %v\n", err)
			return exitError
		}
		return exitOK
	}

	printReport(stdout, result, rec.elapsed)
	return exitOK
}

func printReport(w io.Writer, res checkResult, elapsed time.Duration) {
	r := res.Report
	source := "stormglass"
	if res.Synthetic {
		source = "synthetic (" + res.Outcome + ")"
	}

	fmt.Fprintf(w, "Wind at %v, %v\n", r.Latitude, r.Longitude)
	fmt.Fprintf(w, "  Direction: %s (%.1f°)\n", r.Cardinal, r.Observation.DirectionDegrees)
	fmt.Fprintf(w, "  Speed:     %.1f km/h (%.1f kn)\n", r.SpeedKmh, r.SpeedKnots)
	fmt.Fprintf(w, "  Gust:      %.1f km/h\n", r.GustKmh)
	fmt.Fprintf(w, "  Intensity: %d %s (%s)\n", r.Intensity.Scale, r.Intensity.Description, r.Intensity.Color)
	fmt.Fprintf(w, "  Observed:  %s\n", r.Observation.ObservedAt)
	fmt.Fprintf(w, "  Source:    %s in %s\n", source, elapsed.Round(time.Millisecond))
}
