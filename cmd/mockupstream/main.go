// Command mockupstream serves a stand-in for the Storm Glass point weather
// endpoint so the service and windcheck can run without an API key or quota.
// Each mode reproduces one upstream behaviour the client has to handle.
//
// Usage:
//
//	go run ./cmd/mockupstream -addr :8081 -mode ok
//	STORMGLASS_BASE_URL=http://localhost:8081 go run ./cmd/surfwind
//
// Modes:
//
//	ok       hourly records with both "sg" and "noaa" sources
//	noaa     hourly records with only "noaa" values
//	empty    200 OK with no hourly records
//	reject   402 quota exceeded
//	garbage  200 OK with a truncated JSON body
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"math"
	"net/http"
	"os"
	"strconv"
	"time"
)

var modes = map[string]bool{"ok": true, "noaa": true, "empty": true, "reject": true, "garbage": true}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	addr := flag.String("addr", ":8081", "listen address")
	mode := flag.String("mode", "ok", "response mode: ok, noaa, empty, reject, garbage")
	flag.Parse()

	if !modes[*mode] {
		flag.Usage()
		return fmt.Errorf("unknown mode %q", *mode)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	logger.Info("mock storm glass listening", "addr", *addr, "mode", *mode)

	srv := &http.Server{
		Addr:              *addr,
		Handler:           newHandler(*mode, logger),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return srv.ListenAndServe()
}

type sourceValues map[string]float64

type hour struct {
	Time          string       `json:"time"`
	WindDirection sourceValues `json:"windDirection"`
	WindSpeed     sourceValues `json:"windSpeed"`
	WindGust      sourceValues `json:"windGust"`
}

type meta struct {
	Lat    float64  `json:"lat"`
	Lng    float64  `json:"lng"`
	Params []string `json:"params"`
	Start  string   `json:"start"`
	End    string   `json:"end"`
}

type payload struct {
	Hours []hour `json:"hours"`
	Meta  meta   `json:"meta"`
}

func newHandler(mode string, logger *slog.Logger) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /weather/point", func(w http.ResponseWriter, r *http.Request) {
		logger.Info("request", "query", r.URL.RawQuery, "authorized", r.Header.Get("Authorization") != "")

		switch mode {
		case "reject":
			writeJSON(w, http.StatusPaymentRequired, map[string]any{
				"errors": map[string]string{"key": "API quota exceeded"},
			})
			return
		case "garbage":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"hours":[{"time":`))
			return
		}

		q := r.URL.Query()
		start := parseUnix(q.Get("start"))
		end := parseUnix(q.Get("end"))
		if end.Before(start) {
			end = start
		}
		lat, _ := strconv.ParseFloat(q.Get("lat"), 64)
		lng, _ := strconv.ParseFloat(q.Get("lng"), 64)

		p := payload{
			Hours: []hour{},
			Meta: meta{
				Lat:    lat,
				Lng:    lng,
				Params: []string{"windDirection", "windSpeed", "windGust"},
				Start:  start.Format("2006-01-02 15:04"),
				End:    end.Format("2006-01-02 15:04"),
			},
		}
		if mode != "empty" {
			for t := start.Truncate(time.Hour); !t.After(end); t = t.Add(time.Hour) {
				p.Hours = append(p.Hours, hourAt(t, mode == "noaa"))
			}
		}
		writeJSON(w, http.StatusOK, p)
	})
	return mux
}

// hourAt produces a plausible onshore afternoon breeze that veers with the hour.
func hourAt(t time.Time, noaaOnly bool) hour {
	phase := float64(t.Hour()) / 24 * 2 * math.Pi
	direction := math.Mod(70+25*math.Sin(phase)+360, 360)
	speed := 6 + 3*math.Sin(phase)
	gust := speed * 1.4

	h := hour{
		Time:          t.UTC().Format("2006-01-02T15:04:05+00:00"),
		WindDirection: sourceValues{"noaa": round2(direction + 3)},
		WindSpeed:     sourceValues{"noaa": round2(speed - 0.4)},
		WindGust:      sourceValues{"noaa": round2(gust - 0.6)},
	}
	if !noaaOnly {
		h.WindDirection["sg"] = round2(direction)
		h.WindSpeed["sg"] = round2(speed)
		h.WindGust["sg"] = round2(gust)
	}
	return h
}

func parseUnix(s string) time.Time {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return time.Now().UTC()
	}
	return time.Unix(n, 0).UTC()
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // best-effort mock response
}
