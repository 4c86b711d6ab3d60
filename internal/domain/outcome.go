package domain

import (
	"context"
	"sync"
)

// FetchOutcome classifies how a wind fetch resolved. It is a telemetry signal
// only: masked failures still hand the caller a complete observation.
type FetchOutcome int

const (
	OutcomeOK FetchOutcome = iota
	OutcomeUpstreamRejected
	OutcomeTransportError
	OutcomeEmptyDataset
)

// String returns the label used in logs, metrics and span attributes.
func (o FetchOutcome) String() string {
	switch o {
	case OutcomeOK:
		return "ok"
	case OutcomeUpstreamRejected:
		return "upstream_rejected"
	case OutcomeTransportError:
		return "transport_error"
	case OutcomeEmptyDataset:
		return "empty_dataset"
	default:
		return "unknown"
	}
}

// Synthetic reports whether the outcome produced fabricated data.
func (o FetchOutcome) Synthetic() bool {
	return o == OutcomeUpstreamRejected || o == OutcomeTransportError
}

// FetchOutcomes lists every outcome, for pre-initializing metric label sets.
func FetchOutcomes() []FetchOutcome {
	return []FetchOutcome{OutcomeOK, OutcomeUpstreamRejected, OutcomeTransportError, OutcomeEmptyDataset}
}

type outcomeKey struct{}

type outcomeSlot struct {
	mu      sync.Mutex
	outcome FetchOutcome
	set     bool
}

// WithOutcomeRecorder returns a context that captures the outcome a
// WindProvider reports through RecordOutcome, and a function reading it back.
// The reader returns false when the provider reported nothing.
func WithOutcomeRecorder(ctx context.Context) (context.Context, func() (FetchOutcome, bool)) {
	slot := &outcomeSlot{}
	read := func() (FetchOutcome, bool) {
		slot.mu.Lock()
		defer slot.mu.Unlock()
		return slot.outcome, slot.set
	}
	return context.WithValue(ctx, outcomeKey{}, slot), read
}

// RecordOutcome stores o in the recorder attached to ctx, if any.
func RecordOutcome(ctx context.Context, o FetchOutcome) {
	slot, ok := ctx.Value(outcomeKey{}).(*outcomeSlot)
	if !ok {
		return
	}
	slot.mu.Lock()
	defer slot.mu.Unlock()
	slot.outcome = o
	slot.set = true
}
