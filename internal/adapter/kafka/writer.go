package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/couchcryptid/surf-wind-service/internal/config"
	"github.com/couchcryptid/surf-wind-service/internal/domain"
	kafkago "github.com/segmentio/kafka-go"
)

// Writer produces wind reports to a Kafka topic.
// It implements poller.Publisher.
type Writer struct {
	writer *kafkago.Writer
	logger *slog.Logger
}

// NewWriter creates a Kafka producer for the configured report topic.
func NewWriter(cfg *config.Config, logger *slog.Logger) *Writer {
	w := &kafkago.Writer{
		Addr:                   kafkago.TCP(cfg.KafkaBrokers...),
		Topic:                  cfg.KafkaTopic,
		Balancer:               &kafkago.Hash{},
		RequiredAcks:           kafkago.RequireAll,
		AllowAutoTopicCreation: true,
	}
	return &Writer{writer: w, logger: logger}
}

// Publish serializes and writes a single wind report. Reports for the same
// point share a key and therefore a partition, so consumers see them in order.
func (w *Writer) Publish(ctx context.Context, report domain.WindReport) error {
	msg, err := serializeToMessage(report)
	if err != nil {
		return err
	}
	if err := w.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("write wind report: %w", err)
	}
	w.logger.Debug("wind report published", "topic", w.writer.Topic, "key", string(msg.Key))
	return nil
}

func (w *Writer) Close() error {
	return w.writer.Close()
}

// serializeToMessage marshals a WindReport into a Kafka message. The fetch
// outcome rides in headers so consumers can skip synthetic readings without
// decoding the body.
func serializeToMessage(report domain.WindReport) (kafkago.Message, error) {
	data, err := json.Marshal(report)
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize wind report: %w", err)
	}
	return kafkago.Message{
		Key:   []byte(pointKey(report.Latitude, report.Longitude)),
		Value: data,
		Headers: []kafkago.Header{
			{Key: "cardinal", Value: []byte(report.Cardinal)},
			{Key: "intensity_scale", Value: []byte(strconv.Itoa(report.Intensity.Scale))},
			{Key: "observed_at", Value: []byte(report.Observation.ObservedAt)},
			{Key: "fetch_outcome", Value: []byte(report.Outcome.String())},
			{Key: "synthetic", Value: []byte(strconv.FormatBool(report.Outcome.Synthetic()))},
		},
	}, nil
}

func pointKey(lat, lng float64) string {
	return strconv.FormatFloat(lat, 'f', -1, 64) + "," + strconv.FormatFloat(lng, 'f', -1, 64)
}
