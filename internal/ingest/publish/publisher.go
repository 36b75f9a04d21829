// Package publish hands normalized records to downstream property
// matching over Kafka. Export is best effort: the parse response never
// depends on a broker being reachable.
package publish

import (
	"context"
	"fmt"

	"creingest/pkg/kafka"
	"creingest/pkg/model"

	"github.com/google/uuid"
)

const (
	// EventTypeListingNormalized labels every exported record event.
	EventTypeListingNormalized = "listing.normalized"

	// SchemaVersion of the exported record payload.
	SchemaVersion = "1"
)

// RecordPublisher exports normalized records after a successful parse.
type RecordPublisher interface {
	// PublishBatch publishes one message per record. It keeps going after
	// individual failures and reports them as a single error.
	PublishBatch(ctx context.Context, source string, records []model.Record) error
	Close() error
}

// Noop is the publisher wired when record export is disabled.
type Noop struct{}

func (Noop) PublishBatch(ctx context.Context, source string, records []model.Record) error {
	return nil
}

func (Noop) Close() error { return nil }

// producer is the slice of kafka.Producer the publisher needs.
type producer interface {
	Publish(ctx context.Context, msg kafka.Message) error
	Close() error
}

// KafkaPublisher publishes each record as one message keyed by match
// key, so listings for the same property stay on one partition across
// vendors. The source header carries the vendor label.
type KafkaPublisher struct {
	producer producer
}

func NewKafkaPublisher(p *kafka.Producer) RecordPublisher {
	return &KafkaPublisher{producer: p}
}

func (kp *KafkaPublisher) PublishBatch(ctx context.Context, source string, records []model.Record) error {
	if len(records) == 0 {
		return nil
	}

	var failed int
	var lastErr error
	for _, rec := range records {
		msg := kafka.NewMessage().
			WithKey(messageKey(rec)).
			WithValue(rec).
			WithEventType(EventTypeListingNormalized).
			WithSchemaVersion(SchemaVersion).
			WithSource(source).
			Build()

		if err := kp.producer.Publish(ctx, msg); err != nil {
			failed++
			lastErr = err
		}
	}

	if failed > 0 {
		return fmt.Errorf("publish failed for %d of %d records: %w", failed, len(records), lastErr)
	}
	return nil
}

func (kp *KafkaPublisher) Close() error {
	return kp.producer.Close()
}

// messageKey falls back to a random key for records whose address
// stripped to an empty match key, spreading them across partitions
// instead of funneling them all into one.
func messageKey(rec model.Record) string {
	if key := rec.Key(); key != "" {
		return key
	}
	return uuid.New().String()
}
