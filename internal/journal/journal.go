// Package journal keeps an append-only, in-memory record of domain events.
// It is an audit trail: nothing derives state from it.
package journal

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var (
	ErrConcurrencyConflict = errors.New("concurrency conflict: version mismatch")
	ErrInvalidVersion      = errors.New("invalid version number")
)

// Event represents a domain event with full metadata
type Event struct {
	ID            uuid.UUID       `json:"id"`
	Sequence      int64           `json:"sequence"`
	AggregateID   string          `json:"aggregate_id"`
	AggregateType string          `json:"aggregate_type"`
	EventType     string          `json:"event_type"`
	EventData     json.RawMessage `json:"event_data"`
	Metadata      map[string]any  `json:"metadata,omitempty"`
	Version       int             `json:"version"`
	CreatedAt     time.Time       `json:"created_at"`
}

// Journal stores events in append order with per-aggregate versions.
type Journal struct {
	mu       sync.RWMutex
	events   []Event
	versions map[string]int
	tracer   trace.Tracer
	now      func() time.Time
}

// New creates an empty journal.
func New() *Journal {
	return &Journal{
		versions: make(map[string]int),
		tracer:   otel.Tracer("gymontherock/journal"),
		now:      time.Now,
	}
}

// Append atomically appends events with optimistic concurrency control
func (j *Journal) Append(ctx context.Context, aggregateID, aggregateType string, expectedVersion int, events []Event) error {
	_, span := j.tracer.Start(ctx, "journal.append",
		trace.WithAttributes(
			attribute.String("aggregate.id", aggregateID),
			attribute.String("aggregate.type", aggregateType),
			attribute.Int("expected.version", expectedVersion),
			attribute.Int("event.count", len(events)),
		),
	)
	defer span.End()

	if expectedVersion < 0 {
		return ErrInvalidVersion
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	key := aggregateKey(aggregateType, aggregateID)
	currentVersion := j.versions[key]
	if currentVersion != expectedVersion {
		span.SetAttributes(
			attribute.Int("actual.version", currentVersion),
			attribute.Bool("conflict.detected", true),
		)
		return ErrConcurrencyConflict
	}

	for i, event := range events {
		event.ID = uuid.New()
		event.Sequence = int64(len(j.events) + 1)
		event.AggregateID = aggregateID
		event.AggregateType = aggregateType
		event.Version = expectedVersion + i + 1
		event.CreatedAt = j.now().UTC()
		j.events = append(j.events, event)

		span.AddEvent("event.appended", trace.WithAttributes(
			attribute.Int64("event.sequence", event.Sequence),
			attribute.Int("event.version", event.Version),
			attribute.String("event.type", event.EventType),
		))
	}
	j.versions[key] = expectedVersion + len(events)

	span.SetAttributes(attribute.Bool("append.success", true))
	return nil
}

// Record marshals data and appends it as the next event of the aggregate.
func (j *Journal) Record(ctx context.Context, aggregateID, aggregateType, eventType string, data any) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", eventType, err)
	}
	version := j.CurrentVersion(ctx, aggregateType, aggregateID)
	return j.Append(ctx, aggregateID, aggregateType, version, []Event{{
		EventType: eventType,
		EventData: payload,
	}})
}

// CurrentVersion returns the latest version for an aggregate, zero if unknown.
func (j *Journal) CurrentVersion(ctx context.Context, aggregateType, aggregateID string) int {
	_, span := j.tracer.Start(ctx, "journal.get_version",
		trace.WithAttributes(
			attribute.String("aggregate.id", aggregateID),
			attribute.String("aggregate.type", aggregateType),
		),
	)
	defer span.End()

	j.mu.RLock()
	defer j.mu.RUnlock()
	version := j.versions[aggregateKey(aggregateType, aggregateID)]
	span.SetAttributes(attribute.Int("current.version", version))
	return version
}

// Stream returns up to batchSize events with a sequence greater than fromSequence.
// A batchSize of zero means no limit.
func (j *Journal) Stream(ctx context.Context, fromSequence int64, batchSize int) []Event {
	_, span := j.tracer.Start(ctx, "journal.stream",
		trace.WithAttributes(
			attribute.Int64("from.sequence", fromSequence),
			attribute.Int("batch.size", batchSize),
		),
	)
	defer span.End()

	j.mu.RLock()
	defer j.mu.RUnlock()

	var events []Event
	for _, event := range j.events {
		if event.Sequence <= fromSequence {
			continue
		}
		if batchSize > 0 && len(events) == batchSize {
			break
		}
		events = append(events, event)
	}

	span.SetAttributes(attribute.Int("events.streamed", len(events)))
	return events
}

func aggregateKey(aggregateType, aggregateID string) string {
	return aggregateType + "/" + aggregateID
}

// Len returns the total number of recorded events.
func (j *Journal) Len() int {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return len(j.events)
}
