package services

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/sbilibin2017/course-platform/internal/logger"
	"github.com/sbilibin2017/course-platform/internal/models"
	"github.com/segmentio/kafka-go"
)

//go:generate mockgen -source=events.go -destination=mock_events_test.go -package=services

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
}

// EventPublisher publishes domain events.
type EventPublisher interface {
	Publish(ctx context.Context, evt models.Event)
}

// KafkaEventPublisher publishes events as JSON messages keyed by entity id.
type KafkaEventPublisher struct {
	writer KafkaWriter
}

// NewKafkaEventPublisher creates a new KafkaEventPublisher.
func NewKafkaEventPublisher(writer KafkaWriter) *KafkaEventPublisher {
	return &KafkaEventPublisher{writer: writer}
}

// Publish writes evt to Kafka. Failures are logged and swallowed.
func (p *KafkaEventPublisher) Publish(ctx context.Context, evt models.Event) {
	if p == nil || p.writer == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping publishing", "type", evt.Type)
		return
	}
	if evt.OccurredAt.IsZero() {
		evt.OccurredAt = time.Now().UTC()
	}

	data, err := json.Marshal(evt)
	if err != nil {
		logger.Log.Errorw("Failed to marshal event for Kafka", "type", evt.Type, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(evt.EntityID, 10)),
		Value: data,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(evt.Type)},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish event to Kafka", "type", evt.Type, "entity_id", evt.EntityID, "error", err)
		return
	}
	logger.Log.Infow("Event published to Kafka", "type", evt.Type, "entity_id", evt.EntityID)
}

// CommitHook schedules fn to run once the caller's unit of work has committed.
type CommitHook func(ctx context.Context, fn func())

// AfterCommitPublisher holds events back until the surrounding transaction
// commits, so rolled-back changes are never announced.
type AfterCommitPublisher struct {
	next        EventPublisher
	afterCommit CommitHook
}

// NewAfterCommitPublisher wraps next so that events wait for afterCommit.
func NewAfterCommitPublisher(next EventPublisher, afterCommit CommitHook) *AfterCommitPublisher {
	return &AfterCommitPublisher{next: next, afterCommit: afterCommit}
}

// Publish queues evt and stamps OccurredAt when the commit has happened.
func (p *AfterCommitPublisher) Publish(ctx context.Context, evt models.Event) {
	p.afterCommit(ctx, func() {
		evt.OccurredAt = time.Now().UTC()
		// the request may finish before the broker answers
		p.next.Publish(context.WithoutCancel(ctx), evt)
	})
}

// publish is a nil-safe helper shared by the services.
func publish(ctx context.Context, events EventPublisher, evtType models.EventType, entityID, userID int64) {
	if events == nil {
		return
	}
	events.Publish(ctx, models.Event{
		Type:       evtType,
		EntityID:   entityID,
		UserID:     userID,
		OccurredAt: time.Now().UTC(),
	})
}
