package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/agro-market/internal/config"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

const producerName = "agro-market"

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type publisher struct {
	logger *slog.Logger
	writer messageWriter
	now    func() time.Time
}

// NewPublisher writes events keyed by order id, so every event of one order lands
// on the same partition and consumers see them in order.
func NewPublisher(logger *slog.Logger, cfg config.Kafka) *publisher {
	return newPublisher(logger, &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Topic:                  cfg.EventsTopic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		BatchTimeout:           cfg.BatchTimeout,
		AllowAutoTopicCreation: true,
	})
}

func newPublisher(logger *slog.Logger, w messageWriter) *publisher {
	return &publisher{
		logger: logger.With(slog.String("component", "events")),
		writer: w,
		now:    time.Now,
	}
}

func (p *publisher) Publish(ctx context.Context, eventType string, orderID uuid.UUID, payload any) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal %s payload: %w", eventType, err)
	}

	env := Envelope{
		EventID:    uuid.New(),
		EventType:  eventType,
		OccurredAt: p.now().UTC(),
		Producer:   producerName,
		OrderID:    orderID,
		Payload:    raw,
	}
	value, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("failed to marshal %s envelope: %w", eventType, err)
	}

	msg := kafka.Message{
		Key:   []byte(orderID.String()),
		Value: value,
		Time:  env.OccurredAt,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(eventType)},
		},
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to publish %s: %w", eventType, err)
	}

	p.logger.DebugContext(ctx, "event published",
		slog.String("event_type", eventType),
		slog.String("order_id", orderID.String()),
		slog.String("event_id", env.EventID.String()),
	)
	return nil
}

func (p *publisher) Close() error {
	return p.writer.Close()
}
