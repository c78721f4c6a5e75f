package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/agro-market/internal/config"
	"github.com/SergeyBogomolovv/agro-market/internal/entities"
	"github.com/SergeyBogomolovv/agro-market/pkg/utils"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

type PaymentUpdater interface {
	UpdatePaymentStatus(ctx context.Context, caller entities.Caller, id uuid.UUID, status entities.PaymentStatus, transactionID string) (entities.OrderView, error)
}

// PaymentNotification is what the payment processor publishes to the payments topic.
type PaymentNotification struct {
	OrderID       string `json:"order_id" validate:"required,uuid"`
	PaymentStatus string `json:"payment_status" validate:"required,oneof=pending paid failed refunded"`
	TransactionID string `json:"transaction_id" validate:"required,max=128"`
}

type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type kafkaHandler struct {
	dlq      messageWriter
	reader   messageReader
	logger   *slog.Logger
	validate *validator.Validate
	updater  PaymentUpdater
	caller   entities.Caller
	retry    utils.RetryConfig
}

// NewKafkaHandler consumes payment notifications and applies them as the
// payment processor account.
func NewKafkaHandler(logger *slog.Logger, cfg config.Kafka, processorID uuid.UUID, updater PaymentUpdater) *kafkaHandler {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: cfg.Brokers,
		GroupID: cfg.GroupID,
		Topic:   cfg.PaymentsTopic,
		MaxWait: cfg.ReaderMaxWait,
	})
	dlq := &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Balancer:               &kafka.LeastBytes{},
		BatchTimeout:           cfg.BatchTimeout,
		AllowAutoTopicCreation: true,
	}
	return newKafkaHandler(logger, reader, dlq, processorID, updater)
}

func newKafkaHandler(logger *slog.Logger, reader messageReader, dlq messageWriter, processorID uuid.UUID, updater PaymentUpdater) *kafkaHandler {
	return &kafkaHandler{
		logger:   logger.With(slog.String("handler", "kafka")),
		reader:   reader,
		dlq:      dlq,
		validate: validator.New(),
		updater:  updater,
		caller:   entities.Caller{ID: processorID, Role: entities.RolePaymentProcessor},
		retry: utils.RetryConfig{
			MaxAttempts:  3,
			InitialDelay: 100 * time.Millisecond,
			MaxDelay:     time.Second,
			ShouldRetry: func(err error) bool {
				return errors.Is(err, entities.ErrConflict)
			},
		},
	}
}

// Consume blocks until ctx is cancelled or the reader is closed.
func (h *kafkaHandler) Consume(ctx context.Context) {
	for {
		m, err := h.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) || ctx.Err() != nil {
				return
			}
			h.logger.Error("failed to fetch message", slog.Any("error", err))
			continue
		}

		paymentsInProgress.Inc()
		start := time.Now()
		err = h.handlePayment(ctx, m)
		paymentProcessingDuration.Observe(time.Since(start).Seconds())
		paymentsInProgress.Dec()

		if err != nil {
			paymentsFailed.Inc()
			h.logger.Error("failed to handle payment notification",
				slog.Any("error", err),
				slog.Int("partition", m.Partition),
				slog.Int64("offset", m.Offset),
			)

			// the writer retries on its own
			if err := h.WriteToDLQ(ctx, m, err); err != nil {
				h.logger.Error("failed to write message to DLQ", slog.Any("error", err))
				continue
			}
			paymentsDLQ.Inc()
		} else {
			paymentsProcessed.Inc()
		}

		if err := h.reader.CommitMessages(ctx, m); err != nil {
			commitErrors.Inc()
			h.logger.Error("failed to commit message", slog.Any("error", err))
		}
	}
}

func (h *kafkaHandler) handlePayment(ctx context.Context, m kafka.Message) error {
	var n PaymentNotification
	if err := json.Unmarshal(m.Value, &n); err != nil {
		return fmt.Errorf("failed to unmarshal payment notification: %w", err)
	}
	if err := h.validate.Struct(n); err != nil {
		return fmt.Errorf("invalid payment notification: %w", err)
	}

	orderID := uuid.MustParse(n.OrderID)
	return utils.Retry(ctx, h.retry, func() error {
		_, err := h.updater.UpdatePaymentStatus(ctx, h.caller, orderID, entities.PaymentStatus(n.PaymentStatus), n.TransactionID)
		return err
	})
}

func (h *kafkaHandler) WriteToDLQ(ctx context.Context, m kafka.Message, cause error) error {
	dead := kafka.Message{
		Topic: fmt.Sprintf("%s-dlq", m.Topic),
		Key:   m.Key,
		Value: m.Value,
		Headers: append(m.Headers,
			kafka.Header{Key: "error", Value: []byte(cause.Error())},
		),
	}
	return h.dlq.WriteMessages(ctx, dead)
}

func (h *kafkaHandler) Close() error {
	if err := h.reader.Close(); err != nil {
		return err
	}
	return h.dlq.Close()
}
