package handler

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
)

func NewTestKafkaHandler(logger *slog.Logger, reader messageReader, dlq messageWriter, processorID uuid.UUID, updater PaymentUpdater) *kafkaHandler {
	h := newKafkaHandler(logger, reader, dlq, processorID, updater)
	h.retry.InitialDelay = time.Millisecond
	h.retry.MaxDelay = time.Millisecond
	return h
}
