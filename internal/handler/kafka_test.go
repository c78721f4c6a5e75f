package handler_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/SergeyBogomolovv/agro-market/internal/entities"
	"github.com/SergeyBogomolovv/agro-market/internal/handler"
	mocks "github.com/SergeyBogomolovv/agro-market/internal/handler/mocks"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fakeReader struct {
	mu        sync.Mutex
	messages  []kafka.Message
	committed []kafka.Message
}

func (r *fakeReader) FetchMessage(ctx context.Context) (kafka.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.messages) == 0 {
		return kafka.Message{}, io.EOF
	}
	m := r.messages[0]
	r.messages = r.messages[1:]
	return m, nil
}

func (r *fakeReader) CommitMessages(ctx context.Context, msgs ...kafka.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.committed = append(r.committed, msgs...)
	return nil
}

func (r *fakeReader) Close() error { return nil }

type fakeWriter struct {
	mu      sync.Mutex
	err     error
	written []kafka.Message
}

func (w *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.err != nil {
		return w.err
	}
	w.written = append(w.written, msgs...)
	return nil
}

func (w *fakeWriter) Close() error { return nil }

func TestKafkaHandler_Consume(t *testing.T) {
	processorID := uuid.New()
	orderID := uuid.MustParse("0b8f3d0c-7a43-4b0e-a3a1-0d3b0f6f5c21")
	processor := entities.Caller{ID: processorID, Role: entities.RolePaymentProcessor}
	valid := []byte(`{"order_id":"0b8f3d0c-7a43-4b0e-a3a1-0d3b0f6f5c21","payment_status":"paid","transaction_id":"tx-42"}`)

	testCases := []struct {
		name          string
		value         []byte
		dlqErr        error
		mockBehavior  func(u *mocks.MockPaymentUpdater)
		wantDLQ       bool
		wantCommitted bool
	}{
		{
			name:  "applied",
			value: valid,
			mockBehavior: func(u *mocks.MockPaymentUpdater) {
				u.EXPECT().UpdatePaymentStatus(mock.Anything, processor, orderID, entities.PaymentPaid, "tx-42").
					Return(entities.OrderView{}, nil).Once()
			},
			wantCommitted: true,
		},
		{
			name:          "invalid json",
			value:         []byte(`{"order_id":`),
			mockBehavior:  func(u *mocks.MockPaymentUpdater) {},
			wantDLQ:       true,
			wantCommitted: true,
		},
		{
			name:          "unknown payment status",
			value:         []byte(`{"order_id":"0b8f3d0c-7a43-4b0e-a3a1-0d3b0f6f5c21","payment_status":"maybe","transaction_id":"tx-42"}`),
			mockBehavior:  func(u *mocks.MockPaymentUpdater) {},
			wantDLQ:       true,
			wantCommitted: true,
		},
		{
			name:  "conflict is retried",
			value: valid,
			mockBehavior: func(u *mocks.MockPaymentUpdater) {
				u.EXPECT().UpdatePaymentStatus(mock.Anything, processor, orderID, entities.PaymentPaid, "tx-42").
					Return(entities.OrderView{}, entities.ErrConflict).Twice()
				u.EXPECT().UpdatePaymentStatus(mock.Anything, processor, orderID, entities.PaymentPaid, "tx-42").
					Return(entities.OrderView{}, nil).Once()
			},
			wantCommitted: true,
		},
		{
			name:  "unknown order goes to dlq",
			value: valid,
			mockBehavior: func(u *mocks.MockPaymentUpdater) {
				u.EXPECT().UpdatePaymentStatus(mock.Anything, processor, orderID, entities.PaymentPaid, "tx-42").
					Return(entities.OrderView{}, entities.ErrOrderNotFound).Once()
			},
			wantDLQ:       true,
			wantCommitted: true,
		},
		{
			name:   "dlq failure leaves message uncommitted",
			value:  valid,
			dlqErr: errors.New("broker down"),
			mockBehavior: func(u *mocks.MockPaymentUpdater) {
				u.EXPECT().UpdatePaymentStatus(mock.Anything, processor, orderID, entities.PaymentPaid, "tx-42").
					Return(entities.OrderView{}, entities.ErrOrderNotFound).Once()
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			updater := mocks.NewMockPaymentUpdater(t)
			tc.mockBehavior(updater)

			reader := &fakeReader{messages: []kafka.Message{{Topic: "payments", Key: []byte(orderID.String()), Value: tc.value}}}
			dlq := &fakeWriter{err: tc.dlqErr}
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))

			h := handler.NewTestKafkaHandler(logger, reader, dlq, processorID, updater)
			h.Consume(context.Background())

			if tc.wantDLQ {
				require.Len(t, dlq.written, 1)
				assert.Equal(t, "payments-dlq", dlq.written[0].Topic)
				assert.Equal(t, tc.value, dlq.written[0].Value)
				require.NotEmpty(t, dlq.written[0].Headers)
				assert.Equal(t, "error", dlq.written[0].Headers[len(dlq.written[0].Headers)-1].Key)
			} else {
				assert.Empty(t, dlq.written)
			}

			if tc.wantCommitted {
				assert.Len(t, reader.committed, 1)
			} else {
				assert.Empty(t, reader.committed)
			}
		})
	}
}

func TestKafkaHandler_StopsOnCancel(t *testing.T) {
	reader := &blockingReader{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := handler.NewTestKafkaHandler(logger, reader, &fakeWriter{}, uuid.New(), mocks.NewMockPaymentUpdater(t))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		h.Consume(ctx)
		close(done)
	}()

	cancel()
	<-done
	require.NoError(t, h.Close())
}

type blockingReader struct{}

func (blockingReader) FetchMessage(ctx context.Context) (kafka.Message, error) {
	<-ctx.Done()
	return kafka.Message{}, ctx.Err()
}

func (blockingReader) CommitMessages(ctx context.Context, msgs ...kafka.Message) error { return nil }

func (blockingReader) Close() error { return nil }
