package payment_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"go-feeledger/internal/events"
	"go-feeledger/internal/messaging/kafka"
	kafkaMock "go-feeledger/internal/messaging/kafka/mock"
	"go-feeledger/internal/payment"
	"go-feeledger/internal/shared/contextutil"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestOutboxNotifier_WritesEventInsideTransaction(t *testing.T) {
	ctrl := gomock.NewController(t)
	outbox := kafkaMock.NewMockOutboxRepository(ctrl)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	mock.ExpectBegin()
	tx, err := db.Begin()
	require.NoError(t, err)

	ctx := contextutil.WithRequestID(context.Background(), "req-42")
	evt := events.PaymentRecordedEvent{
		EventType:     events.PaymentRecordedType,
		PaymentID:     "pay-1",
		InstallmentID: "inst-1",
		Amount:        700,
		Mode:          payment.ModeCash,
		OccurredAt:    time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	}

	outbox.EXPECT().WithTx(tx).Return(outbox)
	outbox.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, e kafka.OutboxEvent) error {
			assert.Equal(t, "req-42", e.RequestID)
			assert.Equal(t, events.PaymentRecordedTopic, e.Topic)
			assert.Equal(t, "pay-1", e.AggregateID)
			assert.Equal(t, kafka.OutboxStatusPending, e.Status)

			var decoded events.PaymentRecordedEvent
			require.NoError(t, json.Unmarshal(e.Payload, &decoded))
			assert.Equal(t, evt.PaymentID, decoded.PaymentID)
			assert.Equal(t, evt.Amount, decoded.Amount)
			assert.True(t, evt.OccurredAt.Equal(decoded.OccurredAt))
			return nil
		})

	require.NoError(t, payment.NewOutboxNotifier(outbox).PaymentRecorded(ctx, tx, evt))
}
