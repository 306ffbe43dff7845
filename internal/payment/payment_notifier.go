package payment

import (
	"context"
	"database/sql"

	"go-feeledger/internal/events"
	"go-feeledger/internal/messaging/kafka"
	"go-feeledger/internal/shared/contextutil"
)

// Notifier is told about a recorded payment while its transaction is still open.
// Returning an error rolls the payment back.
type Notifier interface {
	PaymentRecorded(ctx context.Context, tx *sql.Tx, evt events.PaymentRecordedEvent) error
}

type outboxNotifier struct {
	outbox kafka.OutboxRepository
}

// NewOutboxNotifier stores the event in the outbox inside the payment transaction.
func NewOutboxNotifier(outbox kafka.OutboxRepository) Notifier {
	return &outboxNotifier{outbox: outbox}
}

func (n *outboxNotifier) PaymentRecorded(ctx context.Context, tx *sql.Tx, evt events.PaymentRecordedEvent) error {
	event, err := kafka.NewOutboxEvent(
		contextutil.GetRequestID(ctx),
		"installment_payment",
		evt.PaymentID,
		evt.EventType,
		events.PaymentRecordedTopic,
		evt,
	)
	if err != nil {
		return err
	}
	return n.outbox.WithTx(tx).Create(ctx, event)
}

type nopNotifier struct{}

func NopNotifier() Notifier { return nopNotifier{} }

func (nopNotifier) PaymentRecorded(context.Context, *sql.Tx, events.PaymentRecordedEvent) error {
	return nil
}
