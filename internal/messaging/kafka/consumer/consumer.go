package consumer

import (
	"context"
	"encoding/json"
	"errors"

	"go-feeledger/internal/events"
	"go-feeledger/internal/receipt"
	receipterrors "go-feeledger/internal/receipt/errors"
	"go-feeledger/internal/shared/contextutil"
	"go-feeledger/internal/tenant"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is satisfied by *kafkago.Reader.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// ReportCache drops cached reports that a new payment makes stale.
type ReportCache interface {
	InvalidateFeeCollection(ctx context.Context, tn tenant.Tenant) error
}

// ConsumePaymentRecorded issues a receipt for every recorded payment and drops
// the branch's cached collection reports. Delivery is at least once;
// CreateReceipt is idempotent per payment. reports may be nil.
func ConsumePaymentRecorded(
	ctx context.Context,
	reader MessageReader,
	receipts receipt.Service,
	reports ReportCache,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.payment_recorded")
	log.Info("payment recorded consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("payment recorded consumer stopped")
				return
			}
			log.Error("fetch payment recorded message failed", zap.Error(err))
			continue
		}

		if !HandlePaymentRecorded(ctx, msg, receipts, reports, log) {
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit payment recorded message failed", zap.Error(err))
		}
	}
}

// HandlePaymentRecorded processes one message and reports whether its offset can be committed.
func HandlePaymentRecorded(ctx context.Context, msg kafkago.Message, receipts receipt.Service, reports ReportCache, log *zap.Logger) bool {
	var event events.PaymentRecordedEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		log.Error("decode payment_recorded event failed", zap.Int64("offset", msg.Offset), zap.Error(err))
		return true
	}

	if rid := header(msg, "request_id"); rid != "" {
		ctx = contextutil.WithRequestID(ctx, rid)
	}

	tn := tenant.Tenant{OrgID: event.OrgID, BranchID: event.BranchID}

	// A failed invalidation leaves the report stale until its TTL; it never blocks the receipt.
	if reports != nil {
		if err := reports.InvalidateFeeCollection(ctx, tn); err != nil {
			log.Warn("fee collection cache invalidation failed",
				zap.String("org_id", event.OrgID),
				zap.String("branch_id", event.BranchID),
				zap.Error(err),
			)
		}
	}

	res, err := receipts.CreateReceipt(ctx, tn, event.PaymentID, receipt.SystemRequester)
	if err != nil {
		if errors.Is(err, receipterrors.ErrPaymentNotFound) || errors.Is(err, tenant.ErrInvalidTenant) {
			log.Warn("payment for event not found, skipping",
				zap.String("payment_id", event.PaymentID),
				zap.String("org_id", event.OrgID),
			)
			return true
		}

		log.Error("issue receipt failed",
			zap.String("payment_id", event.PaymentID),
			zap.String("org_id", event.OrgID),
			zap.Error(err),
		)
		return false
	}

	log.Info("receipt issued from payment_recorded event",
		zap.String("payment_id", event.PaymentID),
		zap.String("receipt_number", res.ReceiptNumber),
	)
	return true
}

func header(msg kafkago.Message, key string) string {
	for _, h := range msg.Headers {
		if h.Key == key {
			return string(h.Value)
		}
	}
	return ""
}
