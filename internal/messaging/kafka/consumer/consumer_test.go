package consumer_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"go-feeledger/internal/events"
	"go-feeledger/internal/messaging/kafka/consumer"
	"go-feeledger/internal/receipt"
	receipterrors "go-feeledger/internal/receipt/errors"
	receiptMock "go-feeledger/internal/receipt/mock"
	reportingMock "go-feeledger/internal/reporting/mock"
	"go-feeledger/internal/shared/contextutil"
	"go-feeledger/internal/tenant"

	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func paymentMessage(t *testing.T, evt events.PaymentRecordedEvent) kafkago.Message {
	t.Helper()
	body, err := json.Marshal(evt)
	require.NoError(t, err)
	return kafkago.Message{
		Topic:   events.PaymentRecordedTopic,
		Value:   body,
		Headers: []kafkago.Header{{Key: "request_id", Value: []byte("req-7")}},
	}
}

func TestHandlePaymentRecorded_IssuesReceiptAsSystem(t *testing.T) {
	ctrl := gomock.NewController(t)
	receipts := receiptMock.NewMockService(ctrl)
	evt := events.PaymentRecordedEvent{
		EventType: events.PaymentRecordedType,
		PaymentID: uuid.NewString(),
		OrgID:     uuid.NewString(),
		BranchID:  uuid.NewString(),
	}

	receipts.EXPECT().
		CreateReceipt(gomock.Any(), tenant.Tenant{OrgID: evt.OrgID, BranchID: evt.BranchID}, evt.PaymentID, receipt.SystemRequester).
		DoAndReturn(func(ctx context.Context, _ tenant.Tenant, _ string, _ string) (receipt.ReceiptResponse, error) {
			assert.Equal(t, "req-7", contextutil.GetRequestID(ctx))
			return receipt.ReceiptResponse{ReceiptNumber: "ACME-2025-000001"}, nil
		})

	commit := consumer.HandlePaymentRecorded(context.Background(), paymentMessage(t, evt), receipts, nil, zap.NewNop())

	assert.True(t, commit)
}

func TestHandlePaymentRecorded_InvalidatesCachedReports(t *testing.T) {
	ctrl := gomock.NewController(t)
	receipts := receiptMock.NewMockService(ctrl)
	reports := reportingMock.NewMockService(ctrl)
	evt := events.PaymentRecordedEvent{PaymentID: uuid.NewString(), OrgID: uuid.NewString(), BranchID: uuid.NewString()}
	tn := tenant.Tenant{OrgID: evt.OrgID, BranchID: evt.BranchID}

	gomock.InOrder(
		reports.EXPECT().InvalidateFeeCollection(gomock.Any(), tn).Return(nil),
		receipts.EXPECT().CreateReceipt(gomock.Any(), tn, evt.PaymentID, receipt.SystemRequester).Return(receipt.ReceiptResponse{}, nil),
	)

	assert.True(t, consumer.HandlePaymentRecorded(context.Background(), paymentMessage(t, evt), receipts, reports, zap.NewNop()))
}

func TestHandlePaymentRecorded_InvalidationFailureDoesNotBlockReceipt(t *testing.T) {
	ctrl := gomock.NewController(t)
	receipts := receiptMock.NewMockService(ctrl)
	reports := reportingMock.NewMockService(ctrl)
	evt := events.PaymentRecordedEvent{PaymentID: uuid.NewString(), OrgID: uuid.NewString(), BranchID: uuid.NewString()}

	reports.EXPECT().InvalidateFeeCollection(gomock.Any(), gomock.Any()).Return(errors.New("redis down"))
	receipts.EXPECT().CreateReceipt(gomock.Any(), gomock.Any(), evt.PaymentID, receipt.SystemRequester).Return(receipt.ReceiptResponse{}, nil)

	assert.True(t, consumer.HandlePaymentRecorded(context.Background(), paymentMessage(t, evt), receipts, reports, zap.NewNop()))
}

func TestHandlePaymentRecorded_CommitDecisions(t *testing.T) {
	evt := events.PaymentRecordedEvent{PaymentID: uuid.NewString(), OrgID: uuid.NewString(), BranchID: uuid.NewString()}

	tests := []struct {
		name   string
		err    error
		commit bool
	}{
		{name: "missing payment is skipped", err: receipterrors.ErrPaymentNotFound, commit: true},
		{name: "transient failure is retried", err: errors.New("connection reset"), commit: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			receipts := receiptMock.NewMockService(ctrl)
			receipts.EXPECT().CreateReceipt(gomock.Any(), gomock.Any(), evt.PaymentID, receipt.SystemRequester).
				Return(receipt.ReceiptResponse{}, tt.err)

			assert.Equal(t, tt.commit, consumer.HandlePaymentRecorded(context.Background(), paymentMessage(t, evt), receipts, nil, zap.NewNop()))
		})
	}
}

func TestHandlePaymentRecorded_UndecodableMessageIsCommitted(t *testing.T) {
	ctrl := gomock.NewController(t)
	receipts := receiptMock.NewMockService(ctrl)

	commit := consumer.HandlePaymentRecorded(context.Background(), kafkago.Message{Value: []byte("{not json")}, receipts, nil, zap.NewNop())

	assert.True(t, commit)
}

type scriptedReader struct {
	msgs      []kafkago.Message
	committed []kafkago.Message
	cancel    context.CancelFunc
}

func (r *scriptedReader) FetchMessage(ctx context.Context) (kafkago.Message, error) {
	if len(r.msgs) == 0 {
		r.cancel()
		<-ctx.Done()
		return kafkago.Message{}, ctx.Err()
	}
	m := r.msgs[0]
	r.msgs = r.msgs[1:]
	return m, nil
}

func (r *scriptedReader) CommitMessages(_ context.Context, msgs ...kafkago.Message) error {
	r.committed = append(r.committed, msgs...)
	return nil
}

func TestConsumePaymentRecorded_CommitsHandledMessages(t *testing.T) {
	ctrl := gomock.NewController(t)
	receipts := receiptMock.NewMockService(ctrl)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ok := events.PaymentRecordedEvent{PaymentID: uuid.NewString(), OrgID: uuid.NewString(), BranchID: uuid.NewString()}
	failing := events.PaymentRecordedEvent{PaymentID: uuid.NewString(), OrgID: ok.OrgID, BranchID: ok.BranchID}

	receipts.EXPECT().CreateReceipt(gomock.Any(), gomock.Any(), ok.PaymentID, receipt.SystemRequester).Return(receipt.ReceiptResponse{}, nil)
	receipts.EXPECT().CreateReceipt(gomock.Any(), gomock.Any(), failing.PaymentID, receipt.SystemRequester).Return(receipt.ReceiptResponse{}, errors.New("db down"))

	reader := &scriptedReader{msgs: []kafkago.Message{paymentMessage(t, ok), paymentMessage(t, failing)}, cancel: cancel}

	consumer.ConsumePaymentRecorded(ctx, reader, receipts, nil, zap.NewNop())

	require.Len(t, reader.committed, 1)
	var got events.PaymentRecordedEvent
	require.NoError(t, json.Unmarshal(reader.committed[0].Value, &got))
	assert.Equal(t, ok.PaymentID, got.PaymentID)
}
