package events

import "time"

const (
	PaymentRecordedTopic = "fee.installment.payment.recorded.v1"
	PaymentRecordedType  = "payment_recorded"
)

// PaymentRecordedEvent is published once the payment transaction has committed.
type PaymentRecordedEvent struct {
	EventType     string    `json:"event_type"`
	PaymentID     string    `json:"payment_id"`
	InstallmentID string    `json:"installment_id"`
	OrgID         string    `json:"org_id"`
	BranchID      string    `json:"branch_id"`
	Amount        int64     `json:"amount"`
	Mode          string    `json:"mode"`
	PaidAmount    int64     `json:"paid_amount"`
	Status        string    `json:"status"`
	ReceivedBy    string    `json:"received_by"`
	OccurredAt    time.Time `json:"occurred_at"`
}
