package payment

import "go-feeledger/internal/installment"

type RecordPaymentRequest struct {
	// Amount is validated by the service so that zero and negative values get a precise error.
	Amount    int64   `json:"amount"`
	Mode      string  `json:"mode" binding:"required,oneof=cash bank_transfer upi card cheque online"`
	Reference *string `json:"reference" binding:"omitempty,max=100"`
	Remarks   *string `json:"remarks"`
}

type PaymentResponse struct {
	ID            string  `json:"id"`
	InstallmentID string  `json:"installment_id"`
	Amount        int64   `json:"amount"`
	Mode          string  `json:"mode"`
	Reference     *string `json:"reference,omitempty"`
	Remarks       *string `json:"remarks,omitempty"`
	ReceivedBy    string  `json:"received_by,omitempty"`
	ReceivedAt    string  `json:"received_at"`
}

type RecordPaymentResponse struct {
	Payment     PaymentResponse                 `json:"payment"`
	Installment installment.InstallmentResponse `json:"installment"`
}

// OutstandingDetails is attached to an over-payment rejection.
type OutstandingDetails struct {
	Outstanding int64 `json:"outstanding"`
}
