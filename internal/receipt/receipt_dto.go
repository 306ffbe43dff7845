package receipt

import "encoding/json"

type ReceiptResponse struct {
	ID            string          `json:"id"`
	PaymentID     string          `json:"payment_id"`
	ReceiptNumber string          `json:"receipt_number"`
	Amount        int64           `json:"amount"`
	Mode          string          `json:"mode"`
	GeneratedAt   string          `json:"generated_at"`
	GeneratedBy   string          `json:"generated_by"`
	Snapshot      json.RawMessage `json:"snapshot,omitempty"`
}
