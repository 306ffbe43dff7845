package installment

import "github.com/shopspring/decimal"

const dateLayout = "2006-01-02"

type PercentageEntryRequest struct {
	Percentage decimal.Decimal `json:"percentage"`
	OffsetDays int             `json:"offset_days" binding:"gte=0"`
}

type ExplicitEntryRequest struct {
	Amount  int64  `json:"amount" binding:"gt=0"`
	DueDate string `json:"due_date" binding:"required"`
}

type GenerateInstallmentsRequest struct {
	Kind        string                   `json:"kind" binding:"required,oneof=percentage explicit"`
	Percentages []PercentageEntryRequest `json:"percentages" binding:"omitempty,dive"`
	Explicit    []ExplicitEntryRequest   `json:"explicit" binding:"omitempty,dive"`
}

type InstallmentResponse struct {
	ID                string `json:"id"`
	InstallmentNumber int    `json:"installment_number"`
	Amount            int64  `json:"amount"`
	PaidAmount        int64  `json:"paid_amount"`
	Balance           int64  `json:"balance"`
	DueDate           string `json:"due_date"`
	Status            string `json:"status"`
	IsOverdue         bool   `json:"is_overdue"`
}
