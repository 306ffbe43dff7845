package payment

import (
	"time"

	"github.com/google/uuid"
)

const (
	ModeCash         = "cash"
	ModeBankTransfer = "bank_transfer"
	ModeUPI          = "upi"
	ModeCard         = "card"
	ModeCheque       = "cheque"
	ModeOnline       = "online"
)

var validModes = map[string]struct{}{
	ModeCash:         {},
	ModeBankTransfer: {},
	ModeUPI:          {},
	ModeCard:         {},
	ModeCheque:       {},
	ModeOnline:       {},
}

func IsValidMode(mode string) bool {
	_, ok := validModes[mode]
	return ok
}

type InstallmentPayment struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OrgID         uuid.UUID  `gorm:"type:uuid;not null;index"`
	InstallmentID uuid.UUID  `gorm:"type:uuid;not null;index"`
	Amount        int64      `gorm:"type:bigint;not null"`
	Mode          string     `gorm:"type:varchar(20);not null"`
	Reference     *string    `gorm:"type:varchar(100)"`
	Remarks       *string    `gorm:"type:text"`
	ReceivedBy    *uuid.UUID `gorm:"type:uuid"`
	ReceivedAt    time.Time  `gorm:"not null"`
	CreatedAt     time.Time
}

func (InstallmentPayment) TableName() string {
	return "installment_payments"
}
