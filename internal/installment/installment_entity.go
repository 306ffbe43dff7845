package installment

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusUpcoming = "upcoming"
	StatusDue      = "due"
	StatusPartial  = "partial"
	StatusPaid     = "paid"
	StatusOverdue  = "overdue"
)

type FeeInstallment struct {
	ID                    uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OrgID                 uuid.UUID `gorm:"type:uuid;not null;index"`
	StudentFeeStructureID uuid.UUID `gorm:"type:uuid;not null;index"`
	InstallmentNumber     int       `gorm:"not null"`
	Amount                int64     `gorm:"type:bigint;not null"`
	DueDate               time.Time `gorm:"type:date;not null"`
	PaidAmount            int64     `gorm:"type:bigint;not null;default:0"`
	Status                string    `gorm:"type:varchar(20);not null"`
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

func (FeeInstallment) TableName() string {
	return "fee_installments"
}

func (i FeeInstallment) Balance() int64 {
	return i.Amount - i.PaidAmount
}

// FeeReminder rows are written by the notification side and reference an installment.
type FeeReminder struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OrgID         uuid.UUID `gorm:"type:uuid;not null"`
	InstallmentID uuid.UUID `gorm:"type:uuid;not null;index"`
	Channel       string    `gorm:"type:varchar(20)"`
	ScheduledAt   time.Time
	SentAt        *time.Time
}

func (FeeReminder) TableName() string {
	return "fee_reminders"
}

// PaymentLink rows come from the online payment gateway. The installment
// reference is optional and survives the installment being rebuilt as NULL.
type PaymentLink struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OrgID         uuid.UUID  `gorm:"type:uuid;not null"`
	InstallmentID *uuid.UUID `gorm:"type:uuid;index"`
	URL           string     `gorm:"type:text"`
	Status        string     `gorm:"type:varchar(20)"`
	ExpiresAt     *time.Time
}

func (PaymentLink) TableName() string {
	return "payment_links"
}
