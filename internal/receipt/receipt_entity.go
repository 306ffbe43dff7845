package receipt

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// SystemRequester marks receipts issued by the payment event consumer.
const SystemRequester = "system"

type Receipt struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OrgID         uuid.UUID      `gorm:"type:uuid;not null;index"`
	PaymentID     uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:uq_receipt_payment"`
	ReceiptNumber string         `gorm:"type:varchar(40);not null"`
	Amount        int64          `gorm:"type:bigint;not null"`
	Mode          string         `gorm:"type:varchar(20);not null"`
	GeneratedAt   time.Time      `gorm:"not null"`
	GeneratedBy   string         `gorm:"type:varchar(64);not null"`
	Snapshot      datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt     time.Time
}

func (Receipt) TableName() string {
	return "receipts"
}

// PaymentContext is the payment as seen from the receipt: the amounts plus who and what it paid for.
type PaymentContext struct {
	PaymentID         uuid.UUID `json:"payment_id"`
	InstallmentID     uuid.UUID `json:"installment_id"`
	StructureID       uuid.UUID `json:"structure_id"`
	StudentID         uuid.UUID `json:"student_id"`
	StudentName       string    `json:"student_name"`
	SessionID         uuid.UUID `json:"session_id"`
	InstallmentNumber int       `json:"installment_number"`
	Amount            int64     `json:"amount"`
	Mode              string    `json:"mode"`
	Reference         *string   `json:"reference,omitempty"`
	ReceivedAt        time.Time `json:"received_at"`
}
