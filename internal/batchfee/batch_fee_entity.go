package batchfee

import (
	"time"

	"github.com/google/uuid"
)

type BatchFeeStructure struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OrgID       uuid.UUID `gorm:"type:uuid;not null;index"`
	BranchID    uuid.UUID `gorm:"type:uuid;not null"`
	BatchID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_batch_fee_structure_session"`
	SessionID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_batch_fee_structure_session"`
	Name        string    `gorm:"type:varchar(150);not null"`
	TotalAmount int64     `gorm:"type:bigint;not null"`
	IsActive    bool      `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	LineItems []BatchFeeLineItem `gorm:"foreignKey:BatchFeeStructureID"`
}

func (BatchFeeStructure) TableName() string {
	return "batch_fee_structures"
}

type BatchFeeLineItem struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	BatchFeeStructureID uuid.UUID `gorm:"type:uuid;not null;index"`
	FeeComponentID      uuid.UUID `gorm:"type:uuid;not null"`
	Amount              int64     `gorm:"type:bigint;not null"`
}

func (BatchFeeLineItem) TableName() string {
	return "batch_fee_line_items"
}

// WriteKind tags how a structure reaches storage.
type WriteKind int

const (
	WriteInsert WriteKind = iota
	WriteReplace
)

func (k WriteKind) String() string {
	if k == WriteReplace {
		return "replace"
	}
	return "insert"
}

// Write is the single persistence operation behind create-or-update.
type Write struct {
	Kind      WriteKind
	Structure *BatchFeeStructure
}
