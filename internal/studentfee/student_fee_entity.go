package studentfee

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	SourceBatchDefault = "batch_default"
	SourceCustom       = "custom"
	SourceMigrated     = "migrated"
)

type StudentFeeStructure struct {
	ID                  uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OrgID               uuid.UUID  `gorm:"type:uuid;not null;index"`
	BranchID            uuid.UUID  `gorm:"type:uuid;not null"`
	StudentID           uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:uq_student_fee_structure_session"`
	SessionID           uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:uq_student_fee_structure_session"`
	Source              string     `gorm:"type:varchar(20);not null"`
	BatchFeeStructureID *uuid.UUID `gorm:"type:uuid"`
	GrossAmount         int64      `gorm:"type:bigint;not null"`
	ScholarshipAmount   int64      `gorm:"type:bigint;not null;default:0"`
	NetAmount           int64      `gorm:"type:bigint;not null"`
	Remarks             *string    `gorm:"type:text"`
	// InstallmentPlan keeps the plan the schedule was generated from.
	InstallmentPlan datatypes.JSON `gorm:"type:jsonb"`
	CreatedBy       *uuid.UUID     `gorm:"type:uuid"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	LineItems []StudentFeeLineItem `gorm:"foreignKey:StudentFeeStructureID"`
}

func (StudentFeeStructure) TableName() string {
	return "student_fee_structures"
}

type StudentFeeLineItem struct {
	ID                    uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	StudentFeeStructureID uuid.UUID `gorm:"type:uuid;not null;index"`
	FeeComponentID        uuid.UUID `gorm:"type:uuid;not null"`
	OriginalAmount        int64     `gorm:"type:bigint;not null"`
	AdjustedAmount        int64     `gorm:"type:bigint;not null"`
	IsWaived              bool      `gorm:"not null;default:false"`
	WaiverReason          *string   `gorm:"type:varchar(255)"`
}

func (StudentFeeLineItem) TableName() string {
	return "student_fee_line_items"
}
