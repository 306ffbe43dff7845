package scholarship

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

const (
	DiscountPercentage      = "percentage"
	DiscountFixed           = "fixed"
	DiscountComponentWaiver = "component_waiver"
)

// Scholarship is a discount definition. Value is a percentage for
// DiscountPercentage and an amount in minor units for DiscountFixed.
type Scholarship struct {
	ID                 uuid.UUID                   `gorm:"type:uuid;primaryKey"`
	OrgID              uuid.UUID                   `gorm:"type:uuid;not null"`
	Name               string                      `gorm:"type:varchar(120);not null"`
	DiscountType       string                      `gorm:"type:varchar(30);not null"`
	Value              decimal.Decimal             `gorm:"type:numeric(12,2);not null;default:0"`
	MaxAmount          *int64                      `gorm:"type:bigint"`
	WaivedComponentIDs datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	IsActive           bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (Scholarship) TableName() string {
	return "scholarships"
}

// StudentScholarship grants a scholarship to a student for one session.
type StudentScholarship struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrgID         uuid.UUID `gorm:"type:uuid;not null"`
	StudentID     uuid.UUID `gorm:"type:uuid;not null"`
	ScholarshipID uuid.UUID `gorm:"type:uuid;not null"`
	SessionID     uuid.UUID `gorm:"type:uuid;not null"`
	IsActive      bool
	CreatedAt     time.Time
}

func (StudentScholarship) TableName() string {
	return "student_scholarships"
}
