package feecomponent

import (
	"time"

	"github.com/google/uuid"
)

const (
	TypeTuition   = "tuition"
	TypeAdmission = "admission"
	TypeTransport = "transport"
	TypeExam      = "exam"
	TypeLibrary   = "library"
	TypeLab       = "lab"
	TypeHostel    = "hostel"
	TypeOther     = "other"
)

// FeeComponent is an org-level fee type. Rows are deactivated, never deleted,
// because historical line items keep pointing at them.
type FeeComponent struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OrgID       uuid.UUID `gorm:"type:uuid;not null;index:idx_fee_component_org_active"`
	Name        string    `gorm:"type:varchar(120);not null"`
	Type        string    `gorm:"type:varchar(30);not null"`
	Description *string   `gorm:"type:text"`
	BaseAmount  int64     `gorm:"type:bigint;not null;default:0"`
	IsActive    bool      `gorm:"not null;default:true;index:idx_fee_component_org_active"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (FeeComponent) TableName() string {
	return "fee_components"
}
