package academic

import (
	"time"

	"github.com/google/uuid"
)

// The tables below belong to the academic administration side of the system.
// The fee ledger only reads them.

type Organization struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string
}

func (Organization) TableName() string {
	return "organizations"
}

type AcademicSession struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrgID     uuid.UUID `gorm:"type:uuid"`
	Name      string
	StartDate time.Time `gorm:"type:date"`
	EndDate   time.Time `gorm:"type:date"`
}

func (AcademicSession) TableName() string {
	return "academic_sessions"
}

type Batch struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrgID    uuid.UUID `gorm:"type:uuid"`
	BranchID uuid.UUID `gorm:"type:uuid"`
	Name     string
}

func (Batch) TableName() string {
	return "batches"
}

type Student struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrgID    uuid.UUID `gorm:"type:uuid"`
	BranchID uuid.UUID `gorm:"type:uuid"`
	BatchID  uuid.UUID `gorm:"type:uuid"`
	FullName string
	IsActive bool
}

func (Student) TableName() string {
	return "students"
}
