package studentfee

import (
	"context"
	"database/sql"

	"go-feeledger/internal/shared/dbtx"
	"go-feeledger/internal/tenant"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=student_fee_repo.go -destination=mock/student_fee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, structure *StudentFeeStructure) error
	FindByIDAndOrg(ctx context.Context, orgID, id string) (*StudentFeeStructure, error)
	LockByIDAndOrg(ctx context.Context, orgID, id string) (*StudentFeeStructure, error)
	FindByStudent(ctx context.Context, orgID, studentID string) ([]StudentFeeStructure, error)
	ExistsForStudentSession(ctx context.Context, orgID, studentID, sessionID string) (bool, error)
	FindBySessionForStudents(ctx context.Context, orgID, sessionID string, studentIDs []string) ([]StudentFeeStructure, error)
	LockBySessionForStudents(ctx context.Context, orgID, sessionID string, studentIDs []string) ([]StudentFeeStructure, error)
	SetInstallmentPlan(ctx context.Context, orgID, id string, plan datatypes.JSON) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: dbtx.Bind(r.db, tx)}
}

// Create inserts the structure together with its line items.
func (r *repository) Create(ctx context.Context, structure *StudentFeeStructure) error {
	return r.db.WithContext(ctx).Create(structure).Error
}

func (r *repository) FindByIDAndOrg(ctx context.Context, orgID, id string) (*StudentFeeStructure, error) {
	var structure StudentFeeStructure
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(orgID)).
		Preload("LineItems").
		First(&structure, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &structure, nil
}

// LockByIDAndOrg reads the structure header with a row lock held until the transaction ends.
func (r *repository) LockByIDAndOrg(ctx context.Context, orgID, id string) (*StudentFeeStructure, error) {
	var structure StudentFeeStructure
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Scopes(tenant.Scope(orgID)).
		First(&structure, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &structure, nil
}

func (r *repository) FindByStudent(ctx context.Context, orgID, studentID string) ([]StudentFeeStructure, error) {
	var structures []StudentFeeStructure
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(orgID)).
		Preload("LineItems").
		Where("student_id = ?", studentID).
		Order("created_at DESC").
		Find(&structures).Error
	return structures, err
}

func (r *repository) ExistsForStudentSession(ctx context.Context, orgID, studentID, sessionID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&StudentFeeStructure{}).
		Scopes(tenant.Scope(orgID)).
		Where("student_id = ? AND session_id = ?", studentID, sessionID).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) FindBySessionForStudents(ctx context.Context, orgID, sessionID string, studentIDs []string) ([]StudentFeeStructure, error) {
	var structures []StudentFeeStructure
	if len(studentIDs) == 0 {
		return structures, nil
	}
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(orgID)).
		Where("session_id = ? AND student_id IN ?", sessionID, studentIDs).
		Find(&structures).Error
	return structures, err
}

// LockBySessionForStudents row-locks the structures in id order, so it waits for
// installment generation on any of them and two callers cannot deadlock.
func (r *repository) LockBySessionForStudents(ctx context.Context, orgID, sessionID string, studentIDs []string) ([]StudentFeeStructure, error) {
	var structures []StudentFeeStructure
	if len(studentIDs) == 0 {
		return structures, nil
	}
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Scopes(tenant.Scope(orgID)).
		Where("session_id = ? AND student_id IN ?", sessionID, studentIDs).
		Order("id").
		Find(&structures).Error
	return structures, err
}

func (r *repository) SetInstallmentPlan(ctx context.Context, orgID, id string, plan datatypes.JSON) error {
	return r.db.WithContext(ctx).
		Model(&StudentFeeStructure{}).
		Scopes(tenant.Scope(orgID)).
		Where("id = ?", id).
		Update("installment_plan", plan).Error
}
