package academic

import (
	"context"
	"database/sql"
	"errors"

	"go-feeledger/internal/shared/dbtx"
	"go-feeledger/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=academic_repo.go -destination=mock/academic_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	BatchInBranch(ctx context.Context, orgID, branchID, batchID string) (bool, error)
	StudentInBranch(ctx context.Context, orgID, branchID, studentID string) (bool, error)
	FindSession(ctx context.Context, orgID, sessionID string) (*AcademicSession, error)
	ActiveRoster(ctx context.Context, orgID, branchID, batchID string) ([]Student, error)
	OrganizationName(ctx context.Context, orgID string) (string, error)
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

func (r *repository) BatchInBranch(ctx context.Context, orgID, branchID, batchID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Batch{}).
		Scopes(tenant.Scope(orgID), tenant.BranchScope(branchID)).
		Where("id = ?", batchID).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) StudentInBranch(ctx context.Context, orgID, branchID, studentID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Student{}).
		Scopes(tenant.Scope(orgID), tenant.BranchScope(branchID)).
		Where("id = ?", studentID).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) FindSession(ctx context.Context, orgID, sessionID string) (*AcademicSession, error) {
	var session AcademicSession
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(orgID)).
		First(&session, "id = ?", sessionID).Error
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *repository) ActiveRoster(ctx context.Context, orgID, branchID, batchID string) ([]Student, error) {
	var students []Student
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(orgID), tenant.BranchScope(branchID)).
		Where("batch_id = ? AND is_active = ?", batchID, true).
		Order("full_name ASC").
		Find(&students).Error
	return students, err
}

// OrganizationName returns an empty name when the organization row is missing.
func (r *repository) OrganizationName(ctx context.Context, orgID string) (string, error) {
	var org Organization
	err := r.db.WithContext(ctx).First(&org, "id = ?", orgID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return org.Name, nil
}
