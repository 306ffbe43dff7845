package installment

import (
	"context"
	"database/sql"

	"go-feeledger/internal/shared/dbtx"
	"go-feeledger/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=installment_repo.go -destination=mock/installment_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	CountByStructure(ctx context.Context, orgID, structureID string) (int64, error)
	CreateBatch(ctx context.Context, installments []FeeInstallment) error
	FindByStructure(ctx context.Context, orgID, structureID string) ([]FeeInstallment, error)
	FindByIDAndOrg(ctx context.Context, orgID, id string) (*FeeInstallment, error)
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

func (r *repository) CountByStructure(ctx context.Context, orgID, structureID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&FeeInstallment{}).
		Scopes(tenant.Scope(orgID)).
		Where("student_fee_structure_id = ?", structureID).
		Count(&count).Error
	return count, err
}

func (r *repository) CreateBatch(ctx context.Context, installments []FeeInstallment) error {
	if len(installments) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&installments).Error
}

func (r *repository) FindByStructure(ctx context.Context, orgID, structureID string) ([]FeeInstallment, error) {
	var installments []FeeInstallment
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(orgID)).
		Where("student_fee_structure_id = ?", structureID).
		Order("installment_number ASC").
		Find(&installments).Error
	return installments, err
}

func (r *repository) FindByIDAndOrg(ctx context.Context, orgID, id string) (*FeeInstallment, error) {
	var inst FeeInstallment
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(orgID)).
		First(&inst, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &inst, nil
}
