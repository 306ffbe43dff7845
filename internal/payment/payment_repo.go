package payment

import (
	"context"
	"database/sql"

	"go-feeledger/internal/installment"
	"go-feeledger/internal/shared/dbtx"
	"go-feeledger/internal/tenant"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=payment_repo.go -destination=mock/payment_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	LockInstallment(ctx context.Context, orgID, branchID, installmentID string) (*installment.FeeInstallment, error)
	FindInstallment(ctx context.Context, orgID, branchID, installmentID string) (*installment.FeeInstallment, error)
	Create(ctx context.Context, p *InstallmentPayment) error
	UpdateInstallmentPaid(ctx context.Context, orgID, installmentID string, paidAmount int64, status string) error
	FindByInstallment(ctx context.Context, orgID, installmentID string) ([]InstallmentPayment, error)
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

func (r *repository) installmentInBranch(ctx context.Context, orgID, branchID, installmentID string) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("fee_installments").
		Select("fee_installments.*").
		Joins("JOIN student_fee_structures sfs ON sfs.id = fee_installments.student_fee_structure_id").
		Scopes(tenant.TableScope("fee_installments", orgID)).
		Where("sfs.branch_id = ?", branchID).
		Where("fee_installments.id = ?", installmentID)
}

func (r *repository) LockInstallment(ctx context.Context, orgID, branchID, installmentID string) (*installment.FeeInstallment, error) {
	var inst installment.FeeInstallment
	err := r.installmentInBranch(ctx, orgID, branchID, installmentID).
		Clauses(clause.Locking{Strength: "UPDATE", Table: clause.Table{Name: "fee_installments"}}).
		Take(&inst).Error
	if err != nil {
		return nil, err
	}
	return &inst, nil
}

func (r *repository) FindInstallment(ctx context.Context, orgID, branchID, installmentID string) (*installment.FeeInstallment, error) {
	var inst installment.FeeInstallment
	if err := r.installmentInBranch(ctx, orgID, branchID, installmentID).Take(&inst).Error; err != nil {
		return nil, err
	}
	return &inst, nil
}

func (r *repository) Create(ctx context.Context, p *InstallmentPayment) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *repository) UpdateInstallmentPaid(ctx context.Context, orgID, installmentID string, paidAmount int64, status string) error {
	res := r.db.WithContext(ctx).
		Model(&installment.FeeInstallment{}).
		Scopes(tenant.Scope(orgID)).
		Where("id = ?", installmentID).
		Updates(map[string]any{
			"paid_amount": paidAmount,
			"status":      status,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) FindByInstallment(ctx context.Context, orgID, installmentID string) ([]InstallmentPayment, error) {
	var payments []InstallmentPayment
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(orgID)).
		Where("installment_id = ?", installmentID).
		Order("received_at ASC").
		Find(&payments).Error
	return payments, err
}
