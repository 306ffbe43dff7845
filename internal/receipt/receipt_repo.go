package receipt

import (
	"context"
	"database/sql"

	"go-feeledger/internal/shared/dbtx"
	"go-feeledger/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=receipt_repo.go -destination=mock/receipt_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	FindPaymentContext(ctx context.Context, orgID, branchID, paymentID string) (*PaymentContext, error)
	FindByPayment(ctx context.Context, orgID, paymentID string) (*Receipt, error)
	Create(ctx context.Context, r *Receipt) error
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

func (r *repository) FindPaymentContext(ctx context.Context, orgID, branchID, paymentID string) (*PaymentContext, error) {
	var pc PaymentContext
	err := r.db.WithContext(ctx).
		Table("installment_payments ip").
		Select(`ip.id AS payment_id,
			ip.installment_id,
			fi.student_fee_structure_id AS structure_id,
			sfs.student_id,
			COALESCE(st.full_name, '') AS student_name,
			sfs.session_id,
			fi.installment_number,
			ip.amount,
			ip.mode,
			ip.reference,
			ip.received_at`).
		Joins("JOIN fee_installments fi ON fi.id = ip.installment_id").
		Joins("JOIN student_fee_structures sfs ON sfs.id = fi.student_fee_structure_id").
		Joins("LEFT JOIN students st ON st.id = sfs.student_id").
		Scopes(tenant.TableScope("ip", orgID)).
		Where("sfs.branch_id = ?", branchID).
		Where("ip.id = ?", paymentID).
		Take(&pc).Error
	if err != nil {
		return nil, err
	}
	return &pc, nil
}

func (r *repository) FindByPayment(ctx context.Context, orgID, paymentID string) (*Receipt, error) {
	var rec Receipt
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(orgID)).
		First(&rec, "payment_id = ?", paymentID).Error
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *repository) Create(ctx context.Context, rec *Receipt) error {
	return r.db.WithContext(ctx).Create(rec).Error
}
