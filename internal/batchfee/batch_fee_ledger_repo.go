package batchfee

import (
	"context"
	"database/sql"

	"go-feeledger/internal/shared/dbtx"

	"gorm.io/gorm"
)

// LedgerRepository covers the per-student rows that hang off a student fee
// structure and must go away when the structure is replaced.
//
//go:generate mockgen -source=batch_fee_ledger_repo.go -destination=mock/batch_fee_ledger_repo_mock.go -package=mock
type LedgerRepository interface {
	WithTx(tx *sql.Tx) LedgerRepository
	LockInstallments(ctx context.Context, orgID string, structureIDs []string) error
	PaidTotals(ctx context.Context, orgID string, structureIDs []string) (map[string]int64, error)
	DeleteStudentLedgers(ctx context.Context, orgID string, structureIDs []string) error
}

type ledgerRepository struct {
	db *gorm.DB
}

func NewLedgerRepository(db *gorm.DB) LedgerRepository {
	return &ledgerRepository{db: db}
}

func (r *ledgerRepository) WithTx(tx *sql.Tx) LedgerRepository {
	return &ledgerRepository{db: dbtx.Bind(r.db, tx)}
}

// LockInstallments holds row locks on the structures' installments so that no
// payment can land between the payment check and the delete.
func (r *ledgerRepository) LockInstallments(ctx context.Context, orgID string, structureIDs []string) error {
	var ids []string
	return r.db.WithContext(ctx).
		Raw(`SELECT id FROM fee_installments
			WHERE org_id = ? AND student_fee_structure_id IN ?
			FOR UPDATE`, orgID, structureIDs).
		Scan(&ids).Error
}

type paidTotalRow struct {
	StructureID string
	Paid        int64
}

// PaidTotals returns the recorded payment total per structure, only for structures that have any.
func (r *ledgerRepository) PaidTotals(ctx context.Context, orgID string, structureIDs []string) (map[string]int64, error) {
	var rows []paidTotalRow
	err := r.db.WithContext(ctx).
		Raw(`SELECT i.student_fee_structure_id AS structure_id, SUM(p.amount) AS paid
			FROM installment_payments p
			JOIN fee_installments i ON i.id = p.installment_id
			WHERE p.org_id = ? AND i.student_fee_structure_id IN ?
			GROUP BY i.student_fee_structure_id`, orgID, structureIDs).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	totals := make(map[string]int64, len(rows))
	for _, row := range rows {
		totals[row.StructureID] = row.Paid
	}
	return totals, nil
}

const installmentsOfStructures = `SELECT id FROM fee_installments WHERE student_fee_structure_id IN ?`

// DeleteStudentLedgers removes dependents before parents. Payment links are
// owned by the payment gateway side and are only detached.
func (r *ledgerRepository) DeleteStudentLedgers(ctx context.Context, orgID string, structureIDs []string) error {
	db := r.db.WithContext(ctx)

	steps := []struct {
		sql  string
		args []any
	}{
		{
			`DELETE FROM receipts WHERE org_id = ? AND payment_id IN (
				SELECT p.id FROM installment_payments p
				JOIN fee_installments i ON i.id = p.installment_id
				WHERE i.student_fee_structure_id IN ?)`,
			[]any{orgID, structureIDs},
		},
		{
			`DELETE FROM installment_payments WHERE org_id = ? AND installment_id IN (` + installmentsOfStructures + `)`,
			[]any{orgID, structureIDs},
		},
		{
			`DELETE FROM fee_reminders WHERE org_id = ? AND installment_id IN (` + installmentsOfStructures + `)`,
			[]any{orgID, structureIDs},
		},
		{
			`UPDATE payment_links SET installment_id = NULL WHERE org_id = ? AND installment_id IN (` + installmentsOfStructures + `)`,
			[]any{orgID, structureIDs},
		},
		{
			`DELETE FROM fee_installments WHERE org_id = ? AND student_fee_structure_id IN ?`,
			[]any{orgID, structureIDs},
		},
		{
			`DELETE FROM student_fee_line_items WHERE student_fee_structure_id IN ?`,
			[]any{structureIDs},
		},
		{
			`DELETE FROM student_fee_structures WHERE org_id = ? AND id IN ?`,
			[]any{orgID, structureIDs},
		},
	}

	for _, step := range steps {
		if err := db.Exec(step.sql, step.args...).Error; err != nil {
			return err
		}
	}
	return nil
}
