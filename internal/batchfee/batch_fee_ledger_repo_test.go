package batchfee_test

import (
	"context"
	"errors"
	"testing"

	"go-feeledger/internal/batchfee"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newLedgerRepo(t *testing.T) (batchfee.LedgerRepository, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)
	return batchfee.NewLedgerRepository(gdb), mock
}

func TestLedgerRepository_DeleteStudentLedgers_Order(t *testing.T) {
	repo, mock := newLedgerRepo(t)
	orgID := uuid.NewString()
	ids := []string{uuid.NewString(), uuid.NewString()}

	mock.ExpectExec(`DELETE FROM receipts`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`DELETE FROM installment_payments`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`DELETE FROM fee_reminders`).WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(`UPDATE payment_links SET installment_id = NULL`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM fee_installments`).WillReturnResult(sqlmock.NewResult(0, 8))
	mock.ExpectExec(`DELETE FROM student_fee_line_items`).WillReturnResult(sqlmock.NewResult(0, 4))
	mock.ExpectExec(`DELETE FROM student_fee_structures`).WillReturnResult(sqlmock.NewResult(0, 2))

	err := repo.DeleteStudentLedgers(context.Background(), orgID, ids)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLedgerRepository_DeleteStudentLedgers_StopsOnFailure(t *testing.T) {
	repo, mock := newLedgerRepo(t)

	mock.ExpectExec(`DELETE FROM receipts`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`DELETE FROM installment_payments`).WillReturnError(errors.New("lock timeout"))

	err := repo.DeleteStudentLedgers(context.Background(), uuid.NewString(), []string{uuid.NewString()})

	assert.EqualError(t, err, "lock timeout")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLedgerRepository_PaidTotals(t *testing.T) {
	repo, mock := newLedgerRepo(t)
	paid := uuid.NewString()

	mock.ExpectQuery(`SELECT i.student_fee_structure_id AS structure_id, SUM\(p.amount\) AS paid`).
		WillReturnRows(sqlmock.NewRows([]string{"structure_id", "paid"}).AddRow(paid, 2500))

	totals, err := repo.PaidTotals(context.Background(), uuid.NewString(), []string{paid, uuid.NewString()})

	assert.NoError(t, err)
	assert.Equal(t, map[string]int64{paid: 2500}, totals)
}
