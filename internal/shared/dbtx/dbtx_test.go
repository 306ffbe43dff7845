package dbtx_test

import (
	"context"
	"testing"

	"go-feeledger/internal/shared/dbtx"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func TestBind_RunsStatementsInsideTx(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM fee_reminders`).WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectRollback()

	tx, err := sqlDB.BeginTx(context.Background(), nil)
	require.NoError(t, err)

	bound := dbtx.Bind(gdb, tx)
	res := bound.WithContext(context.Background()).Exec("DELETE FROM fee_reminders WHERE installment_id = ?", "x")
	assert.NoError(t, res.Error)
	assert.Equal(t, int64(2), res.RowsAffected)

	assert.NoError(t, tx.Rollback())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBind_NilTxReturnsSameHandle(t *testing.T) {
	sqlDB, _, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)

	assert.Same(t, gdb, dbtx.Bind(gdb, nil))
}
