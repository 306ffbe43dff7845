package counter_test

import (
	"context"
	"errors"
	"testing"

	"go-feeledger/internal/shared/counter"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupCounterRepo(t *testing.T) (counter.Repository, sqlmock.Sqlmock, func()) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)

	return counter.NewRepository(gdb), mock, func() { _ = sqlDB.Close() }
}

func TestCounterRepository_GetNextValue(t *testing.T) {
	ctx := context.Background()
	orgID := uuid.NewString()

	t.Run("returns incremented value", func(t *testing.T) {
		repo, mock, closeFn := setupCounterRepo(t)
		defer closeFn()

		mock.ExpectQuery(`INSERT INTO org_counters`).
			WithArgs(orgID, counter.TypeReceipt, 2025).
			WillReturnRows(sqlmock.NewRows([]string{"last_value"}).AddRow(int64(42)))

		next, err := repo.GetNextValue(ctx, orgID, counter.TypeReceipt, 2025)

		assert.NoError(t, err)
		assert.Equal(t, int64(42), next)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("propagates storage fault", func(t *testing.T) {
		repo, mock, closeFn := setupCounterRepo(t)
		defer closeFn()

		mock.ExpectQuery(`INSERT INTO org_counters`).
			WillReturnError(errors.New("deadlock detected"))

		next, err := repo.GetNextValue(ctx, orgID, counter.TypeReceipt, 2025)

		assert.Error(t, err)
		assert.Zero(t, next)
	})

	t.Run("bound to tx", func(t *testing.T) {
		sqlDB, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer sqlDB.Close()
		gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
		require.NoError(t, err)

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO org_counters`).
			WillReturnRows(sqlmock.NewRows([]string{"last_value"}).AddRow(int64(1)))
		mock.ExpectRollback()

		tx, err := sqlDB.BeginTx(ctx, nil)
		require.NoError(t, err)

		next, err := counter.NewRepository(gdb).WithTx(tx).GetNextValue(ctx, orgID, counter.TypeReceipt, 2026)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), next)

		require.NoError(t, tx.Rollback())
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
