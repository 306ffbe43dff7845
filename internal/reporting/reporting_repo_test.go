package reporting_test

import (
	"context"
	"testing"

	"go-feeledger/internal/reporting"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func TestRepository_FeeCollection(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)

	orgID, branchID, sessionID := uuid.NewString(), uuid.NewString(), uuid.NewString()

	mock.ExpectQuery(`FROM student_fee_structures sfs`).
		WithArgs(orgID, orgID, branchID, sessionID).
		WillReturnRows(sqlmock.NewRows([]string{"batch_id", "batch_name", "student_count", "total_net", "total_paid"}).
			AddRow("b1", "Grade 1", 2, 24000, 9000))

	rows, err := reporting.NewRepository(gdb).FeeCollection(context.Background(), orgID, branchID, sessionID)

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, reporting.BatchCollection{BatchID: "b1", BatchName: "Grade 1", StudentCount: 2, TotalNet: 24000, TotalPaid: 9000}, rows[0])
	assert.NoError(t, mock.ExpectationsWereMet())
}
