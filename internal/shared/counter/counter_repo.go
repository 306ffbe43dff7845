package counter

import (
	"context"
	"database/sql"

	"go-feeledger/internal/shared/dbtx"

	"gorm.io/gorm"
)

const TypeReceipt = "receipt"

//go:generate mockgen -source=counter_repo.go -destination=mock/counter_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	GetNextValue(ctx context.Context, orgID string, counterType string, year int) (int64, error)
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

// GetNextValue atomically increments the (org, type, year) counter, creating it on first use.
// Bound to a transaction, the increment is rolled back together with the caller's writes.
func (r *repository) GetNextValue(ctx context.Context, orgID string, counterType string, year int) (int64, error) {
	var nextValue int64

	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO org_counters (org_id, counter_type, period_year, last_value, updated_at)
		VALUES (?, ?, ?, 1, now())
		ON CONFLICT (org_id, counter_type, period_year) DO UPDATE
		SET last_value = org_counters.last_value + 1, updated_at = now()
		RETURNING last_value
	`, orgID, counterType, year).Scan(&nextValue).Error

	if err != nil {
		return 0, err
	}

	return nextValue, nil
}
