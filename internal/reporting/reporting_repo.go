package reporting

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=reporting_repo.go -destination=mock/reporting_repo_mock.go -package=mock
type Repository interface {
	FeeCollection(ctx context.Context, orgID, branchID, sessionID string) ([]BatchCollection, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FeeCollection(ctx context.Context, orgID, branchID, sessionID string) ([]BatchCollection, error) {
	var rows []BatchCollection
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			b.id::text AS batch_id,
			b.name AS batch_name,
			COUNT(DISTINCT sfs.student_id) AS student_count,
			COALESCE(SUM(sfs.net_amount), 0) AS total_net,
			COALESCE(SUM(paid.total_paid), 0) AS total_paid
		FROM student_fee_structures sfs
		JOIN students st ON st.id = sfs.student_id
		JOIN batches b ON b.id = st.batch_id
		LEFT JOIN (
			SELECT student_fee_structure_id, SUM(paid_amount) AS total_paid
			FROM fee_installments
			WHERE org_id = ?
			GROUP BY student_fee_structure_id
		) paid ON paid.student_fee_structure_id = sfs.id
		WHERE sfs.org_id = ? AND sfs.branch_id = ? AND sfs.session_id = ?
		GROUP BY b.id, b.name
		ORDER BY b.name ASC
	`, orgID, orgID, branchID, sessionID).Scan(&rows).Error
	return rows, err
}
