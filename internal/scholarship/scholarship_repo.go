package scholarship

import (
	"context"
	"database/sql"

	"go-feeledger/internal/shared/dbtx"
	"go-feeledger/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=scholarship_repo.go -destination=mock/scholarship_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	// ActiveGrants returns active scholarships granted to the student for the session.
	ActiveGrants(ctx context.Context, orgID, studentID, sessionID string) ([]Scholarship, error)
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

func (r *repository) ActiveGrants(ctx context.Context, orgID, studentID, sessionID string) ([]Scholarship, error) {
	var grants []Scholarship
	err := r.db.WithContext(ctx).
		Model(&Scholarship{}).
		Select("scholarships.*").
		Joins("JOIN student_scholarships ss ON ss.scholarship_id = scholarships.id").
		Scopes(tenant.TableScope("scholarships", orgID)).
		Where("ss.org_id = ?", orgID).
		Where("ss.student_id = ? AND ss.session_id = ?", studentID, sessionID).
		Where("ss.is_active = ? AND scholarships.is_active = ?", true, true).
		Order("scholarships.created_at ASC").
		Find(&grants).Error
	return grants, err
}
