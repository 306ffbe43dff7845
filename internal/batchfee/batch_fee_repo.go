package batchfee

import (
	"context"
	"database/sql"
	"time"

	"go-feeledger/internal/shared/dbtx"
	"go-feeledger/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=batch_fee_repo.go -destination=mock/batch_fee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	FindByIDAndOrg(ctx context.Context, orgID, id string) (*BatchFeeStructure, error)
	FindByBatchSession(ctx context.Context, orgID, batchID, sessionID string) (*BatchFeeStructure, error)
	FindAll(ctx context.Context, orgID, branchID, sessionID string) ([]BatchFeeStructure, error)
	Save(ctx context.Context, w Write) error
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

func (r *repository) FindByIDAndOrg(ctx context.Context, orgID, id string) (*BatchFeeStructure, error) {
	var structure BatchFeeStructure
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(orgID)).
		Preload("LineItems").
		First(&structure, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &structure, nil
}

func (r *repository) FindByBatchSession(ctx context.Context, orgID, batchID, sessionID string) (*BatchFeeStructure, error) {
	var structure BatchFeeStructure
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(orgID)).
		Where("batch_id = ? AND session_id = ?", batchID, sessionID).
		First(&structure).Error
	if err != nil {
		return nil, err
	}
	return &structure, nil
}

// FindAll lists the branch's structures. An empty sessionID lists every session.
func (r *repository) FindAll(ctx context.Context, orgID, branchID, sessionID string) ([]BatchFeeStructure, error) {
	var structures []BatchFeeStructure
	q := r.db.WithContext(ctx).
		Scopes(tenant.Scope(orgID), tenant.BranchScope(branchID)).
		Preload("LineItems")
	if sessionID != "" {
		q = q.Where("session_id = ?", sessionID)
	}
	err := q.Order("created_at DESC").Find(&structures).Error
	return structures, err
}

// Save performs the write described by w. A replace rewrites the header and
// swaps the line items; callers run it inside a transaction.
func (r *repository) Save(ctx context.Context, w Write) error {
	db := r.db.WithContext(ctx)
	s := w.Structure

	switch w.Kind {
	case WriteInsert:
		return db.Create(s).Error

	case WriteReplace:
		res := db.Model(&BatchFeeStructure{}).
			Scopes(tenant.Scope(s.OrgID.String())).
			Where("id = ?", s.ID).
			Updates(map[string]any{
				"name":         s.Name,
				"total_amount": s.TotalAmount,
				"is_active":    true,
				"updated_at":   time.Now(),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		if err := db.Where("batch_fee_structure_id = ?", s.ID).Delete(&BatchFeeLineItem{}).Error; err != nil {
			return err
		}
		if len(s.LineItems) == 0 {
			return nil
		}
		return db.Create(&s.LineItems).Error
	}

	return nil
}
