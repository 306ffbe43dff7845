package feecomponent

import (
	"context"
	"database/sql"

	"go-feeledger/internal/shared/dbtx"
	"go-feeledger/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=fee_component_repo.go -destination=mock/fee_component_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, component *FeeComponent) error
	FindAllByOrg(ctx context.Context, orgID string, includeInactive bool) ([]FeeComponent, error)
	FindByIDAndOrg(ctx context.Context, orgID string, id string) (*FeeComponent, error)
	FindActiveByIDs(ctx context.Context, orgID string, ids []string) ([]FeeComponent, error)
	Update(ctx context.Context, component *FeeComponent) error
	SetActive(ctx context.Context, orgID string, id string, active bool) error
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

func (r *repository) Create(ctx context.Context, component *FeeComponent) error {
	return r.db.WithContext(ctx).Create(component).Error
}

func (r *repository) FindAllByOrg(ctx context.Context, orgID string, includeInactive bool) ([]FeeComponent, error) {
	var components []FeeComponent
	q := r.db.WithContext(ctx).
		Scopes(tenant.Scope(orgID))
	if !includeInactive {
		q = q.Where("is_active = ?", true)
	}
	err := q.Order("name ASC").Find(&components).Error
	return components, err
}

func (r *repository) FindByIDAndOrg(ctx context.Context, orgID string, id string) (*FeeComponent, error) {
	var component FeeComponent
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(orgID)).
		First(&component, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &component, nil
}

func (r *repository) FindActiveByIDs(ctx context.Context, orgID string, ids []string) ([]FeeComponent, error) {
	var components []FeeComponent
	if len(ids) == 0 {
		return components, nil
	}
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(orgID)).
		Where("id IN ?", ids).
		Where("is_active = ?", true).
		Find(&components).Error
	return components, err
}

func (r *repository) Update(ctx context.Context, component *FeeComponent) error {
	return r.db.WithContext(ctx).Save(component).Error
}

func (r *repository) SetActive(ctx context.Context, orgID string, id string, active bool) error {
	res := r.db.WithContext(ctx).
		Model(&FeeComponent{}).
		Scopes(tenant.Scope(orgID)).
		Where("id = ?", id).
		Update("is_active", active)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
