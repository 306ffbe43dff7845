package feecomponent

import (
	"context"
	"database/sql"

	feecomponenterrors "go-feeledger/internal/feecomponent/errors"
	"go-feeledger/internal/tenant"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=fee_component_service.go -destination=mock/fee_component_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, tn tenant.Tenant, req CreateFeeComponentRequest) (FeeComponentResponse, error)
	GetAll(ctx context.Context, tn tenant.Tenant, req ListFeeComponentsRequest) ([]FeeComponentResponse, error)
	GetByID(ctx context.Context, tn tenant.Tenant, id string) (FeeComponentResponse, error)
	Update(ctx context.Context, tn tenant.Tenant, id string, req UpdateFeeComponentRequest) (FeeComponentResponse, error)
	Deactivate(ctx context.Context, tn tenant.Tenant, id string) (FeeComponentResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("feecomponent.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("feecomponent.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) Create(
	ctx context.Context,
	tn tenant.Tenant,
	req CreateFeeComponentRequest,
) (FeeComponentResponse, error) {
	if err := tn.Validate(); err != nil {
		return FeeComponentResponse{}, err
	}
	if req.BaseAmount < 0 {
		return FeeComponentResponse{}, feecomponenterrors.ErrNegativeBaseAmount
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return FeeComponentResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	component := &FeeComponent{
		ID:          uuid.New(),
		OrgID:       tn.OrgUUID(),
		Name:        req.Name,
		Type:        req.Type,
		Description: req.Description,
		BaseAmount:  req.BaseAmount,
		IsActive:    true,
	}

	if err := qtx.Create(ctx, component); err != nil {
		s.logger.Error("create fee component failed", zap.String("org_id", tn.OrgID), zap.Error(err))
		return FeeComponentResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return FeeComponentResponse{}, err
	}

	s.logger.Info("fee component created",
		zap.String("org_id", tn.OrgID),
		zap.String("component_id", component.ID.String()),
	)
	return mapToResponse(*component), nil
}

func (s *service) GetAll(
	ctx context.Context,
	tn tenant.Tenant,
	req ListFeeComponentsRequest,
) ([]FeeComponentResponse, error) {
	components, err := s.repo.FindAllByOrg(ctx, tn.OrgID, req.IncludeInactive)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(components), nil
}

func (s *service) GetByID(
	ctx context.Context,
	tn tenant.Tenant,
	id string,
) (FeeComponentResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return FeeComponentResponse{}, feecomponenterrors.ErrComponentNotFound
	}

	component, err := s.repo.FindByIDAndOrg(ctx, tn.OrgID, id)
	if err != nil {
		return FeeComponentResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*component), nil
}

func (s *service) Update(
	ctx context.Context,
	tn tenant.Tenant,
	id string,
	req UpdateFeeComponentRequest,
) (FeeComponentResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return FeeComponentResponse{}, feecomponenterrors.ErrComponentNotFound
	}
	if req.BaseAmount < 0 {
		return FeeComponentResponse{}, feecomponenterrors.ErrNegativeBaseAmount
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return FeeComponentResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	component, err := qtx.FindByIDAndOrg(ctx, tn.OrgID, id)
	if err != nil {
		return FeeComponentResponse{}, mapRepositoryError(err)
	}

	// Base amount changes only affect future templates; existing line items keep their amounts.
	component.Name = req.Name
	component.Type = req.Type
	component.Description = req.Description
	component.BaseAmount = req.BaseAmount

	if err := qtx.Update(ctx, component); err != nil {
		return FeeComponentResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return FeeComponentResponse{}, err
	}

	return mapToResponse(*component), nil
}

func (s *service) Deactivate(
	ctx context.Context,
	tn tenant.Tenant,
	id string,
) (FeeComponentResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return FeeComponentResponse{}, feecomponenterrors.ErrComponentNotFound
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return FeeComponentResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if err := qtx.SetActive(ctx, tn.OrgID, id, false); err != nil {
		return FeeComponentResponse{}, mapRepositoryError(err)
	}

	component, err := qtx.FindByIDAndOrg(ctx, tn.OrgID, id)
	if err != nil {
		return FeeComponentResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return FeeComponentResponse{}, err
	}

	s.logger.Info("fee component deactivated",
		zap.String("org_id", tn.OrgID),
		zap.String("component_id", id),
	)
	return mapToResponse(*component), nil
}

func mapToResponse(c FeeComponent) FeeComponentResponse {
	return FeeComponentResponse{
		ID:          c.ID.String(),
		OrgID:       c.OrgID.String(),
		Name:        c.Name,
		Type:        c.Type,
		Description: c.Description,
		BaseAmount:  c.BaseAmount,
		IsActive:    c.IsActive,
	}
}

func mapToListResponse(components []FeeComponent) []FeeComponentResponse {
	res := make([]FeeComponentResponse, len(components))
	for i, c := range components {
		res[i] = mapToResponse(c)
	}
	return res
}
