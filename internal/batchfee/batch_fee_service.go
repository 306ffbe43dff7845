package batchfee

import (
	"context"
	"database/sql"
	"errors"

	"go-feeledger/internal/academic"
	batchfeeerrors "go-feeledger/internal/batchfee/errors"
	"go-feeledger/internal/feecomponent"
	feecomponenterrors "go-feeledger/internal/feecomponent/errors"
	"go-feeledger/internal/studentfee"
	"go-feeledger/internal/tenant"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/samber/lo"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const uniqueBatchSessionConstraint = "uq_batch_fee_structure_session"

//go:generate mockgen -source=batch_fee_service.go -destination=mock/batch_fee_service_mock.go -package=mock
type Service interface {
	CreateOrUpdate(ctx context.Context, tn tenant.Tenant, req UpsertBatchFeeStructureRequest) (UpsertResponse, error)
	List(ctx context.Context, tn tenant.Tenant, req ListBatchFeeStructuresRequest) ([]BatchFeeStructureResponse, error)
	GetByID(ctx context.Context, tn tenant.Tenant, id string) (BatchFeeStructureResponse, error)
	ApplyToStudents(ctx context.Context, tn tenant.Tenant, id string, overwriteExisting bool, actor string) (ApplyResult, error)
}

type service struct {
	db         *sql.DB
	repo       Repository
	ledger     LedgerRepository
	students   studentfee.Repository
	components feecomponent.Resolver
	academic   academic.Repository
	logger     *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	ledger LedgerRepository,
	students studentfee.Repository,
	components feecomponent.Resolver,
	academicRepo academic.Repository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("batchfee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("batchfee.service")
	}
	return &service{
		db:         db,
		repo:       repo,
		ledger:     ledger,
		students:   students,
		components: components,
		academic:   academicRepo,
		logger:     l,
	}
}

func (s *service) CreateOrUpdate(
	ctx context.Context,
	tn tenant.Tenant,
	req UpsertBatchFeeStructureRequest,
) (UpsertResponse, error) {
	if err := tn.Validate(); err != nil {
		return UpsertResponse{}, err
	}

	batchID, err := uuid.Parse(req.BatchID)
	if err != nil {
		return UpsertResponse{}, batchfeeerrors.ErrBatchNotFound
	}
	sessionID, err := uuid.Parse(req.SessionID)
	if err != nil {
		return UpsertResponse{}, batchfeeerrors.ErrSessionNotFound
	}

	items, total, err := parseLineItems(req.LineItems)
	if err != nil {
		return UpsertResponse{}, err
	}

	ok, err := s.academic.BatchInBranch(ctx, tn.OrgID, tn.BranchID, batchID.String())
	if err != nil {
		return UpsertResponse{}, err
	}
	if !ok {
		return UpsertResponse{}, batchfeeerrors.ErrBatchNotFound
	}
	if _, err := s.academic.FindSession(ctx, tn.OrgID, sessionID.String()); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return UpsertResponse{}, batchfeeerrors.ErrSessionNotFound
		}
		return UpsertResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return UpsertResponse{}, err
	}
	defer tx.Rollback()

	componentIDs := lo.Map(items, func(li BatchFeeLineItem, _ int) string { return li.FeeComponentID.String() })
	if _, err := s.components.ResolveActive(ctx, tx, tn.OrgID, componentIDs); err != nil {
		return UpsertResponse{}, err
	}

	qtx := s.repo.WithTx(tx)

	write := Write{
		Kind: WriteInsert,
		Structure: &BatchFeeStructure{
			ID:          uuid.New(),
			OrgID:       tn.OrgUUID(),
			BranchID:    tn.BranchUUID(),
			BatchID:     batchID,
			SessionID:   sessionID,
			Name:        req.Name,
			TotalAmount: total,
			IsActive:    true,
		},
	}

	existing, err := qtx.FindByBatchSession(ctx, tn.OrgID, batchID.String(), sessionID.String())
	switch {
	case err == nil:
		write.Kind = WriteReplace
		write.Structure.ID = existing.ID
		write.Structure.CreatedAt = existing.CreatedAt
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return UpsertResponse{}, err
	}

	for i := range items {
		items[i].BatchFeeStructureID = write.Structure.ID
	}
	write.Structure.LineItems = items

	if err := qtx.Save(ctx, write); err != nil {
		return UpsertResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return UpsertResponse{}, err
	}

	s.logger.Info("batch fee structure saved",
		zap.String("org_id", tn.OrgID),
		zap.String("structure_id", write.Structure.ID.String()),
		zap.Stringer("operation", write.Kind),
		zap.Int64("total_amount", total),
	)
	return UpsertResponse{
		Structure: mapToResponse(*write.Structure),
		Operation: write.Kind.String(),
	}, nil
}

func (s *service) List(
	ctx context.Context,
	tn tenant.Tenant,
	req ListBatchFeeStructuresRequest,
) ([]BatchFeeStructureResponse, error) {
	structures, err := s.repo.FindAll(ctx, tn.OrgID, tn.BranchID, req.SessionID)
	if err != nil {
		return nil, err
	}
	return lo.Map(structures, func(st BatchFeeStructure, _ int) BatchFeeStructureResponse {
		return mapToResponse(st)
	}), nil
}

func (s *service) GetByID(ctx context.Context, tn tenant.Tenant, id string) (BatchFeeStructureResponse, error) {
	structure, err := s.findInBranch(ctx, s.repo, tn, id)
	if err != nil {
		return BatchFeeStructureResponse{}, err
	}
	return mapToResponse(*structure), nil
}

// findInBranch hides structures of other branches behind the same NotFound.
func (s *service) findInBranch(ctx context.Context, repo Repository, tn tenant.Tenant, id string) (*BatchFeeStructure, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, batchfeeerrors.ErrStructureNotFound
	}
	structure, err := repo.FindByIDAndOrg(ctx, tn.OrgID, id)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	if structure.BranchID.String() != tn.BranchID {
		return nil, batchfeeerrors.ErrStructureNotFound
	}
	return structure, nil
}

func parseLineItems(req []LineItemRequest) ([]BatchFeeLineItem, int64, error) {
	var (
		items   = make([]BatchFeeLineItem, 0, len(req))
		invalid []string
		total   int64
	)
	for _, li := range req {
		id, err := uuid.Parse(li.ComponentID)
		if err != nil {
			invalid = append(invalid, li.ComponentID)
			continue
		}
		if li.Amount <= 0 {
			return nil, 0, batchfeeerrors.ErrNonPositiveAmount
		}
		items = append(items, BatchFeeLineItem{ID: uuid.New(), FeeComponentID: id, Amount: li.Amount})
		total += li.Amount
	}
	if len(invalid) > 0 {
		return nil, 0, feecomponenterrors.ErrInvalidComponents.WithDetails(feecomponent.InvalidComponentsDetails{
			InvalidComponentIDs: invalid,
		})
	}

	ids := lo.Map(items, func(li BatchFeeLineItem, _ int) uuid.UUID { return li.FeeComponentID })
	if dups := lo.FindDuplicates(ids); len(dups) > 0 {
		return nil, 0, batchfeeerrors.ErrDuplicateComponent.WithDetails(map[string][]uuid.UUID{"component_ids": dups})
	}
	return items, total, nil
}

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return batchfeeerrors.ErrStructureNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == uniqueBatchSessionConstraint {
		return batchfeeerrors.ErrConcurrentWrite
	}
	return err
}

func mapToResponse(s BatchFeeStructure) BatchFeeStructureResponse {
	return BatchFeeStructureResponse{
		ID:          s.ID.String(),
		BatchID:     s.BatchID.String(),
		SessionID:   s.SessionID.String(),
		Name:        s.Name,
		TotalAmount: s.TotalAmount,
		IsActive:    s.IsActive,
		LineItems: lo.Map(s.LineItems, func(li BatchFeeLineItem, _ int) LineItemResponse {
			return LineItemResponse{ID: li.ID.String(), ComponentID: li.FeeComponentID.String(), Amount: li.Amount}
		}),
	}
}
