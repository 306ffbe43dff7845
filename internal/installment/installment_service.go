package installment

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"go-feeledger/internal/academic"
	installmenterrors "go-feeledger/internal/installment/errors"
	"go-feeledger/internal/studentfee"
	"go-feeledger/internal/tenant"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

//go:generate mockgen -source=installment_service.go -destination=mock/installment_service_mock.go -package=mock
type Service interface {
	Generate(ctx context.Context, tn tenant.Tenant, structureID string, req GenerateInstallmentsRequest) ([]InstallmentResponse, error)
	ListByStructure(ctx context.Context, tn tenant.Tenant, structureID string) ([]InstallmentResponse, error)
}

type Options struct {
	DueSoonDays int
	Now         func() time.Time
}

type service struct {
	db          *sql.DB
	repo        Repository
	structures  studentfee.Repository
	academic    academic.Repository
	dueSoonDays int
	now         func() time.Time
	logger      *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	structures studentfee.Repository,
	academicRepo academic.Repository,
	opts Options,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("installment.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("installment.service")
	}
	if opts.DueSoonDays <= 0 {
		opts.DueSoonDays = DefaultDueSoonDays
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &service{
		db:          db,
		repo:        repo,
		structures:  structures,
		academic:    academicRepo,
		dueSoonDays: opts.DueSoonDays,
		now:         opts.Now,
		logger:      l,
	}
}

func (s *service) Generate(
	ctx context.Context,
	tn tenant.Tenant,
	structureID string,
	req GenerateInstallmentsRequest,
) ([]InstallmentResponse, error) {
	if err := tn.Validate(); err != nil {
		return nil, err
	}
	if _, err := uuid.Parse(structureID); err != nil {
		return nil, installmenterrors.ErrStructureNotFound
	}

	plan, err := toPlan(req)
	if err != nil {
		return nil, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	structures := s.structures.WithTx(tx)
	qtx := s.repo.WithTx(tx)

	// The row lock serialises concurrent generation for the same structure.
	structure, err := structures.LockByIDAndOrg(ctx, tn.OrgID, structureID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, installmenterrors.ErrStructureNotFound
		}
		return nil, err
	}
	if structure.BranchID != tn.BranchUUID() {
		return nil, installmenterrors.ErrStructureNotFound
	}

	existing, err := qtx.CountByStructure(ctx, tn.OrgID, structureID)
	if err != nil {
		return nil, err
	}
	if existing > 0 {
		return nil, installmenterrors.ErrInstallmentsExist
	}

	var sessionStart time.Time
	if plan.Kind == PlanPercentage {
		session, err := s.academic.WithTx(tx).FindSession(ctx, tn.OrgID, structure.SessionID.String())
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, installmenterrors.ErrSessionNotFound
			}
			return nil, err
		}
		sessionStart = session.StartDate
	}

	schedule, err := BuildSchedule(structure.NetAmount, sessionStart, plan)
	if err != nil {
		return nil, err
	}

	rows := make([]FeeInstallment, len(schedule))
	for i, sch := range schedule {
		rows[i] = FeeInstallment{
			ID:                    uuid.New(),
			OrgID:                 tn.OrgUUID(),
			StudentFeeStructureID: structure.ID,
			InstallmentNumber:     sch.Number,
			Amount:                sch.Amount,
			DueDate:               sch.DueDate,
			Status:                StatusUpcoming,
		}
	}

	if err := qtx.CreateBatch(ctx, rows); err != nil {
		return nil, err
	}

	planJSON, err := json.Marshal(plan)
	if err != nil {
		return nil, err
	}
	if err := structures.SetInstallmentPlan(ctx, tn.OrgID, structureID, datatypes.JSON(planJSON)); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	s.logger.Info("installments generated",
		zap.String("org_id", tn.OrgID),
		zap.String("structure_id", structureID),
		zap.String("plan", string(plan.Kind)),
		zap.Int("count", len(rows)),
		zap.Int64("net_amount", structure.NetAmount),
	)
	return s.toResponses(rows), nil
}

func (s *service) ListByStructure(ctx context.Context, tn tenant.Tenant, structureID string) ([]InstallmentResponse, error) {
	if _, err := uuid.Parse(structureID); err != nil {
		return nil, installmenterrors.ErrStructureNotFound
	}

	structure, err := s.structures.FindByIDAndOrg(ctx, tn.OrgID, structureID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, installmenterrors.ErrStructureNotFound
		}
		return nil, err
	}
	if structure.BranchID != tn.BranchUUID() {
		return nil, installmenterrors.ErrStructureNotFound
	}

	rows, err := s.repo.FindByStructure(ctx, tn.OrgID, structureID)
	if err != nil {
		return nil, err
	}
	return s.toResponses(rows), nil
}

func toPlan(req GenerateInstallmentsRequest) (Plan, error) {
	plan := Plan{Kind: PlanKind(req.Kind)}

	switch plan.Kind {
	case PlanPercentage:
		for _, e := range req.Percentages {
			plan.Percentages = append(plan.Percentages, PercentageEntry{Percentage: e.Percentage, OffsetDays: e.OffsetDays})
		}
	case PlanExplicit:
		for _, e := range req.Explicit {
			due, err := time.Parse(dateLayout, e.DueDate)
			if err != nil {
				return Plan{}, installmenterrors.ErrInvalidDueDate
			}
			plan.Explicit = append(plan.Explicit, ExplicitEntry{Amount: e.Amount, DueDate: due})
		}
	default:
		return Plan{}, installmenterrors.ErrEmptyPlan
	}
	return plan, nil
}

func (s *service) toResponses(rows []FeeInstallment) []InstallmentResponse {
	today := s.now()
	res := make([]InstallmentResponse, len(rows))
	for i, r := range rows {
		res[i] = ToResponse(r, today, s.dueSoonDays)
	}
	return res
}

// ToResponse renders an installment with its status derived for today.
func ToResponse(r FeeInstallment, today time.Time, dueSoonDays int) InstallmentResponse {
	return InstallmentResponse{
		ID:                r.ID.String(),
		InstallmentNumber: r.InstallmentNumber,
		Amount:            r.Amount,
		PaidAmount:        r.PaidAmount,
		Balance:           r.Balance(),
		DueDate:           r.DueDate.Format(dateLayout),
		Status:            DeriveStatus(r.Amount, r.PaidAmount, r.DueDate, today, dueSoonDays),
		IsOverdue:         IsOverdue(r.Amount, r.PaidAmount, r.DueDate, today),
	}
}
