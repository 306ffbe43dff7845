package studentfee

import (
	"context"
	"database/sql"
	"errors"

	"go-feeledger/internal/academic"
	"go-feeledger/internal/feecomponent"
	feecomponenterrors "go-feeledger/internal/feecomponent/errors"
	"go-feeledger/internal/scholarship"
	studentfeeerrors "go-feeledger/internal/studentfee/errors"
	"go-feeledger/internal/tenant"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=student_fee_service.go -destination=mock/student_fee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, tn tenant.Tenant, req CreateStudentFeeStructureRequest, createdBy string) (StudentFeeStructureResponse, error)
	GetByID(ctx context.Context, tn tenant.Tenant, id string) (StudentFeeStructureResponse, error)
	ListByStudent(ctx context.Context, tn tenant.Tenant, studentID string) ([]StudentFeeStructureResponse, error)
}

type service struct {
	db           *sql.DB
	repo         Repository
	components   feecomponent.Resolver
	scholarships scholarship.Repository
	academic     academic.Repository
	logger       *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	components feecomponent.Resolver,
	scholarships scholarship.Repository,
	academicRepo academic.Repository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("studentfee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("studentfee.service")
	}
	return &service{
		db:           db,
		repo:         repo,
		components:   components,
		scholarships: scholarships,
		academic:     academicRepo,
		logger:       l,
	}
}

func (s *service) Create(
	ctx context.Context,
	tn tenant.Tenant,
	req CreateStudentFeeStructureRequest,
	createdBy string,
) (StudentFeeStructureResponse, error) {
	if err := tn.Validate(); err != nil {
		return StudentFeeStructureResponse{}, err
	}

	studentID, err := uuid.Parse(req.StudentID)
	if err != nil {
		return StudentFeeStructureResponse{}, studentfeeerrors.ErrStudentNotFound
	}
	sessionID, err := uuid.Parse(req.SessionID)
	if err != nil {
		return StudentFeeStructureResponse{}, studentfeeerrors.ErrSessionNotFound
	}

	items, err := parseLineItems(req.LineItems)
	if err != nil {
		return StudentFeeStructureResponse{}, err
	}

	ok, err := s.academic.StudentInBranch(ctx, tn.OrgID, tn.BranchID, studentID.String())
	if err != nil {
		return StudentFeeStructureResponse{}, err
	}
	if !ok {
		return StudentFeeStructureResponse{}, studentfeeerrors.ErrStudentNotFound
	}
	if _, err := s.academic.FindSession(ctx, tn.OrgID, sessionID.String()); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return StudentFeeStructureResponse{}, studentfeeerrors.ErrSessionNotFound
		}
		return StudentFeeStructureResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return StudentFeeStructureResponse{}, err
	}
	defer tx.Rollback()

	componentIDs := lo.Map(items, func(item TemplateItem, _ int) string { return item.ComponentID.String() })
	if _, err := s.components.ResolveActive(ctx, tx, tn.OrgID, componentIDs); err != nil {
		return StudentFeeStructureResponse{}, err
	}

	qtx := s.repo.WithTx(tx)

	exists, err := qtx.ExistsForStudentSession(ctx, tn.OrgID, studentID.String(), sessionID.String())
	if err != nil {
		return StudentFeeStructureResponse{}, err
	}
	if exists {
		return StudentFeeStructureResponse{}, studentfeeerrors.ErrStructureExists
	}

	grants, err := s.scholarships.WithTx(tx).ActiveGrants(ctx, tn.OrgID, studentID.String(), sessionID.String())
	if err != nil {
		return StudentFeeStructureResponse{}, err
	}

	structure, clamped := Compose(tn, studentID, sessionID, items, grants, req.Remarks, parseActor(createdBy))
	if clamped {
		s.logger.Warn("scholarship discounts clamped, net amount is zero",
			zap.String("org_id", tn.OrgID),
			zap.String("student_id", studentID.String()),
			zap.Int64("gross_amount", structure.GrossAmount),
		)
	}

	if err := qtx.Create(ctx, &structure); err != nil {
		return StudentFeeStructureResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return StudentFeeStructureResponse{}, err
	}

	s.logger.Info("student fee structure created",
		zap.String("org_id", tn.OrgID),
		zap.String("structure_id", structure.ID.String()),
		zap.Int64("net_amount", structure.NetAmount),
		zap.Int("grants", len(grants)),
	)
	return MapToResponse(structure), nil
}

func (s *service) GetByID(ctx context.Context, tn tenant.Tenant, id string) (StudentFeeStructureResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return StudentFeeStructureResponse{}, studentfeeerrors.ErrStructureNotFound
	}

	structure, err := s.repo.FindByIDAndOrg(ctx, tn.OrgID, id)
	if err != nil {
		return StudentFeeStructureResponse{}, mapRepositoryError(err)
	}
	if structure.BranchID != tn.BranchUUID() {
		return StudentFeeStructureResponse{}, studentfeeerrors.ErrStructureNotFound
	}
	return MapToResponse(*structure), nil
}

func (s *service) ListByStudent(ctx context.Context, tn tenant.Tenant, studentID string) ([]StudentFeeStructureResponse, error) {
	if _, err := uuid.Parse(studentID); err != nil {
		return []StudentFeeStructureResponse{}, nil
	}

	structures, err := s.repo.FindByStudent(ctx, tn.OrgID, studentID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	branch := tn.BranchUUID()
	return lo.FilterMap(structures, func(st StudentFeeStructure, _ int) (StudentFeeStructureResponse, bool) {
		return MapToResponse(st), st.BranchID == branch
	}), nil
}

func parseLineItems(req []LineItemRequest) ([]TemplateItem, error) {
	items := make([]TemplateItem, 0, len(req))
	for _, li := range req {
		id, err := uuid.Parse(li.ComponentID)
		if err != nil {
			return nil, feecomponenterrors.ErrInvalidComponents.WithDetails(feecomponent.InvalidComponentsDetails{
				InvalidComponentIDs: []string{li.ComponentID},
			})
		}
		if li.Amount <= 0 {
			return nil, studentfeeerrors.ErrNonPositiveAmount.WithDetails(map[string]string{"component_id": li.ComponentID})
		}
		items = append(items, TemplateItem{ComponentID: id, Amount: li.Amount})
	}

	ids := lo.Map(items, func(item TemplateItem, _ int) uuid.UUID { return item.ComponentID })
	if dups := lo.FindDuplicates(ids); len(dups) > 0 {
		return nil, studentfeeerrors.ErrDuplicateComponent.WithDetails(map[string][]uuid.UUID{"component_ids": dups})
	}
	return items, nil
}

func parseActor(userID string) *uuid.UUID {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil
	}
	return &id
}

func MapToResponse(s StudentFeeStructure) StudentFeeStructureResponse {
	resp := StudentFeeStructureResponse{
		ID:                s.ID.String(),
		StudentID:         s.StudentID.String(),
		SessionID:         s.SessionID.String(),
		Source:            s.Source,
		GrossAmount:       s.GrossAmount,
		ScholarshipAmount: s.ScholarshipAmount,
		NetAmount:         s.NetAmount,
		Remarks:           s.Remarks,
		LineItems:         make([]LineItemResponse, len(s.LineItems)),
	}
	if s.BatchFeeStructureID != nil {
		id := s.BatchFeeStructureID.String()
		resp.BatchFeeStructureID = &id
	}
	for i, li := range s.LineItems {
		resp.LineItems[i] = LineItemResponse{
			ID:             li.ID.String(),
			ComponentID:    li.FeeComponentID.String(),
			OriginalAmount: li.OriginalAmount,
			AdjustedAmount: li.AdjustedAmount,
			IsWaived:       li.IsWaived,
			WaiverReason:   li.WaiverReason,
		}
	}
	return resp
}
