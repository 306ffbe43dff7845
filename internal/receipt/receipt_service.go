package receipt

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"go-feeledger/internal/academic"
	receipterrors "go-feeledger/internal/receipt/errors"
	"go-feeledger/internal/shared/counter"
	"go-feeledger/internal/tenant"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

//go:generate mockgen -source=receipt_service.go -destination=mock/receipt_service_mock.go -package=mock
type Service interface {
	CreateReceipt(ctx context.Context, tn tenant.Tenant, paymentID string, requester string) (ReceiptResponse, error)
	GetByPayment(ctx context.Context, tn tenant.Tenant, paymentID string) (ReceiptResponse, error)
}

type service struct {
	db       *sql.DB
	repo     Repository
	counter  counter.Repository
	academic academic.Repository
	now      func() time.Time
	logger   *zap.Logger
}

// NewService wires the receipt issuer. now defaults to time.Now when nil.
func NewService(
	db *sql.DB,
	repo Repository,
	counterRepo counter.Repository,
	academicRepo academic.Repository,
	now func() time.Time,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("receipt.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("receipt.service")
	}
	if now == nil {
		now = time.Now
	}
	return &service{
		db:       db,
		repo:     repo,
		counter:  counterRepo,
		academic: academicRepo,
		now:      now,
		logger:   l,
	}
}

func (s *service) CreateReceipt(ctx context.Context, tn tenant.Tenant, paymentID string, requester string) (ReceiptResponse, error) {
	if err := tn.Validate(); err != nil {
		return ReceiptResponse{}, err
	}
	if _, err := uuid.Parse(paymentID); err != nil {
		return ReceiptResponse{}, receipterrors.ErrPaymentNotFound
	}
	if requester == "" {
		requester = SystemRequester
	}

	pc, err := s.repo.FindPaymentContext(ctx, tn.OrgID, tn.BranchID, paymentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ReceiptResponse{}, receipterrors.ErrPaymentNotFound
		}
		return ReceiptResponse{}, err
	}

	existing, err := s.repo.FindByPayment(ctx, tn.OrgID, paymentID)
	if err == nil {
		return mapToResponse(*existing), nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return ReceiptResponse{}, err
	}

	orgName, err := s.academic.OrganizationName(ctx, tn.OrgID)
	if err != nil {
		return ReceiptResponse{}, err
	}

	snapshot, err := json.Marshal(pc)
	if err != nil {
		return ReceiptResponse{}, err
	}

	rec, err := s.issue(ctx, tn, pc, Prefix(orgName), requester, snapshot)
	if isPaymentConflict(err) {
		// A concurrent request issued it first; its sequence value stands and ours was rolled back.
		winner, findErr := s.repo.FindByPayment(ctx, tn.OrgID, paymentID)
		if findErr != nil {
			return ReceiptResponse{}, findErr
		}
		s.logger.Info("receipt already issued concurrently",
			zap.String("payment_id", paymentID),
			zap.String("receipt_number", winner.ReceiptNumber),
		)
		return mapToResponse(*winner), nil
	}
	if err != nil {
		return ReceiptResponse{}, err
	}

	s.logger.Info("receipt issued",
		zap.String("org_id", tn.OrgID),
		zap.String("payment_id", paymentID),
		zap.String("receipt_number", rec.ReceiptNumber),
		zap.String("generated_by", requester),
	)
	return mapToResponse(*rec), nil
}

func (s *service) issue(
	ctx context.Context,
	tn tenant.Tenant,
	pc *PaymentContext,
	prefix string,
	requester string,
	snapshot []byte,
) (*Receipt, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	now := s.now()
	seq, err := s.counter.WithTx(tx).GetNextValue(ctx, tn.OrgID, counter.TypeReceipt, now.Year())
	if err != nil {
		return nil, err
	}

	rec := &Receipt{
		ID:            uuid.New(),
		OrgID:         tn.OrgUUID(),
		PaymentID:     pc.PaymentID,
		ReceiptNumber: FormatNumber(prefix, now.Year(), seq),
		Amount:        pc.Amount,
		Mode:          pc.Mode,
		GeneratedAt:   now,
		GeneratedBy:   requester,
		Snapshot:      datatypes.JSON(snapshot),
	}
	if err := s.repo.WithTx(tx).Create(ctx, rec); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *service) GetByPayment(ctx context.Context, tn tenant.Tenant, paymentID string) (ReceiptResponse, error) {
	if _, err := uuid.Parse(paymentID); err != nil {
		return ReceiptResponse{}, receipterrors.ErrReceiptNotFound
	}

	if _, err := s.repo.FindPaymentContext(ctx, tn.OrgID, tn.BranchID, paymentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ReceiptResponse{}, receipterrors.ErrPaymentNotFound
		}
		return ReceiptResponse{}, err
	}

	rec, err := s.repo.FindByPayment(ctx, tn.OrgID, paymentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ReceiptResponse{}, receipterrors.ErrReceiptNotFound
		}
		return ReceiptResponse{}, err
	}
	return mapToResponse(*rec), nil
}

func mapToResponse(r Receipt) ReceiptResponse {
	return ReceiptResponse{
		ID:            r.ID.String(),
		PaymentID:     r.PaymentID.String(),
		ReceiptNumber: r.ReceiptNumber,
		Amount:        r.Amount,
		Mode:          r.Mode,
		GeneratedAt:   r.GeneratedAt.UTC().Format(time.RFC3339),
		GeneratedBy:   r.GeneratedBy,
		Snapshot:      json.RawMessage(r.Snapshot),
	}
}
