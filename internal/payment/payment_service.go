package payment

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"go-feeledger/internal/events"
	"go-feeledger/internal/installment"
	paymenterrors "go-feeledger/internal/payment/errors"
	"go-feeledger/internal/tenant"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=payment_service.go -destination=mock/payment_service_mock.go -package=mock
type Service interface {
	RecordPayment(ctx context.Context, tn tenant.Tenant, installmentID string, req RecordPaymentRequest, receivedBy string) (RecordPaymentResponse, error)
	ListPayments(ctx context.Context, tn tenant.Tenant, installmentID string) ([]PaymentResponse, error)
}

type Options struct {
	DueSoonDays int
	Now         func() time.Time
}

type service struct {
	db          *sql.DB
	repo        Repository
	notifier    Notifier
	dueSoonDays int
	now         func() time.Time
	logger      *zap.Logger
}

func NewService(db *sql.DB, repo Repository, notifier Notifier, opts Options, logger ...*zap.Logger) Service {
	l := zap.L().Named("payment.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payment.service")
	}
	if notifier == nil {
		notifier = NopNotifier()
	}
	if opts.DueSoonDays <= 0 {
		opts.DueSoonDays = installment.DefaultDueSoonDays
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &service{
		db:          db,
		repo:        repo,
		notifier:    notifier,
		dueSoonDays: opts.DueSoonDays,
		now:         opts.Now,
		logger:      l,
	}
}

func (s *service) RecordPayment(
	ctx context.Context,
	tn tenant.Tenant,
	installmentID string,
	req RecordPaymentRequest,
	receivedBy string,
) (RecordPaymentResponse, error) {
	if err := tn.Validate(); err != nil {
		return RecordPaymentResponse{}, err
	}
	if _, err := uuid.Parse(installmentID); err != nil {
		return RecordPaymentResponse{}, paymenterrors.ErrInstallmentNotFound
	}
	if req.Amount <= 0 {
		return RecordPaymentResponse{}, paymenterrors.ErrNonPositiveAmount
	}
	if !IsValidMode(req.Mode) {
		return RecordPaymentResponse{}, paymenterrors.ErrInvalidMode
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return RecordPaymentResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	inst, err := qtx.LockInstallment(ctx, tn.OrgID, tn.BranchID, installmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return RecordPaymentResponse{}, paymenterrors.ErrInstallmentNotFound
		}
		return RecordPaymentResponse{}, err
	}

	outstanding := inst.Balance()
	if req.Amount > outstanding {
		return RecordPaymentResponse{}, paymenterrors.ErrExceedsOutstanding.WithDetails(OutstandingDetails{
			Outstanding: outstanding,
		})
	}

	now := s.now()
	p := &InstallmentPayment{
		ID:            uuid.New(),
		OrgID:         tn.OrgUUID(),
		InstallmentID: inst.ID,
		Amount:        req.Amount,
		Mode:          req.Mode,
		Reference:     req.Reference,
		Remarks:       req.Remarks,
		ReceivedBy:    parseActor(receivedBy),
		ReceivedAt:    now,
	}
	if err := qtx.Create(ctx, p); err != nil {
		return RecordPaymentResponse{}, err
	}

	inst.PaidAmount += req.Amount
	inst.Status = installment.DeriveStatus(inst.Amount, inst.PaidAmount, inst.DueDate, now, s.dueSoonDays)
	if err := qtx.UpdateInstallmentPaid(ctx, tn.OrgID, installmentID, inst.PaidAmount, inst.Status); err != nil {
		return RecordPaymentResponse{}, err
	}

	evt := events.PaymentRecordedEvent{
		EventType:     events.PaymentRecordedType,
		PaymentID:     p.ID.String(),
		InstallmentID: inst.ID.String(),
		OrgID:         tn.OrgID,
		BranchID:      tn.BranchID,
		Amount:        p.Amount,
		Mode:          p.Mode,
		PaidAmount:    inst.PaidAmount,
		Status:        inst.Status,
		ReceivedBy:    receivedBy,
		OccurredAt:    now.UTC(),
	}
	if err := s.notifier.PaymentRecorded(ctx, tx, evt); err != nil {
		return RecordPaymentResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return RecordPaymentResponse{}, err
	}

	s.logger.Info("payment recorded",
		zap.String("org_id", tn.OrgID),
		zap.String("installment_id", installmentID),
		zap.String("payment_id", p.ID.String()),
		zap.Int64("amount", p.Amount),
		zap.Int64("paid_amount", inst.PaidAmount),
		zap.String("status", inst.Status),
	)

	return RecordPaymentResponse{
		Payment:     mapToResponse(*p),
		Installment: installment.ToResponse(*inst, now, s.dueSoonDays),
	}, nil
}

func (s *service) ListPayments(ctx context.Context, tn tenant.Tenant, installmentID string) ([]PaymentResponse, error) {
	if _, err := uuid.Parse(installmentID); err != nil {
		return nil, paymenterrors.ErrInstallmentNotFound
	}

	if _, err := s.repo.FindInstallment(ctx, tn.OrgID, tn.BranchID, installmentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, paymenterrors.ErrInstallmentNotFound
		}
		return nil, err
	}

	payments, err := s.repo.FindByInstallment(ctx, tn.OrgID, installmentID)
	if err != nil {
		return nil, err
	}
	return lo.Map(payments, func(p InstallmentPayment, _ int) PaymentResponse {
		return mapToResponse(p)
	}), nil
}

func parseActor(actor string) *uuid.UUID {
	id, err := uuid.Parse(actor)
	if err != nil {
		return nil
	}
	return &id
}

func mapToResponse(p InstallmentPayment) PaymentResponse {
	res := PaymentResponse{
		ID:            p.ID.String(),
		InstallmentID: p.InstallmentID.String(),
		Amount:        p.Amount,
		Mode:          p.Mode,
		Reference:     p.Reference,
		Remarks:       p.Remarks,
		ReceivedAt:    p.ReceivedAt.UTC().Format(time.RFC3339),
	}
	if p.ReceivedBy != nil {
		res.ReceivedBy = p.ReceivedBy.String()
	}
	return res
}
