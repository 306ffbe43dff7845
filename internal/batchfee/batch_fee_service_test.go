package batchfee_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"go-feeledger/internal/academic"
	academicMock "go-feeledger/internal/academic/mock"
	"go-feeledger/internal/batchfee"
	batchfeeerrors "go-feeledger/internal/batchfee/errors"
	batchfeeMock "go-feeledger/internal/batchfee/mock"
	feecomponenterrors "go-feeledger/internal/feecomponent/errors"
	feecomponentMock "go-feeledger/internal/feecomponent/mock"
	studentfeeMock "go-feeledger/internal/studentfee/mock"
	"go-feeledger/internal/tenant"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type serviceDeps struct {
	db       *sql.DB
	sqlMock  sqlmock.Sqlmock
	service  batchfee.Service
	repo     *batchfeeMock.MockRepository
	ledger   *batchfeeMock.MockLedgerRepository
	students *studentfeeMock.MockRepository
	resolver *feecomponentMock.MockResolver
	academic *academicMock.MockRepository
	tenant   tenant.Tenant
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	deps := &serviceDeps{
		db:       db,
		sqlMock:  sqlMock,
		repo:     batchfeeMock.NewMockRepository(ctrl),
		ledger:   batchfeeMock.NewMockLedgerRepository(ctrl),
		students: studentfeeMock.NewMockRepository(ctrl),
		resolver: feecomponentMock.NewMockResolver(ctrl),
		academic: academicMock.NewMockRepository(ctrl),
		tenant:   tenant.Tenant{OrgID: uuid.NewString(), BranchID: uuid.NewString()},
	}
	deps.service = batchfee.NewService(db, deps.repo, deps.ledger, deps.students, deps.resolver, deps.academic)
	return deps
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func upsertRequest() batchfee.UpsertBatchFeeStructureRequest {
	return batchfee.UpsertBatchFeeStructureRequest{
		BatchID:   uuid.NewString(),
		SessionID: uuid.NewString(),
		Name:      "Grade 5 - 2025",
		LineItems: []batchfee.LineItemRequest{
			{ComponentID: uuid.NewString(), Amount: 9000},
			{ComponentID: uuid.NewString(), Amount: 3000},
		},
	}
}

func (d *serviceDeps) expectReferencesValid(req batchfee.UpsertBatchFeeStructureRequest) {
	d.academic.EXPECT().BatchInBranch(gomock.Any(), d.tenant.OrgID, d.tenant.BranchID, req.BatchID).Return(true, nil)
	d.academic.EXPECT().FindSession(gomock.Any(), d.tenant.OrgID, req.SessionID).Return(&academic.AcademicSession{}, nil)
}

func TestBatchFeeService_CreateOrUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("insert computes total server side", func(t *testing.T) {
		deps := setupServiceTest(t)
		req := upsertRequest()
		deps.expectReferencesValid(req)

		expectTx(t, deps.sqlMock, true)
		deps.resolver.EXPECT().ResolveActive(ctx, gomock.Any(), deps.tenant.OrgID, gomock.Len(2)).Return(nil, nil)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByBatchSession(ctx, deps.tenant.OrgID, req.BatchID, req.SessionID).Return(nil, gorm.ErrRecordNotFound)
		deps.repo.EXPECT().
			Save(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, w batchfee.Write) error {
				assert.Equal(t, batchfee.WriteInsert, w.Kind)
				assert.Equal(t, int64(12000), w.Structure.TotalAmount)
				for _, li := range w.Structure.LineItems {
					assert.Equal(t, w.Structure.ID, li.BatchFeeStructureID)
				}
				return nil
			})

		resp, err := deps.service.CreateOrUpdate(ctx, deps.tenant, req)

		assert.NoError(t, err)
		assert.Equal(t, "insert", resp.Operation)
		assert.Equal(t, int64(12000), resp.Structure.TotalAmount)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("existing (batch, session) is replaced in place", func(t *testing.T) {
		deps := setupServiceTest(t)
		req := upsertRequest()
		deps.expectReferencesValid(req)
		existingID := uuid.New()

		expectTx(t, deps.sqlMock, true)
		deps.resolver.EXPECT().ResolveActive(ctx, gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			FindByBatchSession(ctx, gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&batchfee.BatchFeeStructure{ID: existingID, CreatedAt: time.Now()}, nil)
		deps.repo.EXPECT().
			Save(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, w batchfee.Write) error {
				assert.Equal(t, batchfee.WriteReplace, w.Kind)
				assert.Equal(t, existingID, w.Structure.ID)
				return nil
			})

		resp, err := deps.service.CreateOrUpdate(ctx, deps.tenant, req)

		assert.NoError(t, err)
		assert.Equal(t, "replace", resp.Operation)
		assert.Equal(t, existingID.String(), resp.Structure.ID)
	})

	t.Run("inactive component fails the whole call", func(t *testing.T) {
		deps := setupServiceTest(t)
		req := upsertRequest()
		deps.expectReferencesValid(req)

		expectTx(t, deps.sqlMock, false)
		deps.resolver.EXPECT().
			ResolveActive(ctx, gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, feecomponenterrors.ErrInvalidComponents)

		_, err := deps.service.CreateOrUpdate(ctx, deps.tenant, req)

		assert.ErrorIs(t, err, feecomponenterrors.ErrInvalidComponents)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("duplicate component", func(t *testing.T) {
		deps := setupServiceTest(t)
		req := upsertRequest()
		req.LineItems[1].ComponentID = req.LineItems[0].ComponentID

		_, err := deps.service.CreateOrUpdate(ctx, deps.tenant, req)

		assert.ErrorIs(t, err, batchfeeerrors.ErrDuplicateComponent)
	})

	t.Run("zero amount", func(t *testing.T) {
		deps := setupServiceTest(t)
		req := upsertRequest()
		req.LineItems[0].Amount = 0

		_, err := deps.service.CreateOrUpdate(ctx, deps.tenant, req)

		assert.ErrorIs(t, err, batchfeeerrors.ErrNonPositiveAmount)
	})

	t.Run("batch of another branch", func(t *testing.T) {
		deps := setupServiceTest(t)
		req := upsertRequest()
		deps.academic.EXPECT().BatchInBranch(ctx, gomock.Any(), gomock.Any(), req.BatchID).Return(false, nil)

		_, err := deps.service.CreateOrUpdate(ctx, deps.tenant, req)

		assert.ErrorIs(t, err, batchfeeerrors.ErrBatchNotFound)
	})
}

func TestBatchFeeService_GetByID_OtherBranchIsNotFound(t *testing.T) {
	deps := setupServiceTest(t)
	ctx := context.Background()
	id := uuid.New()

	deps.repo.EXPECT().
		FindByIDAndOrg(ctx, deps.tenant.OrgID, id.String()).
		Return(&batchfee.BatchFeeStructure{ID: id, BranchID: uuid.New()}, nil)

	_, err := deps.service.GetByID(ctx, deps.tenant, id.String())

	assert.ErrorIs(t, err, batchfeeerrors.ErrStructureNotFound)
}
