package feecomponent_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"go-feeledger/internal/feecomponent"
	feecomponenterrors "go-feeledger/internal/feecomponent/errors"
	feecomponentMock "go-feeledger/internal/feecomponent/mock"
	"go-feeledger/internal/shared/apperror"
	"go-feeledger/internal/tenant"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type serviceDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	service feecomponent.Service
	repo    *feecomponentMock.MockRepository
	tenant  tenant.Tenant
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)
	repo := feecomponentMock.NewMockRepository(ctrl)

	return &serviceDeps{
		db:      db,
		sqlMock: sqlMock,
		service: feecomponent.NewService(db, repo),
		repo:    repo,
		tenant:  tenant.Tenant{OrgID: uuid.New().String(), BranchID: uuid.New().String()},
	}
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

func TestFeeComponentService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		req := feecomponent.CreateFeeComponentRequest{Name: "Tuition", Type: feecomponent.TypeTuition, BaseAmount: 12000}

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, c *feecomponent.FeeComponent) error {
				assert.Equal(t, deps.tenant.OrgID, c.OrgID.String())
				assert.Equal(t, int64(12000), c.BaseAmount)
				assert.True(t, c.IsActive)
				return nil
			})

		resp, err := deps.service.Create(ctx, deps.tenant, req)

		assert.NoError(t, err)
		assert.Equal(t, "Tuition", resp.Name)
		assert.True(t, resp.IsActive)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("duplicate name -> conflict", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			Return(&pgconn.PgError{Code: "23505", ConstraintName: "uq_fee_component_org_name"})

		_, err := deps.service.Create(ctx, deps.tenant, feecomponent.CreateFeeComponentRequest{Name: "Tuition", Type: feecomponent.TypeTuition})

		assert.ErrorIs(t, err, feecomponenterrors.ErrComponentNameTaken)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative base amount", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.Create(ctx, deps.tenant, feecomponent.CreateFeeComponentRequest{Name: "Bus", Type: feecomponent.TypeTransport, BaseAmount: -1})

		assert.ErrorIs(t, err, feecomponenterrors.ErrNegativeBaseAmount)
	})

	t.Run("missing tenant", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.Create(ctx, tenant.Tenant{}, feecomponent.CreateFeeComponentRequest{Name: "Bus"})

		assert.ErrorIs(t, err, tenant.ErrInvalidTenant)
	})
}

func TestFeeComponentService_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		id := uuid.New().String()
		deps.repo.EXPECT().FindByIDAndOrg(ctx, deps.tenant.OrgID, id).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.GetByID(ctx, deps.tenant, id)

		var appErr *apperror.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, apperror.CodeNotFound, appErr.Code)
	})

	t.Run("malformed id", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.GetByID(ctx, deps.tenant, "nope")

		assert.ErrorIs(t, err, feecomponenterrors.ErrComponentNotFound)
	})
}

func TestFeeComponentService_GetAll(t *testing.T) {
	deps := setupServiceTest(t)
	defer deps.db.Close()
	ctx := context.Background()

	deps.repo.EXPECT().
		FindAllByOrg(ctx, deps.tenant.OrgID, false).
		Return([]feecomponent.FeeComponent{
			{ID: uuid.New(), Name: "Exam", Type: feecomponent.TypeExam, BaseAmount: 500, IsActive: true},
			{ID: uuid.New(), Name: "Tuition", Type: feecomponent.TypeTuition, BaseAmount: 12000, IsActive: true},
		}, nil)

	resp, err := deps.service.GetAll(ctx, deps.tenant, feecomponent.ListFeeComponentsRequest{})

	assert.NoError(t, err)
	assert.Len(t, resp, 2)
	assert.Equal(t, int64(12000), resp[1].BaseAmount)
}

func TestFeeComponentService_Update(t *testing.T) {
	deps := setupServiceTest(t)
	defer deps.db.Close()
	ctx := context.Background()

	id := uuid.New()
	existing := &feecomponent.FeeComponent{ID: id, Name: "Lab", Type: feecomponent.TypeLab, BaseAmount: 100, IsActive: true}

	expectTx(t, deps.sqlMock, true)
	deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
	deps.repo.EXPECT().FindByIDAndOrg(ctx, deps.tenant.OrgID, id.String()).Return(existing, nil)
	deps.repo.EXPECT().
		Update(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, c *feecomponent.FeeComponent) error {
			assert.Equal(t, int64(250), c.BaseAmount)
			return nil
		})

	resp, err := deps.service.Update(ctx, deps.tenant, id.String(), feecomponent.UpdateFeeComponentRequest{
		Name: "Science Lab", Type: feecomponent.TypeLab, BaseAmount: 250,
	})

	assert.NoError(t, err)
	assert.Equal(t, "Science Lab", resp.Name)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestFeeComponentService_Deactivate(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		id := uuid.New()
		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().SetActive(ctx, deps.tenant.OrgID, id.String(), false).Return(nil)
		deps.repo.EXPECT().
			FindByIDAndOrg(ctx, deps.tenant.OrgID, id.String()).
			Return(&feecomponent.FeeComponent{ID: id, Name: "Hostel", IsActive: false}, nil)

		resp, err := deps.service.Deactivate(ctx, deps.tenant, id.String())

		assert.NoError(t, err)
		assert.False(t, resp.IsActive)
	})

	t.Run("other org -> not found and rollback", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		id := uuid.New().String()
		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().SetActive(ctx, deps.tenant.OrgID, id, false).Return(gorm.ErrRecordNotFound)

		_, err := deps.service.Deactivate(ctx, deps.tenant, id)

		assert.ErrorIs(t, err, feecomponenterrors.ErrComponentNotFound)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestResolver_ResolveActive(t *testing.T) {
	ctx := context.Background()
	orgID := uuid.New().String()

	t.Run("all active", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := feecomponentMock.NewMockRepository(ctrl)
		resolver := feecomponent.NewResolver(repo)

		a, b := uuid.New(), uuid.New()
		repo.EXPECT().WithTx(gomock.Any()).Return(repo)
		repo.EXPECT().
			FindActiveByIDs(ctx, orgID, []string{a.String(), b.String()}).
			Return([]feecomponent.FeeComponent{{ID: a, Name: "A"}, {ID: b, Name: "B"}}, nil)

		got, err := resolver.ResolveActive(ctx, nil, orgID, []string{a.String(), b.String(), a.String()})

		assert.NoError(t, err)
		assert.Len(t, got, 2)
		assert.Equal(t, "B", got[b.String()].Name)
	})

	t.Run("inactive or foreign ids are reported", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := feecomponentMock.NewMockRepository(ctrl)
		resolver := feecomponent.NewResolver(repo)

		active, inactive := uuid.New(), uuid.New()
		repo.EXPECT().WithTx(gomock.Any()).Return(repo)
		repo.EXPECT().
			FindActiveByIDs(ctx, orgID, gomock.Any()).
			Return([]feecomponent.FeeComponent{{ID: active}}, nil)

		_, err := resolver.ResolveActive(ctx, nil, orgID, []string{active.String(), inactive.String(), "garbage"})

		assert.ErrorIs(t, err, feecomponenterrors.ErrInvalidComponents)
		var appErr *apperror.AppError
		assert.True(t, errors.As(err, &appErr))
		details, ok := appErr.Details.(feecomponent.InvalidComponentsDetails)
		assert.True(t, ok)
		assert.ElementsMatch(t, []string{"garbage", inactive.String()}, details.InvalidComponentIDs)
	})
}
