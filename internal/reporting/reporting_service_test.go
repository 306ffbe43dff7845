package reporting_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"go-feeledger/internal/academic"
	academicMock "go-feeledger/internal/academic/mock"
	"go-feeledger/internal/reporting"
	reportingerrors "go-feeledger/internal/reporting/errors"
	reportingMock "go-feeledger/internal/reporting/mock"
	"go-feeledger/internal/tenant"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type serviceDeps struct {
	service   reporting.Service
	repo      *reportingMock.MockRepository
	academic  *academicMock.MockRepository
	redismock redismock.ClientMock
	tenant    tenant.Tenant
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)
	rdb, redisMock := redismock.NewClientMock()

	deps := &serviceDeps{
		repo:      reportingMock.NewMockRepository(ctrl),
		academic:  academicMock.NewMockRepository(ctrl),
		redismock: redisMock,
		tenant:    tenant.Tenant{OrgID: uuid.NewString(), BranchID: uuid.NewString()},
	}
	deps.service = reporting.NewService(deps.repo, deps.academic, rdb, 0)
	return deps
}

func TestReportingService_FeeCollection_CacheMiss(t *testing.T) {
	deps := setupServiceTest(t)
	ctx := context.Background()
	sessionID := uuid.NewString()
	key := reporting.FeeCollectionKey(deps.tenant.OrgID, deps.tenant.BranchID, sessionID)

	rows := []reporting.BatchCollection{
		{BatchID: "b1", BatchName: "Grade 1", StudentCount: 2, TotalNet: 24000, TotalPaid: 9000},
		{BatchID: "b2", BatchName: "Grade 2", StudentCount: 1, TotalNet: 12000, TotalPaid: 12000},
	}
	want := reporting.FeeCollectionResponse{
		SessionID: sessionID,
		Batches: []reporting.BatchCollectionResponse{
			{BatchID: "b1", BatchName: "Grade 1", StudentCount: 2, TotalNet: 24000, TotalPaid: 9000, Outstanding: 15000},
			{BatchID: "b2", BatchName: "Grade 2", StudentCount: 1, TotalNet: 12000, TotalPaid: 12000, Outstanding: 0},
		},
		StudentCount: 3,
		TotalNet:     36000,
		TotalPaid:    21000,
		Outstanding:  15000,
	}
	encoded, err := json.Marshal(want)
	require.NoError(t, err)

	deps.redismock.ExpectGet(key).RedisNil()
	deps.academic.EXPECT().FindSession(ctx, deps.tenant.OrgID, sessionID).Return(&academic.AcademicSession{}, nil)
	deps.repo.EXPECT().FeeCollection(ctx, deps.tenant.OrgID, deps.tenant.BranchID, sessionID).Return(rows, nil)
	deps.redismock.ExpectSet(key, string(encoded), reporting.DefaultCacheTTL).SetVal("OK")

	got, err := deps.service.FeeCollection(ctx, deps.tenant, sessionID)

	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.NoError(t, deps.redismock.ExpectationsWereMet())
}

func TestReportingService_FeeCollection_CacheHit(t *testing.T) {
	deps := setupServiceTest(t)
	ctx := context.Background()
	sessionID := uuid.NewString()
	key := reporting.FeeCollectionKey(deps.tenant.OrgID, deps.tenant.BranchID, sessionID)

	cached := reporting.FeeCollectionResponse{SessionID: sessionID, TotalNet: 100, TotalPaid: 40, Outstanding: 60,
		Batches: []reporting.BatchCollectionResponse{}}
	encoded, err := json.Marshal(cached)
	require.NoError(t, err)

	deps.redismock.ExpectGet(key).SetVal(string(encoded))

	got, err := deps.service.FeeCollection(ctx, deps.tenant, sessionID)

	require.NoError(t, err)
	assert.Equal(t, cached, got)
	assert.NoError(t, deps.redismock.ExpectationsWereMet())
}

func TestReportingService_FeeCollection_RedisDownFallsBackToDatabase(t *testing.T) {
	deps := setupServiceTest(t)
	ctx := context.Background()
	sessionID := uuid.NewString()
	key := reporting.FeeCollectionKey(deps.tenant.OrgID, deps.tenant.BranchID, sessionID)

	deps.redismock.ExpectGet(key).SetErr(errors.New("connection refused"))
	deps.academic.EXPECT().FindSession(ctx, deps.tenant.OrgID, sessionID).Return(&academic.AcademicSession{}, nil)
	deps.repo.EXPECT().FeeCollection(ctx, deps.tenant.OrgID, deps.tenant.BranchID, sessionID).Return(nil, nil)
	deps.redismock.ExpectSet(key, `{"session_id":"`+sessionID+`","batches":[],"student_count":0,"total_net":0,"total_paid":0,"outstanding":0}`, reporting.DefaultCacheTTL).
		SetErr(errors.New("connection refused"))

	got, err := deps.service.FeeCollection(ctx, deps.tenant, sessionID)

	require.NoError(t, err)
	assert.Empty(t, got.Batches)
}

func TestReportingService_FeeCollection_UnknownSession(t *testing.T) {
	deps := setupServiceTest(t)
	ctx := context.Background()
	sessionID := uuid.NewString()
	key := reporting.FeeCollectionKey(deps.tenant.OrgID, deps.tenant.BranchID, sessionID)

	deps.redismock.ExpectGet(key).RedisNil()
	deps.academic.EXPECT().FindSession(ctx, deps.tenant.OrgID, sessionID).Return(nil, gorm.ErrRecordNotFound)

	_, err := deps.service.FeeCollection(ctx, deps.tenant, sessionID)

	assert.ErrorIs(t, err, reportingerrors.ErrSessionNotFound)
}

func TestReportingService_FeeCollection_WithoutCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := reportingMock.NewMockRepository(ctrl)
	academicRepo := academicMock.NewMockRepository(ctrl)
	tn := tenant.Tenant{OrgID: uuid.NewString(), BranchID: uuid.NewString()}
	sessionID := uuid.NewString()

	academicRepo.EXPECT().FindSession(gomock.Any(), tn.OrgID, sessionID).Return(&academic.AcademicSession{}, nil)
	repo.EXPECT().FeeCollection(gomock.Any(), tn.OrgID, tn.BranchID, sessionID).
		Return([]reporting.BatchCollection{{BatchID: "b1", TotalNet: 500, TotalPaid: 200}}, nil)

	got, err := reporting.NewService(repo, academicRepo, nil, time.Minute).FeeCollection(context.Background(), tn, sessionID)

	require.NoError(t, err)
	assert.Equal(t, int64(300), got.Outstanding)
}

func TestReportingService_InvalidateFeeCollection(t *testing.T) {
	deps := setupServiceTest(t)
	ctx := context.Background()
	pattern := reporting.FeeCollectionKey(deps.tenant.OrgID, deps.tenant.BranchID, "*")
	first := reporting.FeeCollectionKey(deps.tenant.OrgID, deps.tenant.BranchID, uuid.NewString())
	second := reporting.FeeCollectionKey(deps.tenant.OrgID, deps.tenant.BranchID, uuid.NewString())

	deps.redismock.ExpectScan(0, pattern, 100).SetVal([]string{first}, 42)
	deps.redismock.ExpectDel(first).SetVal(1)
	deps.redismock.ExpectScan(42, pattern, 100).SetVal([]string{second}, 0)
	deps.redismock.ExpectDel(second).SetVal(1)

	err := deps.service.InvalidateFeeCollection(ctx, deps.tenant)

	require.NoError(t, err)
	assert.NoError(t, deps.redismock.ExpectationsWereMet())
}

func TestReportingService_InvalidateFeeCollection_ScanFailure(t *testing.T) {
	deps := setupServiceTest(t)
	pattern := reporting.FeeCollectionKey(deps.tenant.OrgID, deps.tenant.BranchID, "*")

	deps.redismock.ExpectScan(0, pattern, 100).SetErr(errors.New("connection refused"))

	err := deps.service.InvalidateFeeCollection(context.Background(), deps.tenant)

	assert.EqualError(t, err, "connection refused")
}
