package batchfee_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-feeledger/internal/batchfee"
	"go-feeledger/internal/tenant"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeBatchFeeService struct {
	CreateOrUpdateFn  func(ctx context.Context, tn tenant.Tenant, req batchfee.UpsertBatchFeeStructureRequest) (batchfee.UpsertResponse, error)
	ListFn            func(ctx context.Context, tn tenant.Tenant, req batchfee.ListBatchFeeStructuresRequest) ([]batchfee.BatchFeeStructureResponse, error)
	GetByIDFn         func(ctx context.Context, tn tenant.Tenant, id string) (batchfee.BatchFeeStructureResponse, error)
	ApplyToStudentsFn func(ctx context.Context, tn tenant.Tenant, id string, overwrite bool, actor string) (batchfee.ApplyResult, error)
}

func (f *fakeBatchFeeService) CreateOrUpdate(ctx context.Context, tn tenant.Tenant, req batchfee.UpsertBatchFeeStructureRequest) (batchfee.UpsertResponse, error) {
	return f.CreateOrUpdateFn(ctx, tn, req)
}
func (f *fakeBatchFeeService) List(ctx context.Context, tn tenant.Tenant, req batchfee.ListBatchFeeStructuresRequest) ([]batchfee.BatchFeeStructureResponse, error) {
	return f.ListFn(ctx, tn, req)
}
func (f *fakeBatchFeeService) GetByID(ctx context.Context, tn tenant.Tenant, id string) (batchfee.BatchFeeStructureResponse, error) {
	return f.GetByIDFn(ctx, tn, id)
}
func (f *fakeBatchFeeService) ApplyToStudents(ctx context.Context, tn tenant.Tenant, id string, overwrite bool, actor string) (batchfee.ApplyResult, error) {
	return f.ApplyToStudentsFn(ctx, tn, id, overwrite, actor)
}

type apiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error struct {
		Code    string          `json:"code"`
		Message string          `json:"message"`
		Details json.RawMessage `json:"details"`
	} `json:"error"`
}

func newApplyContext(body string, id string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/batch-fee-structures/"+id+"/apply", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: id}}
	c.Set("org_id", uuid.NewString())
	c.Set("branch_id", uuid.NewString())
	c.Set("user_id", "u-1")
	return c, w
}

func TestBatchFeeHandler_Apply(t *testing.T) {
	id := uuid.NewString()

	t.Run("blocked overwrite is a 409 with the students", func(t *testing.T) {
		svc := &fakeBatchFeeService{
			ApplyToStudentsFn: func(_ context.Context, _ tenant.Tenant, got string, overwrite bool, actor string) (batchfee.ApplyResult, error) {
				assert.Equal(t, id, got)
				assert.True(t, overwrite)
				assert.Equal(t, "u-1", actor)
				return batchfee.ApplyResult{Blocked: &batchfee.OverwriteBlocked{
					Students: []batchfee.BlockedStudent{{StudentID: "s-1", StructureID: "st-1", PaidAmount: 500}},
				}}, nil
			},
		}
		h := batchfee.NewHandler(svc)
		c, w := newApplyContext(`{"overwrite_existing":true}`, id)

		h.Apply(c)

		var env apiEnvelope
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, "OVERWRITE_BLOCKED", env.Error.Code)
		assert.Contains(t, string(env.Error.Details), `"student_id":"s-1"`)
	})

	t.Run("empty body means no overwrite", func(t *testing.T) {
		svc := &fakeBatchFeeService{
			ApplyToStudentsFn: func(_ context.Context, _ tenant.Tenant, _ string, overwrite bool, _ string) (batchfee.ApplyResult, error) {
				assert.False(t, overwrite)
				return batchfee.ApplyResult{Applied: 4, Skipped: 1}, nil
			},
		}
		h := batchfee.NewHandler(svc)
		c, w := newApplyContext("", id)

		h.Apply(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"applied":4`)
	})
}
