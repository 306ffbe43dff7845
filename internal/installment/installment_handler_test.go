package installment_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-feeledger/internal/installment"
	installmenterrors "go-feeledger/internal/installment/errors"
	"go-feeledger/internal/tenant"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeInstallmentService struct {
	GenerateFn        func(ctx context.Context, tn tenant.Tenant, structureID string, req installment.GenerateInstallmentsRequest) ([]installment.InstallmentResponse, error)
	ListByStructureFn func(ctx context.Context, tn tenant.Tenant, structureID string) ([]installment.InstallmentResponse, error)
}

func (f *fakeInstallmentService) Generate(ctx context.Context, tn tenant.Tenant, structureID string, req installment.GenerateInstallmentsRequest) ([]installment.InstallmentResponse, error) {
	return f.GenerateFn(ctx, tn, structureID, req)
}
func (f *fakeInstallmentService) ListByStructure(ctx context.Context, tn tenant.Tenant, structureID string) ([]installment.InstallmentResponse, error) {
	return f.ListByStructureFn(ctx, tn, structureID)
}

type handlerEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error struct {
		Code string `json:"code"`
	} `json:"error"`
}

func newInstallmentContext(method, body string, tn tenant.Tenant, structureID string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{{Key: "id", Value: structureID}}
	c.Set("org_id", tn.OrgID)
	c.Set("branch_id", tn.BranchID)
	return c, w
}

func TestInstallmentHandler_Generate(t *testing.T) {
	tn := tenant.Tenant{OrgID: uuid.NewString(), BranchID: uuid.NewString()}
	structureID := uuid.NewString()

	t.Run("percentage plan", func(t *testing.T) {
		svc := &fakeInstallmentService{
			GenerateFn: func(_ context.Context, got tenant.Tenant, id string, req installment.GenerateInstallmentsRequest) ([]installment.InstallmentResponse, error) {
				assert.Equal(t, tn, got)
				assert.Equal(t, structureID, id)
				require.Len(t, req.Percentages, 2)
				assert.True(t, req.Percentages[0].Percentage.Equal(decimal.NewFromInt(60)))
				assert.Equal(t, 90, req.Percentages[1].OffsetDays)
				return []installment.InstallmentResponse{{InstallmentNumber: 1}, {InstallmentNumber: 2}}, nil
			},
		}
		body := `{"kind":"percentage","percentages":[{"percentage":"60","offset_days":0},{"percentage":"40","offset_days":90}]}`
		c, w := newInstallmentContext(http.MethodPost, body, tn, structureID)

		installment.NewHandler(svc).Generate(c)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("unknown kind fails binding", func(t *testing.T) {
		c, w := newInstallmentContext(http.MethodPost, `{"kind":"weekly"}`, tn, structureID)

		installment.NewHandler(&fakeInstallmentService{}).Generate(c)

		var env handlerEnvelope
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "INVALID_INPUT", env.Error.Code)
	})

	t.Run("already generated", func(t *testing.T) {
		svc := &fakeInstallmentService{
			GenerateFn: func(context.Context, tenant.Tenant, string, installment.GenerateInstallmentsRequest) ([]installment.InstallmentResponse, error) {
				return nil, installmenterrors.ErrInstallmentsExist
			},
		}
		c, w := newInstallmentContext(http.MethodPost, `{"kind":"explicit","explicit":[{"amount":100,"due_date":"2025-04-01"}]}`, tn, structureID)

		installment.NewHandler(svc).Generate(c)

		var env handlerEnvelope
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, "CONFLICT", env.Error.Code)
	})
}

func TestInstallmentHandler_List(t *testing.T) {
	tn := tenant.Tenant{OrgID: uuid.NewString(), BranchID: uuid.NewString()}
	structureID := uuid.NewString()

	svc := &fakeInstallmentService{
		ListByStructureFn: func(context.Context, tenant.Tenant, string) ([]installment.InstallmentResponse, error) {
			return []installment.InstallmentResponse{{InstallmentNumber: 1, Status: installment.StatusOverdue, IsOverdue: true}}, nil
		},
	}
	c, w := newInstallmentContext(http.MethodGet, "", tn, structureID)

	installment.NewHandler(svc).List(c)

	var env handlerEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, http.StatusOK, w.Code)

	var got []installment.InstallmentResponse
	require.NoError(t, json.Unmarshal(env.Data, &got))
	require.Len(t, got, 1)
	assert.True(t, got[0].IsOverdue)
}
