package batchfee

import (
	"errors"
	"io"
	"net/http"

	batchfeeerrors "go-feeledger/internal/batchfee/errors"
	"go-feeledger/internal/shared/apperror"
	"go-feeledger/internal/shared/response"
	"go-feeledger/internal/tenant"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("batchfee.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("batchfee.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("batch fee request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.Error(err),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) CreateOrUpdate(c *gin.Context) {
	var req UpsertBatchFeeStructureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	resp, err := h.service.CreateOrUpdate(c.Request.Context(), tenant.FromGin(c), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	status := http.StatusOK
	if resp.Operation == WriteInsert.String() {
		status = http.StatusCreated
	}
	response.Success(c, status, resp, nil)
}

func (h *Handler) List(c *gin.Context) {
	var req ListBatchFeeStructuresRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BindError(c, err)
		return
	}

	resp, err := h.service.List(c.Request.Context(), tenant.FromGin(c), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetByID(c *gin.Context) {
	resp, err := h.service.GetByID(c.Request.Context(), tenant.FromGin(c), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Apply(c *gin.Context) {
	var req ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		response.BindError(c, err)
		return
	}

	result, err := h.service.ApplyToStudents(
		c.Request.Context(),
		tenant.FromGin(c),
		c.Param("id"),
		req.OverwriteExisting,
		c.GetString("user_id"),
	)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	if result.Blocked != nil {
		blocked := batchfeeerrors.ErrOverwriteBlocked
		response.Error(c, blocked.HTTPStatus, blocked.Code, blocked.Message, result.Blocked)
		return
	}

	response.Success(c, http.StatusOK, result, nil)
}
