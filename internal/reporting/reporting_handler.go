package reporting

import (
	"net/http"

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
	l := zap.L().Named("reporting.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("reporting.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) FeeCollection(c *gin.Context) {
	var req FeeCollectionRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BindError(c, err)
		return
	}

	resp, err := h.service.FeeCollection(c.Request.Context(), tenant.FromGin(c), req.SessionID)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		h.logger.Warn("fee collection report failed", zap.Int("status", httpErr.Status), zap.Error(err))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}
