package receipt

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
	l := zap.L().Named("receipt.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("receipt.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("receipt request failed",
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.Error(err),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// Create is safe to retry; a second call returns the receipt issued by the first.
func (h *Handler) Create(c *gin.Context) {
	resp, err := h.service.CreateReceipt(c.Request.Context(), tenant.FromGin(c), c.Param("id"), c.GetString("user_id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetByPayment(c *gin.Context) {
	resp, err := h.service.GetByPayment(c.Request.Context(), tenant.FromGin(c), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}
