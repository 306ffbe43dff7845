package payment

import (
	"go-feeledger/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts payment endpoints. guards run after auth and before
// the record handler (idempotency, rate limiting).
func RegisterRoutes(
	r *gin.RouterGroup,
	h *Handler,
	auth gin.HandlerFunc,
	rbacService middleware.RBACService,
	guards ...gin.HandlerFunc,
) {
	payments := r.Group("/installments/:id/payments")

	payments.Use(auth)

	{
		record := append([]gin.HandlerFunc{middleware.RBACAuthorize(rbacService, "payment", "create")}, guards...)
		payments.POST("", append(record, h.Record)...)
		payments.GET("", middleware.RBACAuthorize(rbacService, "payment", "read"), h.List)
	}
}
