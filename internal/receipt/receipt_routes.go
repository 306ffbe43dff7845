package receipt

import (
	"go-feeledger/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	h *Handler,
	auth gin.HandlerFunc,
	rbacService middleware.RBACService,
) {
	receipts := r.Group("/payments/:id/receipt")

	receipts.Use(auth)

	{
		receipts.POST("", middleware.RBACAuthorize(rbacService, "receipt", "create"), h.Create)
		receipts.GET("", middleware.RBACAuthorize(rbacService, "receipt", "read"), h.GetByPayment)
	}
}
