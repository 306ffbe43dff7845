package installment

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
	installments := r.Group("/student-fee-structures/:id/installments")

	installments.Use(auth)

	{
		installments.POST("", middleware.RBACAuthorize(rbacService, "installment", "create"), h.Generate)
		installments.GET("", middleware.RBACAuthorize(rbacService, "installment", "read"), h.List)
	}
}
