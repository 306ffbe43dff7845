package batchfee

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
	structures := r.Group("/batch-fee-structures")

	structures.Use(auth)

	{
		structures.GET("", middleware.RBACAuthorize(rbacService, "batch_fee", "read"), h.List)
		structures.PUT("", middleware.RBACAuthorize(rbacService, "batch_fee", "update"), h.CreateOrUpdate)
		structures.GET("/:id", middleware.RBACAuthorize(rbacService, "batch_fee", "read"), h.GetByID)
		structures.POST("/:id/apply", middleware.RBACAuthorize(rbacService, "batch_fee", "apply"), h.Apply)
	}
}
