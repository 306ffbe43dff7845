package feecomponent

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
	components := r.Group("/fee-components")

	components.Use(auth)

	{
		components.GET("", middleware.RBACAuthorize(rbacService, "fee_component", "read"), h.GetAll)
		components.POST("", middleware.RBACAuthorize(rbacService, "fee_component", "create"), h.Create)
		components.GET("/:id", middleware.RBACAuthorize(rbacService, "fee_component", "read"), h.GetByID)
		components.PUT("/:id", middleware.RBACAuthorize(rbacService, "fee_component", "update"), h.Update)
		components.POST("/:id/deactivate", middleware.RBACAuthorize(rbacService, "fee_component", "update"), h.Deactivate)
	}
}
