package reporting

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
	reports := r.Group("/reports")

	reports.Use(auth)

	{
		reports.GET("/fee-collection", middleware.RBACAuthorize(rbacService, "report", "read"), h.FeeCollection)
	}
}
