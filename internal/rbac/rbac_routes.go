package rbac

import (
	"go-feeledger/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, auth gin.HandlerFunc, service Service) {
	group := r.Group("/rbac")
	group.Use(auth)
	{
		group.POST("/enforce", h.Enforce)
		group.GET("/roles", middleware.RBACAuthorize(service, "role", "read"), h.ListRoles)
		group.GET("/permissions", middleware.RBACAuthorize(service, "role", "read"), h.ListPermissions)
	}
}
