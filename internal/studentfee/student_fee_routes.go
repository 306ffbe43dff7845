package studentfee

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
	structures := r.Group("/student-fee-structures")
	structures.Use(auth)
	{
		structures.POST("", middleware.RBACAuthorize(rbacService, "student_fee", "create"), h.Create)
		structures.GET("/:id", middleware.RBACAuthorize(rbacService, "student_fee", "read"), h.GetByID)
	}

	r.GET("/students/:studentId/fee-structures",
		auth,
		middleware.RBACAuthorize(rbacService, "student_fee", "read"),
		h.ListByStudent,
	)
}
