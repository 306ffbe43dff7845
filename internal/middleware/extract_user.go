package middleware

import (
	"go-feeledger/internal/shared/apperror"

	"github.com/gin-gonic/gin"
)

// ExtractUserID rejects requests without an authenticated user and exposes the id
// as user_id_validated for the idempotency and rate limit guards.
func ExtractUserID() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		if userID == "" {
			abortWith(c, apperror.ErrUnauthorized)
			return
		}

		c.Set("user_id_validated", userID)
		c.Next()
	}
}
