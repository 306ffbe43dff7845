package middleware

import (
	"errors"
	"fmt"
	"strings"

	"go-feeledger/internal/shared/apperror"
	"go-feeledger/internal/shared/contextutil"
	"go-feeledger/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

// AuthMiddleware verifies the bearer token and exposes its tenant scope to handlers.
// Token issuance lives outside this service.
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !found {
			tokenString = ""
		}

		if tokenString == "" {
			if cookie, err := c.Cookie("access_token"); err == nil {
				tokenString = cookie
			}
		}

		if tokenString == "" {
			abortWith(c, apperror.ErrUnauthorized)
			return
		}

		claims := jwt.MapClaims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
			}
			return []byte(secret), nil
		})

		if err != nil || !token.Valid {
			errObj := apperror.ErrInvalidToken
			if errors.Is(err, jwt.ErrTokenExpired) {
				errObj = apperror.ErrTokenExpired
			}
			abortWith(c, errObj)
			return
		}

		scope := map[string]string{}
		for _, key := range []string{"user_id", "org_id", "branch_id"} {
			v, ok := claims[key].(string)
			if !ok || v == "" {
				abortWith(c, apperror.New(apperror.CodeUnauthorized, key+" not found in token", apperror.ErrInvalidToken.HTTPStatus))
				return
			}
			scope[key] = v
		}

		role, _ := claims["role"].(string)

		c.Set("user_id", scope["user_id"])
		c.Set("org_id", scope["org_id"])
		c.Set("branch_id", scope["branch_id"])
		c.Set("role", role)

		ctx := contextutil.WithUserID(c.Request.Context(), scope["user_id"])
		reqLogger := contextutil.GetLogger(ctx, zap.L()).With(
			zap.String("user_id", scope["user_id"]),
			zap.String("org_id", scope["org_id"]),
		)
		c.Request = c.Request.WithContext(contextutil.WithLogger(ctx, reqLogger))

		c.Next()
	}
}

func abortWith(c *gin.Context, err *apperror.AppError) {
	response.Error(c, err.HTTPStatus, err.Code, err.Message, err.Details)
	c.Abort()
}
