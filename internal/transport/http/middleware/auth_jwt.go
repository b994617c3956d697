package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"teadiary/internal/core/auth"
	"teadiary/internal/transport/http/response"
)

const (
	KeyUserID = "userId"
	KeyEmail  = "email"
	KeyRole   = "role"
)

// AuthJWT validates the bearer token and puts the subject, email and role
// into the gin context. Missing, malformed or expired tokens answer 401.
func AuthJWT(j *auth.JWTer) gin.HandlerFunc {
	return func(c *gin.Context) {
		ah := c.GetHeader("Authorization")
		if !strings.HasPrefix(ah, "Bearer ") {
			response.Unauthorized(c, "Требуется авторизация")
			c.Abort()
			return
		}
		claims, err := j.Parse(strings.TrimPrefix(ah, "Bearer "))
		if err != nil {
			response.Unauthorized(c, "Недействительный токен")
			c.Abort()
			return
		}
		c.Set(KeyUserID, claims.Subject)
		c.Set(KeyEmail, claims.Email)
		c.Set(KeyRole, claims.Role)
		c.Next()
	}
}

// RequireRole gates a route on the role claim set by AuthJWT.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(KeyRole) != role {
			response.Forbidden(c, "Доступ запрещен")
			c.Abort()
			return
		}
		c.Next()
	}
}
