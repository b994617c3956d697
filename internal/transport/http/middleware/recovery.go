package middleware

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"teadiary/internal/transport/http/response"
)

// Recovery turns panics into the generic 500 envelope. The fault detail stays
// in the server log only.
func Recovery(l *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				l.Error("panic recovered",
					zap.Any("panic", rec),
					zap.String("path", c.Request.URL.Path),
					zap.Stack("stack"),
				)
				if !c.Writer.Written() {
					response.Internal(c)
				}
				c.Abort()
			}
		}()
		c.Next()
	}
}
