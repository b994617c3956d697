package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"teadiary/internal/transport/http/response"
)

// RateLimit is a global token bucket in front of the database.
func RateLimit(rps rate.Limit, burst int) gin.HandlerFunc {
	lim := rate.NewLimiter(rps, burst)
	return func(c *gin.Context) {
		if lim.Allow() {
			c.Next()
			return
		}
		c.AbortWithStatusJSON(http.StatusTooManyRequests, response.ErrorBody{
			Code:    "too_many_requests",
			Message: "Слишком много запросов",
		})
	}
}
