package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/semaphore"

	"teadiary/internal/transport/http/response"
)

// ConcurrencyLimit caps the number of requests in flight at once.
func ConcurrencyLimit(max int64) gin.HandlerFunc {
	sem := semaphore.NewWeighted(max)
	return func(c *gin.Context) {
		if err := sem.Acquire(c, 1); err != nil {
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, response.ErrorBody{
				Code:    "server_busy",
				Message: "Сервер перегружен",
			})
			return
		}
		defer sem.Release(1)
		c.Next()
	}
}
