// Package handler maps HTTP verbs and paths onto validate → persist → respond
// operations. Handlers own no business state; they talk to the domain
// repositories and translate outcomes into statuses and the error envelope.
package handler

import (
	"github.com/gin-gonic/gin"

	"teadiary/internal/transport/http/response"
	"teadiary/internal/validation"
)

// bindJSON decodes and validates the payload. Field-level violations are
// aggregated into a single 400; the operation never partially applies.
func bindJSON(c *gin.Context, in any) bool {
	if err := c.ShouldBindJSON(in); err != nil {
		if m := validation.Messages(err); m != nil {
			response.Validation(c, m)
		} else {
			response.BadRequest(c, "Некорректное тело запроса")
		}
		return false
	}
	return true
}
