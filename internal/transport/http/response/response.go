package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error codes of the API envelope.
const (
	CodeBadRequest       = "bad_request"
	CodeValidationFailed = "validation_failed"
	CodeUnauthorized     = "unauthorized"
	CodeForbidden        = "forbidden"
	CodeNotFound         = "not_found"
	CodeConflict         = "conflict"
	CodeInternal         = "internal_error"
)

// ErrorBody is the uniform error envelope: {code, message, errors?}.
type ErrorBody struct {
	Code    string              `json:"code"`
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, ErrorBody{Code: CodeBadRequest, Message: msg})
}

// Validation carries the aggregated field → messages map of a rejected payload.
func Validation(c *gin.Context, fieldErrors map[string][]string) {
	c.JSON(http.StatusBadRequest, ErrorBody{
		Code:    CodeValidationFailed,
		Message: "Ошибка валидации",
		Errors:  fieldErrors,
	})
}

func Unauthorized(c *gin.Context, msg string) {
	c.JSON(http.StatusUnauthorized, ErrorBody{Code: CodeUnauthorized, Message: msg})
}

func Forbidden(c *gin.Context, msg string) {
	c.JSON(http.StatusForbidden, ErrorBody{Code: CodeForbidden, Message: msg})
}

func NotFound(c *gin.Context, msg string) {
	c.JSON(http.StatusNotFound, ErrorBody{Code: CodeNotFound, Message: msg})
}

func Conflict(c *gin.Context, msg string) {
	c.JSON(http.StatusConflict, ErrorBody{Code: CodeConflict, Message: msg})
}

// Internal never leaks fault detail to the client; callers log it server-side.
func Internal(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, ErrorBody{
		Code:    CodeInternal,
		Message: "Внутренняя ошибка сервера.",
	})
}
