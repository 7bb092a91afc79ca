package response

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Stable machine-readable error codes. Clients must branch on these (or
// the HTTP status), never on message text.
const (
	CodeValidation          = "VALIDATION"
	CodeUsernameTaken       = "USERNAME_TAKEN"
	CodeEmailTaken          = "EMAIL_TAKEN"
	CodeInvalidCredentials  = "INVALID_CREDENTIALS"
	CodeInvalidPassword     = "INVALID_PASSWORD"
	CodeUsernameCooldown    = "USERNAME_COOLDOWN"
	CodeAvatarInvalid       = "AVATAR_INVALID"
	CodeAvatarTooLarge      = "AVATAR_TOO_LARGE"
	CodeUnauthorized        = "UNAUTHORIZED"
	CodeForbidden           = "FORBIDDEN"
	CodeUserNotFound        = "USER_NOT_FOUND"
	CodeProductNotFound     = "PRODUCT_NOT_FOUND"
	CodeOrderNotFound       = "ORDER_NOT_FOUND"
	CodeInvalidStatusChange = "INVALID_STATUS_CHANGE"
	CodeInvalidQuantity     = "INVALID_QUANTITY"
	CodeResetTokenInvalid   = "RESET_TOKEN_INVALID"
	CodeRateLimited         = "RATE_LIMITED"
	CodeInternal            = "INTERNAL"
)

// APIResponse is the JSON envelope for every endpoint.
type APIResponse[T any] struct {
	Status    int         `json:"status"`
	Timestamp time.Time   `json:"timestamp"`
	RequestID string      `json:"request_id"`
	Success   bool        `json:"success"`
	Message   string      `json:"message"`
	Code      string      `json:"code,omitempty"`
	Data      T           `json:"data,omitempty"`
	Meta      interface{} `json:"meta,omitempty"`
	Error     interface{} `json:"error,omitempty"`
}

// Success writes a success envelope with the given status.
func Success[T any](ctx *gin.Context, status int, data T, message string, meta interface{}) {
	if status == 0 {
		status = http.StatusOK
	}
	ctx.JSON(status, APIResponse[T]{
		Status:    status,
		Timestamp: time.Now(),
		RequestID: ctx.GetString("request_id"),
		Success:   true,
		Message:   message,
		Data:      data,
		Meta:      meta,
	})
}

// Error writes an error envelope with the given status and stable code.
func Error(ctx *gin.Context, status int, code, message string, details interface{}) {
	ctx.JSON(status, errBody(ctx, status, code, message, details))
}

// AbortError writes an error envelope and aborts the handler chain.
func AbortError(ctx *gin.Context, status int, code, message string, details interface{}) {
	ctx.AbortWithStatusJSON(status, errBody(ctx, status, code, message, details))
}

func errBody(ctx *gin.Context, status int, code, message string, details interface{}) APIResponse[any] {
	if status == 0 {
		status = http.StatusBadRequest
	}
	return APIResponse[any]{
		Status:    status,
		Timestamp: time.Now(),
		RequestID: ctx.GetString("request_id"),
		Success:   false,
		Message:   message,
		Code:      code,
		Error:     details,
	}
}
