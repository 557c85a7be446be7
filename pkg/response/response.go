package response

import (
	"errors"
	"net/http"
	"time"

	"lottery-awards/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDKey is the gin context key holding the request ID.
const RequestIDKey = "request_id"

// SuccessResponse is the standard success envelope.
type SuccessResponse struct {
	Data      interface{} `json:"data"`
	RequestID string      `json:"request_id"`
	Timestamp string      `json:"timestamp"`
}

// ErrorResponse is the standard error envelope.
type ErrorResponse struct {
	ErrorCode string `json:"error_code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id"`
	Timestamp string `json:"timestamp"`
}

func OK(c *gin.Context, data interface{}) {
	success(c, http.StatusOK, data)
}

func Created(c *gin.Context, data interface{}) {
	success(c, http.StatusCreated, data)
}

func success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, SuccessResponse{
		Data:      data,
		RequestID: requestID(c),
		Timestamp: now(),
	})
}

// Error writes err as an error envelope. *apperror.AppError anywhere in the
// chain selects the status and code; anything else is a 500. Server errors are
// also attached to the gin context so the request logger can report the cause.
func Error(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) {
		appErr = apperror.Wrap("SYS_000", "Internal server error", http.StatusInternalServerError, err)
	}
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		_ = c.Error(err)
	}

	c.JSON(appErr.HTTPStatus, ErrorResponse{
		ErrorCode: appErr.Code,
		Message:   appErr.Message,
		RequestID: requestID(c),
		Timestamp: now(),
	})
}

func now() string { return time.Now().UTC().Format(time.RFC3339) }

// requestID returns the ID set by the RequestID middleware, or a fresh one.
func requestID(c *gin.Context) string {
	if id := c.GetString(RequestIDKey); id != "" {
		return id
	}
	return uuid.New().String()
}
