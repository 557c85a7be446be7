package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // internal cause, never sent to clients
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Draws (DRAW) ----

func ErrDrawNotFound() *AppError {
	return New("DRAW_001", "Draw not found", http.StatusNotFound)
}

func ErrInvalidDraw(err error) *AppError {
	return Wrap("DRAW_002", "Invalid draw: "+err.Error(), http.StatusBadRequest, err)
}

func ErrTierCapExceeded(err error) *AppError {
	return Wrap("DRAW_003", "Winner cap exceeded: "+err.Error(), http.StatusUnprocessableEntity, err)
}

// ---- Tickets & payouts (TKT, CALC) ----

func ErrInvalidTicket(err error) *AppError {
	return Wrap("TKT_001", "Invalid ticket: "+err.Error(), http.StatusBadRequest, err)
}

func ErrPayoutOverflow(err error) *AppError {
	return Wrap("CALC_001", "Payout exceeds representable amount", http.StatusUnprocessableEntity, err)
}

// ---- Authentication (AUTH) ----

func ErrInvalidToken() *AppError {
	return New("AUTH_001", "Invalid or expired operator token", http.StatusUnauthorized)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- Request & System (REQ, SYS) ----

// Validation returns a REQ_001 request validation error.
func Validation(message string) *AppError {
	return New("REQ_001", message, http.StatusBadRequest)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}
