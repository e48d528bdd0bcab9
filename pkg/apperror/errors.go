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
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
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

// ---- Authentication (AUTH) ----

func ErrInvalidCredentials() *AppError {
	return New("AUTH_001", "Invalid credentials", http.StatusUnauthorized)
}

func ErrAccountInactive() *AppError {
	return New("AUTH_002", "Account is not active", http.StatusForbidden)
}

// ErrInvalidToken covers step-up (TOTP) verification failures.
func ErrInvalidToken() *AppError {
	return New("AUTH_003", "Invalid verification token", http.StatusUnauthorized)
}

func ErrInvalidOrExpiredToken() *AppError {
	return New("AUTH_004", "Invalid or expired reset token", http.StatusUnauthorized)
}

// ErrUnauthorized is deliberately generic: it does not reveal whether the
// role check, the step-up check, or the account status check failed.
func ErrUnauthorized() *AppError {
	return New("AUTH_005", "Unauthorized", http.StatusForbidden)
}

// ---- Resources (RES) ----

func ErrNotFound(entity string) *AppError {
	return New("RES_001", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

// ---- Compliance (CMP) ----

func Validation(message string) *AppError {
	return New("CMP_001", message, http.StatusBadRequest)
}

func ErrMissingField(field string) *AppError {
	return New("CMP_001", fmt.Sprintf("missing required field: %s", field), http.StatusBadRequest)
}

// ---- Risk gates (RISK) ----

func ErrRiskGate(reason string) *AppError {
	return New("RISK_001", reason, http.StatusForbidden)
}

// ---- Audit ledger (LEDGER) ----

// ErrLedgerWrite reports an audit durability failure. It is always surfaced
// to the caller, even when the triggering operation already succeeded.
func ErrLedgerWrite(err error) *AppError {
	return Wrap("LEDGER_001", "Audit ledger write failed", http.StatusInternalServerError, err)
}

func ErrUnknownAuditAction(action string) *AppError {
	return New("LEDGER_002", fmt.Sprintf("unknown audit action: %s", action), http.StatusBadRequest)
}

// ---- Rate limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Too many requests", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

func ErrDatabaseError(err error) *AppError {
	return Wrap("SYS_001", "Internal database error", http.StatusInternalServerError, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

func ErrEncryptionFailure(err error) *AppError {
	return Wrap("SYS_002", "Encryption service failure", http.StatusInternalServerError, err)
}
