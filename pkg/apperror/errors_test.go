package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appErr   *AppError
		expected string
	}{
		{
			name:     "without wrapped error",
			appErr:   New("AUTH_001", "Invalid credentials", http.StatusUnauthorized),
			expected: "[AUTH_001] Invalid credentials",
		},
		{
			name:     "with wrapped error",
			appErr:   Wrap("SYS_001", "DB error", http.StatusInternalServerError, fmt.Errorf("connection refused")),
			expected: "[SYS_001] DB error: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.appErr.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	inner := fmt.Errorf("inner error")
	appErr := Wrap("SYS_001", "wrapped", http.StatusInternalServerError, inner)

	assert.True(t, errors.Is(appErr, inner))
}

func TestAppError_IsNilUnwrap(t *testing.T) {
	appErr := New("CMP_001", "test", http.StatusBadRequest)
	assert.Nil(t, appErr.Unwrap())
}

func TestAuthErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		code       string
		httpStatus int
	}{
		{"InvalidCredentials", ErrInvalidCredentials(), "AUTH_001", 401},
		{"AccountInactive", ErrAccountInactive(), "AUTH_002", 403},
		{"InvalidToken", ErrInvalidToken(), "AUTH_003", 401},
		{"InvalidOrExpiredToken", ErrInvalidOrExpiredToken(), "AUTH_004", 401},
		{"Unauthorized", ErrUnauthorized(), "AUTH_005", 403},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.httpStatus, tt.err.HTTPStatus)
		})
	}
}

func TestUnauthorizedIsGeneric(t *testing.T) {
	// The message must not leak which check failed.
	err := ErrUnauthorized()
	assert.Equal(t, "Unauthorized", err.Message)
}

func TestComplianceErrors(t *testing.T) {
	err := ErrMissingField("tax_id")
	assert.Equal(t, "CMP_001", err.Code)
	assert.Contains(t, err.Message, "tax_id")
	assert.Equal(t, 400, err.HTTPStatus)
}

func TestRiskGateError(t *testing.T) {
	err := ErrRiskGate("program frozen due to risk score")
	assert.Equal(t, "RISK_001", err.Code)
	assert.Equal(t, 403, err.HTTPStatus)
}

func TestLedgerErrors(t *testing.T) {
	inner := fmt.Errorf("pg: connection closed")
	writeErr := ErrLedgerWrite(inner)
	assert.Equal(t, "LEDGER_001", writeErr.Code)
	assert.Equal(t, 500, writeErr.HTTPStatus)
	assert.True(t, errors.Is(writeErr, inner))

	actionErr := ErrUnknownAuditAction("LOGIN_SUCESS")
	assert.Equal(t, "LEDGER_002", actionErr.Code)
	assert.Contains(t, actionErr.Message, "LOGIN_SUCESS")
}

func TestNotFoundEntity(t *testing.T) {
	err := ErrNotFound("Identity")
	assert.Contains(t, err.Message, "Identity")
	assert.Equal(t, "RES_001", err.Code)
	assert.Equal(t, 404, err.HTTPStatus)
}

func TestSystemErrors(t *testing.T) {
	inner := fmt.Errorf("pg: connection closed")
	dbErr := ErrDatabaseError(inner)
	assert.Equal(t, "SYS_001", dbErr.Code)
	assert.Equal(t, 500, dbErr.HTTPStatus)
	assert.True(t, errors.Is(dbErr, inner))

	encErr := ErrEncryptionFailure(inner)
	assert.Equal(t, "SYS_002", encErr.Code)
	assert.Equal(t, 500, encErr.HTTPStatus)
}
