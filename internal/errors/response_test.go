package errors

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetHTTPStatus(t *testing.T) {
	tests := []struct {
		code     ErrorCode
		expected int
	}{
		{ValidationGeneral, http.StatusBadRequest},
		{UserDuplicateEmail, http.StatusBadRequest},
		{AuthInvalidCredentials, http.StatusUnauthorized},
		{AuthMissingToken, http.StatusUnauthorized},
		{AuthExpiredToken, http.StatusForbidden},
		{AuthInvalidToken, http.StatusForbidden},
		{ExpenseNotFound, http.StatusNotFound},
		{BudgetNotFound, http.StatusNotFound},
		{UserNotFound, http.StatusNotFound},
		{ResourceNotFound, http.StatusNotFound},
		{SystemRateLimitExceeded, http.StatusTooManyRequests},
		{SystemServiceUnavailable, http.StatusServiceUnavailable},
		{SystemInternalError, http.StatusInternalServerError},
		{ErrorCode("UNKNOWN_999"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, GetHTTPStatus(tt.code), "code %s", tt.code)
	}
}

func TestIsValidErrorCode(t *testing.T) {
	assert.True(t, IsValidErrorCode(AuthInvalidCredentials))
	assert.True(t, IsValidErrorCode(SystemRateLimitExceeded))
	assert.False(t, IsValidErrorCode(ErrorCode("NOPE_001")))
}

func TestInvalidAndExpiredTokenMessagesMatch(t *testing.T) {
	// A client must not be able to tell a bad signature from expiry by the
	// message alone.
	assert.Equal(t, GetErrorMessage(AuthExpiredToken), GetErrorMessage(AuthInvalidToken))
}

func TestNewErrorResponse(t *testing.T) {
	resp := NewErrorResponse(ExpenseNotFound, "trace-1")
	assert.Equal(t, "EXPENSE_001", resp.Error.Code)
	assert.Equal(t, "Expense not found", resp.Error.Message)
	assert.Equal(t, "trace-1", resp.Error.TraceID)
	assert.Equal(t, http.StatusNotFound, resp.GetHTTPStatus())

	custom := NewErrorResponse(ValidationGeneral, "trace-2",
		WithMessage("custom"), WithDetails("field a", "field b"))
	assert.Equal(t, "custom", custom.Error.Message)
	assert.Equal(t, []string{"field a", "field b"}, custom.Error.Details)
}

func TestNewValidationError(t *testing.T) {
	resp := NewValidationError(map[string]string{"email": "is required"}, "trace-3")
	assert.Equal(t, "VALIDATION_001", resp.Error.Code)
	assert.Len(t, resp.Error.Details, 1)
	assert.Equal(t, "email: is required", resp.Error.Details[0])
	assert.True(t, resp.IsClientError())
	assert.False(t, resp.IsServerError())
}

func TestWrapSystemErrorHidesDetail(t *testing.T) {
	internal := assert.AnError
	resp, err := WrapSystemError(internal, "trace-4")
	assert.Equal(t, internal, err)
	assert.Equal(t, "SYSTEM_001", resp.Error.Code)
	assert.NotContains(t, resp.Error.Message, internal.Error())
}
