package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Authentication error codes (AUTH_*)
const (
	AuthInvalidCredentials ErrorCode = "AUTH_001"
	AuthMissingToken       ErrorCode = "AUTH_002"
	AuthExpiredToken       ErrorCode = "AUTH_003"
	AuthInvalidToken       ErrorCode = "AUTH_004"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral         ErrorCode = "VALIDATION_001"
	ValidationRequiredField   ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat   ErrorCode = "VALIDATION_003"
	ValidationInvalidEmail    ErrorCode = "VALIDATION_004"
	ValidationInvalidCategory ErrorCode = "VALIDATION_005"
	ValidationInvalidDate     ErrorCode = "VALIDATION_006"
	ValidationNegativeAmount  ErrorCode = "VALIDATION_007"
)

// User error codes (USER_*)
const (
	UserNotFound       ErrorCode = "USER_001"
	UserDuplicateEmail ErrorCode = "USER_002"
)

// Expense error codes (EXPENSE_*)
const (
	ExpenseNotFound ErrorCode = "EXPENSE_001"
)

// Budget error codes (BUDGET_*)
const (
	BudgetNotFound ErrorCode = "BUDGET_001"
)

// Resource error codes (RESOURCE_*), for 404s that are not tied to a
// specific record type, such as unknown routes.
const (
	ResourceNotFound ErrorCode = "RESOURCE_001"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemStorageError       ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemConfigurationError ErrorCode = "SYSTEM_004"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_005"
)

// errorMessages maps error codes to their default human-readable messages.
// Not-found messages are identical whether the record is absent or owned by
// another user, so existence is never leaked.
var errorMessages = map[ErrorCode]string{
	AuthInvalidCredentials: "Invalid email or password",
	AuthMissingToken:       "Authentication required",
	AuthExpiredToken:       "Invalid or expired token",
	AuthInvalidToken:       "Invalid or expired token",

	ValidationGeneral:         "Validation failed",
	ValidationRequiredField:   "Required field is missing",
	ValidationInvalidFormat:   "Invalid field format",
	ValidationInvalidEmail:    "Invalid email address",
	ValidationInvalidCategory: "Category must be one of the supported categories",
	ValidationInvalidDate:     "Invalid date format",
	ValidationNegativeAmount:  "Amount must be zero or positive",

	UserNotFound:       "User not found",
	UserDuplicateEmail: "Email already in use",

	ExpenseNotFound:  "Expense not found",
	BudgetNotFound:   "Budget not found",
	ResourceNotFound: "Resource not found",

	SystemInternalError:      "An unexpected error occurred",
	SystemStorageError:       "Storage backend error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemConfigurationError: "System configuration error",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
}

// GetErrorMessage returns the default message for a given error code.
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a registered code.
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
