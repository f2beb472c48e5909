package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationInvalidDate   ErrorCode = "VALIDATION_004"
	ValidationInvalidAmount ErrorCode = "VALIDATION_005"
)

// Expense error codes (EXPENSE_*)
const (
	ExpenseNotFound        ErrorCode = "EXPENSE_001"
	ExpenseInvalidID       ErrorCode = "EXPENSE_002"
	ExpenseUnknownUser     ErrorCode = "EXPENSE_003"
	ExpenseUnknownCategory ErrorCode = "EXPENSE_004"
)

// User error codes (USER_*)
const (
	UserNotFound  ErrorCode = "USER_001"
	UserInvalidID ErrorCode = "USER_002"
)

// Category error codes (CATEGORY_*)
const (
	CategoryNotFound  ErrorCode = "CATEGORY_001"
	CategoryInvalidID ErrorCode = "CATEGORY_002"
)

// Saved expense error codes (SAVED_*)
const (
	SavedExpenseNotFound  ErrorCode = "SAVED_001"
	SavedExpenseInvalidID ErrorCode = "SAVED_002"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_004"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationInvalidDate:   "Invalid date format, expected YYYY-MM-DD",
	ValidationInvalidAmount: "Amount must be a finite non-negative number",

	// Expense errors
	ExpenseNotFound:        "Expense not found",
	ExpenseInvalidID:       "Invalid expense ID format",
	ExpenseUnknownUser:     "Expense paidFor does not name an existing user",
	ExpenseUnknownCategory: "Expense category is not a known category",

	// User errors
	UserNotFound:  "User not found",
	UserInvalidID: "Invalid user ID format",

	// Category errors
	CategoryNotFound:  "Category not found",
	CategoryInvalidID: "Invalid category ID format",

	// Saved expense errors
	SavedExpenseNotFound:  "Saved expense not found",
	SavedExpenseInvalidID: "Invalid saved expense ID format",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
