package apperrors

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// AppError is a domain error carrying a stable machine-readable code and the
// HTTP status it translates to. Handlers unwrap it into the response envelope.
type AppError struct {
	Code    string
	Status  int
	Message string
	Details map[string]interface{}
	cause   error
}

func (e *AppError) Error() string { return e.Message }

func (e *AppError) Unwrap() error { return e.cause }

func New(code string, status int, message string) *AppError {
	return &AppError{Code: code, Status: status, Message: message}
}

// WithDetails attaches field-level detail to a validation error.
func (e *AppError) WithDetails(details map[string]interface{}) *AppError {
	e.Details = details
	return e
}

// Not-found family. Ownership misses are reported the same way as missing
// records: lookups are always scoped to id+owner. UserProfileNotFound and
// CurrencyNotFound complete the taxonomy for clients that key on codes; the
// current lookups surface USER_NOT_FOUND and never resolve currencies by
// code, so neither is raised today.

func UserNotFound(id string) *AppError {
	return New("USER_NOT_FOUND", fiber.StatusNotFound,
		fmt.Sprintf("User not found with id: %s", id))
}

func UserProfileNotFound(id string) *AppError {
	return New("USER_PROFILE_NOT_FOUND", fiber.StatusNotFound,
		fmt.Sprintf("User profile not found with id: %s", id))
}

func CategoryNotFound(id string) *AppError {
	return New("CATEGORY_NOT_FOUND", fiber.StatusNotFound,
		fmt.Sprintf("Category not found with id: %s", id))
}

func TransactionNotFound(id string) *AppError {
	return New("TRANSACTION_NOT_FOUND", fiber.StatusNotFound,
		fmt.Sprintf("Transaction not found with id: %s", id))
}

func CurrencyNotFound(code string) *AppError {
	return New("CURRENCY_NOT_FOUND", fiber.StatusNotFound,
		fmt.Sprintf("Currency not found with code: %s", code))
}

// Validation family.

func Validation(message string) *AppError {
	return New("VALIDATION_ERROR", fiber.StatusBadRequest, message)
}

func CategoryDuplicateName(name string) *AppError {
	return New("CATEGORY_VALIDATION_ERROR", fiber.StatusBadRequest,
		fmt.Sprintf("Category with name '%s' already exists", name))
}

func CategoryInvalidCharacters() *AppError {
	return New("CATEGORY_VALIDATION_ERROR", fiber.StatusBadRequest,
		"Category name must contain only alphanumeric characters and spaces")
}

func CategoryNameTooLong() *AppError {
	return New("CATEGORY_VALIDATION_ERROR", fiber.StatusBadRequest,
		"Category name must not exceed 100 characters")
}

func TransactionValidation(message string) *AppError {
	return New("TRANSACTION_VALIDATION_ERROR", fiber.StatusBadRequest, message)
}

// Access family. Reserved for ownership checks performed after an unscoped
// load, for example an admin surface reading across users. Every current
// lookup is id+owner scoped and fails as not-found instead, so these codes
// exist for the API contract rather than any present call site.

func CategoryAccessDenied(id string) *AppError {
	return New("CATEGORY_ACCESS_DENIED", fiber.StatusForbidden,
		fmt.Sprintf("Access denied to category with id: %s", id))
}

func TransactionAccessDenied(id string) *AppError {
	return New("TRANSACTION_ACCESS_DENIED", fiber.StatusForbidden,
		fmt.Sprintf("Access denied to transaction with id: %s", id))
}

// Business-rule family. UserAlreadyExists is the conflict code for a
// registration surface with unique-credential races; both current sign-in
// flows are login-or-create and resolve the existing user instead.

func UserAlreadyExists(detail string) *AppError {
	return New("USER_ALREADY_EXISTS", fiber.StatusConflict,
		fmt.Sprintf("User already exists: %s", detail))
}

func CurrencyEditNotAllowed() *AppError {
	return New("CURRENCY_EDIT_NOT_ALLOWED", fiber.StatusBadRequest,
		"Currency cannot be changed once set")
}

// DashboardData wraps any failure inside summary composition; no partial
// summary is ever returned.
func DashboardData(cause error) *AppError {
	return &AppError{
		Code:    "DASHBOARD_DATA_ERROR",
		Status:  fiber.StatusInternalServerError,
		Message: fmt.Sprintf("Failed to retrieve dashboard summary: %v", cause),
		cause:   cause,
	}
}

func Internal(cause error) *AppError {
	return &AppError{
		Code:    "INTERNAL_SERVER_ERROR",
		Status:  fiber.StatusInternalServerError,
		Message: "An unexpected error occurred",
		cause:   cause,
	}
}
