package apperrors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
)

// ErrorCode identifies an error class for API clients.
type ErrorCode string

// AppError is the application error carried from services up to handlers.
type AppError struct {
	Code     ErrorCode   `json:"code"`
	Message  string      `json:"message"`
	Details  interface{} `json:"details,omitempty"`
	Err      error       `json:"-"`
	HTTPCode int         `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		HTTPCode: httpCode,
	}
}

func Wrap(err error, code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		Err:      err,
		HTTPCode: httpCode,
	}
}

// WithDetails returns a copy with attached detail payload. The predeclared
// errors are shared values, so the receiver is never mutated.
func (e *AppError) WithDetails(details interface{}) *AppError {
	clone := *e
	clone.Details = details
	return &clone
}

// MarshalJSON hides the wrapped error and HTTP code from responses.
func (e *AppError) MarshalJSON() ([]byte, error) {
	type alias struct {
		Code    ErrorCode   `json:"code"`
		Message string      `json:"message"`
		Details interface{} `json:"details,omitempty"`
	}
	return json.Marshal(&alias{
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
	})
}

// Is wraps the standard errors.Is.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As wraps the standard errors.As.
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// Predeclared errors.
var (
	// Authentication
	ErrInvalidCredentials = New(CodeInvalidCredentials, "Unauthorized: Invalid credentials.", http.StatusUnauthorized)
	ErrUnauthorized       = New(CodeUnauthorized, "Authentication required", http.StatusUnauthorized)
	ErrForbidden          = New(CodeForbidden, "Access denied", http.StatusForbidden)
	ErrInvalidToken       = New(CodeInvalidToken, "Invalid or expired token", http.StatusUnauthorized)

	// Account and API key state
	ErrAccountNotActive = New(CodeAccountNotActive, "Your account is not active. Please contact support.", http.StatusForbidden)
	ErrApiKeyInactive   = New(CodeApiKeyInactive, "The API key associated with this account is inactive or invalid.", http.StatusForbidden)

	// Quota
	ErrQuotaExceeded   = New(CodeQuotaExceeded, "Daily request quota exceeded.", http.StatusTooManyRequests)
	ErrTooManyRequests = New(CodeTooManyRequests, "Too many requests. Please retry later.", http.StatusTooManyRequests)

	// Users
	ErrUserNotFound       = New(CodeUserNotFound, "User not found.", http.StatusNotFound)
	ErrEmailAlreadyExists = New(CodeEmailAlreadyExists, "Email already exists", http.StatusUnprocessableEntity)
	ErrWeakPassword       = New(CodeWeakPassword, "Password does not meet the strength policy", http.StatusUnprocessableEntity)

	// Password reset. The three distinct messages mirror the original reset
	// flow verbatim; see DESIGN.md before unifying them.
	ErrResetTokenInvalid = New(CodeResetTokenInvalid, "Invalid token or email.", http.StatusUnprocessableEntity)
	ErrResetTokenExpired = New(CodeResetTokenExpired, "Token has expired.", http.StatusUnprocessableEntity)
	ErrResetUserMissing  = New(CodeUserNotFound, "User not found.", http.StatusUnprocessableEntity)

	// Contacts
	ErrContactNotFound      = New(CodeContactNotFound, "Contact not found.", http.StatusNotFound)
	ErrAttributeKeyConflict = New(CodeAttributeKeyConflict, "This attribute key already exists for this contact.", http.StatusConflict)

	// Validation
	ErrValidationFailed = New(CodeValidationFailed, "Validation failed", http.StatusUnprocessableEntity)
)

// ValidationError builds a 422 with per-field details.
func ValidationError(details interface{}) *AppError {
	return ErrValidationFailed.WithDetails(details)
}

// InternalError wraps an unexpected error into a generic 500. The wrapped
// error is logged server-side and never serialized to clients.
func InternalError(err error) *AppError {
	return Wrap(err, CodeInternalError, "Internal server error", http.StatusInternalServerError)
}

func NewNotFoundError(message string) *AppError {
	return New(CodeNotFound, message, http.StatusNotFound)
}

func NewForbiddenError(message string) *AppError {
	return New(CodeForbidden, message, http.StatusForbidden)
}

func NewBadRequestError(message string) *AppError {
	return New(CodeValidationFailed, message, http.StatusBadRequest)
}
