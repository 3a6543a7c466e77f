package apperrors

// Error codes grouped by domain.
const (
	// Authentication and authorization
	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	CodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	CodeForbidden          ErrorCode = "FORBIDDEN"
	CodeInvalidToken       ErrorCode = "INVALID_TOKEN"
	CodeAccountNotActive   ErrorCode = "ACCOUNT_NOT_ACTIVE"
	CodeApiKeyInactive     ErrorCode = "API_KEY_INACTIVE"

	// Quota
	CodeQuotaExceeded   ErrorCode = "QUOTA_EXCEEDED"
	CodeTooManyRequests ErrorCode = "TOO_MANY_REQUESTS"

	// Validation
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	CodeWeakPassword     ErrorCode = "WEAK_PASSWORD"

	// Resources
	CodeUserNotFound    ErrorCode = "USER_NOT_FOUND"
	CodeContactNotFound ErrorCode = "CONTACT_NOT_FOUND"
	CodeNotFound        ErrorCode = "NOT_FOUND"

	// Business logic
	CodeEmailAlreadyExists   ErrorCode = "EMAIL_ALREADY_EXISTS"
	CodeAttributeKeyConflict ErrorCode = "ATTRIBUTE_KEY_CONFLICT"
	CodeResetTokenInvalid    ErrorCode = "RESET_TOKEN_INVALID"
	CodeResetTokenExpired    ErrorCode = "RESET_TOKEN_EXPIRED"

	// System
	CodeInternalError ErrorCode = "INTERNAL_ERROR"
)
