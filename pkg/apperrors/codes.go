package apperrors

// ErrorCode is the machine-readable kind of an AppError.
type ErrorCode string

const (
	// System
	CodeInternalError ErrorCode = "INTERNAL_ERROR"

	// Business rules
	CodeNotFound         ErrorCode = "NOT_FOUND"
	CodeConflict         ErrorCode = "CONFLICT"
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	CodeTooManyRequests  ErrorCode = "TOO_MANY_REQUESTS"
)

// Domains used in AppError.Domain.
const (
	DomainUser        = "user"
	DomainApplication = "application"
	DomainValidation  = "validation"
	DomainRequest     = "request"
	DomainSystem      = "system"
)
