package apperrors

import (
	"fmt"
	"net/http"
)

// NotFound builds a 404 for a missing record of domain with the given id.
func NotFound(domain string, id uint) *AppError {
	return New(CodeNotFound, domain, fmt.Sprintf("%s with ID %d not found", resourceName(domain), id), http.StatusNotFound)
}

// Conflict builds a 409 for a violated uniqueness rule.
func Conflict(domain, message string) *AppError {
	return New(CodeConflict, domain, message, http.StatusConflict)
}

// ErrTooManyRequests is returned by the rate limiter.
var ErrTooManyRequests = New(
	CodeTooManyRequests,
	DomainRequest,
	"Too many requests",
	http.StatusTooManyRequests,
)

func resourceName(domain string) string {
	switch domain {
	case DomainUser:
		return "User"
	case DomainApplication:
		return "Application"
	default:
		return "Resource"
	}
}
