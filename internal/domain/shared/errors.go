package shared

import "fmt"

// DomainError represents a domain-specific error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e DomainError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) DomainError {
	return DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrNotFound            = NewDomainError("NOT_FOUND", "entity not found")
	ErrAlreadyExists       = NewDomainError("ALREADY_EXISTS", "entity already exists")
	ErrInvalidInput        = NewDomainError("INVALID_INPUT", "invalid input provided")
	ErrUnauthorized        = NewDomainError("UNAUTHORIZED", "unauthorized access")
	ErrForbidden           = NewDomainError("FORBIDDEN", "forbidden operation")
	ErrConcurrencyConflict = NewDomainError("CONCURRENCY_CONFLICT", "concurrent modification detected")
)

// IsDomainError checks if an error is a DomainError
func IsDomainError(err error) (DomainError, bool) {
	domainErr, ok := err.(DomainError)
	return domainErr, ok
}
