package dto

import "net/http"

// General error codes
const (
	ErrCodeUnknown  = "ERR_UNKNOWN"
	ErrCodeInternal = "ERR_INTERNAL"
)

// Input error codes
const (
	ErrCodeBadRequest   = "ERR_BAD_REQUEST"
	ErrCodeInvalidInput = "ERR_INVALID_INPUT"
	ErrCodeInvalidJSON  = "ERR_INVALID_JSON"
	ErrCodeValidation   = "ERR_VALIDATION"
)

// Authentication error codes
const (
	ErrCodeUnauthorized = "ERR_UNAUTHORIZED"
	ErrCodeForbidden    = "ERR_FORBIDDEN"
	ErrCodeTokenExpired = "ERR_TOKEN_EXPIRED"
	ErrCodeTokenInvalid = "ERR_TOKEN_INVALID"
)

// Resource error codes
const (
	ErrCodeNotFound      = "ERR_NOT_FOUND"
	ErrCodeAlreadyExists = "ERR_ALREADY_EXISTS"
	ErrCodeConflict      = "ERR_CONFLICT"
)

// Rate limiting error codes
const (
	ErrCodeRateLimited = "ERR_RATE_LIMITED"
)

// DomainErrorHTTPStatus maps domain error codes to HTTP status codes.
// Field validation failures and IMEI rejections are 400s, duplicate
// directory records are 409s, and invalid lifecycle transitions are
// 422s.
var DomainErrorHTTPStatus = map[string]int{
	// Shared errors
	"NOT_FOUND":            http.StatusNotFound,
	"ALREADY_EXISTS":       http.StatusConflict,
	"INVALID_INPUT":        http.StatusBadRequest,
	"UNAUTHORIZED":         http.StatusUnauthorized,
	"FORBIDDEN":            http.StatusForbidden,
	"CONCURRENCY_CONFLICT": http.StatusConflict,

	// Directory errors
	"MISSING_NAME":        http.StatusBadRequest,
	"MISSING_CITY":        http.StatusBadRequest,
	"MISSING_CONTACT":     http.StatusBadRequest,
	"SHORT_CONTACT":       http.StatusBadRequest,
	"DUPLICATE_NAME_CITY": http.StatusConflict,

	// IMEI errors
	"IMEI_INVALID_LENGTH": http.StatusBadRequest,
	"IMEI_INVALID_FORMAT": http.StatusBadRequest,
	"IMEI_DUPLICATE":      http.StatusBadRequest,
	"IMEI_COUNT_MISMATCH": http.StatusBadRequest,

	// Credit ledger errors
	"MISSING_COUNTERPARTY":      http.StatusBadRequest,
	"MISSING_PRODUCT":           http.StatusBadRequest,
	"INVALID_QUANTITY":          http.StatusBadRequest,
	"INVALID_AMOUNT":            http.StatusBadRequest,
	"INVALID_ENTRY_TYPE":        http.StatusBadRequest,
	"INVALID_STATUS_TRANSITION": http.StatusUnprocessableEntity,
	"ENTRY_ALREADY_PAID":        http.StatusUnprocessableEntity,

	// Identity errors
	"MISSING_EMAIL":       http.StatusBadRequest,
	"MISSING_PASSWORD":    http.StatusBadRequest,
	"INVALID_CREDENTIALS": http.StatusUnauthorized,
}

// ErrorCodeHTTPStatus maps transport-level error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeUnknown:  http.StatusInternalServerError,
	ErrCodeInternal: http.StatusInternalServerError,

	ErrCodeBadRequest:   http.StatusBadRequest,
	ErrCodeInvalidInput: http.StatusBadRequest,
	ErrCodeInvalidJSON:  http.StatusBadRequest,
	ErrCodeValidation:   http.StatusBadRequest,

	ErrCodeUnauthorized: http.StatusUnauthorized,
	ErrCodeForbidden:    http.StatusForbidden,
	ErrCodeTokenExpired: http.StatusUnauthorized,
	ErrCodeTokenInvalid: http.StatusUnauthorized,

	ErrCodeNotFound:      http.StatusNotFound,
	ErrCodeAlreadyExists: http.StatusConflict,
	ErrCodeConflict:      http.StatusConflict,

	ErrCodeRateLimited: http.StatusTooManyRequests,
}

// GetHTTPStatus returns the HTTP status code for an error code.
// Domain codes are checked first, then transport codes; unknown codes
// fall back to 500.
func GetHTTPStatus(code string) int {
	if status, ok := DomainErrorHTTPStatus[code]; ok {
		return status
	}
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
