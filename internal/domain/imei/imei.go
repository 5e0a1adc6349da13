// Package imei validates 15-digit device serial numbers used as the
// uniqueness key for physical handset units.
package imei

import (
	"fmt"
	"strings"

	"github.com/udhaar/backend/internal/domain/shared"
)

// Validation error codes
var (
	ErrInvalidLength = shared.NewDomainError("IMEI_INVALID_LENGTH", "IMEI must be exactly 15 digits")
	ErrInvalidFormat = shared.NewDomainError("IMEI_INVALID_FORMAT", "IMEI must contain only digits")
	ErrDuplicate     = shared.NewDomainError("IMEI_DUPLICATE", "IMEI already exists")
)

// Length is the required number of digits in an IMEI
const Length = 15

// Set is a collection of known IMEIs used for duplicate checks
type Set map[string]struct{}

// NewSet builds a set from the given values, trimming each
func NewSet(values ...string) Set {
	s := make(Set, len(values))
	for _, v := range values {
		s.Add(v)
	}
	return s
}

// Add inserts a trimmed value into the set
func (s Set) Add(value string) {
	s[strings.TrimSpace(value)] = struct{}{}
}

// Has reports whether the trimmed value is in the set
func (s Set) Has(value string) bool {
	_, ok := s[strings.TrimSpace(value)]
	return ok
}

// Validate checks a single candidate against the format rules and the
// existing set. Checks run in fixed order so the caller always gets the
// most specific error first: length, then format, then duplicate.
func Validate(candidate string, existing Set) error {
	trimmed := strings.TrimSpace(candidate)

	if len(trimmed) != Length {
		return ErrInvalidLength
	}

	for _, r := range trimmed {
		if r < '0' || r > '9' {
			return ErrInvalidFormat
		}
	}

	if existing.Has(trimmed) {
		return ErrDuplicate
	}

	return nil
}

// LineError reports a single failed line within a batch
type LineError struct {
	Line  int                `json:"line"`
	Value string             `json:"value"`
	Err   shared.DomainError `json:"error"`
}

// BatchError aggregates every failed line of a batch validation
type BatchError struct {
	Errors []LineError
}

// Error implements the error interface
func (e *BatchError) Error() string {
	return fmt.Sprintf("IMEI batch validation failed: %d invalid line(s)", len(e.Errors))
}

// ParseBlock splits a newline-delimited block into trimmed, non-empty lines
func ParseBlock(block string) []string {
	var out []string
	for _, line := range strings.Split(block, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// ValidateBatch validates a newline-delimited block of candidates against
// the existing set plus every candidate accepted earlier in the same
// batch, so intra-batch duplicates are rejected too. The batch is
// all-or-nothing: any failure returns a *BatchError listing every bad
// line and no candidates are accepted.
func ValidateBatch(block string, existing Set) ([]string, error) {
	lines := ParseBlock(block)
	return ValidateAll(lines, existing)
}

// ValidateAll validates candidates that have already been split and
// trimmed, with the same all-or-nothing semantics as ValidateBatch.
func ValidateAll(candidates []string, existing Set) ([]string, error) {
	seen := make(Set, len(existing)+len(candidates))
	for v := range existing {
		seen[v] = struct{}{}
	}

	accepted := make([]string, 0, len(candidates))
	var lineErrs []LineError

	for i, candidate := range candidates {
		trimmed := strings.TrimSpace(candidate)
		if err := Validate(trimmed, seen); err != nil {
			domainErr, _ := shared.IsDomainError(err)
			lineErrs = append(lineErrs, LineError{
				Line:  i + 1,
				Value: trimmed,
				Err:   domainErr,
			})
			continue
		}
		seen.Add(trimmed)
		accepted = append(accepted, trimmed)
	}

	if len(lineErrs) > 0 {
		return nil, &BatchError{Errors: lineErrs}
	}
	return accepted, nil
}
