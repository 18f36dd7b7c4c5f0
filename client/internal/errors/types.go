// Package errors normalizes transport failures for the client SDK.
// The category is a hint for callers deciding whether a request is worth
// issuing again; the SDK itself never retries.
package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"

	"github.com/herbiel/QuantDinger/client/internal/types"
)

// ErrorCategory tells callers whether a failure is transient.
type ErrorCategory int

const (
	// Recoverable errors are transient.
	// Examples: 500 Internal Server Error, network timeouts, connection failures.
	Recoverable ErrorCategory = iota

	// Irrecoverable errors will fail again unchanged.
	// Examples: 401 Unauthorized, 403 Forbidden, 400 Bad Request, backend code 0.
	Irrecoverable
)

// String returns a human-readable representation of the error category.
func (c ErrorCategory) String() string {
	switch c {
	case Recoverable:
		return "Recoverable"
	case Irrecoverable:
		return "Irrecoverable"
	default:
		return fmt.Sprintf("Unknown(%d)", int(c))
	}
}

// ClassifiedError is the normalized error produced by the HTTP transport.
type ClassifiedError struct {
	Category   ErrorCategory
	StatusCode int    // HTTP status code (0 for network errors)
	Code       int    // backend envelope code, when one was decoded
	Message    string // backend envelope msg, when one was decoded
	Body       string // raw response body for debugging
	Underlying error
}

// Error implements the error interface.
func (e *ClassifiedError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("[%s] HTTP %d: %v", e.Category, e.StatusCode, e.Underlying)
	}
	return fmt.Sprintf("[%s] %v", e.Category, e.Underlying)
}

// Unwrap returns the underlying error for error chain compatibility.
func (e *ClassifiedError) Unwrap() error {
	return e.Underlying
}

// Is maps well-known HTTP statuses onto the shared sentinel errors.
func (e *ClassifiedError) Is(target error) bool {
	switch target {
	case types.ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	case types.ErrUnauthorized:
		return e.StatusCode == http.StatusUnauthorized
	case types.ErrForbidden:
		return e.StatusCode == http.StatusForbidden
	}
	return false
}

// IsIrrecoverable returns true if the error will not succeed when repeated.
func IsIrrecoverable(err error) bool {
	var classified *ClassifiedError
	if stderrors.As(err, &classified) {
		return classified.Category == Irrecoverable
	}
	return false
}
