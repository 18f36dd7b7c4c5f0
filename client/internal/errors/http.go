package errors

import "fmt"

// ClassifyHTTPError builds a ClassifiedError for an HTTP response.
// - 4xx client errors (except 408 and 429) are irrecoverable
// - 5xx server errors are recoverable
func ClassifyHTTPError(statusCode int, body string, underlyingErr error) *ClassifiedError {
	return &ClassifiedError{
		Category:   getHTTPErrorCategory(statusCode),
		StatusCode: statusCode,
		Body:       body,
		Underlying: underlyingErr,
	}
}

// getHTTPErrorCategory maps HTTP status codes to error categories.
func getHTTPErrorCategory(statusCode int) ErrorCategory {
	switch {
	case statusCode >= 400 && statusCode < 500:
		switch statusCode {
		case 408, 429:
			return Recoverable
		default:
			return Irrecoverable
		}
	case statusCode >= 500 && statusCode < 600:
		return Recoverable
	default:
		return Recoverable
	}
}

// NewHTTPError creates a classified error for a non-2xx response. code and msg
// come from the response envelope when the body carried one.
func NewHTTPError(statusCode int, code int, msg, body, operation string) *ClassifiedError {
	var underlyingErr error
	if msg != "" {
		underlyingErr = fmt.Errorf("%s failed: %s", operation, msg)
	} else {
		underlyingErr = fmt.Errorf("%s failed: HTTP %d", operation, statusCode)
	}
	ce := ClassifyHTTPError(statusCode, body, underlyingErr)
	ce.Code = code
	ce.Message = msg
	return ce
}

// NewBackendError creates a classified error for a 2xx response whose envelope
// reports failure. These are never transient.
func NewBackendError(statusCode int, code int, msg, body, operation string) *ClassifiedError {
	return &ClassifiedError{
		Category:   Irrecoverable,
		StatusCode: statusCode,
		Code:       code,
		Message:    msg,
		Body:       body,
		Underlying: fmt.Errorf("%s rejected: %s (code %d)", operation, msg, code),
	}
}

// NewNetworkError creates a classified error for network-level failures.
// Network errors are always recoverable as they may be transient.
func NewNetworkError(operation string, err error) *ClassifiedError {
	return &ClassifiedError{
		Category:   Recoverable,
		StatusCode: 0,
		Underlying: fmt.Errorf("%s network error: %w", operation, err),
	}
}
