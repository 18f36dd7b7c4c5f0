package client

import (
	"errors"

	clienterrors "github.com/herbiel/QuantDinger/client/internal/errors"
	"github.com/herbiel/QuantDinger/client/internal/types"
)

// Re-export shared SDK errors so callers compare against a single symbol.
var (
	ErrNotFound     = types.ErrNotFound
	ErrUnauthorized = types.ErrUnauthorized
	ErrForbidden    = types.ErrForbidden
)

// APIError is the normalized error returned by the built-in HTTP transport.
type APIError = clienterrors.ClassifiedError

// IsTransient reports whether err is a transport failure that may succeed if
// the request is issued again (network errors, 5xx, 408, 429).
func IsTransient(err error) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	return apiErr.Category == clienterrors.Recoverable
}
