package types

import (
	"context"
	"errors"
)

// ------------------------------
// Shared Interfaces
// ------------------------------

// Descriptor describes one backend request. Params carries identifiers and
// filters for the query string; Data carries the JSON body.
type Descriptor struct {
	URL    string
	Method string
	Params map[string]any
	Data   any
}

// Transport performs the network call for a Descriptor and decodes the
// response payload into out (ignored when nil).
type Transport interface {
	Send(ctx context.Context, d Descriptor, out any) error
}

// ------------------------------
// Shared Errors
// ------------------------------

var (
	// ErrNotFound is matched by transport errors for HTTP 404.
	ErrNotFound = errors.New("not found")
	// ErrUnauthorized is matched by transport errors for HTTP 401.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrForbidden is matched by transport errors for HTTP 403.
	ErrForbidden = errors.New("forbidden")
)
