package client

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// Option configures a Client during construction in New.
//
// Options are applied before the authorization and request-id wrappers are
// installed, so transport-related options (like debug logging) end up
// underneath them. Options must be deterministic and side-effect free.
type Option func(*Client) error

// WithHTTPTimeout sets the underlying http.Client Timeout used by the SDK.
//
// Prefer per-request context deadlines where possible; this timeout is a
// coarse safety net that bounds the total time spent on a single HTTP request.
// The value must be greater than zero.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be > 0")
		}
		c.http.Timeout = d
		return nil
	}
}

// WithHTTPClient uses a copy of hc for all requests. hc itself is never
// modified; its Transport becomes the innermost RoundTripper of the copy.
// A zero hc.Timeout inherits the timeout configured so far.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		if hc == nil {
			return errors.New("http client cannot be nil")
		}
		cp := *hc
		if cp.Timeout == 0 {
			cp.Timeout = c.http.Timeout
		}
		c.http = &cp
		return nil
	}
}

// WithDebugLogging logs each request/response at debug level when enabled is
// true. The dump transport is installed when New builds the RoundTripper
// chain, so the order relative to WithHTTPClient does not matter.
//
// Do not enable this option in production environments: dumps include
// request bodies, which carry passwords for the password operations.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		if enabled {
			c.debug = true
		}
		return nil
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(c *Client) error {
		c.userAgent = ua
		return nil
	}
}

// WithTransport bypasses the built-in HTTP transport entirely. The HTTP
// related options have no effect when it is used.
func WithTransport(t Transport) Option {
	return func(c *Client) error {
		if t == nil {
			return errors.New("transport cannot be nil")
		}
		c.transport = t
		return nil
	}
}
