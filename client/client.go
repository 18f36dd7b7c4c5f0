package client

import (
	"context"
	"errors"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/herbiel/QuantDinger/client/internal/api"
	"github.com/herbiel/QuantDinger/client/internal/transport"
)

// --------------------------------------------------------------------
// Client core
// --------------------------------------------------------------------

// Client is the user-management SDK. It is safe for concurrent use; every
// method issues exactly one request through the configured Transport.
type Client struct {
	baseURL   string
	token     string // session token attached as a bearer credential
	userAgent string
	http      *http.Client
	transport Transport
	debug     bool // install the debug dump transport when building the chain

	closedOnce uint32 // ensures Close is idempotent
}

// New constructs a Client talking to baseURL with the given session token.
// Additional options can be provided via functional arguments.
func New(baseURL, token string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, errors.New("baseURL cannot be empty")
	}
	if token == "" {
		return nil, errors.New("token cannot be empty")
	}

	c := &Client{
		baseURL: baseURL,
		token:   token,
		http:    &http.Client{Timeout: 30 * time.Second},
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	if c.transport == nil {
		c.wrapTransport()
		c.transport = transport.New(c.baseURL, c.http, c.userAgent)
	}
	return c, nil
}

// NewWithTransport constructs a Client that forwards every request to t.
func NewWithTransport(t Transport) (*Client, error) {
	if t == nil {
		return nil, errors.New("transport cannot be nil")
	}
	return &Client{transport: t}, nil
}

// NewFromEnv constructs a Client from QUANTDINGER_* environment variables.
func NewFromEnv(opts ...Option) (*Client, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	return NewFromConfig(cfg, opts...)
}

// NewFromConfig constructs a Client from a loaded Config. Explicit options
// are applied after the ones derived from cfg.
func NewFromConfig(cfg *Config, opts ...Option) (*Client, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	base := []Option{WithHTTPTimeout(cfg.Timeout), WithDebugLogging(cfg.Debug)}
	if cfg.UserAgent != "" {
		base = append(base, WithUserAgent(cfg.UserAgent))
	}
	return New(cfg.BaseURL, cfg.Token, append(base, opts...)...)
}

// wrapTransport installs the authorization, request id and (optionally) debug
// wrappers on top of whatever RoundTripper the options configured. c.http is
// always a Client-owned copy by now.
func (c *Client) wrapTransport() {
	baseTransport := c.http.Transport
	if baseTransport == nil {
		baseTransport = http.DefaultTransport
	}
	if c.debug {
		baseTransport = &debugTransport{base: baseTransport}
	}
	c.http.Transport = &tokenTransport{
		base:  &requestIDTransport{base: baseTransport},
		token: c.token,
	}
}

// tokenTransport wraps an http.RoundTripper to add the Authorization header.
type tokenTransport struct {
	base  http.RoundTripper
	token string
}

func (t *tokenTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Clone the request to avoid modifying the original
	cloned := req.Clone(req.Context())
	cloned.Header.Set(headerAuthorization, "Bearer "+t.token)
	return t.base.RoundTrip(cloned)
}

// requestIDTransport tags every request with a fresh X-Request-ID unless the
// caller already set one.
type requestIDTransport struct {
	base http.RoundTripper
}

func (t *requestIDTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get(headerRequestID) != "" {
		return t.base.RoundTrip(req)
	}
	cloned := req.Clone(req.Context())
	cloned.Header.Set(headerRequestID, uuid.NewString())
	return t.base.RoundTrip(cloned)
}

const (
	headerAuthorization = "Authorization"
	headerRequestID     = "X-Request-ID"
)

// Close releases idle connections. Safe to call multiple times.
func (c *Client) Close() error {
	if !atomic.CompareAndSwapUint32(&c.closedOnce, 0, 1) {
		return nil
	}
	if ht, ok := c.transport.(*transport.HTTPTransport); ok {
		ht.Close()
	}
	return nil
}

// --------------------------------------------------------------------
// Admin operations - delegated to internal/api
// --------------------------------------------------------------------

// GetUserList returns one page of users.
func (c *Client) GetUserList(ctx context.Context, params ListUsersParams) (*UserList, error) {
	return api.GetUserList(ctx, c.transport, params)
}

// GetUserDetail retrieves a user by ID. A missing user yields an error
// matching ErrNotFound.
func (c *Client) GetUserDetail(ctx context.Context, id int64) (*User, error) {
	return api.GetUserDetail(ctx, c.transport, id)
}

// CreateUser creates a user and returns its new ID.
func (c *Client) CreateUser(ctx context.Context, req CreateUserRequest) (*CreatedUser, error) {
	return api.CreateUser(ctx, c.transport, req)
}

// UpdateUser applies a partial update to a user. The backend acknowledges
// without returning the record.
func (c *Client) UpdateUser(ctx context.Context, id int64, req UpdateUserRequest) error {
	return api.UpdateUser(ctx, c.transport, id, req)
}

// DeleteUser deletes a user by ID.
func (c *Client) DeleteUser(ctx context.Context, id int64) error {
	return api.DeleteUser(ctx, c.transport, id)
}

// ResetUserPassword sets a new password for any user.
func (c *Client) ResetUserPassword(ctx context.Context, req ResetPasswordRequest) error {
	return api.ResetUserPassword(ctx, c.transport, req)
}

// GetRoles lists assignable roles with their permissions.
func (c *Client) GetRoles(ctx context.Context) ([]Role, error) {
	return api.GetRoles(ctx, c.transport)
}

// --------------------------------------------------------------------
// Self-service operations - delegated to internal/api
// --------------------------------------------------------------------

// GetProfile returns the profile of the user owning the token.
func (c *Client) GetProfile(ctx context.Context) (*Profile, error) {
	return api.GetProfile(ctx, c.transport)
}

// UpdateProfile changes the caller's nickname, email or avatar.
func (c *Client) UpdateProfile(ctx context.Context, req UpdateProfileRequest) error {
	return api.UpdateProfile(ctx, c.transport, req)
}

// ChangePassword replaces the caller's password.
func (c *Client) ChangePassword(ctx context.Context, req ChangePasswordRequest) error {
	return api.ChangePassword(ctx, c.transport, req)
}
