package transport

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	clienterrors "github.com/herbiel/QuantDinger/client/internal/errors"
	"github.com/herbiel/QuantDinger/client/internal/types"
)

func newTestTransport(t *testing.T, h http.HandlerFunc) *HTTPTransport {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	tr := New(srv.URL, &http.Client{}, "userctl-test")
	t.Cleanup(tr.Close)
	return tr
}

func writeEnvelope(w http.ResponseWriter, status, code int, msg string, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{"code": code, "msg": msg, "data": data})
}

func TestSend_QueryParamsAndDecode(t *testing.T) {
	t.Parallel()
	tr := newTestTransport(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/users/list", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "50", r.URL.Query().Get("page_size"))
		assert.Equal(t, "userctl-test", r.Header.Get("User-Agent"))
		b, _ := io.ReadAll(r.Body)
		assert.Empty(t, b, "GET must not carry a body")
		writeEnvelope(w, http.StatusOK, 1, "success", map[string]any{
			"items": []map[string]any{{"id": 3, "username": "dora"}},
			"total": 51, "page": 2, "page_size": 50, "total_pages": 2,
		})
	})

	var list types.UserList
	err := tr.Send(context.Background(), types.Descriptor{
		URL: "/api/users/list", Method: http.MethodGet,
		Params: map[string]any{"page": 2, "page_size": 50},
	}, &list)
	require.NoError(t, err)
	assert.Equal(t, 51, list.Total)
	require.Len(t, list.Items, 1)
	assert.Equal(t, int64(3), list.Items[0].ID)
}

func TestSend_JSONBodyWithQueryID(t *testing.T) {
	t.Parallel()
	tr := newTestTransport(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/users/update", r.URL.Path)
		assert.Equal(t, "42", r.URL.Query().Get("id"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		var got map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, map[string]any{"role": "manager"}, got)
		writeEnvelope(w, http.StatusOK, 1, "User updated successfully", nil)
	})

	role := types.RoleManager
	err := tr.Send(context.Background(), types.Descriptor{
		URL: "/api/users/update", Method: http.MethodPut,
		Params: map[string]any{"id": int64(42)},
		Data:   types.UpdateUserRequest{Role: &role},
	}, nil)
	require.NoError(t, err)
}

func TestSend_NullDataLeavesOutUntouched(t *testing.T) {
	t.Parallel()
	tr := newTestTransport(t, func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusOK, 1, "ok", nil)
	})
	out := types.User{ID: 99}
	require.NoError(t, tr.Send(context.Background(), types.Descriptor{URL: "/api/users/profile", Method: http.MethodGet}, &out))
	assert.Equal(t, int64(99), out.ID)
}

func TestSend_NotFound(t *testing.T) {
	t.Parallel()
	tr := newTestTransport(t, func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusNotFound, 0, "User not found", nil)
	})
	err := tr.Send(context.Background(), types.Descriptor{URL: "/api/users/detail", Method: http.MethodGet, Params: map[string]any{"id": int64(1)}}, &types.User{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrNotFound))

	var ce *clienterrors.ClassifiedError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, http.StatusNotFound, ce.StatusCode)
	assert.Equal(t, "User not found", ce.Message)
	assert.Equal(t, clienterrors.Irrecoverable, ce.Category)
}

func TestSend_ServerErrorWithoutEnvelope(t *testing.T) {
	t.Parallel()
	tr := newTestTransport(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream down"))
	})
	err := tr.Send(context.Background(), types.Descriptor{URL: "/api/users/roles", Method: http.MethodGet}, nil)
	var ce *clienterrors.ClassifiedError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, http.StatusBadGateway, ce.StatusCode)
	assert.Equal(t, "upstream down", ce.Body)
	assert.Equal(t, clienterrors.Recoverable, ce.Category)
}

func TestSend_BackendFailureOn200(t *testing.T) {
	t.Parallel()
	tr := newTestTransport(t, func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusOK, 0, "Old password incorrect", nil)
	})
	err := tr.Send(context.Background(), types.Descriptor{
		URL: "/api/users/change-password", Method: http.MethodPost,
		Data: types.ChangePasswordRequest{OldPassword: "a", NewPassword: "bbbbbb"},
	}, nil)
	var ce *clienterrors.ClassifiedError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, "Old password incorrect", ce.Message)
	assert.True(t, clienterrors.IsIrrecoverable(err))
}

func TestSend_MalformedBody(t *testing.T) {
	t.Parallel()
	tr := newTestTransport(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("{bad json"))
	})
	err := tr.Send(context.Background(), types.Descriptor{URL: "/api/users/profile", Method: http.MethodGet}, &types.Profile{})
	require.Error(t, err)
	var ce *clienterrors.ClassifiedError
	assert.False(t, errors.As(err, &ce))
}

func TestSend_NetworkError(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	tr := New(url, &http.Client{}, "")
	err := tr.Send(context.Background(), types.Descriptor{URL: "/api/users/roles", Method: http.MethodGet}, nil)
	var ce *clienterrors.ClassifiedError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, 0, ce.StatusCode)
	assert.Equal(t, clienterrors.Recoverable, ce.Category)
}

func TestSend_ContextCanceled(t *testing.T) {
	t.Parallel()
	tr := newTestTransport(t, func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusOK, 1, "ok", nil)
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := tr.Send(ctx, types.Descriptor{URL: "/api/users/profile", Method: http.MethodGet}, nil)
	assert.True(t, errors.Is(err, context.Canceled))
}
