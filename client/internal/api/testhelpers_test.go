package api

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"github.com/herbiel/QuantDinger/client/internal/types"
)

// recordingTransport captures every Descriptor and answers with a canned
// JSON payload or error.
type recordingTransport struct {
	mu      sync.Mutex
	calls   []types.Descriptor
	payload string
	err     error
}

func (r *recordingTransport) Send(_ context.Context, d types.Descriptor, out any) error {
	r.mu.Lock()
	r.calls = append(r.calls, d)
	r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	if out == nil || r.payload == "" {
		return nil
	}
	return json.Unmarshal([]byte(r.payload), out)
}

func (r *recordingTransport) only(t *testing.T) types.Descriptor {
	t.Helper()
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.calls) != 1 {
		t.Fatalf("expected exactly one transport call, got %d", len(r.calls))
	}
	return r.calls[0]
}
