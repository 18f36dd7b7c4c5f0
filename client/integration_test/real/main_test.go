//go:build integration
// +build integration

package client_test

import (
	"net/http"
	"os"
	"testing"
	"time"
)

// TestMain waits for the backend to answer before running tests.
func TestMain(m *testing.M) {
	waitForBackend(backendURL(), 30*time.Second)
	os.Exit(m.Run())
}

func backendURL() string {
	if u := os.Getenv("TEST_BACKEND_URL"); u != "" {
		return u
	}
	return "http://localhost:5000"
}

// waitForBackend polls the roles endpoint; any non-5xx answer (401 included)
// means the API is serving.
func waitForBackend(baseURL string, timeout time.Duration) {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		resp, err := http.Get(baseURL + "/api/users/roles")
		if err == nil {
			_ = resp.Body.Close()
			if resp.StatusCode < http.StatusInternalServerError {
				return
			}
		}
		time.Sleep(200 * time.Millisecond)
	}
	panic("backend not reachable at " + baseURL + " within timeout")
}
