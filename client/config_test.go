package client

import (
	"net/http"
	"testing"
	"time"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.BaseURL != "http://localhost:5000" || cfg.Timeout != 30*time.Second || cfg.Debug {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestNewFromEnv(t *testing.T) {
	t.Setenv("QUANTDINGER_BASE_URL", "http://api.internal:5000")
	t.Setenv("QUANTDINGER_TOKEN", "jwt")
	t.Setenv("QUANTDINGER_TIMEOUT", "5s")
	t.Setenv("QUANTDINGER_USER_AGENT", "ops-bot/1.0")
	c, err := NewFromEnv()
	if err != nil {
		t.Fatalf("NewFromEnv: %v", err)
	}
	if c.baseURL != "http://api.internal:5000" || c.token != "jwt" || c.userAgent != "ops-bot/1.0" {
		t.Fatalf("unexpected client: %+v", c)
	}
	if c.http.Timeout != 5*time.Second {
		t.Fatalf("unexpected timeout: %v", c.http.Timeout)
	}
}

func TestNewFromEnv_MissingToken(t *testing.T) {
	t.Setenv("QUANTDINGER_TOKEN", "")
	if _, err := NewFromEnv(); err == nil {
		t.Fatalf("expected error without token")
	}
}

func TestLoadConfig_BadTimeout(t *testing.T) {
	t.Setenv("QUANTDINGER_TIMEOUT", "soon")
	if _, err := LoadConfig(); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestNewFromConfig_NilConfig(t *testing.T) {
	if _, err := NewFromConfig(nil); err == nil {
		t.Fatalf("expected error for nil config")
	}
}

func TestNewFromConfig_HTTPClientKeepsConfigSettings(t *testing.T) {
	cfg := &Config{BaseURL: "http://example.com", Token: "tok", Timeout: 9 * time.Second, Debug: true}
	c, err := NewFromConfig(cfg, WithHTTPClient(&http.Client{}))
	if err != nil {
		t.Fatalf("NewFromConfig: %v", err)
	}
	if c.http.Timeout != 9*time.Second {
		t.Fatalf("config timeout lost: %v", c.http.Timeout)
	}
	tt, ok := c.http.Transport.(*tokenTransport)
	if !ok {
		t.Fatalf("expected tokenTransport outermost, got %T", c.http.Transport)
	}
	rid, ok := tt.base.(*requestIDTransport)
	if !ok {
		t.Fatalf("expected requestIDTransport, got %T", tt.base)
	}
	if _, ok := rid.base.(*debugTransport); !ok {
		t.Fatalf("config debug setting lost, got %T", rid.base)
	}
}
