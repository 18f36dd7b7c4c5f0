// Package transport is the default HTTP implementation of types.Transport.
// It owns everything the operation layer leaves out: base URL resolution,
// the JSON response envelope and error normalization.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	clienterrors "github.com/herbiel/QuantDinger/client/internal/errors"
	"github.com/herbiel/QuantDinger/client/internal/types"
)

// envelopeSuccess is the envelope code the backend uses for success.
const envelopeSuccess = 1

// envelope is the wrapper every backend response is delivered in.
type envelope struct {
	Code int             `json:"code"`
	Msg  string          `json:"msg"`
	Data json.RawMessage `json:"data"`
}

// HTTPTransport sends Descriptors to the backend with resty.
type HTTPTransport struct {
	rc *resty.Client
}

var _ types.Transport = (*HTTPTransport)(nil)

// New builds a transport rooted at baseURL. httpClient carries the
// RoundTripper chain (auth, request ids, debug logging) and the timeout.
func New(baseURL string, httpClient *http.Client, userAgent string) *HTTPTransport {
	rc := resty.NewWithClient(httpClient).
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json")
	if userAgent != "" {
		rc.SetHeader("User-Agent", userAgent)
	}
	return &HTTPTransport{rc: rc}
}

// Send executes d and decodes the envelope's data into out.
func (t *HTTPTransport) Send(ctx context.Context, d types.Descriptor, out any) error {
	op := d.Method + " " + d.URL
	req := t.rc.R().SetContext(ctx)
	for k, v := range d.Params {
		req.SetQueryParam(k, fmt.Sprint(v))
	}
	if d.Data != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(d.Data)
	}

	start := time.Now()
	resp, err := req.Execute(d.Method, d.URL)
	requestDuration.WithLabelValues(d.Method, d.URL).Observe(time.Since(start).Seconds())
	if err != nil {
		requestsTotal.WithLabelValues(d.Method, d.URL, outcomeNetworkError).Inc()
		return clienterrors.NewNetworkError(op, err)
	}

	body := resp.Body()
	var env envelope
	decodeErr := json.Unmarshal(body, &env)

	if !resp.IsSuccess() {
		requestsTotal.WithLabelValues(d.Method, d.URL, outcomeHTTPError).Inc()
		if decodeErr != nil {
			return clienterrors.NewHTTPError(resp.StatusCode(), 0, "", string(body), op)
		}
		return clienterrors.NewHTTPError(resp.StatusCode(), env.Code, env.Msg, string(body), op)
	}
	if decodeErr != nil {
		requestsTotal.WithLabelValues(d.Method, d.URL, outcomeDecodeError).Inc()
		return fmt.Errorf("%s: decode response: %w", op, decodeErr)
	}
	if env.Code != envelopeSuccess {
		requestsTotal.WithLabelValues(d.Method, d.URL, outcomeBackendError).Inc()
		return clienterrors.NewBackendError(resp.StatusCode(), env.Code, env.Msg, string(body), op)
	}

	if out != nil && len(env.Data) > 0 && !bytes.Equal(env.Data, []byte("null")) {
		if err := json.Unmarshal(env.Data, out); err != nil {
			requestsTotal.WithLabelValues(d.Method, d.URL, outcomeDecodeError).Inc()
			return fmt.Errorf("%s: decode data: %w", op, err)
		}
	}
	requestsTotal.WithLabelValues(d.Method, d.URL, outcomeOK).Inc()
	return nil
}

// Close releases idle connections held by the underlying http.Client.
func (t *HTTPTransport) Close() {
	t.rc.GetClient().CloseIdleConnections()
}
