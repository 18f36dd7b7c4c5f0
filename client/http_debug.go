package client

import (
	"net/http"
	"net/http/httputil"
	"os"
	"time"

	"github.com/rs/zerolog/log"
)

// debugTransport logs every request/response dump at debug level.
//
// When to use:
//   - Set QUANTDINGER_DEBUG=true or DEBUG=true, or pass WithDebugLogging(true)
//   - While wiring a new integration against a local backend
//
// Security considerations:
//   - Bodies are dumped verbatim; create, reset-password and change-password
//     requests carry plaintext passwords
//   - The Authorization header value is replaced by a placeholder in dumps
//
// Example usage:
//
//	export QUANTDINGER_DEBUG=true
//	userctl users list  # every HTTP exchange is written to stderr
type debugTransport struct{ base http.RoundTripper }

func (dt *debugTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := dt.base
	if base == nil {
		base = http.DefaultTransport
	}

	// Dump a clone: DumpRequestOut buffers the body back onto the request it
	// is given, so the clone is also what gets sent.
	req = req.Clone(req.Context())
	auth := req.Header.Get(headerAuthorization)
	if auth != "" {
		req.Header.Set(headerAuthorization, redactedCredential)
	}
	reqDump, dumpErr := httputil.DumpRequestOut(req, true)
	if auth != "" {
		req.Header.Set(headerAuthorization, auth)
	}
	if dumpErr == nil {
		log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Str("request_dump", string(reqDump)).Msg("HTTP request")
	}

	start := time.Now()
	resp, err := base.RoundTrip(req)
	if err != nil {
		log.Error().Err(err).Str("method", req.Method).Str("url", req.URL.String()).Dur("elapsed", time.Since(start)).Msg("HTTP request failed")
		return nil, err
	}

	if respDump, err := httputil.DumpResponse(resp, true); err == nil {
		log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Int("status_code", resp.StatusCode).Dur("elapsed", time.Since(start)).Str("response_dump", string(respDump)).Msg("HTTP response")
	}
	return resp, nil
}

const redactedCredential = "[REDACTED]"

// debugLoggingRequested reports whether QUANTDINGER_DEBUG or DEBUG is "true".
func debugLoggingRequested() bool {
	return os.Getenv("QUANTDINGER_DEBUG") == "true" || os.Getenv("DEBUG") == "true"
}
