package client

import (
	"net/http"
	"net/http/httputil"
	"os"

	"github.com/rs/zerolog/log"
)

// debugTransport provides detailed HTTP request/response logging for debugging client issues.
//
// Purpose:
//   - Troubleshoot API communication problems (timeouts, malformed requests, unexpected responses)
//   - Debug authentication issues by inspecting headers and payloads
//   - Validate request formatting during development and testing
//
// When to use:
//   - Set TERN_DEBUG=true or DEBUG=true environment variable
//   - During development when building new API integrations
//   - In CI/CD pipelines for integration test debugging
//
// Security considerations:
//   - Logs full request/response bodies including sensitive data (tokens, credentials)
//   - Only enable in development/staging environments
//   - Ensure log outputs are properly secured and not exposed
//
// Performance impact:
//   - Adds overhead for request/response dumping and logging
//   - Should be disabled in production for optimal performance
//
// Example usage:
//
//	export TERN_DEBUG=true
//	go run main.go  # Client will now log all HTTP traffic
type debugTransport struct{ base http.RoundTripper }

func (dt *debugTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if debugLoggingRequested() {
		if reqDump, err := httputil.DumpRequestOut(req, true); err == nil {
			log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Str("request_dump", string(reqDump)).Msg("HTTP request")
		}
	}

	resp, err := dt.base.RoundTrip(req)
	if err != nil {
		if debugLoggingRequested() {
			log.Error().Err(err).Str("method", req.Method).Str("url", req.URL.String()).Msg("HTTP request failed")
		}
		return nil, err
	}

	if debugLoggingRequested() {
		if respDump, err := httputil.DumpResponse(resp, true); err == nil {
			log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Int("status_code", resp.StatusCode).Str("response_dump", string(respDump)).Msg("HTTP response")
		}
	}
	return resp, nil
}

func (dt *debugTransport) CloseIdleConnections() { closeIdleConnections(dt.base) }

// debugLoggingRequested checks if HTTP debug logging should be enabled.
//
// Activation methods:
//   - TERN_DEBUG=true (tern-specific debug flag)
//   - DEBUG=true (general debug flag, common in development workflows)
//
// Returns true if either environment variable is set to "true" (case-sensitive).
func debugLoggingRequested() bool {
	return os.Getenv("TERN_DEBUG") == "true" || os.Getenv("DEBUG") == "true"
}
