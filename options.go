package client

// This file defines functional options that configure the Client during
// construction. Keeping them in a standalone file avoids cluttering
// client.go and makes it easy to discover all available knobs at a glance.

import (
	"fmt"
	"net/http"
	"time"
)

// Option configures a Client during construction in New.
//
// Options are applied before the credential transport wrapper is installed,
// so transport-related options (like debug logging) will be placed
// underneath it. Options must be deterministic and side-effect free.
type Option func(*Client) error

// WithAPIKey authenticates every request with the given API key, sent in the
// X-Auth-Token header. When both an API key and basic credentials are
// configured the API key wins.
func WithAPIKey(key string) Option {
	return func(c *Client) error {
		if key == "" {
			return fmt.Errorf("api key must not be empty")
		}
		c.apiKey = key
		return nil
	}
}

// WithBasicAuth authenticates every request with HTTP basic auth.
// Prefer WithAPIKey; basic credentials are mainly useful against servers
// that predate API keys.
func WithBasicAuth(username, password string) Option {
	return func(c *Client) error {
		if username == "" {
			return fmt.Errorf("username must not be empty")
		}
		c.username = username
		c.password = password
		return nil
	}
}

// WithHTTPClient injects a custom *http.Client. Useful for setting transport
// timeouts, tracing, custom TLS settings, etc. The caller keeps ownership:
// Close will not touch the injected client's connection pool.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		if hc == nil {
			return fmt.Errorf("nil http client")
		}
		c.http = hc
		c.ownsHTTP = false
		return nil
	}
}

// WithHTTPTimeout sets the underlying http.Client Timeout used by the SDK.
//
// Prefer per-request context deadlines where possible; this timeout is a
// coarse safety net that bounds the total time spent on a single HTTP
// request (including connection, TLS handshake, redirects, and reading the
// response). The value must be greater than zero.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be > 0")
		}
		c.http.Timeout = d
		return nil
	}
}

// WithUserAgent overrides the User-Agent header sent with every request.
// An empty value restores Go's default User-Agent.
func WithUserAgent(ua string) Option {
	return func(c *Client) error {
		c.userAgent = ua
		return nil
	}
}

// WithDebugLogging wraps the client's transport so each request/response is
// logged when enabled is true.
//
// The debug transport is installed beneath the credential wrapper; dumps
// therefore include the injected auth headers. Do not enable this option in
// production environments as it logs full request and response bodies.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		if enabled {
			transport := c.http.Transport
			if transport == nil {
				transport = http.DefaultTransport
			}
			c.http.Transport = &debugTransport{base: transport}
		}
		return nil
	}
}
