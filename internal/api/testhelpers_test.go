package api

import (
	"fmt"
	"net/http"
	"testing"
)

// errRT is an http.RoundTripper that always returns an error (simulates network failure).
type errRT struct{}

func (e *errRT) RoundTrip(*http.Request) (*http.Response, error) { return nil, fmt.Errorf("boom") }

// trapRT fails the test if any request reaches the transport; used to prove
// local validation short-circuits before the wire.
type trapRT struct{ t *testing.T }

func (rt *trapRT) RoundTrip(req *http.Request) (*http.Response, error) {
	rt.t.Fatalf("unexpected request %s %s", req.Method, req.URL)
	return nil, fmt.Errorf("unreachable")
}
