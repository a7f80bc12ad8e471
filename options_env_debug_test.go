package client

import (
	"context"
	"net/http"
	"testing"
)

func TestNew_AutoEnableDebugViaEnv(t *testing.T) {
	t.Setenv("TERN_DEBUG", "true")
	c, err := New("http://example.com", WithAPIKey("k"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer func() { _ = c.Close() }()

	at, ok := c.http.Transport.(*authTransport)
	if !ok {
		t.Fatalf("expected authTransport at the top of the chain, got %T", c.http.Transport)
	}
	mt, ok := at.base.(*metricsTransport)
	if !ok {
		t.Fatalf("expected metricsTransport below auth, got %T", at.base)
	}
	if _, ok := mt.base.(*debugTransport); !ok {
		t.Fatalf("expected debugTransport to be installed when TERN_DEBUG=true, got %T", mt.base)
	}
}

func TestDebugTransport_ErrorPath(t *testing.T) {
	rt := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		return nil, context.DeadlineExceeded
	})
	c, err := New("http://example.com",
		WithAPIKey("k"),
		WithHTTPClient(&http.Client{Transport: rt}),
		WithDebugLogging(true),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer func() { _ = c.Close() }()

	req, _ := http.NewRequestWithContext(context.Background(), http.MethodGet, "http://example.com", http.NoBody)
	if _, err := c.http.Do(req); err == nil {
		t.Fatalf("expected error from underlying transport")
	}
}
