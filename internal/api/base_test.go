package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	apierrors "github.com/ternfeed/tern/client/internal/errors"
)

func TestEndpointComposition(t *testing.T) {
	t.Parallel()

	cases := []struct {
		base, path, want string
	}{
		{"http://localhost", "/feeds", "http://localhost/v1/feeds"},
		{"https://reader.example.org", "/entries/42", "https://reader.example.org/v1/entries/42"},
		{"http://localhost:8080", "/me", "http://localhost:8080/v1/me"},
	}
	for _, c := range cases {
		if got := endpoint(c.base, c.path); got != c.want {
			t.Errorf("endpoint(%q, %q) = %q, want %q", c.base, c.path, got, c.want)
		}
	}
}

func TestStatusOK(t *testing.T) {
	t.Parallel()

	cases := []struct {
		status, want int
		ok           bool
	}{
		{200, 200, true},
		{201, 200, false},
		{200, 201, false},
		{204, 204, true},
		{202, 202, true},
		{204, anyBelow400, true},
		{201, anyBelow400, true},
		{399, anyBelow400, true},
		{400, anyBelow400, false},
		{500, anyBelow400, false},
	}
	for _, c := range cases {
		if got := statusOK(c.status, c.want); got != c.ok {
			t.Errorf("statusOK(%d, %d) = %v, want %v", c.status, c.want, got, c.ok)
		}
	}
}

func TestDoJSON_ClassifiesFailureStatus(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error_message": "no such feed"}`))
	}))
	defer srv.Close()

	err := doJSON(context.Background(), srv.Client(), http.MethodGet, srv.URL+"/v1/feeds/1", nil, http.StatusOK, nil)
	if err == nil {
		t.Fatal("expected error for 404")
	}
	apiErr, ok := apierrors.AsAPIError(err)
	if !ok {
		t.Fatalf("expected *APIError, got %T: %v", err, err)
	}
	if apiErr.Kind != apierrors.KindNotFound || apiErr.StatusCode != http.StatusNotFound {
		t.Fatalf("unexpected classification: %+v", apiErr)
	}
	if got := apiErr.Reason(); got != "no such feed" {
		t.Fatalf("Reason() = %q, want %q", got, "no such feed")
	}
}

func TestDoJSON_UnexpectedSuccessCodeIsClientError(t *testing.T) {
	t.Parallel()

	// A 200 where the contract demands 201 is still a failure.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	err := doJSON(context.Background(), srv.Client(), http.MethodPost, srv.URL+"/v1/feeds", map[string]string{}, http.StatusCreated, nil)
	apiErr, ok := apierrors.AsAPIError(err)
	if !ok {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if apiErr.Kind != apierrors.KindClient || apiErr.StatusCode != http.StatusOK {
		t.Fatalf("unexpected classification: %+v", apiErr)
	}
	if got := apiErr.Reason(); got != "status_code=200" {
		t.Fatalf("Reason() = %q, want %q", got, "status_code=200")
	}
}

func TestDoJSON_TransportErrorPassesThroughUntyped(t *testing.T) {
	t.Parallel()

	hc := &http.Client{Transport: &errRT{}}
	err := doJSON(context.Background(), hc, http.MethodGet, "http://example.com/v1/feeds", nil, http.StatusOK, nil)
	if err == nil {
		t.Fatal("expected transport error")
	}
	if _, ok := apierrors.AsAPIError(err); ok {
		t.Fatalf("transport failures must not be classified, got %v", err)
	}
}

func TestDoJSON_CtxCanceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	if err := doJSON(ctx, srv.Client(), http.MethodGet, srv.URL, nil, http.StatusOK, nil); err == nil {
		t.Fatal("expected context canceled")
	}
}

func TestDoText_RawBody(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("2.2.1"))
	}))
	defer srv.Close()

	got, err := doText(context.Background(), srv.Client(), srv.URL+"/version")
	if err != nil {
		t.Fatalf("doText error: %v", err)
	}
	if got != "2.2.1" {
		t.Fatalf("doText = %q, want %q", got, "2.2.1")
	}
}

func TestDoText_FailureStatus(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := doText(context.Background(), srv.Client(), srv.URL+"/version")
	if !apierrors.IsServerError(err) {
		t.Fatalf("expected server error classification, got %v", err)
	}
}
