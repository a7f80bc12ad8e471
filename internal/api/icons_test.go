package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	apierrors "github.com/ternfeed/tern/client/internal/errors"
)

func TestGetFeedIcon_Path(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/feeds/42/icon" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"id": 262, "data": "image/png;base64,iVBOR=", "mime_type": "image/png"}`))
	}))
	defer srv.Close()

	icon, err := GetFeedIcon(context.Background(), srv.Client(), srv.URL, 42)
	if err != nil {
		t.Fatalf("GetFeedIcon error: %v", err)
	}
	if icon.ID != 262 || icon.MimeType != "image/png" {
		t.Fatalf("unexpected icon: %+v", icon)
	}
}

func TestGetIcon_NotFound(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/icons/999" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error_message": "this feed has no icon"}`))
	}))
	defer srv.Close()

	_, err := GetIcon(context.Background(), srv.Client(), srv.URL, 999)
	if !apierrors.IsNotFound(err) {
		t.Fatalf("expected not found classification, got %v", err)
	}
}
