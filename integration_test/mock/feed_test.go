package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	client "github.com/ternfeed/tern/client"
)

func TestClient_FeedLifecycle(t *testing.T) {
	t.Parallel()

	feed := client.Feed{ID: 42, Title: "Example", FeedURL: "http://example.org/feed.xml", SiteURL: "http://example.org/"}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/v1/discover":
			var req struct {
				URL string `json:"url"`
			}
			_ = json.NewDecoder(r.Body).Decode(&req)
			if req.URL != "http://example.org/" {
				w.WriteHeader(http.StatusBadRequest)
				_ = json.NewEncoder(w).Encode(map[string]string{"error_message": "invalid url"})
				return
			}
			_ = json.NewEncoder(w).Encode([]client.Subscription{{Title: "Example", URL: feed.FeedURL, Type: "rss"}})
		case r.Method == http.MethodPost && r.URL.Path == "/v1/feeds":
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(map[string]int64{"feed_id": 42})
		case r.Method == http.MethodGet && r.URL.Path == "/v1/feeds":
			_ = json.NewEncoder(w).Encode([]client.Feed{feed})
		case r.Method == http.MethodGet && r.URL.Path == "/v1/feeds/42":
			_ = json.NewEncoder(w).Encode(&feed)
		case r.Method == http.MethodPut && r.URL.Path == "/v1/feeds/42":
			w.WriteHeader(http.StatusCreated)
			updated := feed
			updated.Title = "Example Renamed"
			_ = json.NewEncoder(w).Encode(&updated)
		case r.Method == http.MethodPut && r.URL.Path == "/v1/feeds/42/refresh":
			w.WriteHeader(http.StatusNoContent)
		case r.Method == http.MethodPut && r.URL.Path == "/v1/feeds/42/mark-all-as-read":
			w.WriteHeader(http.StatusNoContent)
		case r.Method == http.MethodDelete && r.URL.Path == "/v1/feeds/42":
			w.WriteHeader(http.StatusNoContent)
		default:
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(map[string]string{"error_message": "not found"})
		}
	}))
	defer srv.Close()

	// Trailing slash on the base URL must not produce double slashes in
	// request paths; the default handler above would catch that as a 404.
	c, err := client.New(srv.URL+"/", client.WithAPIKey("secret"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })
	ctx := context.Background()

	// Discover
	subs, err := c.Discover(ctx, client.DiscoverRequest{URL: "http://example.org/"})
	if err != nil {
		t.Fatalf("Discover error: %v", err)
	}
	if len(subs) != 1 || subs[0].URL != feed.FeedURL {
		t.Fatalf("unexpected subscriptions %#v", subs)
	}

	// CreateFeed
	feedID, err := c.CreateFeed(ctx, client.FeedCreationRequest{FeedURL: subs[0].URL})
	if err != nil {
		t.Fatalf("CreateFeed error: %v", err)
	}
	if feedID != 42 {
		t.Fatalf("feed id mismatch want 42 got %d", feedID)
	}

	// ListFeeds
	feeds, err := c.ListFeeds(ctx)
	if err != nil {
		t.Fatalf("ListFeeds error: %v", err)
	}
	if len(feeds) != 1 || feeds[0].ID != 42 {
		t.Fatalf("unexpected feed list %#v", feeds)
	}

	// GetFeed
	got, err := c.GetFeed(ctx, feedID)
	if err != nil {
		t.Fatalf("GetFeed error: %v", err)
	}
	if got.Title != "Example" {
		t.Fatalf("feed title mismatch got %q", got.Title)
	}

	// UpdateFeed
	renamed, err := c.UpdateFeed(ctx, feedID, client.FeedModificationRequest{Title: client.Ptr("Example Renamed")})
	if err != nil {
		t.Fatalf("UpdateFeed error: %v", err)
	}
	if renamed.Title != "Example Renamed" {
		t.Fatalf("update not applied, title %q", renamed.Title)
	}

	// RefreshFeed
	if err := c.RefreshFeed(ctx, feedID); err != nil {
		t.Fatalf("RefreshFeed error: %v", err)
	}

	// MarkFeedAsRead
	if err := c.MarkFeedAsRead(ctx, feedID); err != nil {
		t.Fatalf("MarkFeedAsRead error: %v", err)
	}

	// DeleteFeed
	if err := c.DeleteFeed(ctx, feedID); err != nil {
		t.Fatalf("DeleteFeed error: %v", err)
	}
}
