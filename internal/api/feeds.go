package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/ternfeed/tern/client/internal/types"
)

// ListFeeds returns every feed of the authenticated user.
func ListFeeds(ctx context.Context, hc *http.Client, baseURL string) ([]*types.Feed, error) {
	var feeds []*types.Feed
	if err := doJSON(ctx, hc, http.MethodGet, endpoint(baseURL, "/feeds"), nil, http.StatusOK, &feeds); err != nil {
		return nil, err
	}
	return feeds, nil
}

// ListCategoryFeeds returns the feeds grouped under one category.
func ListCategoryFeeds(ctx context.Context, hc *http.Client, baseURL string, categoryID int64) ([]*types.Feed, error) {
	url := endpoint(baseURL, fmt.Sprintf("/categories/%d/feeds", categoryID))
	var feeds []*types.Feed
	if err := doJSON(ctx, hc, http.MethodGet, url, nil, http.StatusOK, &feeds); err != nil {
		return nil, err
	}
	return feeds, nil
}

// GetFeed retrieves a single feed by ID.
func GetFeed(ctx context.Context, hc *http.Client, baseURL string, feedID int64) (*types.Feed, error) {
	url := endpoint(baseURL, fmt.Sprintf("/feeds/%d", feedID))
	var feed types.Feed
	if err := doJSON(ctx, hc, http.MethodGet, url, nil, http.StatusOK, &feed); err != nil {
		return nil, err
	}
	return &feed, nil
}

// CreateFeed subscribes to a feed. The server acknowledges with only the new
// feed's identifier, which is returned as-is.
func CreateFeed(ctx context.Context, hc *http.Client, baseURL string, req types.FeedCreationRequest) (int64, error) {
	var created types.FeedCreationResponse
	if err := doJSON(ctx, hc, http.MethodPost, endpoint(baseURL, "/feeds"), req, http.StatusCreated, &created); err != nil {
		return 0, err
	}
	return created.FeedID, nil
}

// UpdateFeed modifies feed settings; nil fields in req are left unchanged.
func UpdateFeed(ctx context.Context, hc *http.Client, baseURL string, feedID int64, req types.FeedModificationRequest) (*types.Feed, error) {
	url := endpoint(baseURL, fmt.Sprintf("/feeds/%d", feedID))
	var feed types.Feed
	if err := doJSON(ctx, hc, http.MethodPut, url, req, http.StatusCreated, &feed); err != nil {
		return nil, err
	}
	return &feed, nil
}

// RefreshAllFeeds asks the server to refresh every feed in the background.
func RefreshAllFeeds(ctx context.Context, hc *http.Client, baseURL string) error {
	return doJSON(ctx, hc, http.MethodPut, endpoint(baseURL, "/feeds/refresh"), nil, anyBelow400, nil)
}

// RefreshFeed asks the server to refresh one feed synchronously.
func RefreshFeed(ctx context.Context, hc *http.Client, baseURL string, feedID int64) error {
	url := endpoint(baseURL, fmt.Sprintf("/feeds/%d/refresh", feedID))
	return doJSON(ctx, hc, http.MethodPut, url, nil, anyBelow400, nil)
}

// DeleteFeed removes a feed and its entries. Backend returns 204 No Content on success.
func DeleteFeed(ctx context.Context, hc *http.Client, baseURL string, feedID int64) error {
	url := endpoint(baseURL, fmt.Sprintf("/feeds/%d", feedID))
	return doJSON(ctx, hc, http.MethodDelete, url, nil, http.StatusNoContent, nil)
}

// MarkFeedAsRead marks every entry of the feed as read. Backend returns 204.
func MarkFeedAsRead(ctx context.Context, hc *http.Client, baseURL string, feedID int64) error {
	url := endpoint(baseURL, fmt.Sprintf("/feeds/%d/mark-all-as-read", feedID))
	return doJSON(ctx, hc, http.MethodPut, url, nil, http.StatusNoContent, nil)
}

// GetFeedCounters returns read and unread totals for every feed.
func GetFeedCounters(ctx context.Context, hc *http.Client, baseURL string) (*types.FeedCounters, error) {
	var counters types.FeedCounters
	if err := doJSON(ctx, hc, http.MethodGet, endpoint(baseURL, "/feeds/counters"), nil, http.StatusOK, &counters); err != nil {
		return nil, err
	}
	return &counters, nil
}

// Discover probes a website for subscribable feeds.
func Discover(ctx context.Context, hc *http.Client, baseURL string, req types.DiscoverRequest) ([]*types.Subscription, error) {
	var subscriptions []*types.Subscription
	if err := doJSON(ctx, hc, http.MethodPost, endpoint(baseURL, "/discover"), req, http.StatusOK, &subscriptions); err != nil {
		return nil, err
	}
	return subscriptions, nil
}
