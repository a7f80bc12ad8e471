package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/ternfeed/tern/client/internal/types"
)

// GetFeedIcon returns the icon payload associated with a feed.
func GetFeedIcon(ctx context.Context, hc *http.Client, baseURL string, feedID int64) (*types.Icon, error) {
	url := endpoint(baseURL, fmt.Sprintf("/feeds/%d/icon", feedID))
	var icon types.Icon
	if err := doJSON(ctx, hc, http.MethodGet, url, nil, http.StatusOK, &icon); err != nil {
		return nil, err
	}
	return &icon, nil
}

// GetIcon returns an icon payload by icon ID.
func GetIcon(ctx context.Context, hc *http.Client, baseURL string, iconID int64) (*types.Icon, error) {
	url := endpoint(baseURL, fmt.Sprintf("/icons/%d", iconID))
	var icon types.Icon
	if err := doJSON(ctx, hc, http.MethodGet, url, nil, http.StatusOK, &icon); err != nil {
		return nil, err
	}
	return &icon, nil
}
