package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/ternfeed/tern/client/internal/types"
)

// GetEnclosure retrieves a media attachment by ID.
func GetEnclosure(ctx context.Context, hc *http.Client, baseURL string, enclosureID int64) (*types.Enclosure, error) {
	url := endpoint(baseURL, fmt.Sprintf("/enclosures/%d", enclosureID))
	var enclosure types.Enclosure
	if err := doJSON(ctx, hc, http.MethodGet, url, nil, http.StatusOK, &enclosure); err != nil {
		return nil, err
	}
	return &enclosure, nil
}

// UpdateEnclosure stores the playback position of a media attachment.
// Backend returns 204 No Content on success.
func UpdateEnclosure(ctx context.Context, hc *http.Client, baseURL string, enclosureID int64, mediaProgression int) error {
	url := endpoint(baseURL, fmt.Sprintf("/enclosures/%d", enclosureID))
	req := types.EnclosureUpdateRequest{MediaProgression: mediaProgression}
	return doJSON(ctx, hc, http.MethodPut, url, req, http.StatusNoContent, nil)
}
