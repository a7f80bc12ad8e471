package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/ternfeed/tern/client/internal/types"
)

// ListAPIKeys returns every API key of the authenticated user.
func ListAPIKeys(ctx context.Context, hc *http.Client, baseURL string) ([]*types.APIKey, error) {
	var keys []*types.APIKey
	if err := doJSON(ctx, hc, http.MethodGet, endpoint(baseURL, "/api-keys"), nil, http.StatusOK, &keys); err != nil {
		return nil, err
	}
	return keys, nil
}

// CreateAPIKey mints a new API key; the token is only returned here.
func CreateAPIKey(ctx context.Context, hc *http.Client, baseURL, description string) (*types.APIKey, error) {
	req := types.APIKeyCreationRequest{Description: description}
	var key types.APIKey
	if err := doJSON(ctx, hc, http.MethodPost, endpoint(baseURL, "/api-keys"), req, http.StatusCreated, &key); err != nil {
		return nil, err
	}
	return &key, nil
}

// DeleteAPIKey revokes an API key. Backend returns 204 No Content on success.
func DeleteAPIKey(ctx context.Context, hc *http.Client, baseURL string, apiKeyID int64) error {
	url := endpoint(baseURL, fmt.Sprintf("/api-keys/%d", apiKeyID))
	return doJSON(ctx, hc, http.MethodDelete, url, nil, http.StatusNoContent, nil)
}
