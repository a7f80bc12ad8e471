package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/ternfeed/tern/client/internal/types"
)

// GetVersion probes the unversioned /version endpoint and returns the raw
// body. This is the only operation outside the /v1 prefix.
func GetVersion(ctx context.Context, hc *http.Client, baseURL string) (string, error) {
	return doText(ctx, hc, fmt.Sprintf("%s/version", baseURL))
}

// GetVersionInfo returns the structured build description of the server.
func GetVersionInfo(ctx context.Context, hc *http.Client, baseURL string) (*types.VersionInfo, error) {
	var info types.VersionInfo
	if err := doJSON(ctx, hc, http.MethodGet, endpoint(baseURL, "/version"), nil, http.StatusOK, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// GetIntegrationsStatus reports whether the user has any third-party
// integration configured.
func GetIntegrationsStatus(ctx context.Context, hc *http.Client, baseURL string) (bool, error) {
	var status types.IntegrationsStatusResponse
	if err := doJSON(ctx, hc, http.MethodGet, endpoint(baseURL, "/integrations/status"), nil, http.StatusOK, &status); err != nil {
		return false, err
	}
	return status.HasIntegrations, nil
}

// FlushHistory clears the read-entry history. Backend acknowledges with 202
// Accepted and no body.
func FlushHistory(ctx context.Context, hc *http.Client, baseURL string) error {
	return doJSON(ctx, hc, http.MethodDelete, endpoint(baseURL, "/flush-history"), nil, http.StatusAccepted, nil)
}
