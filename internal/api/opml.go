package api

import (
	"context"
	"net/http"

	"github.com/ternfeed/tern/client/internal/types"
)

// ExportFeeds downloads the subscription list as raw OPML XML.
func ExportFeeds(ctx context.Context, hc *http.Client, baseURL string) (string, error) {
	return doText(ctx, hc, endpoint(baseURL, "/export"))
}

// ImportFeeds uploads an OPML document verbatim and returns the server's
// acknowledgement.
func ImportFeeds(ctx context.Context, hc *http.Client, baseURL, opml string) (*types.OPMLImportResponse, error) {
	var result types.OPMLImportResponse
	if err := doRawUpload(ctx, hc, http.MethodPost, endpoint(baseURL, "/import"), opml, http.StatusCreated, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
