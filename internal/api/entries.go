package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/ternfeed/tern/client/internal/types"
)

// ListEntries returns entries across all feeds, narrowed by filter.
func ListEntries(ctx context.Context, hc *http.Client, baseURL string, filter *types.EntryFilter) (*types.EntryResultSet, error) {
	url, err := entriesURL(endpoint(baseURL, "/entries"), filter)
	if err != nil {
		return nil, err
	}
	var result types.EntryResultSet
	if err := doJSON(ctx, hc, http.MethodGet, url, nil, http.StatusOK, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetEntry retrieves a single entry by ID.
func GetEntry(ctx context.Context, hc *http.Client, baseURL string, entryID int64) (*types.Entry, error) {
	url := endpoint(baseURL, fmt.Sprintf("/entries/%d", entryID))
	var entry types.Entry
	if err := doJSON(ctx, hc, http.MethodGet, url, nil, http.StatusOK, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

// ListFeedEntries returns the entries of one feed, narrowed by filter.
func ListFeedEntries(ctx context.Context, hc *http.Client, baseURL string, feedID int64, filter *types.EntryFilter) (*types.EntryResultSet, error) {
	url, err := entriesURL(endpoint(baseURL, fmt.Sprintf("/feeds/%d/entries", feedID)), filter)
	if err != nil {
		return nil, err
	}
	var result types.EntryResultSet
	if err := doJSON(ctx, hc, http.MethodGet, url, nil, http.StatusOK, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetFeedEntry retrieves one entry scoped to its feed.
func GetFeedEntry(ctx context.Context, hc *http.Client, baseURL string, feedID, entryID int64) (*types.Entry, error) {
	url := endpoint(baseURL, fmt.Sprintf("/feeds/%d/entries/%d", feedID, entryID))
	var entry types.Entry
	if err := doJSON(ctx, hc, http.MethodGet, url, nil, http.StatusOK, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

// ListCategoryEntries returns the entries of one category, narrowed by filter.
func ListCategoryEntries(ctx context.Context, hc *http.Client, baseURL string, categoryID int64, filter *types.EntryFilter) (*types.EntryResultSet, error) {
	url, err := entriesURL(endpoint(baseURL, fmt.Sprintf("/categories/%d/entries", categoryID)), filter)
	if err != nil {
		return nil, err
	}
	var result types.EntryResultSet
	if err := doJSON(ctx, hc, http.MethodGet, url, nil, http.StatusOK, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetCategoryEntry retrieves one entry scoped to its category.
func GetCategoryEntry(ctx context.Context, hc *http.Client, baseURL string, categoryID, entryID int64) (*types.Entry, error) {
	url := endpoint(baseURL, fmt.Sprintf("/categories/%d/entries/%d", categoryID, entryID))
	var entry types.Entry
	if err := doJSON(ctx, hc, http.MethodGet, url, nil, http.StatusOK, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

// UpdateEntry rewrites the title or content of an entry; nil fields in req
// are left unchanged.
func UpdateEntry(ctx context.Context, hc *http.Client, baseURL string, entryID int64, req types.EntryModificationRequest) (*types.Entry, error) {
	url := endpoint(baseURL, fmt.Sprintf("/entries/%d", entryID))
	var entry types.Entry
	if err := doJSON(ctx, hc, http.MethodPut, url, req, http.StatusCreated, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

// UpdateEntriesStatus sets the status of several entries in one call.
func UpdateEntriesStatus(ctx context.Context, hc *http.Client, baseURL string, entryIDs []int64, status string) error {
	req := types.EntriesStatusUpdateRequest{EntryIDs: entryIDs, Status: status}
	return doJSON(ctx, hc, http.MethodPut, endpoint(baseURL, "/entries"), req, anyBelow400, nil)
}

// FetchEntryContent downloads and scrapes the original article, returning
// the extracted content.
func FetchEntryContent(ctx context.Context, hc *http.Client, baseURL string, entryID int64) (string, error) {
	url := endpoint(baseURL, fmt.Sprintf("/entries/%d/fetch-content", entryID))
	var result types.EntryContentResponse
	if err := doJSON(ctx, hc, http.MethodGet, url, nil, http.StatusOK, &result); err != nil {
		return "", err
	}
	return result.Content, nil
}

// ToggleBookmark flips the starred flag of an entry.
func ToggleBookmark(ctx context.Context, hc *http.Client, baseURL string, entryID int64) error {
	url := endpoint(baseURL, fmt.Sprintf("/entries/%d/bookmark", entryID))
	return doJSON(ctx, hc, http.MethodPut, url, nil, anyBelow400, nil)
}

// SaveEntry sends an entry to the configured third-party services. Backend
// acknowledges with 202 Accepted and no body.
func SaveEntry(ctx context.Context, hc *http.Client, baseURL string, entryID int64) error {
	url := endpoint(baseURL, fmt.Sprintf("/entries/%d/save", entryID))
	return doJSON(ctx, hc, http.MethodPost, url, nil, http.StatusAccepted, nil)
}

// ImportEntry adds an external article to a feed. The URL is validated
// locally; an invalid request never reaches the wire.
func ImportEntry(ctx context.Context, hc *http.Client, baseURL string, feedID int64, req types.EntryImportRequest) (*types.Entry, error) {
	if err := types.ValidateEntryImport(&req); err != nil {
		return nil, err
	}
	url := endpoint(baseURL, fmt.Sprintf("/feeds/%d/entries/import", feedID))
	var entry types.Entry
	if err := doJSON(ctx, hc, http.MethodPost, url, req, http.StatusCreated, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

// entriesURL appends encoded filter parameters to an entries endpoint.
func entriesURL(base string, filter *types.EntryFilter) (string, error) {
	values, err := filter.Values()
	if err != nil {
		return "", err
	}
	if len(values) == 0 {
		return base, nil
	}
	return base + "?" + values.Encode(), nil
}
