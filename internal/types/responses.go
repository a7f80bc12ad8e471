package types

// ------------------------------
// Response Types
// ------------------------------

// EntryResultSet wraps paginated entry listings
type EntryResultSet struct {
	Total   int      `json:"total"`
	Entries []*Entry `json:"entries"`
}

// FeedCreationResponse carries the identifier of a newly created feed;
// the server returns only this, not the full feed object
type FeedCreationResponse struct {
	FeedID int64 `json:"feed_id"`
}

// OPMLImportResponse is the acknowledgement returned by a subscription import
type OPMLImportResponse struct {
	Message string `json:"message"`
}

// IntegrationsStatusResponse reports whether any third-party integration is
// configured for the current user
type IntegrationsStatusResponse struct {
	HasIntegrations bool `json:"has_integrations"`
}

// EntryContentResponse wraps the scraped content of a single entry
type EntryContentResponse struct {
	Content string `json:"content"`
}
