package client

import "github.com/ternfeed/tern/client/internal/types"

// Public type aliases so SDK consumers can import only the client package.
type (
	// Domain entities
	Feed         = types.Feed
	FeedIcon     = types.FeedIcon
	Icon         = types.Icon
	Entry        = types.Entry
	Enclosure    = types.Enclosure
	Category     = types.Category
	User         = types.User
	Subscription = types.Subscription
	APIKey       = types.APIKey
	FeedCounters = types.FeedCounters
	VersionInfo  = types.VersionInfo

	// Requests
	FeedCreationRequest      = types.FeedCreationRequest
	FeedModificationRequest  = types.FeedModificationRequest
	DiscoverRequest          = types.DiscoverRequest
	UserCreationRequest      = types.UserCreationRequest
	UserModificationRequest  = types.UserModificationRequest
	EntryModificationRequest = types.EntryModificationRequest
	EntryImportRequest       = types.EntryImportRequest

	// Filters
	EntryFilter = types.EntryFilter

	// Responses
	EntryResultSet     = types.EntryResultSet
	OPMLImportResponse = types.OPMLImportResponse
)

// Errors re-exported in errors.go

// Ptr returns a pointer to v. It cuts down on temporaries when populating
// the pointer fields of modification requests:
//
//	client.FeedModificationRequest{Title: client.Ptr("Tech News")}
func Ptr[T any](v T) *T { return &v }
