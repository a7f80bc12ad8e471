package types

import (
	"net/url"

	"github.com/google/go-querystring/query"
)

// EntryFilter narrows entry listings. Filters are sent as query parameters
// and follow the include-if-truthy rule: a zero value (false, 0, empty
// string) is dropped from the query string entirely, so absent means
// unfiltered. This is intentionally stricter than the include-if-not-null
// rule used by modification bodies.
type EntryFilter struct {
	// Status restricts results to one entry status (read, unread, removed).
	Status string `url:"status,omitempty"`
	Offset int    `url:"offset,omitempty"`
	Limit  int    `url:"limit,omitempty"`
	// Order selects the sort column (id, status, published_at, category_title,
	// category_id).
	Order string `url:"order,omitempty"`
	// Direction is asc or desc.
	Direction string `url:"direction,omitempty"`
	// Starred selects starred entries only. Starred=false is a zero value and
	// therefore cannot be expressed through this filter; the server treats the
	// absent parameter as "no starred filter".
	Starred         bool   `url:"starred,omitempty"`
	Before          int64  `url:"before,omitempty"`
	After           int64  `url:"after,omitempty"`
	PublishedBefore int64  `url:"published_before,omitempty"`
	PublishedAfter  int64  `url:"published_after,omitempty"`
	ChangedBefore   int64  `url:"changed_before,omitempty"`
	ChangedAfter    int64  `url:"changed_after,omitempty"`
	BeforeEntryID   int64  `url:"before_entry_id,omitempty"`
	AfterEntryID    int64  `url:"after_entry_id,omitempty"`
	Search          string `url:"search,omitempty"`
	CategoryID      int64  `url:"category_id,omitempty"`
	FeedID          int64  `url:"feed_id,omitempty"`
	GloballyVisible bool   `url:"globally_visible,omitempty"`
}

// Values encodes the filter into URL query parameters, dropping zero values.
// A nil filter encodes to no parameters.
func (f *EntryFilter) Values() (url.Values, error) {
	if f == nil {
		return url.Values{}, nil
	}
	return query.Values(f)
}
