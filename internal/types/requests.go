package types

// ------------------------------
// Request Types
// ------------------------------
//
// Creation requests serialize their fields as provided: optional members
// carry omitempty and required members are always present. Modification
// requests follow a different rule and use pointer fields throughout: a nil
// pointer is omitted from the body while a pointer to a zero value (false,
// 0, "") is serialized, so callers can explicitly reset server-side state.

// FeedCreationRequest holds parameters for subscribing to a feed
type FeedCreationRequest struct {
	FeedURL                     string `json:"feed_url"`
	CategoryID                  int64  `json:"category_id,omitempty"`
	Username                    string `json:"username,omitempty"`
	Password                    string `json:"password,omitempty"`
	UserAgent                   string `json:"user_agent,omitempty"`
	Cookie                      string `json:"cookie,omitempty"`
	Crawler                     bool   `json:"crawler,omitempty"`
	Disabled                    bool   `json:"disabled,omitempty"`
	IgnoreHTTPCache             bool   `json:"ignore_http_cache,omitempty"`
	AllowSelfSignedCertificates bool   `json:"allow_self_signed_certificates,omitempty"`
	FetchViaProxy               bool   `json:"fetch_via_proxy,omitempty"`
	HideGlobally                bool   `json:"hide_globally,omitempty"`
	ScraperRules                string `json:"scraper_rules,omitempty"`
	RewriteRules                string `json:"rewrite_rules,omitempty"`
	BlocklistRules              string `json:"blocklist_rules,omitempty"`
	KeeplistRules               string `json:"keeplist_rules,omitempty"`
}

// FeedModificationRequest holds the mutable fields of a feed; nil means
// leave unchanged
type FeedModificationRequest struct {
	FeedURL                     *string `json:"feed_url,omitempty"`
	SiteURL                     *string `json:"site_url,omitempty"`
	Title                       *string `json:"title,omitempty"`
	CategoryID                  *int64  `json:"category_id,omitempty"`
	Username                    *string `json:"username,omitempty"`
	Password                    *string `json:"password,omitempty"`
	UserAgent                   *string `json:"user_agent,omitempty"`
	Cookie                      *string `json:"cookie,omitempty"`
	Crawler                     *bool   `json:"crawler,omitempty"`
	Disabled                    *bool   `json:"disabled,omitempty"`
	IgnoreHTTPCache             *bool   `json:"ignore_http_cache,omitempty"`
	AllowSelfSignedCertificates *bool   `json:"allow_self_signed_certificates,omitempty"`
	FetchViaProxy               *bool   `json:"fetch_via_proxy,omitempty"`
	HideGlobally                *bool   `json:"hide_globally,omitempty"`
	ScraperRules                *string `json:"scraper_rules,omitempty"`
	RewriteRules                *string `json:"rewrite_rules,omitempty"`
	BlocklistRules              *string `json:"blocklist_rules,omitempty"`
	KeeplistRules               *string `json:"keeplist_rules,omitempty"`
}

// DiscoverRequest holds parameters for feed discovery on a website
type DiscoverRequest struct {
	URL           string `json:"url"`
	Username      string `json:"username,omitempty"`
	Password      string `json:"password,omitempty"`
	UserAgent     string `json:"user_agent,omitempty"`
	FetchViaProxy bool   `json:"fetch_via_proxy,omitempty"`
}

// UserCreationRequest holds parameters for a new account; every field is
// serialized as-is, including is_admin=false
type UserCreationRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	IsAdmin  bool   `json:"is_admin"`
}

// UserModificationRequest holds the mutable fields of a user; nil means
// leave unchanged
type UserModificationRequest struct {
	Username          *string `json:"username,omitempty"`
	Password          *string `json:"password,omitempty"`
	IsAdmin           *bool   `json:"is_admin,omitempty"`
	Theme             *string `json:"theme,omitempty"`
	Language          *string `json:"language,omitempty"`
	Timezone          *string `json:"timezone,omitempty"`
	EntryDirection    *string `json:"entry_sorting_direction,omitempty"`
	EntryOrder        *string `json:"entry_sorting_order,omitempty"`
	Stylesheet        *string `json:"stylesheet,omitempty"`
	GoogleID          *string `json:"google_id,omitempty"`
	OpenIDConnectID   *string `json:"openid_connect_id,omitempty"`
	EntriesPerPage    *int    `json:"entries_per_page,omitempty"`
	KeyboardShortcuts *bool   `json:"keyboard_shortcuts,omitempty"`
	ShowReadingTime   *bool   `json:"show_reading_time,omitempty"`
	EntrySwipe        *bool   `json:"entry_swipe,omitempty"`
	DisplayMode       *string `json:"display_mode,omitempty"`
	MarkReadOnView    *bool   `json:"mark_read_on_view,omitempty"`
}

// EntryModificationRequest holds the mutable fields of an entry; nil means
// leave unchanged
type EntryModificationRequest struct {
	Title   *string `json:"title,omitempty"`
	Content *string `json:"content,omitempty"`
}

// EntryImportRequest holds parameters for importing a single entry into a
// feed; URL is mandatory and checked locally before any request is sent
type EntryImportRequest struct {
	URL     string `json:"url"`
	Title   string `json:"title,omitempty"`
	Content string `json:"content,omitempty"`
	Author  string `json:"author,omitempty"`
}

// EntriesStatusUpdateRequest is the bulk status change payload
type EntriesStatusUpdateRequest struct {
	EntryIDs []int64 `json:"entry_ids"`
	Status   string  `json:"status"`
}

// EnclosureUpdateRequest carries the playback position of a media enclosure
type EnclosureUpdateRequest struct {
	MediaProgression int `json:"media_progression"`
}

// APIKeyCreationRequest holds parameters for minting an API key
type APIKeyCreationRequest struct {
	Description string `json:"description"`
}
