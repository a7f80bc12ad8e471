package types

import "time"

// ------------------------------
// Core Domain Entities
// ------------------------------

// Feed represents a subscribed feed
type Feed struct {
	ID                          int64     `json:"id"`
	UserID                      int64     `json:"user_id"`
	FeedURL                     string    `json:"feed_url"`
	SiteURL                     string    `json:"site_url"`
	Title                       string    `json:"title"`
	CheckedAt                   time.Time `json:"checked_at,omitempty"`
	EtagHeader                  string    `json:"etag_header,omitempty"`
	LastModifiedHeader          string    `json:"last_modified_header,omitempty"`
	ParsingErrorMessage         string    `json:"parsing_error_message,omitempty"`
	ParsingErrorCount           int       `json:"parsing_error_count,omitempty"`
	ScraperRules                string    `json:"scraper_rules,omitempty"`
	RewriteRules                string    `json:"rewrite_rules,omitempty"`
	BlocklistRules              string    `json:"blocklist_rules,omitempty"`
	KeeplistRules               string    `json:"keeplist_rules,omitempty"`
	Crawler                     bool      `json:"crawler,omitempty"`
	UserAgent                   string    `json:"user_agent,omitempty"`
	Cookie                      string    `json:"cookie,omitempty"`
	Username                    string    `json:"username,omitempty"`
	Password                    string    `json:"password,omitempty"`
	Disabled                    bool      `json:"disabled,omitempty"`
	IgnoreHTTPCache             bool      `json:"ignore_http_cache,omitempty"`
	AllowSelfSignedCertificates bool      `json:"allow_self_signed_certificates,omitempty"`
	FetchViaProxy               bool      `json:"fetch_via_proxy,omitempty"`
	HideGlobally                bool      `json:"hide_globally,omitempty"`
	Category                    *Category `json:"category,omitempty"`
	Icon                        *FeedIcon `json:"icon,omitempty"`
}

// FeedIcon is the icon reference embedded in a feed
type FeedIcon struct {
	FeedID int64 `json:"feed_id"`
	IconID int64 `json:"icon_id"`
}

// Icon carries the full icon payload served by the icon endpoints
type Icon struct {
	ID       int64  `json:"id"`
	Data     string `json:"data"`
	MimeType string `json:"mime_type"`
}

// Entry represents a single article belonging to a feed
type Entry struct {
	ID          int64        `json:"id"`
	UserID      int64        `json:"user_id"`
	FeedID      int64        `json:"feed_id"`
	Status      string       `json:"status"`
	Hash        string       `json:"hash,omitempty"`
	Title       string       `json:"title"`
	URL         string       `json:"url"`
	CommentsURL string       `json:"comments_url,omitempty"`
	PublishedAt time.Time    `json:"published_at"`
	CreatedAt   time.Time    `json:"created_at,omitempty"`
	ChangedAt   time.Time    `json:"changed_at,omitempty"`
	Content     string       `json:"content,omitempty"`
	Author      string       `json:"author,omitempty"`
	ShareCode   string       `json:"share_code,omitempty"`
	Starred     bool         `json:"starred,omitempty"`
	ReadingTime int          `json:"reading_time,omitempty"`
	Enclosures  []*Enclosure `json:"enclosures,omitempty"`
	Feed        *Feed        `json:"feed,omitempty"`
	Tags        []string     `json:"tags,omitempty"`
}

// Enclosure represents a media attachment of an entry
type Enclosure struct {
	ID               int64  `json:"id"`
	UserID           int64  `json:"user_id"`
	EntryID          int64  `json:"entry_id"`
	URL              string `json:"url"`
	MimeType         string `json:"mime_type"`
	Size             int64  `json:"size"`
	MediaProgression int    `json:"media_progression,omitempty"`
}

// Category represents a feed grouping
type Category struct {
	ID           int64  `json:"id"`
	Title        string `json:"title"`
	UserID       int64  `json:"user_id"`
	HideGlobally bool   `json:"hide_globally,omitempty"`
}

// User represents a server account
type User struct {
	ID                int64      `json:"id"`
	Username          string     `json:"username"`
	IsAdmin           bool       `json:"is_admin"`
	Theme             string     `json:"theme,omitempty"`
	Language          string     `json:"language,omitempty"`
	Timezone          string     `json:"timezone,omitempty"`
	EntryDirection    string     `json:"entry_sorting_direction,omitempty"`
	EntryOrder        string     `json:"entry_sorting_order,omitempty"`
	Stylesheet        string     `json:"stylesheet,omitempty"`
	GoogleID          string     `json:"google_id,omitempty"`
	OpenIDConnectID   string     `json:"openid_connect_id,omitempty"`
	EntriesPerPage    int        `json:"entries_per_page,omitempty"`
	KeyboardShortcuts bool       `json:"keyboard_shortcuts,omitempty"`
	ShowReadingTime   bool       `json:"show_reading_time,omitempty"`
	EntrySwipe        bool       `json:"entry_swipe,omitempty"`
	DisplayMode       string     `json:"display_mode,omitempty"`
	MarkReadOnView    bool       `json:"mark_read_on_view,omitempty"`
	LastLoginAt       *time.Time `json:"last_login_at,omitempty"`
}

// Subscription is a feed candidate returned by discovery
type Subscription struct {
	Title string `json:"title"`
	URL   string `json:"url"`
	Type  string `json:"type"`
}

// APIKey represents a bearer token usable instead of basic credentials
type APIKey struct {
	ID          int64      `json:"id"`
	UserID      int64      `json:"user_id"`
	Token       string     `json:"token"`
	Description string     `json:"description"`
	LastUsedAt  *time.Time `json:"last_used_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// FeedCounters holds per-feed read and unread totals keyed by feed ID
type FeedCounters struct {
	ReadCounters   map[int64]int `json:"reads"`
	UnreadCounters map[int64]int `json:"unreads"`
}

// VersionInfo describes the server build
type VersionInfo struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildDate string `json:"build_date"`
	GoVersion string `json:"go_version"`
	Compiler  string `json:"compiler"`
	Arch      string `json:"arch"`
	OS        string `json:"os"`
}
