package client

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"github.com/ternfeed/tern/client/internal/api"
)

// Version is the SDK release tag; it is reported in the default User-Agent.
const Version = "0.4.0"

const defaultTimeout = 30 * time.Second

// --------------------------------------------------------------------
// (Functional options live in options.go, errors in errors.go)
// --------------------------------------------------------------------

// --------------------------------------------------------------------
// Client core
// --------------------------------------------------------------------

type Client struct {
	baseURL   string
	http      *http.Client
	ownsHTTP  bool // true when New built the http.Client itself
	apiKey    string
	username  string
	password  string
	userAgent string

	closedOnce uint32 // ensures Close is idempotent
}

// New constructs a Client for the server at baseURL. Credentials must be
// supplied through WithAPIKey or WithBasicAuth; further behaviour can be
// adjusted via functional options.
//
// baseURL must use the http or https scheme. A single trailing slash is
// tolerated and stripped, so "https://reader.example.org/" and
// "https://reader.example.org" address the same server.
func New(baseURL string, opts ...Option) (*Client, error) {
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		return nil, fmt.Errorf("%w: %q", ErrInvalidBaseURL, baseURL)
	}

	c := &Client{
		baseURL:   strings.TrimSuffix(baseURL, "/"),
		http:      &http.Client{Timeout: defaultTimeout},
		ownsHTTP:  true,
		userAgent: "tern-go-client/" + Version,
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	if c.apiKey == "" && c.username == "" {
		return nil, ErrNoCredentials
	}

	// Wrap the HTTP transport so every request carries credentials and is
	// counted by the client metrics.
	c.wrapTransport()

	return c, nil
}

// wrapTransport layers the metrics and credential round-trippers over the
// configured base transport. Options run before this, so a debug transport
// installed by WithDebugLogging sits closest to the wire and its dumps
// include the injected headers.
func (c *Client) wrapTransport() {
	base := c.http.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	base = &metricsTransport{base: base}
	c.http.Transport = &authTransport{
		base:      base,
		apiKey:    c.apiKey,
		username:  c.username,
		password:  c.password,
		userAgent: c.userAgent,
	}
}

// authTransport wraps an http.RoundTripper to stamp credentials and the
// User-Agent on every outgoing request. The API key takes precedence over
// basic credentials when both are configured.
type authTransport struct {
	base      http.RoundTripper
	apiKey    string
	username  string
	password  string
	userAgent string
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Clone the request to avoid modifying the original
	cloned := req.Clone(req.Context())
	if t.apiKey != "" {
		cloned.Header.Set("X-Auth-Token", t.apiKey)
	} else {
		cloned.SetBasicAuth(t.username, t.password)
	}
	if t.userAgent != "" {
		cloned.Header.Set("User-Agent", t.userAgent)
	}
	return t.base.RoundTrip(cloned)
}

// CloseIdleConnections forwards to the base transport; without it the
// wrapper would hide the method from http.Client.CloseIdleConnections.
func (t *authTransport) CloseIdleConnections() { closeIdleConnections(t.base) }

func closeIdleConnections(rt http.RoundTripper) {
	if ci, ok := rt.(interface{ CloseIdleConnections() }); ok {
		ci.CloseIdleConnections()
	}
}

// Close releases idle connections held by a client-owned transport. It is a
// no-op when the http.Client was injected via WithHTTPClient. Safe to call
// multiple times.
func (c *Client) Close() error {
	if !atomic.CompareAndSwapUint32(&c.closedOnce, 0, 1) {
		return nil
	}
	if c.ownsHTTP {
		c.http.CloseIdleConnections()
	}
	return nil
}

// --------------------------------------------------------------------
// Feed operations - delegated to internal/api
// --------------------------------------------------------------------

// ListFeeds returns every feed of the authenticated user.
func (c *Client) ListFeeds(ctx context.Context) ([]*Feed, error) {
	return api.ListFeeds(ctx, c.http, c.baseURL)
}

// ListCategoryFeeds returns the feeds that belong to the given category.
func (c *Client) ListCategoryFeeds(ctx context.Context, categoryID int64) ([]*Feed, error) {
	return api.ListCategoryFeeds(ctx, c.http, c.baseURL, categoryID)
}

// GetFeed retrieves a single feed by ID.
func (c *Client) GetFeed(ctx context.Context, feedID int64) (*Feed, error) {
	return api.GetFeed(ctx, c.http, c.baseURL, feedID)
}

// CreateFeed subscribes to a feed and returns the new feed's ID.
func (c *Client) CreateFeed(ctx context.Context, req FeedCreationRequest) (int64, error) {
	return api.CreateFeed(ctx, c.http, c.baseURL, req)
}

// UpdateFeed applies the non-nil fields of req to the feed and returns the
// updated feed.
func (c *Client) UpdateFeed(ctx context.Context, feedID int64, req FeedModificationRequest) (*Feed, error) {
	return api.UpdateFeed(ctx, c.http, c.baseURL, feedID, req)
}

// RefreshAllFeeds asks the server to refresh every feed in the background.
func (c *Client) RefreshAllFeeds(ctx context.Context) error {
	return api.RefreshAllFeeds(ctx, c.http, c.baseURL)
}

// RefreshFeed fetches the feed synchronously on the server.
func (c *Client) RefreshFeed(ctx context.Context, feedID int64) error {
	return api.RefreshFeed(ctx, c.http, c.baseURL, feedID)
}

// DeleteFeed removes the feed subscription.
func (c *Client) DeleteFeed(ctx context.Context, feedID int64) error {
	return api.DeleteFeed(ctx, c.http, c.baseURL, feedID)
}

// MarkFeedAsRead marks every entry of the feed as read.
func (c *Client) MarkFeedAsRead(ctx context.Context, feedID int64) error {
	return api.MarkFeedAsRead(ctx, c.http, c.baseURL, feedID)
}

// GetFeedCounters returns per-feed read and unread entry counts.
func (c *Client) GetFeedCounters(ctx context.Context) (*FeedCounters, error) {
	return api.GetFeedCounters(ctx, c.http, c.baseURL)
}

// Discover probes a website URL for syndication feeds.
func (c *Client) Discover(ctx context.Context, req DiscoverRequest) ([]*Subscription, error) {
	return api.Discover(ctx, c.http, c.baseURL, req)
}

// --------------------------------------------------------------------
// Entry operations - delegated to internal/api
// --------------------------------------------------------------------

// ListEntries returns entries across all feeds, narrowed by filter.
// A nil filter returns the server defaults.
func (c *Client) ListEntries(ctx context.Context, filter *EntryFilter) (*EntryResultSet, error) {
	return api.ListEntries(ctx, c.http, c.baseURL, filter)
}

// ListFeedEntries returns entries of one feed, narrowed by filter.
func (c *Client) ListFeedEntries(ctx context.Context, feedID int64, filter *EntryFilter) (*EntryResultSet, error) {
	return api.ListFeedEntries(ctx, c.http, c.baseURL, feedID, filter)
}

// ListCategoryEntries returns entries of one category, narrowed by filter.
func (c *Client) ListCategoryEntries(ctx context.Context, categoryID int64, filter *EntryFilter) (*EntryResultSet, error) {
	return api.ListCategoryEntries(ctx, c.http, c.baseURL, categoryID, filter)
}

// GetEntry retrieves a single entry by ID.
func (c *Client) GetEntry(ctx context.Context, entryID int64) (*Entry, error) {
	return api.GetEntry(ctx, c.http, c.baseURL, entryID)
}

// GetFeedEntry retrieves an entry scoped to the given feed.
func (c *Client) GetFeedEntry(ctx context.Context, feedID, entryID int64) (*Entry, error) {
	return api.GetFeedEntry(ctx, c.http, c.baseURL, feedID, entryID)
}

// GetCategoryEntry retrieves an entry scoped to the given category.
func (c *Client) GetCategoryEntry(ctx context.Context, categoryID, entryID int64) (*Entry, error) {
	return api.GetCategoryEntry(ctx, c.http, c.baseURL, categoryID, entryID)
}

// UpdateEntry overrides the title and/or content of an entry and returns the
// updated entry. Nil fields are left untouched.
func (c *Client) UpdateEntry(ctx context.Context, entryID int64, req EntryModificationRequest) (*Entry, error) {
	return api.UpdateEntry(ctx, c.http, c.baseURL, entryID, req)
}

// UpdateEntriesStatus sets the status ("read", "unread" or "removed") of the
// given entries in one call.
func (c *Client) UpdateEntriesStatus(ctx context.Context, entryIDs []int64, status string) error {
	return api.UpdateEntriesStatus(ctx, c.http, c.baseURL, entryIDs, status)
}

// FetchEntryContent downloads the original article and returns the scraped
// content without persisting it.
func (c *Client) FetchEntryContent(ctx context.Context, entryID int64) (string, error) {
	return api.FetchEntryContent(ctx, c.http, c.baseURL, entryID)
}

// ToggleBookmark flips the starred flag of an entry.
func (c *Client) ToggleBookmark(ctx context.Context, entryID int64) error {
	return api.ToggleBookmark(ctx, c.http, c.baseURL, entryID)
}

// SaveEntry forwards the entry to the user's configured third-party
// integrations.
func (c *Client) SaveEntry(ctx context.Context, entryID int64) error {
	return api.SaveEntry(ctx, c.http, c.baseURL, entryID)
}

// ImportEntry adds an external article to the given feed as a new entry and
// returns it. req.URL is mandatory.
func (c *Client) ImportEntry(ctx context.Context, feedID int64, req EntryImportRequest) (*Entry, error) {
	return api.ImportEntry(ctx, c.http, c.baseURL, feedID, req)
}

// --------------------------------------------------------------------
// Category operations - delegated to internal/api
// --------------------------------------------------------------------

// ListCategories returns the user's categories.
func (c *Client) ListCategories(ctx context.Context) ([]*Category, error) {
	return api.ListCategories(ctx, c.http, c.baseURL)
}

// CreateCategory creates a category with the given title.
func (c *Client) CreateCategory(ctx context.Context, title string) (*Category, error) {
	return api.CreateCategory(ctx, c.http, c.baseURL, title)
}

// UpdateCategory renames the category.
func (c *Client) UpdateCategory(ctx context.Context, categoryID int64, title string) (*Category, error) {
	return api.UpdateCategory(ctx, c.http, c.baseURL, categoryID, title)
}

// DeleteCategory removes the category.
func (c *Client) DeleteCategory(ctx context.Context, categoryID int64) error {
	return api.DeleteCategory(ctx, c.http, c.baseURL, categoryID)
}

// RefreshCategory asks the server to refresh all feeds of the category in
// the background.
func (c *Client) RefreshCategory(ctx context.Context, categoryID int64) error {
	return api.RefreshCategory(ctx, c.http, c.baseURL, categoryID)
}

// MarkCategoryAsRead marks every entry of the category as read.
func (c *Client) MarkCategoryAsRead(ctx context.Context, categoryID int64) error {
	return api.MarkCategoryAsRead(ctx, c.http, c.baseURL, categoryID)
}

// --------------------------------------------------------------------
// User operations - delegated to internal/api
// --------------------------------------------------------------------

// GetMe returns the authenticated user.
func (c *Client) GetMe(ctx context.Context) (*User, error) {
	return api.GetMe(ctx, c.http, c.baseURL)
}

// ListUsers returns all users. Requires administrator privileges.
func (c *Client) ListUsers(ctx context.Context) ([]*User, error) {
	return api.ListUsers(ctx, c.http, c.baseURL)
}

// GetUserByID retrieves a user by numeric ID. Requires administrator
// privileges.
func (c *Client) GetUserByID(ctx context.Context, userID int64) (*User, error) {
	return api.GetUserByID(ctx, c.http, c.baseURL, userID)
}

// GetUserByUsername retrieves a user by username. Requires administrator
// privileges.
func (c *Client) GetUserByUsername(ctx context.Context, username string) (*User, error) {
	return api.GetUserByUsername(ctx, c.http, c.baseURL, username)
}

// CreateUser provisions a new user account. Requires administrator
// privileges.
func (c *Client) CreateUser(ctx context.Context, req UserCreationRequest) (*User, error) {
	return api.CreateUser(ctx, c.http, c.baseURL, req)
}

// UpdateUser applies the non-nil fields of req to the user and returns the
// updated user.
func (c *Client) UpdateUser(ctx context.Context, userID int64, req UserModificationRequest) (*User, error) {
	return api.UpdateUser(ctx, c.http, c.baseURL, userID, req)
}

// DeleteUser removes the user account. Requires administrator privileges.
func (c *Client) DeleteUser(ctx context.Context, userID int64) error {
	return api.DeleteUser(ctx, c.http, c.baseURL, userID)
}

// MarkUserAsRead marks every entry of the user as read.
func (c *Client) MarkUserAsRead(ctx context.Context, userID int64) error {
	return api.MarkUserAsRead(ctx, c.http, c.baseURL, userID)
}

// --------------------------------------------------------------------
// Icon operations - delegated to internal/api
// --------------------------------------------------------------------

// GetFeedIcon returns the icon of the given feed.
func (c *Client) GetFeedIcon(ctx context.Context, feedID int64) (*Icon, error) {
	return api.GetFeedIcon(ctx, c.http, c.baseURL, feedID)
}

// GetIcon retrieves an icon by its own ID.
func (c *Client) GetIcon(ctx context.Context, iconID int64) (*Icon, error) {
	return api.GetIcon(ctx, c.http, c.baseURL, iconID)
}

// --------------------------------------------------------------------
// Enclosure operations - delegated to internal/api
// --------------------------------------------------------------------

// GetEnclosure retrieves an enclosure by ID.
func (c *Client) GetEnclosure(ctx context.Context, enclosureID int64) (*Enclosure, error) {
	return api.GetEnclosure(ctx, c.http, c.baseURL, enclosureID)
}

// UpdateEnclosure stores the playback position of a media enclosure,
// in seconds.
func (c *Client) UpdateEnclosure(ctx context.Context, enclosureID int64, mediaProgression int) error {
	return api.UpdateEnclosure(ctx, c.http, c.baseURL, enclosureID, mediaProgression)
}

// --------------------------------------------------------------------
// OPML operations - delegated to internal/api
// --------------------------------------------------------------------

// ExportFeeds returns the user's subscriptions as an OPML document.
func (c *Client) ExportFeeds(ctx context.Context) (string, error) {
	return api.ExportFeeds(ctx, c.http, c.baseURL)
}

// ImportFeeds uploads an OPML document and subscribes to the feeds it lists.
func (c *Client) ImportFeeds(ctx context.Context, opml string) (*OPMLImportResponse, error) {
	return api.ImportFeeds(ctx, c.http, c.baseURL, opml)
}

// --------------------------------------------------------------------
// API key operations - delegated to internal/api
// --------------------------------------------------------------------

// ListAPIKeys returns the API keys of the authenticated user.
func (c *Client) ListAPIKeys(ctx context.Context) ([]*APIKey, error) {
	return api.ListAPIKeys(ctx, c.http, c.baseURL)
}

// CreateAPIKey mints a new API key with the given description. The token is
// only returned by this call.
func (c *Client) CreateAPIKey(ctx context.Context, description string) (*APIKey, error) {
	return api.CreateAPIKey(ctx, c.http, c.baseURL, description)
}

// DeleteAPIKey revokes an API key.
func (c *Client) DeleteAPIKey(ctx context.Context, apiKeyID int64) error {
	return api.DeleteAPIKey(ctx, c.http, c.baseURL, apiKeyID)
}

// --------------------------------------------------------------------
// System operations - delegated to internal/api
// --------------------------------------------------------------------

// GetVersion returns the server's bare version string. The endpoint is not
// versioned, which makes it a cheap reachability probe.
func (c *Client) GetVersion(ctx context.Context) (string, error) {
	return api.GetVersion(ctx, c.http, c.baseURL)
}

// GetVersionInfo returns detailed build information about the server.
func (c *Client) GetVersionInfo(ctx context.Context) (*VersionInfo, error) {
	return api.GetVersionInfo(ctx, c.http, c.baseURL)
}

// GetIntegrationsStatus reports whether the user has at least one
// third-party integration configured.
func (c *Client) GetIntegrationsStatus(ctx context.Context) (bool, error) {
	return api.GetIntegrationsStatus(ctx, c.http, c.baseURL)
}

// FlushHistory clears the user's reading history by flagging read entries
// as removed.
func (c *Client) FlushHistory(ctx context.Context) error {
	return api.FlushHistory(ctx, c.http, c.baseURL)
}
