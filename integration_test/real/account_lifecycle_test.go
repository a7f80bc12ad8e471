//go:build integration
// +build integration

package client_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	client "github.com/ternfeed/tern/client"
)

func TestIntegration_ServerInfo(t *testing.T) {
	c := newIntegrationClient(t)
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	version, err := c.GetVersion(ctx)
	if err != nil {
		t.Fatalf("GetVersion: %v", err)
	}
	if version == "" {
		t.Fatalf("empty version string")
	}

	info, err := c.GetVersionInfo(ctx)
	if err != nil {
		t.Fatalf("GetVersionInfo: %v", err)
	}
	if info.Version == "" {
		t.Fatalf("empty version info %#v", info)
	}

	me, err := c.GetMe(ctx)
	if err != nil {
		t.Fatalf("GetMe: %v", err)
	}
	if me.ID == 0 || me.Username == "" {
		t.Fatalf("unexpected user %#v", me)
	}
}

func TestIntegration_CategoryLifecycle(t *testing.T) {
	c := newIntegrationClient(t)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	title := "tern-it-" + uuid.NewString()

	cat, err := c.CreateCategory(ctx, title)
	if err != nil {
		t.Fatalf("CreateCategory: %v", err)
	}
	// Clean up even when an assertion below fails.
	t.Cleanup(func() {
		cctx, ccancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer ccancel()
		_ = c.DeleteCategory(cctx, cat.ID)
	})
	if cat.Title != title {
		t.Fatalf("created title = %q, want %q", cat.Title, title)
	}

	renamed, err := c.UpdateCategory(ctx, cat.ID, title+"-renamed")
	if err != nil {
		t.Fatalf("UpdateCategory: %v", err)
	}
	if renamed.Title != title+"-renamed" {
		t.Fatalf("renamed title = %q", renamed.Title)
	}

	cats, err := c.ListCategories(ctx)
	if err != nil {
		t.Fatalf("ListCategories: %v", err)
	}
	var found bool
	for _, cc := range cats {
		if cc.ID == cat.ID {
			found = true
			break
		}
	}
	if !found {
		t.Fatalf("category %d missing from listing", cat.ID)
	}

	if err := c.MarkCategoryAsRead(ctx, cat.ID); err != nil {
		t.Fatalf("MarkCategoryAsRead: %v", err)
	}

	if err := c.DeleteCategory(ctx, cat.ID); err != nil {
		t.Fatalf("DeleteCategory: %v", err)
	}
	if _, err := c.ListCategoryFeeds(ctx, cat.ID); !client.IsNotFound(err) {
		t.Logf("ListCategoryFeeds after delete returned %v", err)
	}
}

func TestIntegration_APIKeyLifecycle(t *testing.T) {
	c := newIntegrationClient(t)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	description := "tern-it-" + uuid.NewString()

	key, err := c.CreateAPIKey(ctx, description)
	if err != nil {
		t.Fatalf("CreateAPIKey: %v", err)
	}
	t.Cleanup(func() {
		cctx, ccancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer ccancel()
		_ = c.DeleteAPIKey(cctx, key.ID)
	})
	if key.Token == "" {
		t.Fatalf("minted key has no token")
	}

	// The minted token must authenticate a fresh client.
	c2, err := client.New(integrationBaseURL(), client.WithAPIKey(key.Token))
	if err != nil {
		t.Fatalf("New with minted key: %v", err)
	}
	defer func() { _ = c2.Close() }()
	if _, err := c2.GetMe(ctx); err != nil {
		t.Fatalf("GetMe with minted key: %v", err)
	}

	if err := c.DeleteAPIKey(ctx, key.ID); err != nil {
		t.Fatalf("DeleteAPIKey: %v", err)
	}
}

func TestIntegration_EntriesCountersAndExport(t *testing.T) {
	c := newIntegrationClient(t)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	rs, err := c.ListEntries(ctx, &client.EntryFilter{Limit: 5})
	if err != nil {
		t.Fatalf("ListEntries: %v", err)
	}
	if len(rs.Entries) > 5 {
		t.Fatalf("limit not honored, got %d entries", len(rs.Entries))
	}

	if _, err := c.GetFeedCounters(ctx); err != nil {
		t.Fatalf("GetFeedCounters: %v", err)
	}

	opml, err := c.ExportFeeds(ctx)
	if err != nil {
		t.Fatalf("ExportFeeds: %v", err)
	}
	if !strings.Contains(opml, "<opml") {
		t.Fatalf("export does not look like OPML: %.80s", opml)
	}
}
