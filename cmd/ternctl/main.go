package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/ternfeed/tern/client"
	"github.com/ternfeed/tern/client/internal/config"
)

var serverURL string
var debug bool

const maxEntriesLimit = 100

func dbg(v interface{}) {
	if !debug {
		return
	}
	log.Debug().Interface("data", v).Msg("debug output")
}

func main() {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

// NewRootCmd constructs the root CLI command; exposed for unit testing.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "ternctl",
		Short: "Command line companion for a Tern feed reader server",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Initialize logger
			zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
			log.Logger = log.Output(zerolog.ConsoleWriter{
				Out:        os.Stderr,
				TimeFormat: "2006-01-02 15:04:05",
				NoColor:    true,
			})

			// Set log level based on debug flag
			if debug {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
				_ = os.Setenv("TERN_DEBUG", "true")
				log.Debug().Msg("debug logging enabled")
			} else {
				zerolog.SetGlobalLevel(zerolog.InfoLevel)
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&serverURL, "server-url", "", "Base URL of the Tern server (default TERN_SERVER_URL or http://localhost:8080)")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "Enable verbose debug output")

	// Sub-commands
	rootCmd.AddCommand(newListFeedsCmd())
	rootCmd.AddCommand(newCreateFeedCmd())
	rootCmd.AddCommand(newRefreshFeedCmd())
	rootCmd.AddCommand(newDeleteFeedCmd())
	rootCmd.AddCommand(newListEntriesCmd())
	rootCmd.AddCommand(newMarkReadCmd())
	rootCmd.AddCommand(newDiscoverCmd())
	rootCmd.AddCommand(newExportFeedsCmd())
	rootCmd.AddCommand(newImportFeedsCmd())
	rootCmd.AddCommand(newMeCmd())
	rootCmd.AddCommand(newStatusCmd())

	return rootCmd
}

// newClient builds an SDK client from TERN_* environment variables.
// A --server-url flag overrides the environment.
func newClient() (*client.Client, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	if serverURL != "" {
		cfg.ServerURL = serverURL
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	opts := []client.Option{client.WithHTTPTimeout(cfg.Timeout)}
	if cfg.APIKey != "" {
		opts = append(opts, client.WithAPIKey(cfg.APIKey))
	} else {
		opts = append(opts, client.WithBasicAuth(cfg.Username, cfg.Password))
	}

	c, err := client.New(cfg.ServerURL, opts...)
	if err != nil {
		return nil, nil, err
	}
	return c, cfg, nil
}

// ------------------ Feed Commands -------------------

func newListFeedsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list-feeds",
		Short: "List all subscribed feeds",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, cfg, err := newClient()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
			defer cancel()

			log.Debug().Str("server_url", cfg.ServerURL).Msg("listing feeds")

			feeds, err := c.ListFeeds(ctx)
			if err != nil {
				return err
			}
			dbg(feeds)
			for _, f := range feeds {
				fmt.Printf("%d\t%s\t%s\n", f.ID, f.Title, f.FeedURL)
			}
			fmt.Printf("Total: %d\n", len(feeds))
			return nil
		},
	}

	return cmd
}

func newCreateFeedCmd() *cobra.Command {
	var feedURL string
	var categoryID int64
	var crawler bool

	cmd := &cobra.Command{
		Use:   "create-feed",
		Short: "Subscribe to a new feed",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, cfg, err := newClient()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
			defer cancel()

			log.Debug().
				Str("feed_url", feedURL).
				Int64("category_id", categoryID).
				Str("server_url", cfg.ServerURL).
				Msg("creating feed")

			start := time.Now()
			feedID, err := c.CreateFeed(ctx, client.FeedCreationRequest{
				FeedURL:    feedURL,
				CategoryID: categoryID,
				Crawler:    crawler,
			})
			elapsed := time.Since(start)

			if err != nil {
				log.Error().
					Err(err).
					Str("feed_url", feedURL).
					Dur("elapsed", elapsed).
					Msg("create feed failed")
				return err
			}

			log.Debug().
				Int64("feed_id", feedID).
				Dur("elapsed", elapsed).
				Msg("create feed completed")

			fmt.Printf("Feed created: %d\n", feedID)
			return nil
		},
	}

	cmd.Flags().StringVar(&feedURL, "feed-url", "", "Feed URL (required)")
	cmd.Flags().Int64Var(&categoryID, "category-id", 0, "Category ID (optional)")
	cmd.Flags().BoolVar(&crawler, "crawler", false, "Fetch full article content instead of the feed excerpt")

	_ = cmd.MarkFlagRequired("feed-url")

	return cmd
}

func newRefreshFeedCmd() *cobra.Command {
	var feedID int64
	var all bool

	cmd := &cobra.Command{
		Use:   "refresh-feed",
		Short: "Refresh one feed (or all feeds with --all)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !all && feedID == 0 {
				return fmt.Errorf("either --feed-id or --all must be provided")
			}
			if all && feedID != 0 {
				return fmt.Errorf("provide only one of --feed-id or --all, not both")
			}

			c, cfg, err := newClient()
			if err != nil {
				return err
			}
			// Synchronous refreshes can take a while on slow upstreams.
			ctx, cancel := context.WithTimeout(cmd.Context(), 60*time.Second)
			defer cancel()

			log.Debug().
				Int64("feed_id", feedID).
				Bool("all", all).
				Str("server_url", cfg.ServerURL).
				Msg("refreshing")

			if all {
				if err := c.RefreshAllFeeds(ctx); err != nil {
					return err
				}
				fmt.Println("Refresh of all feeds scheduled")
				return nil
			}
			if err := c.RefreshFeed(ctx, feedID); err != nil {
				return err
			}
			fmt.Println("Feed refreshed")
			return nil
		},
	}

	cmd.Flags().Int64Var(&feedID, "feed-id", 0, "Feed ID (mutually exclusive with --all)")
	cmd.Flags().BoolVar(&all, "all", false, "Refresh every feed in the background")

	return cmd
}

func newDeleteFeedCmd() *cobra.Command {
	var feedID int64

	cmd := &cobra.Command{
		Use:   "delete-feed",
		Short: "Unsubscribe from a feed",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, _, err := newClient()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
			defer cancel()

			if err := c.DeleteFeed(ctx, feedID); err != nil {
				return err
			}
			fmt.Println("Feed deleted")
			return nil
		},
	}

	cmd.Flags().Int64Var(&feedID, "feed-id", 0, "Feed ID (required)")

	_ = cmd.MarkFlagRequired("feed-id")

	return cmd
}

// ------------------ Entry Commands -------------------

func newListEntriesCmd() *cobra.Command {
	var feedID int64
	var status, order, direction string
	var limit int
	var starred bool

	cmd := &cobra.Command{
		Use:   "list-entries",
		Short: "List entries, optionally narrowed to one feed",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, cfg, err := newClient()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
			defer cancel()

			limit = applyUpperBoundToLimit(limit)
			filter := &client.EntryFilter{
				Status:    status,
				Order:     order,
				Direction: direction,
				Limit:     limit,
				Starred:   starred,
			}

			log.Debug().
				Int64("feed_id", feedID).
				Str("status", status).
				Int("limit", limit).
				Str("server_url", cfg.ServerURL).
				Msg("listing entries")

			start := time.Now()
			var resp *client.EntryResultSet
			if feedID != 0 {
				resp, err = c.ListFeedEntries(ctx, feedID, filter)
			} else {
				resp, err = c.ListEntries(ctx, filter)
			}
			elapsed := time.Since(start)

			if err != nil {
				log.Error().
					Err(err).
					Int64("feed_id", feedID).
					Dur("elapsed", elapsed).
					Msg("list entries failed")
				return err
			}

			log.Debug().
				Dur("elapsed", elapsed).
				Int("total", resp.Total).
				Int("entries_returned", len(resp.Entries)).
				Msg("list entries completed")

			dbg(resp)

			// Output full JSON so automated callers (scripts, CI checks)
			// can parse the response without needing the Go client types.
			b, _ := json.MarshalIndent(resp, "", "  ")
			fmt.Println(string(b))
			return nil
		},
	}

	cmd.Flags().Int64Var(&feedID, "feed-id", 0, "Limit to one feed (optional)")
	cmd.Flags().StringVar(&status, "status", "", "Filter by status: read, unread or removed")
	cmd.Flags().StringVar(&order, "order", "", "Sort field (id, status, published_at, category_title, category_id)")
	cmd.Flags().StringVar(&direction, "direction", "", "Sort direction (asc or desc)")
	cmd.Flags().IntVar(&limit, "limit", 25, "Number of entries to return (max 100)")
	cmd.Flags().BoolVar(&starred, "starred", false, "Only starred entries")

	return cmd
}

func newMarkReadCmd() *cobra.Command {
	var entryIDs []int64

	cmd := &cobra.Command{
		Use:   "mark-read",
		Short: "Mark one or more entries as read",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, _, err := newClient()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
			defer cancel()

			if err := c.UpdateEntriesStatus(ctx, entryIDs, "read"); err != nil {
				log.Error().
					Err(err).
					Ints64("entry_ids", entryIDs).
					Msg("mark read failed")
				return err
			}
			fmt.Printf("%d entries marked as read\n", len(entryIDs))
			return nil
		},
	}

	cmd.Flags().Int64SliceVar(&entryIDs, "entry-id", nil, "Entry ID (repeatable, required)")

	_ = cmd.MarkFlagRequired("entry-id")

	return cmd
}

// ------------------ Discovery and OPML Commands -------------------

func newDiscoverCmd() *cobra.Command {
	var siteURL string

	cmd := &cobra.Command{
		Use:   "discover",
		Short: "Probe a website for syndication feeds",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, _, err := newClient()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			subs, err := c.Discover(ctx, client.DiscoverRequest{URL: siteURL})
			if err != nil {
				return err
			}
			dbg(subs)
			b, _ := json.MarshalIndent(subs, "", "  ")
			fmt.Println(string(b))
			return nil
		},
	}

	cmd.Flags().StringVar(&siteURL, "url", "", "Website URL (required)")

	_ = cmd.MarkFlagRequired("url")

	return cmd
}

func newExportFeedsCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export-feeds",
		Short: "Export all subscriptions as OPML",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, _, err := newClient()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			opml, err := c.ExportFeeds(ctx)
			if err != nil {
				return err
			}
			if output != "" {
				if err := os.WriteFile(output, []byte(opml), 0o644); err != nil {
					return err
				}
				fmt.Printf("OPML written to %s\n", output)
				return nil
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), opml)
			return err
		},
	}

	cmd.Flags().StringVar(&output, "output", "", "Write the OPML document to this file instead of stdout")

	return cmd
}

func newImportFeedsCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "import-feeds",
		Short: "Import subscriptions from an OPML file",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(file)
			if err != nil {
				return err
			}

			c, _, err := newClient()
			if err != nil {
				return err
			}
			// Imports subscribe to every listed feed; give the server room.
			ctx, cancel := context.WithTimeout(cmd.Context(), 60*time.Second)
			defer cancel()

			resp, err := c.ImportFeeds(ctx, string(data))
			if err != nil {
				log.Error().
					Err(err).
					Str("file", file).
					Msg("import failed")
				return err
			}
			fmt.Println(resp.Message)
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "OPML file to import (required)")

	_ = cmd.MarkFlagRequired("file")

	return cmd
}

// ------------------ Account and Server Commands -------------------

func newMeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "me",
		Short: "Print the authenticated user as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, _, err := newClient()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
			defer cancel()

			user, err := c.GetMe(ctx)
			if err != nil {
				return err
			}
			dbg(user)
			b, _ := json.MarshalIndent(user, "", "  ")
			fmt.Println(string(b))
			return nil
		},
	}

	return cmd
}

func newStatusCmd() *cobra.Command {
	var wait bool
	var waitTimeout time.Duration

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Check server reachability and print its version",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, cfg, err := newClient()
			if err != nil {
				return err
			}
			defer func() { _ = c.Close() }()

			if !wait {
				ctx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
				defer cancel()

				version, err := c.GetVersion(ctx)
				if err != nil {
					log.Error().Err(err).Str("server_url", cfg.ServerURL).Msg("status check failed")
					return err
				}
				fmt.Printf("Tern %s at %s\n", version, cfg.ServerURL)
				return nil
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), waitTimeout)
			defer cancel()

			exp := backoff.NewExponentialBackOff()
			exp.InitialInterval = 250 * time.Millisecond
			exp.Multiplier = 2
			exp.MaxInterval = 5 * time.Second
			exp.Reset()

			start := time.Now()
			for {
				version, err := c.GetVersion(ctx)
				if err == nil {
					log.Debug().Dur("elapsed", time.Since(start)).Msg("server became ready")
					fmt.Printf("Tern %s at %s\n", version, cfg.ServerURL)
					return nil
				}

				delay := exp.NextBackOff()
				if delay == backoff.Stop {
					return fmt.Errorf("server at %s did not become ready: %w", cfg.ServerURL, err)
				}
				log.Debug().Err(err).Dur("retry_in", delay).Msg("server not ready")
				select {
				case <-time.After(delay):
				case <-ctx.Done():
					return fmt.Errorf("server at %s did not become ready within %s: %w", cfg.ServerURL, waitTimeout, err)
				}
			}
		},
	}

	cmd.Flags().BoolVar(&wait, "wait", false, "Poll until the server becomes reachable")
	cmd.Flags().DurationVar(&waitTimeout, "wait-timeout", 30*time.Second, "How long --wait polls before giving up")

	return cmd
}

func applyUpperBoundToLimit(l int) int {
	if l <= 0 {
		return 25
	}
	if l > maxEntriesLimit {
		if debug {
			log.Warn().Msgf("limit capped at %d (requested %d)", maxEntriesLimit, l)
		}
		return maxEntriesLimit
	}
	return l
}
