// Package cli provides the command-line interface for activityfeed.
// Commands drive the core feed service through the driving ports and
// print to the cobra output streams, which keeps them testable.
package cli

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/copperline-studio/activityfeed/internal/adapters/driven/config/file"
	"github.com/copperline-studio/activityfeed/internal/adapters/driven/content/jsonfile"
	"github.com/copperline-studio/activityfeed/internal/adapters/driven/content/markdown"
	"github.com/copperline-studio/activityfeed/internal/adapters/driven/content/sqlite"
	"github.com/copperline-studio/activityfeed/internal/core/ports/driven"
	"github.com/copperline-studio/activityfeed/internal/core/ports/driving"
	"github.com/copperline-studio/activityfeed/internal/core/services"
	"github.com/copperline-studio/activityfeed/internal/logger"
)

var version = "0.1.0"

var (
	verbose   bool
	configDir string
)

// Services the commands run against. Wired by initServices on first
// execution; tests swap in mocks and mark servicesReady.
var (
	feedService   driving.FeedService
	settingsStore driven.SettingsStore
	servicesReady bool
)

var rootCmd = &cobra.Command{
	Use:   "activityfeed",
	Short: "Aggregate site content into one activity feed",
	Long: `Activityfeed merges blog posts, community profiles and product
entries from configured content sources into a single date-sorted feed.

Sources are read fresh on every command, so the feed always reflects
the files on disk. A source that fails to load is skipped; the rest of
the feed still renders.

Configure sources with 'activityfeed config set', then query the feed:

  activityfeed config set content.posts_dir ./content/posts
  activityfeed recent
  activityfeed search "release"`,
	SilenceUsage:      true,
	PersistentPreRunE: initServices,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configDir, "config", "", "config directory (default ~/.activityfeed)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// initServices wires the real services on first run. Already-wired
// services (including test mocks) are left alone.
func initServices(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)

	if servicesReady {
		return nil
	}

	// Best effort; a missing .env file is the normal case.
	_ = godotenv.Load()

	dir := configDir
	if dir == "" {
		dir = os.Getenv("ACTIVITYFEED_CONFIG_DIR")
	}

	store, err := file.NewSettingsStore(dir)
	if err != nil {
		return fmt.Errorf("failed to open settings: %w", err)
	}
	settingsStore = store

	cfg := services.NewConfigStore()
	cfg.Configure(buildLoaders(store))
	feedService = services.NewFeedService(cfg)

	servicesReady = true
	return nil
}

// buildLoaders maps settings to loader functions. File-based sources
// win over the database for each collection; a collection with no
// configured source stays off.
func buildLoaders(settings driven.SettingsStore) driven.Config {
	var cfg driven.Config

	if dir := settings.GetString(driven.SettingPostsDir); dir != "" {
		cfg.LoadBlogPosts = markdown.New(dir).Load
	}
	if path := settings.GetString(driven.SettingProfilesFile); path != "" {
		cfg.LoadProfiles = jsonfile.NewProfiles(path).Load
	}
	if path := settings.GetString(driven.SettingProductsFile); path != "" {
		cfg.LoadProducts = jsonfile.NewProducts(path).Load
	}

	dbPath := settings.GetString(driven.SettingDatabase)
	if dbPath == "" {
		return cfg
	}
	if cfg.LoadBlogPosts != nil && cfg.LoadProfiles != nil && cfg.LoadProducts != nil {
		return cfg
	}

	store, err := sqlite.Open(dbPath)
	if err != nil {
		logger.Warn("Content database unavailable: %v", err)
		return cfg
	}

	if cfg.LoadBlogPosts == nil {
		cfg.LoadBlogPosts = store.Posts
	}
	if cfg.LoadProfiles == nil {
		cfg.LoadProfiles = store.Profiles
	}
	if cfg.LoadProducts == nil {
		cfg.LoadProducts = store.Products
	}
	return cfg
}
