package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/copperline-studio/activityfeed/internal/core/domain"
)

var (
	searchLimit int
	searchJSON  bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the activity feed",
	Long: `Searches titles, excerpts, authors and tags across the whole feed.
Matching is case insensitive and looks for the query as a substring.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 0, "maximum number of items (omit for all)")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output items as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	if feedService == nil {
		return errors.New("feed service not configured")
	}

	ctx := context.Background()

	var items []domain.ActivityItem
	if cmd.Flags().Changed("limit") {
		items = feedService.SearchActivity(ctx, args[0], searchLimit)
	} else {
		items = feedService.SearchActivity(ctx, args[0])
	}

	if searchJSON {
		return outputItemsJSON(cmd, items)
	}
	return outputItemsTable(cmd, items)
}
