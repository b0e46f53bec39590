package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/copperline-studio/activityfeed/internal/core/domain"
)

var (
	recentLimit int
	recentJSON  bool
)

var recentCmd = &cobra.Command{
	Use:   "recent",
	Short: "Show the most recent activity",
	Long: `Shows the newest items across all configured content sources,
sorted newest first. Without --limit the ten newest items are shown.`,
	Args: cobra.NoArgs,
	RunE: runRecent,
}

func init() {
	recentCmd.Flags().IntVarP(&recentLimit, "limit", "n", 10, "maximum number of items")
	recentCmd.Flags().BoolVar(&recentJSON, "json", false, "output items as JSON")
	rootCmd.AddCommand(recentCmd)
}

func runRecent(cmd *cobra.Command, _ []string) error {
	if feedService == nil {
		return errors.New("feed service not configured")
	}

	ctx := context.Background()

	var items []domain.ActivityItem
	if cmd.Flags().Changed("limit") {
		items = feedService.RecentActivity(ctx, recentLimit)
	} else {
		items = feedService.RecentActivity(ctx)
	}

	if recentJSON {
		return outputItemsJSON(cmd, items)
	}
	return outputItemsTable(cmd, items)
}
