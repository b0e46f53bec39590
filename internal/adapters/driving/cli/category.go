package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/copperline-studio/activityfeed/internal/core/domain"
)

var (
	categoryLimit int
	categoryJSON  bool
)

var categoryCmd = &cobra.Command{
	Use:   "category [category]",
	Short: "Show activity in a category",
	Long: `Shows feed items belonging to the given category. Matches both
the feed category label and a product's own category, so a category
like "developer-tools" finds the products filed under it. Matching is
case sensitive.`,
	Args: cobra.ExactArgs(1),
	RunE: runCategory,
}

func init() {
	categoryCmd.Flags().IntVarP(&categoryLimit, "limit", "n", 0, "maximum number of items (omit for all)")
	categoryCmd.Flags().BoolVar(&categoryJSON, "json", false, "output items as JSON")
	rootCmd.AddCommand(categoryCmd)
}

func runCategory(cmd *cobra.Command, args []string) error {
	if feedService == nil {
		return errors.New("feed service not configured")
	}

	ctx := context.Background()

	var items []domain.ActivityItem
	if cmd.Flags().Changed("limit") {
		items = feedService.ActivityByCategory(ctx, args[0], categoryLimit)
	} else {
		items = feedService.ActivityByCategory(ctx, args[0])
	}

	if categoryJSON {
		return outputItemsJSON(cmd, items)
	}
	return outputItemsTable(cmd, items)
}
