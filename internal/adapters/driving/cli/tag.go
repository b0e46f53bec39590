package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/copperline-studio/activityfeed/internal/core/domain"
)

var (
	tagLimit int
	tagJSON  bool
)

var tagCmd = &cobra.Command{
	Use:   "tag [tag]",
	Short: "Show activity carrying a tag",
	Long: `Shows feed items tagged with the given tag. Tags match exactly
and case sensitively; "Go" and "go" are different tags.`,
	Args: cobra.ExactArgs(1),
	RunE: runTag,
}

func init() {
	tagCmd.Flags().IntVarP(&tagLimit, "limit", "n", 0, "maximum number of items (omit for all)")
	tagCmd.Flags().BoolVar(&tagJSON, "json", false, "output items as JSON")
	rootCmd.AddCommand(tagCmd)
}

func runTag(cmd *cobra.Command, args []string) error {
	if feedService == nil {
		return errors.New("feed service not configured")
	}

	ctx := context.Background()

	var items []domain.ActivityItem
	if cmd.Flags().Changed("limit") {
		items = feedService.ActivityByTag(ctx, args[0], tagLimit)
	} else {
		items = feedService.ActivityByTag(ctx, args[0])
	}

	if tagJSON {
		return outputItemsJSON(cmd, items)
	}
	return outputItemsTable(cmd, items)
}
