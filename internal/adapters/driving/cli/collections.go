package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/copperline-studio/activityfeed/internal/core/domain"
)

var (
	typeLimit int
	typeJSON  bool
)

var postsCmd = &cobra.Command{
	Use:   "posts",
	Short: "Show blog post activity",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runByType(cmd, domain.TypePost)
	},
}

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "Show community profile activity",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runByType(cmd, domain.TypeProfile)
	},
}

var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "Show product activity",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runByType(cmd, domain.TypeProduct)
	},
}

func init() {
	for _, cmd := range []*cobra.Command{postsCmd, profilesCmd, productsCmd} {
		cmd.Flags().IntVarP(&typeLimit, "limit", "n", 0, "maximum number of items (omit for all)")
		cmd.Flags().BoolVar(&typeJSON, "json", false, "output items as JSON")
		rootCmd.AddCommand(cmd)
	}
}

func runByType(cmd *cobra.Command, itemType domain.ItemType) error {
	if feedService == nil {
		return errors.New("feed service not configured")
	}

	ctx := context.Background()

	var items []domain.ActivityItem
	if cmd.Flags().Changed("limit") {
		items = feedService.ActivityByType(ctx, itemType, typeLimit)
	} else {
		items = feedService.ActivityByType(ctx, itemType)
	}

	if typeJSON {
		return outputItemsJSON(cmd, items)
	}
	return outputItemsTable(cmd, items)
}
