package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/copperline-studio/activityfeed/internal/core/domain"
)

func outputItemsJSON(cmd *cobra.Command, items []domain.ActivityItem) error {
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal items: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputItemsTable(cmd *cobra.Command, items []domain.ActivityItem) error {
	if len(items) == 0 {
		cmd.Println("No activity found.")
		return nil
	}

	cmd.Printf("Activity (%d items):\n", len(items))
	cmd.Println()
	for i, item := range items {
		// Format: [N] Title (type)
		title := item.Title
		if title == "" {
			title = item.Slug
		}
		cmd.Printf("  [%d] %s (%s)\n", i+1, title, item.Type)
		cmd.Printf("      Date: %s\n", formatDate(item.Date))

		if item.Category != "" {
			cmd.Printf("      Category: %s\n", item.Category)
		}
		if item.ProductCategory != "" {
			cmd.Printf("      Product category: %s\n", item.ProductCategory)
		}
		if item.ProfileRole != "" {
			cmd.Printf("      Role: %s\n", item.ProfileRole)
		}
		if item.License != "" {
			cmd.Printf("      License: %s\n", item.License)
		}
		if item.Author != "" {
			cmd.Printf("      Author: %s\n", item.Author)
		}
		if item.Excerpt != "" {
			cmd.Printf("      %s\n", item.Excerpt)
		}
		if len(item.Tags) > 0 {
			cmd.Printf("      Tags: %s\n", strings.Join(item.Tags, ", "))
		}
		cmd.Println()
	}

	return nil
}

// formatDate renders the item date with a relative suffix. Items whose
// date never parsed show as unknown.
func formatDate(t time.Time) string {
	if t.IsZero() {
		return "unknown"
	}
	return fmt.Sprintf("%s (%s)", t.Format("2006-01-02"), humanize.Time(t))
}
