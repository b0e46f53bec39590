package cli

import (
	"errors"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/copperline-studio/activityfeed/internal/core/ports/driven"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage content source settings",
	Long: `View and configure where the feed reads its content from.

Recognised keys:
  content.posts_dir      directory of markdown blog posts
  content.profiles_file  JSON export of community profiles
  content.products_file  JSON export of product entries
  content.database       SQLite site database (fallback source)

A file-based source takes precedence over the database for its
collection. Collections with no configured source stay out of the feed.`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set a setting",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

var configGetCmd = &cobra.Command{
	Use:   "get [key]",
	Short: "Print one setting value",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigGet,
}

var configUnsetCmd = &cobra.Command{
	Use:   "unset [key]",
	Short: "Remove a setting",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigUnset,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the settings file path",
	RunE:  runConfigPath,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configUnsetCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

// contentKeys lists the recognised settings in display order.
var contentKeys = []struct {
	key   string
	label string
}{
	{driven.SettingPostsDir, "Posts directory"},
	{driven.SettingProfilesFile, "Profiles file"},
	{driven.SettingProductsFile, "Products file"},
	{driven.SettingDatabase, "Database"},
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if settingsStore == nil {
		return errors.New("settings store not configured")
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Content]")
	known := make(map[string]bool, len(contentKeys))
	for _, entry := range contentKeys {
		known[entry.key] = true
		value := settingsStore.GetString(entry.key)
		if value == "" {
			value = "(not set)"
		}
		cmd.Printf("  %s: %s\n", entry.label, value)
	}
	cmd.Println()

	// Anything set outside the recognised keys still shows up.
	all := settingsStore.All()
	var extra []string
	for key := range all {
		if !known[key] {
			extra = append(extra, key)
		}
	}
	if len(extra) > 0 {
		sort.Strings(extra)
		cmd.Println("[Other]")
		for _, key := range extra {
			cmd.Printf("  %s: %v\n", key, all[key])
		}
		cmd.Println()
	}

	cmd.Printf("Settings file: %s\n", settingsStore.Path())
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if settingsStore == nil {
		return errors.New("settings store not configured")
	}

	key, value := args[0], args[1]
	if err := settingsStore.Set(key, value); err != nil {
		return fmt.Errorf("failed to save setting: %w", err)
	}

	cmd.Printf("Set %s = %s\n", key, value)
	if !isContentKey(key) {
		cmd.Printf("Note: %s is not a recognised content key and will be ignored by the feed.\n", key)
	}
	return nil
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	if settingsStore == nil {
		return errors.New("settings store not configured")
	}

	value, ok := settingsStore.Get(args[0])
	if !ok {
		return fmt.Errorf("%s is not set", args[0])
	}

	cmd.Printf("%v\n", value)
	return nil
}

func runConfigUnset(cmd *cobra.Command, args []string) error {
	if settingsStore == nil {
		return errors.New("settings store not configured")
	}

	if err := settingsStore.Delete(args[0]); err != nil {
		return fmt.Errorf("failed to remove setting: %w", err)
	}

	cmd.Printf("Removed %s\n", args[0])
	return nil
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	if settingsStore == nil {
		return errors.New("settings store not configured")
	}

	cmd.Println(settingsStore.Path())
	return nil
}

func isContentKey(key string) bool {
	for _, entry := range contentKeys {
		if entry.key == key {
			return true
		}
	}
	return false
}
