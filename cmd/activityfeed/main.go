// Package main provides the activityfeed CLI entry point.
package main

import (
	"os"

	"github.com/copperline-studio/activityfeed/internal/adapters/driving/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
