// Package messages defines Bubbletea message types for the TUI.
// Messages represent events that flow through the Elm architecture.
package messages

import (
	"github.com/copperline-studio/activityfeed/internal/core/domain"
)

// FeedLoaded carries a freshly aggregated feed back to the model.
type FeedLoaded struct {
	Items []domain.ActivityItem
}

// ItemSelected is sent when a feed item is opened for detail view.
type ItemSelected struct {
	Item domain.ActivityItem
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewFeed is the scrolling activity feed list.
	ViewFeed ViewType = iota
	// ViewDetail shows a single feed item in full.
	ViewDetail
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewFeed:
		return "feed"
	case ViewDetail:
		return "detail"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// Quit signals the application should exit.
type Quit struct{}
