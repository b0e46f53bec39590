// Package tui provides the interactive terminal browser for the
// activity feed. It implements a driving adapter following hexagonal
// architecture principles, built on Bubbletea's Elm architecture.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/copperline-studio/activityfeed/internal/adapters/driving/tui/messages"
	"github.com/copperline-studio/activityfeed/internal/adapters/driving/tui/styles"
	"github.com/copperline-studio/activityfeed/internal/adapters/driving/tui/views/feed"
	"github.com/copperline-studio/activityfeed/internal/adapters/driving/tui/views/itemdetail"
	"github.com/copperline-studio/activityfeed/internal/core/ports/driving"
)

// App is the main TUI application. It routes messages between the
// feed list, the item detail view and the help page, and implements
// tea.Model for use with Bubbletea.
type App struct {
	// feedView is the scrolling activity feed.
	feedView *feed.View

	// detailView shows a single opened item.
	detailView *itemdetail.View

	// styles holds the TUI styles.
	styles *styles.Styles

	// currentView tracks which view is active.
	currentView messages.ViewType

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates the first WindowSizeMsg has arrived.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates the TUI application over the given feed service.
func NewApp(svc driving.FeedService) (*App, error) {
	if svc == nil {
		return nil, ErrMissingFeedService
	}

	s := styles.DefaultStyles()

	return &App{
		feedView:    feed.NewView(s, svc),
		detailView:  itemdetail.NewView(s),
		styles:      s,
		currentView: messages.ViewFeed,
	}, nil
}

// Init implements tea.Model. It starts the first feed load.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("activityfeed"),
		a.feedView.Init(),
	)
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		a.feedView.SetDimensions(msg.Width, msg.Height)
		a.detailView.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		// Global quit with ctrl+c
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		switch a.currentView {
		case messages.ViewFeed:
			a.feedView, cmd = a.feedView.Update(msg)
			return a, cmd

		case messages.ViewDetail:
			a.detailView, cmd = a.detailView.Update(msg)
			return a, cmd

		case messages.ViewHelp:
			// Any of esc/?/q closes the help page.
			switch msg.String() {
			case "esc", "?", "q":
				a.currentView = messages.ViewFeed
			}
			return a, nil
		}
		return a, nil

	case messages.FeedLoaded:
		a.feedView, cmd = a.feedView.Update(msg)
		return a, cmd

	case messages.ItemSelected:
		a.detailView.SetItem(msg.Item)
		a.currentView = messages.ViewDetail
		return a, nil

	case messages.ViewChanged:
		a.currentView = msg.View
		return a, nil

	case messages.Quit:
		return a, tea.Quit
	}

	// Forward other messages to the active view.
	switch a.currentView {
	case messages.ViewFeed:
		a.feedView, cmd = a.feedView.Update(msg)
	case messages.ViewDetail:
		a.detailView, cmd = a.detailView.Update(msg)
	case messages.ViewHelp:
		// Help view has no other messages to handle.
	}

	return a, cmd
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewFeed:
		return a.feedView.View()
	case messages.ViewDetail:
		return a.detailView.View()
	case messages.ViewHelp:
		return a.viewHelp()
	default:
		return a.feedView.View()
	}
}

// viewHelp renders the help page.
func (a *App) viewHelp() string {
	return a.styles.Title.Render("Help") + `

Feed:
  j/k, ↑/↓    Move through the feed
  enter       Open the selected item
  tab         Cycle post/profile/product filter
  /           Search the feed
  r           Reload from sources
  esc         Clear the active search
  q           Quit

Search:
  (type)      Enter search query
  enter       Run the search
  esc         Cancel

Item:
  j/k, ↑/↓    Scroll
  esc         Back to the feed

[esc] back to the feed`
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Ready returns whether the app has received its dimensions.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions (for testing).
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.feedView.SetDimensions(width, height)
	a.detailView.SetDimensions(width, height)
}
