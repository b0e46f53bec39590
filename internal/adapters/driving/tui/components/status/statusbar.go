// Package status provides the status bar component for the TUI.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/copperline-studio/activityfeed/internal/adapters/driving/tui/keymap"
	"github.com/copperline-studio/activityfeed/internal/adapters/driving/tui/styles"
)

// State represents the current feed state for display.
type State string

const (
	StateLoading  State = "loading"
	StateBrowsing State = "browsing"
	StateSearch   State = "search"
)

// Bar displays the feed state on the left and keybinding hints on the
// right.
type Bar struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	state     State
	filter    string
	query     string
	itemCount int
	width     int
}

// NewBar creates a new status bar component.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &Bar{
		styles: s,
		keymap: km,
		state:  StateBrowsing,
		width:  80,
	}
}

// Init initialises the status bar.
func (b *Bar) Init() tea.Cmd {
	return nil
}

// Update handles status bar messages.
func (b *Bar) Update(msg tea.Msg) (*Bar, tea.Cmd) {
	// The bar is passive; state arrives via the Set methods.
	return b, nil
}

// View renders the status bar.
func (b *Bar) View() string {
	left := b.renderLeft()
	right := b.renderRight()

	padding := b.width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		padding = 1
	}

	return b.styles.StatusBar.Width(b.width).Render(
		left + strings.Repeat(" ", padding) + right,
	)
}

// renderLeft renders the feed state summary.
func (b *Bar) renderLeft() string {
	switch b.state {
	case StateLoading:
		return b.styles.Muted.Render("Loading feed...")
	case StateSearch:
		return b.styles.Normal.Render(fmt.Sprintf("%d items for %q", b.itemCount, b.query))
	case StateBrowsing:
	}

	scope := b.filter
	if scope == "" {
		scope = "all collections"
	}
	return b.styles.Normal.Render(fmt.Sprintf("%d items · %s", b.itemCount, scope))
}

// renderRight renders keybinding hints.
func (b *Bar) renderRight() string {
	var bindings []key.Binding
	if b.state == StateBrowsing && b.itemCount > 0 {
		bindings = b.keymap.FeedHelp()
	} else {
		bindings = b.keymap.ShortHelp()
	}

	hints := make([]string, 0, len(bindings))
	for _, binding := range bindings {
		h := binding.Help()
		hints = append(hints, fmt.Sprintf("%s: %s", h.Key, h.Desc))
	}
	return b.styles.Muted.Render(strings.Join(hints, " | "))
}

// SetState sets the current state.
func (b *Bar) SetState(state State) {
	b.state = state
}

// State returns the current state.
func (b *Bar) State() State {
	return b.state
}

// SetFilter sets the collection filter label. Empty means all.
func (b *Bar) SetFilter(filter string) {
	b.filter = filter
}

// Filter returns the current filter label.
func (b *Bar) Filter() string {
	return b.filter
}

// SetQuery sets the active search query.
func (b *Bar) SetQuery(query string) {
	b.query = query
}

// Query returns the active search query.
func (b *Bar) Query() string {
	return b.query
}

// SetItemCount sets the feed item count.
func (b *Bar) SetItemCount(count int) {
	b.itemCount = count
}

// ItemCount returns the current item count.
func (b *Bar) ItemCount() int {
	return b.itemCount
}

// SetWidth sets the status bar width.
func (b *Bar) SetWidth(width int) {
	b.width = width
}

// Width returns the current width.
func (b *Bar) Width() int {
	return b.width
}

// Clear resets the status bar to its default state.
func (b *Bar) Clear() {
	b.state = StateBrowsing
	b.filter = ""
	b.query = ""
	b.itemCount = 0
}
