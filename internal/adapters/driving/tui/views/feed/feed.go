// Package feed provides the main activity feed view for the TUI.
package feed

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/copperline-studio/activityfeed/internal/adapters/driving/tui/components/input"
	"github.com/copperline-studio/activityfeed/internal/adapters/driving/tui/components/list"
	"github.com/copperline-studio/activityfeed/internal/adapters/driving/tui/components/status"
	"github.com/copperline-studio/activityfeed/internal/adapters/driving/tui/keymap"
	"github.com/copperline-studio/activityfeed/internal/adapters/driving/tui/messages"
	"github.com/copperline-studio/activityfeed/internal/adapters/driving/tui/styles"
	"github.com/copperline-studio/activityfeed/internal/core/domain"
	"github.com/copperline-studio/activityfeed/internal/core/ports/driving"
)

// browseLimit bounds how much of the feed one reload fetches. The
// feed service caps RecentActivity at 10 by default, which is too
// little for scrolling.
const browseLimit = 200

// filterCycle is the order the tab key steps through collections.
// The empty type means no filter.
var filterCycle = []domain.ItemType{"", domain.TypePost, domain.TypeProfile, domain.TypeProduct}

// View is the scrolling activity feed with search and filtering.
type View struct {
	styles *styles.Styles
	keys   *keymap.KeyMap
	svc    driving.FeedService

	list   *list.ItemList
	input  *input.SearchInput
	status *status.Bar

	// filter narrows the feed to one collection; empty means all.
	filter domain.ItemType

	// query is the active search, empty when browsing.
	query string

	// searching is true while the search input is focused.
	searching bool

	loading bool
	width   int
	height  int
	ready   bool
}

// NewView creates the feed view backed by the given feed service.
func NewView(s *styles.Styles, svc driving.FeedService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	km := keymap.DefaultKeyMap()

	return &View{
		styles: s,
		keys:   km,
		svc:    svc,
		list:   list.NewItemList(s),
		input:  input.NewSearchInput(s),
		status: status.NewBar(s, km),
	}
}

// Init triggers the first feed load.
func (v *View) Init() tea.Cmd {
	v.loading = true
	v.status.SetState(status.StateLoading)
	return v.loadFeed()
}

// loadFeed returns a command that rebuilds the feed for the current
// query and filter. The service rereads the sources on every call,
// so a reload always reflects the content on disk.
func (v *View) loadFeed() tea.Cmd {
	query := v.query
	filter := v.filter
	svc := v.svc

	return func() tea.Msg {
		ctx := context.Background()

		var items []domain.ActivityItem
		switch {
		case query != "":
			items = svc.SearchActivity(ctx, query)
		case filter != "":
			items = svc.ActivityByType(ctx, filter)
		default:
			items = svc.RecentActivity(ctx, browseLimit)
		}
		return messages.FeedLoaded{Items: items}
	}
}

// Update handles messages for the feed view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		if v.searching {
			return v.handleSearchKeyMsg(msg)
		}
		return v.handleKeyMsg(msg)

	case messages.FeedLoaded:
		v.loading = false
		v.list.SetItems(msg.Items)
		v.syncStatus()
		return v, nil
	}

	return v, nil
}

// handleKeyMsg handles key presses while browsing the list.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	keyStr := msg.String()

	switch {
	case keymap.Matches(keyStr, v.keys.Up):
		v.list.MoveUp()

	case keymap.Matches(keyStr, v.keys.Down):
		v.list.MoveDown()

	case keymap.Matches(keyStr, v.keys.Open):
		if item := v.list.SelectedItem(); item != nil {
			selected := *item
			return v, func() tea.Msg {
				return messages.ItemSelected{Item: selected}
			}
		}

	case keymap.Matches(keyStr, v.keys.Search):
		v.searching = true
		v.input.Reset()
		return v, v.input.Focus()

	case keymap.Matches(keyStr, v.keys.CycleFilter):
		v.filter = nextFilter(v.filter)
		v.query = ""
		return v, v.reload()

	case keymap.Matches(keyStr, v.keys.Reload):
		return v, v.reload()

	case keymap.Matches(keyStr, v.keys.Back):
		// Esc clears an active search and falls back to browsing.
		if v.query != "" {
			v.query = ""
			return v, v.reload()
		}

	case keymap.Matches(keyStr, v.keys.Help):
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewHelp}
		}

	case keymap.Matches(keyStr, v.keys.Quit):
		return v, func() tea.Msg {
			return messages.Quit{}
		}
	}

	return v, nil
}

// handleSearchKeyMsg handles key presses while the search input is open.
func (v *View) handleSearchKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "esc":
		v.searching = false
		v.input.Reset()
		return v, nil

	case "enter":
		v.searching = false
		v.query = strings.TrimSpace(v.input.Value())
		return v, v.reload()
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// reload marks the view loading and rebuilds the feed.
func (v *View) reload() tea.Cmd {
	v.loading = true
	v.status.SetState(status.StateLoading)
	return v.loadFeed()
}

// syncStatus pushes the current feed state into the status bar.
func (v *View) syncStatus() {
	v.status.SetItemCount(v.list.Count())
	v.status.SetFilter(string(v.filter))
	v.status.SetQuery(v.query)
	if v.query != "" {
		v.status.SetState(status.StateSearch)
	} else {
		v.status.SetState(status.StateBrowsing)
	}
}

// View renders the feed view.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render(v.title()))
	b.WriteString("\n\n")

	if v.searching {
		b.WriteString(v.input.View())
		b.WriteString("\n")
		b.WriteString(v.styles.Help.Render("[enter] search  [esc] cancel"))
		return b.String()
	}

	if v.loading {
		b.WriteString(v.styles.Muted.Render("Loading feed..."))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(v.list.View())
	b.WriteString("\n\n")
	b.WriteString(v.status.View())

	return b.String()
}

// title renders the header for the current scope.
func (v *View) title() string {
	switch {
	case v.query != "":
		return fmt.Sprintf("Activity Feed — search %q", v.query)
	case v.filter != "":
		return fmt.Sprintf("Activity Feed — %ss", v.filter)
	default:
		return "Activity Feed"
	}
}

// nextFilter steps to the next collection in the tab cycle.
func nextFilter(current domain.ItemType) domain.ItemType {
	for i, f := range filterCycle {
		if f == current {
			return filterCycle[(i+1)%len(filterCycle)]
		}
	}
	return ""
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	// Title, spacing and status bar take five lines.
	v.list.SetDimensions(width, height-5)
	v.input.SetWidth(width)
	v.status.SetWidth(width)
}

// Items returns the currently displayed items.
func (v *View) Items() []domain.ActivityItem {
	return v.list.Items()
}

// SelectedIndex returns the selected item index.
func (v *View) SelectedIndex() int {
	return v.list.Selected()
}

// Filter returns the active collection filter.
func (v *View) Filter() domain.ItemType {
	return v.filter
}

// Query returns the active search query.
func (v *View) Query() string {
	return v.query
}

// IsSearching returns whether the search input is open.
func (v *View) IsSearching() bool {
	return v.searching
}

// Loading returns whether a feed load is in flight.
func (v *View) Loading() bool {
	return v.loading
}
