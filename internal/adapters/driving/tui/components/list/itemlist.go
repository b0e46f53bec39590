// Package list provides the scrolling feed list component for the TUI.
package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/copperline-studio/activityfeed/internal/adapters/driving/tui/styles"
	"github.com/copperline-studio/activityfeed/internal/core/domain"
)

// ItemList displays activity items in a navigable, scrolling list.
type ItemList struct {
	items    []domain.ActivityItem
	selected int
	offset   int
	styles   *styles.Styles
	width    int
	height   int
}

// NewItemList creates a new feed list component.
func NewItemList(s *styles.Styles) *ItemList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &ItemList{
		items:    nil,
		selected: 0,
		styles:   s,
		width:    80,
		height:   10,
	}
}

// Init initialises the item list.
func (l *ItemList) Init() tea.Cmd {
	return nil
}

// Update handles list navigation messages.
func (l *ItemList) Update(msg tea.Msg) (*ItemList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			l.MoveUp()
		case "down", "j":
			l.MoveDown()
		}
	}
	return l, nil
}

// View renders the feed list.
func (l *ItemList) View() string {
	if len(l.items) == 0 {
		return l.styles.Muted.Render("No activity found.")
	}

	lines := make([]string, 0, len(l.items)*2)

	visibleCount := l.visibleItemCount()
	end := l.offset + visibleCount
	if end > len(l.items) {
		end = len(l.items)
	}

	for i := l.offset; i < end; i++ {
		lines = append(lines, l.renderItem(i, &l.items[i]))
	}

	// Scroll indicator
	if len(l.items) > visibleCount {
		lines = append(lines, "", l.styles.Muted.Render(fmt.Sprintf("  [%d-%d of %d]",
			l.offset+1, end, len(l.items))))
	}

	return strings.Join(lines, "\n")
}

// renderItem formats one feed item as a title line plus excerpt line.
func (l *ItemList) renderItem(index int, item *domain.ActivityItem) string {
	indicator := "  "
	if index == l.selected {
		indicator = "> "
	}

	title := item.Title
	if title == "" {
		title = item.Slug
	}

	badge := fmt.Sprintf("[%s]", item.Type)

	date := "unknown"
	if !item.Date.IsZero() {
		date = item.Date.Format("2006-01-02")
	}

	// Truncate title so badge and date stay on the line.
	maxTitleLen := l.width - len(badge) - len(date) - 8
	if maxTitleLen < 10 {
		maxTitleLen = 10
	}
	if len(title) > maxTitleLen {
		title = title[:maxTitleLen-3] + "..."
	}

	var titleLine string
	if index == l.selected {
		titleLine = l.styles.Selected.Render(
			fmt.Sprintf("%s%s %-*s  %s", indicator, badge, maxTitleLen, title, date))
	} else {
		titleLine = l.styles.Normal.Render(indicator) +
			l.badgeStyle(item.Type).Render(badge) +
			l.styles.Normal.Render(fmt.Sprintf(" %-*s  ", maxTitleLen, title)) +
			l.styles.Muted.Render(date)
	}

	excerpt := item.Excerpt
	maxExcerptLen := l.width - 6
	if maxExcerptLen < 20 {
		maxExcerptLen = 20
	}
	if len(excerpt) > maxExcerptLen {
		excerpt = excerpt[:maxExcerptLen-3] + "..."
	}

	if excerpt == "" {
		return titleLine
	}
	return titleLine + "\n" + l.styles.Muted.Render("    "+excerpt)
}

// badgeStyle picks the collection colour for a type badge.
func (l *ItemList) badgeStyle(t domain.ItemType) lipgloss.Style {
	switch t {
	case domain.TypePost:
		return l.styles.PostBadge
	case domain.TypeProfile:
		return l.styles.ProfileBadge
	case domain.TypeProduct:
		return l.styles.ProductBadge
	}
	return l.styles.Normal
}

// visibleItemCount returns how many items fit in the current height.
// Each item takes up to two lines plus spacing.
func (l *ItemList) visibleItemCount() int {
	count := (l.height - 2) / 2
	if count < 1 {
		count = 1
	}
	return count
}

// adjustScroll keeps the selected item inside the visible window.
func (l *ItemList) adjustScroll() {
	visible := l.visibleItemCount()
	if l.selected < l.offset {
		l.offset = l.selected
	} else if l.selected >= l.offset+visible {
		l.offset = l.selected - visible + 1
	}
}

// SetItems replaces the list contents and resets the selection.
func (l *ItemList) SetItems(items []domain.ActivityItem) {
	l.items = items
	l.selected = 0
	l.offset = 0
}

// Items returns the current items.
func (l *ItemList) Items() []domain.ActivityItem {
	return l.items
}

// Selected returns the index of the selected item.
func (l *ItemList) Selected() int {
	return l.selected
}

// SelectedItem returns the currently selected item, or nil if none.
func (l *ItemList) SelectedItem() *domain.ActivityItem {
	if len(l.items) == 0 || l.selected < 0 || l.selected >= len(l.items) {
		return nil
	}
	return &l.items[l.selected]
}

// MoveUp moves selection up.
func (l *ItemList) MoveUp() {
	if l.selected > 0 {
		l.selected--
		l.adjustScroll()
	}
}

// MoveDown moves selection down.
func (l *ItemList) MoveDown() {
	if l.selected < len(l.items)-1 {
		l.selected++
		l.adjustScroll()
	}
}

// SetDimensions sets the component dimensions.
func (l *ItemList) SetDimensions(width, height int) {
	l.width = width
	l.height = height
}

// Count returns the number of items.
func (l *ItemList) Count() int {
	return len(l.items)
}

// IsEmpty returns whether the list is empty.
func (l *ItemList) IsEmpty() bool {
	return len(l.items) == 0
}
