// Package itemdetail provides the single-item detail view for the TUI.
package itemdetail

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/copperline-studio/activityfeed/internal/adapters/driving/tui/messages"
	"github.com/copperline-studio/activityfeed/internal/adapters/driving/tui/styles"
	"github.com/copperline-studio/activityfeed/internal/core/domain"
)

// View shows every field of one activity item.
type View struct {
	styles *styles.Styles

	item         *domain.ActivityItem
	scrollOffset int
	width        int
	height       int
	ready        bool
}

// NewView creates a new item detail view.
func NewView(s *styles.Styles) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{styles: s}
}

// SetItem sets the item to display and resets scrolling.
func (v *View) SetItem(item domain.ActivityItem) {
	v.item = &item
	v.scrollOffset = 0
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the detail view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.ready = true
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)
	}

	return v, nil
}

// handleKeyMsg handles key presses.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if v.scrollOffset > 0 {
			v.scrollOffset--
		}
	case "down", "j":
		if v.scrollOffset < v.maxScrollOffset() {
			v.scrollOffset++
		}
	case "esc", "q":
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewFeed}
		}
	}

	return v, nil
}

// visibleLines returns the number of content lines that fit on screen.
func (v *View) visibleLines() int {
	// Title, separator, help footer and padding take six lines.
	available := v.height - 6
	if available < 1 {
		available = 1
	}
	return available
}

// maxScrollOffset returns the maximum scroll offset.
func (v *View) maxScrollOffset() int {
	maxOffset := len(v.buildContent()) - v.visibleLines()
	if maxOffset < 0 {
		maxOffset = 0
	}
	return maxOffset
}

// buildContent builds the content lines for display.
func (v *View) buildContent() []string {
	if v.item == nil {
		return nil
	}

	item := v.item
	lines := []string{
		formatField("Type", string(item.Type)),
		formatField("Title", item.Title),
		formatField("Slug", item.Slug),
	}

	if item.Date.IsZero() {
		lines = append(lines, formatField("Date", "unknown"))
	} else {
		lines = append(lines, formatField("Date", item.Date.Format("2006-01-02 15:04")))
	}

	if item.Author != "" {
		lines = append(lines, formatField("Author", item.Author))
	}
	if item.Category != "" {
		lines = append(lines, formatField("Category", item.Category))
	}
	if item.ProductCategory != "" {
		lines = append(lines, formatField("Product", item.ProductCategory))
	}
	if item.ProfileRole != "" {
		lines = append(lines, formatField("Role", item.ProfileRole))
	}
	if item.License != "" {
		lines = append(lines, formatField("License", item.License))
	}
	if item.Image != "" {
		lines = append(lines, formatField("Image", item.Image))
	}
	if len(item.Tags) > 0 {
		lines = append(lines, formatField("Tags", strings.Join(item.Tags, ", ")))
	}

	if item.Excerpt != "" {
		lines = append(lines, "", "Excerpt:")
		lines = append(lines, wrap(item.Excerpt, v.contentWidth())...)
	}

	return lines
}

// contentWidth returns the width available for wrapped text.
func (v *View) contentWidth() int {
	w := v.width - 4
	if w < 20 {
		w = 20
	}
	return w
}

// formatField formats a label/value pair for display.
func formatField(label, value string) string {
	return fmt.Sprintf("%-10s %s", label+":", value)
}

// wrap breaks text into lines no longer than width, on word boundaries.
func wrap(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	line := "  " + words[0]
	for _, word := range words[1:] {
		if len(line)+1+len(word) > width {
			lines = append(lines, line)
			line = "  " + word
			continue
		}
		line += " " + word
	}
	return append(lines, line)
}

// View renders the item detail view.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Item Details"))
	b.WriteString("\n")
	b.WriteString(strings.Repeat("─", minInt(v.width-4, 60)))
	b.WriteString("\n\n")

	if v.item == nil {
		b.WriteString(v.styles.Muted.Render("No item selected"))
		b.WriteString("\n\n")
		b.WriteString(v.renderHelp())
		return b.String()
	}

	lines := v.buildContent()
	visible := v.visibleLines()
	for i := v.scrollOffset; i < len(lines) && i < v.scrollOffset+visible; i++ {
		line := lines[i]

		if strings.HasPrefix(line, "Excerpt:") {
			b.WriteString(v.styles.Subtitle.Render(line))
		} else if parts := strings.SplitN(line, ":", 2); len(parts) == 2 && !strings.HasPrefix(line, "  ") {
			b.WriteString(v.styles.Subtitle.Render(parts[0] + ":"))
			b.WriteString(v.styles.Normal.Render(parts[1]))
		} else {
			b.WriteString(v.styles.Normal.Render(line))
		}
		b.WriteString("\n")
	}

	// Scroll indicator
	if len(lines) > visible {
		b.WriteString("\n")
		b.WriteString(v.styles.Muted.Render(fmt.Sprintf("  [Line %d-%d of %d]",
			v.scrollOffset+1,
			minInt(v.scrollOffset+visible, len(lines)),
			len(lines))))
	}

	b.WriteString("\n\n")
	b.WriteString(v.renderHelp())

	return b.String()
}

// renderHelp renders the help footer.
func (v *View) renderHelp() string {
	return v.styles.Help.Render("[↑/↓] scroll  [esc] back to feed")
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Item returns the currently displayed item.
func (v *View) Item() *domain.ActivityItem {
	return v.item
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
