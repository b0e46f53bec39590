package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/copperline-studio/activityfeed/internal/adapters/driving/tui/styles"
)

func TestNewSearchInput(t *testing.T) {
	s := NewSearchInput(styles.DefaultStyles())

	require.NotNil(t, s)
	assert.Empty(t, s.Value())
	assert.True(t, s.Focused())
}

func TestNewSearchInput_NilStyles(t *testing.T) {
	s := NewSearchInput(nil)

	require.NotNil(t, s)
	assert.NotNil(t, s.styles)
}

func TestSearchInput_SetValue(t *testing.T) {
	s := NewSearchInput(nil)

	s.SetValue("release notes")

	assert.Equal(t, "release notes", s.Value())
}

func TestSearchInput_Update_Typing(t *testing.T) {
	s := NewSearchInput(nil)

	s, _ = s.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("go")})

	assert.Equal(t, "go", s.Value())
}

func TestSearchInput_Reset(t *testing.T) {
	s := NewSearchInput(nil)
	s.SetValue("something")

	s.Reset()

	assert.Empty(t, s.Value())
}

func TestSearchInput_FocusBlur(t *testing.T) {
	s := NewSearchInput(nil)

	s.Blur()
	assert.False(t, s.Focused())

	s.Focus()
	assert.True(t, s.Focused())
}

func TestSearchInput_SetWidth(t *testing.T) {
	s := NewSearchInput(nil)

	s.SetWidth(120)
	assert.Equal(t, 120, s.Width())

	// Narrow terminals keep a usable minimum input width.
	s.SetWidth(10)
	assert.Equal(t, 10, s.Width())
}

func TestSearchInput_View(t *testing.T) {
	s := NewSearchInput(nil)
	s.SetValue("widgets")

	view := s.View()

	assert.Contains(t, view, "Search:")
	assert.Contains(t, view, "widgets")
}
