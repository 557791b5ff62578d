package components

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/anduckhmt146/leetpick/internal/ui/theme"
)

// SearchInput wraps bubbles/textinput as a one-line filter box.
type SearchInput struct {
	Model textinput.Model
}

// NewSearchInput creates a blurred search box.
func NewSearchInput(placeholder string, maxWidth int) SearchInput {
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = placeholder
	if maxWidth > 0 {
		ti.CharLimit = maxWidth
	}
	return SearchInput{Model: ti}
}

// Focus activates the box and returns the cursor blink command.
func (s *SearchInput) Focus() tea.Cmd {
	return s.Model.Focus()
}

// Blur deactivates the box, keeping its value.
func (s *SearchInput) Blur() {
	s.Model.Blur()
}

// Clear empties and deactivates the box.
func (s *SearchInput) Clear() {
	s.Model.Reset()
	s.Model.Blur()
}

// Focused reports whether the box receives keystrokes.
func (s SearchInput) Focused() bool {
	return s.Model.Focused()
}

// Update forwards messages to the wrapped model.
func (s SearchInput) Update(msg tea.Msg) (SearchInput, tea.Cmd) {
	var cmd tea.Cmd
	s.Model, cmd = s.Model.Update(msg)
	return s, cmd
}

// Query returns the trimmed, lowercased search text.
func (s SearchInput) Query() string {
	return strings.ToLower(strings.TrimSpace(s.Model.Value()))
}

// View renders the box, or nothing when blurred and empty.
func (s SearchInput) View() string {
	if !s.Focused() && s.Model.Value() == "" {
		return ""
	}
	view := s.Model.View()
	if !s.Focused() {
		view = lipgloss.NewStyle().Foreground(theme.TextDim).Render("/ " + s.Model.Value())
	}
	return view
}
