package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/anduckhmt146/leetpick/internal/ui/theme"
)

// ConfirmDialog renders a yes/no prompt centered in width x height.
func ConfirmDialog(prompt, detail string, width, height int) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render(prompt))
	if detail != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(detail))
	}
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Success).
		Render("[Y] Yes"))
	b.WriteString("    ")
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Primary).
		Render("[N] No"))

	box := theme.Dialog.Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
