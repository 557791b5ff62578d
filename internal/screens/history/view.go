package history

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/anduckhmt146/leetpick/internal/question"
	"github.com/anduckhmt146/leetpick/internal/ui/components"
	"github.com/anduckhmt146/leetpick/internal/ui/layout"
	"github.com/anduckhmt146/leetpick/internal/ui/theme"
)

const maxCardWidth = 76

func (s *HistoryScreen) View(width, height int) string {
	cardWidth := min(width-4, maxCardWidth)

	var top []string
	top = append(top, "", s.renderFilterBar())
	if sv := s.search.View(); sv != "" {
		top = append(top, sv)
	}
	if s.errMsg != "" {
		top = append(top, lipgloss.NewStyle().Foreground(theme.Error).Render(s.errMsg))
	}
	top = append(top, "")

	header := lipgloss.PlaceHorizontal(width, lipgloss.Center, strings.Join(top, "\n"))

	visible := s.Visible()
	if len(visible) == 0 {
		empty := lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Italic(true).
			Render("No completed questions yet.")
		return header + "\n" + empty
	}

	compact := layout.IsCompactHeight(height)
	cards := make([]string, len(visible))
	for i, q := range visible {
		cards[i] = renderCard(q, cardWidth, i == s.selected, compact)
	}

	budget := height - lipgloss.Height(header) - 1
	start, end := window(cards, s.selected, budget)

	var b strings.Builder
	b.WriteString(header)
	for _, c := range cards[start:end] {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, c))
	}
	return b.String()
}

func renderCard(q question.Question, width int, selected, compact bool) string {
	return components.QuestionCard(q, components.CardOptions{
		Width:     width,
		Selected:  selected,
		Completed: true,
		Action:    components.ActionRetry,
		Compact:   compact,
	})
}

func (s *HistoryScreen) renderFilterBar() string {
	label := question.DisplayText(s.filters[s.filter])
	arrows := lipgloss.NewStyle().Foreground(theme.TextDim)
	return theme.Label.Render("Filter by pattern: ") +
		arrows.Render("◂ ") +
		theme.Selected.Render(label) +
		arrows.Render(" ▸") +
		arrows.Render(fmt.Sprintf("  (%d/%d)", s.filter+1, len(s.filters)))
}

// window returns the range of cards to draw: the selected card, then as
// many following and then preceding cards as fit in budget lines.
func window(cards []string, selected, budget int) (int, int) {
	if len(cards) == 0 {
		return 0, 0
	}
	selected = max(0, min(selected, len(cards)-1))
	start, end := selected, selected+1
	used := lipgloss.Height(cards[selected])

	for end < len(cards) {
		h := lipgloss.Height(cards[end])
		if used+h > budget {
			break
		}
		used += h
		end++
	}
	for start > 0 {
		h := lipgloss.Height(cards[start-1])
		if used+h > budget {
			break
		}
		used += h
		start--
	}
	return start, end
}
