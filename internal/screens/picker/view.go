package picker

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/anduckhmt146/leetpick/internal/countdown"
	"github.com/anduckhmt146/leetpick/internal/ui/components"
	"github.com/anduckhmt146/leetpick/internal/ui/layout"
	"github.com/anduckhmt146/leetpick/internal/ui/theme"
)

const maxCardWidth = 76

func (s *PickerScreen) View(width, height int) string {
	if s.pending != nil {
		return components.ConfirmDialog(s.pending.prompt, s.pending.detail, width, height)
	}

	cardWidth := min(width-4, maxCardWidth)
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.renderStatus(cardWidth)))
	b.WriteString("\n\n")

	if len(s.batch) == 0 {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Success).
			Bold(true).
			Render("All questions completed!"))
		b.WriteString("\n")
		return b.String()
	}

	compact := layout.IsCompactHeight(height)
	for i, q := range s.batch {
		done := s.deps.Ledger.Has(q.Name)
		action := components.ActionDone
		if done {
			action = components.ActionUndo
		}
		card := components.QuestionCard(q, components.CardOptions{
			Width:     cardWidth,
			Selected:  i == s.cursor,
			Completed: done,
			Action:    action,
			Compact:   compact,
		})
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, card))
		b.WriteString("\n")
	}

	if s.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(s.errMsg))
	}

	return b.String()
}

// renderStatus renders the countdown followed by the progress bar.
func (s *PickerScreen) renderStatus(width int) string {
	var timer string
	switch {
	case s.deps.Countdown == nil:
	case s.timer == countdown.Expired:
		timer = theme.TimerExpired.Render("Time's up")
	default:
		timer = theme.Timer.Render("⏱ " + countdown.Format(s.remaining))
	}

	p := s.Progress()
	barWidth := width - lipgloss.Width(timer) - 2
	bar := components.NewProgressBar("Progress", p.Done, p.Total, barWidth).View()
	if timer == "" {
		return bar
	}
	return timer + "  " + bar
}
