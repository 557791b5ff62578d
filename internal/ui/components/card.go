package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/anduckhmt146/leetpick/internal/question"
	"github.com/anduckhmt146/leetpick/internal/ui/theme"
)

// CardAction is the marker shown in a question card's title row.
type CardAction int

const (
	ActionNone  CardAction = iota
	ActionDone             // not yet completed; pressing marks it done
	ActionUndo             // completed; pressing reverts it
	ActionRetry            // history view; pressing removes it from the ledger
)

func (a CardAction) label() string {
	switch a {
	case ActionDone:
		return theme.Done.Render("[✔ Done]")
	case ActionUndo:
		return theme.Undo.Render("[✗ Undo]")
	case ActionRetry:
		return theme.Undo.Render("[↻ Retry]")
	}
	return ""
}

// CardOptions controls how a QuestionCard is drawn.
type CardOptions struct {
	Width     int
	Selected  bool
	Completed bool
	Action    CardAction
	Compact   bool // drop the URL line
}

// QuestionCard renders a question as a bordered card: the topic display
// text as the title, its URL dimmed beneath, then the pattern and solution
// lines. Empty fields are omitted.
func QuestionCard(q question.Question, opts CardOptions) string {
	style := theme.Card
	switch {
	case opts.Selected:
		style = theme.CardSelected
	case opts.Completed:
		style = theme.CardDone
	}

	// Border (2) + horizontal padding (4).
	inner := max(opts.Width-6, 10)

	var lines []string

	title := theme.CardTitle.Render(q.Title())
	if opts.Selected {
		title = theme.Selected.Render("▸ ") + title
	}
	if action := opts.Action.label(); action != "" {
		gap := inner - lipgloss.Width(title) - lipgloss.Width(action)
		if gap < 1 {
			gap = 1
		}
		title += strings.Repeat(" ", gap) + action
	}
	lines = append(lines, title)

	if url := q.URL(); url != "" && !opts.Compact {
		lines = append(lines, theme.Link.Render(url))
	}
	if q.Pattern != "" {
		lines = append(lines, theme.Label.Render("Topic: ")+theme.Body.Render(question.DisplayText(q.Pattern)))
	}
	if q.Solution != "" {
		lines = append(lines, theme.Label.Render("Pattern: ")+theme.Body.Render(question.DisplayText(q.Solution)))
	}

	return style.Width(opts.Width).Render(strings.Join(lines, "\n"))
}
