package picker

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/anduckhmt146/leetpick/internal/countdown"
)

// tickMsg drives the countdown display. Ticks from an older generation are
// dropped, which ends that chain.
type tickMsg struct {
	gen int
}

func tickCmd(gen int) tea.Cmd {
	return tea.Tick(countdown.TickInterval, func(time.Time) tea.Msg {
		return tickMsg{gen: gen}
	})
}

type actionKind int

const (
	actionNone actionKind = iota
	actionRepick
	actionViewHistory
)

// pendingAction is an action waiting on the confirmation dialog.
type pendingAction struct {
	kind    actionKind
	prompt  string
	detail  string
	confirm func() tea.Cmd
}
