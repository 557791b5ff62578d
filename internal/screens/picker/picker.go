package picker

import (
	"context"
	"log/slog"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/anduckhmt146/leetpick/internal/countdown"
	"github.com/anduckhmt146/leetpick/internal/ledger"
	"github.com/anduckhmt146/leetpick/internal/logging"
	"github.com/anduckhmt146/leetpick/internal/pool"
	"github.com/anduckhmt146/leetpick/internal/question"
	"github.com/anduckhmt146/leetpick/internal/router"
	"github.com/anduckhmt146/leetpick/internal/screen"
	"github.com/anduckhmt146/leetpick/internal/selection"
	"github.com/anduckhmt146/leetpick/internal/ui/layout"
)

// Deps are the collaborators a picker screen needs.
type Deps struct {
	Pool      *pool.Pool
	Ledger    *ledger.Ledger
	Engine    *selection.Engine
	Countdown *countdown.Countdown
	BatchSize int

	// History builds the screen pushed by the "view history" action.
	History func() screen.Screen

	Logger *slog.Logger
}

// PickerScreen shows a random batch of unfinished questions, the study
// countdown and overall progress.
type PickerScreen struct {
	deps   Deps
	keys   keyMap
	logger *slog.Logger

	batch   []question.Question
	cursor  int
	pending *pendingAction
	errMsg  string

	gen       int
	remaining time.Duration
	timer     countdown.State
}

var _ screen.Screen = (*PickerScreen)(nil)
var _ screen.KeyHintProvider = (*PickerScreen)(nil)
var _ screen.Resumable = (*PickerScreen)(nil)
var _ screen.ProgressProvider = (*PickerScreen)(nil)

// New creates a PickerScreen and draws its first batch.
func New(deps Deps) *PickerScreen {
	if deps.BatchSize <= 0 {
		deps.BatchSize = selection.DefaultBatchSize
	}
	if deps.Engine == nil {
		deps.Engine = selection.New(nil)
	}
	s := &PickerScreen{
		deps:   deps,
		keys:   defaultKeyMap(),
		logger: logging.OrDiscard(deps.Logger),
	}
	if deps.Countdown != nil {
		s.remaining = deps.Countdown.Remaining()
	}
	s.repick()
	return s
}

func (s *PickerScreen) Init() tea.Cmd {
	cd := s.deps.Countdown
	if cd == nil {
		return nil
	}
	if err := cd.Start(context.Background()); err != nil {
		s.logger.Warn("countdown anchor not saved", "error", err)
	}
	return s.refreshTimer()
}

// Resume takes ownership of the tick chain again after a covering screen
// is popped.
func (s *PickerScreen) Resume() tea.Cmd {
	s.gen++
	s.clampCursor()
	return s.refreshTimer()
}

func (s *PickerScreen) Title() string {
	return "Pick"
}

func (s *PickerScreen) KeyHints() []layout.KeyHint {
	if s.pending != nil {
		return layout.HintsFor(s.keys.Confirm, s.keys.Cancel)
	}
	return layout.HintsFor(s.keys.Up, s.keys.Toggle, s.keys.Repick, s.keys.History, s.keys.Quit)
}

func (s *PickerScreen) Progress() layout.Progress {
	all := s.deps.Pool.Questions()
	return layout.Progress{
		Done:  len(ledger.FilterCompleted(all, s.deps.Ledger)),
		Total: len(all),
	}
}

func (s *PickerScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if msg.gen != s.gen {
			return s, nil
		}
		return s, s.refreshTimer()

	case tea.KeyPressMsg:
		if s.pending != nil {
			return s.handleDialogKey(msg)
		}
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *PickerScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	switch {
	case key.Matches(msg, s.keys.Up):
		if s.cursor > 0 {
			s.cursor--
		}
	case key.Matches(msg, s.keys.Down):
		if s.cursor < len(s.batch)-1 {
			s.cursor++
		}
	case key.Matches(msg, s.keys.Toggle):
		s.toggleSelected()
	case key.Matches(msg, s.keys.Repick):
		s.pending = &pendingAction{
			kind:   actionRepick,
			prompt: "Pick a new batch?",
			detail: "The current questions will be replaced.",
			confirm: func() tea.Cmd {
				s.repick()
				return nil
			},
		}
	case key.Matches(msg, s.keys.History):
		s.pending = &pendingAction{
			kind:    actionViewHistory,
			prompt:  "View completed questions?",
			detail:  "Your current picks stay as they are.",
			confirm: s.openHistory,
		}
	case key.Matches(msg, s.keys.Quit):
		return s, tea.Quit
	}
	return s, nil
}

func (s *PickerScreen) handleDialogKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	switch {
	case key.Matches(msg, s.keys.Confirm):
		action := s.pending
		s.pending = nil
		return s, action.confirm()
	case key.Matches(msg, s.keys.Cancel):
		s.pending = nil
	}
	return s, nil
}

func (s *PickerScreen) toggleSelected() {
	if s.cursor < 0 || s.cursor >= len(s.batch) {
		return
	}
	name := s.batch[s.cursor].Name
	completed, err := s.deps.Ledger.Toggle(context.Background(), name)
	if err != nil {
		s.errMsg = "Could not save progress."
		return
	}
	s.errMsg = ""
	s.logger.Info("question toggled", "name", name, "completed", completed)
}

func (s *PickerScreen) repick() {
	s.batch = s.deps.Engine.PickRandom(s.deps.Pool.Questions(), s.deps.Ledger, s.deps.BatchSize)
	s.cursor = 0
	s.logger.Debug("batch picked", "size", len(s.batch))
}

func (s *PickerScreen) openHistory() tea.Cmd {
	if s.deps.History == nil {
		return nil
	}
	// The covering screen receives the outstanding tick, ending the chain.
	s.gen++
	next := s.deps.History()
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: next}
	}
}

// refreshTimer recomputes the countdown and re-arms the tick while it runs.
func (s *PickerScreen) refreshTimer() tea.Cmd {
	if s.deps.Countdown == nil {
		return nil
	}
	s.remaining, s.timer = s.deps.Countdown.Tick()
	if s.timer != countdown.Running {
		return nil
	}
	return tickCmd(s.gen)
}

func (s *PickerScreen) clampCursor() {
	if s.cursor >= len(s.batch) {
		s.cursor = max(len(s.batch)-1, 0)
	}
}
