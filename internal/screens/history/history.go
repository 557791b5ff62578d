package history

import (
	"context"
	"log/slog"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/anduckhmt146/leetpick/internal/ledger"
	"github.com/anduckhmt146/leetpick/internal/logging"
	"github.com/anduckhmt146/leetpick/internal/pool"
	"github.com/anduckhmt146/leetpick/internal/question"
	"github.com/anduckhmt146/leetpick/internal/router"
	"github.com/anduckhmt146/leetpick/internal/screen"
	"github.com/anduckhmt146/leetpick/internal/ui/components"
	"github.com/anduckhmt146/leetpick/internal/ui/layout"
)

// AllPatterns is the filter option that shows every completed question.
const AllPatterns = "All"

// HistoryScreen lists completed questions with a pattern filter.
type HistoryScreen struct {
	pool   *pool.Pool
	ledger *ledger.Ledger
	logger *slog.Logger
	keys   keyMap

	filters  []string
	filter   int
	selected int
	search   components.SearchInput
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)
var _ screen.ProgressProvider = (*HistoryScreen)(nil)

// New creates a HistoryScreen over the pool's completed questions.
func New(p *pool.Pool, l *ledger.Ledger, logger *slog.Logger) *HistoryScreen {
	s := &HistoryScreen{
		pool:   p,
		ledger: l,
		logger: logging.OrDiscard(logger),
		keys:   defaultKeyMap(),
		search: components.NewSearchInput("search by name", 40),
	}
	s.refreshFilters()
	return s
}

func (s *HistoryScreen) Init() tea.Cmd {
	return nil
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	if s.search.Focused() {
		return layout.HintsFor(s.keys.Accept, s.keys.Cancel)
	}
	return layout.HintsFor(s.keys.Up, s.keys.Prev, s.keys.Retry, s.keys.Search, s.keys.Back)
}

func (s *HistoryScreen) Progress() layout.Progress {
	all := s.pool.Questions()
	return layout.Progress{
		Done:  len(ledger.FilterCompleted(all, s.ledger)),
		Total: len(all),
	}
}

// Filters returns the filter options: AllPatterns followed by the unique
// patterns of completed questions in first-seen order.
func (s *HistoryScreen) Filters() []string {
	return append([]string(nil), s.filters...)
}

// Visible returns the completed questions passing the current filter and
// search, in pool order.
func (s *HistoryScreen) Visible() []question.Question {
	completed := ledger.FilterCompleted(s.pool.Questions(), s.ledger)
	pattern := s.filters[s.filter]
	query := s.search.Query()

	out := make([]question.Question, 0, len(completed))
	for _, q := range completed {
		if pattern != AllPatterns && q.Pattern != pattern {
			continue
		}
		if query != "" && !matches(q, query) {
			continue
		}
		out = append(out, q)
	}
	return out
}

func matches(q question.Question, query string) bool {
	return strings.Contains(strings.ToLower(q.Name), query) ||
		strings.Contains(strings.ToLower(q.Title()), query)
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		if s.search.Focused() {
			var cmd tea.Cmd
			s.search, cmd = s.search.Update(msg)
			return s, cmd
		}
		return s, nil
	}

	if s.search.Focused() {
		return s.handleSearchKey(kmsg)
	}

	switch {
	case key.Matches(kmsg, s.keys.Back):
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case key.Matches(kmsg, s.keys.Up):
		if s.selected > 0 {
			s.selected--
		}
	case key.Matches(kmsg, s.keys.Down):
		if s.selected < len(s.Visible())-1 {
			s.selected++
		}
	case key.Matches(kmsg, s.keys.Prev):
		s.cycleFilter(-1)
	case key.Matches(kmsg, s.keys.Next):
		s.cycleFilter(1)
	case key.Matches(kmsg, s.keys.Retry):
		s.retrySelected()
	case key.Matches(kmsg, s.keys.Search):
		return s, s.search.Focus()
	}
	return s, nil
}

func (s *HistoryScreen) handleSearchKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	switch {
	case key.Matches(msg, s.keys.Accept):
		s.search.Blur()
		return s, nil
	case key.Matches(msg, s.keys.Cancel):
		s.search.Clear()
		s.selected = 0
		return s, nil
	}
	var cmd tea.Cmd
	s.search, cmd = s.search.Update(msg)
	s.selected = 0
	return s, cmd
}

func (s *HistoryScreen) cycleFilter(step int) {
	n := len(s.filters)
	s.filter = ((s.filter+step)%n + n) % n
	s.selected = 0
}

// retrySelected removes the selected question from the ledger so it can be
// picked again.
func (s *HistoryScreen) retrySelected() {
	visible := s.Visible()
	if s.selected < 0 || s.selected >= len(visible) {
		return
	}
	name := visible[s.selected].Name
	if _, err := s.ledger.Toggle(context.Background(), name); err != nil {
		s.errMsg = "Could not save progress."
		return
	}
	s.errMsg = ""
	s.logger.Info("question reopened", "name", name)

	s.refreshFilters()
	if n := len(s.Visible()); s.selected >= n {
		s.selected = max(n-1, 0)
	}
}

// refreshFilters rebuilds the filter options, keeping the current pattern
// selected while it still has completed questions.
func (s *HistoryScreen) refreshFilters() {
	current := AllPatterns
	if s.filter < len(s.filters) {
		current = s.filters[s.filter]
	}

	seen := map[string]bool{}
	filters := []string{AllPatterns}
	for _, q := range ledger.FilterCompleted(s.pool.Questions(), s.ledger) {
		if q.Pattern == "" || seen[q.Pattern] {
			continue
		}
		seen[q.Pattern] = true
		filters = append(filters, q.Pattern)
	}

	s.filters = filters
	s.filter = 0
	for i, f := range filters {
		if f == current {
			s.filter = i
			break
		}
	}
}
