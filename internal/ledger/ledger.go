package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/anduckhmt146/leetpick/internal/logging"
	"github.com/anduckhmt146/leetpick/internal/question"
	"github.com/anduckhmt146/leetpick/internal/store"
)

var completedSchema = &store.Schema{
	Name: "completed-questions",
	Definition: map[string]any{
		"type":  "array",
		"items": map[string]any{"type": "string"},
	},
}

// Membership reports whether a question name is marked complete.
type Membership interface {
	Has(name string) bool
}

// NameSet is a plain in-memory Membership.
type NameSet map[string]struct{}

// NewNameSet returns a NameSet holding names.
func NewNameSet(names ...string) NameSet {
	s := make(NameSet, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}
	return s
}

func (s NameSet) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Ledger is the persisted set of completed question names.
type Ledger struct {
	kv     store.KV
	logger *slog.Logger
	names  []string
	set    NameSet
}

// Load restores the ledger from kv. Absent or corrupt data yields an empty
// ledger; corruption is logged and otherwise ignored.
func Load(ctx context.Context, kv store.KV, logger *slog.Logger) *Ledger {
	logger = logging.OrDiscard(logger)
	l := &Ledger{kv: kv, logger: logger, set: NameSet{}}

	raw, ok, err := kv.Get(ctx, store.KeyCompleted)
	if err != nil {
		logger.Warn("load ledger", "error", err)
		return l
	}
	if !ok {
		return l
	}

	var names []string
	if err := store.DecodeJSON(store.KeyCompleted, raw, completedSchema, &names); err != nil {
		logger.Warn("discarding corrupt ledger", "error", err)
		return l
	}
	for _, n := range names {
		if l.set.Has(n) {
			continue
		}
		l.set[n] = struct{}{}
		l.names = append(l.names, n)
	}
	return l
}

// Has reports whether name is marked complete.
func (l *Ledger) Has(name string) bool {
	return l.set.Has(name)
}

// Len returns the number of completed names.
func (l *Ledger) Len() int {
	return len(l.names)
}

// Names returns the completed names in the order they were marked.
func (l *Ledger) Names() []string {
	out := make([]string, len(l.names))
	copy(out, l.names)
	return out
}

// Toggle flips the completion state of name and persists the full set.
// It returns the new state. On a persistence error the in-memory change is
// kept and the error is returned.
func (l *Ledger) Toggle(ctx context.Context, name string) (bool, error) {
	completed := !l.set.Has(name)
	if completed {
		l.set[name] = struct{}{}
		l.names = append(l.names, name)
	} else {
		delete(l.set, name)
		if i := slices.Index(l.names, name); i >= 0 {
			l.names = slices.Delete(l.names, i, i+1)
		}
	}

	l.logger.Debug("toggle completion", "question", name, "completed", completed)
	return completed, l.save(ctx)
}

// Clear removes every name and persists the empty set.
func (l *Ledger) Clear(ctx context.Context) error {
	l.names = nil
	l.set = NameSet{}
	return l.save(ctx)
}

func (l *Ledger) save(ctx context.Context) error {
	names := l.names
	if names == nil {
		names = []string{}
	}
	raw, err := store.EncodeJSON(names)
	if err != nil {
		return fmt.Errorf("encode ledger: %w", err)
	}
	if err := l.kv.Set(ctx, store.KeyCompleted, raw); err != nil {
		l.logger.Error("persist ledger", "error", err)
		return fmt.Errorf("persist ledger: %w", err)
	}
	return nil
}

// FilterRemaining returns the questions of pool whose names are not in done,
// preserving pool order.
func FilterRemaining(pool []question.Question, done Membership) []question.Question {
	out := make([]question.Question, 0, len(pool))
	for _, q := range pool {
		if done != nil && done.Has(q.Name) {
			continue
		}
		out = append(out, q)
	}
	return out
}

// FilterCompleted returns the questions of pool whose names are in done,
// preserving pool order.
func FilterCompleted(pool []question.Question, done Membership) []question.Question {
	var out []question.Question
	for _, q := range pool {
		if done != nil && done.Has(q.Name) {
			out = append(out, q)
		}
	}
	return out
}
