package pool

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/anduckhmt146/leetpick/internal/logging"
	"github.com/anduckhmt146/leetpick/internal/question"
	"github.com/anduckhmt146/leetpick/internal/store"
)

var questionsSchema = &store.Schema{
	Name: "all-questions",
	Definition: map[string]any{
		"type": "array",
		"items": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"name":     map[string]any{"type": "string", "minLength": 1},
				"topic":    map[string]any{"type": "string"},
				"pattern":  map[string]any{"type": "string"},
				"solution": map[string]any{"type": "string"},
			},
			"required": []any{"name"},
		},
	},
}

// Source yields the raw table document the pool is parsed from.
type Source func() (string, error)

// StaticSource returns doc unchanged.
func StaticSource(doc string) Source {
	return func() (string, error) { return doc, nil }
}

// FileSource reads the document at path on each call.
func FileSource(path string) Source {
	return func() (string, error) {
		b, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("read question source: %w", err)
		}
		return string(b), nil
	}
}

// Pool is the cached universe of questions for a session.
type Pool struct {
	kv        store.KV
	src       Source
	logger    *slog.Logger
	questions []question.Question
	index     map[string]int
	fromCache bool
}

// Load restores the pool from the cache, or parses src and caches the
// result when the cache is absent, empty or corrupt. Load never fails: an
// unreadable source yields an empty pool.
func Load(ctx context.Context, kv store.KV, src Source, logger *slog.Logger) *Pool {
	p := &Pool{kv: kv, src: src, logger: logging.OrDiscard(logger)}

	if cached := p.restore(ctx); len(cached) > 0 {
		p.set(cached)
		p.fromCache = true
		p.logger.Debug("pool restored from cache", "questions", len(cached))
		return p
	}

	p.parseAndCache(ctx)
	return p
}

// Refresh discards the cache and parses the source again.
func (p *Pool) Refresh(ctx context.Context) error {
	if err := p.kv.Delete(ctx, store.KeyAllQuestions); err != nil {
		return fmt.Errorf("clear question cache: %w", err)
	}
	p.parseAndCache(ctx)
	return nil
}

// Questions returns a copy of the pool in source order.
func (p *Pool) Questions() []question.Question {
	out := make([]question.Question, len(p.questions))
	copy(out, p.questions)
	return out
}

// Len returns the number of questions in the pool.
func (p *Pool) Len() int {
	return len(p.questions)
}

// Lookup returns the question with the given name.
func (p *Pool) Lookup(name string) (question.Question, bool) {
	i, ok := p.index[name]
	if !ok {
		return question.Question{}, false
	}
	return p.questions[i], true
}

// FromCache reports whether the pool was restored rather than parsed.
func (p *Pool) FromCache() bool {
	return p.fromCache
}

func (p *Pool) restore(ctx context.Context) []question.Question {
	raw, ok, err := p.kv.Get(ctx, store.KeyAllQuestions)
	if err != nil {
		p.logger.Warn("read question cache", "error", err)
		return nil
	}
	if !ok {
		return nil
	}
	var qs []question.Question
	if err := store.DecodeJSON(store.KeyAllQuestions, raw, questionsSchema, &qs); err != nil {
		p.logger.Warn("discarding corrupt question cache", "error", err)
		return nil
	}
	return qs
}

func (p *Pool) parseAndCache(ctx context.Context) {
	p.fromCache = false

	var qs []question.Question
	if p.src != nil {
		doc, err := p.src()
		if err != nil {
			p.logger.Warn("question source unavailable", "error", err)
		} else {
			qs = question.Parse(doc)
		}
	}
	p.set(qs)
	p.logger.Info("pool parsed from source", "questions", len(p.questions))

	raw, err := store.EncodeJSON(p.Questions())
	if err != nil {
		p.logger.Error("encode question cache", "error", err)
		return
	}
	if err := p.kv.Set(ctx, store.KeyAllQuestions, raw); err != nil {
		p.logger.Error("persist question cache", "error", err)
	}
}

// set installs qs, keeping the first question of each name.
func (p *Pool) set(qs []question.Question) {
	p.questions = make([]question.Question, 0, len(qs))
	p.index = make(map[string]int, len(qs))
	for _, q := range qs {
		if _, dup := p.index[q.Name]; dup {
			continue
		}
		p.index[q.Name] = len(p.questions)
		p.questions = append(p.questions, q)
	}
}
