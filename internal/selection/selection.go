package selection

import (
	"math/rand/v2"

	"github.com/anduckhmt146/leetpick/internal/ledger"
	"github.com/anduckhmt146/leetpick/internal/question"
)

// DefaultBatchSize is the number of questions shown at once.
const DefaultBatchSize = 3

// Engine draws random batches of questions.
type Engine struct {
	rng *rand.Rand
}

// New returns an Engine drawing from src. A nil src uses a randomly seeded
// PCG generator.
func New(src rand.Source) *Engine {
	if src == nil {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	return &Engine{rng: rand.New(src)}
}

// NewSeeded returns an Engine whose draws are reproducible for a given seed.
func NewSeeded(seed uint64) *Engine {
	return New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Shuffle permutes qs in place with a Fisher-Yates shuffle.
func (e *Engine) Shuffle(qs []question.Question) {
	for i := len(qs) - 1; i > 0; i-- {
		j := e.rng.IntN(i + 1)
		qs[i], qs[j] = qs[j], qs[i]
	}
}

// PickRandom returns up to k questions from pool that are not in done,
// in random order. It returns an empty batch when nothing remains or k <= 0.
func (e *Engine) PickRandom(pool []question.Question, done ledger.Membership, k int) []question.Question {
	remaining := ledger.FilterRemaining(pool, done)
	if len(remaining) == 0 || k <= 0 {
		return []question.Question{}
	}

	e.Shuffle(remaining)
	return remaining[:min(k, len(remaining))]
}

// PickUniqueSets shuffles pool once and cuts it into up to setsCount
// disjoint batches of exactly perSet questions. A trailing batch shorter
// than perSet is discarded.
func (e *Engine) PickUniqueSets(pool []question.Question, setsCount, perSet int) [][]question.Question {
	if setsCount <= 0 || perSet <= 0 {
		return nil
	}

	shuffled := make([]question.Question, len(pool))
	copy(shuffled, pool)
	e.Shuffle(shuffled)

	var sets [][]question.Question
	for i := 0; i < setsCount; i++ {
		lo, hi := i*perSet, (i+1)*perSet
		if hi > len(shuffled) {
			break
		}
		sets = append(sets, shuffled[lo:hi:hi])
	}
	return sets
}
