package quiz

import (
	"math/rand/v2"
	"time"

	"github.com/vocamaster/vocamaster/internal/vocab"
)

// Outcome is the result of one quiz question.
type Outcome int

const (
	Incorrect Outcome = iota
	Correct
)

func (o Outcome) String() string {
	if o == Correct {
		return "correct"
	}
	return "incorrect"
}

// Selector picks entries to quiz, favouring less mastered ones.
type Selector struct {
	rng *rand.Rand
}

// NewSelector creates a selector drawing from src.
func NewSelector(src rand.Source) *Selector {
	return &Selector{rng: rand.New(src)}
}

// NewSeededSelector creates a selector seeded once from the clock.
func NewSeededSelector() *Selector {
	now := uint64(time.Now().UnixNano())
	return NewSelector(rand.NewPCG(now, now>>17|now<<47))
}

// Select draws uniformly random entries until one passes LevelPenalty.
//
// The loop has no fixed bound. Acceptance is at least 1/MaxLevel per
// draw, so the expected number of draws is at most MaxLevel.
func (s *Selector) Select(repo *vocab.Repository) (*vocab.Entry, error) {
	n := repo.Len()
	if n == 0 {
		return nil, vocab.ErrEmptyRepository
	}
	for {
		e, err := repo.Get(s.rng.IntN(n))
		if err != nil {
			return nil, err
		}
		if s.LevelPenalty(e.Level()) {
			return e, nil
		}
	}
}

// LevelPenalty accepts an entry at the given level with probability
// (MaxLevel-level+1)/MaxLevel: always at level 1, one in five at level 5.
func (s *Selector) LevelPenalty(level int) bool {
	coefficient := s.rng.IntN(vocab.MaxLevel) + 1
	return level-coefficient <= 0
}

// RecordAnswer grades answer against the entry's word (exact,
// case-sensitive) and updates its score. Either way the repository is
// marked dirty.
func RecordAnswer(repo *vocab.Repository, e *vocab.Entry, answer string) Outcome {
	defer repo.MarkDirty()
	if answer == e.Word() {
		e.GainScore()
		return Correct
	}
	e.LoseScore()
	return Incorrect
}
