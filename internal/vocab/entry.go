package vocab

import "fmt"

const (
	// MaxLevel is the highest mastery level an entry can reach.
	MaxLevel = 5

	// MinLevel is the level every new entry starts at.
	MinLevel = 1

	// MaxExperience is the experience needed to advance one level.
	MaxExperience = 100

	// scoreStep scales gains and losses.
	scoreStep = 10
)

// Entry is one vocabulary item together with its mastery state.
type Entry struct {
	word        string
	meaning     string
	explanation string
	experience  int
	level       int
}

// NewEntry creates an entry at level 1 with no experience.
func NewEntry(word, meaning, explanation string) Entry {
	return Entry{
		word:        word,
		meaning:     meaning,
		explanation: explanation,
		experience:  0,
		level:       MinLevel,
	}
}

// RestoreEntry rebuilds a previously persisted entry.
func RestoreEntry(word, meaning, explanation string, experience, level int) (Entry, error) {
	if experience < 0 || experience > MaxExperience {
		return Entry{}, fmt.Errorf("%w: experience %d out of [0, %d]", ErrInvalidScore, experience, MaxExperience)
	}
	if level < MinLevel || level > MaxLevel {
		return Entry{}, fmt.Errorf("%w: level %d out of [%d, %d]", ErrInvalidScore, level, MinLevel, MaxLevel)
	}
	e := NewEntry(word, meaning, explanation)
	e.experience = experience
	e.level = level
	return e, nil
}

func (e *Entry) Word() string        { return e.word }
func (e *Entry) Meaning() string     { return e.meaning }
func (e *Entry) Explanation() string { return e.explanation }
func (e *Entry) Experience() int     { return e.experience }
func (e *Entry) Level() int          { return e.level }

// GainScore rewards a correct answer. Lower levels gain more per answer.
// Crossing MaxExperience promotes the entry one level; at MaxLevel the
// experience is clamped instead.
func (e *Entry) GainScore() {
	e.experience += (MaxLevel - e.level + 1) * scoreStep
	if e.experience < MaxExperience {
		return
	}
	if e.level < MaxLevel {
		e.experience -= MaxExperience
		e.level++
	} else {
		e.experience = MaxExperience
	}
}

// LoseScore penalises a wrong answer. Higher levels lose more per answer.
// Dropping below zero demotes the entry one level; at level 1 the
// experience is clamped to zero instead.
func (e *Entry) LoseScore() {
	e.experience -= e.level * scoreStep
	if e.experience >= 0 {
		return
	}
	if e.level == MinLevel {
		e.experience = 0
	} else {
		e.experience += MaxExperience
		e.level--
	}
}
