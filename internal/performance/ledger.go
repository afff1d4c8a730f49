package performance

import "github.com/adaptype/adaptype/internal/model"

const (
	masterySpeed   = 30.0
	masteryCorrect = 2
)

// Ledger tracks words the user has mistyped until they are mastered.
type Ledger struct {
	entries []model.ProblemWord
}

// Add records a fresh mistake for word. An existing entry has its speed
// smoothed with (old+new)/2, its backspace count replaced, and its
// correct-attempt counter reset.
func (l *Ledger) Add(word string, speed float64, backspaces int) {
	for i := range l.entries {
		if l.entries[i].Word == word {
			l.entries[i].Speed = (l.entries[i].Speed + speed) / 2
			l.entries[i].Backspaces = backspaces
			l.entries[i].CorrectAttempts = 0
			return
		}
	}
	l.entries = append(l.entries, model.ProblemWord{
		Word:       word,
		Speed:      speed,
		Backspaces: backspaces,
	})
}

// RecordCorrectAttempt bumps the correct-attempt counter for word, if tracked.
func (l *Ledger) RecordCorrectAttempt(word string) {
	for i := range l.entries {
		if l.entries[i].Word == word {
			l.entries[i].CorrectAttempts++
			return
		}
	}
}

// RemoveLearned evicts entries that are both fast and reliably correct.
func (l *Ledger) RemoveLearned() {
	kept := l.entries[:0]
	for _, entry := range l.entries {
		if entry.Speed < masterySpeed || entry.CorrectAttempts < masteryCorrect {
			kept = append(kept, entry)
		}
	}
	l.entries = kept
}

// Entries returns the tracked problem words.
func (l *Ledger) Entries() []model.ProblemWord {
	return l.entries
}
