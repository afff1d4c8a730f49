package performance

import (
	"time"

	"github.com/adaptype/adaptype/internal/model"
)

// Tracker aggregates the per-session typing metrics: rolling speeds,
// fastest/slowest rankings, the problem-word ledger, struggle combinations,
// and the raw keystroke-timing state of the current attempt.
type Tracker struct {
	speeds   SpeedWindow
	extremes Extremes
	ledger   Ledger
	combos   StruggleCombos

	lastKeypress time.Time
	wordStart    time.Time

	totalTime         time.Duration
	totalCorrectChars int

	backspaces int
	mistyped   []int
}

// StartWordIfNeeded records t as the word start unless one is already set.
func (t *Tracker) StartWordIfNeeded(now time.Time) {
	if t.wordStart.IsZero() {
		t.wordStart = now
	}
}

// WordStart returns the start timestamp of the current attempt, if any.
func (t *Tracker) WordStart() (time.Time, bool) {
	return t.wordStart, !t.wordStart.IsZero()
}

// LastKeypress returns the previous keystroke timestamp, if any.
func (t *Tracker) LastKeypress() (time.Time, bool) {
	return t.lastKeypress, !t.lastKeypress.IsZero()
}

// SetLastKeypress updates the previous keystroke timestamp.
func (t *Tracker) SetLastKeypress(now time.Time) {
	t.lastKeypress = now
}

// UpdateStruggleCombos feeds an inter-keystroke interval and the input typed
// so far to the combination tracker.
func (t *Tracker) UpdateStruggleCombos(elapsed time.Duration, input string) {
	t.combos.Update(elapsed, input)
}

// RecordMistype remembers a mistyped position in the current attempt.
func (t *Tracker) RecordMistype(pos int) {
	t.mistyped = append(t.mistyped, pos)
}

// UndoMistypeAt drops the most recent mistyped position if it matches pos.
func (t *Tracker) UndoMistypeAt(pos int) {
	if len(t.mistyped) > 0 && t.mistyped[len(t.mistyped)-1] == pos {
		t.mistyped = t.mistyped[:len(t.mistyped)-1]
	}
}

// MistypedPositions returns the mistyped positions of the current attempt.
func (t *Tracker) MistypedPositions() []int {
	return t.mistyped
}

// RecordBackspace counts a backspace in the current attempt.
func (t *Tracker) RecordBackspace() {
	t.backspaces++
}

// BackspaceUsed reports whether the current attempt used backspace.
func (t *Tracker) BackspaceUsed() bool {
	return t.backspaces > 0
}

// BackspaceCount returns the backspaces of the current attempt.
func (t *Tracker) BackspaceCount() int {
	return t.backspaces
}

// RecordWordCompleted adds the attempt's elapsed time and character count to
// the cumulative totals used for the aggregate WPM.
func (t *Tracker) RecordWordCompleted(wordLen int, now time.Time) {
	if t.wordStart.IsZero() {
		return
	}
	t.totalTime += now.Sub(t.wordStart)
	t.totalCorrectChars += wordLen
}

// ResetWordState clears the per-attempt state for the next word.
func (t *Tracker) ResetWordState() {
	t.mistyped = nil
	t.backspaces = 0
	t.wordStart = time.Time{}
}

// AddWordSpeed records a completed word speed in the rolling window.
func (t *Tracker) AddWordSpeed(speed float64) {
	t.speeds.Add(speed)
}

// RollingAverage returns the mean speed of the last ten words.
func (t *Tracker) RollingAverage() float64 {
	return t.speeds.Average()
}

// UpdateExtremes records a completed word in the fastest/slowest rankings.
func (t *Tracker) UpdateExtremes(word string, speed float64) {
	t.extremes.Update(word, speed)
}

// AddProblemWord records a mistake on word with the attempt's speed and
// backspace count.
func (t *Tracker) AddProblemWord(word string, speed float64) {
	t.ledger.Add(word, speed, t.backspaces)
}

// RecordLedgerCorrect bumps the ledger's correct-attempt counter for word.
func (t *Tracker) RecordLedgerCorrect(word string) {
	t.ledger.RecordCorrectAttempt(word)
}

// RemoveLearnedWords evicts mastered entries from the ledger.
func (t *Tracker) RemoveLearnedWords() {
	t.ledger.RemoveLearned()
}

// AverageWPM returns the aggregate words per minute over all completed
// words, or 0 when no time has elapsed.
func (t *Tracker) AverageWPM() float64 {
	minutes := t.totalTime.Minutes()
	if minutes <= 0 {
		return 0
	}
	return (float64(t.totalCorrectChars) / 5.0) / minutes
}

// FastestWords returns the fastest-words ranking.
func (t *Tracker) FastestWords() []model.WordSpeed {
	return t.extremes.Fastest()
}

// SlowestWords returns the slowest-words ranking.
func (t *Tracker) SlowestWords() []model.WordSpeed {
	return t.extremes.Slowest()
}

// ProblemWords returns the problem-word ledger entries.
func (t *Tracker) ProblemWords() []model.ProblemWord {
	return t.ledger.Entries()
}

// StruggleCombinations returns the ranked struggle combinations.
func (t *Tracker) StruggleCombinations() []model.ComboSpeed {
	return t.combos.Combinations()
}
