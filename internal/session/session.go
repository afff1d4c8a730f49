// Package session drives the per-keystroke practice state machine, keeping
// the word queue and the performance trackers in lockstep.
package session

import (
	"math/rand"
	"time"

	"github.com/adaptype/adaptype/internal/model"
	"github.com/adaptype/adaptype/internal/performance"
	"github.com/adaptype/adaptype/internal/queue"
)

// KeyKind enumerates the decoded key events the session reacts to.
type KeyKind int

const (
	// KeyRune is a decoded printable character. A space completes the
	// current word.
	KeyRune KeyKind = iota
	// KeyBackspace removes the last typed character.
	KeyBackspace
)

// Key is a decoded key event from the input layer.
type Key struct {
	Kind KeyKind
	Rune rune
}

// Session composes the word queue and the performance tracker into the
// per-keystroke state machine driven by the input layer.
type Session struct {
	perf  *performance.Tracker
	queue *queue.Queue

	lists     []model.WordList
	listIndex int

	input []rune

	now func() time.Time
}

// New starts a session on lists[listIndex], shuffling with rnd. An
// out-of-range index falls back to the first list; an empty lists slice
// yields a session over an empty pool.
func New(lists []model.WordList, listIndex int, rnd *rand.Rand) *Session {
	if listIndex < 0 || listIndex >= len(lists) {
		listIndex = 0
	}
	var words []string
	if listIndex < len(lists) {
		words = lists[listIndex].Words
	}
	return &Session{
		perf:      &performance.Tracker{},
		queue:     queue.New(words, rnd),
		lists:     lists,
		listIndex: listIndex,
		now:       time.Now,
	}
}

// OnKey processes one decoded key event.
func (s *Session) OnKey(key Key) {
	now := s.now()

	if key.Kind != KeyBackspace {
		s.perf.StartWordIfNeeded(now)
	}
	if last, ok := s.perf.LastKeypress(); ok {
		s.perf.UpdateStruggleCombos(now.Sub(last), string(s.input))
	}
	s.perf.SetLastKeypress(now)

	switch key.Kind {
	case KeyRune:
		if key.Rune == ' ' {
			s.completeWord(now)
			return
		}
		current := []rune(s.queue.CurrentWord())
		if len(s.input) < len(current) && key.Rune != current[len(s.input)] {
			s.perf.RecordMistype(len(s.input))
		}
		s.input = append(s.input, key.Rune)
	case KeyBackspace:
		if len(s.input) == 0 {
			return
		}
		s.input = s.input[:len(s.input)-1]
		s.perf.UndoMistypeAt(len(s.input))
		s.perf.RecordBackspace()
		s.flagProblemWord(now)
	}
}

func (s *Session) completeWord(now time.Time) {
	current := s.queue.CurrentWord()
	if string(s.input) == current {
		speed := s.wordSpeed(now)
		s.perf.AddWordSpeed(speed)
		s.perf.UpdateExtremes(current, speed)
		s.perf.RecordWordCompleted(len([]rune(current)), now)

		switch {
		case s.queue.IsRepeatingProblemWord():
			s.queue.RecordCorrectRepetition()
			if s.queue.ProblemRepetitions() >= queue.RequiredRepetitions {
				s.perf.RecordLedgerCorrect(current)
			}
		case s.perf.BackspaceUsed():
			s.flagProblemWord(now)
		default:
			s.perf.RecordLedgerCorrect(current)
		}

		s.perf.RemoveLearnedWords()
		s.queue.Advance()
	} else {
		s.flagProblemWord(now)
	}
	s.input = nil
	s.perf.ResetWordState()
}

func (s *Session) flagProblemWord(now time.Time) {
	current := s.queue.CurrentWord()
	s.perf.AddProblemWord(current, s.wordSpeed(now))
	s.queue.FlagProblem(current)
}

// wordSpeed computes the WPM of the current attempt. Zero elapsed time or a
// missing word start yields 0 rather than an infinite rate.
func (s *Session) wordSpeed(now time.Time) float64 {
	start, ok := s.perf.WordStart()
	if !ok {
		return 0
	}
	minutes := now.Sub(start).Minutes()
	if minutes <= 0 {
		return 0
	}
	return (float64(len([]rune(s.queue.CurrentWord()))) / 5.0) / minutes
}

// SwitchList replaces the active word list. The problem queue is preserved;
// per-attempt state and the input buffer are cleared. An out-of-range index
// is silently ignored.
func (s *Session) SwitchList(index int) {
	if index < 0 || index >= len(s.lists) {
		return
	}
	s.listIndex = index
	s.queue.SwitchWordList(s.lists[index].Words)
	s.perf.ResetWordState()
	s.input = nil
}

// Lists returns the available word lists.
func (s *Session) Lists() []model.WordList {
	return s.lists
}

// ListIndex returns the index of the active word list.
func (s *Session) ListIndex() int {
	return s.listIndex
}

// ListName returns the name of the active word list.
func (s *Session) ListName() string {
	if s.listIndex < len(s.lists) {
		return s.lists[s.listIndex].Name
	}
	return ""
}

// Input returns the user's input for the current attempt.
func (s *Session) Input() string {
	return string(s.input)
}

// MistypedPositions returns the positions mistyped in the current attempt.
func (s *Session) MistypedPositions() []int {
	return s.perf.MistypedPositions()
}

// CurrentWord returns the word being typed now.
func (s *Session) CurrentWord() string {
	return s.queue.CurrentWord()
}

// NextWords returns the lookahead words.
func (s *Session) NextWords() []string {
	return s.queue.NextWords()
}

// IsProblemRepeat reports whether the current word is a problem repeat.
func (s *Session) IsProblemRepeat() bool {
	return s.queue.IsRepeatingProblemWord()
}

// ProblemRepetitions returns the correct completions of the current repeat.
func (s *Session) ProblemRepetitions() int {
	return s.queue.ProblemRepetitions()
}

// RollingAverage returns the mean speed of the last ten words.
func (s *Session) RollingAverage() float64 {
	return s.perf.RollingAverage()
}

// AverageWPM returns the aggregate words per minute.
func (s *Session) AverageWPM() float64 {
	return s.perf.AverageWPM()
}

// FastestWords returns the fastest-words ranking.
func (s *Session) FastestWords() []model.WordSpeed {
	return s.perf.FastestWords()
}

// SlowestWords returns the slowest-words ranking.
func (s *Session) SlowestWords() []model.WordSpeed {
	return s.perf.SlowestWords()
}

// ProblemWords returns the problem-word ledger entries.
func (s *Session) ProblemWords() []model.ProblemWord {
	return s.perf.ProblemWords()
}

// StruggleCombinations returns the ranked struggle combinations.
func (s *Session) StruggleCombinations() []model.ComboSpeed {
	return s.perf.StruggleCombinations()
}

// Report returns the final-report snapshot.
func (s *Session) Report() model.FinalReport {
	return s.perf.Report()
}

// ReportJSON serializes the final report, degrading to "{}" on fault.
func (s *Session) ReportJSON(pretty bool) string {
	return s.perf.ReportJSON(pretty)
}
