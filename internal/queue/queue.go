// Package queue owns the practice word rotation and the problem-word
// repeat loop.
package queue

import "math/rand"

const (
	lookaheadSize = 2

	// RequiredRepetitions is how many consecutive correct completions a
	// problem word needs before it returns to normal rotation.
	RequiredRepetitions = 3
)

type problemEntry struct {
	word        string
	repetitions int
}

// Queue serves practice words from a shuffled pool and interleaves problem
// words that must be retyped correctly several times in a row.
type Queue struct {
	rnd         *rand.Rand
	original    []string
	pool        []string
	currentWord string
	nextWords   []string

	problemQueue []problemEntry
	repeating    bool
	repetitions  int
}

// New builds a queue over a copy of words shuffled with rnd. An empty input
// degrades to empty-string words rather than failing.
func New(words []string, rnd *rand.Rand) *Queue {
	q := &Queue{rnd: rnd}
	q.resetPool(words)
	return q
}

func (q *Queue) resetPool(words []string) {
	q.original = append([]string(nil), words...)
	q.pool = append([]string(nil), words...)
	q.shufflePool()
	q.currentWord = q.popPool()
	q.nextWords = []string{q.popPool(), q.popPool()}
}

func (q *Queue) shufflePool() {
	q.rnd.Shuffle(len(q.pool), func(i, j int) {
		q.pool[i], q.pool[j] = q.pool[j], q.pool[i]
	})
}

// popPool takes the next word from the pool, refreshing and reshuffling it
// from the original list once exhausted. A word may therefore repeat before
// every word has appeared, but the session never stalls.
func (q *Queue) popPool() string {
	if len(q.pool) == 0 {
		if len(q.original) == 0 {
			return ""
		}
		q.pool = append([]string(nil), q.original...)
		q.shufflePool()
	}
	word := q.pool[len(q.pool)-1]
	q.pool = q.pool[:len(q.pool)-1]
	return word
}

// CurrentWord returns the word the user must type now.
func (q *Queue) CurrentWord() string {
	return q.currentWord
}

// NextWords returns the lookahead buffer shown to the user.
func (q *Queue) NextWords() []string {
	return q.nextWords
}

// IsRepeatingProblemWord reports whether the current word is being served
// from the problem queue.
func (q *Queue) IsRepeatingProblemWord() bool {
	return q.repeating
}

// ProblemRepetitions returns the consecutive correct completions of the
// current problem word.
func (q *Queue) ProblemRepetitions() int {
	return q.repetitions
}

// ProblemQueueLen returns how many words are waiting in the problem queue.
func (q *Queue) ProblemQueueLen() int {
	return len(q.problemQueue)
}

// Advance moves to the next word. While a problem word is being repeated and
// has fewer than RequiredRepetitions correct completions, the same word is
// served again. Otherwise the front of the problem queue, or the first
// lookahead word, becomes current and the lookahead is refilled.
func (q *Queue) Advance() {
	if q.repeating {
		if q.repetitions < RequiredRepetitions {
			return
		}
		q.repeating = false
		q.repetitions = 0
		if len(q.problemQueue) > 0 {
			q.problemQueue = q.problemQueue[1:]
		}
	}

	if len(q.problemQueue) > 0 {
		q.currentWord = q.problemQueue[0].word
		q.repeating = true
		q.repetitions = 0
	} else if len(q.nextWords) > 0 {
		q.currentWord = q.nextWords[0]
		q.nextWords = q.nextWords[1:]
	} else {
		q.currentWord = q.popPool()
	}

	for len(q.nextWords) < lookaheadSize {
		q.nextWords = append(q.nextWords, q.popPool())
	}
}

// FlagProblem queues word for repeated retyping. A word already queued has
// its entry counter reset instead of being duplicated. Flagging always
// forces repeat mode on the next advance.
func (q *Queue) FlagProblem(word string) {
	found := false
	for i := range q.problemQueue {
		if q.problemQueue[i].word == word {
			q.problemQueue[i].repetitions = 0
			found = true
			break
		}
	}
	if !found {
		q.problemQueue = append(q.problemQueue, problemEntry{word: word})
	}
	q.repeating = true
	q.repetitions = 0
}

// RecordCorrectRepetition counts a correct completion of the current
// problem word. It has no effect outside repeat mode.
func (q *Queue) RecordCorrectRepetition() {
	if q.repeating {
		q.repetitions++
	}
}

// SwitchWordList replaces the pool and re-derives the current and lookahead
// words. The problem queue survives the switch; repeat mode is cleared
// because the current word is no longer sourced from it.
func (q *Queue) SwitchWordList(words []string) {
	q.repeating = false
	q.repetitions = 0
	q.resetPool(words)
}
