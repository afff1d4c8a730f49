package performance

import (
	"strings"
	"testing"
	"time"
)

func TestTrackerAverageWPM(t *testing.T) {
	var tr Tracker
	if wpm := tr.AverageWPM(); wpm != 0 {
		t.Fatalf("expected 0 WPM with no elapsed time, got %f", wpm)
	}

	start := time.Now()
	tr.StartWordIfNeeded(start)
	tr.RecordWordCompleted(250, start.Add(time.Minute))
	if wpm := tr.AverageWPM(); wpm != 50 {
		t.Fatalf("expected 50 WPM, got %f", wpm)
	}
}

func TestTrackerStartWordIfNeeded(t *testing.T) {
	var tr Tracker
	first := time.Now()
	tr.StartWordIfNeeded(first)
	tr.StartWordIfNeeded(first.Add(time.Second))

	start, ok := tr.WordStart()
	if !ok || !start.Equal(first) {
		t.Fatalf("expected word start to keep first timestamp")
	}
}

func TestTrackerMistypeUndo(t *testing.T) {
	var tr Tracker
	tr.RecordMistype(2)
	tr.RecordMistype(4)

	tr.UndoMistypeAt(3)
	if got := len(tr.MistypedPositions()); got != 2 {
		t.Fatalf("expected undo at wrong position to keep entries, got %d", got)
	}

	tr.UndoMistypeAt(4)
	positions := tr.MistypedPositions()
	if len(positions) != 1 || positions[0] != 2 {
		t.Fatalf("expected only position 2 left, got %v", positions)
	}
}

func TestTrackerResetWordState(t *testing.T) {
	var tr Tracker
	tr.StartWordIfNeeded(time.Now())
	tr.RecordMistype(0)
	tr.RecordBackspace()

	tr.ResetWordState()

	if tr.BackspaceUsed() {
		t.Fatalf("expected backspace count cleared")
	}
	if len(tr.MistypedPositions()) != 0 {
		t.Fatalf("expected mistyped positions cleared")
	}
	if _, ok := tr.WordStart(); ok {
		t.Fatalf("expected word start cleared")
	}
}

func TestReportJSONShape(t *testing.T) {
	var tr Tracker
	out := tr.ReportJSON(true)
	for _, field := range []string{
		"average_speed",
		"problem_words",
		"fastest_words",
		"slowest_words",
		"struggle_combinations",
	} {
		if !strings.Contains(out, field) {
			t.Fatalf("expected report to contain %q, got %s", field, out)
		}
	}
	if strings.Contains(out, "null") {
		t.Fatalf("expected empty arrays instead of null: %s", out)
	}
}

func TestReportEntryFields(t *testing.T) {
	var tr Tracker
	tr.RecordBackspace()
	tr.AddProblemWord("tea", 12)
	tr.UpdateExtremes("tea", 12)
	tr.UpdateStruggleCombos(time.Second, "tea")

	out := tr.ReportJSON(false)
	for _, field := range []string{`"word"`, `"speed"`, `"backspaces"`, `"correct_attempts"`, `"combination"`} {
		if !strings.Contains(out, field) {
			t.Fatalf("expected report to contain %s, got %s", field, out)
		}
	}
}
