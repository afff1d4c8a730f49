package performance

import (
	"fmt"
	"testing"
	"time"
)

func TestLetterCombos(t *testing.T) {
	// "hello": he, el, ll, lo plus hel, ell, llo.
	combos := letterCombos("hello")
	if len(combos) != 7 {
		t.Fatalf("expected 7 combinations, got %d: %v", len(combos), combos)
	}
}

func TestComboSpeed(t *testing.T) {
	// (2 chars / 5) over one minute.
	if speed := comboSpeed("ab", time.Minute); speed != 0.4 {
		t.Fatalf("expected 0.4 WPM, got %f", speed)
	}
	if speed := comboSpeed("ab", 0); speed != 0 {
		t.Fatalf("expected 0 WPM for zero elapsed time, got %f", speed)
	}
}

func TestCombosSmoothing(t *testing.T) {
	var s StruggleCombos
	s.Update(time.Minute, "ab")
	s.Update(30*time.Second, "ab")

	combos := s.Combinations()
	if len(combos) != 1 {
		t.Fatalf("expected 1 combination, got %d", len(combos))
	}
	// (0.4 + 0.8) / 2.
	if combos[0].Speed != 0.6 {
		t.Fatalf("expected smoothed speed 0.6, got %f", combos[0].Speed)
	}
}

func TestCombosRankedAscending(t *testing.T) {
	var s StruggleCombos
	s.Update(time.Minute, "ab")
	s.Update(time.Second, "cd")

	combos := s.Combinations()
	if len(combos) != 2 {
		t.Fatalf("expected 2 combinations, got %d", len(combos))
	}
	if combos[0].Combination != "ab" {
		t.Fatalf("expected slowest combination first, got %v", combos)
	}
}

func TestCombosCappedAtFifty(t *testing.T) {
	var s StruggleCombos
	for i := 0; i < 60; i++ {
		s.Update(time.Second, fmt.Sprintf("word%d", i))
	}
	if len(s.Combinations()) != 50 {
		t.Fatalf("expected 50 combinations, got %d", len(s.Combinations()))
	}
}
