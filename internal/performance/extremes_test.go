package performance

import (
	"fmt"
	"testing"
)

func TestExtremesSortedAndCapped(t *testing.T) {
	var e Extremes
	for i := 0; i < 15; i++ {
		e.Update(fmt.Sprintf("word%d", i), float64(i))
	}

	fastest := e.Fastest()
	if len(fastest) != 10 {
		t.Fatalf("expected 10 fastest words, got %d", len(fastest))
	}
	for i := 1; i < len(fastest); i++ {
		if fastest[i-1].Speed < fastest[i].Speed {
			t.Fatalf("fastest not sorted descending at %d: %v", i, fastest)
		}
	}
	if fastest[0].Speed != 14 {
		t.Fatalf("expected top speed 14, got %f", fastest[0].Speed)
	}

	slowest := e.Slowest()
	if len(slowest) != 10 {
		t.Fatalf("expected 10 slowest words, got %d", len(slowest))
	}
	for i := 1; i < len(slowest); i++ {
		if slowest[i-1].Speed > slowest[i].Speed {
			t.Fatalf("slowest not sorted ascending at %d: %v", i, slowest)
		}
	}
	if slowest[0].Speed != 0 {
		t.Fatalf("expected bottom speed 0, got %f", slowest[0].Speed)
	}
}

func TestExtremesReplacesExistingWord(t *testing.T) {
	var e Extremes
	e.Update("tea", 10)
	e.Update("sun", 20)
	e.Update("tea", 30)

	fastest := e.Fastest()
	if len(fastest) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(fastest))
	}
	if fastest[0].Word != "tea" || fastest[0].Speed != 30 {
		t.Fatalf("expected tea at 30 WPM first, got %v", fastest[0])
	}
	seen := map[string]int{}
	for _, entry := range fastest {
		seen[entry.Word]++
	}
	if seen["tea"] != 1 {
		t.Fatalf("expected tea exactly once, got %d", seen["tea"])
	}
}
