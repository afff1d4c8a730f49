package wordlist

import "testing"

func TestFilterForLevelHomeRow(t *testing.T) {
	filter := FilterForLevel(1)
	for _, word := range []string{"tea", "sun", "house"} {
		if !filter(word) {
			t.Fatalf("expected %q to pass the home-row filter", word)
		}
	}
	for _, word := range []string{"good", "play", "", "résumé"} {
		if filter(word) {
			t.Fatalf("expected %q to be rejected", word)
		}
	}
}

func TestFilterForLevelFullAlphabet(t *testing.T) {
	filter := FilterForLevel(LevelCount())
	if !filter("quiz") {
		t.Fatalf("expected quiz to pass the full-alphabet filter")
	}
	if filter("don't") {
		t.Fatalf("expected punctuation to be rejected")
	}
}

func TestFilterForLevelOutOfRange(t *testing.T) {
	filter := FilterForLevel(0)
	if !filter("anything") {
		t.Fatalf("expected out-of-range level to keep everything")
	}
}
