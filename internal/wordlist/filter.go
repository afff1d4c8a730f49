// Package wordlist provides word list filtering helpers.
package wordlist

// FilterFunc returns true when a word should be kept.
type FilterFunc func(string) bool

// Key sets follow the Dvorak learning progression used by the embedded
// lessons: home row first, then the surrounding rows.
var levelKeySets = []string{
	"aoeuhtns",
	"aoeuidhtns",
	"aoeuidhtnspyfgcrlm",
	"abcdefghijklmnopqrstuvwxyz",
	"abcdefghijklmnopqrstuvwxyz",
}

// LevelCount reports how many lesson levels are defined.
func LevelCount() int {
	return len(levelKeySets)
}

// FilterForLevel returns a filter keeping only words typeable with the keys
// of the given lesson level (1-based). Out-of-range levels keep everything.
func FilterForLevel(level int) FilterFunc {
	if level < 1 || level > len(levelKeySets) {
		return func(string) bool { return true }
	}
	allowed := [256]bool{}
	for i := 0; i < len(levelKeySets[level-1]); i++ {
		allowed[levelKeySets[level-1][i]] = true
	}
	return func(word string) bool {
		if word == "" {
			return false
		}
		for i := 0; i < len(word); i++ {
			if word[i] >= 128 || !allowed[word[i]] {
				return false
			}
		}
		return true
	}
}
