package performance

import (
	"sort"
	"time"

	"github.com/adaptype/adaptype/internal/model"
)

const maxCombos = 50

// StruggleCombos ranks letter bigrams and trigrams of typed input by the
// speed at which they were produced. Slowest combinations rank first.
type StruggleCombos struct {
	combos []model.ComboSpeed
}

// Update feeds the inter-keystroke interval that produced input so far.
// Each contained combination is smoothed with the same (old+new)/2 rule
// used by the problem-word ledger.
func (s *StruggleCombos) Update(elapsed time.Duration, input string) {
	for _, combo := range letterCombos(input) {
		speed := comboSpeed(combo, elapsed)
		found := false
		for i := range s.combos {
			if s.combos[i].Combination == combo {
				s.combos[i].Speed = (s.combos[i].Speed + speed) / 2
				found = true
				break
			}
		}
		if !found {
			s.combos = append(s.combos, model.ComboSpeed{Combination: combo, Speed: speed})
		}
	}
	sort.SliceStable(s.combos, func(i, j int) bool {
		return s.combos[i].Speed < s.combos[j].Speed
	})
	if len(s.combos) > maxCombos {
		s.combos = s.combos[:maxCombos]
	}
}

// Combinations returns the ranked combinations, slowest first.
func (s *StruggleCombos) Combinations() []model.ComboSpeed {
	return s.combos
}

func letterCombos(input string) []string {
	runes := []rune(input)
	combos := make([]string, 0, 2*len(runes))
	for i := 0; i < len(runes); i++ {
		if i+1 < len(runes) {
			combos = append(combos, string(runes[i:i+2]))
		}
		if i+2 < len(runes) {
			combos = append(combos, string(runes[i:i+3]))
		}
	}
	return combos
}

func comboSpeed(combo string, elapsed time.Duration) float64 {
	minutes := elapsed.Minutes()
	if minutes <= 0 {
		return 0
	}
	return (float64(len([]rune(combo))) / 5.0) / minutes
}
