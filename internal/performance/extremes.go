package performance

import (
	"sort"

	"github.com/adaptype/adaptype/internal/model"
)

const extremesSize = 10

// Extremes maintains the fastest and slowest distinct words ever typed.
type Extremes struct {
	fastest []model.WordSpeed
	slowest []model.WordSpeed
}

// Update records a completed word speed in both rankings. A word already
// present is replaced rather than duplicated.
func (e *Extremes) Update(word string, speed float64) {
	e.fastest = updateRanked(e.fastest, word, speed, func(a, b float64) bool { return a > b })
	e.slowest = updateRanked(e.slowest, word, speed, func(a, b float64) bool { return a < b })
}

// updateRanked inserts (word, speed) into a ranking kept sorted by better.
// NaN speeds compare as equal and therefore sort last.
func updateRanked(ranked []model.WordSpeed, word string, speed float64, better func(a, b float64) bool) []model.WordSpeed {
	if len(ranked) >= extremesSize && !better(speed, ranked[len(ranked)-1].Speed) {
		return ranked
	}
	for i := range ranked {
		if ranked[i].Word == word {
			ranked = append(ranked[:i], ranked[i+1:]...)
			break
		}
	}
	ranked = append(ranked, model.WordSpeed{Word: word, Speed: speed})
	sort.SliceStable(ranked, func(i, j int) bool {
		return better(ranked[i].Speed, ranked[j].Speed)
	})
	if len(ranked) > extremesSize {
		ranked = ranked[:extremesSize]
	}
	return ranked
}

// Fastest returns the top words sorted descending by speed.
func (e *Extremes) Fastest() []model.WordSpeed {
	return e.fastest
}

// Slowest returns the bottom words sorted ascending by speed.
func (e *Extremes) Slowest() []model.WordSpeed {
	return e.slowest
}
