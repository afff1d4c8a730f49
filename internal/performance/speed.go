// Package performance tracks per-word and per-keystroke typing metrics.
package performance

const speedWindowSize = 10

// SpeedWindow keeps a bounded rolling window of recent word speeds.
type SpeedWindow struct {
	recent []float64
}

// Add records a word speed, dropping the oldest once the window is full.
func (w *SpeedWindow) Add(speed float64) {
	w.recent = append(w.recent, speed)
	if len(w.recent) > speedWindowSize {
		w.recent = w.recent[1:]
	}
}

// Average returns the arithmetic mean of the retained speeds, or 0 when
// nothing has been recorded.
func (w *SpeedWindow) Average() float64 {
	if len(w.recent) == 0 {
		return 0
	}
	sum := 0.0
	for _, speed := range w.recent {
		sum += speed
	}
	return sum / float64(len(w.recent))
}

// Len returns how many speeds are currently retained.
func (w *SpeedWindow) Len() int {
	return len(w.recent)
}
