// Package model defines shared data structures.
package model

// Config defines practice settings.
type Config struct {
	List         string
	WordListDir  string
	ReportPretty bool
}

// WordList is a named, immutable sequence of practice words.
type WordList struct {
	Name  string
	Words []string
}

// WordSpeed pairs a word with a measured speed in WPM.
type WordSpeed struct {
	Word  string  `json:"word"`
	Speed float64 `json:"speed"`
}

// ComboSpeed pairs a letter combination with its smoothed speed.
type ComboSpeed struct {
	Combination string  `json:"combination"`
	Speed       float64 `json:"speed"`
}

// ProblemWord is one ledger entry for a mistyped word.
type ProblemWord struct {
	Word            string  `json:"word"`
	Speed           float64 `json:"speed"`
	Backspaces      int     `json:"backspaces"`
	CorrectAttempts int     `json:"correct_attempts"`
}

// FinalReport is the session summary emitted on quit. Field names are part
// of the output format consumed by external tooling and must stay stable.
type FinalReport struct {
	AverageSpeed         float64       `json:"average_speed"`
	ProblemWords         []ProblemWord `json:"problem_words"`
	FastestWords         []WordSpeed   `json:"fastest_words"`
	SlowestWords         []WordSpeed   `json:"slowest_words"`
	StruggleCombinations []ComboSpeed  `json:"struggle_combinations"`
}
