package performance

import (
	"encoding/json"

	"github.com/adaptype/adaptype/internal/model"
)

// Report snapshots the session's metrics in the final-report shape.
func (t *Tracker) Report() model.FinalReport {
	return model.FinalReport{
		AverageSpeed:         t.AverageWPM(),
		ProblemWords:         emptyIfNil(t.ProblemWords()),
		FastestWords:         emptyIfNil(t.FastestWords()),
		SlowestWords:         emptyIfNil(t.SlowestWords()),
		StruggleCombinations: emptyIfNil(t.StruggleCombinations()),
	}
}

// ReportJSON serializes the final report. A marshal fault degrades to an
// empty object so quitting can never fail.
func (t *Tracker) ReportJSON(pretty bool) string {
	report := t.Report()
	var (
		data []byte
		err  error
	)
	if pretty {
		data, err = json.MarshalIndent(report, "", "  ")
	} else {
		data, err = json.Marshal(report)
	}
	if err != nil {
		return "{}"
	}
	return string(data)
}

// emptyIfNil keeps report arrays serialized as [] instead of null.
func emptyIfNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
