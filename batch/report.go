// Package batch implements concurrent multi-video extraction with per-item failure isolation.
package batch

import (
	"encoding/json"

	"github.com/tubescribe-cli/tubescribe/fault"
)

// Item is the structured record of one batch entry's outcome.
type Item struct {
	Input string `json:"input"`
	File  string `json:"file,omitempty"`
	Error string `json:"error,omitempty"`
	Kind  string `json:"kind,omitempty"`
}

// Report aggregates a batch run. Its exit-status contract is structural: a
// report full of failed items still belongs to a successful run.
type Report struct {
	Source    string  `json:"source"`
	Total     int     `json:"total"`
	Succeeded int     `json:"succeeded"`
	Failed    int     `json:"failed"`
	Skipped   int     `json:"skipped"`
	Items     []*Item `json:"items"`
}

// Summarize folds ordered outcomes into a Report.
func Summarize(source string, outcomes []*Outcome, skipped int) *Report {
	report := &Report{
		Source:  source,
		Total:   len(outcomes) + skipped,
		Skipped: skipped,
		Items:   make([]*Item, len(outcomes)),
	}

	for i, outcome := range outcomes {
		item := &Item{Input: outcome.Input}
		if outcome.Err != nil {
			report.Failed++
			item.Error = outcome.Err.Error()
			item.Kind = fault.KindOf(outcome.Err).String()
		} else {
			report.Succeeded++
			item.File = outcome.File
		}
		report.Items[i] = item
	}

	return report
}

// Json returns the indented JSON encoding of the report.
func (r *Report) Json() ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}
