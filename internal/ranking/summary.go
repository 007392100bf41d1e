package ranking

import (
	"math"
	"sort"

	"github.com/mwiater/taskplot/internal/results"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ConditionSummary describes the drawn values of one condition.
type ConditionSummary struct {
	Label   string  `json:"label"`
	Path    string  `json:"path"`
	Present int     `json:"present"`
	Missing int     `json:"missing"`
	Mean    float64 `json:"mean"`
	Median  float64 `json:"median"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
}

// Summarize computes per-condition statistics over the values of tasks each table
// actually contains. Non-finite values are left out of the statistics.
func Summarize(tables []results.Table, names []string, m Matrix, labels []string) []ConditionSummary {
	out := make([]ConditionSummary, 0, len(tables))
	for i, table := range tables {
		s := ConditionSummary{Path: table.Path}
		if i < len(labels) {
			s.Label = labels[i]
		}
		var vals []float64
		for j, name := range names {
			if _, ok := table.Entries[name]; !ok {
				s.Missing++
				continue
			}
			s.Present++
			if v := m[i][j]; !math.IsInf(v, 0) && !math.IsNaN(v) {
				vals = append(vals, v)
			}
		}
		if len(vals) > 0 {
			sort.Float64s(vals)
			s.Mean = stat.Mean(vals, nil)
			s.Median = stat.Quantile(0.5, stat.Empirical, vals, nil)
			s.Min = floats.Min(vals)
			s.Max = floats.Max(vals)
		}
		out = append(out, s)
	}
	return out
}

// AutoSeparation returns fraction of the span of the finite values in m, or 0 when
// there are fewer than two distinct finite values.
func AutoSeparation(m Matrix, fraction float64) float64 {
	var vals []float64
	for _, row := range m {
		for _, v := range row {
			if !math.IsInf(v, 0) && !math.IsNaN(v) {
				vals = append(vals, v)
			}
		}
	}
	if len(vals) < 2 {
		return 0
	}
	return fraction * (floats.Max(vals) - floats.Min(vals))
}
