// internal/results/types.go
// Package results loads the tab-separated result files written by the experiment
// pipeline into per-condition tables keyed by task name.
package results

import "errors"

// Column indexes into a task's Metrics.
type Column int

const (
	// ColumnTime is the elapsed solve time in seconds.
	ColumnTime Column = iota
	// ColumnLogProb is the log-likelihood of the solution.
	ColumnLogProb
	// ColumnTotalTime is the total elapsed time, present in three-column files only.
	ColumnTotalTime
)

// ErrArity is returned when a record carries fewer metric fields than requested.
var ErrArity = errors.New("record has too few fields")

// Metrics holds the recorded values for one task in one condition.
type Metrics []float64

// Table maps task names to their metrics for a single condition.
type Table struct {
	Path    string
	Arity   int
	Entries map[string]Metrics
}

// Len returns the number of tasks in the table.
func (t Table) Len() int {
	return len(t.Entries)
}

// Lookup returns the value recorded for name in col, and whether it is present.
func (t Table) Lookup(name string, col Column) (float64, bool) {
	m, ok := t.Entries[name]
	if !ok || int(col) < 0 || int(col) >= len(m) {
		return 0, false
	}
	return m[col], true
}

// Names returns the task names of the table in no particular order.
func (t Table) Names() []string {
	out := make([]string, 0, len(t.Entries))
	for name := range t.Entries {
		out = append(out, name)
	}
	return out
}
