package ranking

import (
	"sort"

	"github.com/mwiater/taskplot/internal/results"
)

// Config selects the metric that drives ordering and layout.
type Config struct {
	Column    results.Column
	Transform Transform
	// Default stands in for a task missing from a table, both as a sort key and as the
	// drawn value.
	Default  float64
	Priority Priority
}

// value returns the mapped metric for name in table, or the default when absent.
func (c Config) value(table results.Table, name string) float64 {
	v, ok := table.Lookup(name, c.Column)
	if !ok {
		return c.Default
	}
	return c.Transform.Apply(v)
}

// TraceFunc observes the ordering after each sort pass.
type TraceFunc func(pass, table int, names []string)

// Order returns the union of task names across tables, sorted descending by the mapped
// metric once per table in priority order. Every pass is stable, so later passes decide
// and earlier passes only break ties.
func Order(tables []results.Table, cfg Config) ([]string, error) {
	return OrderTrace(tables, cfg, nil)
}

// OrderTrace is Order with a callback after every pass.
func OrderTrace(tables []results.Table, cfg Config, trace TraceFunc) ([]string, error) {
	priority := cfg.Priority
	if priority == nil {
		priority = LastWins(len(tables))
	}
	if err := priority.Validate(len(tables)); err != nil {
		return nil, err
	}

	names := Union(tables)
	keys := make(map[string]float64, len(names))
	for pass, idx := range priority {
		table := tables[idx]
		for _, name := range names {
			keys[name] = cfg.value(table, name)
		}
		sort.SliceStable(names, func(i, j int) bool {
			return keys[names[i]] > keys[names[j]]
		})
		if trace != nil {
			trace(pass, idx, append([]string(nil), names...))
		}
	}
	return names, nil
}

// Union returns every task name that appears in any table, sorted lexicographically.
func Union(tables []results.Table) []string {
	seen := make(map[string]struct{})
	for _, table := range tables {
		for name := range table.Entries {
			seen[name] = struct{}{}
		}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
