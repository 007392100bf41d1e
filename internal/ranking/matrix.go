package ranking

import "github.com/mwiater/taskplot/internal/results"

// Matrix holds one row per condition and one column per ordered task.
type Matrix [][]float64

// Materialize lays out the mapped metric of every table along names. Tasks absent from a
// table get cfg.Default.
func Materialize(tables []results.Table, names []string, cfg Config) Matrix {
	m := make(Matrix, len(tables))
	for i, table := range tables {
		row := make([]float64, len(names))
		for j, name := range names {
			row[j] = cfg.value(table, name)
		}
		m[i] = row
	}
	return m
}

// Clone returns a deep copy of m.
func (m Matrix) Clone() Matrix {
	out := make(Matrix, len(m))
	for i, row := range m {
		out[i] = append([]float64(nil), row...)
	}
	return out
}

// Width returns the number of task columns, or 0 for an empty matrix.
func (m Matrix) Width() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// Column returns a copy of the values every condition has at task index j.
func (m Matrix) Column(j int) []float64 {
	col := make([]float64, len(m))
	for i, row := range m {
		col[i] = row[j]
	}
	return col
}
