package ranking

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mwiater/taskplot/internal/results"
)

// NegInf is the sentinel drawn for a missing log-likelihood.
const NegInf = -10

// ErrUnknownKind is returned for a plot kind outside the supported set.
var ErrUnknownKind = errors.New("unknown plot kind")

// Kind describes one supported chart: which metric it draws and how.
type Kind struct {
	Name      string
	Title     string
	XLabel    string
	Column    results.Column
	Transform Transform
	Default   float64
	Scatter   bool
	// Arity is the number of metric fields each input record must carry.
	Arity int
}

var kinds = []Kind{
	{Name: "speed", Title: "task solve speed", XLabel: "solve speed (s⁻¹)", Column: results.ColumnTime, Transform: Reciprocal, Arity: 2},
	{Name: "likelihood", Title: "likelihood of solution", XLabel: "log-likelihood", Column: results.ColumnLogProb, Transform: Identity, Default: NegInf, Arity: 2},
	{Name: "probability", Title: "likelihood of solution", XLabel: "likelihood", Column: results.ColumnLogProb, Transform: Exponential, Arity: 2},
	{Name: "total-speed", Title: "task total speed", XLabel: "total speed (s⁻¹)", Column: results.ColumnTotalTime, Transform: Reciprocal, Arity: 3},
	{Name: "iteration-speed", Title: "task iteration speed", XLabel: "iteration speed (s⁻¹)", Column: results.ColumnTotalTime, Transform: Reciprocal, Scatter: true, Arity: 3},
}

var kindAliases = map[string]string{
	"time": "speed",
	"prob": "probability",
}

// Kinds returns the supported plot kinds.
func Kinds() []Kind {
	return append([]Kind(nil), kinds...)
}

// LookupKind resolves a plot kind token, case-insensitively.
func LookupKind(token string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(token))
	if alias, ok := kindAliases[name]; ok {
		name = alias
	}
	for _, k := range kinds {
		if k.Name == name {
			return k, nil
		}
	}
	return Kind{}, fmt.Errorf("%w: %q", ErrUnknownKind, token)
}

// Config returns the ordering/layout configuration for k under the given priority.
func (k Kind) Config(priority Priority) Config {
	return Config{
		Column:    k.Column,
		Transform: k.Transform,
		Default:   k.Default,
		Priority:  priority,
	}
}
