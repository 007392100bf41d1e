// internal/ranking/transform.go
// Package ranking orders tasks consistently across result tables and lays out the
// per-condition values that get drawn for them.
package ranking

import (
	"fmt"
	"math"
	"strings"
)

// Transform is one of the numeric mappings applied to a metric before it is sorted on
// or drawn.
type Transform int

const (
	Identity Transform = iota
	Reciprocal
	Exponential
)

// Apply maps v through the transform.
func (t Transform) Apply(v float64) float64 {
	switch t {
	case Reciprocal:
		return 1 / v
	case Exponential:
		return math.Exp(v)
	default:
		return v
	}
}

func (t Transform) String() string {
	switch t {
	case Reciprocal:
		return "reciprocal"
	case Exponential:
		return "exponential"
	default:
		return "identity"
	}
}

// ParseTransform resolves a transform by name.
func ParseTransform(name string) (Transform, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "identity":
		return Identity, nil
	case "reciprocal":
		return Reciprocal, nil
	case "exponential", "exp":
		return Exponential, nil
	}
	return Identity, fmt.Errorf("unknown transform %q", name)
}
