package ranking

import (
	"fmt"
	"strconv"
	"strings"
)

// Priority lists table indices in increasing sort precedence. Each index is one stable
// sort pass, so the last entry is the primary key.
type Priority []int

const (
	PriorityLastWins  = "last-wins"
	PriorityFirstWins = "first-wins"
)

// LastWins makes the last table the primary key, with ties broken by the table before it
// and so on down to the first.
func LastWins(n int) Priority {
	p := make(Priority, n)
	for i := range p {
		p[i] = i
	}
	return p
}

// FirstWins makes the first table the primary key, with ties broken by the last table,
// then the one before it, down to the second.
func FirstWins(n int) Priority {
	if n == 0 {
		return Priority{}
	}
	p := make(Priority, 0, n)
	for i := 1; i < n; i++ {
		p = append(p, i)
	}
	return append(p, 0)
}

// ParsePriority accepts a preset name or a comma separated list of table indices in
// increasing precedence.
func ParsePriority(value string, n int) (Priority, error) {
	value = strings.TrimSpace(value)
	switch strings.ToLower(value) {
	case "", PriorityLastWins:
		return LastWins(n), nil
	case PriorityFirstWins:
		return FirstWins(n), nil
	}

	parts := strings.Split(value, ",")
	p := make(Priority, 0, len(parts))
	for _, part := range parts {
		idx, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("invalid priority entry %q", part)
		}
		p = append(p, idx)
	}
	if err := p.Validate(n); err != nil {
		return nil, err
	}
	return p, nil
}

// Validate checks that every index refers to one of n tables and appears once.
func (p Priority) Validate(n int) error {
	if n > 0 && len(p) == 0 {
		return fmt.Errorf("priority must name at least one table")
	}
	seen := make(map[int]bool, len(p))
	for _, idx := range p {
		if idx < 0 || idx >= n {
			return fmt.Errorf("priority index %d out of range [0,%d)", idx, n)
		}
		if seen[idx] {
			return fmt.Errorf("priority index %d listed twice", idx)
		}
		seen[idx] = true
	}
	return nil
}
