package results

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// LoadTable reads a result file from disk. Each line holds a task name followed by arity
// tab-separated numbers; extra trailing fields are ignored.
func LoadTable(path string, arity int) (Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return Table{}, fmt.Errorf("unable to open result file %s: %w", path, err)
	}
	defer file.Close()

	table, err := ParseTable(file, arity)
	if err != nil {
		return Table{}, fmt.Errorf("unable to parse result file %s: %w", path, err)
	}
	table.Path = path
	return table, nil
}

// LoadTables loads every path in order and stops at the first failure.
func LoadTables(paths []string, arity int) ([]Table, error) {
	tables := make([]Table, 0, len(paths))
	for _, path := range paths {
		table, err := LoadTable(path, arity)
		if err != nil {
			return nil, err
		}
		tables = append(tables, table)
	}
	return tables, nil
}

// ParseTable decodes tab-separated records from r. A later record for the same task
// replaces an earlier one.
func ParseTable(r io.Reader, arity int) (Table, error) {
	if arity < 1 {
		return Table{}, fmt.Errorf("invalid arity %d", arity)
	}
	table := Table{Arity: arity, Entries: make(map[string]Metrics)}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		name, values, err := parseRecord(line, arity)
		if err != nil {
			return Table{}, fmt.Errorf("line %d: %w", lineNo, err)
		}
		table.Entries[name] = values
	}
	if err := scanner.Err(); err != nil {
		return Table{}, err
	}
	return table, nil
}

func parseRecord(line string, arity int) (string, Metrics, error) {
	fields := strings.Split(line, "\t")
	if len(fields) < arity+1 {
		return "", nil, fmt.Errorf("%w: want %d, got %d", ErrArity, arity+1, len(fields))
	}
	values := make(Metrics, arity)
	for i := 0; i < arity; i++ {
		raw := strings.TrimSpace(fields[i+1])
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return "", nil, fmt.Errorf("field %d: invalid number %q", i+2, raw)
		}
		values[i] = v
	}
	return fields[0], values, nil
}
