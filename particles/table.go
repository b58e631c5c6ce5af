package particles

import "fmt"

// Table is a minimal in-memory Source backed by named columns.
// It is immutable once built: NewTable deep-copies its input, so later
// mutation of the caller's slices cannot affect the table.
type Table struct {
	n    int
	cols map[string][]float64
}

// compile-time interface check
var _ Source = (*Table)(nil)

// NewTable constructs a Table from a non-empty map of equal-length
// columns. Returns ErrNoColumns if cols is empty, ErrRaggedColumns if
// any two columns differ in length.
// Complexity: O(C×N) time and memory (C columns of N particles).
func NewTable(cols map[string][]float64) (*Table, error) {
	if len(cols) == 0 {
		return nil, ErrNoColumns
	}
	t := &Table{n: -1, cols: make(map[string][]float64, len(cols))}
	for name, vals := range cols {
		if t.n < 0 {
			t.n = len(vals)
		} else if len(vals) != t.n {
			return nil, fmt.Errorf("%w: column %q has %d values, want %d",
				ErrRaggedColumns, name, len(vals), t.n)
		}
		// Deep copy to prevent external mutation
		c := make([]float64, len(vals))
		copy(c, vals)
		t.cols[name] = c
	}

	return t, nil
}

// Len returns the number of particles in the table.
// Complexity: O(1).
func (t *Table) Len() int { return t.n }

// Column returns the stored values of the named column.
// Returns an error wrapping ErrMissingColumn for unknown names.
// The returned slice is shared with the table and must not be modified.
// Complexity: O(1).
func (t *Table) Column(name string) ([]float64, error) {
	vals, ok := t.cols[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMissingColumn, name)
	}

	return vals, nil
}

// Columns returns the names of all stored columns, in no particular order.
func (t *Table) Columns() []string {
	names := make([]string, 0, len(t.cols))
	for name := range t.cols {
		names = append(names, name)
	}

	return names
}
