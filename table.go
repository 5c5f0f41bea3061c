package gomdd

import (
	"fmt"
	"io"
	"iter"
	"slices"
	"strings"
)

// Table is a fully enumerated function f: D0×…×Dn-1 → V.
//
// Values are laid out in mixed-radix order: the last variable varies
// fastest, and the value of assignment a sits at index Σ offsets[i]*a[i].
// A Table is immutable after NewTable returns.
type Table[V comparable] struct {
	domains []int
	values  []V
	offsets []int
}

// NewTable validates domains and values and returns the function table.
//
// Returns ErrMalformedTable if:
//   - domains is empty (zero variables)
//   - some domain is <= 0
//   - the product of domains overflows an int
//   - len(values) != product(domains)
//
// Both slices are copied; the caller may reuse them afterwards.
func NewTable[V comparable](domains []int, values []V) (*Table[V], error) {
	if len(domains) == 0 {
		return nil, fmt.Errorf("%w: no variables", ErrMalformedTable)
	}
	for i, d := range domains {
		if d <= 0 {
			return nil, fmt.Errorf("%w: domain of variable %d is %d", ErrMalformedTable, i, d)
		}
	}
	size, ok := product(domains)
	if !ok {
		return nil, fmt.Errorf("%w: table size overflows for domains %v", ErrMalformedTable, domains)
	}
	if len(values) != size {
		return nil, fmt.Errorf("%w: expected %d values for domains %v, got %d", ErrMalformedTable, size, domains, len(values))
	}

	return &Table[V]{
		domains: slices.Clone(domains),
		values:  slices.Clone(values),
		offsets: strides(domains),
	}, nil
}

// Variables returns the number of variables.
func (t *Table[V]) Variables() int {
	return len(t.domains)
}

// Len returns the number of rows, i.e. the product of all domains.
func (t *Table[V]) Len() int {
	return len(t.values)
}

// Domain returns the arity of variable i, or 0 if i is not a variable.
func (t *Table[V]) Domain(i int) int {
	if i < 0 || i >= len(t.domains) {
		return 0
	}
	return t.domains[i]
}

// Domains returns a copy of the domain sizes.
func (t *Table[V]) Domains() []int {
	return slices.Clone(t.domains)
}

// Values returns a copy of the flat value vector.
func (t *Table[V]) Values() []V {
	return slices.Clone(t.values)
}

// Offsets returns a copy of the mixed-radix strides.
func (t *Table[V]) Offsets() []int {
	return slices.Clone(t.offsets)
}

// Index returns the flat index of assignment.
//
// Returns ErrArityMismatch if len(assignment) differs from the number of
// variables, and ErrInvalidDecision if a value lies outside its domain.
func (t *Table[V]) Index(assignment []int) (int, error) {
	if len(assignment) != len(t.domains) {
		return 0, fmt.Errorf("%w: expected %d values, got %d", ErrArityMismatch, len(t.domains), len(assignment))
	}
	index := 0
	for i, a := range assignment {
		if a < 0 || a >= t.domains[i] {
			return 0, fmt.Errorf("%w: variable %d has domain %d, got %d", ErrInvalidDecision, i, t.domains[i], a)
		}
		index += t.offsets[i] * a
	}
	return index, nil
}

// Evaluate returns f(assignment) by direct indexing in O(n).
func (t *Table[V]) Evaluate(assignment []int) (V, error) {
	index, err := t.Index(assignment)
	if err != nil {
		var zero V
		return zero, err
	}
	return t.values[index], nil
}

// Row reconstructs the assignment stored at flat index.
// It returns nil if index is out of range.
func (t *Table[V]) Row(index int) []int {
	if index < 0 || index >= len(t.values) {
		return nil
	}
	row := make([]int, len(t.domains))
	for i := range row {
		row[i] = (index / t.offsets[i]) % t.domains[i]
	}
	return row
}

// Rows enumerates every assignment with its value, in flat index order.
// Each yielded assignment is a fresh slice.
func (t *Table[V]) Rows() iter.Seq2[[]int, V] {
	return func(yield func([]int, V) bool) {
		for index, v := range t.values {
			if !yield(t.Row(index), v) {
				return
			}
		}
	}
}

// WriteTo prints the table with one column per variable followed by the
// function value:
//
//	x0 x1   f
//	0  0  | 0
//	0  1  | 1
func (t *Table[V]) WriteTo(w io.Writer) (int64, error) {
	var sb strings.Builder
	for i := range t.domains {
		fmt.Fprintf(&sb, "x%d ", i)
	}
	sb.WriteString("  f\n")
	for row, v := range t.Rows() {
		for _, a := range row {
			fmt.Fprintf(&sb, "%d  ", a)
		}
		fmt.Fprintf(&sb, "| %v\n", v)
	}
	n, err := io.WriteString(w, sb.String())
	return int64(n), err
}

// Diagram builds the canonical reduced diagram of this table.
func (t *Table[V]) Diagram(opts ...Option) (*Diagram[V], error) {
	return build(t, opts...)
}
