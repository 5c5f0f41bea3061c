package gomdd

import (
	"fmt"

	"go.uber.org/zap"
)

// Build constructs the canonical reduced diagram of the function given by
// domains and its flat truth vector values.
//
// The vector is read in mixed-radix order (last variable fastest, see
// Table). Every call uses a fresh NodeTable, so diagrams built by separate
// calls never share nodes.
//
// Returns an error wrapping ErrMalformedTable if domains and values do not
// describe a table, or ErrNodeLimit if WithMaxNodes is exceeded. No diagram
// is returned when an error occurs.
func Build[V comparable](domains []int, values []V, opts ...Option) (*Diagram[V], error) {
	t, err := NewTable(domains, values)
	if err != nil {
		return nil, fmt.Errorf("build failed: %w", err)
	}
	return build(t, opts...)
}

func build[V comparable](t *Table[V], opts ...Option) (*Diagram[V], error) {
	nt := NewNodeTable[V](opts...)
	b := &builder[V]{table: t, nodes: nt}

	root, err := b.run()
	if err != nil {
		nt.logger.Debug("diagram construction failed", zap.Error(err))
		return nil, fmt.Errorf("build failed: %w", err)
	}

	stats := nt.Stats()
	nt.logger.Debug("diagram built",
		zap.Ints("domains", t.domains),
		zap.Int("rows", t.Len()),
		zap.Int("nodes", nt.Size()),
		zap.Int("terminals", stats.Terminals),
		zap.Int("hits", stats.Hits),
		zap.Int("redundant", stats.Redundant),
	)
	return newDiagram(t.domains, root, nt), nil
}

// frame is a stack entry of the reduction: a canonical node together with
// the level it was produced for. Level i means the node is the subdiagram
// for variables i..n-1, even when reduction made it skip some of them.
type frame struct {
	id    NodeID
	level int
}

type builder[V comparable] struct {
	table   *Table[V]
	nodes   *NodeTable[V]
	stack   []frame
	scratch []NodeID
}

// run consumes the truth vector one run of the last variable at a time,
// interning the run bottom-up and folding complete sibling groups into their
// parent after every push.
func (b *builder[V]) run() (NodeID, error) {
	domains := b.table.domains
	values := b.table.values
	last := len(domains) - 1

	depth := 1
	for _, d := range domains {
		depth += d
	}
	b.stack = make([]frame, 0, depth)

	for j := 0; j < len(values); j += domains[last] {
		successors := b.scratch[:0]
		for _, v := range values[j : j+domains[last]] {
			id, err := b.nodes.AddTerminal(v)
			if err != nil {
				return NullNode, err
			}
			successors = append(successors, id)
		}
		b.scratch = successors

		id, err := b.nodes.AddDecision(last, successors)
		if err != nil {
			return NullNode, err
		}
		b.stack = append(b.stack, frame{id: id, level: last})

		if err := b.shrink(); err != nil {
			return NullNode, err
		}
	}

	if len(b.stack) != 1 || b.stack[0].level != 0 {
		return NullNode, fmt.Errorf("%w: %d entries left after reduction", ErrMalformedTable, len(b.stack))
	}
	return b.stack[0].id, nil
}

// shrink folds the top of the stack while it holds a complete group of
// siblings: domains[i-1] consecutive entries of level i become the
// successors of one node deciding on variable i-1.
func (b *builder[V]) shrink() error {
	for {
		top := b.stack[len(b.stack)-1]
		i := top.level
		if i == 0 {
			return nil
		}

		arity := b.table.domains[i-1]
		count := 0
		for k := len(b.stack) - 1; k >= 0 && b.stack[k].level == i && count < arity; k-- {
			count++
		}
		if count < arity {
			return nil
		}

		base := len(b.stack) - arity
		successors := b.scratch[:0]
		for _, f := range b.stack[base:] {
			successors = append(successors, f.id)
		}
		b.scratch = successors

		id, err := b.nodes.AddDecision(i-1, successors)
		if err != nil {
			return err
		}
		b.stack = append(b.stack[:base], frame{id: id, level: i - 1})
	}
}
