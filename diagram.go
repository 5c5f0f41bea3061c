// Package gomdd provides a Go-native Multi-valued Decision Diagram (MDD)
// library for discrete functions over finite integer domains.
//
// # Overview
//
// An MDD represents a function f: D0×D1×…×Dn-1 → V as a directed acyclic
// graph. Each decision node tests one variable and has one outgoing edge per
// value of that variable; terminal nodes carry the function values. Variables
// are tested in the fixed order 0..n-1.
//
// # Key Features
//
//   - Canonical construction from a fully enumerated truth vector
//   - Hash-consing: structurally identical subdiagrams are a single node
//   - Redundancy elimination: decisions that cannot change the result vanish
//   - Direct table evaluation and diagram evaluation of the same semantics
//   - Traversal helpers for renderers (see package dot)
//
// # Basic Usage
//
//	d, err := gomdd.Build([]int{2, 2, 3}, []int{0, 0, 0, 0, 1, 1, 0, 1, 1, 0, 2, 2})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	v, err := d.Evaluate([]int{1, 1, 1}) // 2
//
// Every Build call owns its NodeTable. A NodeTable is not safe for
// concurrent use, but independent diagrams can be built concurrently.
package gomdd

import (
	"fmt"
	"io"
	"iter"
	"slices"
	"strings"
)

// Diagram represents a reduced, ordered Multi-valued Decision Diagram.
//
// Diagrams are immutable after construction. The root and every node
// reachable from it live in the NodeTable of the construction session.
type Diagram[V comparable] struct {
	// root is the NodeID of the root node, a decision or a terminal
	root NodeID

	// nodes holds every node created while building the diagram
	nodes *NodeTable[V]

	// domains is the arity of each variable, in variable order
	domains []int
}

func newDiagram[V comparable](domains []int, root NodeID, nodes *NodeTable[V]) *Diagram[V] {
	return &Diagram[V]{
		root:    root,
		nodes:   nodes,
		domains: slices.Clone(domains),
	}
}

// Root returns the NodeID of the root node.
func (d *Diagram[V]) Root() NodeID {
	return d.root
}

// NodeTable returns the node table of the construction session. It can be
// used to check node identity, e.g. that two paths share a subdiagram.
func (d *Diagram[V]) NodeTable() *NodeTable[V] {
	return d.nodes
}

// Variables returns the number of variables of the represented function.
func (d *Diagram[V]) Variables() int {
	return len(d.domains)
}

// Domains returns a copy of the domain sizes.
func (d *Diagram[V]) Domains() []int {
	return slices.Clone(d.domains)
}

// GetNode retrieves a node by its ID.
//
// Returns ErrInvalidNode if the ID is invalid or out of bounds.
func (d *Diagram[V]) GetNode(id NodeID) (Node[V], error) {
	return d.nodes.GetNode(id)
}

// Evaluate follows the path selected by assignment from the root to a
// terminal and returns its value.
//
// Returns ErrArityMismatch if len(assignment) differs from the number of
// variables, and ErrInvalidDecision if the value of a tested variable is not
// a valid successor index. Variables eliminated by reduction are not tested,
// so an assignment that Table.Evaluate rejects as out of range can still
// evaluate here when the bad value belongs to an eliminated variable.
func (d *Diagram[V]) Evaluate(assignment []int) (V, error) {
	v, _, err := d.evaluate(assignment, false)
	return v, err
}

// Trace evaluates assignment like Evaluate and also returns the labels of the
// visited nodes, ending with the terminal's label. On error the trace stops
// at the offending node.
func (d *Diagram[V]) Trace(assignment []int) (V, []string, error) {
	return d.evaluate(assignment, true)
}

func (d *Diagram[V]) evaluate(assignment []int, trace bool) (V, []string, error) {
	var zero V
	if len(assignment) != len(d.domains) {
		return zero, nil, fmt.Errorf("%w: expected %d values, got %d", ErrArityMismatch, len(d.domains), len(assignment))
	}

	var path []string
	current := d.nodes.nodes[d.root]
	for current.Kind == KindDecision {
		if trace {
			path = append(path, current.Label())
		}
		idx := current.Variable
		if idx >= len(assignment) {
			return zero, path, fmt.Errorf("%w: no value for variable %d", ErrInvalidDecision, idx)
		}
		next, ok := current.Successor(assignment[idx])
		if !ok {
			return zero, path, fmt.Errorf("%w: variable %d has %d successors, got %d", ErrInvalidDecision, idx, current.Arity(), assignment[idx])
		}
		current = d.nodes.nodes[next]
	}

	if trace {
		path = append(path, current.Label())
	}
	return current.Value, path, nil
}

// Structure returns a pre-order walk of the diagram as (label, depth) pairs,
// a decision before its successors in successor order. Shared nodes are
// repeated under every parent. The sequence can be ranged over many times.
func (d *Diagram[V]) Structure() iter.Seq2[string, int] {
	return func(yield func(string, int) bool) {
		d.dump(d.root, 0, yield)
	}
}

func (d *Diagram[V]) dump(id NodeID, depth int, yield func(string, int) bool) bool {
	n := d.nodes.nodes[id]
	if !yield(n.Label(), depth) {
		return false
	}
	for _, s := range n.successors {
		if !d.dump(s, depth+1, yield) {
			return false
		}
	}
	return true
}

// WriteStructure prints Structure with three spaces of indentation per
// level.
func (d *Diagram[V]) WriteStructure(w io.Writer) error {
	for label, depth := range d.Structure() {
		if _, err := fmt.Fprintf(w, "%s%s\n", strings.Repeat("   ", depth), label); err != nil {
			return err
		}
	}
	return nil
}

// Walk calls f once for every node reachable from the root, in depth-first
// pre-order. It stops and returns the first error returned by f.
func (d *Diagram[V]) Walk(f func(id NodeID, n Node[V]) error) error {
	visited := make(map[NodeID]bool)
	var walk func(id NodeID) error
	walk = func(id NodeID) error {
		if visited[id] {
			return nil
		}
		visited[id] = true
		n := d.nodes.nodes[id]
		if err := f(id, n); err != nil {
			return err
		}
		for _, s := range n.successors {
			if err := walk(s); err != nil {
				return err
			}
		}
		return nil
	}
	return walk(d.root)
}

// Size returns the number of nodes reachable from the root, terminals
// included.
func (d *Diagram[V]) Size() int {
	size := 0
	_ = d.Walk(func(NodeID, Node[V]) error {
		size++
		return nil
	})
	return size
}

// Equal reports whether both diagrams have the same domains and the same
// structure. Diagrams from different sessions can be compared.
func (d *Diagram[V]) Equal(other *Diagram[V]) bool {
	if other == nil {
		return false
	}
	if !slices.Equal(d.domains, other.domains) {
		return false
	}
	return d.nodes.Equal(d.root, other.nodes, other.root)
}
