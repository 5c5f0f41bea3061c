package gomdd

import (
	"iter"
	"math/big"
	"slices"
)

// level returns the first variable a node depends on; terminals sit below
// the last variable.
func (d *Diagram[V]) level(id NodeID) int {
	n := d.nodes.nodes[id]
	if n.IsTerminal() {
		return len(d.domains)
	}
	return n.Variable
}

// span returns the number of assignments of variables from..to-1.
func (d *Diagram[V]) span(from, to int) *big.Int {
	res := big.NewInt(1)
	for i := from; i < to; i++ {
		res.Mul(res, big.NewInt(int64(d.domains[i])))
	}
	return res
}

// Count returns the number of complete assignments for which the function
// equals value. Variables skipped by a path contribute their full domain.
// We return a result using arbitrary-precision arithmetic since the number
// of assignments is the product of all domains.
func (d *Diagram[V]) Count(value V) *big.Int {
	memo := make(map[NodeID]*big.Int)
	res := d.count(d.root, value, memo)
	return new(big.Int).Mul(res, d.span(0, d.level(d.root)))
}

// count returns the number of assignments of the variables from the node's
// level downwards that reach value, with memoization.
func (d *Diagram[V]) count(id NodeID, value V, memo map[NodeID]*big.Int) *big.Int {
	if c, ok := memo[id]; ok {
		return c
	}

	n := d.nodes.nodes[id]
	c := new(big.Int)
	if n.IsTerminal() {
		if n.Value == value {
			c.SetInt64(1)
		}
	} else {
		for _, s := range n.successors {
			sub := d.count(s, value, memo)
			if sub.Sign() == 0 {
				continue
			}
			c.Add(c, new(big.Int).Mul(sub, d.span(n.Variable+1, d.level(s))))
		}
	}

	memo[id] = c
	return c
}

// Values returns the distinct terminal values reachable from the root, in
// the order a depth-first walk discovers them.
func (d *Diagram[V]) Values() []V {
	var values []V
	_ = d.Walk(func(_ NodeID, n Node[V]) error {
		if n.IsTerminal() {
			values = append(values, n.Value)
		}
		return nil
	})
	return values
}

// Assignments enumerates, in flat index order, every complete assignment for
// which the function equals value. Variables eliminated on a path are
// expanded over their whole domain. Each yielded slice is a fresh copy.
func (d *Diagram[V]) Assignments(value V) iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		a := make([]int, len(d.domains))
		d.enumerate(d.root, 0, a, value, yield)
	}
}

func (d *Diagram[V]) enumerate(id NodeID, pos int, a []int, value V, yield func([]int) bool) bool {
	n := d.nodes.nodes[id]
	if n.IsTerminal() && n.Value != value {
		return true
	}
	if pos == len(d.domains) {
		return yield(slices.Clone(a))
	}

	if n.IsTerminal() || n.Variable > pos {
		for k := 0; k < d.domains[pos]; k++ {
			a[pos] = k
			if !d.enumerate(id, pos+1, a, value, yield) {
				return false
			}
		}
		return true
	}

	for k, s := range n.successors {
		a[pos] = k
		if !d.enumerate(s, pos+1, a, value, yield) {
			return false
		}
	}
	return true
}

// Vector re-materializes the flat truth vector represented by the diagram.
// Building a diagram from Vector() yields an equal diagram.
func (d *Diagram[V]) Vector() []V {
	size, _ := product(d.domains)
	offsets := strides(d.domains)
	values := make([]V, size)
	row := make([]int, len(d.domains))
	for index := range values {
		for i := range row {
			row[i] = (index / offsets[i]) % d.domains[i]
		}
		values[index], _ = d.Evaluate(row)
	}
	return values
}
