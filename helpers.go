package gomdd

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// isRedundant reports whether every successor is the same node. A node
// without successors is never redundant.
func isRedundant(successors []NodeID) bool {
	if len(successors) == 0 {
		return false
	}
	first := successors[0]
	for _, s := range successors[1:] {
		if s != first {
			return false
		}
	}
	return true
}

// compositeKey hashes (variable, successors...) for the unique table. The
// key is encoded into a buffer owned by the table, so it allocates only
// when the buffer has to grow. Collisions are resolved by the caller.
func (nt *NodeTable[V]) compositeKey(variable int, successors []NodeID) uint64 {
	b := binary.AppendUvarint(nt.kbuf[:0], uint64(variable))
	for _, s := range successors {
		b = binary.LittleEndian.AppendUint32(b, uint32(s))
	}
	nt.kbuf = b
	return xxhash.Sum64(b)
}

// product returns the product of domains and false if it overflows an int.
func product(domains []int) (int, bool) {
	p := 1
	for _, d := range domains {
		if d <= 0 {
			return 0, false
		}
		if p > math.MaxInt/d {
			return 0, false
		}
		p *= d
	}
	return p, true
}

// strides computes the mixed-radix offsets of domains: the last variable
// has stride 1 and every other variable the product of the domains after it.
func strides(domains []int) []int {
	n := len(domains)
	offsets := make([]int, n)
	offsets[n-1] = 1
	for i := n - 2; i >= 0; i-- {
		offsets[i] = domains[i+1] * offsets[i+1]
	}
	return offsets
}
