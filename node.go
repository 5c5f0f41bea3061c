package gomdd

import (
	"fmt"
	"slices"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// NodeID represents a unique identifier for MDD nodes.
// NodeIDs are assigned sequentially during construction and remain
// valid for the lifetime of the NodeTable that produced them.
type NodeID uint32

// NullNode represents an invalid or uninitialized node reference.
const NullNode NodeID = 0

// Kind discriminates the two node variants.
type Kind uint8

const (
	// KindTerminal marks a node holding a final function value.
	KindTerminal Kind = iota + 1

	// KindDecision marks a node branching on the value of one variable.
	KindDecision
)

func (k Kind) String() string {
	switch k {
	case KindTerminal:
		return "terminal"
	case KindDecision:
		return "decision"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Node represents an MDD node: either a terminal carrying a Value, or a
// decision on Variable with one successor per value of that variable.
//
// Node invariants:
//   - Terminal nodes have Variable == -1 and no successors
//   - Decision nodes have at least one successor
//   - Successor k is followed when the variable takes value k
//   - Every decision successor decides on a strictly greater Variable
//
// Nodes are immutable once interned. The successor list is only reachable
// through Successors, which returns a copy.
type Node[V comparable] struct {
	// Kind tells whether this is a terminal or a decision node.
	Kind Kind

	// Variable is the 0-based index of the variable this node decides on.
	// It is -1 for terminals.
	Variable int

	// Value is the function value of a terminal node. It is the zero value
	// of V for decision nodes.
	Value V

	successors []NodeID
}

// IsTerminal returns true if this node is a terminal.
func (n Node[V]) IsTerminal() bool {
	return n.Kind == KindTerminal
}

// Arity returns the number of successors of a decision node, 0 for terminals.
func (n Node[V]) Arity() int {
	return len(n.successors)
}

// Successors returns a copy of the ordered successor list.
func (n Node[V]) Successors() []NodeID {
	return slices.Clone(n.successors)
}

// Successor returns the successor taken when the node's variable equals k.
// It returns NullNode and false if k is not a valid decision value.
func (n Node[V]) Successor(k int) (NodeID, bool) {
	if k < 0 || k >= len(n.successors) {
		return NullNode, false
	}
	return n.successors[k], true
}

// Label returns "N{variable}" for decision nodes and the printed value for
// terminals.
func (n Node[V]) Label() string {
	if n.IsTerminal() {
		return fmt.Sprint(n.Value)
	}
	return fmt.Sprintf("N%d", n.Variable)
}

func (n Node[V]) String() string {
	if n.IsTerminal() {
		return n.Label()
	}
	return fmt.Sprintf("%s%v", n.Label(), n.successors)
}

// Stats reports how the unique table of a NodeTable has been used.
type Stats struct {
	Terminals int // distinct terminal nodes
	Decisions int // distinct decision nodes
	Lookups   int // composite-key lookups in the unique table
	Hits      int // lookups answered by an existing node
	Misses    int // lookups that allocated a new node
	Redundant int // decision requests collapsed onto their single successor
}

func (s Stats) String() string {
	res := fmt.Sprintf("Terminals:  %d\n", s.Terminals)
	res += fmt.Sprintf("Decisions:  %d\n", s.Decisions)
	res += fmt.Sprintf("Lookups:    %d\n", s.Lookups)
	res += fmt.Sprintf("Hits:       %d\n", s.Hits)
	res += fmt.Sprintf("Misses:     %d\n", s.Misses)
	res += fmt.Sprintf("Redundant:  %d", s.Redundant)
	return res
}

// NodeTable manages MDD nodes with automatic deduplication and reduction.
//
// The NodeTable ensures that:
//   - Exactly one terminal exists per distinct value
//   - Decision nodes with equal variable and identical successors are shared
//   - Decision nodes whose successors are all the same node are never created
//
// Nodes are never deleted once created to maintain NodeID validity.
//
// A NodeTable is NOT safe for concurrent use. It belongs to a single
// construction session; independent diagrams built in parallel must each
// use their own table, and NodeIDs must never be mixed between tables.
type NodeTable[V comparable] struct {
	// nodes stores the actual node data indexed by NodeID
	nodes []Node[V]

	// terminals maps each value to its unique terminal
	terminals map[V]NodeID

	// unique maps the hash of a composite key (variable, successors...) to
	// the decision nodes sharing that hash
	unique map[uint64][]NodeID

	// kbuf is reused to encode composite keys without allocating
	kbuf []byte

	session  uuid.UUID
	logger   *zap.Logger
	maxNodes int
	stats    Stats
}

// NewNodeTable creates an empty node table for one construction session.
//
// The slot at NullNode is reserved, so the first interned node gets ID 1.
func NewNodeTable[V comparable](opts ...Option) *NodeTable[V] {
	cfg := newConfig(opts...)
	session := uuid.New()

	nt := &NodeTable[V]{
		nodes:     make([]Node[V], 1, cfg.SizeHint+1),
		terminals: make(map[V]NodeID),
		unique:    make(map[uint64][]NodeID, cfg.SizeHint),
		session:   session,
		logger:    cfg.Logger.With(zap.String("session", session.String())),
		maxNodes:  cfg.MaxNodes,
	}
	return nt
}

// Session returns the identifier of the construction session owning this
// table. It is attached to every log entry emitted by the table.
func (nt *NodeTable[V]) Session() uuid.UUID {
	return nt.session
}

// Stats returns a snapshot of the unique table counters.
func (nt *NodeTable[V]) Stats() Stats {
	return nt.stats
}

// Size returns the total number of nodes in the table, excluding NullNode.
func (nt *NodeTable[V]) Size() int {
	return len(nt.nodes) - 1
}

func (nt *NodeTable[V]) valid(id NodeID) bool {
	return id != NullNode && int(id) < len(nt.nodes)
}

// GetNode retrieves a node by its ID with bounds checking.
//
// Returns ErrInvalidNode if id == NullNode or id is out of bounds.
func (nt *NodeTable[V]) GetNode(id NodeID) (Node[V], error) {
	if !nt.valid(id) {
		return Node[V]{}, fmt.Errorf("%w: node ID %d", ErrInvalidNode, id)
	}
	return nt.nodes[id], nil
}

// AddTerminal returns the unique terminal for value, creating it on first
// use. Two calls with equal values always return the same NodeID.
//
// Returns ErrNodeLimit if a new terminal would exceed the configured limit.
func (nt *NodeTable[V]) AddTerminal(value V) (NodeID, error) {
	if id, ok := nt.terminals[value]; ok {
		return id, nil
	}

	id, err := nt.alloc(Node[V]{Kind: KindTerminal, Variable: -1, Value: value})
	if err != nil {
		return NullNode, err
	}
	nt.terminals[value] = id
	nt.stats.Terminals++
	return id, nil
}

// AddDecision returns the canonical node deciding on variable with the given
// successors.
//
// This method implements the MDD reduction rules:
//  1. If every successor is the same node, return it (redundant decision)
//  2. If an identical node exists, return its ID (structural sharing)
//  3. Otherwise, create a new node with a fresh ID
//
// Identity of successors is their NodeID. Callers must build bottom-up, so
// that successors are already canonical when their parent is interned.
//
// Returns an error if:
//   - successors is empty (ErrEmptySuccessors)
//   - a successor does not belong to this table (ErrInvalidNode)
//   - a successor decides on a variable <= variable (ErrVariableOrder)
//   - the node limit would be exceeded (ErrNodeLimit)
func (nt *NodeTable[V]) AddDecision(variable int, successors []NodeID) (NodeID, error) {
	if len(successors) == 0 {
		return NullNode, fmt.Errorf("%w: variable %d", ErrEmptySuccessors, variable)
	}
	if variable < 0 {
		return NullNode, fmt.Errorf("%w: negative variable %d", ErrVariableOrder, variable)
	}
	for k, s := range successors {
		if !nt.valid(s) {
			return NullNode, fmt.Errorf("%w: successor %d of variable %d is node ID %d", ErrInvalidNode, k, variable, s)
		}
		if child := nt.nodes[s]; child.Kind == KindDecision && child.Variable <= variable {
			return NullNode, fmt.Errorf("%w: variable %d cannot point to a decision on variable %d", ErrVariableOrder, variable, child.Variable)
		}
	}

	if isRedundant(successors) {
		nt.stats.Redundant++
		return successors[0], nil
	}

	key := nt.compositeKey(variable, successors)
	nt.stats.Lookups++
	for _, id := range nt.unique[key] {
		if nt.matches(id, variable, successors) {
			nt.stats.Hits++
			return id, nil
		}
	}
	nt.stats.Misses++

	id, err := nt.alloc(Node[V]{
		Kind:       KindDecision,
		Variable:   variable,
		successors: slices.Clone(successors),
	})
	if err != nil {
		return NullNode, err
	}
	nt.unique[key] = append(nt.unique[key], id)
	nt.stats.Decisions++
	return id, nil
}

func (nt *NodeTable[V]) matches(id NodeID, variable int, successors []NodeID) bool {
	n := nt.nodes[id]
	return n.Variable == variable && slices.Equal(n.successors, successors)
}

func (nt *NodeTable[V]) alloc(n Node[V]) (NodeID, error) {
	if nt.maxNodes > 0 && nt.Size() >= nt.maxNodes {
		nt.logger.Debug("node limit reached", zap.Int("limit", nt.maxNodes))
		return NullNode, fmt.Errorf("%w: limit %d", ErrNodeLimit, nt.maxNodes)
	}
	id := NodeID(len(nt.nodes))
	nt.nodes = append(nt.nodes, n)
	return id, nil
}

// Equal reports whether node id of nt and node otherID of other denote the
// same structure: same kind, equal terminal values, and for decisions the
// same variable and pairwise structurally equal successors.
//
// It is meant for comparing diagrams built in different sessions. Within a
// single table, structural equality coincides with NodeID equality.
func (nt *NodeTable[V]) Equal(id NodeID, other *NodeTable[V], otherID NodeID) bool {
	if other == nil {
		return false
	}
	return nt.equal(id, other, otherID, make(map[[2]NodeID]bool))
}

func (nt *NodeTable[V]) equal(a NodeID, other *NodeTable[V], b NodeID, memo map[[2]NodeID]bool) bool {
	if !nt.valid(a) || !other.valid(b) {
		return false
	}
	if nt == other && a == b {
		return true
	}
	pair := [2]NodeID{a, b}
	if eq, ok := memo[pair]; ok {
		return eq
	}

	x, y := nt.nodes[a], other.nodes[b]
	eq := x.Kind == y.Kind
	if eq && x.Kind == KindTerminal {
		eq = x.Value == y.Value
	}
	if eq && x.Kind == KindDecision {
		eq = x.Variable == y.Variable && len(x.successors) == len(y.successors)
		for k := 0; eq && k < len(x.successors); k++ {
			eq = nt.equal(x.successors[k], other, y.successors[k], memo)
		}
	}

	memo[pair] = eq
	return eq
}
