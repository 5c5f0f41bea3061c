// Package gomdd provides Multi-valued Decision Diagram (MDD) functionality
// for discrete functions over finite integer domains.
//
// This package builds reduced, canonical diagrams from fully enumerated
// truth vectors and evaluates variable assignments either directly against
// the vector or by walking the diagram, so that both models can be
// cross-checked against each other.
package gomdd

import "errors"

// Core construction and evaluation errors.
// These errors can be wrapped with additional context using fmt.Errorf.
var (
	// ErrArityMismatch indicates an assignment does not provide exactly one
	// value per variable.
	ErrArityMismatch = errors.New("arity mismatch")

	// ErrInvalidDecision indicates a variable value is negative or outside
	// the domain of its variable.
	ErrInvalidDecision = errors.New("invalid decision")

	// ErrMalformedTable indicates domains and values cannot describe a
	// function table (no variables, empty domain, or wrong vector length).
	ErrMalformedTable = errors.New("malformed function table")

	// ErrEmptySuccessors indicates an attempt to intern a decision node
	// without successors.
	ErrEmptySuccessors = errors.New("decision node without successors")

	// ErrInvalidNode indicates a node ID does not exist in the node table.
	ErrInvalidNode = errors.New("invalid node")

	// ErrVariableOrder indicates a decision node would point to a decision
	// node on the same or an earlier variable.
	ErrVariableOrder = errors.New("variable order violated")

	// ErrNodeLimit indicates the configured node limit has been exceeded.
	ErrNodeLimit = errors.New("node limit exceeded")
)
