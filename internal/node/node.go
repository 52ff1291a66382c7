package node

import (
	"errors"
	"fmt"

	"github.com/vk/tickseq/internal/nodeid"
)

// ErrInvalidTransition is returned when a node is asked to move anywhere
// other than its single successor state.
var ErrInvalidTransition = errors.New("invalid state transition")

// Node is a single vertex in the sequence graph, holding one caller-owned
// payload and its position in the dependency structure.
type Node[T any] struct {
	// key is the stable identifier issued by the arena.
	key nodeid.Key
	// Payload is the caller-supplied item. The node is its only owner.
	Payload T

	// parents are the nodes this node depends on, without duplicates.
	parents []nodeid.Key
	// children are the nodes that depend on this node, in insertion order.
	children []nodeid.Key

	// --- Internal state management ---

	// depCount is the number of parents that have not completed yet.
	depCount int
	// state is the node's current activation state.
	state State
}

// New creates a pending node. Parents are fixed for the node's lifetime and
// duplicates are collapsed so each parent is counted once.
func New[T any](key nodeid.Key, payload T, parents []nodeid.Key) *Node[T] {
	n := &Node[T]{
		key:     key,
		Payload: payload,
		state:   Pending,
	}
	if len(parents) > 0 {
		n.parents = make([]nodeid.Key, 0, len(parents))
		seen := make(map[nodeid.Key]struct{}, len(parents))
		for _, p := range parents {
			if _, dup := seen[p]; dup {
				continue
			}
			seen[p] = struct{}{}
			n.parents = append(n.parents, p)
		}
	}
	n.depCount = len(n.parents)
	return n
}

// Key returns the node's identifier.
func (n *Node[T]) Key() nodeid.Key {
	return n.key
}

// Parents returns a copy of the parent keys.
func (n *Node[T]) Parents() []nodeid.Key {
	out := make([]nodeid.Key, len(n.parents))
	copy(out, n.parents)
	return out
}

// Children returns a copy of the child keys.
func (n *Node[T]) Children() []nodeid.Key {
	out := make([]nodeid.Key, len(n.children))
	copy(out, n.children)
	return out
}

// AddChild records the inverse of a parent edge. Only the topology store
// calls it, while inserting the child.
func (n *Node[T]) AddChild(child nodeid.Key) {
	n.children = append(n.children, child)
}

// DepCount returns the current number of unmet dependencies.
func (n *Node[T]) DepCount() int {
	return n.depCount
}

// SetDepCount overrides the unmet dependency counter. Used at insertion time
// when some parents are already completed.
func (n *Node[T]) SetDepCount(count int) {
	n.depCount = count
}

// DecrementDepCount decrements the dependency counter and returns the new value.
func (n *Node[T]) DecrementDepCount() int {
	if n.depCount > 0 {
		n.depCount--
	}
	return n.depCount
}

// State returns the node's activation state.
func (n *Node[T]) State() State {
	return n.state
}

// Transition moves the node to the given state. Only the single forward step
// Pending → Queued → Active → Completed is allowed.
func (n *Node[T]) Transition(to State) error {
	want, ok := n.state.next()
	if !ok || want != to {
		return fmt.Errorf("%w for node %s: %s -> %s", ErrInvalidTransition, n.key, n.state, to)
	}
	n.state = to
	return nil
}
