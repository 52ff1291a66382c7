// Package inmemorytopology provides a simple, in-memory implementation of
// the topologystore.Store interface.
package inmemorytopology

import (
	"fmt"

	"github.com/vk/tickseq/internal/node"
	"github.com/vk/tickseq/internal/nodeid"
	"github.com/vk/tickseq/internal/topologystore"
)

// slot is one arena cell. generation is bumped whenever the cell would be
// handed to a different node, which invalidates outstanding keys.
type slot[T any] struct {
	generation uint32
	node       *node.Node[T]
}

// Store implements topologystore.Store with a slice arena.
//
// Slots are appended and never freed today. A future sweep of Completed
// nodes would clear slot.node, bump slot.generation and push the index onto
// a free list consumed by Add; it must only run once the caller has given up
// every key it still holds for the swept nodes. Node keeps no pointers to
// other nodes, only keys, so freeing a slot cannot leave dangling edges.
type Store[T any] struct {
	slots     []slot[T]
	completed int
}

// New creates a new, empty in-memory topology store.
func New[T any]() topologystore.Store[T] {
	return &Store[T]{}
}

// NewWithCapacity creates an empty store with room for n nodes.
func NewWithCapacity[T any](n int) topologystore.Store[T] {
	if n < 0 {
		n = 0
	}
	return &Store[T]{slots: make([]slot[T], 0, n)}
}

// Add stores a new node and links it to its parents.
func (s *Store[T]) Add(payload T, parents []nodeid.Key) (*node.Node[T], error) {
	for _, p := range parents {
		if !s.Contains(p) {
			return nil, fmt.Errorf("parent node '%s' not found in topology", p)
		}
	}

	key := nodeid.New(uint32(len(s.slots)), 1)
	n := node.New(key, payload, parents)

	pending := 0
	for _, p := range n.Parents() {
		parent := s.slots[p.Index].node
		parent.AddChild(key)
		if parent.State() != node.Completed {
			pending++
		}
	}
	n.SetDepCount(pending)

	s.slots = append(s.slots, slot[T]{generation: key.Generation, node: n})
	return n, nil
}

// Node retrieves a single node by its key.
func (s *Store[T]) Node(id nodeid.Key) (*node.Node[T], bool) {
	if id.IsNull() || int(id.Index) >= len(s.slots) {
		return nil, false
	}
	sl := s.slots[id.Index]
	if sl.generation != id.Generation || sl.node == nil {
		return nil, false
	}
	return sl.node, true
}

// Contains reports whether the key addresses a live node.
func (s *Store[T]) Contains(id nodeid.Key) bool {
	_, ok := s.Node(id)
	return ok
}

// DependenciesOf returns the keys of all nodes that the given node depends on.
func (s *Store[T]) DependenciesOf(id nodeid.Key) ([]nodeid.Key, error) {
	n, ok := s.Node(id)
	if !ok {
		return nil, fmt.Errorf("node '%s' not found in topology", id)
	}
	return n.Parents(), nil
}

// DependentsOf returns the keys of all nodes that depend on the given node.
func (s *Store[T]) DependentsOf(id nodeid.Key) ([]nodeid.Key, error) {
	n, ok := s.Node(id)
	if !ok {
		return nil, fmt.Errorf("node '%s' not found in topology", id)
	}
	return n.Children(), nil
}

// SetState advances a node's state.
func (s *Store[T]) SetState(id nodeid.Key, to node.State) error {
	n, ok := s.Node(id)
	if !ok {
		return fmt.Errorf("node '%s' not found in topology", id)
	}
	if err := n.Transition(to); err != nil {
		return err
	}
	if to == node.Completed {
		s.completed++
	}
	return nil
}

// Len returns the number of nodes in the store.
func (s *Store[T]) Len() int {
	return len(s.slots)
}

// CompletedCount returns the number of completed nodes.
func (s *Store[T]) CompletedCount() int {
	return s.completed
}
