// Package topologystore defines the interface for storing the nodes of a
// sequence graph: identity, payloads, adjacency and per-node state.
//
// # Why Topology Store Exists
//
// The store isolates node ownership from the activation logic in the
// scheduler package. The scheduler only ever sees keys; it reaches payloads
// and adjacency through this interface. That keeps one consistent node
// state model shared by both halves of the engine:
//   - **Store:** owns every node, its payload, parents, children and state
//   - **Scheduler:** owns the ready queue and active set derived from it
//
// # Lifecycle and Usage
//
// The store is:
//  1. **Created** empty together with the sequencer
//  2. **Extended** by every insertion call (nodes are only ever appended)
//  3. **Mutated** only through state transitions, driven by the scheduler
//  4. **Never shrunk** in the current scope. Reclaiming completed nodes is a
//     deferred feature; see inmemorytopology for the extension point.
//
// Edges are fixed at insertion: a node's parents must already exist when it
// is added, so the graph is acyclic by construction.
package topologystore

import (
	"github.com/vk/tickseq/internal/node"
	"github.com/vk/tickseq/internal/nodeid"
)

// Store is the interface for managing the nodes and adjacency of a DAG.
//
// # Thread-Safety Requirements
//
// None. The sequencer is single-threaded and synchronous; implementations may
// assume all calls come from one goroutine.
//
// # Typical Implementation
//
// See internal/inmemorytopology for the arena-backed reference implementation.
type Store[T any] interface {
	// Add allocates a key, stores a new Pending node holding payload and links
	// it as a child of every parent.
	//
	// Every parent must already exist. If one does not, implementations must
	// return an error without allocating anything.
	//
	// The returned node's dependency counter equals the number of distinct
	// parents that are not yet Completed.
	Add(payload T, parents []nodeid.Key) (*node.Node[T], error)

	// Node retrieves a node by key. Stale and null keys report false.
	Node(id nodeid.Key) (*node.Node[T], bool)

	// Contains reports whether the key addresses a live node.
	Contains(id nodeid.Key) bool

	// DependenciesOf returns the parents of the given node.
	DependenciesOf(id nodeid.Key) ([]nodeid.Key, error)

	// DependentsOf returns the children of the given node.
	DependentsOf(id nodeid.Key) ([]nodeid.Key, error)

	// SetState advances a node to the given state, enforcing the forward-only
	// state machine and keeping CompletedCount in sync.
	SetState(id nodeid.Key, to node.State) error

	// Len returns the number of nodes in the store.
	Len() int

	// CompletedCount returns the number of nodes in the Completed state.
	CompletedCount() int
}
