// Package scheduler tracks which nodes of the sequence graph are eligible to
// start and which are currently being processed by the caller.
//
// # How It Works
//
// The tracker is pull-based. The caller drives it in two phases per tick:
//  1. Drain: every queued node moves to the active set and is handed out
//  2. Process: every active node is visited; reporting it finished marks it
//     Completed and queues each child whose parents are now all Completed
//
// Children queued during phase 2 are only handed out by the next drain.
// This phase boundary is part of the contract: a node is never drained and
// processed within the same call.
//
// # Relationship with Other Components
//
//   - **Topology Store:** owns node state; the tracker asks it to transition
//     nodes and to look up children
//   - **Sequencer:** the public facade; it calls Enqueue after insertions and
//     forwards Drain/ForEachActive/IsActive to the caller
package scheduler

import (
	"github.com/vk/tickseq/internal/node"
	"github.com/vk/tickseq/internal/nodeid"
)

// Scheduler is the activation tracker contract used by the sequencer.
//
// # Thread-Safety
//
// None. Calls must come from one goroutine, and visitors must not call back
// into Drain or ForEachActive.
type Scheduler[T any] interface {
	// Enqueue moves a Pending node whose dependencies are all Completed to
	// Queued and appends it to the ready queue.
	Enqueue(id nodeid.Key) error

	// Drain empties the ready queue in FIFO order, marks each node Active and
	// invokes visit once per node. Nodes queued while Drain runs wait for the
	// next call.
	Drain(visit func(n *node.Node[T]))

	// ForEachActive visits every Active node once, in activation order. When
	// visit returns true the node is Completed and its ready children are
	// queued; otherwise it stays Active for the next call.
	ForEachActive(visit func(n *node.Node[T]) bool)

	// Complete marks an Active node Completed outside ForEachActive and
	// queues its ready children, which the next Drain hands out. It fails
	// for a node that is not Active and while a visitor is running.
	Complete(id nodeid.Key) error

	// IsActive reports whether the ready queue or the active set is non-empty.
	IsActive() bool

	// Queued returns a snapshot of the ready queue in drain order.
	Queued() []nodeid.Key

	// Active returns a snapshot of the active set in visit order.
	Active() []nodeid.Key
}
