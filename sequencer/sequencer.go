package sequencer

import (
	"log/slog"

	"github.com/vk/tickseq/internal/inmemorytopology"
	"github.com/vk/tickseq/internal/node"
	"github.com/vk/tickseq/internal/scheduler"
	"github.com/vk/tickseq/internal/topologystore"
)

// Sequencer holds every inserted node and tracks what is queued and what is
// active. The zero value is not usable; call New.
type Sequencer[T any] struct {
	topology  topologystore.Store[T]
	scheduler scheduler.Scheduler[T]
	logger    *slog.Logger
}

// New creates an empty sequencer.
func New[T any](opts ...Option) *Sequencer[T] {
	o := options{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(&o)
	}

	topology := inmemorytopology.NewWithCapacity[T](o.capacity)
	return &Sequencer[T]{
		topology:  topology,
		scheduler: scheduler.New(topology, o.logger),
		logger:    o.logger,
	}
}

// DrainQueue moves every queued node to the active set, in FIFO order, and
// calls visit once per node with its key and a copy of its payload.
//
// Nodes that become queued while DrainQueue runs are not visited until the
// next call. Draining an empty queue is a no-op. Every queued node is made
// active before the first visit, so if visit panics and the caller recovers,
// the whole batch is in the active set.
func (s *Sequencer[T]) DrainQueue(visit func(key Key, item T)) {
	s.scheduler.Drain(func(n *node.Node[T]) {
		visit(n.Key(), n.Payload)
	})
}

// ForEachActive calls visit for every active node, in the order the nodes
// were drained, with a pointer to the stored payload. The pointer is only
// valid for the duration of the call.
//
// Returning true marks the node Completed and queues each child whose
// parents are now all completed; those children are handed out by the next
// DrainQueue. Returning false keeps the node active for the next call. If
// visit panics, nodes it already completed leave the active set and the rest
// stay in it.
func (s *Sequencer[T]) ForEachActive(visit func(key Key, item *T) bool) {
	s.scheduler.ForEachActive(func(n *node.Node[T]) bool {
		return visit(n.Key(), &n.Payload)
	})
}

// Complete marks an active node Completed without waiting for the next
// ForEachActive pass. Its ready children are queued for the next DrainQueue,
// exactly as if ForEachActive had completed it.
//
// It returns an error wrapping ErrNotActive if the node is not active, an
// error for an unknown key, and ErrVisitorRunning when called from inside a
// DrainQueue or ForEachActive visitor.
func (s *Sequencer[T]) Complete(key Key) error {
	return s.scheduler.Complete(key)
}

// IsActive reports whether any node is queued or active. It is the natural
// loop condition of a tick loop.
func (s *Sequencer[T]) IsActive() bool {
	return s.scheduler.IsActive()
}

// NodeCount returns the number of nodes ever inserted.
func (s *Sequencer[T]) NodeCount() int {
	return s.topology.Len()
}

// CompletedCount returns the number of completed nodes.
func (s *Sequencer[T]) CompletedCount() int {
	return s.topology.CompletedCount()
}

// QueuedCount returns the length of the ready queue.
func (s *Sequencer[T]) QueuedCount() int {
	return len(s.scheduler.Queued())
}

// ActiveCount returns the size of the active set.
func (s *Sequencer[T]) ActiveCount() int {
	return len(s.scheduler.Active())
}

// Status returns the state of the node addressed by key.
func (s *Sequencer[T]) Status(key Key) (State, bool) {
	n, ok := s.topology.Node(key)
	if !ok {
		return Pending, false
	}
	return n.State(), true
}

// Payload returns a copy of the payload of the node addressed by key.
func (s *Sequencer[T]) Payload(key Key) (T, bool) {
	n, ok := s.topology.Node(key)
	if !ok {
		var zero T
		return zero, false
	}
	return n.Payload, true
}

// Parents returns the keys the node depends on.
func (s *Sequencer[T]) Parents(key Key) ([]Key, bool) {
	deps, err := s.topology.DependenciesOf(key)
	return deps, err == nil
}

// Children returns the keys that depend on the node.
func (s *Sequencer[T]) Children(key Key) ([]Key, bool) {
	deps, err := s.topology.DependentsOf(key)
	return deps, err == nil
}
