package scheduler

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/vk/tickseq/internal/node"
	"github.com/vk/tickseq/internal/nodeid"
	"github.com/vk/tickseq/internal/topologystore"
)

var (
	// ErrNotActive is returned by Complete for a node that is not Active.
	ErrNotActive = errors.New("node is not active")
	// ErrVisitorRunning is returned by Complete when called from inside a
	// Drain or ForEachActive visitor.
	ErrVisitorRunning = errors.New("called from inside a visitor")
)

// DefaultScheduler is the reference implementation of the Scheduler interface.
//
// Both the queue and the active set are slices, so every visit order is
// deterministic: drain order is enqueue order, and active nodes are visited
// in the order they were drained.
type DefaultScheduler[T any] struct {
	store  topologystore.Store[T]
	logger *slog.Logger

	queue  []nodeid.Key
	active []nodeid.Key

	// running is set while a visitor is being invoked.
	running bool
}

// New creates a scheduler over the given store.
func New[T any](store topologystore.Store[T], logger *slog.Logger) *DefaultScheduler[T] {
	return &DefaultScheduler[T]{
		store:  store,
		logger: logger,
	}
}

// Enqueue implements the Scheduler interface.
func (s *DefaultScheduler[T]) Enqueue(id nodeid.Key) error {
	n, ok := s.store.Node(id)
	if !ok {
		return fmt.Errorf("cannot enqueue unknown node '%s'", id)
	}
	if n.DepCount() != 0 {
		return fmt.Errorf("cannot enqueue node '%s': %d dependencies not completed", id, n.DepCount())
	}
	if err := s.store.SetState(id, node.Queued); err != nil {
		return err
	}
	s.queue = append(s.queue, id)
	s.logger.Debug("Node queued.", "key", id)
	return nil
}

// Drain implements the Scheduler interface.
//
// Every queued node is activated before the first visit, so a visitor that
// panics leaves each drained node Active and in the active set.
func (s *DefaultScheduler[T]) Drain(visit func(n *node.Node[T])) {
	s.enter("Drain")
	defer s.leave()

	queued := s.queue
	s.queue = nil
	if len(queued) == 0 {
		return
	}
	s.logger.Debug("Draining ready queue.", "count", len(queued))

	nodes := make([]*node.Node[T], len(queued))
	for i, id := range queued {
		nodes[i] = s.mustNode(id)
		s.mustSetState(id, node.Active)
		s.active = append(s.active, id)
	}
	for _, n := range nodes {
		visit(n)
	}
}

// ForEachActive implements the Scheduler interface.
//
// If visit panics, nodes already completed in this pass are removed from the
// active set and the rest, including the one being visited, stay active.
func (s *DefaultScheduler[T]) ForEachActive(visit func(n *node.Node[T]) bool) {
	s.enter("ForEachActive")
	defer s.leave()

	if len(s.active) == 0 {
		return
	}

	snapshot := s.active
	remaining := make([]nodeid.Key, 0, len(snapshot))
	i := 0
	defer func() {
		s.active = append(remaining, snapshot[i:]...)
	}()

	for ; i < len(snapshot); i++ {
		id := snapshot[i]
		n := s.mustNode(id)
		if !visit(n) {
			remaining = append(remaining, id)
			continue
		}
		s.complete(n)
	}
}

// Complete implements the Scheduler interface.
func (s *DefaultScheduler[T]) Complete(id nodeid.Key) error {
	if s.running {
		return ErrVisitorRunning
	}
	n, ok := s.store.Node(id)
	if !ok {
		return fmt.Errorf("cannot complete unknown node '%s'", id)
	}
	if n.State() != node.Active {
		return fmt.Errorf("%w: node '%s' is %s", ErrNotActive, id, n.State())
	}

	for i, activeID := range s.active {
		if activeID == id {
			s.active = append(s.active[:i:i], s.active[i+1:]...)
			break
		}
	}
	s.complete(n)
	return nil
}

// IsActive implements the Scheduler interface.
func (s *DefaultScheduler[T]) IsActive() bool {
	return len(s.queue) > 0 || len(s.active) > 0
}

// Queued implements the Scheduler interface.
func (s *DefaultScheduler[T]) Queued() []nodeid.Key {
	out := make([]nodeid.Key, len(s.queue))
	copy(out, s.queue)
	return out
}

// Active implements the Scheduler interface.
func (s *DefaultScheduler[T]) Active() []nodeid.Key {
	out := make([]nodeid.Key, len(s.active))
	copy(out, s.active)
	return out
}

// complete marks n Completed and queues every child whose last pending
// parent was n.
func (s *DefaultScheduler[T]) complete(n *node.Node[T]) {
	s.mustSetState(n.Key(), node.Completed)
	children := n.Children()
	s.logger.Debug("Node completed.", "key", n.Key(), "children", len(children))

	for _, childID := range children {
		child := s.mustNode(childID)
		if child.DecrementDepCount() > 0 || child.State() != node.Pending {
			continue
		}
		if err := s.Enqueue(childID); err != nil {
			panic(fmt.Errorf("scheduler: invariant violation while propagating from '%s': %w", n.Key(), err))
		}
	}
}

func (s *DefaultScheduler[T]) enter(op string) {
	if s.running {
		panic("scheduler: " + op + " called from inside a visitor")
	}
	s.running = true
}

func (s *DefaultScheduler[T]) leave() {
	s.running = false
}

func (s *DefaultScheduler[T]) mustNode(id nodeid.Key) *node.Node[T] {
	n, ok := s.store.Node(id)
	if !ok {
		panic(fmt.Sprintf("scheduler: invariant violation: tracked node '%s' missing from topology", id))
	}
	return n
}

func (s *DefaultScheduler[T]) mustSetState(id nodeid.Key, to node.State) {
	if err := s.store.SetState(id, to); err != nil {
		panic(fmt.Errorf("scheduler: invariant violation: %w", err))
	}
}
