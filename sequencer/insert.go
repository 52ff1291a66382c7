package sequencer

import (
	"fmt"

	"github.com/vk/tickseq/internal/nodeid"
)

// InsertNode inserts a single root node and queues it immediately.
func (s *Sequencer[T]) InsertNode(item T) Key {
	keys, err := s.InsertGraph([]Entry[T]{{Payload: item}})
	if err != nil {
		// A single entry without parents cannot fail validation.
		panic(fmt.Errorf("sequencer: inserting root node: %w", err))
	}
	return keys[0]
}

// InsertSequence inserts items as a linear chain, each item depending on the
// one before it. The first item is queued immediately. It returns the key of
// the first node.
func (s *Sequencer[T]) InsertSequence(items []T) (Key, error) {
	keys, err := s.InsertGraph(chain(items, nil))
	if err != nil {
		return Key{}, err
	}
	return keys[0], nil
}

// InsertChildSequence inserts items as a linear chain whose first item
// depends on every key in parents. It returns the key of the last node, so
// further sequences can be chained after it.
//
// If all parents are already completed the first item is queued at once.
func (s *Sequencer[T]) InsertChildSequence(parents []Key, items []T) (Key, error) {
	if len(parents) == 0 {
		return Key{}, emptyInput()
	}
	refs := make([]Ref, len(parents))
	for i, p := range parents {
		refs[i] = KeyRef(p)
	}

	keys, err := s.InsertGraph(chain(items, refs))
	if err != nil {
		return Key{}, err
	}
	return keys[len(keys)-1], nil
}

// InsertGraph inserts a batch of nodes with arbitrary fan-out and fan-in and
// returns their keys, indexed like entries.
//
// Parents are given as KeyRef for nodes already in the store or IndexRef for
// earlier entries of the same batch. The whole batch is validated before
// anything is stored: on error nothing is inserted and nothing is queued.
//
// Every entry with no parents, or whose parents are all completed, is queued
// in batch order.
func (s *Sequencer[T]) InsertGraph(entries []Entry[T]) ([]Key, error) {
	if len(entries) == 0 {
		return nil, emptyInput()
	}
	for i, e := range entries {
		for _, ref := range e.Parents {
			if err := s.validateRef(i, len(entries), ref); err != nil {
				s.logger.Debug("Rejected graph insertion.", "error", err)
				return nil, err
			}
		}
	}

	keys := make([]Key, len(entries))
	for i, e := range entries {
		parents := make([]nodeid.Key, len(e.Parents))
		for j, ref := range e.Parents {
			if ref.local {
				parents[j] = keys[ref.index]
			} else {
				parents[j] = ref.key
			}
		}

		n, err := s.topology.Add(e.Payload, parents)
		if err != nil {
			panic(fmt.Errorf("sequencer: validated entry %d rejected by topology: %w", i, err))
		}
		keys[i] = n.Key()
	}

	queued := 0
	for _, k := range keys {
		n, _ := s.topology.Node(k)
		if n.DepCount() > 0 {
			continue
		}
		if err := s.scheduler.Enqueue(k); err != nil {
			panic(fmt.Errorf("sequencer: queueing inserted node: %w", err))
		}
		queued++
	}

	s.logger.Debug("Inserted graph.", "nodes", len(keys), "queued", queued, "total_nodes", s.topology.Len())
	return keys, nil
}

// validateRef checks one parent reference of entry i in a batch of size n.
func (s *Sequencer[T]) validateRef(i, n int, ref Ref) error {
	if !ref.local {
		if !s.topology.Contains(ref.key) {
			return &InsertError{Index: i, Ref: ref, Err: ErrUnknownParent}
		}
		return nil
	}
	switch {
	case ref.index < 0 || ref.index >= n:
		return &InsertError{Index: i, Ref: ref, Err: ErrUnknownParent}
	case ref.index >= i:
		return &InsertError{Index: i, Ref: ref, Err: ErrCyclicReference}
	}
	return nil
}

// chain builds batch entries for a linear sequence. The first entry gets
// head as its parents.
func chain[T any](items []T, head []Ref) []Entry[T] {
	if len(items) == 0 {
		return nil
	}
	entries := make([]Entry[T], len(items))
	for i, item := range items {
		entries[i].Payload = item
		if i == 0 {
			entries[i].Parents = head
		} else {
			entries[i].Parents = []Ref{IndexRef(i - 1)}
		}
	}
	return entries
}
