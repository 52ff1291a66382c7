package sequencer

import (
	"strconv"

	"github.com/vk/tickseq/internal/node"
	"github.com/vk/tickseq/internal/nodeid"
)

// Key uniquely identifies a node for as long as it exists. The zero Key
// never refers to a node.
type Key = nodeid.Key

// ParseKey parses the canonical text form of a Key, e.g. "3v1".
func ParseKey(raw string) (Key, error) {
	return nodeid.Parse(raw)
}

// State is the activation state of a node.
type State = node.State

const (
	// Pending nodes wait for at least one parent.
	Pending = node.Pending
	// Queued nodes are eligible and wait for the next DrainQueue.
	Queued = node.Queued
	// Active nodes were drained and are being processed by the caller.
	Active = node.Active
	// Completed nodes were reported finished by the caller.
	Completed = node.Completed
)

// Ref names a parent of a batch entry: either a node already in the store
// or an earlier entry of the same InsertGraph call.
type Ref struct {
	key   Key
	index int
	local bool
}

// KeyRef references a node that already exists in the store.
func KeyRef(k Key) Ref {
	return Ref{key: k}
}

// IndexRef references entry i of the batch being inserted. i must be lower
// than the index of the entry that holds the reference.
func IndexRef(i int) Ref {
	return Ref{index: i, local: true}
}

// String renders a key reference as the key and an index reference as "#i".
func (r Ref) String() string {
	if r.local {
		return "#" + strconv.Itoa(r.index)
	}
	return r.key.String()
}

// Entry is one node of an InsertGraph batch.
type Entry[T any] struct {
	Payload T
	Parents []Ref
}
