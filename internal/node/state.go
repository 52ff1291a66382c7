package node

import "fmt"

// State represents the activation state of a node in the graph.
type State int32

const (
	// Pending indicates the node is waiting for at least one parent to complete.
	Pending State = iota
	// Queued indicates all parents are completed and the node sits in the ready queue.
	Queued
	// Active indicates the node was drained and the caller is processing it.
	Active
	// Completed indicates the caller reported the node as finished.
	Completed
)

// String returns the lower-case name of the state.
func (s State) String() string {
	switch s {
	case Pending:
		return "pending"
	case Queued:
		return "queued"
	case Active:
		return "active"
	case Completed:
		return "completed"
	default:
		return fmt.Sprintf("state(%d)", int32(s))
	}
}

// next returns the only state a node may move to from s.
func (s State) next() (State, bool) {
	switch s {
	case Pending:
		return Queued, true
	case Queued:
		return Active, true
	case Active:
		return Completed, true
	default:
		return s, false
	}
}
