package sequencer

import (
	"errors"
	"fmt"

	"github.com/vk/tickseq/internal/scheduler"
)

var (
	// ErrEmptyInput is returned when an insertion call supplies zero items
	// (or, for InsertChildSequence, zero parents). Nothing is inserted.
	ErrEmptyInput = errors.New("empty input")

	// ErrUnknownParent is returned when a parent reference points to a key
	// that is not in the store or to an index outside the batch.
	ErrUnknownParent = errors.New("unknown parent")

	// ErrCyclicReference is returned when a batch entry references itself or
	// a later entry of the same batch.
	ErrCyclicReference = errors.New("cyclic reference")

	// ErrNotActive is returned by Complete for a node that is not active.
	ErrNotActive = scheduler.ErrNotActive

	// ErrVisitorRunning is returned by Complete when it is called from a
	// visitor.
	ErrVisitorRunning = scheduler.ErrVisitorRunning
)

// InsertError wraps a rejected insertion with the batch entry that caused it.
// Index is -1 when the failure is not tied to a single entry.
type InsertError struct {
	Index int
	Ref   Ref
	Err   error
}

func (e *InsertError) Error() string {
	if e == nil {
		return ""
	}
	if e.Index < 0 {
		return "insert: " + e.Err.Error()
	}
	return fmt.Sprintf("insert: entry %d: parent %s: %s", e.Index, e.Ref, e.Err)
}

func (e *InsertError) Unwrap() error { return e.Err }

func emptyInput() error {
	return &InsertError{Index: -1, Err: ErrEmptyInput}
}
