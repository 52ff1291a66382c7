package node

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/tickseq/internal/nodeid"
)

func TestNew_CollapsesDuplicateParents(t *testing.T) {
	p1 := nodeid.New(0, 1)
	p2 := nodeid.New(1, 1)

	n := New(nodeid.New(2, 1), "walk", []nodeid.Key{p1, p2, p1})

	assert.Equal(t, []nodeid.Key{p1, p2}, n.Parents())
	assert.Equal(t, 2, n.DepCount())
	assert.Equal(t, Pending, n.State())
	assert.Equal(t, "walk", n.Payload)
}

func TestNew_Root(t *testing.T) {
	n := New(nodeid.New(0, 1), 42, nil)

	assert.Empty(t, n.Parents())
	assert.Empty(t, n.Children())
	assert.Equal(t, 0, n.DepCount())
}

func TestDecrementDepCount_StopsAtZero(t *testing.T) {
	n := New(nodeid.New(2, 1), 0, []nodeid.Key{nodeid.New(0, 1)})

	assert.Equal(t, 0, n.DecrementDepCount())
	assert.Equal(t, 0, n.DecrementDepCount())
}

func TestTransition_ForwardOnly(t *testing.T) {
	n := New(nodeid.New(0, 1), "say", nil)

	require.NoError(t, n.Transition(Queued))
	require.NoError(t, n.Transition(Active))
	require.NoError(t, n.Transition(Completed))
	assert.Equal(t, Completed, n.State())

	// Completed is terminal.
	err := n.Transition(Completed)
	require.ErrorIs(t, err, ErrInvalidTransition)
}

func TestTransition_Rejected(t *testing.T) {
	testCases := []struct {
		name string
		from []State
		to   State
	}{
		{name: "pending to active skips queue", to: Active},
		{name: "pending to completed", to: Completed},
		{name: "queued back to pending", from: []State{Queued}, to: Pending},
		{name: "active back to queued", from: []State{Queued, Active}, to: Queued},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			n := New(nodeid.New(0, 1), 0, nil)
			for _, s := range tc.from {
				require.NoError(t, n.Transition(s))
			}
			before := n.State()

			err := n.Transition(tc.to)
			require.ErrorIs(t, err, ErrInvalidTransition)
			assert.Equal(t, before, n.State(), "a rejected transition must not change state")
		})
	}
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "pending", Pending.String())
	assert.Equal(t, "queued", Queued.String())
	assert.Equal(t, "active", Active.String())
	assert.Equal(t, "completed", Completed.String())
	assert.Equal(t, "state(9)", State(9).String())
}
