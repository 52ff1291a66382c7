// Package wait provides the "wait" action, which stays active for a fixed
// number of ticks.
package wait

import (
	"context"
	"fmt"

	"github.com/vk/tickseq/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Input defines the arguments for the wait action.
type Input struct {
	Ticks int `tickseq:"ticks"`
}

// Waiter finishes on its Ticks-th tick. A waiter of zero ticks finishes on
// its first tick, since a node is always visited at least once.
type Waiter struct {
	ticks   int
	elapsed int
}

// New validates the input and builds a Waiter.
func New(env registry.Env, input *Input) (*Waiter, error) {
	if input.Ticks < 0 {
		return nil, fmt.Errorf("wait '%s': ticks must not be negative, got %d", env.Name, input.Ticks)
	}
	return &Waiter{ticks: input.Ticks}, nil
}

// Tick implements registry.Action.
func (w *Waiter) Tick(context.Context) (bool, error) {
	w.elapsed++
	return w.elapsed >= w.ticks, nil
}

// Register registers the action kind with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.Register("wait", &registry.Definition{
		NewInput: func() any { return new(Input) },
		New: func(env registry.Env, input any) (registry.Action, error) {
			return New(env, input.(*Input))
		},
	})
}
