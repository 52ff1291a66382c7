// Package count provides the "count" action: it emits one number of a
// half-open range per tick.
package count

import (
	"context"
	"fmt"
	"io"

	"github.com/vk/tickseq/internal/ctxlog"
	"github.com/vk/tickseq/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Input defines the arguments for the count action.
type Input struct {
	From int `tickseq:"from"`
	To   int `tickseq:"to"`
}

// Counter writes `<name>: <n>` for every n in [From, To), one per tick, and
// finishes on the tick after the last number.
type Counter struct {
	name string
	out  io.Writer
	next int
	to   int
}

// New validates the input and builds a Counter.
func New(env registry.Env, input *Input) (*Counter, error) {
	if input.To < input.From {
		return nil, fmt.Errorf("count '%s': 'to' (%d) must not be lower than 'from' (%d)", env.Name, input.To, input.From)
	}
	return &Counter{name: env.Name, out: env.Out, next: input.From, to: input.To}, nil
}

// Tick implements registry.Action.
func (c *Counter) Tick(ctx context.Context) (bool, error) {
	if c.next >= c.to {
		ctxlog.FromContext(ctx).Debug("Counter exhausted.", "action", c.name)
		if _, err := fmt.Fprintf(c.out, "%s: done\n", c.name); err != nil {
			return false, fmt.Errorf("count '%s': %w", c.name, err)
		}
		return true, nil
	}
	if _, err := fmt.Fprintf(c.out, "%s: %d\n", c.name, c.next); err != nil {
		return false, fmt.Errorf("count '%s': %w", c.name, err)
	}
	c.next++
	return false, nil
}

// Register registers the action kind with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.Register("count", &registry.Definition{
		NewInput: func() any { return new(Input) },
		New: func(env registry.Env, input any) (registry.Action, error) {
			return New(env, input.(*Input))
		},
	})
}
