// Package print provides the "print" action, which writes a message once.
package print

import (
	"context"
	"fmt"
	"io"

	"github.com/vk/tickseq/internal/ctxlog"
	"github.com/vk/tickseq/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Input defines the arguments for the print action.
type Input struct {
	Message string `tickseq:"message"`
}

// Printer writes its message on the first tick and finishes.
type Printer struct {
	name    string
	message string
	out     io.Writer
}

// Tick implements registry.Action.
func (p *Printer) Tick(ctx context.Context) (bool, error) {
	ctxlog.FromContext(ctx).Info("Printing message", "action", p.name)
	if _, err := fmt.Fprintln(p.out, p.message); err != nil {
		return false, fmt.Errorf("print '%s': %w", p.name, err)
	}
	return true, nil
}

// Register registers the action kind with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.Register("print", &registry.Definition{
		NewInput: func() any { return new(Input) },
		New: func(env registry.Env, input any) (registry.Action, error) {
			in := input.(*Input)
			return &Printer{name: env.Name, message: in.Message, out: env.Out}, nil
		},
	})
}
