package registry

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"
)

// Action is the payload of one node of a run. The app calls Tick once per
// tick while the node is active.
type Action interface {
	// Tick advances the action by one step and reports whether it has
	// finished. An error aborts the run.
	Tick(ctx context.Context) (done bool, err error)
}

// Env is what a factory receives besides the decoded input.
type Env struct {
	// Name of the action in the script.
	Name string
	// Out receives user-facing output.
	Out io.Writer
}

// Definition is the compiled Go part of one action kind.
type Definition struct {
	// NewInput returns a pointer to a fresh input struct, pre-filled with
	// defaults for optional arguments.
	NewInput func() any
	// New builds the action from the decoded input.
	New func(env Env, input any) (Action, error)
}

// Module is the interface that all action modules must implement to be registered.
type Module interface {
	Register(r *Registry)
}

// Registry holds the definitions of every registered action kind.
type Registry struct {
	definitions map[string]*Definition
}

// New creates and initializes a new Registry instance.
func New() *Registry {
	return &Registry{
		definitions: make(map[string]*Definition),
	}
}

// Register adds the definition of an action kind.
func (r *Registry) Register(kind string, def *Definition) {
	if _, exists := r.definitions[kind]; exists {
		panic(fmt.Sprintf("action kind '%s' already registered", kind))
	}
	slog.Debug("Registering action kind.", "kind", kind)
	r.definitions[kind] = def
}

// Lookup returns the definition of kind.
func (r *Registry) Lookup(kind string) (*Definition, bool) {
	def, ok := r.definitions[kind]
	return def, ok
}

// Kinds returns every registered kind in alphabetical order.
func (r *Registry) Kinds() []string {
	kinds := make([]string, 0, len(r.definitions))
	for k := range r.definitions {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}
