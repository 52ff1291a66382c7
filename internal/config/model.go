package config

import (
	"github.com/hashicorp/hcl/v2"
)

// Model is the unified, format-agnostic representation of a tick script.
type Model struct {
	// Actions in declaration order.
	Actions []*Action
}

// Action is the format-agnostic representation of an `action` block.
type Action struct {
	Kind      string
	Name      string
	Arguments map[string]hcl.Expression
	DependsOn []string
	// Source is the position of the block, for error messages.
	Source string
}

// ID renders the action as `kind.name`.
func (a *Action) ID() string {
	return a.Kind + "." + a.Name
}
