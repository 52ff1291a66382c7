package config

import (
	"context"

	"github.com/hashicorp/hcl/v2"
)

// Loader is the interface for a format-specific script loader.
type Loader interface {
	// Load reads every script found under paths, translates it into the
	// format-agnostic model, and returns a matching Converter.
	Load(ctx context.Context, paths ...string) (*Model, Converter, error)
}

// Converter binds raw action arguments to the Go input struct of an action.
type Converter interface {
	// DecodeArguments evaluates args and stores them in the fields of
	// inputStruct, which must be a non-nil pointer to a struct. Fields are
	// matched by their `tickseq` tag; an argument without a matching field,
	// or a required field without an argument, is an error.
	DecodeArguments(ctx context.Context, inputStruct any, args map[string]hcl.Expression) error
}
