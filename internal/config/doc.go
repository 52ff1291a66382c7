// Package config defines the format-agnostic model of a tick script, along
// with the core interfaces (Loader, Converter) for loading it and binding
// action arguments to Go types.
//
// The `config.Model` is the single source of truth for the `app` package.
// Concrete implementations of the interfaces, such as for HCL, are provided
// in separate packages.
package config
