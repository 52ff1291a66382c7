// Package registry provides the central "glue" for the action system.
//
// The Registry stores the mapping between the action kinds used in scripts
// (e.g. "count") and the compiled Go code that implements them: a
// constructor for the action's input struct and a factory that turns a
// decoded input into a running Action.
//
// During application startup, the registry is populated by every Module and
// then validated, so a script can only fail on its own content, never on a
// mismatch inside the binary.
package registry
