// Package scheduler provides the activation tracker for the sequence graph.
// It owns the ready queue and the active set, and implements completion
// propagation: a node becomes ready exactly when all its parents completed.
package scheduler
