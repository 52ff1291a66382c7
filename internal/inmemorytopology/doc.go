// Package inmemorytopology provides an arena-backed, in-memory implementation
// of the topologystore.Store interface. Keys stay valid for as long as the
// node lives and are never reused for a different node.
package inmemorytopology
