// Package sequencer provides a dependency-graph activation engine for
// turn-based or tick-based sequencing of arbitrary payloads.
//
// # Why Sequencer Exists
//
// Callers build a directed acyclic graph of opaque items, where an edge from
// A to B means B cannot begin until A has finished. The sequencer tracks
// which items are eligible to start, which are currently running, and
// propagates completion so dependents become eligible in turn. It never runs
// anything itself: executing an item is the caller's job.
//
// # Architecture: The Facade Pattern
//
// Sequencer is a thin facade over two collaborating components:
//
//	┌─────────────────────────────────────┐
//	│            Sequencer                │
//	│  (insertion API + drive API)        │
//	└──────────┬────────────┬─────────────┘
//	           │            │
//	           ▼            ▼
//	  ┌────────────┐  ┌────────────┐
//	  │  Topology  │  │ Scheduler  │
//	  │   Store    │  │ (queue +   │
//	  │ (nodes)    │  │  active)   │
//	  └────────────┘  └────────────┘
//
// **Topology Store** (topologystore.Store) owns node identity, payloads,
// adjacency and per-node state. **Scheduler** (scheduler.Scheduler) owns the
// ready queue and the active set, and implements completion propagation.
//
// # Usage Pattern
//
// A caller's tick loop drains, then processes:
//
//	seq := sequencer.New[Action]()
//	seq.InsertSequence([]Action{Wait(5), Print("Done waiting")})
//	for seq.IsActive() {
//	    // Activate nodes that became ready.
//	    seq.DrainQueue(func(key sequencer.Key, a Action) {})
//	    // Process active nodes; returning true completes the node.
//	    seq.ForEachActive(func(key sequencer.Key, a *Action) bool { return a.Tick() })
//	}
//
// Children of a node completed during ForEachActive are only handed out by
// the next DrainQueue. That two-phase separation is a hard protocol rule.
//
// # Thread-Safety
//
// None. A Sequencer is single-threaded and synchronous, and visitor
// callbacks must not call DrainQueue or ForEachActive re-entrantly (doing so
// panics). Insertion from inside a visitor is allowed; new roots are queued
// for the next drain.
package sequencer
