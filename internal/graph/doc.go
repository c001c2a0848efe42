// Package graph provides the undirected city graph that path searches run on.
//
// # Storage
//
// A Graph keeps one neighbor list per node in an insertion-ordered map, so
// iterating nodes (and printing the graph) is deterministic and follows the
// order in which nodes were first seen:
//
//	┌──────────┬──────────────────────┐
//	│ node     │ neighbors            │
//	├──────────┼──────────────────────┤
//	│ New York │ [Boston, Albany]     │
//	│ Boston   │ [New York]           │
//	│ Albany   │ [New York]           │
//	└──────────┴──────────────────────┘
//
// Neighbor lists preserve edge insertion order. Edges are not deduplicated:
// adding the same connection twice records it twice on both sides.
//
// # Lifecycle
//
//  1. **Created** empty by the loader.
//  2. **Populated** with AddNode/AddEdge while the input is read.
//  3. **Read-only** afterwards. Searches only call Neighbors.
//
// # Thread-Safety
//
// A Graph has no internal locking. Any number of goroutines may read a graph
// concurrently once it is fully built, but writes must not overlap with
// anything else.
package graph
