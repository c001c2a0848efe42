// Package pathfinder finds a path between two nodes of an undirected graph
// using breadth-first or depth-first search.
//
// Both searches share one loop and differ only in their frontier: a FIFO
// queue for BFS and a LIFO stack for DFS. The frontier holds whole partial
// paths rather than bare nodes, so a found path needs no parent-pointer
// reconstruction:
//
//	Idle ──▶ Expanding ──▶ Found
//	             │
//	             └───────▶ Exhausted
//
// A node is marked visited after all of its neighbors were examined, and a
// partial path whose last node is already visited is dropped when it leaves
// the frontier. The goal is recognized only as a freshly reached neighbor, in
// which case the extended path is returned at once. As a consequence a search
// from a node to itself reports no path.
//
// Searches keep all their state on the stack of the call, so concurrent
// searches over the same read-only graph are safe.
package pathfinder
