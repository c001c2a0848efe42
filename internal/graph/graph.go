package graph

import (
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Graph is an undirected adjacency-list graph over named nodes.
type Graph struct {
	adjacency *orderedmap.OrderedMap[string, []string]
	edges     int
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{
		adjacency: orderedmap.New[string, []string](),
	}
}

// AddNode registers n with an empty neighbor list. Adding a node that already
// exists is a no-op and keeps its neighbors.
func (g *Graph) AddNode(n string) {
	if _, exists := g.adjacency.Get(n); exists {
		return
	}
	g.adjacency.Set(n, []string{})
}

// AddEdge connects a and b in both directions. The call is ignored when
// either node has not been added yet.
func (g *Graph) AddEdge(a, b string) {
	pairA := g.adjacency.GetPair(a)
	pairB := g.adjacency.GetPair(b)
	if pairA == nil || pairB == nil {
		return
	}

	// A self-loop lands twice on the same pair, same as any parallel edge.
	pairA.Value = append(pairA.Value, b)
	pairB.Value = append(pairB.Value, a)
	g.edges++
}

// Neighbors returns a copy of n's neighbor list in edge insertion order.
// Unknown nodes have no neighbors.
func (g *Graph) Neighbors(n string) []string {
	neighbors, ok := g.adjacency.Get(n)
	if !ok {
		return []string{}
	}
	out := make([]string, len(neighbors))
	copy(out, neighbors)
	return out
}

// Has reports whether n has been added.
func (g *Graph) Has(n string) bool {
	_, ok := g.adjacency.Get(n)
	return ok
}

// Len returns the number of nodes.
func (g *Graph) Len() int {
	return g.adjacency.Len()
}

// EdgeCount returns the number of AddEdge calls that took effect.
func (g *Graph) EdgeCount() int {
	return g.edges
}

// Nodes returns all nodes in insertion order.
func (g *Graph) Nodes() []string {
	nodes := make([]string, 0, g.adjacency.Len())
	for pair := g.adjacency.Oldest(); pair != nil; pair = pair.Next() {
		nodes = append(nodes, pair.Key)
	}
	return nodes
}

// String renders one "node: [a, b]" line per node in insertion order.
func (g *Graph) String() string {
	var sb strings.Builder
	for pair := g.adjacency.Oldest(); pair != nil; pair = pair.Next() {
		sb.WriteString(pair.Key)
		sb.WriteString(": [")
		sb.WriteString(strings.Join(pair.Value, ", "))
		sb.WriteString("]\n")
	}
	return sb.String()
}
