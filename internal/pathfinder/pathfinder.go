package pathfinder

import "strings"

// Graph is the read-only view of a graph that the searches need.
type Graph interface {
	Neighbors(node string) []string
}

// Path is an ordered sequence of nodes where consecutive nodes are adjacent.
type Path []string

// Hops returns the number of edges in the path.
func (p Path) Hops() int {
	if len(p) == 0 {
		return 0
	}
	return len(p) - 1
}

// String joins the nodes with arrows, e.g. "A -> B -> C".
func (p Path) String() string {
	return strings.Join(p, " -> ")
}

// BFS searches level by level. The returned path has the fewest edges among
// all paths from start to goal.
func BFS(g Graph, start, goal string) (Path, bool) {
	return search(g, &queue{}, start, goal)
}

// DFS follows the most recently discovered neighbor first. The returned path
// is not necessarily the shortest.
func DFS(g Graph, start, goal string) (Path, bool) {
	return search(g, &stack{}, start, goal)
}

func search(g Graph, f frontier, start, goal string) (Path, bool) {
	if start == goal {
		return nil, false
	}

	visited := make(map[string]struct{})
	f.push(Path{start})

	for f.size() > 0 {
		path := f.pop()
		node := path[len(path)-1]

		if _, seen := visited[node]; seen {
			continue
		}

		for _, neighbor := range g.Neighbors(node) {
			next := extend(path, neighbor)
			if neighbor == goal {
				return next, true
			}
			if _, seen := visited[neighbor]; !seen {
				f.push(next)
			}
		}

		visited[node] = struct{}{}
	}

	return nil, false
}

// extend copies path so sibling extensions never share a backing array.
func extend(path Path, node string) Path {
	next := make(Path, len(path), len(path)+1)
	copy(next, path)
	return append(next, node)
}

// frontier holds the partial paths waiting to be expanded.
type frontier interface {
	push(Path)
	pop() Path
	size() int
}

type queue struct {
	items []Path
}

func (q *queue) push(p Path) { q.items = append(q.items, p) }

func (q *queue) pop() Path {
	p := q.items[0]
	q.items[0] = nil
	q.items = q.items[1:]
	return p
}

func (q *queue) size() int { return len(q.items) }

type stack struct {
	items []Path
}

func (s *stack) push(p Path) { s.items = append(s.items, p) }

func (s *stack) pop() Path {
	last := len(s.items) - 1
	p := s.items[last]
	s.items[last] = nil
	s.items = s.items[:last]
	return p
}

func (s *stack) size() int { return len(s.items) }
