package pathfinder

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownAlgorithm is returned for algorithm names other than "bfs" and "dfs".
var ErrUnknownAlgorithm = errors.New("unknown search algorithm")

// Algorithm names a search strategy.
type Algorithm string

const (
	BreadthFirst Algorithm = "bfs"
	DepthFirst   Algorithm = "dfs"
)

// Algorithms lists every supported algorithm in the order they run by default.
var Algorithms = []Algorithm{BreadthFirst, DepthFirst}

func (a Algorithm) String() string {
	return string(a)
}

// ParseAlgorithm accepts "bfs" or "dfs" in any case, surrounding blanks ignored.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch a := Algorithm(strings.ToLower(strings.TrimSpace(s))); a {
	case BreadthFirst, DepthFirst:
		return a, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
	}
}

// ParseAlgorithms parses a comma separated list such as "bfs,dfs". Duplicates
// are kept so a caller may ask for the same search twice.
func ParseAlgorithms(list string) ([]Algorithm, error) {
	var algs []Algorithm
	for _, part := range strings.Split(list, ",") {
		alg, err := ParseAlgorithm(part)
		if err != nil {
			return nil, err
		}
		algs = append(algs, alg)
	}
	return algs, nil
}

// Find runs the named algorithm. Not finding a path is reported through the
// boolean, never as an error.
func Find(g Graph, alg Algorithm, start, goal string) (Path, bool, error) {
	switch alg {
	case BreadthFirst:
		path, ok := BFS(g, start, goal)
		return path, ok, nil
	case DepthFirst:
		path, ok := DFS(g, start, goal)
		return path, ok, nil
	default:
		return nil, false, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, string(alg))
	}
}
