package config

import (
	"errors"
	"fmt"
)

// ErrInvalidQuery is wrapped by every error returned from Model.Validate.
var ErrInvalidQuery = errors.New("invalid query")

// Model is the unified representation of all loaded query files.
type Model struct {
	// GraphPath is the edge list to search. Empty when no query file set it.
	GraphPath string
	Searches  []*Search
}

// Search is one start/goal pair, named when it comes from a query file.
type Search struct {
	Name string
	From string
	To   string
	// Algorithms as written by the user, e.g. ["bfs", "dfs"]. Empty means
	// the caller's default.
	Algorithms []string
}

// Validate checks that the model can be run.
func (m *Model) Validate() error {
	if m.GraphPath == "" {
		return fmt.Errorf("%w: no graph file configured", ErrInvalidQuery)
	}
	if len(m.Searches) == 0 {
		return fmt.Errorf("%w: no searches configured", ErrInvalidQuery)
	}

	seen := make(map[string]struct{}, len(m.Searches))
	for i, s := range m.Searches {
		// Ad-hoc searches from the command line have no name.
		if s.Name != "" {
			if _, dup := seen[s.Name]; dup {
				return fmt.Errorf("%w: duplicate search %q", ErrInvalidQuery, s.Name)
			}
			seen[s.Name] = struct{}{}
		}

		if s.From == "" {
			return fmt.Errorf("%w: searches[%d]: 'from' must not be empty", ErrInvalidQuery, i)
		}
		if s.To == "" {
			return fmt.Errorf("%w: searches[%d]: 'to' must not be empty", ErrInvalidQuery, i)
		}
	}
	return nil
}
