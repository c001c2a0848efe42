package config

import "context"

// Loader is the interface for a format-specific query loader.
type Loader interface {
	// Load reads one or more query files or directories and merges them into
	// a single Model.
	Load(ctx context.Context, paths ...string) (*Model, error)
}
