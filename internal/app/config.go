package app

import (
	"errors"

	"github.com/vk/routefinder/internal/pathfinder"
	"github.com/vk/routefinder/internal/report"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	GraphPath string // edge list; overrides the query file's graph
	QueryPath string // hcl file or directory
	EnvFile   string // dotenv overlay for query files

	// Ad-hoc search. Both or neither must be set.
	From string
	To   string

	Algorithms   []pathfinder.Algorithm // default for searches that name none
	OutputFormat report.Format

	LogFormat string
	LogLevel  string
}

// NewConfig validates cfg and fills in defaults.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.GraphPath == "" && cfg.QueryPath == "" {
		return nil, errors.New("either a graph file or a query file is required")
	}
	if (cfg.From == "") != (cfg.To == "") {
		return nil, errors.New("from and to must be given together")
	}
	if cfg.QueryPath == "" && cfg.From == "" {
		return nil, errors.New("from and to are required when no query file is given")
	}

	if len(cfg.Algorithms) == 0 {
		cfg.Algorithms = append([]pathfinder.Algorithm(nil), pathfinder.Algorithms...)
	}
	if cfg.OutputFormat == "" {
		cfg.OutputFormat = report.FormatText
	}

	return &cfg, nil
}
