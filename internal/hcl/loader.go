package hcl

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/vk/routefinder/internal/config"
	"github.com/vk/routefinder/internal/ctxlog"
	"github.com/vk/routefinder/internal/fsutil"
)

const queryExtension = ".hcl"

// Loader is the HCL implementation of config.Loader.
type Loader struct {
	envFile string
	environ func() []string
}

// Option configures a Loader.
type Option func(*Loader)

// WithEnvFile overlays the variables of a dotenv file on top of the process
// environment. The process environment itself is left untouched.
func WithEnvFile(path string) Option {
	return func(l *Loader) { l.envFile = path }
}

// WithEnviron replaces os.Environ as the source of the `env` object.
func WithEnviron(environ func() []string) Option {
	return func(l *Loader) { l.environ = environ }
}

// NewLoader creates a new HCL query loader.
func NewLoader(opts ...Option) *Loader {
	l := &Loader{environ: os.Environ}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

var _ config.Loader = (*Loader)(nil)

// Load parses every query file found in paths (files or directories) and
// merges their searches in file order. At most one file may set `graph`.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)

	evalCtx, err := newEvalContext(l.environ(), l.envFile)
	if err != nil {
		return nil, err
	}

	model := &config.Model{}
	graphSource := ""
	parser := hclparse.NewParser()

	for _, root := range paths {
		files, err := fsutil.FindFilesByExtension(root, queryExtension)
		if err != nil {
			return nil, fmt.Errorf("failed to find query files in %s: %w", root, err)
		}
		if len(files) == 0 {
			logger.Warn("No query files found in path.", "path", root)
			continue
		}

		for _, file := range files {
			q, err := decodeFile(parser, file, evalCtx)
			if err != nil {
				return nil, err
			}

			if q.Graph != "" {
				if graphSource != "" {
					return nil, fmt.Errorf("%w: graph is set in both %s and %s", config.ErrInvalidQuery, graphSource, file)
				}
				graphSource = file
				model.GraphPath = resolvePath(file, q.Graph)
			}
			for _, s := range q.Searches {
				model.Searches = append(model.Searches, &config.Search{
					Name:       s.Name,
					From:       s.From,
					To:         s.To,
					Algorithms: s.Algorithms,
				})
			}
			logger.Debug("Query file loaded.", "file", file, "searches", len(q.Searches))
		}
	}

	return model, nil
}

// decodeFile parses and decodes a single query file.
func decodeFile(parser *hclparse.Parser, path string, evalCtx *hcl.EvalContext) (*queryFile, error) {
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse query file %s: %w", path, diags)
	}

	var q queryFile
	diags = gohcl.DecodeBody(file.Body, evalCtx, &q)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode query file %s: %w", path, diags)
	}
	return &q, nil
}

// resolvePath makes a graph path relative to the query file that names it.
func resolvePath(queryFile, graphPath string) string {
	if filepath.IsAbs(graphPath) {
		return graphPath
	}
	return filepath.Join(filepath.Dir(queryFile), graphPath)
}
