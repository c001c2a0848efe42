package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/vk/routefinder/internal/config"
	"github.com/vk/routefinder/internal/ctxlog"
	"github.com/vk/routefinder/internal/graph"
	"github.com/vk/routefinder/internal/loader"
	"github.com/vk/routefinder/internal/pathfinder"
	"github.com/vk/routefinder/internal/report"
)

// Run loads the graph, runs every configured search and writes the report.
// Searches that find no path are reported, not treated as failures.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	model, err := a.loadModel(ctx)
	if err != nil {
		return err
	}
	if err := model.Validate(); err != nil {
		return err
	}
	a.logger.Debug("Query model ready.", "graph", model.GraphPath, "searches", len(model.Searches))

	g, err := loader.Load(ctx, model.GraphPath)
	if err != nil {
		return err
	}
	a.logger.Info("Graph loaded.", "nodes", g.Len(), "edges", g.EdgeCount())

	results, err := a.search(ctx, g, model.Searches)
	if err != nil {
		return err
	}

	if err := report.Write(a.outW, a.config.OutputFormat, g, results); err != nil {
		return err
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

// loadModel merges the query files (if any) with the command-line search.
func (a *App) loadModel(ctx context.Context) (*config.Model, error) {
	model := &config.Model{}

	if a.config.QueryPath != "" {
		if a.queries == nil {
			return nil, errors.New("a query path is configured but no query loader was provided")
		}
		loaded, err := a.queries.Load(ctx, a.config.QueryPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load query: %w", err)
		}
		model = loaded
	}

	if a.config.GraphPath != "" {
		if model.GraphPath != "" {
			a.logger.Debug("Graph path from the command line overrides the query file.",
				"query_graph", model.GraphPath, "graph", a.config.GraphPath)
		}
		model.GraphPath = a.config.GraphPath
	}

	if a.config.From != "" {
		model.Searches = append(model.Searches, &config.Search{
			From: a.config.From,
			To:   a.config.To,
		})
	}

	return model, nil
}

// search runs each search with each of its algorithms, in order.
func (a *App) search(ctx context.Context, g *graph.Graph, searches []*config.Search) ([]report.Result, error) {
	logger := ctxlog.FromContext(ctx)

	var results []report.Result
	for _, s := range searches {
		algs, err := a.algorithmsFor(s)
		if err != nil {
			return nil, err
		}

		if !g.Has(s.From) {
			logger.Warn("Start node is not in the graph.", "search", s.Name, "node", s.From)
		}
		if !g.Has(s.To) {
			logger.Warn("Goal node is not in the graph.", "search", s.Name, "node", s.To)
		}

		for _, alg := range algs {
			path, found, err := pathfinder.Find(g, alg, s.From, s.To)
			if err != nil {
				return nil, err
			}
			r := report.NewResult(s.Name, alg, s.From, s.To, path, found)
			logger.Info("Search finished.",
				"search", s.Name, "algorithm", r.Algorithm,
				"from", s.From, "to", s.To, "found", r.Found, "hops", r.Hops)
			results = append(results, r)
		}
	}
	return results, nil
}

func (a *App) algorithmsFor(s *config.Search) ([]pathfinder.Algorithm, error) {
	if len(s.Algorithms) == 0 {
		return a.config.Algorithms, nil
	}

	algs := make([]pathfinder.Algorithm, 0, len(s.Algorithms))
	for _, name := range s.Algorithms {
		alg, err := pathfinder.ParseAlgorithm(name)
		if err != nil {
			return nil, fmt.Errorf("search %q: %w", s.Name, err)
		}
		algs = append(algs, alg)
	}
	return algs, nil
}
