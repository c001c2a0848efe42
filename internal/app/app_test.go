package app

import (
	"bytes"
	"context"
	"encoding/json"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/routefinder/internal/config"
	"github.com/vk/routefinder/internal/hcl"
	"github.com/vk/routefinder/internal/loader"
	"github.com/vk/routefinder/internal/pathfinder"
	"github.com/vk/routefinder/internal/report"
	"github.com/vk/routefinder/internal/testutil"
)

const cities = `New York,Boston
New York,Philadelphia
Philadelphia,Washington
Boston,Portland
Washington,Richmond
`

// runApp runs a fully configured app and returns its stdout and log output.
func runApp(t *testing.T, cfg Config, queries config.Loader) (string, string, error) {
	t.Helper()

	if cfg.LogLevel == "" {
		cfg.LogLevel = "debug"
	}
	appConfig, err := NewConfig(cfg)
	require.NoError(t, err)

	out := &bytes.Buffer{}
	logs := &testutil.SafeBuffer{}
	err = NewApp(out, logs, appConfig, queries).Run(context.Background())
	return out.String(), logs.String(), err
}

func TestRun_AdHocSearch(t *testing.T) {
	path := testutil.WriteFile(t, "cities.txt", cities)

	out, logs, err := runApp(t, Config{GraphPath: path, From: "New York", To: "Boston"}, nil)
	require.NoError(t, err)

	want := "New York: [Boston, Philadelphia]\n" +
		"Boston: [New York, Portland]\n" +
		"Philadelphia: [New York, Washington]\n" +
		"Washington: [Philadelphia, Richmond]\n" +
		"Portland: [Boston]\n" +
		"Richmond: [Washington]\n" +
		"\n" +
		"BFS (New York to Boston): New York -> Boston\n" +
		"DFS (New York to Boston): New York -> Boston\n"
	assert.Equal(t, want, out)
	assert.Contains(t, logs, "Graph loaded.")
	assert.Contains(t, logs, "nodes=6")
}

func TestRun_NoPathIsNotAnError(t *testing.T) {
	path := testutil.WriteFile(t, "cities.txt", cities+"Reno,Sparks\n")

	out, _, err := runApp(t, Config{
		GraphPath:  path,
		From:       "Richmond",
		To:         "Reno",
		Algorithms: []pathfinder.Algorithm{pathfinder.DepthFirst},
	}, nil)
	require.NoError(t, err)
	assert.Contains(t, out, "DFS (Richmond to Reno): no path found\n")
	assert.NotContains(t, out, "BFS")
}

func TestRun_UnknownNodesAreWarned(t *testing.T) {
	path := testutil.WriteFile(t, "cities.txt", cities)

	out, logs, err := runApp(t, Config{GraphPath: path, From: "Atlantis", To: "Boston"}, nil)
	require.NoError(t, err)
	assert.Contains(t, out, "BFS (Atlantis to Boston): no path found")
	assert.Contains(t, logs, "Start node is not in the graph.")
}

func TestRun_QueryFile(t *testing.T) {
	dir := testutil.WriteFiles(t, map[string]string{
		"data/cities.txt": cities,
		"query.hcl": `
graph = "data/cities.txt"

search "south" {
  from       = "Boston"
  to         = env.GOAL
  algorithms = ["bfs"]
}

search "north" {
  from = "Richmond"
  to   = "Portland"
}
`,
	})
	queries := hcl.NewLoader(hcl.WithEnviron(func() []string { return []string{"GOAL=Richmond"} }))

	out, _, err := runApp(t, Config{
		QueryPath:    filepath.Join(dir, "query.hcl"),
		OutputFormat: report.FormatJSON,
	}, queries)
	require.NoError(t, err)

	var doc report.Document
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	require.Len(t, doc.Results, 3)

	assert.Equal(t, "south", doc.Results[0].Search)
	assert.Equal(t, "bfs", doc.Results[0].Algorithm)
	assert.Equal(t, []string{"Boston", "New York", "Philadelphia", "Washington", "Richmond"}, doc.Results[0].Path)

	assert.Equal(t, "north", doc.Results[1].Search)
	assert.Equal(t, "bfs", doc.Results[1].Algorithm)
	assert.Equal(t, "dfs", doc.Results[2].Algorithm)
	assert.Equal(t, 5, doc.Results[2].Hops)
	assert.Len(t, doc.Graph, 6)
}

func TestRun_GraphFlagOverridesQuery(t *testing.T) {
	dir := testutil.WriteFiles(t, map[string]string{
		"other.txt": "X,Y\n",
		"query.hcl": `
graph = "missing.txt"

search "xy" {
  from = "X"
  to   = "Y"
}
`,
	})

	out, _, err := runApp(t, Config{
		GraphPath: filepath.Join(dir, "other.txt"),
		QueryPath: filepath.Join(dir, "query.hcl"),
		From:      "Y",
		To:        "X",
	}, hcl.NewLoader())
	require.NoError(t, err)

	assert.Contains(t, out, "[xy] BFS (X to Y): X -> Y\n")
	assert.Contains(t, out, "BFS (Y to X): Y -> X\n")
}

func TestRun_Errors(t *testing.T) {
	t.Run("missing_graph_file", func(t *testing.T) {
		_, _, err := runApp(t, Config{GraphPath: filepath.Join(t.TempDir(), "nope.txt"), From: "A", To: "B"}, nil)
		require.ErrorIs(t, err, fs.ErrNotExist)
	})

	t.Run("malformed_graph_file", func(t *testing.T) {
		path := testutil.WriteFile(t, "bad.txt", "A,B\nC\n")
		out, _, err := runApp(t, Config{GraphPath: path, From: "A", To: "B"}, nil)
		require.ErrorIs(t, err, loader.ErrParse)
		assert.Empty(t, out, "nothing is printed when loading fails")
	})

	t.Run("unknown_algorithm_in_query", func(t *testing.T) {
		dir := testutil.WriteFiles(t, map[string]string{
			"g.txt": "A,B\n",
			"q.hcl": "graph = \"g.txt\"\nsearch \"s\" {\n  from = \"A\"\n  to = \"B\"\n  algorithms = [\"astar\"]\n}\n",
		})
		_, _, err := runApp(t, Config{QueryPath: filepath.Join(dir, "q.hcl")}, hcl.NewLoader())
		require.ErrorIs(t, err, pathfinder.ErrUnknownAlgorithm)
		assert.Contains(t, err.Error(), `search "s"`)
	})

	t.Run("query_without_searches", func(t *testing.T) {
		dir := testutil.WriteFiles(t, map[string]string{"q.hcl": "graph = \"g.txt\"\n"})
		_, _, err := runApp(t, Config{QueryPath: filepath.Join(dir, "q.hcl")}, hcl.NewLoader())
		require.ErrorIs(t, err, config.ErrInvalidQuery)
	})

	t.Run("query_without_loader", func(t *testing.T) {
		_, _, err := runApp(t, Config{QueryPath: "q.hcl"}, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no query loader")
	})
}
