// Package report renders a loaded graph and the outcome of path searches
// as text, JSON or YAML.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vk/routefinder/internal/graph"
	"github.com/vk/routefinder/internal/pathfinder"
)

// ErrUnknownFormat is returned by ParseFormat for unsupported names.
var ErrUnknownFormat = errors.New("unknown output format")

// Format selects how Write renders its document.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat accepts "text", "json", "yaml" or "yml" in any case.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "text", "":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Result is the outcome of one search.
type Result struct {
	Search    string   `json:"search,omitempty" yaml:"search,omitempty"`
	Algorithm string   `json:"algorithm" yaml:"algorithm"`
	From      string   `json:"from" yaml:"from"`
	To        string   `json:"to" yaml:"to"`
	Found     bool     `json:"found" yaml:"found"`
	Hops      int      `json:"hops" yaml:"hops"` // -1 if no path found
	Path      []string `json:"path,omitempty" yaml:"path,omitempty"`
}

// NewResult records a search outcome. search may be empty for ad-hoc runs.
func NewResult(search string, alg pathfinder.Algorithm, from, to string, path pathfinder.Path, found bool) Result {
	r := Result{
		Search:    search,
		Algorithm: alg.String(),
		From:      from,
		To:        to,
		Found:     found,
		Hops:      -1,
	}
	if found {
		r.Hops = path.Hops()
		r.Path = []string(path)
	}
	return r
}

// Line renders the result on a single line, e.g.
// "BFS (New York to Boston): New York -> Boston".
func (r Result) Line() string {
	outcome := "no path found"
	if r.Found {
		outcome = pathfinder.Path(r.Path).String()
	}
	line := fmt.Sprintf("%s (%s to %s): %s", strings.ToUpper(r.Algorithm), r.From, r.To, outcome)
	if r.Search != "" {
		line = "[" + r.Search + "] " + line
	}
	return line
}

// Node is one adjacency entry of a serialized graph.
type Node struct {
	Name      string   `json:"name" yaml:"name"`
	Neighbors []string `json:"neighbors" yaml:"neighbors"`
}

// Document is what the json and yaml formats serialize.
type Document struct {
	Graph   []Node   `json:"graph" yaml:"graph"`
	Results []Result `json:"results" yaml:"results"`
}

// NewDocument snapshots g in insertion order alongside results.
func NewDocument(g *graph.Graph, results []Result) Document {
	doc := Document{
		Graph:   make([]Node, 0, g.Len()),
		Results: results,
	}
	if doc.Results == nil {
		doc.Results = []Result{}
	}
	for _, name := range g.Nodes() {
		doc.Graph = append(doc.Graph, Node{Name: name, Neighbors: g.Neighbors(name)})
	}
	return doc
}

// Write renders g followed by results. The text format prints the graph's
// display string, a blank line and one line per result.
func Write(w io.Writer, format Format, g *graph.Graph, results []Result) error {
	switch format {
	case FormatText:
		return writeText(w, g, results)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(NewDocument(g, results)); err != nil {
			return fmt.Errorf("failed to encode json report: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(NewDocument(g, results)); err != nil {
			return fmt.Errorf("failed to encode yaml report: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("failed to flush yaml report: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, string(format))
	}
}

func writeText(w io.Writer, g *graph.Graph, results []Result) error {
	var sb strings.Builder
	sb.WriteString(g.String())
	sb.WriteString("\n")
	for _, r := range results {
		sb.WriteString(r.Line())
		sb.WriteString("\n")
	}
	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("failed to write text report: %w", err)
	}
	return nil
}
