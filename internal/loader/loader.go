package loader

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/vk/routefinder/internal/ctxlog"
	"github.com/vk/routefinder/internal/graph"
)

const fieldSeparator = ","

// Load reads the edge list at path into a new graph.
func Load(ctx context.Context, path string) (*graph.Graph, error) {
	ctx = ctxlog.With(ctx, "path", path)
	ctxlog.FromContext(ctx).Debug("Opening edge list.")

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open edge list: %w", err)
	}
	defer f.Close()

	g, err := Read(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("failed to load edge list %s: %w", path, err)
	}
	return g, nil
}

// Read parses edges from r. For every line it adds both nodes and then the
// edge between them, in input order.
func Read(ctx context.Context, r io.Reader) (*graph.Graph, error) {
	logger := ctxlog.FromContext(ctx)
	g := graph.New()

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		a, b, err := parseLine(lineNo, scanner.Text())
		if err != nil {
			return nil, err
		}
		g.AddNode(a)
		g.AddNode(b)
		g.AddEdge(a, b)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read edge list after line %d: %w", lineNo, err)
	}

	logger.Debug("Edge list loaded.", "lines", lineNo, "nodes", g.Len(), "edges", g.EdgeCount())
	return g, nil
}

// parseLine splits one trimmed line into its two endpoints.
func parseLine(lineNo int, raw string) (string, string, error) {
	line := strings.TrimSpace(raw)
	fields := strings.Split(line, fieldSeparator)
	if len(fields) != 2 {
		return "", "", &ParseError{
			Line: lineNo,
			Text: line,
			Msg:  fmt.Sprintf("expected 2 comma separated fields, got %d", len(fields)),
		}
	}
	return fields[0], fields[1], nil
}
