package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/routefinder/internal/app"
	"github.com/vk/routefinder/internal/pathfinder"
	"github.com/vk/routefinder/internal/report"
)

// ExitCodeUsage is returned for invalid flags or flag values.
const ExitCodeUsage = 2

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func usageError(format string, args ...any) *ExitError {
	return &ExitError{Code: ExitCodeUsage, Message: fmt.Sprintf(format, args...)}
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("routefinder", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
routefinder - find a route between two cities of an undirected graph.

Usage:
  routefinder [options] [GRAPH_PATH]

Arguments:
  GRAPH_PATH
    Text file with one "CITY_A,CITY_B" connection per line.

Options:
`)
		flagSet.PrintDefaults()
	}

	graphFlag := flagSet.String("graph", "", "Path to the edge list file.")
	gFlag := flagSet.String("g", "", "Path to the edge list file (shorthand).")
	queryFlag := flagSet.String("query", "", "Path to an HCL query file or a directory of them.")
	qFlag := flagSet.String("q", "", "Path to an HCL query file or directory (shorthand).")
	envFileFlag := flagSet.String("env-file", "", "Dotenv file whose variables are visible to query files as env.*.")
	fromFlag := flagSet.String("from", "", "Start city.")
	toFlag := flagSet.String("to", "", "Goal city.")
	algorithmFlag := flagSet.String("algorithm", "bfs,dfs", "Comma separated search algorithms. Options: 'bfs', 'dfs'.")
	outputFlag := flagSet.String("output", "text", "Result format. Options: 'text', 'json' or 'yaml'.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, usageError("%s", err.Error())
	}
	slog.Debug("Arguments parsed successfully.")

	graphPath := firstNonEmpty(*graphFlag, *gFlag)
	if graphPath == "" && flagSet.NArg() > 0 {
		graphPath = flagSet.Arg(0)
	}
	if flagSet.NArg() > 1 {
		return nil, false, usageError("unexpected arguments: %s", strings.Join(flagSet.Args()[1:], " "))
	}
	queryPath := firstNonEmpty(*queryFlag, *qFlag)
	slog.Debug("Input paths determined.", "graph", graphPath, "query", queryPath)

	if graphPath == "" && queryPath == "" {
		slog.Debug("No graph or query path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	algorithms, err := pathfinder.ParseAlgorithms(*algorithmFlag)
	if err != nil {
		return nil, false, usageError("invalid algorithm: %v", err)
	}

	format, err := report.ParseFormat(*outputFlag)
	if err != nil {
		return nil, false, usageError("invalid output: must be 'text', 'json' or 'yaml'")
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, usageError("invalid log-format: must be 'text' or 'json'")
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, usageError("invalid log-level: must be 'debug', 'info', 'warn', or 'error'")
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		GraphPath:    graphPath,
		QueryPath:    queryPath,
		EnvFile:      *envFileFlag,
		From:         *fromFlag,
		To:           *toFlag,
		Algorithms:   algorithms,
		OutputFormat: format,
		LogFormat:    logFormat,
		LogLevel:     logLevel,
	})
	if err != nil {
		return nil, false, usageError("%s", err.Error())
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
