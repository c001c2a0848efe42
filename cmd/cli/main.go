package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/vk/routefinder/internal/app"
	"github.com/vk/routefinder/internal/cli"
	"github.com/vk/routefinder/internal/hcl"
)

// main is the entrypoint for the routefinder application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	// The real main function handles errors and exit codes.
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error handling.
func run(outW, errW io.Writer, args []string) error {
	appConfig, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	// Instantiate the concrete HCL query loader to pass to the app.
	var opts []hcl.Option
	if appConfig.EnvFile != "" {
		opts = append(opts, hcl.WithEnvFile(appConfig.EnvFile))
	}
	queries := hcl.NewLoader(opts...)

	return app.NewApp(outW, errW, appConfig, queries).Run(context.Background())
}
