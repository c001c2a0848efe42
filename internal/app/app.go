package app

import (
	"io"
	"log/slog"

	"github.com/vk/routefinder/internal/config"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW    io.Writer
	logger  *slog.Logger
	config  *Config
	queries config.Loader
}

// NewApp is the constructor for the main application. Results are written to
// outW and logs to logW. queries may be nil when cfg has no QueryPath.
func NewApp(outW, logW io.Writer, cfg *Config, queries config.Loader) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	return &App{
		outW:    outW,
		logger:  logger,
		config:  cfg,
		queries: queries,
	}
}
