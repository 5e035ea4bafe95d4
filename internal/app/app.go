package app

import (
	"context"
	"io"
	"log/slog"

	"github.com/vk/nclbridge/internal/module"
)

// ModuleLoader abstracts the module data file parser so the app stays
// agnostic to the on-disk format and tests can substitute their own.
type ModuleLoader interface {
	LoadFile(ctx context.Context, path string) (*module.Module, error)
}

// App encapsulates the tool's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
	loader ModuleLoader
}

// NewApp is the constructor for the application. It returns a fully
// initialized App instance with its own isolated logger.
func NewApp(outW io.Writer, cfg *Config, loader ModuleLoader) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, outW)
	logger.Debug("Logger configured successfully.")

	return &App{
		outW:   outW,
		logger: logger,
		config: cfg,
		loader: loader,
	}
}
