package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/autoprobe/autoprobe/internal/config"
	"github.com/autoprobe/autoprobe/internal/ctxlog"
	"github.com/autoprobe/autoprobe/internal/registry"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	registry *registry.Registry
	model    *config.Model
	config   *Config
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger and registry. A
// suite that cannot be loaded is a fatal startup error and panics; the
// entrypoint recovers it into a clean exit.
func NewApp(outW io.Writer, cfg *Config, loader config.Loader, modules ...registry.Module) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	model, err := loader.Load(ctx, cfg.SuitePath)
	if err != nil {
		panic(fmt.Errorf("failed to load suite: %w", err))
	}
	logger.Debug("Suite loaded into unified model.", "checks", len(model.Checks))

	reg := registry.New()
	if len(modules) == 0 {
		modules = coreModules
	}
	for _, mod := range modules {
		mod.Register(reg)
	}
	logger.Debug("All check modules registered.", "count", len(modules))

	return &App{
		outW:     outW,
		logger:   logger,
		registry: reg,
		model:    model,
		config:   cfg,
	}
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

// Model returns the loaded suite model. This is primarily for testing.
func (a *App) Model() *config.Model {
	return a.model
}
