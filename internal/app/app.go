package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/vk/tickseq/internal/config"
	"github.com/vk/tickseq/internal/ctxlog"
	"github.com/vk/tickseq/internal/registry"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW      io.Writer
	logger    *slog.Logger
	runID     string
	config    *Config
	registry  *registry.Registry
	model     *config.Model
	converter config.Converter
	metrics   *metrics

	httpServer *http.Server
}

// NewApp is the constructor for the main application. It loads and checks
// the script, so a returned App is ready to Run. Each App has its own
// logger, registry, metrics and run id.
func NewApp(outW io.Writer, appConfig *Config, loader config.Loader, modules ...registry.Module) (*App, error) {
	runID := uuid.NewString()
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, outW)
	ctx := ctxlog.WithRunID(ctxlog.WithLogger(context.Background(), logger), runID)
	ctxlog.FromContext(ctx).Debug("Logger configured successfully.")

	model, converter, err := loader.Load(ctx, appConfig.ScriptPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load script: %w", err)
	}
	if _, _, err := model.Ordered(); err != nil {
		return nil, fmt.Errorf("invalid script: %w", err)
	}
	ctxlog.FromContext(ctx).Debug("Script loaded and translated into unified model.", "actions", len(model.Actions))

	reg := registry.New()
	if len(modules) == 0 {
		modules = coreModules
	}
	for _, mod := range modules {
		mod.Register(reg)
	}
	if err := reg.Validate(ctx); err != nil {
		// A broken module is a programming error, not a script error.
		panic(err)
	}
	ctxlog.FromContext(ctx).Debug("All action modules registered.", "kinds", reg.Kinds())

	return &App{
		outW:      outW,
		logger:    logger,
		runID:     runID,
		config:    appConfig,
		registry:  reg,
		model:     model,
		converter: converter,
		metrics:   newMetrics(),
	}, nil
}

// RunID returns the id attached to every log line of this App.
func (a *App) RunID() string {
	return a.runID
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}
