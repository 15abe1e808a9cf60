// Package cli wires configuration, logging and the appstate tracker for the
// CLI commands.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/bnema/appstate/internal/bootstrap"
	"github.com/bnema/appstate/internal/cli/styles"
	"github.com/bnema/appstate/internal/domain/build"
	"github.com/bnema/appstate/internal/infrastructure/config"
	"github.com/bnema/appstate/internal/logging"
	"github.com/bnema/appstate/pkg/appstate"
)

// App holds CLI dependencies.
type App struct {
	Config        *config.Config
	ConfigManager *config.Manager
	Theme         *styles.Theme
	BuildInfo     build.Info
	Logger        zerolog.Logger

	// Tracker is created on first use; config-only commands never touch D-Bus.
	tracker *appstate.Tracker
	cleanup func()

	ctx context.Context
}

// NewApp loads configuration and sets up logging.
func NewApp() (*App, error) {
	mgr, err := config.NewManager()
	if err != nil {
		return nil, err
	}
	if err := mgr.Load(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return NewAppWithConfig(mgr, mgr.Get()), nil
}

// NewAppWithConfig builds an App around an already loaded configuration.
// mgr may be nil.
func NewAppWithConfig(mgr *config.Manager, cfg *config.Config) *App {
	// The logger accepts everything; the global level filters, so a config
	// reload can lower or raise it.
	zerolog.SetGlobalLevel(logging.ParseLevel(cfg.Logging.Level))
	logger := logging.New(logging.Config{
		Level:      zerolog.TraceLevel,
		Format:     cfg.Logging.Format,
		TimeFormat: "15:04:05",
	})

	return &App{
		Config:        cfg,
		ConfigManager: mgr,
		Theme:         styles.NewTheme(),
		Logger:        logger,
		ctx:           logging.WithContext(context.Background(), logger),
	}
}

// Context returns a context carrying the app logger.
func (a *App) Context() context.Context {
	return a.ctx
}

// Tracker returns the tracker over the configured host sources, building it
// on first call.
func (a *App) Tracker() (*appstate.Tracker, error) {
	if a.tracker != nil {
		return a.tracker, nil
	}
	tracker, cleanup, err := bootstrap.NewTracker(a.ctx, a.Config, a.Logger)
	if err != nil {
		return nil, err
	}
	a.tracker, a.cleanup = tracker, cleanup
	return tracker, nil
}

// SetTracker replaces the tracker, e.g. with one over manual sources.
func (a *App) SetTracker(t *appstate.Tracker) {
	a.tracker = t
}

// Close releases host source connections.
func (a *App) Close() error {
	if a.cleanup != nil {
		a.cleanup()
		a.cleanup = nil
	}
	return nil
}

// ConfigFileExists reports whether the config file is on disk.
func (a *App) ConfigFileExists() (string, bool) {
	path := ""
	if a.ConfigManager != nil {
		path = a.ConfigManager.GetConfigFile()
	}
	if path == "" {
		p, err := config.GetConfigFile()
		if err != nil {
			return "", false
		}
		path = p
	}
	_, err := os.Stat(path)
	return path, err == nil
}
