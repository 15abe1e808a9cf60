// Package bootstrap wires host signal sources into an appstate tracker.
package bootstrap

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/bnema/appstate/internal/infrastructure/config"
	"github.com/bnema/appstate/internal/infrastructure/idle"
	"github.com/bnema/appstate/internal/infrastructure/network"
	"github.com/bnema/appstate/internal/logging"
	"github.com/bnema/appstate/pkg/appstate"
)

// Sources holds the host sources chosen for a tracker.
type Sources struct {
	Visibility   appstate.VisibilitySource
	Connectivity appstate.ConnectivitySource

	closers []func() error
}

// Close releases every D-Bus connection opened for the sources.
func (s *Sources) Close() {
	for _, closeFn := range s.closers {
		_ = closeFn()
	}
	s.closers = nil
}

// NewSources builds the visibility and connectivity sources named in cfg.
// A backend that cannot reach its bus still returns a working source that
// fails open.
func NewSources(ctx context.Context, cfg config.SourcesConfig) (*Sources, error) {
	log := logging.FromContext(ctx)
	s := &Sources{}

	switch cfg.Visibility {
	case config.VisibilityScreenSaver:
		ss := idle.NewScreenSaver(ctx)
		s.closers = append(s.closers, ss.Close)
		if !ss.Supported() {
			log.Info().Msg("screensaver not available, visibility reads visible")
		}
		s.Visibility = ss
	case config.VisibilityNone, "":
	default:
		return nil, fmt.Errorf("unknown visibility source %q", cfg.Visibility)
	}

	switch cfg.Connectivity {
	case config.ConnectivityNetworkManager:
		nm := network.NewNetworkManager(ctx)
		s.closers = append(s.closers, nm.Close)
		if _, supported := nm.OnLine(); !supported {
			log.Info().Msg("NetworkManager not available, connectivity reads online")
		}
		s.Connectivity = nm
	case config.ConnectivityNone, "":
	default:
		s.Close()
		return nil, fmt.Errorf("unknown connectivity source %q", cfg.Connectivity)
	}

	log.Debug().
		Str("visibility", string(cfg.Visibility)).
		Str("connectivity", string(cfg.Connectivity)).
		Msg("host sources ready")

	return s, nil
}

// NewTracker builds a tracker over the sources named in cfg. The returned
// cleanup closes the sources; call it once the tracker is no longer used.
func NewTracker(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*appstate.Tracker, func(), error) {
	sources, err := NewSources(ctx, cfg.Sources)
	if err != nil {
		return nil, nil, fmt.Errorf("build sources: %w", err)
	}

	tracker := appstate.New(sources.Visibility, sources.Connectivity, appstate.WithLogger(logger))
	return tracker, sources.Close, nil
}
