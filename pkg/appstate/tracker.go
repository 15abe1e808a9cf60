// Package appstate exposes host visibility and network connectivity as one
// "app activity" signal, with change listeners and an interval that only runs
// while the app is in a chosen state.
//
// Host signals are injected through VisibilitySource and ConnectivitySource.
// Every read is live: nothing is cached between calls.
package appstate

import (
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
)

// Tracker derives state from its sources and hands out listeners and gated
// intervals. A Tracker is safe for concurrent use.
type Tracker struct {
	visibility   VisibilitySource
	connectivity ConnectivitySource
	clock        clockwork.Clock
	logger       zerolog.Logger
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithClock sets the clock used by state-aware intervals.
func WithClock(clock clockwork.Clock) Option {
	return func(t *Tracker) {
		if clock != nil {
			t.clock = clock
		}
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger zerolog.Logger) Option {
	return func(t *Tracker) {
		t.logger = logger.With().Str("component", "appstate").Logger()
	}
}

// New creates a Tracker. A nil visibility source reads as always visible; a nil
// connectivity source reads as always online.
func New(visibility VisibilitySource, connectivity ConnectivitySource, opts ...Option) *Tracker {
	t := &Tracker{
		visibility:   visibility,
		connectivity: connectivity,
		clock:        clockwork.NewRealClock(),
		logger:       zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Value returns the live value of c. CategoryNone returns "".
func (t *Tracker) Value(c Category) Value {
	switch c {
	case CategoryVisibility:
		if t.visibility != nil && t.visibility.Hidden() {
			return Hidden
		}
		return Visible
	case CategoryConnectivity:
		if t.connectivity == nil {
			return Online
		}
		// Fail open: only an explicit negative from a supported source is offline.
		if online, supported := t.connectivity.OnLine(); supported && !online {
			return Offline
		}
		return Online
	case CategoryApp:
		if t.Value(CategoryVisibility) != Visible || t.Value(CategoryConnectivity) != Online {
			return Inactive
		}
		return Active
	default:
		return ""
	}
}

// Snapshot reads all three categories.
func (t *Tracker) Snapshot() Snapshot {
	return Snapshot{
		Visible: t.Value(CategoryVisibility),
		Online:  t.Value(CategoryConnectivity),
		Active:  t.Value(CategoryApp),
	}
}

// GetState resolves token (a category name or value alias) and returns that
// category's value. An empty or unrecognized token returns a full snapshot
// instead of failing.
func (t *Tracker) GetState(token string) Reading {
	c := ResolveType(token)
	if c == CategoryNone {
		return Reading{Snapshot: t.Snapshot()}
	}
	return Reading{Category: c, Value: t.Value(c)}
}

// AppIs reports whether the category owning value currently equals value,
// e.g. AppIs("online") or AppIs("active").
func (t *Tracker) AppIs(value string) bool {
	r := t.GetState(value)
	return !r.IsSnapshot() && r.Value == Value(value)
}
