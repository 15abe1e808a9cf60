package appstate

import (
	"sync/atomic"
	"time"
)

var defaultTracker atomic.Pointer[Tracker]

func init() {
	defaultTracker.Store(New(nil, nil))
}

// Default returns the tracker behind the package-level functions. Until
// SetDefault is called it has no sources and always reads visible, online and
// active.
func Default() *Tracker {
	return defaultTracker.Load()
}

// SetDefault replaces the tracker behind the package-level functions.
// Listeners and intervals already registered stay bound to the old tracker.
func SetDefault(t *Tracker) {
	if t == nil {
		t = New(nil, nil)
	}
	defaultTracker.Store(t)
}

// GetState calls GetState on the default tracker.
func GetState(token string) Reading {
	return Default().GetState(token)
}

// AppIs calls AppIs on the default tracker.
func AppIs(value string) bool {
	return Default().AppIs(value)
}

// SetupEventListener calls SetupEventListener on the default tracker.
func SetupEventListener(category Category, cb func(Value), opts ListenerOptions) Disposer {
	return Default().SetupEventListener(category, cb, opts)
}

// SetupStateAwareInterval calls SetupStateAwareInterval on the default tracker.
func SetupStateAwareInterval(cb func(), every time.Duration, opts IntervalOptions) Disposer {
	return Default().SetupStateAwareInterval(cb, every, opts)
}

// AddVisibilityChangeListener calls AddVisibilityChangeListener on the default tracker.
func AddVisibilityChangeListener(cb func(Value), opts ListenerOptions) Disposer {
	return Default().AddVisibilityChangeListener(cb, opts)
}

// AddOnlineChangeListener calls AddOnlineChangeListener on the default tracker.
func AddOnlineChangeListener(cb func(Value), opts ListenerOptions) Disposer {
	return Default().AddOnlineChangeListener(cb, opts)
}

// AddAppStateChangeListener calls AddAppStateChangeListener on the default tracker.
func AddAppStateChangeListener(cb func(Value), opts ListenerOptions) Disposer {
	return Default().AddAppStateChangeListener(cb, opts)
}

// SetStateAwareInterval calls SetStateAwareInterval on the default tracker.
func SetStateAwareInterval(cb func(), every time.Duration, opts IntervalOptions) Disposer {
	return Default().SetStateAwareInterval(cb, every, opts)
}
