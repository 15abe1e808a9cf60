package appstate

import (
	"sync"
	"sync/atomic"
)

// Disposer reverses a registration. Calling it more than once is a no-op.
type Disposer func()

func noopDisposer() {}

// ListenerOptions tune SetupEventListener.
type ListenerOptions struct {
	// TriggerOnSetup calls the callback once, synchronously, during registration.
	TriggerOnSetup bool
	// Once disposes the listener after its first event-driven call.
	// The TriggerOnSetup call does not count.
	Once bool
}

var registrationSeq atomic.Uint64

// registration tracks the host subscriptions installed by one
// SetupEventListener call.
type registration struct {
	id       uint64
	category Category

	mu       sync.Mutex
	active   bool
	removers []func()

	// deliver serializes callbacks when events arrive from several sources.
	deliver sync.Mutex
}

func (r *registration) isActive() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.active
}

func (r *registration) dispose() bool {
	r.mu.Lock()
	if !r.active {
		r.mu.Unlock()
		return false
	}
	r.active = false
	removers := r.removers
	r.removers = nil
	r.mu.Unlock()

	for _, remove := range removers {
		remove()
	}
	return true
}

// SetupEventListener calls cb with the live value of category every time the
// host signals behind it change. category may be a category name or a value
// alias. Visibility installs one host subscription, connectivity two (online
// and offline), and app installs both of those.
//
// Deliveries for one listener never overlap and follow host delivery order.
// Once the returned Disposer returns, no new delivery starts. An unknown
// category installs nothing and returns a no-op Disposer.
func (t *Tracker) SetupEventListener(category Category, cb func(Value), opts ListenerOptions) Disposer {
	c := ResolveType(string(category))
	if c == CategoryNone {
		t.logger.Debug().Str("category", string(category)).Msg("unknown category, listener not installed")
		return noopDisposer
	}

	r := &registration{
		id:       registrationSeq.Add(1),
		category: c,
		active:   true,
	}

	listener := func() {
		r.deliver.Lock()
		defer r.deliver.Unlock()

		if !r.isActive() {
			return
		}
		cb(t.Value(c))
		if opts.Once && r.dispose() {
			t.logger.Debug().Uint64("listener", r.id).Msg("once listener disposed after first event")
		}
	}

	if opts.TriggerOnSetup {
		cb(t.Value(c))
	}

	removers := t.subscribe(c, listener)

	r.mu.Lock()
	if !r.active {
		// A once listener fired while the subscriptions were being installed.
		r.mu.Unlock()
		for _, remove := range removers {
			remove()
		}
		return noopDisposer
	}
	r.removers = removers
	r.mu.Unlock()

	t.logger.Debug().
		Uint64("listener", r.id).
		Str("category", string(c)).
		Int("subscriptions", len(removers)).
		Bool("once", opts.Once).
		Msg("listener installed")

	return func() {
		if r.dispose() {
			t.logger.Debug().Uint64("listener", r.id).Msg("listener disposed")
		}
	}
}

// subscribe installs fn on the host events backing c and returns one remover
// per installed subscription.
func (t *Tracker) subscribe(c Category, fn func()) []func() {
	switch c {
	case CategoryVisibility:
		if t.visibility == nil {
			return nil
		}
		return []func(){t.visibility.OnVisibilityChange(fn)}
	case CategoryConnectivity:
		if t.connectivity == nil {
			return nil
		}
		return []func(){
			t.connectivity.OnOffline(fn),
			t.connectivity.OnOnline(fn),
		}
	case CategoryApp:
		removers := t.subscribe(CategoryVisibility, fn)
		return append(removers, t.subscribe(CategoryConnectivity, fn)...)
	default:
		return nil
	}
}

// AddVisibilityChangeListener is SetupEventListener for CategoryVisibility.
func (t *Tracker) AddVisibilityChangeListener(cb func(Value), opts ListenerOptions) Disposer {
	return t.SetupEventListener(CategoryVisibility, cb, opts)
}

// AddOnlineChangeListener is SetupEventListener for CategoryConnectivity.
func (t *Tracker) AddOnlineChangeListener(cb func(Value), opts ListenerOptions) Disposer {
	return t.SetupEventListener(CategoryConnectivity, cb, opts)
}

// AddAppStateChangeListener is SetupEventListener for CategoryApp.
func (t *Tracker) AddAppStateChangeListener(cb func(Value), opts ListenerOptions) Disposer {
	return t.SetupEventListener(CategoryApp, cb, opts)
}
