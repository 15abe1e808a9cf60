// Package manual provides host sources whose state is set by the embedding
// program, e.g. a GUI toolkit forwarding window map/unmap events, or tests.
package manual

import (
	"sync"

	"github.com/bnema/appstate/pkg/appstate"
)

// Compile-time interface checks.
var (
	_ appstate.VisibilitySource   = (*Visibility)(nil)
	_ appstate.ConnectivitySource = (*Connectivity)(nil)
)

// Visibility is a VisibilitySource driven by SetHidden.
type Visibility struct {
	mu     sync.RWMutex
	hidden bool
	change appstate.EventTarget
}

// NewVisibility creates a Visibility source with the given initial state.
func NewVisibility(hidden bool) *Visibility {
	return &Visibility{hidden: hidden}
}

// Hidden implements appstate.VisibilitySource.
func (v *Visibility) Hidden() bool {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.hidden
}

// OnVisibilityChange implements appstate.VisibilitySource.
func (v *Visibility) OnVisibilityChange(fn func()) func() {
	return v.change.Add(fn)
}

// SetHidden updates the state and notifies subscribers if it changed.
func (v *Visibility) SetHidden(hidden bool) {
	v.mu.Lock()
	changed := v.hidden != hidden
	v.hidden = hidden
	v.mu.Unlock()

	if changed {
		v.change.Dispatch()
	}
}

// Notify fires a visibility change without changing the state.
func (v *Visibility) Notify() {
	v.change.Dispatch()
}

// Subscribers returns the number of active subscriptions.
func (v *Visibility) Subscribers() int {
	return v.change.Len()
}

// Connectivity is a ConnectivitySource driven by SetOnline.
type Connectivity struct {
	mu         sync.RWMutex
	online     bool
	supported  bool
	onlineEvt  appstate.EventTarget
	offlineEvt appstate.EventTarget
}

// NewConnectivity creates a supported Connectivity source.
func NewConnectivity(online bool) *Connectivity {
	return &Connectivity{online: online, supported: true}
}

// NewUnsupportedConnectivity creates a source that reports no online
// capability until SetOnline is first called.
func NewUnsupportedConnectivity() *Connectivity {
	return &Connectivity{}
}

// OnLine implements appstate.ConnectivitySource.
func (c *Connectivity) OnLine() (online, supported bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.online, c.supported
}

// OnOnline implements appstate.ConnectivitySource.
func (c *Connectivity) OnOnline(fn func()) func() {
	return c.onlineEvt.Add(fn)
}

// OnOffline implements appstate.ConnectivitySource.
func (c *Connectivity) OnOffline(fn func()) func() {
	return c.offlineEvt.Add(fn)
}

// SetOnline marks the source supported, updates the flag and fires online or
// offline if the effective value changed.
func (c *Connectivity) SetOnline(online bool) {
	c.mu.Lock()
	wasOnline := c.online || !c.supported
	c.online = online
	c.supported = true
	c.mu.Unlock()

	switch {
	case online && !wasOnline:
		c.onlineEvt.Dispatch()
	case !online && wasOnline:
		c.offlineEvt.Dispatch()
	}
}

// Subscribers returns the number of active online plus offline subscriptions.
func (c *Connectivity) Subscribers() int {
	return c.onlineEvt.Len() + c.offlineEvt.Len()
}
