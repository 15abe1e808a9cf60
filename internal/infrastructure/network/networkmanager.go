// Package network provides a connectivity source backed by NetworkManager over
// the D-Bus system bus.
package network

import (
	"context"
	"sync"

	"github.com/godbus/dbus/v5"

	"github.com/bnema/appstate/internal/logging"
	"github.com/bnema/appstate/pkg/appstate"
)

const (
	nmDest  = "org.freedesktop.NetworkManager"
	nmPath  = "/org/freedesktop/NetworkManager"
	nmIface = "org.freedesktop.NetworkManager"

	stateChangedMember = "StateChanged"
)

// NMState mirrors NetworkManager's NMState enum.
type NMState uint32

// NetworkManager states.
const (
	NMStateUnknown         NMState = 0
	NMStateAsleep          NMState = 10
	NMStateDisconnected    NMState = 20
	NMStateDisconnecting   NMState = 30
	NMStateConnecting      NMState = 40
	NMStateConnectedLocal  NMState = 50
	NMStateConnectedSite   NMState = 60
	NMStateConnectedGlobal NMState = 70
)

// Online maps a state to an online flag. Any connected state counts, local
// links included. Unknown reports unsupported.
func (s NMState) Online() (online, supported bool) {
	if s == NMStateUnknown {
		return false, false
	}
	return s >= NMStateConnectedLocal, true
}

func (s NMState) effectiveOnline() bool {
	online, supported := s.Online()
	return online || !supported
}

// Compile-time interface check.
var _ appstate.ConnectivitySource = (*NetworkManager)(nil)

// NetworkManager implements appstate.ConnectivitySource.
type NetworkManager struct {
	conn    *dbus.Conn
	signals chan *dbus.Signal
	cancel  context.CancelFunc
	done    chan struct{}

	mu         sync.RWMutex
	state      NMState
	onlineEvt  appstate.EventTarget
	offlineEvt appstate.EventTarget
}

// NewNetworkManager connects to the system bus and starts watching StateChanged.
// Returns a functional source even if NetworkManager is unavailable: it then
// reports no capability, which reads online.
func NewNetworkManager(ctx context.Context) *NetworkManager {
	log := logging.FromContext(ctx)

	n := &NetworkManager{}

	conn, err := dbus.ConnectSystemBus()
	if err != nil {
		log.Debug().Err(err).Msg("networkmanager: cannot connect to D-Bus system bus")
		return n
	}
	n.conn = conn

	variant, err := conn.Object(nmDest, nmPath).GetProperty(nmIface + ".State")
	if err != nil {
		log.Debug().Err(err).Msg("networkmanager: service not available")
		return n
	}
	if state, ok := variant.Value().(uint32); ok {
		n.state = NMState(state)
	}

	if err := conn.AddMatchSignal(
		dbus.WithMatchObjectPath(nmPath),
		dbus.WithMatchInterface(nmIface),
		dbus.WithMatchMember(stateChangedMember),
	); err != nil {
		log.Debug().Err(err).Msg("networkmanager: failed to add signal match")
		return n
	}

	n.signals = make(chan *dbus.Signal, 8)
	conn.Signal(n.signals)

	watchCtx, cancel := context.WithCancel(ctx)
	n.cancel = cancel
	n.done = make(chan struct{})
	go n.watch(watchCtx)

	log.Debug().Uint32("state", uint32(n.state)).Msg("networkmanager: watching")

	return n
}

func (n *NetworkManager) watch(ctx context.Context) {
	defer close(n.done)
	for {
		select {
		case sig, ok := <-n.signals:
			if !ok || sig == nil {
				return
			}
			n.handleSignal(ctx, sig)
		case <-ctx.Done():
			return
		}
	}
}

func (n *NetworkManager) handleSignal(ctx context.Context, sig *dbus.Signal) {
	if sig.Name != nmIface+"."+stateChangedMember || len(sig.Body) == 0 {
		return
	}
	state, ok := sig.Body[0].(uint32)
	if !ok {
		return
	}
	logging.FromContext(ctx).Debug().Uint32("state", state).Msg("networkmanager: state changed")
	n.setState(NMState(state))
}

// setState records state and fires online or offline when the effective flag flips.
func (n *NetworkManager) setState(state NMState) {
	n.mu.Lock()
	was := n.state.effectiveOnline()
	n.state = state
	now := state.effectiveOnline()
	n.mu.Unlock()

	switch {
	case now && !was:
		n.onlineEvt.Dispatch()
	case !now && was:
		n.offlineEvt.Dispatch()
	}
}

// State returns the last known NetworkManager state.
func (n *NetworkManager) State() NMState {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.state
}

// OnLine implements appstate.ConnectivitySource.
func (n *NetworkManager) OnLine() (online, supported bool) {
	return n.State().Online()
}

// OnOnline implements appstate.ConnectivitySource.
func (n *NetworkManager) OnOnline(fn func()) func() {
	return n.onlineEvt.Add(fn)
}

// OnOffline implements appstate.ConnectivitySource.
func (n *NetworkManager) OnOffline(fn func()) func() {
	return n.offlineEvt.Add(fn)
}

// Close stops watching and releases the D-Bus connection.
func (n *NetworkManager) Close() error {
	if n.cancel != nil {
		n.cancel()
		<-n.done
		n.cancel = nil
	}
	if n.conn == nil {
		return nil
	}
	if n.signals != nil {
		n.conn.RemoveSignal(n.signals)
		_ = n.conn.RemoveMatchSignal(
			dbus.WithMatchObjectPath(nmPath),
			dbus.WithMatchInterface(nmIface),
			dbus.WithMatchMember(stateChangedMember),
		)
		n.signals = nil
	}
	err := n.conn.Close()
	n.conn = nil
	return err
}
