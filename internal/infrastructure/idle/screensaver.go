// Package idle provides a visibility source backed by the desktop screensaver
// over D-Bus: an active screensaver or locked session reads as hidden.
package idle

import (
	"context"
	"sync"

	"github.com/godbus/dbus/v5"

	"github.com/bnema/appstate/internal/logging"
	"github.com/bnema/appstate/pkg/appstate"
)

type screenSaverService struct {
	dest  string
	path  dbus.ObjectPath
	iface string
}

// Services tried in order. GNOME only exposes its own name.
var screenSaverServices = []screenSaverService{
	{dest: "org.freedesktop.ScreenSaver", path: "/org/freedesktop/ScreenSaver", iface: "org.freedesktop.ScreenSaver"},
	{dest: "org.gnome.ScreenSaver", path: "/org/gnome/ScreenSaver", iface: "org.gnome.ScreenSaver"},
}

const activeChangedMember = "ActiveChanged"

// Compile-time interface check.
var _ appstate.VisibilitySource = (*ScreenSaver)(nil)

// ScreenSaver implements appstate.VisibilitySource using the session bus
// screensaver interface.
type ScreenSaver struct {
	conn      *dbus.Conn
	service   screenSaverService
	signals   chan *dbus.Signal
	supported bool
	cancel    context.CancelFunc
	done      chan struct{}

	mu     sync.RWMutex
	active bool
	change appstate.EventTarget
}

// NewScreenSaver connects to the session bus and starts watching ActiveChanged.
// Returns a functional source even if D-Bus is unavailable (graceful degradation):
// it then always reads visible.
func NewScreenSaver(ctx context.Context) *ScreenSaver {
	log := logging.FromContext(ctx)

	s := &ScreenSaver{}

	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		log.Debug().Err(err).Msg("screensaver: cannot connect to D-Bus session bus")
		return s
	}
	s.conn = conn

	for _, svc := range screenSaverServices {
		var active bool
		err := conn.Object(svc.dest, svc.path).Call(svc.iface+".GetActive", 0).Store(&active)
		if err != nil {
			log.Debug().Err(err).Str("service", svc.dest).Msg("screensaver: service not available")
			continue
		}
		s.service = svc
		s.active = active
		s.supported = true
		break
	}
	if !s.supported {
		return s
	}

	if err := conn.AddMatchSignal(
		dbus.WithMatchInterface(s.service.iface),
		dbus.WithMatchMember(activeChangedMember),
	); err != nil {
		log.Debug().Err(err).Msg("screensaver: failed to add signal match")
		return s
	}

	s.signals = make(chan *dbus.Signal, 8)
	conn.Signal(s.signals)

	watchCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.done = make(chan struct{})
	go s.watch(watchCtx)

	log.Debug().
		Str("service", s.service.dest).
		Bool("active", s.active).
		Msg("screensaver: watching")

	return s
}

func (s *ScreenSaver) watch(ctx context.Context) {
	defer close(s.done)
	for {
		select {
		case sig, ok := <-s.signals:
			if !ok || sig == nil {
				return
			}
			s.handleSignal(ctx, sig)
		case <-ctx.Done():
			return
		}
	}
}

func (s *ScreenSaver) handleSignal(ctx context.Context, sig *dbus.Signal) {
	if sig.Name != s.service.iface+"."+activeChangedMember || len(sig.Body) == 0 {
		return
	}
	active, ok := sig.Body[0].(bool)
	if !ok {
		return
	}
	logging.FromContext(ctx).Debug().Bool("active", active).Msg("screensaver: active changed")
	s.setActive(active)
}

func (s *ScreenSaver) setActive(active bool) {
	s.mu.Lock()
	changed := s.active != active
	s.active = active
	s.mu.Unlock()

	if changed {
		s.change.Dispatch()
	}
}

// Hidden implements appstate.VisibilitySource.
func (s *ScreenSaver) Hidden() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active
}

// OnVisibilityChange implements appstate.VisibilitySource.
func (s *ScreenSaver) OnVisibilityChange(fn func()) func() {
	return s.change.Add(fn)
}

// Supported reports whether a screensaver service was found.
func (s *ScreenSaver) Supported() bool {
	return s.supported
}

// Close stops watching and releases the D-Bus connection.
func (s *ScreenSaver) Close() error {
	if s.cancel != nil {
		s.cancel()
		<-s.done
		s.cancel = nil
	}
	if s.conn == nil {
		return nil
	}
	if s.signals != nil {
		s.conn.RemoveSignal(s.signals)
		_ = s.conn.RemoveMatchSignal(
			dbus.WithMatchInterface(s.service.iface),
			dbus.WithMatchMember(activeChangedMember),
		)
		s.signals = nil
	}
	err := s.conn.Close()
	s.conn = nil
	return err
}
