package idle

import (
	"context"
	"testing"

	"github.com/godbus/dbus/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestScreenSaver() *ScreenSaver {
	return &ScreenSaver{service: screenSaverServices[0], supported: true}
}

func TestScreenSaver_ActiveChangedTogglesHidden(t *testing.T) {
	s := newTestScreenSaver()
	calls := 0
	remove := s.OnVisibilityChange(func() { calls++ })
	defer remove()

	s.handleSignal(context.Background(), &dbus.Signal{
		Name: "org.freedesktop.ScreenSaver.ActiveChanged",
		Body: []interface{}{true},
	})
	assert.True(t, s.Hidden())
	assert.Equal(t, 1, calls)

	// Repeated value is not a change.
	s.handleSignal(context.Background(), &dbus.Signal{
		Name: "org.freedesktop.ScreenSaver.ActiveChanged",
		Body: []interface{}{true},
	})
	assert.Equal(t, 1, calls)

	s.handleSignal(context.Background(), &dbus.Signal{
		Name: "org.freedesktop.ScreenSaver.ActiveChanged",
		Body: []interface{}{false},
	})
	assert.False(t, s.Hidden())
	assert.Equal(t, 2, calls)
}

func TestScreenSaver_IgnoresUnrelatedSignals(t *testing.T) {
	s := newTestScreenSaver()
	calls := 0
	s.OnVisibilityChange(func() { calls++ })

	for _, sig := range []*dbus.Signal{
		{Name: "org.freedesktop.ScreenSaver.WakeUpScreen", Body: []interface{}{true}},
		{Name: "org.gnome.ScreenSaver.ActiveChanged", Body: []interface{}{true}},
		{Name: "org.freedesktop.ScreenSaver.ActiveChanged"},
		{Name: "org.freedesktop.ScreenSaver.ActiveChanged", Body: []interface{}{"yes"}},
	} {
		s.handleSignal(context.Background(), sig)
	}

	assert.False(t, s.Hidden())
	assert.Zero(t, calls)
}

func TestScreenSaver_UnsupportedReadsVisible(t *testing.T) {
	s := &ScreenSaver{}
	assert.False(t, s.Supported())
	assert.False(t, s.Hidden())
	require.NoError(t, s.Close())
}
