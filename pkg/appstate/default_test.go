package appstate_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/appstate/pkg/appstate"
	"github.com/bnema/appstate/pkg/appstate/manual"
)

func TestDefaultTracker_FailsOpen(t *testing.T) {
	prev := appstate.Default()
	t.Cleanup(func() { appstate.SetDefault(prev) })
	appstate.SetDefault(nil)

	assert.True(t, appstate.AppIs("active"))
	assert.True(t, appstate.AppIs("visible"))
	assert.True(t, appstate.AppIs("online"))
	assert.True(t, appstate.GetState("").IsSnapshot())
}

func TestDefaultTracker_BothProfiles(t *testing.T) {
	prev := appstate.Default()
	t.Cleanup(func() { appstate.SetDefault(prev) })

	vis := manual.NewVisibility(false)
	conn := manual.NewConnectivity(true)
	appstate.SetDefault(appstate.New(vis, conn))

	var a, b []appstate.Value
	disposeA := appstate.SetupEventListener(appstate.CategoryApp, func(v appstate.Value) { a = append(a, v) }, appstate.ListenerOptions{})
	disposeB := appstate.AddAppStateChangeListener(func(v appstate.Value) { b = append(b, v) }, appstate.ListenerOptions{})
	disposeVis := appstate.AddVisibilityChangeListener(func(appstate.Value) {}, appstate.ListenerOptions{})
	disposeConn := appstate.AddOnlineChangeListener(func(appstate.Value) {}, appstate.ListenerOptions{})

	vis.SetHidden(true)
	assert.Equal(t, []appstate.Value{appstate.Inactive}, a)
	assert.Equal(t, a, b)
	assert.False(t, appstate.AppIs("active"))
	assert.Equal(t, appstate.Hidden, appstate.GetState("visibility").Value)

	for _, dispose := range []appstate.Disposer{disposeA, disposeB, disposeVis, disposeConn} {
		dispose()
	}
	assert.Zero(t, vis.Subscribers())
	assert.Zero(t, conn.Subscribers())

	// Intervals gated on a state that does not hold register a listener only.
	stopA := appstate.SetupStateAwareInterval(func() {}, time.Hour, appstate.IntervalOptions{})
	stopB := appstate.SetStateAwareInterval(func() {}, time.Hour, appstate.IntervalOptions{})
	assert.Equal(t, 2, vis.Subscribers())
	assert.Equal(t, 4, conn.Subscribers())
	stopA()
	stopB()
	assert.Zero(t, vis.Subscribers())
	assert.Zero(t, conn.Subscribers())
}
