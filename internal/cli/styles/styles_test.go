package styles

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/appstate/internal/domain/build"
	"github.com/bnema/appstate/internal/infrastructure/config"
	"github.com/bnema/appstate/pkg/appstate"
)

func TestIsPositive(t *testing.T) {
	for _, v := range []appstate.Value{appstate.Visible, appstate.Online, appstate.Active} {
		assert.True(t, IsPositive(v), v)
	}
	for _, v := range []appstate.Value{appstate.Hidden, appstate.Offline, appstate.Inactive, ""} {
		assert.False(t, IsPositive(v), v)
	}
}

func TestCategoryIcon(t *testing.T) {
	assert.Equal(t, IconEye, CategoryIcon(appstate.CategoryVisibility, appstate.Visible))
	assert.Equal(t, IconEyeOff, CategoryIcon(appstate.CategoryVisibility, appstate.Hidden))
	assert.Equal(t, IconWifi, CategoryIcon(appstate.CategoryConnectivity, appstate.Online))
	assert.Equal(t, IconPlug, CategoryIcon(appstate.CategoryConnectivity, appstate.Offline))
	assert.Equal(t, IconPlay, CategoryIcon(appstate.CategoryApp, appstate.Active))
	assert.Equal(t, IconPause, CategoryIcon(appstate.CategoryApp, appstate.Inactive))
	assert.Equal(t, IconWarning, CategoryIcon(appstate.CategoryNone, ""))
}

func TestStateRenderer_RenderReading(t *testing.T) {
	r := NewStateRenderer(NewTheme())

	single := r.RenderReading(appstate.Reading{Category: appstate.CategoryConnectivity, Value: appstate.Offline})
	assert.Contains(t, single, "connectivity")
	assert.Contains(t, single, "offline")

	snap := r.RenderReading(appstate.Reading{Snapshot: appstate.Snapshot{
		Visible: appstate.Hidden,
		Online:  appstate.Online,
		Active:  appstate.Inactive,
	}})
	assert.Contains(t, snap, "visibility")
	assert.Contains(t, snap, "hidden")
	assert.Contains(t, snap, "online")
	assert.Contains(t, snap, "inactive")
}

func TestStateRenderer_RenderChange(t *testing.T) {
	r := NewStateRenderer(NewTheme())
	at := time.Date(2026, 3, 4, 13, 14, 15, 0, time.UTC)

	out := r.RenderChange(at, appstate.CategoryApp, appstate.Active)
	assert.Contains(t, out, "13:14:15")
	assert.Contains(t, out, "active")
}

func TestConfigRenderer(t *testing.T) {
	r := NewConfigRenderer(NewTheme())

	out := r.RenderConfig(config.DefaultConfig())
	for _, want := range []string{"Logging", "Sources", "Interval", "Metrics", "screensaver", "networkmanager", "30s"} {
		assert.Contains(t, out, want)
	}

	assert.Contains(t, r.RenderPath("/tmp/appstate/config.toml", false), "not created")
	assert.Contains(t, r.RenderPath("/tmp/appstate/config.toml", true), "exists")
	assert.Contains(t, r.RenderError(errors.New("bad level")), "bad level")
}

func TestAboutRenderer(t *testing.T) {
	out := NewAboutRenderer(NewTheme()).Render(build.Info{Version: "v0.3.0"})
	assert.Contains(t, out, "v0.3.0")
	assert.Contains(t, out, build.RepoURL())
}
