package appstate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/appstate/pkg/appstate"
	"github.com/bnema/appstate/pkg/appstate/manual"
)

func TestTracker_GetState_EmptyTokenIsSnapshotOfIndividualReads(t *testing.T) {
	vis := manual.NewVisibility(true)
	conn := manual.NewConnectivity(true)
	tr := appstate.New(vis, conn)

	r := tr.GetState("")
	assert.True(t, r.IsSnapshot())
	assert.Equal(t, appstate.Snapshot{
		Visible: tr.GetState("visible").Value,
		Online:  tr.GetState("online").Value,
		Active:  tr.GetState("active").Value,
	}, r.Snapshot)
	assert.Equal(t, appstate.Snapshot{Visible: appstate.Hidden, Online: appstate.Online, Active: appstate.Inactive}, r.Snapshot)
}

func TestTracker_GetState_UnknownTokenFallsBackToSnapshot(t *testing.T) {
	tr := appstate.New(manual.NewVisibility(false), manual.NewConnectivity(false))

	r := tr.GetState("bogus")
	assert.True(t, r.IsSnapshot())
	assert.Empty(t, r.Value)
	assert.Equal(t, tr.Snapshot(), r.Snapshot)
}

func TestTracker_AppValueTruthTable(t *testing.T) {
	tests := []struct {
		name   string
		hidden bool
		online bool
		want   appstate.Value
	}{
		{name: "visible online", hidden: false, online: true, want: appstate.Active},
		{name: "hidden online", hidden: true, online: true, want: appstate.Inactive},
		{name: "visible offline", hidden: false, online: false, want: appstate.Inactive},
		{name: "hidden offline", hidden: true, online: false, want: appstate.Inactive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := appstate.New(manual.NewVisibility(tt.hidden), manual.NewConnectivity(tt.online))
			assert.Equal(t, tt.want, tr.GetState("app").Value)
			assert.Equal(t, tt.want, tr.GetState("active").Value)
			assert.Equal(t, tt.want, tr.GetState("inactive").Value)
		})
	}
}

func TestTracker_ReadsAreLive(t *testing.T) {
	vis := manual.NewVisibility(false)
	conn := manual.NewConnectivity(true)
	tr := appstate.New(vis, conn)

	assert.Equal(t, appstate.Active, tr.Value(appstate.CategoryApp))

	conn.SetOnline(false)
	assert.Equal(t, appstate.Offline, tr.Value(appstate.CategoryConnectivity))
	assert.Equal(t, appstate.Inactive, tr.Value(appstate.CategoryApp))

	conn.SetOnline(true)
	vis.SetHidden(true)
	assert.Equal(t, appstate.Hidden, tr.Value(appstate.CategoryVisibility))
	assert.Equal(t, appstate.Inactive, tr.Value(appstate.CategoryApp))
}

func TestTracker_UnsupportedConnectivityFailsOpen(t *testing.T) {
	tr := appstate.New(manual.NewVisibility(false), manual.NewUnsupportedConnectivity())

	assert.Equal(t, appstate.Online, tr.GetState("online").Value)
	assert.Equal(t, appstate.Active, tr.GetState("active").Value)
	assert.True(t, tr.AppIs("online"))
}

func TestTracker_NilSources(t *testing.T) {
	tr := appstate.New(nil, nil)

	assert.Equal(t, appstate.Snapshot{
		Visible: appstate.Visible,
		Online:  appstate.Online,
		Active:  appstate.Active,
	}, tr.Snapshot())
}

func TestTracker_AppIs(t *testing.T) {
	tr := appstate.New(manual.NewVisibility(true), manual.NewConnectivity(true))

	for _, v := range []string{"visible", "hidden", "online", "offline", "active", "inactive"} {
		assert.Equal(t, tr.GetState(v).Value == appstate.Value(v), tr.AppIs(v), "value %q", v)
	}

	assert.True(t, tr.AppIs("hidden"))
	assert.True(t, tr.AppIs("online"))
	assert.True(t, tr.AppIs("inactive"))
	assert.False(t, tr.AppIs("visible"))
	assert.False(t, tr.AppIs("active"))
}

func TestTracker_AppIs_NonValueTokens(t *testing.T) {
	tr := appstate.New(nil, nil)

	// Category names and "invisible" resolve, but never equal their own value.
	assert.False(t, tr.AppIs("visibility"))
	assert.False(t, tr.AppIs("app"))
	assert.False(t, tr.AppIs("invisible"))
	assert.False(t, tr.AppIs(""))
	assert.False(t, tr.AppIs("bogus"))
}

func TestTracker_GetState_VisibilityAliases(t *testing.T) {
	tr := appstate.New(manual.NewVisibility(true), nil)

	for _, token := range []string{"visibility", "visible", "invisible", "hidden"} {
		r := tr.GetState(token)
		assert.False(t, r.IsSnapshot(), "token %q", token)
		assert.Equal(t, appstate.CategoryVisibility, r.Category, "token %q", token)
		assert.Equal(t, appstate.Hidden, r.Value, "token %q", token)
	}
	assert.True(t, tr.AppIs("hidden"))
}
