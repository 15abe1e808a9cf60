package metrics

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/appstate/internal/application/port"
	"github.com/bnema/appstate/pkg/appstate"
	"github.com/bnema/appstate/pkg/appstate/manual"
)

var _ port.TickObserver = (*Recorder)(nil)

func TestRecorder_AttachSeedsAndTracksState(t *testing.T) {
	vis := manual.NewVisibility(false)
	conn := manual.NewConnectivity(false)
	tr := appstate.New(vis, conn)

	r := NewRecorder()
	detach := r.Attach(tr)

	assert.Equal(t, 1.0, testutil.ToFloat64(r.State.WithLabelValues("visibility")))
	assert.Equal(t, 0.0, testutil.ToFloat64(r.State.WithLabelValues("connectivity")))
	assert.Equal(t, 0.0, testutil.ToFloat64(r.State.WithLabelValues("app")))

	conn.SetOnline(true)
	assert.Equal(t, 1.0, testutil.ToFloat64(r.State.WithLabelValues("connectivity")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.State.WithLabelValues("app")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.StateChanges.WithLabelValues("connectivity", "online")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.StateChanges.WithLabelValues("app", "active")))

	vis.SetHidden(true)
	assert.Equal(t, 0.0, testutil.ToFloat64(r.State.WithLabelValues("visibility")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.StateChanges.WithLabelValues("visibility", "hidden")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.StateChanges.WithLabelValues("app", "inactive")))

	detach()
	assert.Zero(t, vis.Subscribers())
	assert.Zero(t, conn.Subscribers())

	vis.SetHidden(false)
	assert.Equal(t, 0.0, testutil.ToFloat64(r.State.WithLabelValues("visibility")))
}

func TestRecorder_CloseDetachesAll(t *testing.T) {
	vis := manual.NewVisibility(false)
	tr := appstate.New(vis, nil)

	r := NewRecorder()
	r.Attach(tr)
	r.Attach(tr)
	assert.Equal(t, 4, vis.Subscribers())

	r.Close()
	assert.Zero(t, vis.Subscribers())
	assert.NotPanics(t, r.Close)
}

func TestRecorder_IntervalObservations(t *testing.T) {
	r := NewRecorder()

	r.ObserveTick(nil)
	r.ObserveTick(nil)
	r.ObserveTick(errors.New("boom"))
	assert.Equal(t, 2.0, testutil.ToFloat64(r.IntervalTicks.WithLabelValues("ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.IntervalTicks.WithLabelValues("error")))

	r.ObservePaused(true)
	assert.Equal(t, 1.0, testutil.ToFloat64(r.IntervalPaused))
	r.ObservePaused(false)
	assert.Equal(t, 0.0, testutil.ToFloat64(r.IntervalPaused))
}

func TestRecorder_Handler(t *testing.T) {
	r := NewRecorder()
	r.Attach(appstate.New(nil, nil))
	defer r.Close()

	srv := httptest.NewServer(r.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, strings.Contains(string(body), `appstate_state{category="app"} 1`))
	assert.True(t, strings.Contains(string(body), "appstate_interval_paused 0"))
}
