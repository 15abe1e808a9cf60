// Package metrics exposes appstate readings and gated interval activity as
// Prometheus metrics.
package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/bnema/appstate/pkg/appstate"
)

const namespace = "appstate"

// Recorder owns the appstate collectors on its own registry.
type Recorder struct {
	registry *prometheus.Registry

	// State is 1 when the category holds its positive value (visible, online, active).
	State *prometheus.GaugeVec
	// StateChanges counts change events per category and new value.
	StateChanges *prometheus.CounterVec
	// IntervalTicks counts gated interval runs by result (ok, error).
	IntervalTicks *prometheus.CounterVec
	// IntervalPaused is 1 while the gated interval waits for its state.
	IntervalPaused prometheus.Gauge

	mu        sync.Mutex
	disposers []appstate.Disposer
}

// NewRecorder registers all collectors on a fresh registry.
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Recorder{
		registry: reg,
		State: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "state",
				Help:      "Current state per category (1=visible/online/active, 0 otherwise)",
			},
			[]string{"category"},
		),
		StateChanges: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "state_changes_total",
				Help:      "State change events by category and new value",
			},
			[]string{"category", "value"},
		),
		IntervalTicks: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "interval_ticks_total",
				Help:      "Gated interval runs by result",
			},
			[]string{"result"},
		),
		IntervalPaused: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "interval_paused",
				Help:      "1 while the gated interval is paused",
			},
		),
	}
}

// Registry returns the registry the collectors live on.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// Handler serves the recorder's registry in the Prometheus text format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

// Attach seeds the state gauges from t and keeps them current. The returned
// disposer removes every listener Attach installed.
func (r *Recorder) Attach(t *appstate.Tracker) appstate.Disposer {
	var disposers []appstate.Disposer
	for _, c := range appstate.Categories() {
		category := c
		disposers = append(disposers, t.SetupEventListener(category, func(v appstate.Value) {
			r.observeState(category, v)
		}, appstate.ListenerOptions{}))
		r.State.WithLabelValues(string(category)).Set(gaugeValue(t.Value(category)))
	}

	r.mu.Lock()
	r.disposers = append(r.disposers, disposers...)
	r.mu.Unlock()

	return func() {
		for _, dispose := range disposers {
			dispose()
		}
	}
}

// Close removes all listeners installed by Attach.
func (r *Recorder) Close() {
	r.mu.Lock()
	disposers := r.disposers
	r.disposers = nil
	r.mu.Unlock()

	for _, dispose := range disposers {
		dispose()
	}
}

func (r *Recorder) observeState(c appstate.Category, v appstate.Value) {
	r.State.WithLabelValues(string(c)).Set(gaugeValue(v))
	r.StateChanges.WithLabelValues(string(c), string(v)).Inc()
}

// ObserveTick counts a gated interval run.
func (r *Recorder) ObserveTick(err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	r.IntervalTicks.WithLabelValues(result).Inc()
}

// ObservePaused records whether the gated interval is paused.
func (r *Recorder) ObservePaused(paused bool) {
	if paused {
		r.IntervalPaused.Set(1)
		return
	}
	r.IntervalPaused.Set(0)
}

func gaugeValue(v appstate.Value) float64 {
	switch v {
	case appstate.Visible, appstate.Online, appstate.Active:
		return 1
	default:
		return 0
	}
}
