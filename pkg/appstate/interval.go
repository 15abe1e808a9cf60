package appstate

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// MinInterval is the shortest period a state-aware interval will tick at.
const MinInterval = time.Millisecond

// IntervalOptions tune SetupStateAwareInterval.
type IntervalOptions struct {
	// TriggerOnSetup calls the callback synchronously every time the ticker
	// (re)starts, before its first tick.
	TriggerOnSetup bool
	// State is the value the interval runs in. Its category is the one watched.
	// Defaults to Active.
	State Value
}

type stateAwareInterval struct {
	tracker  *Tracker
	cb       func()
	every    time.Duration
	target   Value
	category Category
	trigger  bool

	mu      sync.Mutex
	stopped bool
	gen     uint64
	ticker  clockwork.Ticker
	done    chan struct{}
}

// SetupStateAwareInterval runs cb every period while the category owning
// opts.State equals opts.State. It starts right away if that already holds,
// stops when the value changes away, and restarts when it comes back. Ticks
// that would have fired while paused are skipped, not queued.
//
// The returned Disposer removes the state listener and stops the ticker. Once
// it returns, no tick that fires later calls cb. A tick that already passed its
// check may still be entering cb on another goroutine; callers needing a hard
// barrier must synchronize inside cb.
func (t *Tracker) SetupStateAwareInterval(cb func(), every time.Duration, opts IntervalOptions) Disposer {
	target := opts.State
	if target == "" {
		target = Active
	}
	c := ResolveType(string(target))
	if c == CategoryNone {
		t.logger.Warn().Str("state", string(target)).Msg("unknown interval state, interval never runs")
		return noopDisposer
	}
	if every < MinInterval {
		every = MinInterval
	}

	i := &stateAwareInterval{
		tracker:  t,
		cb:       cb,
		every:    every,
		target:   target,
		category: c,
		trigger:  opts.TriggerOnSetup,
	}

	// Subscribe before the initial read so a change in between is not lost.
	removeListener := t.SetupEventListener(c, func(v Value) {
		if v == target {
			i.start()
		} else {
			i.pause()
		}
	}, ListenerOptions{})

	if t.Value(c) == target {
		i.start()
	}

	return func() {
		removeListener()
		i.stop()
	}
}

// SetStateAwareInterval is an alias of SetupStateAwareInterval.
func (t *Tracker) SetStateAwareInterval(cb func(), every time.Duration, opts IntervalOptions) Disposer {
	return t.SetupStateAwareInterval(cb, every, opts)
}

// start replaces any running ticker with a fresh one.
func (i *stateAwareInterval) start() {
	i.mu.Lock()
	if i.stopped {
		i.mu.Unlock()
		return
	}
	i.clearLocked()
	gen := i.gen
	i.mu.Unlock()

	if i.trigger {
		i.fire(gen)
	}

	i.mu.Lock()
	defer i.mu.Unlock()
	// A pause, restart or stop during the trigger call supersedes this start.
	if i.stopped || i.gen != gen {
		return
	}
	ticker := i.tracker.clock.NewTicker(i.every)
	done := make(chan struct{})
	i.ticker, i.done = ticker, done
	go i.loop(gen, ticker, done)

	i.tracker.logger.Debug().
		Str("state", string(i.target)).
		Dur("every", i.every).
		Msg("state-aware interval running")
}

func (i *stateAwareInterval) pause() {
	i.mu.Lock()
	defer i.mu.Unlock()

	if i.ticker != nil {
		i.tracker.logger.Debug().Str("state", string(i.target)).Msg("state-aware interval paused")
	}
	i.clearLocked()
}

func (i *stateAwareInterval) stop() {
	i.mu.Lock()
	defer i.mu.Unlock()

	if i.stopped {
		return
	}
	i.stopped = true
	i.clearLocked()
	i.tracker.logger.Debug().Str("state", string(i.target)).Msg("state-aware interval stopped")
}

// clearLocked stops the ticker if one is running and invalidates pending fires.
func (i *stateAwareInterval) clearLocked() {
	i.gen++
	if i.ticker == nil {
		return
	}
	i.ticker.Stop()
	close(i.done)
	i.ticker, i.done = nil, nil
}

func (i *stateAwareInterval) loop(gen uint64, ticker clockwork.Ticker, done chan struct{}) {
	for {
		select {
		case <-done:
			return
		case <-ticker.Chan():
			i.fire(gen)
		}
	}
}

// fire calls cb unless the interval was paused, restarted or stopped after gen.
func (i *stateAwareInterval) fire(gen uint64) {
	i.mu.Lock()
	current := !i.stopped && i.gen == gen
	i.mu.Unlock()

	if current {
		i.cb()
	}
}
