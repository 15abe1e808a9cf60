package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/bnema/appstate/internal/application/port"
	"github.com/bnema/appstate/internal/logging"
	"github.com/bnema/appstate/pkg/appstate"
)

// GatedRunUseCase runs a command on a state-aware interval.
type GatedRunUseCase struct {
	tracker  *appstate.Tracker
	runner   port.CommandRunner
	observer port.TickObserver
}

// NewGatedRunUseCase creates a new GatedRunUseCase. observer may be nil.
func NewGatedRunUseCase(tracker *appstate.Tracker, runner port.CommandRunner, observer port.TickObserver) *GatedRunUseCase {
	return &GatedRunUseCase{
		tracker:  tracker,
		runner:   runner,
		observer: observer,
	}
}

// GatedRunInput contains the parameters for a gated run.
type GatedRunInput struct {
	Command        []string
	Every          time.Duration
	State          appstate.Value
	TriggerOnSetup bool
	// MaxRuns stops the run after that many command executions. Zero means no limit.
	MaxRuns int
}

// GatedRunOutput summarizes a finished run.
type GatedRunOutput struct {
	Runs     int
	Failures int
}

// ErrInvalidRunInput is returned when the input cannot start a run.
var ErrInvalidRunInput = errors.New("invalid gated run input")

func (in GatedRunInput) validate() error {
	if len(in.Command) == 0 || in.Command[0] == "" {
		return fmt.Errorf("%w: command required", ErrInvalidRunInput)
	}
	if in.Every <= 0 {
		return fmt.Errorf("%w: interval must be positive, got %s", ErrInvalidRunInput, in.Every)
	}
	if in.MaxRuns < 0 {
		return fmt.Errorf("%w: max runs must not be negative", ErrInvalidRunInput)
	}
	switch in.State {
	case appstate.Visible, appstate.Hidden, appstate.Online, appstate.Offline, appstate.Active, appstate.Inactive:
	default:
		return fmt.Errorf("%w: unknown state %q", ErrInvalidRunInput, in.State)
	}
	return nil
}

// Execute blocks until ctx is done or MaxRuns is reached. Command failures are
// logged and counted, never returned.
func (uc *GatedRunUseCase) Execute(ctx context.Context, input GatedRunInput) (*GatedRunOutput, error) {
	log := logging.FromContext(ctx)

	if err := input.validate(); err != nil {
		return nil, err
	}

	var (
		mu      sync.Mutex
		out     GatedRunOutput
		limit   = make(chan struct{})
		limitOn sync.Once
	)

	tick := func() {
		// Reserve the run slot before running so overlapping ticks cannot exceed MaxRuns.
		mu.Lock()
		if input.MaxRuns > 0 && out.Runs >= input.MaxRuns {
			mu.Unlock()
			return
		}
		out.Runs++
		reached := input.MaxRuns > 0 && out.Runs >= input.MaxRuns
		mu.Unlock()

		err := uc.runner.Run(ctx, input.Command)
		if err != nil && ctx.Err() == nil {
			log.Warn().Err(err).Strs("command", input.Command).Msg("gated command failed")
		}
		if uc.observer != nil {
			uc.observer.ObserveTick(err)
		}

		if err != nil {
			mu.Lock()
			out.Failures++
			mu.Unlock()
		}

		if reached {
			limitOn.Do(func() { close(limit) })
		}
	}

	category := appstate.ResolveType(string(input.State))
	removePauseWatch := uc.tracker.SetupEventListener(category, func(v appstate.Value) {
		paused := v != input.State
		log.Info().
			Str("category", string(category)).
			Str("value", string(v)).
			Bool("paused", paused).
			Msg("gated run state")
		if uc.observer != nil {
			uc.observer.ObservePaused(paused)
		}
	}, appstate.ListenerOptions{TriggerOnSetup: true})
	defer removePauseWatch()

	log.Info().
		Strs("command", input.Command).
		Dur("every", input.Every).
		Str("state", string(input.State)).
		Int("max_runs", input.MaxRuns).
		Msg("gated run started")

	stop := uc.tracker.SetupStateAwareInterval(tick, input.Every, appstate.IntervalOptions{
		TriggerOnSetup: input.TriggerOnSetup,
		State:          input.State,
	})
	defer stop()

	select {
	case <-ctx.Done():
	case <-limit:
	}

	mu.Lock()
	result := out
	mu.Unlock()

	log.Info().Int("runs", result.Runs).Int("failures", result.Failures).Msg("gated run finished")
	return &result, nil
}
