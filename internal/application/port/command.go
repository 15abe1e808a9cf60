package port

import "context"

//go:generate mockery --name "CommandRunner|TickObserver" --with-expecter --output mocks --outpkg mocks

// CommandRunner executes an external command to completion.
type CommandRunner interface {
	// Run starts argv[0] with the remaining arguments and waits for it to exit.
	// Cancelling ctx kills the process.
	Run(ctx context.Context, argv []string) error
}

// TickObserver receives gated interval activity, e.g. for metrics.
type TickObserver interface {
	// ObserveTick is called after each tick's work finished; err is its result.
	ObserveTick(err error)
	// ObservePaused is called when the interval pauses or resumes.
	ObservePaused(paused bool)
}
