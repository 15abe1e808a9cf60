// Package process runs external commands for gated intervals.
package process

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"time"

	"github.com/bnema/appstate/internal/application/port"
	"github.com/bnema/appstate/internal/logging"
)

var _ port.CommandRunner = (*ExecRunner)(nil)

// ErrEmptyCommand is returned when Run gets no program to start.
var ErrEmptyCommand = errors.New("empty command")

// ExecRunner starts commands with os/exec and forwards their output.
type ExecRunner struct {
	stdout io.Writer
	stderr io.Writer
	// waitDelay bounds how long Run waits for output pipes after ctx is done.
	waitDelay time.Duration
}

// NewExecRunner creates a runner writing child output to the given writers.
// Nil writers default to the process's own stdout and stderr.
func NewExecRunner(stdout, stderr io.Writer) *ExecRunner {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	return &ExecRunner{
		stdout:    stdout,
		stderr:    stderr,
		waitDelay: 2 * time.Second,
	}
}

// Run starts argv and waits for it to exit. Cancelling ctx kills the child.
func (r *ExecRunner) Run(ctx context.Context, argv []string) error {
	log := logging.FromContext(ctx)

	if len(argv) == 0 || argv[0] == "" {
		return ErrEmptyCommand
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Stdout = r.stdout
	cmd.Stderr = r.stderr
	cmd.WaitDelay = r.waitDelay

	start := time.Now()
	err := cmd.Run()
	elapsed := time.Since(start)

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			log.Debug().
				Str("program", argv[0]).
				Int("exit_code", exitErr.ExitCode()).
				Dur("elapsed", elapsed).
				Msg("command exited with failure")
			return fmt.Errorf("run %s: exit code %d: %w", argv[0], exitErr.ExitCode(), err)
		}
		return fmt.Errorf("run %s: %w", argv[0], err)
	}

	log.Debug().Str("program", argv[0]).Dur("elapsed", elapsed).Msg("command finished")
	return nil
}
