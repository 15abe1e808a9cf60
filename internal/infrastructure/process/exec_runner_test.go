package process

import (
	"bytes"
	"context"
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireShell(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
}

func TestExecRunner_RunCapturesOutput(t *testing.T) {
	requireShell(t)
	var stdout, stderr bytes.Buffer
	r := NewExecRunner(&stdout, &stderr)

	err := r.Run(context.Background(), []string{"sh", "-c", "echo out; echo err >&2"})
	require.NoError(t, err)
	assert.Equal(t, "out\n", stdout.String())
	assert.Equal(t, "err\n", stderr.String())
}

func TestExecRunner_RunReportsExitCode(t *testing.T) {
	requireShell(t)
	r := NewExecRunner(&bytes.Buffer{}, &bytes.Buffer{})

	err := r.Run(context.Background(), []string{"sh", "-c", "exit 3"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exit code 3")

	var exitErr *exec.ExitError
	assert.ErrorAs(t, err, &exitErr)
}

func TestExecRunner_RunEmptyCommand(t *testing.T) {
	r := NewExecRunner(nil, nil)

	assert.ErrorIs(t, r.Run(context.Background(), nil), ErrEmptyCommand)
	assert.ErrorIs(t, r.Run(context.Background(), []string{""}), ErrEmptyCommand)
}

func TestExecRunner_RunMissingProgram(t *testing.T) {
	r := NewExecRunner(&bytes.Buffer{}, &bytes.Buffer{})

	err := r.Run(context.Background(), []string{"appstate-test-no-such-program"})
	require.Error(t, err)
	assert.ErrorIs(t, err, exec.ErrNotFound)
}

func TestExecRunner_RunCancelledContextKillsChild(t *testing.T) {
	requireShell(t)
	r := NewExecRunner(&bytes.Buffer{}, &bytes.Buffer{})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	err := r.Run(ctx, []string{"sh", "-c", "sleep 10"})
	require.Error(t, err)
	assert.Less(t, time.Since(start), 5*time.Second)
}
