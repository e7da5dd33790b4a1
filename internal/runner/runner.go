// Package runner executes project scripts through the detected package manager.
package runner

import (
	"context"
	"errors"
	"fmt"
	"os/exec"

	"github.com/raphi011/rpc/internal/cmd"
	"github.com/raphi011/rpc/internal/log"
	"github.com/raphi011/rpc/internal/pm"
	"github.com/raphi011/rpc/internal/ui/styles"
)

var (
	// ErrSpawnFailed means the package manager could not be started.
	ErrSpawnFailed = errors.New("failed to start script")
	// ErrExecutionFailed means the script ran and did not exit with 0.
	ErrExecutionFailed = errors.New("script failed")
	// ErrInterrupted means the run was cancelled by the user.
	ErrInterrupted = errors.New("interrupted")
)

// SpawnError wraps a failure to launch the package manager.
type SpawnError struct {
	Manager string
	Err     error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("failed to execute %s: %v", e.Manager, e.Err)
}

func (e *SpawnError) Is(target error) bool { return target == ErrSpawnFailed }

func (e *SpawnError) Unwrap() error { return e.Err }

// ExecutionError reports a script that exited unsuccessfully.
// Code is -1 when the child did not report an exit code (killed by a signal).
type ExecutionError struct {
	Script string
	Code   int
}

func (e *ExecutionError) Error() string {
	if e.Code < 0 {
		return fmt.Sprintf("script %q terminated without an exit code", e.Script)
	}
	return fmt.Sprintf("script %q failed with exit code %d", e.Script, e.Code)
}

func (e *ExecutionError) Is(target error) bool { return target == ErrExecutionFailed }

// Runner runs scripts in a directory.
type Runner struct {
	Dir     string
	Streams cmd.Streams
}

// New returns a Runner for dir attached to the process's own terminal.
func New(dir string) *Runner {
	return &Runner{Dir: dir, Streams: cmd.StdStreams()}
}

// Run executes script via the package manager detected in r.Dir. command is
// the script body from the manifest and is only used for display.
//
// Output is not captured; the child writes straight to r.Streams.
func (r *Runner) Run(ctx context.Context, script, command string) error {
	l := log.FromContext(ctx)

	m := pm.Detect(r.Dir)
	l.Debug("detected package manager", "name", m.Name, "dir", r.Dir)

	l.Printf("\n%s\n\n", styles.PrimaryStyle.Render(
		fmt.Sprintf("> Executing: %s (%s)", styles.Bold.Render(script), command)))

	err := cmd.Interactive(ctx, r.Dir, r.Streams, m.Name, m.Args(script)...)
	if err == nil {
		l.Printf("\n%s\n", styles.SuccessStyle.Render(
			fmt.Sprintf("%s Script %s completed successfully", styles.CurrentSymbols().OK, styles.Bold.Render(script))))
		return nil
	}

	if ctx.Err() != nil {
		return fmt.Errorf("%w: %s", ErrInterrupted, script)
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code := exitErr.ExitCode()
		l.Printf("\n%s\n", styles.ErrorStyle.Render(
			fmt.Sprintf("%s Script %s failed with exit code %d", styles.CurrentSymbols().Fail, styles.Bold.Render(script), code)))
		return &ExecutionError{Script: script, Code: code}
	}

	l.Printf("\n%s\n", styles.ErrorStyle.Render(fmt.Sprintf("%s Failed to execute script: %v", styles.CurrentSymbols().Fail, err)))
	return &SpawnError{Manager: m.Name, Err: err}
}
