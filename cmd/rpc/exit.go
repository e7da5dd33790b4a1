package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"charm.land/lipgloss/v2"

	"github.com/raphi011/rpc/internal/runner"
	"github.com/raphi011/rpc/internal/ui/prompt"
	"github.com/raphi011/rpc/internal/ui/styles"
)

// Exit codes
const (
	exitOK          = 0
	exitError       = 1
	exitInterrupted = 130
)

// errInterrupted marks commands stopped by SIGINT or SIGTERM.
var errInterrupted = errors.New("interrupted")

// exitCode maps a command error to the process exit code.
func exitCode(err error) int {
	if err == nil || errors.Is(err, prompt.ErrCancelled) {
		return exitOK
	}
	if isInterrupt(err) {
		return exitInterrupted
	}

	var execErr *runner.ExecutionError
	if errors.As(err, &execErr) && execErr.Code > 0 {
		return execErr.Code
	}
	return exitError
}

func isInterrupt(err error) bool {
	return errors.Is(err, errInterrupted) ||
		errors.Is(err, runner.ErrInterrupted) ||
		errors.Is(err, prompt.ErrInterrupted) ||
		errors.Is(err, context.Canceled)
}

// handleError prints err (unless it was already reported) and returns the
// exit code.
func handleError(w io.Writer, err error) int {
	code := exitCode(err)

	switch {
	case err == nil:
	case errors.Is(err, prompt.ErrCancelled):
		lipgloss.Fprintln(w, styles.MutedStyle.Render("Cancelled"))
	case isInterrupt(err):
		lipgloss.Fprintln(w, styles.WarningStyle.Render("\nInterrupted"))
	case errors.Is(err, runner.ErrExecutionFailed), errors.Is(err, runner.ErrSpawnFailed):
		// the runner already printed the failure
	default:
		lipgloss.Fprintln(w, styles.ErrorStyle.Render(fmt.Sprintf("Error: %v", err)))
		lipgloss.Fprintln(w, styles.MutedStyle.Render("Run 'rpc -h' for help"))
	}
	return code
}
