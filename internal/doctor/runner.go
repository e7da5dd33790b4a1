package doctor

import (
	"context"
	"fmt"
	"time"

	"github.com/raphi011/rpc/internal/cmd"
)

// Runner executes a lookup command and returns its stdout.
type Runner interface {
	Output(ctx context.Context, name string, args ...string) ([]byte, error)
}

// ExecRunner runs lookups as real processes.
type ExecRunner struct{}

// Output implements Runner using cmd.OutputContext.
func (ExecRunner) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	return cmd.OutputContext(ctx, "", name, args...)
}

// lookup runs a single bounded command. Any failure is reported as
// ErrUnavailable so callers can render it as unknown.
func lookup(ctx context.Context, r Runner, timeout time.Duration, name string, args ...string) (string, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	out, err := r.Output(ctx, name, args...)
	if err != nil {
		return string(out), fmt.Errorf("%w: %s: %w", ErrUnavailable, name, err)
	}
	return string(out), nil
}
