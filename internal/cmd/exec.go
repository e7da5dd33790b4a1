package cmd

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/raphi011/rpc/internal/log"
)

// InterruptGrace is how long an interactive child gets to exit after being
// interrupted before it is killed.
var InterruptGrace = 5 * time.Second

// Streams are the standard streams handed to an interactive child.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// StdStreams returns the process's own terminal streams.
func StdStreams() Streams {
	return Streams{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}
}

// RunContext executes a command and returns stderr in the error message if it fails.
func RunContext(ctx context.Context, dir, name string, args ...string) error {
	_, err := run(ctx, dir, name, args, false)
	return err
}

// OutputContext executes a command and returns stdout, with stderr in the error if it fails.
func OutputContext(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	return run(ctx, dir, name, args, true)
}

func run(ctx context.Context, dir, name string, args []string, captureStdout bool) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c := exec.CommandContext(ctx, name, args...)
	c.Dir = dir

	var stdout, stderr bytes.Buffer
	c.Stderr = &stderr
	if captureStdout {
		c.Stdout = &stdout
	}

	done := log.FromContext(ctx).Command(dir, name, args...)
	start := time.Now()
	err := c.Run()
	done(time.Since(start))

	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		if errMsg := strings.TrimSpace(stderr.String()); errMsg != "" {
			return nil, fmt.Errorf("%s", errMsg)
		}
		return nil, err
	}
	return stdout.Bytes(), nil
}

// Interactive executes a command with the given streams attached directly,
// without buffering, and waits for it to exit.
//
// The returned error is an *exec.ExitError when the child ran and exited
// unsuccessfully, and any other error when it could not be started. If ctx
// was cancelled the child is interrupted and ctx.Err() is returned.
func Interactive(ctx context.Context, dir string, s Streams, name string, args ...string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	c := exec.CommandContext(ctx, name, args...)
	c.Dir = dir
	c.Stdin = s.In
	c.Stdout = s.Out
	c.Stderr = s.Err
	c.Cancel = func() error {
		return c.Process.Signal(os.Interrupt)
	}
	c.WaitDelay = InterruptGrace

	done := log.FromContext(ctx).Command(dir, name, args...)
	start := time.Now()
	err := c.Run()
	done(time.Since(start))

	if ctxErr := ctx.Err(); ctxErr != nil && c.ProcessState != nil {
		return ctxErr
	}
	return err
}
