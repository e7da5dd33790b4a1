// Package log provides context-aware logging for rpc.
//
// Notices and diagnostics go to stderr so stdout stays free for the
// output of the scripts rpc runs. Notices may carry lipgloss styles; they
// are downsampled to plain text when stderr is not a terminal.
package log

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"charm.land/lipgloss/v2"
)

type ctxKey struct{}

// Logger provides notice output and verbose command logging.
type Logger struct {
	out     io.Writer
	verbose bool
	quiet   bool
}

// New creates a new logger.
// quiet suppresses all output, including verbose command lines.
func New(out io.Writer, verbose, quiet bool) *Logger {
	return &Logger{out: out, verbose: verbose, quiet: quiet}
}

// WithLogger attaches a logger to the context.
func WithLogger(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromContext retrieves the logger from context.
// Returns a no-op logger if none is attached.
func FromContext(ctx context.Context) *Logger {
	if l, ok := ctx.Value(ctxKey{}).(*Logger); ok {
		return l
	}
	return &Logger{out: io.Discard}
}

// Printf writes formatted output.
func (l *Logger) Printf(format string, args ...any) {
	if l.quiet {
		return
	}
	lipgloss.Fprintf(l.out, format, args...)
}

// Println writes a line of output.
func (l *Logger) Println(args ...any) {
	if l.quiet {
		return
	}
	lipgloss.Fprintln(l.out, args...)
}

// Command logs an external command execution and returns a func that
// records its duration once it has finished.
// Only prints when verbose mode is enabled.
func (l *Logger) Command(dir, name string, args ...string) func(time.Duration) {
	if !l.IsVerbose() {
		return func(time.Duration) {}
	}

	line := strings.TrimSpace(name + " " + strings.Join(args, " "))
	if dir != "" {
		fmt.Fprintf(l.out, "[%s] $ %s", dir, line)
	} else {
		fmt.Fprintf(l.out, "$ %s", line)
	}

	return func(d time.Duration) {
		fmt.Fprintf(l.out, " (%s)\n", d.Round(time.Millisecond))
	}
}

// Debug writes a message followed by key=value pairs.
// Only prints when verbose mode is enabled. A trailing key without a
// value is dropped.
func (l *Logger) Debug(msg string, keyvals ...any) {
	if !l.IsVerbose() {
		return
	}

	var sb strings.Builder
	sb.WriteString(msg)
	for i := 0; i+1 < len(keyvals); i += 2 {
		fmt.Fprintf(&sb, " %v=%v", keyvals[i], keyvals[i+1])
	}
	fmt.Fprintln(l.out, sb.String())
}

// IsVerbose returns true if verbose mode is enabled and not silenced by quiet.
func (l *Logger) IsVerbose() bool {
	return l.verbose && !l.quiet
}

// Writer returns the underlying writer.
func (l *Logger) Writer() io.Writer {
	return l.out
}
