package runner

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/raphi011/rpc/internal/cmd"
	"github.com/raphi011/rpc/internal/log"
)

// fakeManager installs an executable called name in a fresh bin directory
// that records its invocation to <cwd>/invocation and exits with code.
func fakeManager(t *testing.T, name, body string) string {
	t.Helper()
	bin := t.TempDir()
	script := "#!/bin/sh\nprintf '%s %s\\n' \"${0##*/}\" \"$*\" > invocation\n" + body + "\n"
	if err := os.WriteFile(filepath.Join(bin, name), []byte(script), 0o755); err != nil {
		t.Fatalf("failed to write fake %s: %v", name, err)
	}
	return bin
}

func newTestRunner(dir string) (*Runner, *bytes.Buffer) {
	var out bytes.Buffer
	return &Runner{
		Dir:     dir,
		Streams: cmd.Streams{In: strings.NewReader(""), Out: &out, Err: &out},
	}, &out
}

func testCtx(logs *bytes.Buffer) context.Context {
	return log.WithLogger(context.Background(), log.New(logs, false, false))
}

func readInvocation(t *testing.T, dir string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, "invocation"))
	if err != nil {
		t.Fatalf("package manager was not invoked: %v", err)
	}
	return strings.TrimSpace(string(data))
}

func TestRun_Success(t *testing.T) {
	bin := fakeManager(t, "npm", "echo building; exit 0")
	t.Setenv("PATH", bin+string(os.PathListSeparator)+os.Getenv("PATH"))

	dir := t.TempDir()
	r, out := newTestRunner(dir)
	var logs bytes.Buffer

	if err := r.Run(testCtx(&logs), "build", "tsc"); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if got := readInvocation(t, dir); got != "npm run build" {
		t.Errorf("invocation = %q, want %q", got, "npm run build")
	}
	if !strings.Contains(out.String(), "building") {
		t.Errorf("child output = %q, want it streamed to Streams.Out", out.String())
	}
	if !strings.Contains(logs.String(), "Executing: build (tsc)") {
		t.Errorf("logs = %q, want executing notice", logs.String())
	}
	if !strings.Contains(logs.String(), "completed successfully") {
		t.Errorf("logs = %q, want success notice", logs.String())
	}
}

func TestRun_NonZeroExit(t *testing.T) {
	bin := fakeManager(t, "npm", "exit 2")
	t.Setenv("PATH", bin+string(os.PathListSeparator)+os.Getenv("PATH"))

	r, _ := newTestRunner(t.TempDir())
	var logs bytes.Buffer

	err := r.Run(testCtx(&logs), "test", "jest")
	if !errors.Is(err, ErrExecutionFailed) {
		t.Fatalf("Run() error = %v, want ErrExecutionFailed", err)
	}
	var execErr *ExecutionError
	if !errors.As(err, &execErr) {
		t.Fatalf("Run() error = %T, want *ExecutionError", err)
	}
	if execErr.Code != 2 {
		t.Errorf("ExecutionError.Code = %d, want 2", execErr.Code)
	}
	if errors.Is(err, ErrSpawnFailed) {
		t.Error("execution failure must not match ErrSpawnFailed")
	}
	if !strings.Contains(logs.String(), "failed with exit code 2") {
		t.Errorf("logs = %q, want failure notice", logs.String())
	}
}

func TestRun_UsesDetectedManager(t *testing.T) {
	tests := []struct {
		name     string
		lockfile string
		manager  string
		want     string
	}{
		{"yarn", "yarn.lock", "yarn", "yarn test"},
		{"pnpm", "pnpm-lock.yaml", "pnpm", "pnpm run test"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bin := fakeManager(t, tt.manager, "exit 0")
			t.Setenv("PATH", bin+string(os.PathListSeparator)+os.Getenv("PATH"))

			dir := t.TempDir()
			if err := os.WriteFile(filepath.Join(dir, tt.lockfile), nil, 0o644); err != nil {
				t.Fatal(err)
			}
			r, _ := newTestRunner(dir)

			if err := r.Run(testCtx(&bytes.Buffer{}), "test", "jest"); err != nil {
				t.Fatalf("Run() error = %v", err)
			}
			if got := readInvocation(t, dir); got != tt.want {
				t.Errorf("invocation = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRun_SpawnFailure(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	r, _ := newTestRunner(t.TempDir())
	var logs bytes.Buffer

	err := r.Run(testCtx(&logs), "build", "tsc")
	if !errors.Is(err, ErrSpawnFailed) {
		t.Fatalf("Run() error = %v, want ErrSpawnFailed", err)
	}
	if errors.Is(err, ErrExecutionFailed) {
		t.Error("spawn failure must not match ErrExecutionFailed")
	}
	var spawnErr *SpawnError
	if !errors.As(err, &spawnErr) || spawnErr.Manager != "npm" {
		t.Errorf("Run() error = %#v, want *SpawnError for npm", err)
	}
}

func TestRun_Interrupted(t *testing.T) {
	bin := fakeManager(t, "npm", "exec sleep 10")
	t.Setenv("PATH", bin+string(os.PathListSeparator)+os.Getenv("PATH"))

	r, _ := newTestRunner(t.TempDir())
	ctx, cancel := context.WithTimeout(testCtx(&bytes.Buffer{}), 200*time.Millisecond)
	defer cancel()

	start := time.Now()
	err := r.Run(ctx, "dev", "vite")
	if !errors.Is(err, ErrInterrupted) {
		t.Fatalf("Run() error = %v, want ErrInterrupted", err)
	}
	if elapsed := time.Since(start); elapsed > 8*time.Second {
		t.Errorf("Run() took %s after interrupt", elapsed)
	}
}

func TestExecutionError_Message(t *testing.T) {
	t.Parallel()

	if got := (&ExecutionError{Script: "build", Code: 3}).Error(); got != `script "build" failed with exit code 3` {
		t.Errorf("Error() = %q", got)
	}
	if got := (&ExecutionError{Script: "build", Code: -1}).Error(); !strings.Contains(got, "without an exit code") {
		t.Errorf("Error() = %q, want mention of missing exit code", got)
	}
}
