package wkhtml

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"
)

// writeStub creates an executable shell script standing in for a renderer.
func writeStub(t *testing.T, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("test uses a shell script stub")
	}
	path := filepath.Join(t.TempDir(), "stub.sh")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0o755); err != nil { // #nosec G306 -- test stub must be executable
		t.Fatalf("writing stub: %v", err)
	}
	return path
}

func TestExecRunner_LaunchFailure(t *testing.T) {
	runner := &ExecRunner{}
	_, err := runner.Run(context.Background(), filepath.Join(t.TempDir(), "no-such-binary"))
	if !errors.Is(err, ErrProcessLaunch) {
		t.Fatalf("expected ErrProcessLaunch, got %v", err)
	}
}

func TestExecRunner_NonZeroExitIsNotAnError(t *testing.T) {
	stub := writeStub(t, "echo boom >&2\nexit 3\n")

	runner := &ExecRunner{}
	res, err := runner.Run(context.Background(), stub)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.ExitCode != 3 {
		t.Errorf("expected exit code 3, got %d", res.ExitCode)
	}
	if !strings.Contains(res.Stderr, "boom") {
		t.Errorf("expected captured stderr, got %q", res.Stderr)
	}
}

// Arguments must arrive as discrete argv entries: a value full of shell
// metacharacters is received by the child as exactly one argument.
func TestExecRunner_NoShellInterpretation(t *testing.T) {
	stub := writeStub(t, `printf '%s' "$1" > "$2"`+"\n")

	hostile := `a" ; echo pwned ; "b`
	outFile := filepath.Join(t.TempDir(), "seen-arg")

	runner := &ExecRunner{}
	if _, err := runner.Run(context.Background(), stub, hostile, outFile); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	seen, err := os.ReadFile(outFile)
	if err != nil {
		t.Fatalf("reading stub output: %v", err)
	}
	if string(seen) != hostile {
		t.Errorf("child saw %q, expected %q", seen, hostile)
	}
}

func TestExecRunner_ContextCancellationKillsProcess(t *testing.T) {
	stub := writeStub(t, "sleep 30\n")

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	runner := &ExecRunner{}
	_, err := runner.Run(ctx, stub)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected context.DeadlineExceeded, got %v", err)
	}
	if elapsed := time.Since(start); elapsed > 5*time.Second {
		t.Errorf("process was not killed promptly, took %v", elapsed)
	}
}
