package wkhtml

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"

	"github.com/alnah/go-wkhtml/internal/process"
)

// RunResult carries diagnostics from one renderer invocation. A non-zero
// exit code is not a failure by itself; conversion success is judged by
// inspecting the output file afterwards. The captured stderr and exit
// code only enrich error messages.
type RunResult struct {
	Stderr   string
	ExitCode int
}

// CommandRunner abstracts process execution so tests can substitute a
// scripted fake instead of spawning real renderers. Run blocks the
// calling goroutine until the process terminates or ctx is done.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) (RunResult, error)
}

// Compile-time interface implementation check.
var _ CommandRunner = (*ExecRunner)(nil)

// ExecRunner implements CommandRunner using os/exec. Arguments are passed
// as discrete argv entries with no shell in between, so option values and
// paths containing quotes or metacharacters cannot be reinterpreted.
type ExecRunner struct{}

// Run launches the binary and blocks until it exits. Stdout is discarded;
// stderr is captured into the result. Returns ErrProcessLaunch if the
// binary cannot be found or started. On context cancellation the whole
// process group is killed and ctx.Err() is returned.
func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) (RunResult, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	setProcAttr(cmd)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	cmd.Cancel = func() error {
		if cmd.Process != nil {
			process.KillProcessGroup(cmd.Process.Pid)
		}
		return cmd.Process.Kill()
	}

	if err := cmd.Start(); err != nil {
		return RunResult{ExitCode: -1}, fmt.Errorf("%w: %q: %v", ErrProcessLaunch, name, err)
	}

	waitErr := cmd.Wait()
	res := RunResult{Stderr: stderr.String(), ExitCode: cmd.ProcessState.ExitCode()}

	if ctxErr := ctx.Err(); ctxErr != nil {
		return res, ctxErr
	}

	var exitErr *exec.ExitError
	if waitErr != nil && !errors.As(waitErr, &exitErr) {
		return res, fmt.Errorf("waiting for %q: %w", name, waitErr)
	}

	return res, nil
}
