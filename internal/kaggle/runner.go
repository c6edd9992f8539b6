// Package kaggle wraps the kaggle command-line tool. All communication
// with the remote notebook-hosting platform happens through this
// package; the CLI's own transport and authentication are opaque here.
package kaggle

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// Result represents the outcome of a single CLI invocation.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
	Duration time.Duration
}

// Runner executes the kaggle binary. It exists as an interface so tests
// can observe or suppress subprocess execution.
type Runner interface {
	Run(ctx context.Context, env []string, args ...string) (*Result, error)
}

// execRunner runs the kaggle binary as a subprocess with a per-invocation
// timeout.
type execRunner struct {
	binary  string
	timeout time.Duration
}

// NewExecRunner creates a Runner that invokes the given binary with the
// specified timeout per invocation.
func NewExecRunner(binary string, timeout time.Duration) Runner {
	return &execRunner{
		binary:  binary,
		timeout: timeout,
	}
}

// Run executes the binary with the given arguments, capturing stdout and
// stderr separately. A non-zero exit code is reported through the Result,
// not as an error; only failure to execute at all returns an error.
func (r *execRunner) Run(ctx context.Context, env []string, args ...string) (*Result, error) {
	start := time.Now()

	timeoutCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	cmd := exec.CommandContext(timeoutCtx, r.binary, args...)
	if env != nil {
		cmd.Env = env
	}

	var stdoutBuf, stderrBuf strings.Builder
	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf

	err := cmd.Run()
	exitCode := 0

	if err != nil {
		if timeoutCtx.Err() == context.DeadlineExceeded {
			return nil, fmt.Errorf("command timed out after %v", r.timeout)
		}
		if exitError, ok := err.(*exec.ExitError); ok {
			// Command executed but returned non-zero exit code
			exitCode = exitError.ExitCode()
		} else {
			// Command failed to execute
			return nil, fmt.Errorf("failed to execute %s: %w", r.binary, err)
		}
	}

	return &Result{
		Stdout:   stdoutBuf.String(),
		Stderr:   stderrBuf.String(),
		ExitCode: exitCode,
		Duration: time.Since(start),
	}, nil
}

// FindBinary searches for a binary in the system PATH.
func FindBinary(name string) (string, error) {
	path, err := exec.LookPath(name)
	if err != nil {
		return "", fmt.Errorf("binary %s not found in PATH: %w", name, err)
	}
	return path, nil
}
