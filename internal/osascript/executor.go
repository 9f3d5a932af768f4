// Package osascript runs AppleScript programs through the host's osascript
// executable.
//
// The Executor models the host as a stateless command runner: one script in,
// one Result out, one child process per call. It never retries; automation
// failures are usually semantic ("note not found"), not transient.
package osascript

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
	"time"
)

const (
	// DefaultCommand is the host executable looked up on PATH.
	DefaultCommand = "osascript"

	// DefaultTimeout bounds a single invocation.
	DefaultTimeout = 30 * time.Second

	// FailurePrefix marks host-process failures. In-script failures use
	// the uppercase "ERROR: " sentinel on the success channel instead.
	FailurePrefix = "Error: "

	// waitDelay caps how long Wait blocks on output pipes held open by
	// grandchildren after the child has been killed.
	waitDelay = 2 * time.Second
)

// Status tags a Result.
type Status int

const (
	StatusSuccess Status = iota
	StatusFailure
)

func (s Status) String() string {
	if s == StatusSuccess {
		return "success"
	}
	return "failure"
}

// Result is the outcome of one invocation: either Success with trimmed
// stdout, or Failure with a diagnostic.
type Result struct {
	Status Status
	// Output is stdout on success and the diagnostic on failure.
	Output string
}

// Success builds a successful Result.
func Success(output string) Result {
	return Result{Status: StatusSuccess, Output: output}
}

// Failure builds a failed Result. The diagnostic is prefixed with
// FailurePrefix.
func Failure(diagnostic string) Result {
	return Result{Status: StatusFailure, Output: FailurePrefix + diagnostic}
}

// OK reports whether the host process exited cleanly.
func (r Result) OK() bool { return r.Status == StatusSuccess }

// Runner executes a script. Implementations must not retain the script.
type Runner interface {
	Run(ctx context.Context, script string) Result
}

// RunnerFunc adapts a function to Runner.
type RunnerFunc func(ctx context.Context, script string) Result

// Run calls f.
func (f RunnerFunc) Run(ctx context.Context, script string) Result { return f(ctx, script) }

// Option configures an Executor.
type Option func(*Executor)

// WithCommand overrides the host executable.
func WithCommand(command string) Option {
	return func(e *Executor) {
		if command != "" {
			e.command = command
		}
	}
}

// WithTimeout overrides the per-call wall-clock bound.
func WithTimeout(d time.Duration) Option {
	return func(e *Executor) {
		if d > 0 {
			e.timeout = d
		}
	}
}

// WithLogger sets the logger used for process diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(e *Executor) {
		if l != nil {
			e.logger = l
		}
	}
}

// Executor is the osascript-backed Runner.
type Executor struct {
	command string
	timeout time.Duration
	logger  *slog.Logger
}

// New creates an Executor with DefaultCommand and DefaultTimeout unless
// overridden.
func New(opts ...Option) *Executor {
	e := &Executor{
		command: DefaultCommand,
		timeout: DefaultTimeout,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Command returns the host executable this Executor invokes.
func (e *Executor) Command() string { return e.command }

// Timeout returns the per-call bound.
func (e *Executor) Timeout() time.Duration { return e.timeout }

// Run invokes the host with the script as its single payload argument.
// No stdin is supplied. When the timeout fires (or ctx is cancelled) the
// child's whole process group is killed before Run returns.
func (e *Executor) Run(ctx context.Context, script string) Result {
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, e.command, "-e", script)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.WaitDelay = waitDelay
	configureProcess(cmd)

	start := time.Now()
	err := cmd.Run()
	elapsed := time.Since(start)

	if err != nil {
		switch ctxErr := ctx.Err(); {
		case errors.Is(ctxErr, context.DeadlineExceeded):
			e.logger.Warn("osascript timed out", "command", e.command, "timeout", e.timeout)
			return Failure(fmt.Sprintf("execution timed out after %s", e.timeout))
		case errors.Is(ctxErr, context.Canceled):
			return Failure("execution cancelled")
		}

		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			diag := strings.TrimSpace(stderr.String())
			if diag == "" {
				diag = strings.TrimSpace(stdout.String())
			}
			if diag == "" {
				diag = exitErr.Error()
			}
			e.logger.Debug("osascript exited non-zero",
				"command", e.command, "exit_code", exitErr.ExitCode(), "elapsed", elapsed)
			return Failure(diag)
		}

		e.logger.Error("osascript could not start", "command", e.command, "error", err)
		return Failure(err.Error())
	}

	return Success(strings.TrimSpace(stdout.String()))
}
