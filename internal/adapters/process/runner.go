package process

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"go.faultline.dev/faultline/internal/core/domain"
	"go.faultline.dev/faultline/internal/core/ports"
	"go.trai.ch/zerr"
)

// Runner executes validated process activities.
//
// Each call spawns exactly one child process with its own argument vector
// and output buffers, so concurrent calls need no locking. The call blocks
// until the child exits or the provider's timeout elapses.
//
// OS-level spawn failures (for example the executable disappearing between
// validation and execution) surface zerr-wrapped around the underlying
// os/exec error, distinct from both domain.ErrInvalidActivity and
// domain.ErrFailedActivity.
type Runner struct {
	subst  ports.Substituter
	logger ports.Logger
	env    []string
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithEnvironment fixes the environment snapshot passed to child processes.
// Without it, the current process environment is snapshotted at each spawn.
func WithEnvironment(env []string) RunnerOption {
	return func(r *Runner) {
		r.env = env
	}
}

// NewRunner creates a new Runner.
func NewRunner(subst ports.Substituter, logger ports.Logger, opts ...RunnerOption) *Runner {
	r := &Runner{
		subst:  subst,
		logger: logger,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes the activity's process with substituted arguments and
// classifies the result against the expected exit code (0 when unset).
//
// With a timeout set on the provider, the deadline is measured as wall-clock
// time from spawn; when it elapses the child is killed and the run fails
// with domain.ErrFailedActivity, returning no partial output. Without one
// the call may block indefinitely. On an exit-code mismatch the returned
// error carries the actual code, the expected code and the full captured
// stdout and stderr.
func (r *Runner) Run(ctx context.Context, activity *domain.Activity, cfg domain.Configuration, secrets domain.Secrets) (domain.Outcome, error) {
	expected := activity.ExpectedCode()
	provider := activity.Provider

	args := provider.Arguments
	if len(cfg) > 0 || len(secrets) > 0 {
		substituted, err := r.subst.Substitute(args, cfg, secrets)
		if err != nil {
			return domain.Outcome{}, zerr.Wrap(err, "argument substitution failed")
		}
		args = substituted
	}

	resolved, err := resolvePath(provider.Path)
	if err != nil {
		return domain.Outcome{}, zerr.With(zerr.Wrap(err, "cannot resolve process path"), "path", provider.Path)
	}

	runCtx := ctx
	if provider.Timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, provider.Timeout)
		defer cancel()
	}

	env := r.env
	if env == nil {
		env = os.Environ()
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(runCtx, resolved, flatten(args)...) //nolint:gosec // activity-declared executable
	cmd.Env = env
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	r.logger.Info("running: " + strings.Join(cmd.Args, " "))

	runErr := cmd.Run()

	if provider.Timeout > 0 && errors.Is(runCtx.Err(), context.DeadlineExceeded) && ctx.Err() == nil {
		return domain.Outcome{}, zerr.With(
			zerr.Wrap(domain.ErrFailedActivity, "process activity took too long to complete"),
			"timeout", provider.Timeout.String())
	}
	if err := ctx.Err(); err != nil {
		return domain.Outcome{}, zerr.Wrap(err, "process run canceled")
	}

	exitCode := 0
	if runErr != nil {
		var exitErr *exec.ExitError
		if !errors.As(runErr, &exitErr) {
			return domain.Outcome{}, zerr.With(zerr.Wrap(runErr, "failed to spawn process"), "path", resolved)
		}
		exitCode = exitErr.ExitCode()
	}

	if exitCode != expected {
		return domain.Outcome{}, zerr.With(zerr.Wrap(domain.ErrFailedActivity, fmt.Sprintf(
			"process activity failed with return code %d (expected %d)\nSTDOUT: %s\nSTDERR: %s",
			exitCode, expected, stdout.String(), stderr.String())),
			"exit_code", exitCode)
	}

	return domain.Outcome{
		ExitCode: exitCode,
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
	}, nil
}

// flatten turns the ordered argument pairs into discrete argv tokens: each
// flag token followed by its value token, in declaration order. A nil value
// omits the pair entirely, flag included, so a null never leaves a dangling
// flag on the command line; an empty value yields a bare flag, and empty
// tokens are never emitted. No shell is involved at any point.
func flatten(args domain.Arguments) []string {
	argv := make([]string, 0, len(args)*2)
	for _, a := range args {
		if a.Value == nil {
			continue
		}
		if a.Flag != "" {
			argv = append(argv, a.Flag)
		}
		if *a.Value != "" {
			argv = append(argv, *a.Value)
		}
	}
	return argv
}
