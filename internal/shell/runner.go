package shell

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"time"

	"github.com/hashicorp/go-hclog"

	"github.com/devboot-cli/devboot/internal/platform"
)

// DefaultPOSIXShell is the shell used to interpret scripts on non-Windows platforms.
// Install scripts rely on bash features (e.g. sourcing nvm.sh), so plain 'sh' is not used.
const DefaultPOSIXShell = "bash"

// Runner executes commands and reports success as a boolean.
// Implementations must never panic or abort on a failing command.
type Runner interface {
	// Run executes the command and returns true iff it exited with status zero.
	Run(ctx context.Context, cmd Command, opt ...RunOption) bool
}

// RunOption configures a single Run call.
type RunOption func(*runOptions)

type runOptions struct {
	quiet bool
}

// Quiet discards the command's own output instead of streaming it to the terminal.
func Quiet() RunOption {
	return func(o *runOptions) {
		o.quiet = true
	}
}

// IsQuiet reports whether the options include Quiet.
// It is intended for Runner implementations other than ExecRunner (e.g. test fakes).
func IsQuiet(opt ...RunOption) bool {
	return newRunOptions(opt...).quiet
}

func newRunOptions(opt ...RunOption) runOptions {
	var o runOptions
	for _, fn := range opt {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

var _ Runner = (*ExecRunner)(nil)

// ExecRunner runs commands as child processes of devboot.
type ExecRunner struct {
	logger   hclog.Logger
	platform platform.Platform
	shell    string
	timeout  time.Duration
	stdout   io.Writer
	stderr   io.Writer
}

// ExecRunnerOption defines a functional option for configuring an ExecRunner.
type ExecRunnerOption func(*ExecRunner) error

// WithShell sets the POSIX shell used to interpret scripts. It is ignored on Windows.
func WithShell(name string) ExecRunnerOption {
	return func(r *ExecRunner) error {
		if name == "" {
			return fmt.Errorf("shell cannot be empty")
		}
		r.shell = name
		return nil
	}
}

// WithTimeout limits how long any single command may run. Zero means no limit.
func WithTimeout(timeout time.Duration) ExecRunnerOption {
	return func(r *ExecRunner) error {
		if timeout < 0 {
			return fmt.Errorf("timeout cannot be negative, got %v", timeout)
		}
		r.timeout = timeout
		return nil
	}
}

// WithOutput sets where non-quiet commands stream their stdout and stderr.
func WithOutput(stdout io.Writer, stderr io.Writer) ExecRunnerOption {
	return func(r *ExecRunner) error {
		if stdout == nil || stderr == nil {
			return fmt.Errorf("output writers cannot be nil")
		}
		r.stdout = stdout
		r.stderr = stderr
		return nil
	}
}

// NewExecRunner returns an ExecRunner for the given platform.
func NewExecRunner(logger hclog.Logger, p platform.Platform, opt ...ExecRunnerOption) (*ExecRunner, error) {
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}

	r := &ExecRunner{
		logger:   logger.Named("runner"),
		platform: p,
		shell:    DefaultPOSIXShell,
		stdout:   os.Stdout,
		stderr:   os.Stderr,
	}

	for _, o := range opt {
		if o == nil {
			continue
		}
		if err := o(r); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// Run executes the command, blocking until it exits.
// Failures are logged with the command and returned as false.
func (r *ExecRunner) Run(ctx context.Context, cmd Command, opt ...RunOption) bool {
	opts := newRunOptions(opt...)

	argv, err := r.argv(cmd)
	if err != nil {
		r.logger.Error("Cannot run command", "command", cmd.String(), "error", err)
		return false
	}

	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	c := exec.CommandContext(ctx, argv[0], argv[1:]...)
	c.Stdin = os.Stdin
	if opts.quiet {
		c.Stdin = nil
		c.Stdout = io.Discard
		c.Stderr = io.Discard
	} else {
		c.Stdout = r.stdout
		c.Stderr = r.stderr
	}

	r.logger.Debug("Running command", "command", cmd.String(), "quiet", opts.quiet)

	if err := c.Run(); err != nil {
		// Lookups are expected to fail when a binary is missing, keep them out of the error log.
		if opts.quiet {
			r.logger.Debug("Command failed", "command", cmd.String(), "error", err)
		} else {
			r.logger.Error("Command failed", "command", cmd.String(), "error", err)
		}
		return false
	}

	return true
}

// argv resolves the process arguments, wrapping scripts in the platform shell.
func (r *ExecRunner) argv(cmd Command) ([]string, error) {
	switch {
	case cmd.IsZero():
		return nil, fmt.Errorf("empty command")
	case !cmd.IsScript():
		return cmd.Argv(), nil
	case r.platform == platform.Windows:
		return []string{"powershell", "-NoProfile", "-NonInteractive", "-Command", cmd.Text()}, nil
	default:
		return []string{r.shell, "-c", cmd.Text()}, nil
	}
}
