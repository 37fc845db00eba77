package shell

import (
	"context"
	"fmt"
	"io"
	"slices"
)

var _ Runner = (*RecordingRunner)(nil)

// Call records a single invocation seen by RecordingRunner.
type Call struct {
	Command Command
	Quiet   bool
}

// RecordingRunner records commands instead of starting processes.
// It backs 'install --dry-run', and tests use it to observe exactly what would be executed.
type RecordingRunner struct {
	// Lookups, when set, receives quiet commands (existence checks) so that a dry run
	// still sees what is really installed.
	Lookups Runner

	// Out, when set, receives a line for every recorded non-quiet command.
	Out io.Writer

	// Available lists executables that lookups should find when Lookups is nil.
	Available []string

	// Fail lists rendered commands (Command.String) that should report failure.
	Fail []string

	// Calls holds every command run, in order.
	Calls []Call
}

// Run records cmd. Without a Lookups delegate, 'which'/'where' commands succeed when their target
// is Available. Every other command succeeds unless listed in Fail.
func (r *RecordingRunner) Run(ctx context.Context, cmd Command, opt ...RunOption) bool {
	quiet := IsQuiet(opt...)
	r.Calls = append(r.Calls, Call{Command: cmd, Quiet: quiet})

	if quiet && r.Lookups != nil {
		return r.Lookups.Run(ctx, cmd, opt...)
	}

	if argv := cmd.Argv(); !cmd.IsScript() && len(argv) == 2 && (argv[0] == "which" || argv[0] == "where") {
		return slices.Contains(r.Available, argv[1])
	}

	if !quiet && r.Out != nil {
		_, _ = fmt.Fprintf(r.Out, "[dry-run] %s\n", cmd)
	}

	return !slices.Contains(r.Fail, cmd.String())
}

// Executed returns the recorded commands which were not quiet lookups.
func (r *RecordingRunner) Executed() []Command {
	var out []Command
	for _, c := range r.Calls {
		if !c.Quiet {
			out = append(out, c.Command)
		}
	}

	return out
}

// LookedUp returns the rendered quiet commands that were run.
func (r *RecordingRunner) LookedUp() []string {
	var out []string
	for _, c := range r.Calls {
		if c.Quiet {
			out = append(out, c.Command.String())
		}
	}

	return out
}
