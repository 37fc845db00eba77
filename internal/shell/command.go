// Package shell runs external commands on behalf of the installer.
//
// A Command is either an argument vector, executed directly, or a script which needs
// interpretation by the platform shell (pipes, '&&' chains, variable expansion).
// Scripts are only ever built from the compiled-in catalog and validated settings values:
// passing unsanitized user input into a Script would allow shell injection.
package shell

import (
	"strconv"
	"strings"
)

// Command describes a single external invocation.
// The zero value is an empty command which always fails to run.
type Command struct {
	argv   []string
	script string
}

// Exec returns a Command that is executed directly, without a shell.
func Exec(name string, args ...string) Command {
	argv := make([]string, 0, len(args)+1)
	argv = append(argv, name)
	argv = append(argv, args...)

	return Command{argv: argv}
}

// Script returns a Command that requires interpretation by the platform shell.
func Script(script string) Command {
	return Command{script: strings.TrimSpace(script)}
}

// IsScript reports whether the command must be run through a shell.
func (c Command) IsScript() bool {
	return c.script != ""
}

// IsZero reports whether the command is empty.
func (c Command) IsZero() bool {
	return c.script == "" && len(c.argv) == 0
}

// Argv returns a copy of the argument vector of a directly executed command.
func (c Command) Argv() []string {
	out := make([]string, len(c.argv))
	copy(out, c.argv)

	return out
}

// Text returns the script of a shell command.
func (c Command) Text() string {
	return c.script
}

// String renders the command the way a user would type it.
func (c Command) String() string {
	if c.IsScript() {
		return c.script
	}

	parts := make([]string, len(c.argv))
	for i, a := range c.argv {
		if a == "" || strings.ContainsAny(a, " \t\"'") {
			a = strconv.Quote(a)
		}
		parts[i] = a
	}

	return strings.Join(parts, " ")
}
