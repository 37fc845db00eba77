package shell

import (
	"context"
	"strings"

	"github.com/devboot-cli/devboot/internal/platform"
)

// Checker reports whether an executable resolves on the search path.
// Lookups go through the Runner so they honour the same execution rules as installs.
type Checker struct {
	Platform platform.Platform
	Runner   Runner
}

// LookupCommand builds the platform's search path lookup for name.
func LookupCommand(p platform.Platform, name string) Command {
	return Exec(p.LookupCommand(), name)
}

// Exists runs the lookup silently and reports whether it succeeded.
func (c Checker) Exists(ctx context.Context, name string) bool {
	name = strings.TrimSpace(name)
	if name == "" {
		return false
	}

	return c.Runner.Run(ctx, LookupCommand(c.Platform, name), Quiet())
}
