// Package catalog holds the static set of items devboot knows how to install.
//
// There are two disjoint kinds of item: runtimes (JavaScript runtimes and package managers),
// installed through per-platform recipes, and MCP servers, installed by a dedicated routine.
// Adding a runtime or platform is a data change to the recipe tables, not new branching code.
package catalog

import (
	"context"
	"fmt"

	"github.com/devboot-cli/devboot/internal/platform"
	"github.com/devboot-cli/devboot/internal/shell"
)

// Kind classifies a requested item name.
type Kind string

const (
	KindRuntime Kind = "runtime"
	KindServer  Kind = "mcp"
	KindUnknown Kind = "unknown"
)

// Recipe describes how to detect and install a runtime on one platform.
type Recipe struct {
	// Probe is the executable whose presence means the runtime is already installed.
	// It is not necessarily the runtime's own name (e.g. node on Windows is managed by fnm).
	Probe string

	// Preferred is an optional package manager command, used instead of Command when the manager is present.
	Preferred *Alternative

	// Command is the vendor's installer.
	Command shell.Command
}

// Alternative is an install command provided by a package manager.
type Alternative struct {
	// Manager is the package manager executable (e.g. brew).
	Manager string

	// Command installs the runtime through Manager.
	Command shell.Command
}

// Runtime is an installable JavaScript runtime or package manager.
type Runtime struct {
	Name        string
	Description string
	Recipes     map[platform.Platform]Recipe
}

// Recipe returns the runtime's recipe for p.
// A missing recipe means the runtime cannot be installed on that platform.
func (r Runtime) Recipe(p platform.Platform) (Recipe, bool) {
	recipe, ok := r.Recipes[p]
	return recipe, ok
}

// InstallFunc installs an MCP server and reports success.
type InstallFunc func(ctx context.Context, runner shell.Runner, p platform.Platform) bool

// Routine is how an MCP server gets installed: either Implemented or Stubbed.
type Routine interface {
	routine()
}

// Implemented is a Routine with a working install function.
type Implemented struct {
	Install InstallFunc
}

// Stubbed is a Routine for a server which is declared in the catalog but cannot be installed yet.
type Stubbed struct {
	Reason string
}

func (Implemented) routine() {}
func (Stubbed) routine()     {}

// Server is an MCP server integration which can be registered with Claude Desktop.
type Server struct {
	Name        string
	Description string
	Routine     Routine
}

// Catalog is an immutable, ordered set of runtimes and MCP servers.
type Catalog struct {
	runtimes []Runtime
	servers  []Server
}

// NewCatalog builds a catalog, rejecting empty, duplicate, or ambiguous names.
func NewCatalog(runtimes []Runtime, servers []Server) (*Catalog, error) {
	seen := make(map[string]Kind, len(runtimes)+len(servers))

	check := func(name string, kind Kind) error {
		if name == "" {
			return fmt.Errorf("%s name cannot be empty", kind)
		}
		if prev, ok := seen[name]; ok {
			return fmt.Errorf("duplicate catalog name '%s' (%s and %s)", name, prev, kind)
		}
		seen[name] = kind
		return nil
	}

	for _, r := range runtimes {
		if err := check(r.Name, KindRuntime); err != nil {
			return nil, err
		}
	}

	for _, s := range servers {
		if err := check(s.Name, KindServer); err != nil {
			return nil, err
		}
		if s.Routine == nil {
			return nil, fmt.Errorf("mcp server '%s' has no install routine", s.Name)
		}
	}

	return &Catalog{
		runtimes: append([]Runtime(nil), runtimes...),
		servers:  append([]Server(nil), servers...),
	}, nil
}

// Runtimes returns the runtimes in catalog order.
func (c *Catalog) Runtimes() []Runtime {
	return append([]Runtime(nil), c.runtimes...)
}

// Servers returns the MCP servers in catalog order.
func (c *Catalog) Servers() []Server {
	return append([]Server(nil), c.servers...)
}

// RuntimeNames returns the names of all runtimes in catalog order.
func (c *Catalog) RuntimeNames() []string {
	names := make([]string, len(c.runtimes))
	for i, r := range c.runtimes {
		names[i] = r.Name
	}

	return names
}

// Runtime looks up a runtime by exact name.
func (c *Catalog) Runtime(name string) (Runtime, bool) {
	for _, r := range c.runtimes {
		if r.Name == name {
			return r, true
		}
	}

	return Runtime{}, false
}

// Server looks up an MCP server by exact name.
func (c *Catalog) Server(name string) (Server, bool) {
	for _, s := range c.servers {
		if s.Name == name {
			return s, true
		}
	}

	return Server{}, false
}

// Classify reports which kind of item name refers to. Matching is case-sensitive.
func (c *Catalog) Classify(name string) Kind {
	if _, ok := c.Runtime(name); ok {
		return KindRuntime
	}
	if _, ok := c.Server(name); ok {
		return KindServer
	}

	return KindUnknown
}
