// Package installer resolves requested items against the catalog and dispatches their installs.
package installer

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/devboot-cli/devboot/internal/catalog"
	"github.com/devboot-cli/devboot/internal/errors"
	"github.com/devboot-cli/devboot/internal/platform"
	"github.com/devboot-cli/devboot/internal/shell"
)

// Installer installs catalog items on a single platform.
// Items are processed one at a time and no failure stops a batch.
type Installer struct {
	logger   hclog.Logger
	platform platform.Platform
	runner   shell.Runner
	checker  shell.Checker
	catalog  *catalog.Catalog
	out      io.Writer
	notices  Notices
}

// Notices are the progress messages written while installing.
// Each is a format string taking the item name; Unsupported also takes the platform.
type Notices struct {
	Unknown          string
	Unsupported      string
	AlreadyInstalled string
	Installing       string
	NotImplemented   string
}

// DefaultNotices returns the English notices.
func DefaultNotices() Notices {
	return Notices{
		Unknown:          "Unknown item: %s",
		Unsupported:      "%s cannot be installed on %s",
		AlreadyInstalled: "%s is already installed",
		Installing:       "Installing %s...",
		NotImplemented:   "%s installation is not implemented yet",
	}
}

// Validate checks that every notice has the expected number of %s verbs.
func (n Notices) Validate() error {
	for _, f := range []struct {
		name   string
		format string
		verbs  int
	}{
		{"unknown", n.Unknown, 1},
		{"unsupported", n.Unsupported, 2},
		{"already installed", n.AlreadyInstalled, 1},
		{"installing", n.Installing, 1},
		{"not implemented", n.NotImplemented, 1},
	} {
		if got := strings.Count(f.format, "%s"); got != f.verbs || strings.Count(f.format, "%") != f.verbs {
			return fmt.Errorf("%s notice must contain exactly %d %%s verb(s): %q", f.name, f.verbs, f.format)
		}
	}

	return nil
}

// WithNotices replaces the progress messages, e.g. with a translation.
func WithNotices(n Notices) Option {
	return func(i *Installer) error {
		if err := n.Validate(); err != nil {
			return err
		}
		i.notices = n
		return nil
	}
}

// Option configures an Installer.
type Option func(*Installer) error

// WithOutput sets where progress notices are written. The default discards them.
func WithOutput(w io.Writer) Option {
	return func(i *Installer) error {
		if w == nil {
			return fmt.Errorf("output writer cannot be nil")
		}
		i.out = w
		return nil
	}
}

// NewInstaller returns an Installer which runs commands through runner.
// Existence checks go through the same runner.
func NewInstaller(
	logger hclog.Logger,
	p platform.Platform,
	runner shell.Runner,
	cat *catalog.Catalog,
	opt ...Option,
) (*Installer, error) {
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}
	if runner == nil {
		return nil, fmt.Errorf("runner cannot be nil")
	}
	if cat == nil {
		return nil, fmt.Errorf("catalog cannot be nil")
	}

	i := &Installer{
		logger:   logger.Named("installer"),
		platform: p,
		runner:   runner,
		checker:  shell.Checker{Platform: p, Runner: runner},
		catalog:  cat,
		out:      io.Discard,
		notices:  DefaultNotices(),
	}

	for _, o := range opt {
		if o == nil {
			continue
		}
		if err := o(i); err != nil {
			return nil, err
		}
	}

	return i, nil
}

// InstallAll installs every name in order and returns one entry per distinct name.
// A repeated name keeps its first position and takes the outcome of its last attempt.
func (i *Installer) InstallAll(ctx context.Context, names []string) *Results {
	results := NewResults()
	for _, name := range names {
		results.Set(name, i.Install(ctx, name))
	}

	return results
}

// Install resolves name and installs it if needed.
func (i *Installer) Install(ctx context.Context, name string) Outcome {
	switch i.catalog.Classify(name) {
	case catalog.KindRuntime:
		rt, _ := i.catalog.Runtime(name)
		return i.installRuntime(ctx, rt)
	case catalog.KindServer:
		s, _ := i.catalog.Server(name)
		return i.installServer(ctx, s)
	default:
		i.logger.Warn("Skipping item", "name", name, "error", errors.ErrUnknownTarget)
		i.notify(i.notices.Unknown, name)
		return OutcomeUnknown
	}
}

func (i *Installer) installRuntime(ctx context.Context, rt catalog.Runtime) Outcome {
	recipe, ok := rt.Recipe(i.platform)
	if !ok {
		i.logger.Error(
			"No install command",
			"name", rt.Name,
			"platform", i.platform,
			"error", errors.ErrUnsupportedPlatform,
		)
		i.notify(i.notices.Unsupported, rt.Name, i.platform)
		return OutcomeFailed
	}

	if i.checker.Exists(ctx, recipe.Probe) {
		i.logger.Debug("Already installed", "name", rt.Name, "probe", recipe.Probe)
		i.notify(i.notices.AlreadyInstalled, rt.Name)
		return OutcomeAlreadyPresent
	}

	cmd := recipe.Command
	if pref := recipe.Preferred; pref != nil && i.checker.Exists(ctx, pref.Manager) {
		i.logger.Debug("Using package manager", "name", rt.Name, "manager", pref.Manager)
		cmd = pref.Command
	}

	i.notify(i.notices.Installing, rt.Name)
	if !i.runner.Run(ctx, cmd) {
		i.logger.Error("Install failed", "name", rt.Name, "error", errors.ErrCommandFailed)
		return OutcomeFailed
	}

	return OutcomeSucceeded
}

func (i *Installer) installServer(ctx context.Context, s catalog.Server) Outcome {
	switch r := s.Routine.(type) {
	case catalog.Implemented:
		i.notify(i.notices.Installing, s.Name)
		if r.Install == nil || !r.Install(ctx, i.runner, i.platform) {
			i.logger.Error("Install failed", "name", s.Name, "error", errors.ErrCommandFailed)
			return OutcomeFailed
		}
		return OutcomeSucceeded
	case catalog.Stubbed:
		i.logger.Warn("Skipping MCP server", "name", s.Name, "reason", r.Reason, "error", errors.ErrNotImplemented)
		i.notify(i.notices.NotImplemented, s.Name)
		return OutcomeFailed
	default:
		i.logger.Error("Unsupported install routine", "name", s.Name, "type", fmt.Sprintf("%T", r))
		return OutcomeFailed
	}
}

func (i *Installer) notify(format string, args ...any) {
	_, _ = fmt.Fprintf(i.out, format+"\n", args...)
}
