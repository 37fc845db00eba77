package catalog

import (
	"fmt"
	"regexp"

	"github.com/devboot-cli/devboot/internal/platform"
	"github.com/devboot-cli/devboot/internal/shell"
)

const (
	// DefaultNodeVersion is the Node.js major version installed through nvm, fnm and NodeSource.
	DefaultNodeVersion = "22"

	// DefaultNVMVersion is the nvm release whose install script is used on macOS.
	DefaultNVMVersion = "v0.40.1"
)

var (
	nodeVersionPattern = regexp.MustCompile(`^[1-9][0-9]*$`)
	nvmVersionPattern  = regexp.MustCompile(`^v[0-9]+\.[0-9]+\.[0-9]+$`)
)

// Versions are the version pins substituted into install scripts.
// They end up inside shell scripts, so Validate must pass before they are used.
type Versions struct {
	Node string `toml:"node" json:"node" yaml:"node"`
	NVM  string `toml:"nvm" json:"nvm" yaml:"nvm"`
}

// DefaultVersions returns the built-in version pins.
func DefaultVersions() Versions {
	return Versions{
		Node: DefaultNodeVersion,
		NVM:  DefaultNVMVersion,
	}
}

// Validate ensures that the versions are safe to place in a shell script.
func (v Versions) Validate() error {
	if !nodeVersionPattern.MatchString(v.Node) {
		return fmt.Errorf("node version must be a major version number (e.g. %s), got '%s'", DefaultNodeVersion, v.Node)
	}
	if !nvmVersionPattern.MatchString(v.NVM) {
		return fmt.Errorf("nvm version must look like %s, got '%s'", DefaultNVMVersion, v.NVM)
	}

	return nil
}

// Default returns the built-in catalog using the given version pins.
func Default(v Versions) (*Catalog, error) {
	if err := v.Validate(); err != nil {
		return nil, err
	}

	return NewCatalog(
		[]Runtime{bunRuntime(), nodeRuntime(v), uvRuntime()},
		[]Server{playwrightServer()},
	)
}

func bunRuntime() Runtime {
	script := shell.Script("curl -fsSL https://bun.sh/install | bash")

	return Runtime{
		Name:        "bun",
		Description: "Bun JavaScript runtime",
		Recipes: map[platform.Platform]Recipe{
			platform.Windows: {
				Probe:   "bun",
				Command: shell.Script("irm bun.sh/install.ps1 | iex"),
			},
			platform.MacOS: {
				Probe: "bun",
				Preferred: &Alternative{
					Manager: "brew",
					Command: shell.Exec("brew", "install", "bun"),
				},
				Command: script,
			},
			platform.Linux: {
				Probe:   "bun",
				Command: script,
			},
		},
	}
}

func nodeRuntime(v Versions) Runtime {
	return Runtime{
		Name:        "node",
		Description: "Node.js JavaScript runtime",
		Recipes: map[platform.Platform]Recipe{
			// Node is managed by fnm on Windows, so fnm's presence is what counts as installed.
			platform.Windows: {
				Probe: "fnm",
				Command: shell.Script(fmt.Sprintf(
					"winget install Schniz.fnm; "+
						"if ($LASTEXITCODE -ne 0) { exit $LASTEXITCODE }; "+
						"$env:Path = [System.Environment]::GetEnvironmentVariable('Path','Machine') + ';' + "+
						"[System.Environment]::GetEnvironmentVariable('Path','User'); "+
						"fnm install %s; exit $LASTEXITCODE",
					v.Node,
				)),
			},
			platform.MacOS: {
				Probe: "node",
				Command: shell.Script(fmt.Sprintf(
					"curl -o- https://raw.githubusercontent.com/nvm-sh/nvm/%s/install.sh | bash && "+
						`export NVM_DIR="$HOME/.nvm" && `+
						`[ -s "$NVM_DIR/nvm.sh" ] && \. "$NVM_DIR/nvm.sh" && `+
						"nvm install %s",
					v.NVM, v.Node,
				)),
			},
			platform.Linux: {
				Probe: "node",
				Command: shell.Script(fmt.Sprintf(
					"curl -fsSL https://deb.nodesource.com/setup_%s.x | sudo -E bash - && "+
						"sudo apt-get install -y nodejs",
					v.Node,
				)),
			},
		},
	}
}

func uvRuntime() Runtime {
	script := shell.Script("curl -LsSf https://astral.sh/uv/install.sh | sh")

	return Runtime{
		Name:        "uv",
		Description: "uv Python package manager",
		Recipes: map[platform.Platform]Recipe{
			platform.Windows: {
				Probe:   "uv",
				Command: shell.Script("irm https://astral.sh/uv/install.ps1 | iex"),
			},
			platform.MacOS: {
				Probe: "uv",
				Preferred: &Alternative{
					Manager: "brew",
					Command: shell.Exec("brew", "install", "uv"),
				},
				Command: script,
			},
			platform.Linux: {
				Probe:   "uv",
				Command: script,
			},
		},
	}
}

func playwrightServer() Server {
	return Server{
		Name:        "playwright",
		Description: "Playwright browser automation MCP server",
		Routine:     Stubbed{Reason: "registering MCP servers in the Claude config is not supported yet"},
	}
}
