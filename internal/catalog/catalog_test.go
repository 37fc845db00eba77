package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/devboot-cli/devboot/internal/platform"
	"github.com/devboot-cli/devboot/internal/shell"
)

func defaultCatalog(t *testing.T) *Catalog {
	t.Helper()

	c, err := Default(DefaultVersions())
	require.NoError(t, err)

	return c
}

func TestCatalog_Classify(t *testing.T) {
	t.Parallel()

	c := defaultCatalog(t)

	tests := []struct {
		name     string
		expected Kind
	}{
		{name: "bun", expected: KindRuntime},
		{name: "node", expected: KindRuntime},
		{name: "uv", expected: KindRuntime},
		{name: "playwright", expected: KindServer},
		{name: "Bun", expected: KindUnknown},
		{name: "PLAYWRIGHT", expected: KindUnknown},
		{name: "unknown-thing", expected: KindUnknown},
		{name: "", expected: KindUnknown},
		{name: " bun", expected: KindUnknown},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tc.expected, c.Classify(tc.name))
		})
	}
}

func TestCatalog_Order(t *testing.T) {
	t.Parallel()

	c := defaultCatalog(t)

	require.Equal(t, []string{"bun", "node", "uv"}, c.RuntimeNames())
	require.Len(t, c.Servers(), 1)
	require.Equal(t, "playwright", c.Servers()[0].Name)
}

func TestCatalog_PlaywrightIsStubbed(t *testing.T) {
	t.Parallel()

	s, ok := defaultCatalog(t).Server("playwright")
	require.True(t, ok)
	require.IsType(t, Stubbed{}, s.Routine)
}

func TestNewCatalog_Validation(t *testing.T) {
	t.Parallel()

	stub := Stubbed{Reason: "test"}

	tests := []struct {
		name          string
		runtimes      []Runtime
		servers       []Server
		expectedError string
	}{
		{
			name:          "empty runtime name",
			runtimes:      []Runtime{{Name: ""}},
			expectedError: "runtime name cannot be empty",
		},
		{
			name:          "duplicate runtime",
			runtimes:      []Runtime{{Name: "bun"}, {Name: "bun"}},
			expectedError: "duplicate catalog name 'bun' (runtime and runtime)",
		},
		{
			name:          "runtime and server share a name",
			runtimes:      []Runtime{{Name: "deno"}},
			servers:       []Server{{Name: "deno", Routine: stub}},
			expectedError: "duplicate catalog name 'deno' (runtime and mcp)",
		},
		{
			name:          "server without routine",
			servers:       []Server{{Name: "github"}},
			expectedError: "mcp server 'github' has no install routine",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := NewCatalog(tc.runtimes, tc.servers)
			require.EqualError(t, err, tc.expectedError)
		})
	}
}

func TestNewCatalog_ImplementedServer(t *testing.T) {
	t.Parallel()

	called := false
	c, err := NewCatalog(nil, []Server{{
		Name: "fake",
		Routine: Implemented{Install: func(context.Context, shell.Runner, platform.Platform) bool {
			called = true
			return true
		}},
	}})
	require.NoError(t, err)

	s, ok := c.Server("fake")
	require.True(t, ok)
	impl, ok := s.Routine.(Implemented)
	require.True(t, ok)
	require.True(t, impl.Install(context.Background(), &shell.RecordingRunner{}, platform.Linux))
	require.True(t, called)
}

func TestCatalog_ReturnsCopies(t *testing.T) {
	t.Parallel()

	c := defaultCatalog(t)
	runtimes := c.Runtimes()
	runtimes[0].Name = "changed"

	require.Equal(t, "bun", c.Runtimes()[0].Name)
}

// TestDefault_RecipeTable pins the command chosen for every (runtime, platform) pair.
func TestDefault_RecipeTable(t *testing.T) {
	t.Parallel()

	c := defaultCatalog(t)

	type expectation struct {
		probe     string
		manager   string
		preferred string
		command   string
		script    bool
	}

	tests := map[string]map[platform.Platform]expectation{
		"bun": {
			platform.Windows: {probe: "bun", command: "irm bun.sh/install.ps1 | iex", script: true},
			platform.MacOS: {
				probe:     "bun",
				manager:   "brew",
				preferred: "brew install bun",
				command:   "curl -fsSL https://bun.sh/install | bash",
				script:    true,
			},
			platform.Linux: {probe: "bun", command: "curl -fsSL https://bun.sh/install | bash", script: true},
		},
		"node": {
			platform.Windows: {
				probe: "fnm",
				command: "winget install Schniz.fnm; if ($LASTEXITCODE -ne 0) { exit $LASTEXITCODE }; " +
					"$env:Path = [System.Environment]::GetEnvironmentVariable('Path','Machine') + ';' + " +
					"[System.Environment]::GetEnvironmentVariable('Path','User'); fnm install 22; exit $LASTEXITCODE",
				script: true,
			},
			platform.MacOS: {
				probe: "node",
				command: "curl -o- https://raw.githubusercontent.com/nvm-sh/nvm/v0.40.1/install.sh | bash && " +
					`export NVM_DIR="$HOME/.nvm" && [ -s "$NVM_DIR/nvm.sh" ] && \. "$NVM_DIR/nvm.sh" && nvm install 22`,
				script: true,
			},
			platform.Linux: {
				probe:   "node",
				command: "curl -fsSL https://deb.nodesource.com/setup_22.x | sudo -E bash - && sudo apt-get install -y nodejs",
				script:  true,
			},
		},
		"uv": {
			platform.Windows: {probe: "uv", command: "irm https://astral.sh/uv/install.ps1 | iex", script: true},
			platform.MacOS: {
				probe:     "uv",
				manager:   "brew",
				preferred: "brew install uv",
				command:   "curl -LsSf https://astral.sh/uv/install.sh | sh",
				script:    true,
			},
			platform.Linux: {probe: "uv", command: "curl -LsSf https://astral.sh/uv/install.sh | sh", script: true},
		},
	}

	for name, perPlatform := range tests {
		rt, ok := c.Runtime(name)
		require.True(t, ok, name)

		for _, p := range platform.All() {
			recipe, ok := rt.Recipe(p)
			want, expected := perPlatform[p]
			require.Equal(t, expected, ok, "%s on %s", name, p)
			if !expected {
				continue
			}

			require.Equal(t, want.probe, recipe.Probe, "%s on %s", name, p)
			require.Equal(t, want.command, recipe.Command.String(), "%s on %s", name, p)
			require.Equal(t, want.script, recipe.Command.IsScript(), "%s on %s", name, p)

			if want.manager == "" {
				require.Nil(t, recipe.Preferred, "%s on %s", name, p)
				continue
			}
			require.NotNil(t, recipe.Preferred, "%s on %s", name, p)
			require.Equal(t, want.manager, recipe.Preferred.Manager)
			require.Equal(t, want.preferred, recipe.Preferred.Command.String())
			require.False(t, recipe.Preferred.Command.IsScript())
		}
	}
}

func TestDefault_VersionsAreSubstituted(t *testing.T) {
	t.Parallel()

	c, err := Default(Versions{Node: "20", NVM: "v0.39.7"})
	require.NoError(t, err)

	node, ok := c.Runtime("node")
	require.True(t, ok)

	mac, _ := node.Recipe(platform.MacOS)
	require.Contains(t, mac.Command.String(), "nvm-sh/nvm/v0.39.7/install.sh")
	require.Contains(t, mac.Command.String(), "nvm install 20")

	linux, _ := node.Recipe(platform.Linux)
	require.Contains(t, linux.Command.String(), "setup_20.x")

	windows, _ := node.Recipe(platform.Windows)
	require.Contains(t, windows.Command.String(), "fnm install 20;")
}

func TestVersions_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		versions      Versions
		expectedError string
	}{
		{name: "defaults", versions: DefaultVersions()},
		{name: "other major", versions: Versions{Node: "18", NVM: "v0.39.0"}},
		{
			name:          "node injection",
			versions:      Versions{Node: "22; rm -rf ~", NVM: DefaultNVMVersion},
			expectedError: "node version must be a major version number (e.g. 22), got '22; rm -rf ~'",
		},
		{
			name:          "node semver",
			versions:      Versions{Node: "22.1.0", NVM: DefaultNVMVersion},
			expectedError: "node version must be a major version number (e.g. 22), got '22.1.0'",
		},
		{
			name:          "nvm without v",
			versions:      Versions{Node: DefaultNodeVersion, NVM: "0.40.1"},
			expectedError: "nvm version must look like v0.40.1, got '0.40.1'",
		},
		{
			name:          "empty",
			versions:      Versions{},
			expectedError: "node version must be a major version number (e.g. 22), got ''",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := tc.versions.Validate()
			if tc.expectedError == "" {
				require.NoError(t, err)
				return
			}
			require.EqualError(t, err, tc.expectedError)

			_, err = Default(tc.versions)
			require.Error(t, err)
		})
	}
}
