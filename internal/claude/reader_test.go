package claude

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/devboot-cli/devboot/internal/errors"
	"github.com/devboot-cli/devboot/internal/platform"
)

const testPath = "/home/dev/Library/Application Support/Claude/claude_desktop_config.json"

func newTestReader(t *testing.T, content *string) *Reader {
	t.Helper()

	fs := afero.NewMemMapFs()
	if content != nil {
		require.NoError(t, afero.WriteFile(fs, testPath, []byte(*content), 0o644))
	}

	r, err := NewReader(fs, testPath)
	require.NoError(t, err)

	return r
}

func ptr(s string) *string {
	return &s
}

func TestNewReader_Validation(t *testing.T) {
	t.Parallel()

	_, err := NewReader(nil, testPath)
	require.EqualError(t, err, "filesystem cannot be nil")

	_, err = NewReader(afero.NewMemMapFs(), "  ")
	require.EqualError(t, err, "config path cannot be empty")
}

func TestReader_Read_Absent(t *testing.T) {
	t.Parallel()

	r := newTestReader(t, nil)

	doc, err := r.Read()
	require.NoError(t, err)
	require.Nil(t, doc)
	require.Equal(t, testPath, r.Path())
}

func TestReader_Read_Valid(t *testing.T) {
	t.Parallel()

	content := `{
  "mcpServers": {
    "playwright": {"command": "npx", "args": ["@playwright/mcp@latest"]},
    "filesystem": {"command": "npx", "args": ["-y", "@modelcontextprotocol/server-filesystem", "/tmp"]},
    "weird": 42
  },
  "globalShortcut": "Ctrl+Space"
}`
	doc, err := newTestReader(t, &content).Read()
	require.NoError(t, err)
	require.NotNil(t, doc)

	require.Equal(t, []string{"playwright", "filesystem", "weird"}, doc.Servers())
	require.True(t, doc.HasServer("playwright"))
	require.False(t, doc.HasServer("Playwright"))
	require.Equal(t, "Ctrl+Space", doc.Data()["globalShortcut"])

	v, ok := doc.Server("weird")
	require.True(t, ok)
	require.Equal(t, float64(42), v)

	// The document round trips unchanged.
	var expected, actual any
	require.NoError(t, json.Unmarshal([]byte(content), &expected))
	b, err := json.Marshal(doc)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(b, &actual))
	require.Equal(t, expected, actual)
}

func TestReader_Read_PreservesKeyOrderInJSON(t *testing.T) {
	t.Parallel()

	content := `{"zeta": 1, "alpha": 2}`
	doc, err := newTestReader(t, &content).Read()
	require.NoError(t, err)

	b, err := json.Marshal(doc)
	require.NoError(t, err)
	require.JSONEq(t, content, string(b))
	require.Equal(t, `{"zeta":1,"alpha":2}`, string(b))
}

func TestReader_Read_YAML(t *testing.T) {
	t.Parallel()

	content := `{"mcpServers": {"playwright": {"command": "npx"}}}`
	doc, err := newTestReader(t, &content).Read()
	require.NoError(t, err)

	b, err := yaml.Marshal(doc)
	require.NoError(t, err)
	require.Equal(t, "mcpServers:\n    playwright:\n        command: npx\n", string(b))
}

func TestReader_Read_NonStandardJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
	}{
		{name: "trailing comma", content: `{"mcpServers": {"a": {}},}`},
		{name: "line comment", content: "// c\n{\"mcpServers\": {}}"},
		{name: "block comment", content: `{/* hand edited */ "mcpServers": {}}`},
		{name: "trailing comma in server", content: `{"mcpServers": {"playwright": {"command": "npx",}}}`},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			doc, err := newTestReader(t, ptr(tc.content)).Read()
			require.Nil(t, doc)
			require.ErrorIs(t, err, errors.ErrConfigMalformed)
			require.Contains(t, err.Error(), "comments and trailing commas are not allowed")
		})
	}
}

func TestReader_Read_NoServers(t *testing.T) {
	t.Parallel()

	for _, content := range []string{`{}`, `{"mcpServers": {}}`} {
		doc, err := newTestReader(t, ptr(content)).Read()
		require.NoError(t, err, content)
		require.NotNil(t, doc)
		require.Empty(t, doc.Servers(), content)
		require.False(t, doc.HasServer("playwright"))
	}
}

func TestReader_Read_Malformed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		content  string
		contains string
	}{
		{name: "syntax error", content: `{"mcpServers": {`},
		{name: "empty file", content: ``},
		{name: "not an object", content: `[1, 2, 3]`, contains: "Expected: object"},
		{name: "null", content: `null`, contains: "Expected: object"},
		{name: "servers not an object", content: `{"mcpServers": ["playwright"]}`, contains: "mcpServers"},
		{name: "servers is a string", content: `{"mcpServers": "playwright"}`, contains: "mcpServers"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			doc, err := newTestReader(t, ptr(tc.content)).Read()
			require.Nil(t, doc)
			require.ErrorIs(t, err, errors.ErrConfigMalformed)
			require.Contains(t, err.Error(), testPath)
			if tc.contains != "" {
				require.Contains(t, err.Error(), tc.contains)
			}
		})
	}
}

func TestConfigPath(t *testing.T) {
	t.Parallel()

	home := filepath.Join("/", "home", "dev")

	env := func(vars map[string]string) func(string) string {
		return func(k string) string { return vars[k] }
	}

	tests := []struct {
		name        string
		platform    platform.Platform
		home        string
		getenv      func(string) string
		expected    string
		expectedErr error
	}{
		{
			name:     "macos",
			platform: platform.MacOS,
			home:     home,
			expected: filepath.Join(home, "Library", "Application Support", "Claude", ConfigFileName),
		},
		{
			name:     "windows appdata",
			platform: platform.Windows,
			home:     home,
			getenv:   env(map[string]string{"APPDATA": filepath.Join("/", "roaming")}),
			expected: filepath.Join("/", "roaming", "Claude", ConfigFileName),
		},
		{
			name:     "windows fallback",
			platform: platform.Windows,
			home:     home,
			getenv:   env(nil),
			expected: filepath.Join(home, "AppData", "Roaming", "Claude", ConfigFileName),
		},
		{
			name:        "linux",
			platform:    platform.Linux,
			home:        home,
			expectedErr: errors.ErrUnsupportedPlatform,
		},
		{
			name:        "other",
			platform:    platform.Other,
			home:        home,
			expectedErr: errors.ErrUnsupportedPlatform,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			p, err := ConfigPath(tc.platform, tc.home, tc.getenv)
			if tc.expectedErr != nil {
				require.ErrorIs(t, err, tc.expectedErr)
				require.Empty(t, p)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.expected, p)
		})
	}
}

func TestConfigPath_MissingHome(t *testing.T) {
	t.Parallel()

	_, err := ConfigPath(platform.MacOS, "", nil)
	require.EqualError(t, err, "home directory is not set")

	_, err = ConfigPath(platform.Windows, "", nil)
	require.EqualError(t, err, "neither APPDATA nor the home directory is set")
}
