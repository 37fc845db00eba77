package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/devboot-cli/devboot/internal/platform"
)

func TestMCPCmd(t *testing.T) {
	tests := []struct {
		name          string
		content       string
		expected      string
		expectedError string
	}{
		{
			name:     "servers in file order",
			content:  testClaudeDocument,
			expected: "MCP servers (2):\n  filesystem\n  github\n",
		},
		{
			name:     "missing file",
			expected: "No MCP servers registered\n",
		},
		{
			name:     "no servers section",
			content:  `{"theme": "light"}`,
			expected: "No MCP servers registered\n",
		},
		{
			name:     "empty servers section",
			content:  `{"mcpServers": {}}`,
			expected: "No MCP servers registered\n",
		},
		{
			name:          "malformed file",
			content:       `{"mcpServers": {"a": }`,
			expectedError: "invalid Claude config",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := newHarness(t, platform.MacOS)
			if tc.content != "" {
				h.writeFile(t, testClaudeConfig, tc.content)
			}

			stdout, _, err := h.run(t, "mcp", "--claude-config", testClaudeConfig)

			if tc.expectedError != "" {
				require.Error(t, err)
				require.Contains(t, err.Error(), tc.expectedError)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tc.expected, stdout)
		})
	}
}

func TestMCPCmd_YAML(t *testing.T) {
	h := newHarness(t, platform.MacOS)
	h.writeFile(t, testClaudeConfig, testClaudeDocument)

	stdout, _, err := h.run(t, "mcp", "--claude-config", testClaudeConfig, "--format", "yaml")
	require.NoError(t, err)

	var payload struct {
		Results []string `yaml:"results"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(stdout), &payload))
	assert.Equal(t, []string{"filesystem", "github"}, payload.Results)
}
