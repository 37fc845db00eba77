package shell

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCommand_Exec(t *testing.T) {
	t.Parallel()

	c := Exec("brew", "install", "bun")
	require.False(t, c.IsScript())
	require.False(t, c.IsZero())
	require.Equal(t, []string{"brew", "install", "bun"}, c.Argv())
	require.Equal(t, "brew install bun", c.String())
	require.Empty(t, c.Text())
}

func TestCommand_ExecArgvIsCopied(t *testing.T) {
	t.Parallel()

	c := Exec("which", "node")
	argv := c.Argv()
	argv[1] = "bun"

	require.Equal(t, []string{"which", "node"}, c.Argv())
}

func TestCommand_Script(t *testing.T) {
	t.Parallel()

	c := Script("  curl -fsSL https://bun.sh/install | bash \n")
	require.True(t, c.IsScript())
	require.False(t, c.IsZero())
	require.Equal(t, "curl -fsSL https://bun.sh/install | bash", c.Text())
	require.Equal(t, "curl -fsSL https://bun.sh/install | bash", c.String())
}

func TestCommand_StringQuotesArguments(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		cmd      Command
		expected string
	}{
		{name: "plain", cmd: Exec("where", "fnm"), expected: "where fnm"},
		{name: "space", cmd: Exec("echo", "hello world"), expected: `echo "hello world"`},
		{name: "empty arg", cmd: Exec("echo", ""), expected: `echo ""`},
		{name: "quote", cmd: Exec("echo", `say "hi"`), expected: `echo "say \"hi\""`},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tc.expected, tc.cmd.String())
		})
	}
}

func TestCommand_Zero(t *testing.T) {
	t.Parallel()

	var c Command
	require.True(t, c.IsZero())
	require.True(t, Script("   ").IsZero())
	require.Empty(t, c.String())
}
