package shell

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRecordingRunner_FailList(t *testing.T) {
	t.Parallel()

	r := &RecordingRunner{Fail: []string{"brew install bun"}}

	require.False(t, r.Run(context.Background(), Exec("brew", "install", "bun")))
	require.True(t, r.Run(context.Background(), Script("curl -fsSL https://bun.sh/install | bash")))
	require.Len(t, r.Executed(), 2)
}

func TestRecordingRunner_DryRunOutput(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	r := &RecordingRunner{Out: buf, Available: []string{"bun"}}

	require.True(t, r.Run(context.Background(), Exec("which", "bun"), Quiet()))
	require.True(t, r.Run(context.Background(), Exec("brew", "install", "uv")))

	require.Equal(t, "[dry-run] brew install uv\n", buf.String())
}

func TestRecordingRunner_DelegatesLookups(t *testing.T) {
	t.Parallel()

	inner := &RecordingRunner{Available: []string{"node"}}
	r := &RecordingRunner{Lookups: inner}

	require.True(t, r.Run(context.Background(), Exec("which", "node"), Quiet()))
	require.False(t, r.Run(context.Background(), Exec("which", "bun"), Quiet()))
	require.True(t, r.Run(context.Background(), Script("nvm install 22")))

	require.Equal(t, []string{"which node", "which bun"}, inner.LookedUp())
	require.Empty(t, inner.Executed())
	require.Equal(t, []string{"nvm install 22"}, []string{r.Executed()[0].String()})
}
