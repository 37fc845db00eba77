package options

import (
	"errors"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/devboot-cli/devboot/internal/platform"
	"github.com/devboot-cli/devboot/internal/shell"
)

func TestDefaultOptions(t *testing.T) {
	t.Parallel()

	opts := defaultOptions()

	require.Equal(t, platform.Current(), opts.Platform)
	require.NotNil(t, opts.Fs)
	require.Nil(t, opts.Runner)
	require.NotNil(t, opts.Getenv)
	require.NotNil(t, opts.UserHomeDir)
}

func TestNewOptions(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	runner := &shell.RecordingRunner{}

	opts, err := NewOptions(
		WithPlatform(platform.Windows),
		WithFs(fs),
		WithRunner(runner),
		WithGetenv(func(string) string { return "x" }),
		WithUserHomeDir(func() (string, error) { return "/home/dev", nil }),
		nil,
	)
	require.NoError(t, err)

	require.Equal(t, platform.Windows, opts.Platform)
	require.Same(t, fs.(*afero.MemMapFs), opts.Fs.(*afero.MemMapFs))
	require.Same(t, runner, opts.Runner)
	require.Equal(t, "x", opts.Getenv("HOME"))

	home, err := opts.UserHomeDir()
	require.NoError(t, err)
	require.Equal(t, "/home/dev", home)
}

func TestNewOptions_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		opt           CmdOption
		expectedError string
	}{
		{name: "unknown platform", opt: WithPlatform("beos"), expectedError: "unknown platform 'beos'"},
		{name: "nil fs", opt: WithFs(nil), expectedError: "filesystem cannot be nil"},
		{name: "nil runner", opt: WithRunner(nil), expectedError: "runner cannot be nil"},
		{name: "nil getenv", opt: WithGetenv(nil), expectedError: "getenv cannot be nil"},
		{name: "nil home", opt: WithUserHomeDir(nil), expectedError: "home directory func cannot be nil"},
		{
			name:          "custom",
			opt:           func(*CmdOptions) error { return errors.New("custom failure") },
			expectedError: "custom failure",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			opts, err := NewOptions(tc.opt)
			require.EqualError(t, err, tc.expectedError)
			require.Equal(t, CmdOptions{}.Platform, opts.Platform)
		})
	}
}
