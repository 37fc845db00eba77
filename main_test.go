package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"

	"github.com/devboot-cli/devboot/cmd"
)

func TestMain(m *testing.M) {
	os.Exit(testscript.RunMain(m, map[string]func() int{
		"devboot": func() int {
			cmd.Execute()
			return 0
		},
	}))
}

func TestScript(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir:                 filepath.Join("testdata", "script"),
		RequireExplicitExec: true,
		Setup: func(e *testscript.Env) error {
			// Keep settings and logs inside the work directory.
			e.Vars = append(e.Vars,
				"HOME="+e.WorkDir,
				"XDG_CONFIG_HOME="+filepath.Join(e.WorkDir, ".config"),
				"DEVBOOT_SETTINGS_FILE="+filepath.Join(e.WorkDir, "settings.toml"),
				"DEVBOOT_LOG_LEVEL=off",
				"LANG=C",
				"NO_COLOR=1",
			)
			return nil
		},
	})
}
