package main

import (
	"testing"

	"github.com/rogpeppe/go-internal/testscript"

	"github.com/tdo-app/tdo/internal/testsupport"
)

func TestTdoScripts(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir: "testdata/tdo",
		Setup: func(env *testscript.Env) error {
			return testsupport.SetupScriptEnv(t, env)
		},
	})
}

func TestNoteScripts(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir: "testdata/notes",
		Setup: func(env *testscript.Env) error {
			return testsupport.SetupScriptEnv(t, env)
		},
	})
}
