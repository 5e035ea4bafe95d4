package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_NoArgsPrintsUsage(t *testing.T) {
	out := &bytes.Buffer{}

	err := run(out, nil)

	require.NoError(t, err, "missing input path is a clean exit, not an error")
	assert.Contains(t, out.String(), "Usage:")
}

func TestRun_HelpFlag(t *testing.T) {
	out := &bytes.Buffer{}

	err := run(out, []string{"-h"})

	require.NoError(t, err)
	assert.Contains(t, out.String(), "Usage:")
}

func TestRun_NonexistentModule(t *testing.T) {
	out := &bytes.Buffer{}
	path := filepath.Join(t.TempDir(), "absent.hcl")

	err := run(out, []string{"-log-level", "error", path})

	require.ErrorContains(t, err, "nonexistent file")
}

func TestRun_TranslatesModuleEndToEnd(t *testing.T) {
	dir := t.TempDir()
	modPath := filepath.Join(dir, "mod.hcl")
	source := "input {\n  atmosphere {\n    temp = 3.5\n  }\n}\n"
	require.NoError(t, os.WriteFile(modPath, []byte(source), 0600))

	out := &bytes.Buffer{}
	err := run(out, []string{"-log-level", "error", modPath})
	require.NoError(t, err)

	rendered, err := os.ReadFile(filepath.Join(dir, "mod.ncl"))
	require.NoError(t, err)
	assert.Equal(t, "atm_temp = 3.500000e+00\n", string(rendered))
}

func TestRun_ParseError(t *testing.T) {
	out := &bytes.Buffer{}

	err := run(out, []string{"--this-is-not-a-valid-flag"})

	require.Error(t, err)
	require.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
}
