package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/nclbridge/internal/hcl"
)

// newTestApp builds an App with the real HCL loader and a discarded log
// stream.
func newTestApp(t *testing.T, cfg Config) *App {
	t.Helper()
	config, err := NewConfig(cfg)
	require.NoError(t, err)
	return NewApp(&bytes.Buffer{}, config, hcl.NewLoader())
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
}

func TestRun_TranslatesScalarModule(t *testing.T) {
	dir := t.TempDir()
	modPath := filepath.Join(dir, "mod.hcl")
	writeFile(t, modPath, "input {\n  atmosphere {\n    temp = 3.5\n  }\n}\n")

	a := newTestApp(t, Config{ModulePath: modPath, LogLevel: "error", LogFormat: "text"})
	require.NoError(t, a.Run(context.Background()))

	out, err := os.ReadFile(filepath.Join(dir, "mod.ncl"))
	require.NoError(t, err)
	assert.Equal(t, "atm_temp = 3.500000e+00\n", string(out))
}

func TestRun_TranslatesSequenceModule(t *testing.T) {
	dir := t.TempDir()
	modPath := filepath.Join(dir, "mod.hcl")
	writeFile(t, modPath, "input {\n  user {\n    pressure = [1.0, 2.0]\n  }\n}\n")

	a := newTestApp(t, Config{ModulePath: modPath, LogLevel: "error", LogFormat: "text"})
	require.NoError(t, a.Run(context.Background()))

	out, err := os.ReadFile(filepath.Join(dir, "mod.ncl"))
	require.NoError(t, err)
	expected := "user_pressure = (/\n" +
		"    1.000000e+00,\\\n" +
		"    2.000000e+00,\\\n" +
		"/)\n"
	assert.Equal(t, expected, string(out))
}

func TestRun_OutputPathOverride(t *testing.T) {
	dir := t.TempDir()
	modPath := filepath.Join(dir, "mod.hcl")
	outPath := filepath.Join(dir, "custom.ncl")
	writeFile(t, modPath, "input {\n  atmosphere {\n    temp = 1.0\n  }\n}\n")

	a := newTestApp(t, Config{ModulePath: modPath, OutputPath: outPath, LogLevel: "error", LogFormat: "text"})
	require.NoError(t, a.Run(context.Background()))

	_, err := os.Stat(outPath)
	require.NoError(t, err)
}

func TestRun_TranslationIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	modPath := filepath.Join(dir, "mod.hcl")
	writeFile(t, modPath, `
input {
  atmosphere {
    temp     = 3.5
    pressure = [1.0, 2.0, 3.0]
  }
  gases {
    so2 = 1.0e-8
  }
}
`)

	first := filepath.Join(dir, "first.ncl")
	second := filepath.Join(dir, "second.ncl")
	for _, outPath := range []string{first, second} {
		a := newTestApp(t, Config{ModulePath: modPath, OutputPath: outPath, LogLevel: "error", LogFormat: "text"})
		require.NoError(t, a.Run(context.Background()))
	}

	firstOut, err := os.ReadFile(first)
	require.NoError(t, err)
	secondOut, err := os.ReadFile(second)
	require.NoError(t, err)
	assert.Equal(t, firstOut, secondOut)
}

func TestRun_NonexistentModule(t *testing.T) {
	dir := t.TempDir()
	modPath := filepath.Join(dir, "absent.hcl")

	a := newTestApp(t, Config{ModulePath: modPath, LogLevel: "error", LogFormat: "text"})
	err := a.Run(context.Background())

	require.ErrorContains(t, err, "nonexistent file")
	_, statErr := os.Stat(filepath.Join(dir, "absent.ncl"))
	assert.True(t, os.IsNotExist(statErr), "no output file may be created")
}

func TestRun_InvalidModuleSuffix(t *testing.T) {
	dir := t.TempDir()
	modPath := filepath.Join(dir, "mod.txt")
	writeFile(t, modPath, "input {\n}\n")

	a := newTestApp(t, Config{ModulePath: modPath, LogLevel: "error", LogFormat: "text"})
	err := a.Run(context.Background())

	require.ErrorContains(t, err, "invalid module file")
	entries, readErr := os.ReadDir(dir)
	require.NoError(t, readErr)
	assert.Len(t, entries, 1, "no output file may be created")
}

func TestRun_TranslatesDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.hcl"), "input {\n  atmosphere {\n    temp = 1.0\n  }\n}\n")
	writeFile(t, filepath.Join(dir, "b.hcl"), "input {\n  user {\n    dt = 2.0\n  }\n}\n")
	writeFile(t, filepath.Join(dir, "notes.txt"), "not a module")

	a := newTestApp(t, Config{ModulePath: dir, LogLevel: "error", LogFormat: "text"})
	require.NoError(t, a.Run(context.Background()))

	aOut, err := os.ReadFile(filepath.Join(dir, "a.ncl"))
	require.NoError(t, err)
	assert.Equal(t, "atm_temp = 1.000000e+00\n", string(aOut))

	bOut, err := os.ReadFile(filepath.Join(dir, "b.ncl"))
	require.NoError(t, err)
	assert.Equal(t, "user_dt = 2.000000e+00\n", string(bOut))
}

func TestRun_WalkModeProducesModule(t *testing.T) {
	dir := t.TempDir()
	specPath := filepath.Join(dir, "sweep.yaml")
	writeFile(t, specPath, `
process:
  haero: mam4_water_uptake
timestepping:
  dt: 10.0
  total_time: 3600.0
ensemble:
  atmosphere:
    temperature: [240.0, 260.0]
atmosphere:
  temperature: 273.0
  pressure: 101325.0
  relative_humidity: 0.5
  height: 500.0
  hydrostatic_dp: 10.0
  planetary_boundary_layer_height: 1000.0
aerosols:
  accum:
    interstitial:
      number_conc: 5.0e8
      SO4: 1.0e-7
gases:
  SO2: 1.0e-8
`)

	a := newTestApp(t, Config{EnsemblePath: specPath, LogLevel: "error", LogFormat: "text"})
	require.NoError(t, a.Run(context.Background()))

	modPath := filepath.Join(dir, "sweep.hcl")
	source, err := os.ReadFile(modPath)
	require.NoError(t, err)
	assert.Contains(t, string(source), "temperature = [240, 260]")

	// The produced module file translates cleanly in a second run.
	b := newTestApp(t, Config{ModulePath: modPath, LogLevel: "error", LogFormat: "text"})
	require.NoError(t, b.Run(context.Background()))

	rendered, err := os.ReadFile(filepath.Join(dir, "sweep.ncl"))
	require.NoError(t, err)
	assert.Contains(t, string(rendered), "atm_temperature = (/\n")
	assert.Contains(t, string(rendered), "    2.400000e+02,\\\n")
}

func TestRun_WalkModeErrors(t *testing.T) {
	dir := t.TempDir()

	t.Run("nonexistent spec", func(t *testing.T) {
		a := newTestApp(t, Config{EnsemblePath: filepath.Join(dir, "absent.yaml"), LogLevel: "error", LogFormat: "text"})
		require.ErrorContains(t, a.Run(context.Background()), "nonexistent file")
	})

	t.Run("wrong suffix", func(t *testing.T) {
		specPath := filepath.Join(dir, "sweep.json")
		writeFile(t, specPath, "{}")
		a := newTestApp(t, Config{EnsemblePath: specPath, LogLevel: "error", LogFormat: "text"})
		require.ErrorContains(t, a.Run(context.Background()), "invalid ensemble spec")
	})
}

func TestNewConfig(t *testing.T) {
	t.Run("requires an input path", func(t *testing.T) {
		_, err := NewConfig(Config{})
		require.ErrorContains(t, err, "required")
	})

	t.Run("rejects both paths at once", func(t *testing.T) {
		_, err := NewConfig(Config{ModulePath: "a.hcl", EnsemblePath: "b.yaml"})
		require.ErrorContains(t, err, "mutually exclusive")
	})
}
