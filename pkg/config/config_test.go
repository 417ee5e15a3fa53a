package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "Zenit", cfg.Gear.Make)
	assert.Equal(t, "Zenit ET", cfg.Gear.Model)
	assert.Equal(t, "Helios 44-2 58mm f/2", cfg.Gear.LensModel)
	assert.Equal(t, "58mm", cfg.Gear.FocalLength)
	assert.Equal(t, "Austria", cfg.Gear.Country)
	assert.Equal(t, 200, cfg.Defaults.ISO)
	assert.Equal(t, "exiftool", cfg.Exiftool.Binary)
}

func TestLoadMissingDefaultFileFallsBack(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), *cfg)
}

func TestLoadPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[gear]
make = "Nikon"
model = "FE2"
lens_model = "Nikkor 50mm f/1.8"

[exiftool]
binary = "/opt/exiftool/exiftool"
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Nikon", cfg.Gear.Make)
	assert.Equal(t, "FE2", cfg.Gear.Model)
	assert.Equal(t, "/opt/exiftool/exiftool", cfg.Exiftool.Binary)

	// Untouched sections keep their defaults.
	assert.Equal(t, "Austria", cfg.Gear.Country)
	assert.Equal(t, 200, cfg.Defaults.ISO)
}

func TestLoadExplicitMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestLoadBadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[gear\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestCreateSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.toml")

	require.NoError(t, CreateSample(path))

	// The sample must round-trip through Load.
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), *cfg)

	// Refuses to overwrite.
	assert.Error(t, CreateSample(path))
}
