// Package config holds the gear configuration: the fixed camera, lens and
// country values written into every frame, plus where to find exiftool.
// Values are compiled-in defaults overridable from a TOML file.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Gear describes the camera setup the roll was shot on.
type Gear struct {
	Make        string `toml:"make"`
	Model       string `toml:"model"`
	LensModel   string `toml:"lens_model"`
	FocalLength string `toml:"focal_length"`
	Country     string `toml:"country"`
}

// Defaults are fallback values for fields the sidecar may omit.
type Defaults struct {
	ISO int `toml:"iso"`
}

// Exiftool configures the external metadata tool.
type Exiftool struct {
	Binary string `toml:"binary"`
}

// Config encapsulates all configuration values for filmtag.
type Config struct {
	Gear     Gear     `toml:"gear"`
	Defaults Defaults `toml:"defaults"`
	Exiftool Exiftool `toml:"exiftool"`
}

// Default returns the compiled-in configuration.
func Default() Config {
	return Config{
		Gear: Gear{
			Make:        "Zenit",
			Model:       "Zenit ET",
			LensModel:   "Helios 44-2 58mm f/2",
			FocalLength: "58mm",
			Country:     "Austria",
		},
		Defaults: Defaults{ISO: 200},
		Exiftool: Exiftool{Binary: "exiftool"},
	}
}

// DefaultPath returns the absolute path of the default configuration file.
func DefaultPath() (string, error) {
	return expandPath("~/.config/filmtag/config.toml")
}

// Load parses a configuration file on top of the defaults. An empty path means
// the default location; a missing file at the default location is not an
// error, a missing file at an explicit path is.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return nil, err
		}
	}

	expanded, err := expandPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(expanded)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !explicit {
			return &cfg, nil
		}
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	if err := toml.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	return &cfg, nil
}

// CreateSample writes the sample configuration to path, refusing to clobber
// an existing file.
func CreateSample(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config already exists at %s", path)
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}

	return nil
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}

	if pathValue == "~" || (len(pathValue) > 1 && pathValue[0] == '~' && pathValue[1] == '/') {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		pathValue = filepath.Join(home, pathValue[1:])
	}

	absolute, err := filepath.Abs(filepath.Clean(pathValue))
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", pathValue, err)
	}

	return absolute, nil
}
