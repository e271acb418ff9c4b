// Package config handles configuration loading and defaults.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// Default values.
const (
	DefaultTheme = "classic"

	dirName        = ".marc"
	configFileName = "config.toml"
	storeFileName  = "marc.json"
)

// EnvStore overrides the store path when set.
const EnvStore = "MARC_STORE"

// Config holds the full configuration for marc.
type Config struct {
	Store   string `toml:"store"`
	Theme   string `toml:"theme"`
	NoColor bool   `toml:"no_color"`
}

// Load reads ~/.marc/config.toml (if present), applies defaults and the
// MARC_STORE override. Root flags are applied on top by the caller.
func Load() (Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, errors.Wrap(err, "home")
	}
	cfg, err := LoadFile(filepath.Join(home, dirName, configFileName), home)
	if err != nil {
		return Config{}, err
	}
	if env := strings.TrimSpace(os.Getenv(EnvStore)); env != "" {
		cfg.Store = ExpandHome(env, home)
	}
	return cfg, nil
}

// LoadFile reads one config file and fills in defaults. A missing file
// is not an error; the defaults stand.
func LoadFile(path, home string) (Config, error) {
	var cfg Config
	b, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, errors.Wrap(err, "read config")
	}
	if err == nil {
		if err := toml.Unmarshal(b, &cfg); err != nil {
			return Config{}, errors.Wrapf(err, "parse config %s", path)
		}
	}
	applyDefaults(&cfg, home)
	return cfg, nil
}

func applyDefaults(cfg *Config, home string) {
	if cfg.Store == "" {
		cfg.Store = filepath.Join(home, dirName, storeFileName)
	} else {
		cfg.Store = ExpandHome(cfg.Store, home)
	}
	if cfg.Theme == "" {
		cfg.Theme = DefaultTheme
	}
}

// ExpandHome resolves a leading "~" or "~/" against home.
func ExpandHome(path, home string) string {
	if path == "~" {
		return home
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(home, path[2:])
	}
	return path
}
