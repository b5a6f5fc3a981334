// Package config loads envman's application settings with layered
// precedence: built-in defaults, then an optional envman.toml in the XDG
// config directory, then ENVMAN_* environment variables.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/envman/pkg/errors"
)

// ConfigFileName is the optional settings file in the envman config dir
const ConfigFileName = "envman.toml"

// EnvPrefix namespaces environment variable overrides, e.g.
// ENVMAN_LOG_VERBOSITY=2 or ENVMAN_STORE_PATH=/tmp/profiles.
const EnvPrefix = "ENVMAN_"

// Config holds application-level settings. Profile contents are not
// configuration; they live in the profile store.
type Config struct {
	Store struct {
		// Path is the store root. Empty means the default XDG location.
		Path string `koanf:"path"`
	} `koanf:"store"`

	Log struct {
		Verbosity int `koanf:"verbosity"`
	} `koanf:"log"`
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"store.path":    "",
		"log.verbosity": 0,
	}
}

// Load reads settings from the default location
func Load() (*Config, error) {
	return LoadFrom(filepath.Join(xdg.ConfigHome, "envman", ConfigFileName))
}

// LoadFrom reads settings, using configPath as the optional settings file
func LoadFrom(configPath string) (*Config, error) {
	k := koanf.New(".")

	// 1. Built-in defaults
	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to load default settings")
	}

	// 2. Settings file, when present
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrProfileParse,
				"failed to load settings from %s", configPath)
		}
	}

	// 3. Environment overrides: ENVMAN_LOG_VERBOSITY -> log.verbosity
	envProvider := env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.Replace(
			strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".", -1)
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to load environment overrides")
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to decode settings")
	}
	return &cfg, nil
}
