// Package config loads the application configuration. Settings merge in
// order: built-in defaults, the user config file under the XDG config
// directory, a project-local config file in the working directory, and
// AWCY_NFO_* environment variables. Later sources win.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/AWCY-Arms/awcy-nfo/pkg/errors"
)

const (
	appDir    = "awcy-nfo"
	envPrefix = "AWCY_NFO_"
)

// Project-local config file names, first match wins
var localFiles = []string{".awcy-nfo.toml", "awcy-nfo.toml"}

// Config is the merged application configuration
type Config struct {
	Render struct {
		Style  string `koanf:"style" toml:"style"`
		Header string `koanf:"header" toml:"header"`
	} `koanf:"render" toml:"render"`
	Output struct {
		Dir      string `koanf:"dir" toml:"dir"`
		Filename string `koanf:"filename" toml:"filename"`
	} `koanf:"output" toml:"output"`
	Log struct {
		File bool `koanf:"file" toml:"file"`
	} `koanf:"log" toml:"log"`
}

// Load merges all configuration sources
func Load() (*Config, error) {
	return load(".")
}

func load(workDir string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "loading built-in defaults")
	}

	if path, err := UserConfigPath(); err == nil {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigParse,
					"loading user config '%s'", path)
			}
		}
	}

	for _, name := range localFiles {
		path := filepath.Join(workDir, name)
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigParse,
					"loading project config '%s'", path)
			}
			break
		}
	}

	// AWCY_NFO_RENDER_STYLE=minimal maps to render.style
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "_", ".")
	}), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "loading environment")
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "decoding configuration")
	}
	return &cfg, nil
}

// UserConfigPath is the per-user config file location
func UserConfigPath() (string, error) {
	path, err := xdg.ConfigFile(filepath.Join(appDir, "config.toml"))
	if err != nil {
		return "", errors.Wrap(err, errors.ErrConfigLoad, "resolving user config path")
	}
	return path, nil
}
