// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads the settings of the fracalign command.
//
// Settings are layered: embedded defaults, then the user's config file, then
// FRACALIGN_* environment variables. Command line flags are applied on top
// by the command itself.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	tomlv2 "github.com/pelletier/go-toml/v2"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// EnvPrefix is the prefix of environment variables overriding settings.
const EnvPrefix = "FRACALIGN_"

// Mode selects how input numbers are read.
type Mode string

const (
	ModeText    Mode = "text"
	ModeFloat32 Mode = "float32"
	ModeFloat64 Mode = "float64"
)

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool {
	switch m {
	case ModeText, ModeFloat32, ModeFloat64:
		return true
	}
	return false
}

// Config holds the command settings.
type Config struct {
	Mode      Mode `koanf:"mode" toml:"mode"`
	Precision int  `koanf:"precision" toml:"precision"`
	Trim      bool `koanf:"trim" toml:"trim"`
	Quote     bool `koanf:"quote" toml:"quote"`
}

// Validate checks that c holds usable settings.
func (c *Config) Validate() error {
	if !c.Mode.Valid() {
		return fmt.Errorf("invalid mode %q: must be one of %s, %s or %s", c.Mode, ModeText, ModeFloat32, ModeFloat64)
	}
	return nil
}

// TOML returns c encoded as a TOML document.
func (c *Config) TOML() ([]byte, error) {
	return tomlv2.Marshal(c)
}

// DefaultPath returns the location of the user's config file.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, "fracalign", "config.toml")
}

// Load returns the settings read from the embedded defaults, the config file
// at path and the environment. If path is empty, DefaultPath is used and a
// missing file is not an error.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	optional := path == ""
	if optional {
		path = DefaultPath()
	}
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
		}
	} else if !optional || !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	var c Config
	if err := k.Unmarshal("", &c); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// envKey maps FRACALIGN_PRECISION to precision.
func envKey(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
}

// rawBytesProvider implements koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}
