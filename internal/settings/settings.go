// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package settings loads the configuration of the yieldlint command
// from a config file, the environment and command line flags.
package settings

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"fillmore-labs.com/yieldcheck/internal/config"
	"fillmore-labs.com/yieldcheck/internal/report"
)

// configName is the config file name without extension.
const configName = ".yieldcheck"

// configType is the config file format.
const configType = "yaml"

// envPrefix is the environment variable prefix for yieldcheck settings.
const envPrefix = "YIELDCHECK"

var (
	// ErrInvalidFormat is returned for an unsupported output format.
	ErrInvalidFormat = errors.New("invalid output format")

	// ErrInvalidMaxFileSize is returned for a negative file size limit.
	ErrInvalidMaxFileSize = errors.New("invalid max file size")
)

// Settings is the configuration of a yieldlint run.
// Field tags use mapstructure for viper unmarshalling.
type Settings struct {
	Generated   bool   `mapstructure:"generated"`
	TypeScript  bool   `mapstructure:"typescript"`
	NoLint      bool   `mapstructure:"nolint"`
	MaxFileSize int    `mapstructure:"max_file_size"`
	Format      string `mapstructure:"format"`
	Concurrency int    `mapstructure:"concurrency"`
	Color       bool   `mapstructure:"color"`
}

// flagKeys maps command line flag names to configuration keys.
var flagKeys = map[string]string{
	"generated":     "generated",
	"typescript":    "typescript",
	"nolint":        "nolint",
	"max-file-size": "max_file_size",
	"format":        "format",
	"concurrency":   "concurrency",
}

// Load reads the configuration from file, environment variables and defaults.
// If configPath is non-empty, it is used as the explicit config file path.
// Otherwise, the config file is searched in the working directory and $HOME.
// A missing config file is not an error. Flags that were set on the command
// line take precedence over all other sources.
func Load(configPath string, flags *pflag.FlagSet) (*Settings, error) {
	v := viper.New()

	applyDefaults(v)

	v.SetConfigType(configType)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName(configName)
		v.AddConfigPath(".")

		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	if flags != nil {
		if err := bindFlags(v, flags); err != nil {
			return nil, err
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &s, nil
}

func applyDefaults(v *viper.Viper) {
	d := config.DefaultOptions()

	v.SetDefault("generated", d.Behavior.Enabled(config.IncludeGenerated))
	v.SetDefault("typescript", d.Behavior.Enabled(config.TypeScript))
	v.SetDefault("nolint", d.Behavior.Enabled(config.HonorNoLint))
	v.SetDefault("max_file_size", d.MaxFileSize)
	v.SetDefault("format", string(report.FormatText))
	v.SetDefault("concurrency", 0)
	v.SetDefault("color", true)
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for name, key := range flagKeys {
		f := flags.Lookup(name)
		if f == nil {
			continue
		}

		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("bind flag %s: %w", name, err)
		}
	}

	if f := flags.Lookup("no-color"); f != nil && f.Changed {
		v.Set("color", false)
	}

	return nil
}

// Validate checks the settings for consistency.
func (s *Settings) Validate() error {
	if _, err := report.ParseFormat(s.Format); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidFormat, s.Format)
	}

	if s.MaxFileSize < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidMaxFileSize, s.MaxFileSize)
	}

	return nil
}

// Options converts the settings into linter [config.Options].
func (s *Settings) Options() *config.Options {
	o := config.DefaultOptions()

	o.Behavior.Set(config.IncludeGenerated, s.Generated)
	o.Behavior.Set(config.TypeScript, s.TypeScript)
	o.Behavior.Set(config.HonorNoLint, s.NoLint)
	o.MaxFileSize = s.MaxFileSize
	o.Concurrency = s.Concurrency

	return o
}

// OutputFormat returns the validated output format.
func (s *Settings) OutputFormat() report.Format {
	return report.Format(s.Format)
}
