/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package config loads the process settings of the shared library from the
// environment.
package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config is read once when the library is loaded.
type Config struct {
	// LogLevel is one of debug, info, warn, error. The per-failure ERRNO
	// records are only visible at debug.
	LogLevel string `env:"FFICB_LOG_LEVEL" envDefault:"info"`

	// LogFormat is json or text.
	LogFormat string `env:"FFICB_LOG_FORMAT" envDefault:"json"`

	// LogFallback enables the Warn record written when a description had to
	// be replaced by the fallback text.
	LogFallback bool `env:"FFICB_LOG_FALLBACK" envDefault:"true"`
}

// Default is the configuration used when the environment is unusable.
func Default() Config {
	return Config{LogLevel: "info", LogFormat: "json", LogFallback: true}
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var c Config
	if err := ParseEnv(&c); err != nil {
		return Config{}, err
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// ParseEnv loads environment variables into target.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Validate rejects unknown levels and formats.
func (c Config) Validate() error {
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: FFICB_LOG_LEVEL: unknown level %q", c.LogLevel)
	}
	switch strings.ToLower(c.LogFormat) {
	case "json", "text":
	default:
		return fmt.Errorf("config: FFICB_LOG_FORMAT: unknown format %q", c.LogFormat)
	}
	return nil
}
