// servarr-tui - Terminal dashboard and CLI for Radarr, Sonarr, and Lidarr
// Copyright 2026 tomtom215
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/servarr-tui

// Package config loads the per-backend configuration described in spec §6:
// a file supplying {host?, port?, uri?, api_token, ssl_cert_path?} for each of
// Radarr, Sonarr, and Lidarr, layered with environment variable overrides the
// way cartographus/internal/config layers Koanf sources.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"github.com/tomtom215/servarr-tui/internal/apperr"
	"github.com/tomtom215/servarr-tui/internal/logging"
)

// EnvPrefix is stripped from environment variables before they are merged
// into the config tree, e.g. SERVARR_RADARR_API_TOKEN -> radarr.api_token.
const EnvPrefix = "SERVARR_"

// ConfigPathEnvVar overrides the config file search path.
const ConfigPathEnvVar = "SERVARR_CONFIG_PATH"

// DefaultConfigPaths lists config file locations in priority order; the
// first one found is used.
var DefaultConfigPaths = []string{
	"servarr-tui.yaml",
	"servarr-tui.yml",
	"/etc/servarr-tui/config.yaml",
}

// BackendConfig is one ServArr instance's connection details.
type BackendConfig struct {
	Host        string `koanf:"host" validate:"omitempty,hostname|ip"`
	Port        int    `koanf:"port" validate:"omitempty,gt=0,lte=65535"`
	URI         string `koanf:"uri"`
	APIToken    string `koanf:"api_token" validate:"required"`
	SSLCertPath string `koanf:"ssl_cert_path"`
}

// BaseURL builds the scheme://host:port/uri base used by the HTTP adapter.
func (b *BackendConfig) BaseURL() string {
	scheme := "http"
	if b.SSLCertPath != "" {
		scheme = "https"
	}
	host := b.Host
	if host == "" {
		host = "localhost"
	}
	uri := strings.TrimSuffix(b.URI, "/")
	if b.Port != 0 {
		return fmt.Sprintf("%s://%s:%d%s", scheme, host, b.Port, uri)
	}
	return fmt.Sprintf("%s://%s%s", scheme, host, uri)
}

// String redacts APIToken, matching spec §6's debug-representation rule.
func (b BackendConfig) String() string {
	return fmt.Sprintf("BackendConfig{Host:%s Port:%d URI:%s APIToken:*********** SSLCertPath:%s}",
		b.Host, b.Port, b.URI, b.SSLCertPath)
}

// LoggingConfig configures internal/logging.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// Config is the process-wide configuration loaded once at startup.
type Config struct {
	Radarr  *BackendConfig `koanf:"radarr"`
	Sonarr  *BackendConfig `koanf:"sonarr"`
	Lidarr  *BackendConfig `koanf:"lidarr"`
	Logging LoggingConfig  `koanf:"logging"`
}

// String redacts every configured backend's APIToken.
func (c Config) String() string {
	var sb strings.Builder
	sb.WriteString("Config{")
	if c.Radarr != nil {
		fmt.Fprintf(&sb, " Radarr:%s", c.Radarr.String())
	}
	if c.Sonarr != nil {
		fmt.Fprintf(&sb, " Sonarr:%s", c.Sonarr.String())
	}
	if c.Lidarr != nil {
		fmt.Fprintf(&sb, " Lidarr:%s", c.Lidarr.String())
	}
	sb.WriteString(" }")
	return sb.String()
}

// Backends returns the configured backend names in tab-carousel order
// (Radarr, Sonarr, Lidarr), matching spec §8 scenario 1.
func (c *Config) Backends() []string {
	var out []string
	if c.Radarr != nil {
		out = append(out, "Radarr")
	}
	if c.Sonarr != nil {
		out = append(out, "Sonarr")
	}
	if c.Lidarr != nil {
		out = append(out, "Lidarr")
	}
	return out
}

func defaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{Level: "info", Format: "json"},
	}
}

// Load reads DefaultConfigPaths (or ConfigPathEnvVar), overlays environment
// variables, validates, and returns the Config. A config file is optional:
// an all-environment-variable configuration is valid as long as at least one
// backend ends up configured.
func Load() (*Config, error) {
	return LoadPath(resolvePath())
}

// LoadPath loads from an explicit path (used by Load and by tests);
// path == "" skips the file layer entirely.
func LoadPath(path string) (*Config, error) {
	k := koanf.New(".")
	cfg := defaultConfig()
	if err := k.Load(structs.Provider(cfg, "koanf"), nil); err != nil {
		return nil, apperr.NewConfigError("load defaults: %v", err)
	}

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, apperr.NewConfigError("parse config file %s: %v", path, err)
			}
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envTransform), nil); err != nil {
		return nil, apperr.NewConfigError("load environment overrides: %v", err)
	}

	out := defaultConfig()
	if err := k.Unmarshal("", out); err != nil {
		return nil, apperr.NewConfigError("unmarshal config: %v", err)
	}

	if err := Validate(out); err != nil {
		return nil, err
	}

	logging.Debug().Str("config", out.String()).Msg("configuration loaded")
	return out, nil
}

// envTransform converts SERVARR_RADARR_API_TOKEN into radarr.api_token.
func envTransform(s string) string {
	s = strings.TrimPrefix(s, EnvPrefix)
	return strings.Replace(strings.ToLower(s), "_", ".", 1)
}

func resolvePath() string {
	if p := os.Getenv(ConfigPathEnvVar); p != "" {
		return p
	}
	for _, p := range DefaultConfigPaths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

var validate = validator.New()

// Validate enforces spec §6: at least one backend must be configured, and
// every configured backend carries a non-empty api_token.
func Validate(c *Config) error {
	if c.Radarr == nil && c.Sonarr == nil && c.Lidarr == nil {
		return apperr.NewConfigError("no backend configured: set at least one of radarr, sonarr, lidarr")
	}
	for name, b := range map[string]*BackendConfig{"radarr": c.Radarr, "sonarr": c.Sonarr, "lidarr": c.Lidarr} {
		if b == nil {
			continue
		}
		if err := validate.Struct(b); err != nil {
			return apperr.NewConfigError("%s: %v", name, err)
		}
	}
	return nil
}
