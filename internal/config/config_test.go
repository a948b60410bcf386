// servarr-tui - Terminal dashboard and CLI for Radarr, Sonarr, and Lidarr
// Copyright 2026 tomtom215
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/servarr-tui

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadPath_FileThenEnvLayering(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "servarr-tui.yaml")
	yaml := "radarr:\n  host: radarr.local\n  port: 7878\n  api_token: from-file\n"
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatalf("write test config file: %v", err)
	}

	// Env overrides the file's api_token (layering order: defaults -> file -> env).
	t.Setenv("SERVARR_RADARR_API_TOKEN", "from-env")

	cfg, err := LoadPath(path)
	if err != nil {
		t.Fatalf("LoadPath() error: %v", err)
	}
	if cfg.Radarr == nil {
		t.Fatalf("Radarr not configured")
	}
	if cfg.Radarr.Host != "radarr.local" || cfg.Radarr.Port != 7878 {
		t.Fatalf("file-layer fields not loaded: %+v", cfg.Radarr)
	}
	if cfg.Radarr.APIToken != "from-env" {
		t.Fatalf("APIToken = %q, want env override from-env", cfg.Radarr.APIToken)
	}
}

func TestLoadPath_EnvOnlyConfigurationIsValid(t *testing.T) {
	t.Setenv("SERVARR_SONARR_API_TOKEN", "token-123")
	t.Setenv("SERVARR_SONARR_HOST", "sonarr.local")

	cfg, err := LoadPath("")
	if err != nil {
		t.Fatalf("LoadPath() error: %v", err)
	}
	if cfg.Sonarr == nil || cfg.Sonarr.APIToken != "token-123" {
		t.Fatalf("env-only Sonarr config not loaded: %+v", cfg.Sonarr)
	}
	if cfg.Radarr != nil || cfg.Lidarr != nil {
		t.Fatalf("unconfigured backends should stay nil: radarr=%v lidarr=%v", cfg.Radarr, cfg.Lidarr)
	}
}

func TestValidate_NoBackendConfiguredIsAnError(t *testing.T) {
	c := &Config{}
	if err := Validate(c); err == nil {
		t.Fatalf("Validate() with no backend configured returned nil, want an error")
	}
}

func TestValidate_MissingAPITokenIsAnError(t *testing.T) {
	c := &Config{Radarr: &BackendConfig{Host: "radarr.local", Port: 7878}}
	if err := Validate(c); err == nil {
		t.Fatalf("Validate() with an empty APIToken returned nil, want an error")
	}
}

func TestValidate_WellFormedConfigPasses(t *testing.T) {
	c := &Config{Radarr: &BackendConfig{Host: "radarr.local", Port: 7878, APIToken: "abc"}}
	if err := Validate(c); err != nil {
		t.Fatalf("Validate() error on a well-formed config: %v", err)
	}
}

func TestBackendConfig_String_RedactsAPIToken(t *testing.T) {
	b := BackendConfig{Host: "radarr.local", Port: 7878, APIToken: "super-secret"}
	s := b.String()
	if strings.Contains(s, "super-secret") {
		t.Fatalf("String() leaked the API token: %s", s)
	}
}

func TestConfig_Backends_ListsConfiguredInTabOrder(t *testing.T) {
	c := &Config{
		Radarr: &BackendConfig{APIToken: "a"},
		Lidarr: &BackendConfig{APIToken: "b"},
	}
	got := c.Backends()
	want := []string{"Radarr", "Lidarr"}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("Backends() = %v, want %v", got, want)
	}
}
