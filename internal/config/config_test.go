package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

// isolate points the search path at empty directories.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestEmbeddedMatchesDefault(t *testing.T) {
	isolate(t)

	cfg, source, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if source != SourceEmbedded {
		t.Errorf("source = %q, expected %q", source, SourceEmbedded)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("embedded config drifted from Default():\n%+v\n%+v", cfg, Default())
	}
}

func TestLoadPartialYAML(t *testing.T) {
	isolate(t)
	path := writeFile(t, "custom.yaml", `
keys:
  launch: [enter]
audio:
  enabled: true
log:
  level: debug
`)

	cfg, source, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if source != path {
		t.Errorf("source = %q", source)
	}
	if !reflect.DeepEqual(cfg.Keys.Launch, []string{"enter"}) {
		t.Errorf("launch keys = %v", cfg.Keys.Launch)
	}
	if !cfg.Audio.Enabled || cfg.Log.Level != "debug" {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	// Unlisted settings keep their defaults.
	if !reflect.DeepEqual(cfg.Keys.Left, Default().Keys.Left) || cfg.Server.Port != 2222 {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoadTOML(t *testing.T) {
	isolate(t)
	path := writeFile(t, "custom.toml", `
[server]
port = 2323
idle_timeout_secs = 30

[display]
fps = 30
`)

	cfg, _, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Server.Port != 2323 || cfg.Server.IdleTimeout != 30 || cfg.Display.FPS != 30 {
		t.Errorf("toml not applied: %+v", cfg)
	}
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("host default lost: %q", cfg.Server.Host)
	}
}

func TestLoadSearchesLocalConfigs(t *testing.T) {
	isolate(t)
	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("configs", "brickbreaker.yaml"), []byte("display:\n  fps: 24\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, source, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Display.FPS != 24 {
		t.Errorf("fps = %d, expected 24", cfg.Display.FPS)
	}
	if source != filepath.Join("configs", "brickbreaker.yaml") {
		t.Errorf("source = %q", source)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	isolate(t)

	if _, _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing custom file should fail")
	}

	bad := writeFile(t, "bad.yaml", "keys: [not, a, map")
	if _, _, err := Load(bad); err == nil {
		t.Error("malformed yaml should fail")
	}

	invalid := writeFile(t, "invalid.yaml", "log:\n  level: loud\n")
	if _, _, err := Load(invalid); !errors.Is(err, ErrInvalid) {
		t.Errorf("invalid level err = %v, expected ErrInvalid", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"defaults", func(*Config) {}, true},
		{"no left keys", func(c *Config) { c.Keys.Left = nil }, false},
		{"blank key", func(c *Config) { c.Keys.Pause = []string{""} }, false},
		{"literal space", func(c *Config) { c.Keys.Launch = []string{" "} }, true},
		{"volume too high", func(c *Config) { c.Audio.Volume = 1.5 }, false},
		{"port zero", func(c *Config) { c.Server.Port = 0 }, false},
		{"negative idle", func(c *Config) { c.Server.IdleTimeout = -1 }, false},
		{"upper case level", func(c *Config) { c.Log.Level = "WARN" }, true},
		{"unknown level", func(c *Config) { c.Log.Level = "trace" }, false},
		{"fps zero", func(c *Config) { c.Display.FPS = 0 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.ok && err != nil {
				t.Errorf("Validate() = %v, expected nil", err)
			}
			if !tt.ok && !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, expected ErrInvalid", err)
			}
		})
	}
}

func TestKeyNames(t *testing.T) {
	got := KeyNames([]string{"space", "Space", "left", "a"})
	want := []string{" ", " ", "left", "a"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("KeyNames = %q, expected %q", got, want)
	}
}
