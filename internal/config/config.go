// Package config loads brickbreaker settings from YAML or TOML files.
// Only the shell around the game is configurable; playfield geometry and
// ball physics are fixed.
package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Config is the complete settings tree.
type Config struct {
	Keys    KeysConfig    `yaml:"keys" toml:"keys"`
	Audio   AudioConfig   `yaml:"audio" toml:"audio"`
	Storage StorageConfig `yaml:"storage" toml:"storage"`
	Server  ServerConfig  `yaml:"server" toml:"server"`
	Log     LogConfig     `yaml:"log" toml:"log"`
	Display DisplayConfig `yaml:"display" toml:"display"`
}

// KeysConfig lists the key names bound to each control.
// Names follow the terminal key names ("left", "a", "space").
type KeysConfig struct {
	Left   []string `yaml:"left" toml:"left"`
	Right  []string `yaml:"right" toml:"right"`
	Pause  []string `yaml:"pause" toml:"pause"`
	Launch []string `yaml:"launch" toml:"launch"`
}

// AudioConfig controls the sound cues.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled" toml:"enabled"`
	Volume  float64 `yaml:"volume" toml:"volume"` // 0.0 - 1.0
}

// StorageConfig locates the round history database.
type StorageConfig struct {
	Path     string `yaml:"path" toml:"path"`
	Disabled bool   `yaml:"disabled" toml:"disabled"`
}

// ServerConfig configures the SSH server.
type ServerConfig struct {
	Host        string `yaml:"host" toml:"host"`
	Port        int    `yaml:"port" toml:"port"`
	HostKeyPath string `yaml:"host_key_path" toml:"host_key_path"`
	IdleTimeout int    `yaml:"idle_timeout_secs" toml:"idle_timeout_secs"`
}

// LogConfig configures the logger.
type LogConfig struct {
	Level string `yaml:"level" toml:"level"`
	File  string `yaml:"file" toml:"file"` // Empty discards output
}

// DisplayConfig configures the renderer.
type DisplayConfig struct {
	FPS int `yaml:"fps" toml:"fps"`
}

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid setting")

var logLevels = []string{"debug", "info", "warn", "error"}

// Validate reports the first setting that cannot be used.
func (c Config) Validate() error {
	bindings := map[string][]string{
		"left":   c.Keys.Left,
		"right":  c.Keys.Right,
		"pause":  c.Keys.Pause,
		"launch": c.Keys.Launch,
	}
	for _, name := range []string{"left", "right", "pause", "launch"} {
		if len(bindings[name]) == 0 {
			return fmt.Errorf("%w: keys.%s needs at least one key", ErrInvalid, name)
		}
		for _, k := range bindings[name] {
			if strings.TrimSpace(k) == "" && k != " " {
				return fmt.Errorf("%w: keys.%s has an empty key name", ErrInvalid, name)
			}
		}
	}

	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("%w: audio.volume %.2f outside 0..1", ErrInvalid, c.Audio.Volume)
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("%w: server.port %d", ErrInvalid, c.Server.Port)
	}
	if c.Server.IdleTimeout < 0 {
		return fmt.Errorf("%w: server.idle_timeout_secs must not be negative", ErrInvalid)
	}
	if !slices.Contains(logLevels, strings.ToLower(c.Log.Level)) {
		return fmt.Errorf("%w: log.level %q", ErrInvalid, c.Log.Level)
	}
	if c.Display.FPS < 1 || c.Display.FPS > 240 {
		return fmt.Errorf("%w: display.fps %d outside 1..240", ErrInvalid, c.Display.FPS)
	}
	return nil
}

// KeyName maps a configured key name to the name the terminal reports.
func KeyName(name string) string {
	switch strings.ToLower(name) {
	case "space", "spacebar":
		return " "
	default:
		return name
	}
}

// KeyNames applies KeyName to every entry.
func KeyNames(names []string) []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = KeyName(n)
	}
	return out
}
