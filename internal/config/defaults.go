package config

import (
	_ "embed"
)

//go:embed defaults/brickbreaker.yaml
var defaultYAML []byte

// Default returns the hard-coded configuration.
func Default() Config {
	return Config{
		Keys: KeysConfig{
			Left:   []string{"left", "a"},
			Right:  []string{"right", "d"},
			Pause:  []string{"p"},
			Launch: []string{"space"},
		},
		Audio: AudioConfig{
			Enabled: false,
			Volume:  0.5,
		},
		Storage: StorageConfig{
			Path: "~/.brickbreaker/rounds.db",
		},
		Server: ServerConfig{
			Host:        "0.0.0.0",
			Port:        2222,
			HostKeyPath: ".ssh/brickbreaker_ed25519",
			IdleTimeout: 600,
		},
		Log: LogConfig{
			Level: "info",
		},
		Display: DisplayConfig{
			FPS: 60,
		},
	}
}
