// brickbreaker is a single-player brick breaker for the terminal.
//
// Usage:
//
//	brickbreaker              - Play (same as "brickbreaker play")
//	brickbreaker play         - Play on this terminal
//	brickbreaker scores       - Show the round history
//	brickbreaker serve        - Host the game over SSH
//	brickbreaker config       - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Config file (YAML or TOML)
//	--db <path>         - Round history database
//	--no-db             - Do not record rounds
//	--fps <rate>        - Redraw rate
//	--sound             - Enable sound cues
//	--log-file <path>   - Write logs to this file
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/brickbreaker/internal/config"
	"github.com/vovakirdan/brickbreaker/internal/games/brickbreaker"
	"github.com/vovakirdan/brickbreaker/internal/storage"
)

var (
	flagConfig   string
	flagDBPath   string
	flagNoDB     bool
	flagFPS      int
	flagSound    bool
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "brickbreaker",
	Short: "Brick Breaker - break every brick before you run out of balls",
	Long: `Brick Breaker is a single-player brick breaker for the terminal.

Move the paddle, launch the ball and clear all 24 bricks. You have three
spare balls; the game ends when the fourth one is lost.

Available commands:
  play     - Play on this terminal (default)
  scores   - View the round history
  serve    - Start SSH server for remote play
  config   - Print the effective configuration

Examples:
  brickbreaker
  brickbreaker --sound
  brickbreaker scores --recent
  brickbreaker serve --addr :2222`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config file (.yaml or .toml)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to round history database (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&flagNoDB, "no-db", false, "Do not open the round history database")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Redraw rate (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&flagSound, "sound", false, "Enable sound cues")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig reads the config file and applies the command-line overrides.
func loadConfig(cmd *cobra.Command) (config.Config, string, error) {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, "", err
	}

	flags := cmd.Flags()
	if flags.Changed("db") {
		cfg.Storage.Path = flagDBPath
	}
	if flagNoDB {
		cfg.Storage.Disabled = true
	}
	if flags.Changed("fps") {
		cfg.Display.FPS = flagFPS
	}
	if flagSound {
		cfg.Audio.Enabled = true
	}
	if flags.Changed("log-file") {
		cfg.Log.File = flagLogFile
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = flagLogLevel
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, "", err
	}
	return cfg, source, nil
}

// newLogger builds the process logger. The game owns the terminal, so
// without a log file the output is discarded.
func newLogger(cfg config.LogConfig) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}

	var w io.Writer = io.Discard
	closeFn := func() {}
	if cfg.File != "" {
		if dir := filepath.Dir(cfg.File); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
			}
		}
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeFn = func() { _ = f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "brickbreaker",
		Level:           level,
	})
	return logger, closeFn, nil
}

// openStore opens the round history, or returns nil when it is disabled.
func openStore(cfg config.StorageConfig) (*storage.Store, error) {
	if cfg.Disabled || cfg.Path == "" {
		return nil, nil
	}
	return storage.Open(cfg.Path)
}

// gameKeys converts configured key names to game bindings.
func gameKeys(cfg config.KeysConfig) brickbreaker.KeyMap {
	return brickbreaker.KeyMap{
		Left:   config.KeyNames(cfg.Left),
		Right:  config.KeyNames(cfg.Right),
		Pause:  config.KeyNames(cfg.Pause),
		Launch: config.KeyNames(cfg.Launch),
	}
}
