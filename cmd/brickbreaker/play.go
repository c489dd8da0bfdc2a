package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/brickbreaker/internal/app"
	"github.com/vovakirdan/brickbreaker/internal/audio"
	"github.com/vovakirdan/brickbreaker/internal/core"
	"github.com/vovakirdan/brickbreaker/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play on this terminal",
	Long: `Start brickbreaker on the home screen.

Controls (default bindings, see "brickbreaker config"):
  Left/A, Right/D  - Move the paddle
  Space            - Launch the ball
  P                - Pause / resume
  Esc              - Abandon the round and return home
  Q/Ctrl+C         - Quit

Examples:
  brickbreaker play
  brickbreaker play --sound --fps 30
  brickbreaker play --config ./brickbreaker.toml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, source, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer closeLog()
	logger.Info("starting", "config", source)

	rc := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rc.ScreenW, rc.ScreenH = w, h
	}
	rc.FrameRate = cfg.Display.FPS

	keys := gameKeys(cfg.Keys)
	opts := []app.Option{
		app.WithKeys(keys),
		app.WithLogger(logger),
	}

	var history tui.HistorySource
	store, err := openStore(cfg.Storage)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open round history: %v\n", err)
		logger.Warn("round history disabled", "err", err)
	}
	if store != nil {
		defer store.Close()
		history = store
		opts = append(opts, app.WithStore(store))
	}

	if cfg.Audio.Enabled {
		speaker, err := audio.NewSpeaker(cfg.Audio.Volume)
		if err != nil {
			logger.Warn("sound disabled", "err", err)
		} else {
			opts = append(opts, app.WithPlayer(speaker))
		}
	}

	a := app.New(opts...)
	defer a.Close()

	if err := tui.Run(a, history, keys, rc); err != nil {
		logger.Error("game stopped", "err", err)
		return fmt.Errorf("error running game: %w", err)
	}
	logger.Info("bye", "highscore", a.Highscore())
	return nil
}
