// Package app owns everything that outlives a single game: the highscore,
// round history, sound output and the logger. The home screen and the SSH
// server each hold one App and ask it for a new session per game.
package app

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/brickbreaker/internal/audio"
	"github.com/vovakirdan/brickbreaker/internal/games/brickbreaker"
	"github.com/vovakirdan/brickbreaker/internal/scene"
	"github.com/vovakirdan/brickbreaker/internal/sched"
	"github.com/vovakirdan/brickbreaker/internal/storage"
)

// RoundRecorder persists finished rounds. *storage.Store implements it.
type RoundRecorder interface {
	SaveRound(r storage.Round) (int64, error)
}

// App carries state between games.
type App struct {
	highscore int
	keys      brickbreaker.KeyMap
	logger    *log.Logger
	store     RoundRecorder
	player    audio.Player
	now       func() time.Time

	session *brickbreaker.Session
	started time.Time
}

// Option configures an App.
type Option func(*App)

// WithStore records every finished round in rec.
func WithStore(rec RoundRecorder) Option {
	return func(a *App) { a.store = rec }
}

// WithPlayer plays sound cues for round events.
func WithPlayer(p audio.Player) Option {
	return func(a *App) {
		if p != nil {
			a.player = p
		}
	}
}

// WithLogger sets the logger handed to every session.
func WithLogger(l *log.Logger) Option {
	return func(a *App) {
		if l != nil {
			a.logger = l
		}
	}
}

// WithKeys sets the key bindings handed to every session.
func WithKeys(k brickbreaker.KeyMap) Option {
	return func(a *App) { a.keys = k }
}

// WithHighscore seeds the highscore.
func WithHighscore(score int) Option {
	return func(a *App) { a.highscore = max(0, score) }
}

// New creates an App with no games played.
func New(opts ...Option) *App {
	a := &App{
		keys:   brickbreaker.DefaultKeyMap(),
		logger: log.New(io.Discard),
		player: audio.Nop{},
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Highscore returns the best score seen by this App.
func (a *App) Highscore() int {
	return a.highscore
}

// Session returns the game in progress, or nil.
func (a *App) Session() *brickbreaker.Session {
	return a.session
}

// StartGame builds a session on sc and clock and enters Setup. Any game
// still in progress is abandoned. done runs after the highscore has been
// reconciled and the round recorded.
func (a *App) StartGame(sc scene.Scene, clock sched.Scheduler, done func(brickbreaker.Result, int)) (*brickbreaker.Session, error) {
	a.abandon()

	s, err := brickbreaker.NewSession(sc, clock,
		brickbreaker.WithHighscore(a.highscore),
		brickbreaker.WithLogger(a.logger),
		brickbreaker.WithKeys(a.keys),
		brickbreaker.WithObserver(a.observe),
	)
	if err != nil {
		return nil, fmt.Errorf("app: cannot create session: %w", err)
	}
	s.OnRoundEnd(func(result brickbreaker.Result, score int) {
		a.finish(s, result, score)
		if done != nil {
			done(result, score)
		}
	})
	if err := s.StartRound(); err != nil {
		s.Close()
		return nil, fmt.Errorf("app: cannot start round: %w", err)
	}

	a.session = s
	a.started = a.now()
	a.logger.Debug("game started", "highscore", a.highscore)
	return s, nil
}

func (a *App) finish(s *brickbreaker.Session, result brickbreaker.Result, score int) {
	a.highscore = max(a.highscore, score)
	if a.session == s {
		a.session = nil
	}
	elapsed := a.now().Sub(a.started)

	a.logger.Info("round finished",
		"result", result,
		"score", score,
		"highscore", a.highscore,
		"duration", elapsed.Round(time.Second),
	)

	if a.store == nil {
		return
	}
	_, err := a.store.SaveRound(storage.Round{
		Result:   result.String(),
		Score:    score,
		Lives:    s.Lives(),
		Duration: elapsed,
	})
	if err != nil {
		a.logger.Error("cannot record round", "err", err)
	}
}

// abandon closes the current session without reporting it.
func (a *App) abandon() {
	if a.session == nil {
		return
	}
	a.logger.Debug("game abandoned", "score", a.session.Score())
	a.session.Close()
	a.session = nil
}

// Quit abandons any game in progress. Call it when leaving the game screen
// before the round has ended.
func (a *App) Quit() {
	a.abandon()
}

// Close abandons the current game and releases the sound output.
func (a *App) Close() {
	a.abandon()
	a.player.Close()
}

var eventCues = map[brickbreaker.EventKind]audio.Cue{
	brickbreaker.EventLaunch:         audio.CueLaunch,
	brickbreaker.EventPaddleHit:      audio.CuePaddle,
	brickbreaker.EventBrickHit:       audio.CueBrick,
	brickbreaker.EventBrickDestroyed: audio.CueBreak,
	brickbreaker.EventLifeLost:       audio.CueLifeLost,
	brickbreaker.EventWin:            audio.CueWin,
	brickbreaker.EventLoss:           audio.CueLoss,
}

func (a *App) observe(e brickbreaker.Event) {
	if cue, ok := eventCues[e.Kind]; ok {
		a.player.Play(cue)
	}
}
