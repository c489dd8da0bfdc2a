package brickbreaker

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/brickbreaker/internal/scene"
	"github.com/vovakirdan/brickbreaker/internal/sched"
)

// State is the round state.
type State int

const (
	StateSetup   State = iota // Ball on paddle, waiting for launch
	StateRunning              // Tick loop active
	StatePaused               // Tick loop suspended
	StateWin                  // All bricks cleared
	StateLoss                 // Out of lives
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateSetup:
		return "setup"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateWin:
		return "win"
	case StateLoss:
		return "loss"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further ticks can happen.
func (s State) Terminal() bool {
	return s == StateWin || s == StateLoss
}

// Result is the outcome handed to the round-end callback.
type Result int

const (
	ResultWin Result = iota
	ResultLoss
)

// String returns the result name.
func (r Result) String() string {
	if r == ResultWin {
		return "win"
	}
	return "loss"
}

// Errors returned by NewSession and StartRound.
var (
	ErrNoScene       = errors.New("brickbreaker: scene is required")
	ErrNoScheduler   = errors.New("brickbreaker: scheduler is required")
	ErrRoundStarted  = errors.New("brickbreaker: round already started")
	ErrSessionClosed = errors.New("brickbreaker: session closed")
)

// KeyMap lists the scene keys bound to each control.
type KeyMap struct {
	Left   []string
	Right  []string
	Pause  []string
	Launch []string
}

// DefaultKeyMap returns the stock bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:   []string{"left"},
		Right:  []string{"right"},
		Pause:  []string{"p"},
		Launch: []string{" "},
	}
}

// Option configures a Session.
type Option func(*Session)

// WithHighscore seeds the highscore carried over from earlier rounds.
func WithHighscore(score int) Option {
	return func(s *Session) {
		if score > 0 {
			s.highscore = score
		}
	}
}

// WithLogger sets the logger used for state transitions.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithKeys overrides the key bindings.
func WithKeys(k KeyMap) Option {
	return func(s *Session) {
		s.keys = k
	}
}

// WithObserver registers a callback for round events.
func WithObserver(fn func(Event)) Option {
	return func(s *Session) {
		s.observer = fn
	}
}

// Session runs one game: a brick wall, three lives and the tick loop.
//
// All methods must be called from the goroutine that advances the
// scheduler; the session never spawns goroutines of its own.
type Session struct {
	scene    scene.Scene
	clock    sched.Scheduler
	logger   *log.Logger
	keys     KeyMap
	observer func(Event)
	resolver Resolver

	paddle *Paddle
	ball   *Ball
	bricks *BrickSet
	field  playfield

	score     int
	lives     int
	highscore int
	paused    bool
	state     State
	started   bool
	closed    bool
	reported  bool
	ticks     uint64

	livesText     scene.Handle
	scoreText     scene.Handle
	highscoreText scene.Handle
	messageText   scene.Handle

	onEnd     func(Result, int)
	tickToken sched.Token
	endToken  sched.Token
}

// NewSession creates a session drawing on sc and timed by clock.
func NewSession(sc scene.Scene, clock sched.Scheduler, opts ...Option) (*Session, error) {
	if sc == nil {
		return nil, ErrNoScene
	}
	if clock == nil {
		return nil, ErrNoScheduler
	}

	s := &Session{
		scene:    sc,
		clock:    clock,
		logger:   log.New(io.Discard),
		keys:     DefaultKeyMap(),
		resolver: NewResolver(sc),
		lives:    StartingLives,
		state:    StateSetup,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// OnRoundEnd registers the callback invoked once when the game ends.
func (s *Session) OnRoundEnd(fn func(Result, int)) {
	s.onEnd = fn
}

// StartRound builds the paddle and brick wall, binds the controls and
// enters Setup.
func (s *Session) StartRound() error {
	if s.closed {
		return ErrSessionClosed
	}
	if s.started {
		return ErrRoundStarted
	}

	width, _ := s.scene.ViewportSize()
	s.paddle = NewPaddle(s.scene, width/2, PaddleY)
	s.bricks = NewBrickSet()
	s.field = playfield{paddle: s.paddle, bricks: s.bricks}

	for _, x := range brickColumns(width) {
		for _, row := range brickRows {
			if _, err := NewBrick(s.scene, s.bricks, x, row.y, row.durability); err != nil {
				return fmt.Errorf("building brick wall: %w", err)
			}
		}
	}
	s.started = true

	s.bind(s.keys.Left, func() { s.MovePaddle(-PaddleStep) })
	s.bind(s.keys.Right, func() { s.MovePaddle(PaddleStep) })
	s.bind(s.keys.Pause, s.TogglePause)

	s.logger.Debug("round started", "bricks", s.bricks.Len(), "highscore", s.highscore)
	s.setup()
	return nil
}

// setup places a fresh ball on the paddle and waits for launch.
func (s *Session) setup() {
	s.state = StateSetup
	s.addBall()
	s.updateLivesText()
	s.updateScoreText()
	s.messageText = s.scene.DrawText(messageX, messageY, launchPrompt(s.keys.Launch), messageSize)
	s.bind(s.keys.Launch, s.Launch)
	s.logger.Debug("setup", "lives", s.lives, "score", s.score)
}

// launchPrompt names the first launch key in the setup message.
func launchPrompt(keys []string) string {
	name := "Space"
	if len(keys) > 0 && keys[0] != " " {
		name = keys[0]
		if r := []rune(name); len(r) > 1 {
			name = strings.ToUpper(string(r[0])) + string(r[1:])
		}
	}
	return "Press " + name + " to start"
}

func (s *Session) addBall() {
	if s.ball != nil {
		s.ball.Remove()
	}
	box := s.paddle.Position()
	x, _ := box.Center()
	s.ball = NewBall(s.scene, x, BallSpawnY)
	s.paddle.Carry(s.ball)
}

// Launch releases the ball and starts the tick loop. Only valid in Setup.
func (s *Session) Launch() {
	if s.closed || s.state != StateSetup || !s.started {
		return
	}
	s.unbind(s.keys.Launch)
	s.scene.Remove(s.messageText)
	s.messageText = scene.NoHandle
	s.paddle.Carry(nil)
	s.paused = false
	s.state = StateRunning
	s.emit(EventLaunch)
	s.logger.Debug("launch", "lives", s.lives)
	s.tick()
}

// TogglePause suspends or resumes a running round. It has no effect in
// Setup or after the game has ended.
func (s *Session) TogglePause() {
	if s.closed {
		return
	}
	switch s.state {
	case StateRunning:
		s.paused = true
		s.state = StatePaused
		s.cancelTick()
		s.emit(EventPause)
		s.logger.Debug("paused", "score", s.score)
	case StatePaused:
		s.paused = false
		s.state = StateRunning
		s.emit(EventResume)
		s.logger.Debug("resumed", "score", s.score)
		s.tick()
	}
}

// MovePaddle slides the paddle by offset while the round is live.
func (s *Session) MovePaddle(offset float64) {
	if s.closed || s.paddle == nil || s.paused || s.state.Terminal() {
		return
	}
	s.paddle.Move(offset)
}

// tick performs one step of the game loop and re-arms itself.
func (s *Session) tick() {
	if s.paused || s.state != StateRunning {
		return
	}
	s.ticks++

	s.checkCollisions()

	if s.bricks.Len() == 0 {
		s.endRound(ResultWin)
		return
	}

	_, height := s.scene.ViewportSize()
	if s.ball.Position().Y1 >= height {
		s.lives--
		s.emit(EventLifeLost)
		s.logger.Debug("ball lost", "lives", s.lives)
		if s.lives < 0 {
			s.endRound(ResultLoss)
		} else {
			s.setup()
		}
		return
	}

	s.ball.Update()
	s.arm()
}

func (s *Session) arm() {
	s.cancelTick()
	s.tickToken = s.clock.ScheduleOnce(TickInterval, s.tick)
}

func (s *Session) cancelTick() {
	if s.tickToken != nil {
		s.tickToken.Cancel()
		s.tickToken = nil
	}
}

// checkCollisions bounces the ball off whatever it touches and scores
// every brick in the overlap set.
func (s *Session) checkCollisions() {
	hits := s.resolver.Resolve(s.ball, s.field)
	s.ball.Collide(hits)

	for _, p := range hits {
		if _, ok := p.(Hittable); !ok {
			s.emit(EventPaddleHit)
			continue
		}
		s.score += PointsPerHit
		s.updateScoreText()
		s.emit(EventBrickHit)
		b, alive := s.bricks.Get(p.Handle())
		if !alive {
			s.emit(EventBrickDestroyed)
			continue
		}
		color, _ := BrickColor(b.Durability())
		s.logger.Debug("brick hit", "durability", b.Durability(), "color", color)
	}
}

// endRound enters a terminal state and schedules the round-end callback.
func (s *Session) endRound(result Result) {
	s.paused = true
	s.cancelTick()
	s.unbindAll()

	if result == ResultWin {
		s.state = StateWin
		s.highscore = max(s.score, s.highscore)
		s.updateScoreText()
		s.messageText = s.scene.DrawText(messageX, messageY, "You Win! Congrats!", messageSize)
		s.emit(EventWin)
	} else {
		s.state = StateLoss
		s.messageText = s.scene.DrawText(messageX, messageY, "Game Over!", messageSize)
		s.emit(EventLoss)
	}
	s.logger.Info("round over", "result", result, "score", s.score, "highscore", s.highscore)

	s.endToken = s.clock.ScheduleOnce(EndDelay, func() { s.finish(result) })
}

func (s *Session) finish(result Result) {
	if s.reported {
		return
	}
	s.reported = true
	if s.onEnd != nil {
		s.onEnd(result, s.score)
	}
}

// Close cancels pending callbacks and drops the key bindings. A closed
// session never reports a result.
func (s *Session) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.cancelTick()
	if s.endToken != nil {
		s.endToken.Cancel()
		s.endToken = nil
	}
	s.unbindAll()
}

func (s *Session) updateLivesText() {
	text := fmt.Sprintf("Lives: %d", s.lives)
	if s.livesText == scene.NoHandle {
		s.livesText = s.scene.DrawText(livesTextX, hudTextY, text, hudTextSize)
		return
	}
	s.scene.UpdateText(s.livesText, text)
}

func (s *Session) updateScoreText() {
	score := fmt.Sprintf("Score: %d", s.score)
	high := fmt.Sprintf("Highscore: %d", s.highscore)

	if s.scoreText == scene.NoHandle {
		s.scoreText = s.scene.DrawText(scoreTextX, hudTextY, score, hudTextSize)
	} else {
		s.scene.UpdateText(s.scoreText, score)
	}
	if s.highscoreText == scene.NoHandle {
		s.highscoreText = s.scene.DrawText(highscoreTextX, hudTextY, high, hudTextSize)
	} else {
		s.scene.UpdateText(s.highscoreText, high)
	}
}

func (s *Session) bind(keys []string, fn func()) {
	for _, k := range keys {
		s.scene.BindInput(k, fn)
	}
}

func (s *Session) unbind(keys []string) {
	for _, k := range keys {
		s.scene.UnbindInput(k)
	}
}

func (s *Session) unbindAll() {
	s.unbind(s.keys.Left)
	s.unbind(s.keys.Right)
	s.unbind(s.keys.Pause)
	s.unbind(s.keys.Launch)
}

func (s *Session) emit(kind EventKind) {
	if s.observer != nil {
		s.observer(Event{Kind: kind, Score: s.score, Lives: s.lives})
	}
}

// Score returns the current score.
func (s *Session) Score() int { return s.score }

// Lives returns the remaining lives. It reaches -1 when the game is lost.
func (s *Session) Lives() int { return s.lives }

// Paused reports whether the tick loop is suspended.
func (s *Session) Paused() bool { return s.paused }

// Highscore returns the best score known to this session.
func (s *Session) Highscore() int { return s.highscore }

// State returns the current round state.
func (s *Session) State() State { return s.state }

// Ticks returns the number of loop steps run so far.
func (s *Session) Ticks() uint64 { return s.ticks }

// BricksLeft returns the number of bricks still in play.
func (s *Session) BricksLeft() int {
	if s.bricks == nil {
		return 0
	}
	return s.bricks.Len()
}

// Ball returns the active ball, or nil before StartRound.
func (s *Session) Ball() *Ball { return s.ball }

// Paddle returns the paddle, or nil before StartRound.
func (s *Session) Paddle() *Paddle { return s.paddle }
