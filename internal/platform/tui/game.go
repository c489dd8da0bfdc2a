package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/brickbreaker/internal/app"
	"github.com/vovakirdan/brickbreaker/internal/core"
	"github.com/vovakirdan/brickbreaker/internal/games/brickbreaker"
	"github.com/vovakirdan/brickbreaker/internal/scene"
	"github.com/vovakirdan/brickbreaker/internal/sched"
)

var gameIDs atomic.Uint64

// screenshotKey saves the playfield to a text file.
const screenshotKey = "ctrl+s"

var helpLineStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Outcome is the result of a finished round.
type Outcome struct {
	Result brickbreaker.Result
	Score  int
}

// roundState is shared with the round-end callback, which outlives any
// single copy of the model.
type roundState struct {
	done    bool
	outcome Outcome
}

// GameModel is the Bubble Tea model for the game screen. It owns the canvas
// the session draws on and the virtual clock the session is timed by.
type GameModel struct {
	id        uint64
	app       *app.App
	keys      *KeyMapper
	canvas    *scene.Canvas
	clock     *sched.Queue
	screen    *core.Screen
	fps       int
	lastFrame time.Time
	round     *roundState
	err       error
	back      bool
	quitting  bool
}

// NewGameModel starts a new game on a fresh canvas.
func NewGameModel(a *app.App, keys *KeyMapper, cfg core.RuntimeConfig) GameModel {
	m := GameModel{
		id:     gameIDs.Add(1),
		app:    a,
		keys:   keys,
		canvas: scene.NewCanvas(brickbreaker.FieldWidth, brickbreaker.FieldHeight),
		clock:  sched.NewQueue(),
		screen: core.NewScreen(cfg.ScreenW, max(1, cfg.ScreenH-1)),
		fps:    cfg.FrameRate,
	}

	round := &roundState{}
	m.round = round
	_, err := a.StartGame(m.canvas, m.clock, func(r brickbreaker.Result, score int) {
		round.done = true
		round.outcome = Outcome{Result: r, Score: score}
	})
	if err != nil {
		m.err = err
		m.back = true
	}
	return m
}

// Init starts the frame loop.
func (m GameModel) Init() tea.Cmd {
	if m.back {
		return nil
	}
	return frameCmd(m.id, m.fps)
}

// Update handles messages for the game screen.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, max(1, msg.Height-1))
		return m, nil

	case FrameMsg:
		if msg.Game != m.id {
			return m, nil
		}
		return m.handleFrame(msg.At)
	}
	return m, nil
}

func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == screenshotKey {
		//nolint:errcheck // Best-effort save, game continues regardless
		m.saveScreenshot(time.Now())
		return m, nil
	}

	action, isQuit := m.keys.MapGameKey(msg)
	switch {
	case isQuit:
		m.leave()
		m.quitting = true
		return m, tea.Quit
	case action == core.ActionBack:
		m.leave()
		m.back = true
		return m, nil
	case action != core.ActionNone:
		m.canvas.Press(msg.String())
	}
	return m, nil
}

func (m GameModel) handleFrame(now time.Time) (tea.Model, tea.Cmd) {
	if m.back || m.quitting {
		return m, nil
	}
	m.clock.Advance(frameStep(m.lastFrame, now))
	m.lastFrame = now

	if m.Finished() {
		m.clock.Stop()
		m.back = true
		return m, nil
	}
	return m, frameCmd(m.id, m.fps)
}

// saveScreenshot writes the current playfield as plain text to
// ~/.brickbreaker/screenshots and returns the file path.
func (m GameModel) saveScreenshot(now time.Time) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot get home directory: %w", err)
	}
	dir := filepath.Join(home, ".brickbreaker", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("cannot create screenshot directory: %w", err)
	}

	m.screen.Clear()
	m.canvas.Render(m.screen)

	path := filepath.Join(dir, fmt.Sprintf("brickbreaker_%s.txt", now.Format("20060102_150405")))
	if err := os.WriteFile(path, []byte(m.screen.String()+"\n"), 0o600); err != nil {
		return "", fmt.Errorf("cannot write screenshot: %w", err)
	}
	return path, nil
}

// leave abandons the round and stops the clock.
func (m GameModel) leave() {
	m.app.Quit()
	m.clock.Stop()
}

// View renders the playfield and the control hint.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}
	m.screen.Clear()
	m.canvas.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpLineStyle.Render(m.keys.GameHelp())
}

// Finished reports whether the round has ended and its result is known.
func (m GameModel) Finished() bool {
	return m.round.done
}

// Outcome returns the round result once Finished reports true.
func (m GameModel) Outcome() (Outcome, bool) {
	if !m.Finished() {
		return Outcome{}, false
	}
	return m.round.outcome, true
}

// BackToMenu reports whether the game screen should be closed.
func (m GameModel) BackToMenu() bool {
	return m.back
}

// IsQuitting reports whether the user asked to exit.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// Err returns the error that prevented the game from starting.
func (m GameModel) Err() error {
	return m.err
}
