package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/brickbreaker/internal/app"
	"github.com/vovakirdan/brickbreaker/internal/core"
	"github.com/vovakirdan/brickbreaker/internal/games/brickbreaker"
)

// screenKind names the screen the root model is showing.
type screenKind int

const (
	screenHome screenKind = iota
	screenGame
	screenHistory
)

// Model is the top-level Bubble Tea model: home -> game -> home, with the
// round history reachable from home. The same model runs locally and per
// SSH session.
type Model struct {
	app      *app.App
	history  HistorySource
	keys     *KeyMapper
	config   core.RuntimeConfig
	screen   screenKind
	home     HomeModel
	game     GameModel
	scores   HistoryModel
	last     *Outcome
	err      error
	quitting bool
}

// NewModel creates the root model on the home screen. history may be nil.
func NewModel(a *app.App, history HistorySource, keys brickbreaker.KeyMap, cfg core.RuntimeConfig) Model {
	return Model{
		app:     a,
		history: history,
		keys:    NewKeyMapper(keys),
		config:  cfg,
		home:    NewHomeModel(a.Highscore(), nil, cfg.ScreenW, cfg.ScreenH),
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return m.home.Init()
}

// Update routes messages to the current screen and switches screens.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.screen {
	case screenGame:
		return m.updateGame(msg)
	case screenHistory:
		return m.updateHistory(msg)
	default:
		return m.updateHome(msg)
	}
}

func (m Model) updateHome(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.home.Update(msg)
	if home, ok := next.(HomeModel); ok {
		m.home = home
	}

	switch {
	case m.home.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.home.PlaySelected():
		m.game = NewGameModel(m.app, m.keys, m.config)
		if err := m.game.Err(); err != nil {
			m.err = err
			m.quitting = true
			return m, tea.Quit
		}
		m.screen = screenGame
		return m, m.game.Init()

	case m.home.ScoresSelected():
		m.scores = NewHistoryModel(m.history, m.config.ScreenW, m.config.ScreenH)
		m.screen = screenHistory
		return m, m.scores.Init()
	}
	return m, cmd
}

func (m Model) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	if game, ok := next.(GameModel); ok {
		m.game = game
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.game.BackToMenu() {
		if outcome, ok := m.game.Outcome(); ok {
			m.last = &outcome
		}
		m.goHome()
		return m, nil
	}
	return m, cmd
}

func (m Model) updateHistory(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scores.Update(msg)
	if scores, ok := next.(HistoryModel); ok {
		m.scores = scores
	}

	if m.scores.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.scores.IsGoingBack() {
		m.goHome()
		return m, nil
	}
	return m, cmd
}

// goHome rebuilds the home screen with the reconciled highscore.
func (m *Model) goHome() {
	m.home = NewHomeModel(m.app.Highscore(), m.last, m.config.ScreenW, m.config.ScreenH)
	m.screen = screenHome
}

// View renders the current screen.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	switch m.screen {
	case screenGame:
		return m.game.View()
	case screenHistory:
		return m.scores.View()
	default:
		return m.home.View()
	}
}

// Err returns the error that ended the program, if any.
func (m Model) Err() error {
	return m.err
}

// Run starts the Bubble Tea program on the local terminal.
func Run(a *app.App, history HistorySource, keys brickbreaker.KeyMap, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewModel(a, history, keys, cfg),
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(Model); ok {
		return m.Err()
	}
	return nil
}
