package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/brickbreaker/internal/games/brickbreaker"
)

// HomeKeyMap defines the key bindings for the home screen.
type HomeKeyMap struct {
	Play   key.Binding
	Scores key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HomeKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Play, k.Scores, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k HomeKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Play, k.Scores, k.Quit}}
}

// DefaultHomeKeyMap returns default key bindings.
func DefaultHomeKeyMap() HomeKeyMap {
	return HomeKeyMap{
		Play: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "play"),
		),
		Scores: key.NewBinding(
			key.WithKeys("tab", "s"),
			key.WithHelp("tab", "round history"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// homeChoice is what the user picked on the home screen.
type homeChoice int

const (
	choiceNone homeChoice = iota
	choicePlay
	choiceScores
	choiceQuit
)

var (
	homeTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#d6d1f5"))
	homeButtonStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 3).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("208"))
	homeWinStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#66ff66"))
	homeLossStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff99cc"))
	homeDimStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// HomeModel is the Bubble Tea model for the home screen: title, the
// current highscore and the play button.
type HomeModel struct {
	highscore int
	last      *Outcome
	width     int
	height    int
	keys      HomeKeyMap
	help      help.Model
	choice    homeChoice
}

// NewHomeModel creates a home screen. last is the round that just ended,
// or nil.
func NewHomeModel(highscore int, last *Outcome, width, height int) HomeModel {
	return HomeModel{
		highscore: highscore,
		last:      last,
		width:     width,
		height:    height,
		keys:      DefaultHomeKeyMap(),
		help:      help.New(),
	}
}

// Init initializes the home model.
func (m HomeModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the home screen.
func (m HomeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.choice = choiceQuit
			return m, tea.Quit
		case key.Matches(msg, m.keys.Play):
			m.choice = choicePlay
		case key.Matches(msg, m.keys.Scores):
			m.choice = choiceScores
		}
	}
	return m, nil
}

// View renders the home screen.
func (m HomeModel) View() string {
	if m.choice == choiceQuit {
		return ""
	}

	lines := []string{
		homeTitleStyle.Render("B R I C K   B R E A K E R"),
		"",
		fmt.Sprintf("Highscore: %d", m.highscore),
	}
	if m.last != nil {
		lines = append(lines, "", lastRoundLine(*m.last))
	}
	lines = append(lines,
		"",
		homeButtonStyle.Render("Play"),
		"",
		m.help.View(m.keys),
	)

	content := lipgloss.JoinVertical(lipgloss.Center, lines...)
	if m.width <= 0 || m.height <= 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// lastRoundLine summarises the round that just ended.
func lastRoundLine(o Outcome) string {
	var b strings.Builder
	if o.Result == brickbreaker.ResultWin {
		b.WriteString(homeWinStyle.Render("You Win! Congrats!"))
	} else {
		b.WriteString(homeLossStyle.Render("Game Over!"))
	}
	b.WriteString(homeDimStyle.Render(fmt.Sprintf("  score %d", o.Score)))
	return b.String()
}

// Highscore returns the highscore shown on the screen.
func (m HomeModel) Highscore() int {
	return m.highscore
}

// PlaySelected reports whether the user asked to start a game.
func (m HomeModel) PlaySelected() bool {
	return m.choice == choicePlay
}

// ScoresSelected reports whether the user asked for the round history.
func (m HomeModel) ScoresSelected() bool {
	return m.choice == choiceScores
}

// IsQuitting returns true if user wants to quit.
func (m HomeModel) IsQuitting() bool {
	return m.choice == choiceQuit
}
