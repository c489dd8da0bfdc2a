package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/brickbreaker/internal/app"
	"github.com/vovakirdan/brickbreaker/internal/core"
	"github.com/vovakirdan/brickbreaker/internal/games/brickbreaker"
	"github.com/vovakirdan/brickbreaker/internal/storage"
)

var (
	testRuntime = core.RuntimeConfig{ScreenW: 80, ScreenH: 24, FrameRate: 60}
	spaceKey    = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	frameT0     = time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
)

// frameDriver feeds frame messages with a steadily advancing timestamp.
type frameDriver struct {
	at time.Time
}

func (d *frameDriver) next(game uint64, step time.Duration) FrameMsg {
	d.at = d.at.Add(step)
	return FrameMsg{Game: game, At: d.at}
}

func updateGame(t *testing.T, m GameModel, msg tea.Msg) (GameModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	gm, ok := next.(GameModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return gm, cmd
}

// loseGame misses four balls and waits out the end delay.
func loseGame(t *testing.T, a *app.App, send func(tea.Msg), frame func(time.Duration)) {
	t.Helper()
	frame(0)
	for range 4 {
		send(spaceKey)
		s := a.Session()
		if s == nil {
			t.Fatal("no session while the round is running")
		}
		s.Ball().Move(0, brickbreaker.FieldHeight)
		frame(17 * time.Millisecond)
	}
	for range 25 {
		frame(100 * time.Millisecond)
	}
}

func TestGameModelRoundToOutcome(t *testing.T) {
	a := app.New()
	m := NewGameModel(a, NewKeyMapper(brickbreaker.DefaultKeyMap()), testRuntime)
	if err := m.Err(); err != nil {
		t.Fatalf("NewGameModel() failed: %v", err)
	}
	if m.Init() == nil {
		t.Fatal("Init should arm the first frame")
	}

	d := &frameDriver{at: frameT0}
	send := func(msg tea.Msg) { m, _ = updateGame(t, m, msg) }
	frame := func(step time.Duration) { send(d.next(m.id, step)) }
	loseGame(t, a, send, frame)

	if !m.Finished() || !m.BackToMenu() {
		t.Fatalf("finished=%v back=%v, expected both after the end delay", m.Finished(), m.BackToMenu())
	}
	outcome, ok := m.Outcome()
	if !ok || outcome.Result != brickbreaker.ResultLoss || outcome.Score != 0 {
		t.Errorf("Outcome() = (%+v, %v), expected a lost round with score 0", outcome, ok)
	}
}

func TestGameModelDropsStaleFrames(t *testing.T) {
	a := app.New()
	m := NewGameModel(a, NewKeyMapper(brickbreaker.DefaultKeyMap()), testRuntime)

	m, cmd := updateGame(t, m, FrameMsg{Game: m.id + 1000, At: frameT0})
	if cmd != nil {
		t.Error("a stale frame must not arm another frame")
	}
	if !m.lastFrame.IsZero() {
		t.Error("a stale frame must not move the clock")
	}

	_, cmd = updateGame(t, m, FrameMsg{Game: m.id, At: frameT0})
	if cmd == nil {
		t.Error("a current frame should arm the next one")
	}
}

func TestGameModelKeys(t *testing.T) {
	a := app.New()
	m := NewGameModel(a, NewKeyMapper(brickbreaker.DefaultKeyMap()), testRuntime)

	x0 := a.Session().Paddle().Position().X0
	m, _ = updateGame(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if got := a.Session().Paddle().Position().X0; got != x0-10 {
		t.Errorf("paddle x0 = %v after left, expected %v", got, x0-10)
	}

	m, _ = updateGame(t, m, spaceKey)
	if a.Session().State() != brickbreaker.StateRunning {
		t.Errorf("state = %v after space, expected running", a.Session().State())
	}

	m, _ = updateGame(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackToMenu() || m.Finished() {
		t.Errorf("esc: back=%v finished=%v, expected an abandoned round", m.BackToMenu(), m.Finished())
	}
	if a.Session() != nil {
		t.Error("esc should abandon the session")
	}

	m2 := NewGameModel(a, NewKeyMapper(brickbreaker.DefaultKeyMap()), testRuntime)
	m2, cmd := updateGame(t, m2, runeKey('q'))
	if !m2.IsQuitting() || cmd == nil {
		t.Error("q should quit the program")
	}
	if m2.View() != "" {
		t.Error("a quitting model renders nothing")
	}
}

func TestGameModelView(t *testing.T) {
	a := app.New()
	m := NewGameModel(a, NewKeyMapper(brickbreaker.DefaultKeyMap()), testRuntime)

	view := m.View()
	lines := strings.Split(view, "\n")
	if len(lines) != testRuntime.ScreenH {
		t.Errorf("view has %d lines, expected %d", len(lines), testRuntime.ScreenH)
	}
	if !strings.Contains(view, "space launch") {
		t.Error("view should end with the control hint")
	}
}

func TestModelHomeGameHome(t *testing.T) {
	a := app.New()
	var m tea.Model = NewModel(a, nil, brickbreaker.DefaultKeyMap(), testRuntime)
	if !strings.Contains(m.View(), "Highscore: 0") {
		t.Errorf("home view should show the highscore:\n%s", m.View())
	}

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.(Model).screen != screenGame || cmd == nil {
		t.Fatalf("enter should open the game screen with a frame armed")
	}

	d := &frameDriver{at: frameT0}
	send := func(msg tea.Msg) { m, _ = m.Update(msg) }
	frame := func(step time.Duration) { send(d.next(m.(Model).game.id, step)) }
	loseGame(t, a, send, frame)

	root := m.(Model)
	if root.screen != screenHome {
		t.Fatalf("screen = %v after the round, expected home", root.screen)
	}
	if root.last == nil || root.last.Result != brickbreaker.ResultLoss {
		t.Errorf("last outcome = %+v, expected a loss", root.last)
	}
	if !strings.Contains(root.View(), "Game Over!") {
		t.Errorf("home view should report the last round:\n%s", root.View())
	}
}

func TestModelHistoryScreen(t *testing.T) {
	src := &fakeHistory{rounds: []storage.Round{{Result: "win", Score: 470, Lives: 2}}}
	var m tea.Model = NewModel(app.New(), src, brickbreaker.DefaultKeyMap(), testRuntime)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if m.(Model).screen != screenHistory {
		t.Fatal("tab should open the round history")
	}
	if !strings.Contains(m.View(), "470") {
		t.Errorf("history view should list the round:\n%s", m.View())
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.(Model).screen != screenHome {
		t.Error("esc should return home")
	}

	m, cmd := m.Update(runeKey('q'))
	if cmd == nil || m.View() != "" {
		t.Error("q on the home screen should quit")
	}
}

func TestGameModelScreenshot(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	a := app.New()
	m := NewGameModel(a, NewKeyMapper(brickbreaker.DefaultKeyMap()), testRuntime)

	path, err := m.saveScreenshot(frameT0)
	if err != nil {
		t.Fatalf("saveScreenshot() failed: %v", err)
	}
	if want := filepath.Join(home, ".brickbreaker", "screenshots", "brickbreaker_20260101_120000.txt"); path != want {
		t.Errorf("path = %q, expected %q", path, want)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() failed: %v", err)
	}
	if !strings.Contains(string(data), "Press Space to start") {
		t.Errorf("screenshot should hold the playfield text:\n%s", data)
	}
	if got := strings.Count(string(data), "\n"); got != testRuntime.ScreenH-1 {
		t.Errorf("screenshot has %d lines, expected %d", got, testRuntime.ScreenH-1)
	}

	m, _ = updateGame(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	if m.BackToMenu() || m.IsQuitting() || a.Session() == nil {
		t.Error("ctrl+s must not leave the game")
	}
}
