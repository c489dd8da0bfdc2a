// Package tui runs brickbreaker in the terminal with Bubble Tea: the home
// screen, the game screen, the round history and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg is sent once per rendered frame. The game screen advances its
// scheduler by the wall-clock time between frames. Game identifies the
// game screen that armed the frame; stale frames from a closed game are
// dropped.
type FrameMsg struct {
	Game uint64
	At   time.Time
}

// maxFrameStep caps how much game time a single frame may advance, so a
// stalled terminal does not fast-forward the round.
const maxFrameStep = 100 * time.Millisecond

// frameCmd returns a Bubble Tea command that sends frame messages at the specified rate.
func frameCmd(game uint64, fps int) tea.Cmd {
	if fps <= 0 {
		fps = 60
	}
	interval := time.Second / time.Duration(fps)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg{Game: game, At: t}
	})
}

// frameStep returns the game time to advance between two frames.
func frameStep(last, now time.Time) time.Duration {
	if last.IsZero() {
		return 0
	}
	d := now.Sub(last)
	if d < 0 {
		return 0
	}
	return min(d, maxFrameStep)
}
