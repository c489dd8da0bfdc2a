package brickbreaker

import (
	"math"

	"github.com/vovakirdan/brickbreaker/internal/core"
)

// BrickSnapshot is the state of one active brick.
type BrickSnapshot struct {
	X, Y       float64 // Centre
	Durability int
}

// Snapshot is a read-only copy of the session state for determinism checks.
type Snapshot struct {
	Tick      uint64
	State     string
	Score     int
	Lives     int
	Highscore int
	Paused    bool

	BallBox      core.Box
	BallVelocity Vec
	PaddleBox    core.Box

	// Active bricks ordered by scene handle
	Bricks []BrickSnapshot
}

// Snapshot returns the current state of the session.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:      s.ticks,
		State:     s.state.String(),
		Score:     s.score,
		Lives:     s.lives,
		Highscore: s.highscore,
		Paused:    s.paused,
	}
	if s.ball != nil {
		snap.BallBox = s.ball.Position()
		snap.BallVelocity = s.ball.Velocity
	}
	if s.paddle != nil {
		snap.PaddleBox = s.paddle.Position()
	}
	if s.bricks != nil {
		for _, b := range s.bricks.All() {
			x, y := b.Position().Center()
			snap.Bricks = append(snap.Bricks, BrickSnapshot{X: x, Y: y, Durability: b.durability})
		}
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Score)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Highscore) //#nosec G115 -- hash computation
	for _, r := range snap.State {
		h = h*31 + uint64(r) //#nosec G115 -- hash computation
	}
	if snap.Paused {
		h = h*31 + 1
	}

	h = hashBox(h, snap.BallBox)
	h = h*31 + math.Float64bits(snap.BallVelocity.DX)
	h = h*31 + math.Float64bits(snap.BallVelocity.DY)
	h = hashBox(h, snap.PaddleBox)

	for _, b := range snap.Bricks {
		h = h*31 + math.Float64bits(b.X)
		h = h*31 + math.Float64bits(b.Y)
		h = h*31 + uint64(b.Durability) //#nosec G115 -- hash computation
	}
	return h
}

func hashBox(h uint64, b core.Box) uint64 {
	h = h*31 + math.Float64bits(b.X0)
	h = h*31 + math.Float64bits(b.Y0)
	h = h*31 + math.Float64bits(b.X1)
	h = h*31 + math.Float64bits(b.Y1)
	return h
}
