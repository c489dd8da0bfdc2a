package brickbreaker

import (
	"github.com/vovakirdan/brickbreaker/internal/core"
	"github.com/vovakirdan/brickbreaker/internal/scene"
)

// Vec is a 2D velocity in playfield units per tick.
type Vec struct {
	DX, DY float64
}

// Ball is the moving entity that breaks bricks.
type Ball struct {
	Entity
	Velocity Vec
}

// NewBall places a ball centred on (x, y), heading up and to the right.
func NewBall(sc scene.Scene, x, y float64) *Ball {
	return &Ball{
		Entity:   newEntity(sc, scene.ShapeOval, x, y, BallSize, BallSize, core.ColorWhite),
		Velocity: Vec{DX: BallSpeed, DY: -BallSpeed},
	}
}

// Update reflects the ball off the side and top walls, then moves it by its
// velocity. The reflection and the move happen in the same tick.
func (b *Ball) Update() {
	box := b.Position()
	width, _ := b.scene.ViewportSize()

	if box.X0 <= 0 || box.X1 >= width {
		b.Velocity.DX = -b.Velocity.DX
	}
	if box.Y0 <= 0 {
		b.Velocity.DY = -b.Velocity.DY
	}

	b.Move(b.Velocity.DX, b.Velocity.DY)
}

// Collide reacts to the pieces currently overlapping the ball. Any contact
// flips the vertical velocity exactly once, whichever side was struck; every
// hittable piece is then hit.
func (b *Ball) Collide(obstacles []Piece) {
	if len(obstacles) == 0 {
		return
	}
	b.Velocity.DY = -b.Velocity.DY

	for _, o := range obstacles {
		if h, ok := o.(Hittable); ok {
			h.Hit()
		}
	}
}
