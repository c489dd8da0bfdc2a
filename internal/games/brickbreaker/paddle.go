package brickbreaker

import (
	"github.com/vovakirdan/brickbreaker/internal/core"
	"github.com/vovakirdan/brickbreaker/internal/scene"
)

// Paddle is the player-controlled bar. Before launch it carries the ball.
type Paddle struct {
	Entity
	ball *Ball
}

// NewPaddle places a paddle centred on (x, y).
func NewPaddle(sc scene.Scene, x, y float64) *Paddle {
	return &Paddle{
		Entity: newEntity(sc, scene.ShapeRect, x, y, PaddleWidth, PaddleHeight, core.ColorOrange),
	}
}

// Move slides the paddle horizontally by offset, dragging a carried ball
// along. Moves that would leave the playfield are ignored.
func (p *Paddle) Move(offset float64) {
	box := p.Position()
	width, _ := p.scene.ViewportSize()

	if box.X0+offset < 0 || box.X1+offset > width {
		return
	}
	p.Entity.Move(offset, 0)
	if p.ball != nil {
		p.ball.Move(offset, 0)
	}
}

// Carry sets the ball resting on the paddle; nil releases it.
func (p *Paddle) Carry(b *Ball) {
	p.ball = b
}

// Carried returns the ball resting on the paddle, if any.
func (p *Paddle) Carried() *Ball {
	return p.ball
}
