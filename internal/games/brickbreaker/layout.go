// Package brickbreaker implements the brick-breaking game: the ball, paddle
// and brick pieces, collision resolution, and the round state machine that
// drives them through a scheduler.
package brickbreaker

import "time"

// Playfield and piece geometry, in playfield units.
const (
	FieldWidth  = 610
	FieldHeight = 400

	BallSize   = 10
	BallSpawnY = 310
	BallSpeed  = 5

	PaddleWidth  = 100
	PaddleHeight = 10
	PaddleY      = 326
	PaddleStep   = 10

	BrickWidth  = 75
	BrickHeight = 20
	BrickMargin = 5
)

// Round rules.
const (
	StartingLives = 3
	PointsPerHit  = 10

	TickInterval = 17 * time.Millisecond
	EndDelay     = 2000 * time.Millisecond
)

// HUD placement.
const (
	livesTextX     = 50
	scoreTextX     = 300
	highscoreTextX = 550
	hudTextY       = 20
	hudTextSize    = 15

	messageX    = 300
	messageY    = 200
	messageSize = 40
)

// brickRow describes one row of the starting wall, top to bottom.
type brickRow struct {
	y          float64
	durability int
}

var brickRows = []brickRow{
	{y: 50, durability: 3},
	{y: 70, durability: 2},
	{y: 90, durability: 1},
}

// brickColumns returns the centre x of every brick column that fits in a
// playfield of the given width.
func brickColumns(width float64) []float64 {
	var xs []float64
	for x := float64(BrickMargin); x < width-BrickMargin; x += BrickWidth {
		xs = append(xs, x+BrickWidth/2.0)
	}
	return xs
}
