package brickbreaker

import "github.com/vovakirdan/brickbreaker/internal/scene"

// Pieces looks up the game piece registered for a scene handle.
type Pieces interface {
	Lookup(h scene.Handle) (Piece, bool)
}

// Resolver finds the pieces touching the ball.
type Resolver struct {
	scene scene.Scene
}

// NewResolver creates a resolver over sc.
func NewResolver(sc scene.Scene) Resolver {
	return Resolver{scene: sc}
}

// Resolve returns the active pieces whose boxes overlap the ball, in scene
// creation order. Scene items that are not registered pieces (the ball
// itself, text) are skipped.
func (r Resolver) Resolve(ball *Ball, active Pieces) []Piece {
	var hits []Piece
	for _, h := range r.scene.QueryOverlapping(ball.Position()) {
		if p, ok := active.Lookup(h); ok {
			hits = append(hits, p)
		}
	}
	return hits
}

// playfield is the active piece set of a round: the paddle plus live bricks.
type playfield struct {
	paddle *Paddle
	bricks *BrickSet
}

func (f playfield) Lookup(h scene.Handle) (Piece, bool) {
	if f.paddle != nil && f.paddle.Handle() == h {
		return f.paddle, true
	}
	if b, ok := f.bricks.Get(h); ok {
		return b, true
	}
	return nil, false
}
