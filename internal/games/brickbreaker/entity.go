package brickbreaker

import (
	"github.com/vovakirdan/brickbreaker/internal/core"
	"github.com/vovakirdan/brickbreaker/internal/scene"
)

// Piece is a game object registered for collision lookups.
type Piece interface {
	Handle() scene.Handle
}

// Hittable is implemented by pieces that react to being struck by the ball.
// Only bricks implement it.
type Hittable interface {
	Piece
	Hit()
}

// Entity is a rectangle on the scene. Ball, Paddle and Brick embed it.
type Entity struct {
	scene  scene.Scene
	handle scene.Handle
}

func newEntity(sc scene.Scene, shape scene.Shape, cx, cy, w, h float64, color core.Color, tags ...string) Entity {
	return Entity{
		scene:  sc,
		handle: sc.CreateEntity(shape, core.BoxAround(cx, cy, w, h), color, tags...),
	}
}

// Handle returns the scene handle of the entity.
func (e *Entity) Handle() scene.Handle {
	return e.handle
}

// Position returns the current bounding box.
func (e *Entity) Position() core.Box {
	return e.scene.BoundingBox(e.handle)
}

// Move translates the entity. No clamping happens at this layer.
func (e *Entity) Move(dx, dy float64) {
	e.scene.Move(e.handle, dx, dy)
}

// Remove detaches the entity from the scene permanently.
func (e *Entity) Remove() {
	e.scene.Remove(e.handle)
}
