// Package scene defines the drawing surface the game talks to and an
// in-memory implementation of it. Game pieces never touch the terminal: they
// create, move, recolour and remove handles here, and the platform layer
// paints the canvas into a screen buffer each frame.
package scene

import "github.com/vovakirdan/brickbreaker/internal/core"

// Handle identifies an entity or a text item on the scene.
type Handle int

// NoHandle is never returned for a live item.
const NoHandle Handle = 0

// Shape selects how an entity is painted.
type Shape int

const (
	ShapeRect Shape = iota
	ShapeOval
)

// Scene is the collaborator contract consumed by the game core.
type Scene interface {
	// CreateEntity places a new shape and returns its handle.
	CreateEntity(shape Shape, box core.Box, color core.Color, tags ...string) Handle
	// BoundingBox returns the current box of an entity.
	BoundingBox(h Handle) core.Box
	// Move translates an entity.
	Move(h Handle, dx, dy float64)
	// Remove deletes an entity or a text item.
	Remove(h Handle)
	// Recolor changes the fill colour of an entity.
	Recolor(h Handle, color core.Color)
	// QueryOverlapping returns every entity whose box overlaps box,
	// in creation order.
	QueryOverlapping(box core.Box) []Handle
	// ViewportSize returns the playfield dimensions.
	ViewportSize() (width, height float64)
	// DrawText places a text item centred on (x, y).
	DrawText(x, y float64, text string, size int) Handle
	// UpdateText replaces the content of a text item.
	UpdateText(h Handle, text string)
	// BindInput registers fn to run when key is pressed, replacing any
	// previous binding for that key.
	BindInput(key string, fn func())
	// UnbindInput drops the binding for key.
	UnbindInput(key string)
}
