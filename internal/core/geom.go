// Package core provides fundamental types and utilities for the game.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Rect is an integer cell rectangle used by the screen buffer.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Box is an axis-aligned bounding box in playfield units.
// (X0, Y0) is the top-left corner, (X1, Y1) the bottom-right one.
type Box struct {
	X0, Y0 float64
	X1, Y1 float64
}

// BoxAround builds a box from a centre point and full width/height.
func BoxAround(cx, cy, w, h float64) Box {
	return Box{
		X0: cx - w/2,
		Y0: cy - h/2,
		X1: cx + w/2,
		Y1: cy + h/2,
	}
}

// Width returns the horizontal extent of the box.
func (b Box) Width() float64 {
	return b.X1 - b.X0
}

// Height returns the vertical extent of the box.
func (b Box) Height() float64 {
	return b.Y1 - b.Y0
}

// Center returns the centre point of the box.
func (b Box) Center() (float64, float64) {
	return (b.X0 + b.X1) / 2, (b.Y0 + b.Y1) / 2
}

// Translate returns the box moved by (dx, dy).
func (b Box) Translate(dx, dy float64) Box {
	return Box{X0: b.X0 + dx, Y0: b.Y0 + dy, X1: b.X1 + dx, Y1: b.Y1 + dy}
}

// Overlaps reports whether two boxes intersect.
// Edges are inclusive: boxes that only touch count as overlapping.
func (b Box) Overlaps(other Box) bool {
	if b.X0 > other.X1 || other.X0 > b.X1 {
		return false
	}
	if b.Y0 > other.Y1 || other.Y0 > b.Y1 {
		return false
	}
	return true
}
