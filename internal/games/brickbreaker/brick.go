package brickbreaker

import (
	"errors"
	"fmt"
	"slices"

	"github.com/vovakirdan/brickbreaker/internal/core"
	"github.com/vovakirdan/brickbreaker/internal/scene"
)

// BrickTag marks brick entities on the scene.
const BrickTag = "brick"

// ErrInvalidDurability is returned for bricks built outside the 1..3 range.
var ErrInvalidDurability = errors.New("brickbreaker: brick durability must be 1, 2 or 3")

// brickColors maps remaining durability to the tier colour.
var brickColors = map[int]core.Color{
	1: core.ColorPink,
	2: core.ColorLime,
	3: core.ColorSky,
}

// BrickColor returns the tier colour for a durability value.
func BrickColor(durability int) (core.Color, bool) {
	c, ok := brickColors[durability]
	return c, ok
}

// BrickSet is the set of bricks still in play, keyed by scene handle.
type BrickSet struct {
	bricks map[scene.Handle]*Brick
}

// NewBrickSet creates an empty set.
func NewBrickSet() *BrickSet {
	return &BrickSet{bricks: make(map[scene.Handle]*Brick)}
}

// Len returns the number of active bricks.
func (s *BrickSet) Len() int {
	return len(s.bricks)
}

// Get returns the active brick with handle h.
func (s *BrickSet) Get(h scene.Handle) (*Brick, bool) {
	b, ok := s.bricks[h]
	return b, ok
}

// All returns the active bricks ordered by handle.
func (s *BrickSet) All() []*Brick {
	handles := make([]scene.Handle, 0, len(s.bricks))
	for h := range s.bricks {
		handles = append(handles, h)
	}
	slices.Sort(handles)

	out := make([]*Brick, len(handles))
	for i, h := range handles {
		out[i] = s.bricks[h]
	}
	return out
}

// Brick is a destructible block with 1 to 3 hit points.
type Brick struct {
	Entity
	durability int
	set        *BrickSet
}

// NewBrick places a brick centred on (x, y) and adds it to set.
func NewBrick(sc scene.Scene, set *BrickSet, x, y float64, durability int) (*Brick, error) {
	color, ok := BrickColor(durability)
	if !ok {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidDurability, durability)
	}

	b := &Brick{
		Entity:     newEntity(sc, scene.ShapeRect, x, y, BrickWidth, BrickHeight, color, BrickTag),
		durability: durability,
		set:        set,
	}
	set.bricks[b.handle] = b
	return b, nil
}

// Durability returns the remaining hit points.
func (b *Brick) Durability() int {
	return b.durability
}

// Hit takes one hit point. At zero the brick leaves the active set and the
// scene; otherwise it is recoloured to its new tier.
func (b *Brick) Hit() {
	if b.durability <= 0 {
		return
	}
	b.durability--

	if b.durability == 0 {
		delete(b.set.bricks, b.handle)
		b.Remove()
		return
	}
	b.scene.Recolor(b.handle, brickColors[b.durability])
}
