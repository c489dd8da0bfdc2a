package scene

import (
	"math"
	"slices"

	"github.com/vovakirdan/brickbreaker/internal/core"
)

// Glyphs used when painting entities.
const (
	RectGlyph = '█'
	OvalGlyph = '●'
)

// BackgroundColor fills the playfield behind every entity.
const BackgroundColor = core.ColorLilac

// Canvas is an in-memory Scene.
// It is not safe for concurrent use; the platform owns it from one goroutine.
type Canvas struct {
	width    float64
	height   float64
	next     Handle
	order    []Handle // live entities in creation order
	entities map[Handle]*entity
	texts    map[Handle]*textItem
	textSeq  []Handle
	bindings map[string]func()
}

type entity struct {
	shape Shape
	box   core.Box
	color core.Color
	tags  []string
}

type textItem struct {
	x, y float64
	text string
	size int
}

var _ Scene = (*Canvas)(nil)

// NewCanvas creates an empty canvas with the given playfield size.
func NewCanvas(width, height float64) *Canvas {
	return &Canvas{
		width:    width,
		height:   height,
		entities: make(map[Handle]*entity),
		texts:    make(map[Handle]*textItem),
		bindings: make(map[string]func()),
	}
}

func (c *Canvas) nextHandle() Handle {
	c.next++
	return c.next
}

// CreateEntity places a new shape and returns its handle.
func (c *Canvas) CreateEntity(shape Shape, box core.Box, color core.Color, tags ...string) Handle {
	h := c.nextHandle()
	c.entities[h] = &entity{
		shape: shape,
		box:   box,
		color: color,
		tags:  slices.Clone(tags),
	}
	c.order = append(c.order, h)
	return h
}

// BoundingBox returns the current box of an entity.
// Unknown handles yield the zero box.
func (c *Canvas) BoundingBox(h Handle) core.Box {
	if e, ok := c.entities[h]; ok {
		return e.box
	}
	return core.Box{}
}

// Move translates an entity. Unknown handles are ignored.
func (c *Canvas) Move(h Handle, dx, dy float64) {
	if e, ok := c.entities[h]; ok {
		e.box = e.box.Translate(dx, dy)
	}
}

// Remove deletes an entity or text item. Unknown handles are ignored.
func (c *Canvas) Remove(h Handle) {
	if _, ok := c.entities[h]; ok {
		delete(c.entities, h)
		c.order = slices.DeleteFunc(c.order, func(o Handle) bool { return o == h })
		return
	}
	if _, ok := c.texts[h]; ok {
		delete(c.texts, h)
		c.textSeq = slices.DeleteFunc(c.textSeq, func(o Handle) bool { return o == h })
	}
}

// Recolor changes the fill colour of an entity.
func (c *Canvas) Recolor(h Handle, color core.Color) {
	if e, ok := c.entities[h]; ok {
		e.color = color
	}
}

// Color returns the fill colour of an entity.
func (c *Canvas) Color(h Handle) (core.Color, bool) {
	e, ok := c.entities[h]
	if !ok {
		return core.ColorDefault, false
	}
	return e.color, true
}

// Exists reports whether h refers to a live entity or text item.
func (c *Canvas) Exists(h Handle) bool {
	if _, ok := c.entities[h]; ok {
		return true
	}
	_, ok := c.texts[h]
	return ok
}

// QueryOverlapping returns every entity whose box overlaps box.
func (c *Canvas) QueryOverlapping(box core.Box) []Handle {
	var hits []Handle
	for _, h := range c.order {
		if c.entities[h].box.Overlaps(box) {
			hits = append(hits, h)
		}
	}
	return hits
}

// FindWithTag returns every entity carrying tag, in creation order.
func (c *Canvas) FindWithTag(tag string) []Handle {
	var found []Handle
	for _, h := range c.order {
		if slices.Contains(c.entities[h].tags, tag) {
			found = append(found, h)
		}
	}
	return found
}

// ViewportSize returns the playfield dimensions.
func (c *Canvas) ViewportSize() (float64, float64) {
	return c.width, c.height
}

// DrawText places a text item centred on (x, y).
func (c *Canvas) DrawText(x, y float64, text string, size int) Handle {
	h := c.nextHandle()
	c.texts[h] = &textItem{x: x, y: y, text: text, size: size}
	c.textSeq = append(c.textSeq, h)
	return h
}

// UpdateText replaces the content of a text item.
func (c *Canvas) UpdateText(h Handle, text string) {
	if t, ok := c.texts[h]; ok {
		t.text = text
	}
}

// Text returns the content of a text item.
func (c *Canvas) Text(h Handle) (string, bool) {
	t, ok := c.texts[h]
	if !ok {
		return "", false
	}
	return t.text, true
}

// BindInput registers fn for key.
func (c *Canvas) BindInput(key string, fn func()) {
	c.bindings[key] = fn
}

// UnbindInput drops the binding for key.
func (c *Canvas) UnbindInput(key string) {
	delete(c.bindings, key)
}

// Press runs the callback bound to key.
// Returns false when nothing is bound.
func (c *Canvas) Press(key string) bool {
	fn, ok := c.bindings[key]
	if !ok {
		return false
	}
	fn()
	return true
}

// Render paints the canvas into dst, scaling playfield units to cells.
// The background is filled first, then entities in creation order, then
// text on top.
func (c *Canvas) Render(dst *core.Screen) {
	if c.width <= 0 || c.height <= 0 {
		return
	}
	sx := float64(dst.Width()) / c.width
	sy := float64(dst.Height()) / c.height

	dst.DrawRect(core.NewRect(0, 0, dst.Width(), dst.Height()), ' ', BackgroundColor)

	for _, h := range c.order {
		e := c.entities[h]
		glyph := RectGlyph
		if e.shape == ShapeOval {
			glyph = OvalGlyph
		}
		x0, x1 := span(e.box.X0, e.box.X1, sx)
		y0, y1 := span(e.box.Y0, e.box.Y1, sy)
		dst.DrawRect(core.NewRect(x0, y0, x1-x0, y1-y0), glyph, e.color)
	}

	for _, h := range c.textSeq {
		t := c.texts[h]
		runes := []rune(t.text)
		col := int(math.Round(t.x*sx)) - len(runes)/2
		row := int(math.Round(t.y * sy))
		dst.DrawText(col, row, t.text)
	}
}

// span maps [lo, hi] in playfield units to a half-open cell range that is
// never empty. Rounding both edges keeps adjacent boxes from sharing cells.
func span(lo, hi, scale float64) (int, int) {
	a := int(math.Round(lo * scale))
	b := int(math.Round(hi * scale))
	if b <= a {
		b = a + 1
	}
	return a, b
}
