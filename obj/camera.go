package obj

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"
)

// InputSource answers whether the four scroll keys are currently held.
// The camera polls it once per Update while unfocused.
type InputSource interface {
	ScrollUp() bool
	ScrollDown() bool
	ScrollLeft() bool
	ScrollRight() bool
}

// CursorTarget is a pointer-style entity the camera can center on.
type CursorTarget interface {
	Position() cp.Vector
	// FrameSize returns the cursor sprite's frame dimensions in pixels.
	FrameSize() (w, h int)
}

// UnitTarget is a map unit the camera can center on. Units are centered
// using the engine tile dimensions, not their own sprite frame.
type UnitTarget interface {
	SpritePosition() cp.Vector
}

// TileMap exposes the scrollable world's total pixel dimensions.
type TileMap interface {
	WidthInPixels() int
	HeightInPixels() int
}

// Camera scrolls a viewport across the world. While unfocused it pans
// from keyboard input; focused on a cursor or unit it recenters on the
// target every tick. Position is always kept inside the map bounds minus
// the viewport.
type Camera struct {
	// Position is the world-space top-left of the viewport in pixels.
	Position cp.Vector

	speed float64
	input InputSource

	cursor       CursorTarget
	unit         UnitTarget
	cursorActive bool
	unitActive   bool

	tileWidth  int
	tileHeight int
}

// NewCamera creates an unfocused camera at the world origin. tileWidth and
// tileHeight are the engine tile dimensions used when centering on a unit.
func NewCamera(input InputSource, tileWidth, tileHeight int) *Camera {
	return &Camera{
		speed:      5.0,
		input:      input,
		tileWidth:  tileWidth,
		tileHeight: tileHeight,
	}
}

// Speed returns the free-pan scroll speed in pixels per tick.
func (c *Camera) Speed() float64 {
	return c.speed
}

// SetSpeed sets the free-pan scroll speed. Values below 1 are floored to 1.
func (c *Camera) SetSpeed(v float64) {
	if v < 1.0 {
		v = 1.0
	}
	c.speed = v
}

// Transform returns the translation the renderer applies to the world's
// draw origin so that Position lands at the viewport's top-left.
func (c *Camera) Transform() ebiten.GeoM {
	var g ebiten.GeoM
	g.Translate(-c.Position.X, -c.Position.Y)
	return g
}

// IsFocused reports whether the camera is following either target kind.
func (c *Camera) IsFocused() bool {
	return c.cursorActive || c.unitActive
}

// FocusOnCursor stores t and makes it the active focus. A stored unit
// target is deactivated but retained, so it can be toggled back later.
func (c *Camera) FocusOnCursor(t CursorTarget) {
	c.cursor = t
	c.cursorActive = true
	c.unitActive = false
}

// FocusOnUnit stores t and makes it the active focus. A stored cursor
// target is deactivated but retained.
func (c *Camera) FocusOnUnit(t UnitTarget) {
	c.unit = t
	c.cursorActive = false
	c.unitActive = true
}

// ToggleFocus flips the active flag of each target kind that has a stored
// reference. The kinds toggle independently: with both references stored a
// single call flips both flags, and both can end up active at once, in
// which case Update gives the cursor priority. With nothing stored this is
// a no-op.
func (c *Camera) ToggleFocus() {
	if c.cursor != nil {
		c.cursorActive = !c.cursorActive
	}
	if c.unit != nil {
		c.unitActive = !c.unitActive
	}
}

// UnsetFocus drops both stored targets and returns the camera to
// keyboard-driven panning.
func (c *Camera) UnsetFocus() {
	c.cursor = nil
	c.unit = nil
	c.cursorActive = false
	c.unitActive = false
}

// Update advances the camera one tick: integrate keyboard panning or
// recenter on the active focus target, then clamp to the map bounds.
// viewportW and viewportH are the current viewport size in pixels.
func (c *Camera) Update(viewportW, viewportH int, m TileMap) {
	switch {
	case !c.IsFocused():
		var motion cp.Vector
		if c.input.ScrollUp() {
			motion.Y--
		}
		if c.input.ScrollDown() {
			motion.Y++
		}
		if c.input.ScrollLeft() {
			motion.X--
		}
		if c.input.ScrollRight() {
			motion.X++
		}
		if motion.X != 0 || motion.Y != 0 {
			c.Position = c.Position.Add(motion.Normalize().Mult(c.speed))
		}
	case c.cursorActive:
		// Cursor wins over an active unit focus.
		fw, fh := c.cursor.FrameSize()
		p := c.cursor.Position()
		c.Position.X = p.X + float64(fw/2) - float64(viewportW/2)
		c.Position.Y = p.Y + float64(fh/2) - float64(viewportH/2)
	case c.unitActive:
		p := c.unit.SpritePosition()
		c.Position.X = p.X + float64(c.tileWidth/2) - float64(viewportW/2)
		c.Position.Y = p.Y + float64(c.tileHeight/2) - float64(viewportH/2)
	}

	// Upper bound first, zero floor second: when the viewport exceeds the
	// map the floor wins and the axis rests at 0.
	if c.Position.X > float64(m.WidthInPixels()-viewportW) {
		c.Position.X = float64(m.WidthInPixels() - viewportW)
	}
	if c.Position.X < 0 {
		c.Position.X = 0
	}
	if c.Position.Y > float64(m.HeightInPixels()-viewportH) {
		c.Position.Y = float64(m.HeightInPixels() - viewportH)
	}
	if c.Position.Y < 0 {
		c.Position.Y = 0
	}
}
