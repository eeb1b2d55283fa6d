package obj

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"
	"github.com/rodaine/triumph-cap4053sp2011/prefabs"
)

// Cursor is the pointer entity: its world position tracks the OS mouse
// through the camera's current scroll offset.
type Cursor struct {
	Pos cp.Vector

	frameW int
	frameH int
	color  color.RGBA
	img    *ebiten.Image
}

func NewCursor(spec *prefabs.CursorSpec) *Cursor {
	c := &Cursor{}
	c.ApplySpec(spec)
	return c
}

// ApplySpec re-applies a cursor prefab, e.g. after a hot reload. The sprite
// image is rebuilt on the next Draw.
func (c *Cursor) ApplySpec(spec *prefabs.CursorSpec) {
	c.frameW = spec.FrameWidth
	c.frameH = spec.FrameHeight
	c.color = parseHexColor(spec.Color)
	c.img = nil
}

// Update moves the cursor to the mouse position in world coordinates.
func (c *Cursor) Update(cam *Camera) {
	mx, my := ebiten.CursorPosition()
	c.Pos.X = cam.Position.X + float64(mx)
	c.Pos.Y = cam.Position.Y + float64(my)
}

// Position implements CursorTarget.
func (c *Cursor) Position() cp.Vector {
	return c.Pos
}

// FrameSize implements CursorTarget.
func (c *Cursor) FrameSize() (w, h int) {
	return c.frameW, c.frameH
}

func (c *Cursor) Draw(screen *ebiten.Image, cam *Camera) {
	if c.img == nil {
		c.img = solidImage(c.frameW, c.frameH, c.color)
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(c.Pos.X, c.Pos.Y)
	op.GeoM.Concat(cam.Transform())
	screen.DrawImage(c.img, op)
}
