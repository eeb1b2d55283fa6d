package obj

import (
	"fmt"
	"image/color"
	"log"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"
	"github.com/rodaine/triumph-cap4053sp2011/common"
	"github.com/rodaine/triumph-cap4053sp2011/prefabs"
)

// Unit is a map unit that patrols the level. Its per-tick velocity comes
// from a tengo script so patrol routes can change without a rebuild.
type Unit struct {
	Pos cp.Vector

	color  color.RGBA
	img    *ebiten.Image
	script *patrolScript
	tick   int
}

func NewUnit(spec *prefabs.UnitSpec) (*Unit, error) {
	u := &Unit{
		Pos:   cp.Vector{X: spec.X, Y: spec.Y},
		color: parseHexColor(spec.Color),
	}
	if spec.Script != "" {
		script, err := compilePatrolScript(spec.Script)
		if err != nil {
			return nil, fmt.Errorf("unit: compile script %s: %w", spec.Script, err)
		}
		u.script = script
	}
	return u, nil
}

// Update advances the patrol one tick and keeps the unit on the map.
// A script error logs and leaves the unit where it is.
func (u *Unit) Update(m TileMap) {
	u.tick++
	if u.script == nil {
		return
	}

	vx, vy, err := u.script.step(u.tick, u.Pos.X, u.Pos.Y)
	if err != nil {
		log.Printf("unit: patrol script: %v", err)
		return
	}
	u.Pos = u.Pos.Add(cp.Vector{X: vx, Y: vy})

	u.Pos.X = common.Clamp(u.Pos.X, 0, float64(m.WidthInPixels()-common.TileWidth))
	u.Pos.Y = common.Clamp(u.Pos.Y, 0, float64(m.HeightInPixels()-common.TileHeight))
}

// SpritePosition implements UnitTarget.
func (u *Unit) SpritePosition() cp.Vector {
	return u.Pos
}

func (u *Unit) Draw(screen *ebiten.Image, cam *Camera) {
	if u.img == nil {
		u.img = solidImage(common.TileWidth, common.TileHeight, u.color)
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(u.Pos.X, u.Pos.Y)
	op.GeoM.Concat(cam.Transform())
	screen.DrawImage(u.img, op)
}

// patrolScript wraps a compiled tengo script. The script sees `tick`, `x`
// and `y` and reports back `vx`/`vy`.
type patrolScript struct {
	compiled *tengo.Compiled
}

func compilePatrolScript(name string) (*patrolScript, error) {
	src, err := prefabs.LoadScript(name)
	if err != nil {
		return nil, err
	}

	script := tengo.NewScript(src)
	script.SetImports(stdlib.GetModuleMap("math"))
	_ = script.Add("tick", 0)
	_ = script.Add("x", 0.0)
	_ = script.Add("y", 0.0)

	compiled, err := script.Compile()
	if err != nil {
		return nil, err
	}
	return &patrolScript{compiled: compiled}, nil
}

func (p *patrolScript) step(tick int, x, y float64) (vx, vy float64, err error) {
	if err := p.compiled.Set("tick", tick); err != nil {
		return 0, 0, err
	}
	if err := p.compiled.Set("x", x); err != nil {
		return 0, 0, err
	}
	if err := p.compiled.Set("y", y); err != nil {
		return 0, 0, err
	}
	if err := p.compiled.Run(); err != nil {
		return 0, 0, err
	}
	return p.compiled.Get("vx").Float(), p.compiled.Get("vy").Float(), nil
}
