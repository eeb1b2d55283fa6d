package obj

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
)

type stubInput struct {
	up, down, left, right bool
}

func (s *stubInput) ScrollUp() bool    { return s.up }
func (s *stubInput) ScrollDown() bool  { return s.down }
func (s *stubInput) ScrollLeft() bool  { return s.left }
func (s *stubInput) ScrollRight() bool { return s.right }

type stubMap struct {
	w, h int
}

func (m stubMap) WidthInPixels() int  { return m.w }
func (m stubMap) HeightInPixels() int { return m.h }

type stubCursor struct {
	pos  cp.Vector
	w, h int
}

func (c *stubCursor) Position() cp.Vector   { return c.pos }
func (c *stubCursor) FrameSize() (int, int) { return c.w, c.h }

type stubUnit struct {
	pos cp.Vector
}

func (u *stubUnit) SpritePosition() cp.Vector { return u.pos }

const eps = 1e-9

func TestSetSpeedFloorsAtOne(t *testing.T) {
	cases := []struct {
		name string
		in   float64
		want float64
	}{
		{"above_floor", 7.5, 7.5},
		{"at_floor", 1.0, 1.0},
		{"below_floor", 0.25, 1.0},
		{"zero", 0, 1.0},
		{"negative", -3, 1.0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cam := NewCamera(&stubInput{}, 32, 32)
			cam.SetSpeed(c.in)
			if cam.Speed() != c.want {
				t.Fatalf("SetSpeed(%v): got %v, want %v", c.in, cam.Speed(), c.want)
			}
		})
	}
}

func TestNewCameraDefaults(t *testing.T) {
	cam := NewCamera(&stubInput{}, 32, 32)
	if cam.Position.X != 0 || cam.Position.Y != 0 {
		t.Fatalf("expected origin position, got (%v, %v)", cam.Position.X, cam.Position.Y)
	}
	if cam.Speed() != 5.0 {
		t.Fatalf("expected default speed 5, got %v", cam.Speed())
	}
	if cam.IsFocused() {
		t.Fatal("new camera should not be focused")
	}
}

func TestFreePanDisplacement(t *testing.T) {
	// Map large enough that no clamp interferes.
	m := stubMap{w: 10000, h: 10000}

	cases := []struct {
		name                  string
		up, down, left, right bool
		wantDX, wantDY        float64
	}{
		{name: "none"},
		{name: "right", right: true, wantDX: 1},
		{name: "left", left: true, wantDX: -1},
		{name: "down", down: true, wantDY: 1},
		{name: "up", up: true, wantDY: -1},
		{name: "down_right", down: true, right: true, wantDX: 1 / math.Sqrt2, wantDY: 1 / math.Sqrt2},
		{name: "up_left", up: true, left: true, wantDX: -1 / math.Sqrt2, wantDY: -1 / math.Sqrt2},
		{name: "opposing_cancel", left: true, right: true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			in := &stubInput{up: c.up, down: c.down, left: c.left, right: c.right}
			cam := NewCamera(in, 32, 32)
			cam.Position = cp.Vector{X: 500, Y: 500}
			cam.SetSpeed(5)

			cam.Update(800, 600, m)

			dx := cam.Position.X - 500
			dy := cam.Position.Y - 500
			if math.Abs(dx-c.wantDX*5) > eps || math.Abs(dy-c.wantDY*5) > eps {
				t.Fatalf("displacement (%v, %v), want (%v, %v)", dx, dy, c.wantDX*5, c.wantDY*5)
			}

			// Magnitude is exactly speed whenever any net motion occurred.
			if mag := math.Hypot(dx, dy); mag != 0 && math.Abs(mag-5) > eps {
				t.Fatalf("displacement magnitude %v, want 5", mag)
			}
		})
	}
}

func TestUpdateIdempotentWhenIdle(t *testing.T) {
	cam := NewCamera(&stubInput{}, 32, 32)
	cam.Position = cp.Vector{X: 120, Y: 80}
	m := stubMap{w: 1280, h: 960}

	for i := 0; i < 10; i++ {
		cam.Update(800, 600, m)
	}
	if cam.Position.X != 120 || cam.Position.Y != 80 {
		t.Fatalf("idle update moved camera to (%v, %v)", cam.Position.X, cam.Position.Y)
	}
}

func TestUpdateClampsToMapBounds(t *testing.T) {
	m := stubMap{w: 1280, h: 960}
	in := &stubInput{down: true, right: true}
	cam := NewCamera(in, 32, 32)
	cam.SetSpeed(50)

	maxX := float64(m.w - 800)
	maxY := float64(m.h - 600)
	for i := 0; i < 100; i++ {
		cam.Update(800, 600, m)
		if cam.Position.X < 0 || cam.Position.X > maxX || cam.Position.Y < 0 || cam.Position.Y > maxY {
			t.Fatalf("tick %d: position (%v, %v) outside [0,%v]x[0,%v]",
				i, cam.Position.X, cam.Position.Y, maxX, maxY)
		}
	}
	if cam.Position.X != maxX || cam.Position.Y != maxY {
		t.Fatalf("expected camera pinned at (%v, %v), got (%v, %v)",
			maxX, maxY, cam.Position.X, cam.Position.Y)
	}
}

func TestUpdateViewportLargerThanMapRestsAtZero(t *testing.T) {
	// Upper bound is negative; the zero floor must win.
	m := stubMap{w: 400, h: 300}
	cam := NewCamera(&stubInput{down: true, right: true}, 32, 32)
	cam.Position = cp.Vector{X: 50, Y: 50}

	cam.Update(800, 600, m)

	if cam.Position.X != 0 || cam.Position.Y != 0 {
		t.Fatalf("expected (0, 0) for oversized viewport, got (%v, %v)", cam.Position.X, cam.Position.Y)
	}
}

func TestScenarioSingleRightStep(t *testing.T) {
	in := &stubInput{right: true}
	cam := NewCamera(in, 32, 32)
	cam.SetSpeed(5)
	m := stubMap{w: 10000, h: 10000}

	cam.Update(800, 600, m)

	if cam.Position.X != 5 || cam.Position.Y != 0 {
		t.Fatalf("expected (5, 0), got (%v, %v)", cam.Position.X, cam.Position.Y)
	}
}

func TestCursorFocusCentersAndClamps(t *testing.T) {
	cam := NewCamera(&stubInput{}, 32, 32)
	cur := &stubCursor{pos: cp.Vector{X: 100, Y: 100}, w: 32, h: 32}
	cam.FocusOnCursor(cur)
	if !cam.IsFocused() {
		t.Fatal("expected focused after FocusOnCursor")
	}

	// Raw target is (100+16-400, 100+16-300) = (-284, -284), clamped to 0.
	cam.Update(800, 600, stubMap{w: 1280, h: 960})
	if cam.Position.X != 0 || cam.Position.Y != 0 {
		t.Fatalf("expected clamp to (0, 0), got (%v, %v)", cam.Position.X, cam.Position.Y)
	}

	// Centered in the map interior the raw target survives the clamp.
	cur.pos = cp.Vector{X: 600, Y: 500}
	cam.Update(800, 600, stubMap{w: 1280, h: 960})
	if cam.Position.X != 600+16-400 || cam.Position.Y != 500+16-300 {
		t.Fatalf("expected (216, 216), got (%v, %v)", cam.Position.X, cam.Position.Y)
	}
}

func TestCursorCenteringTruncatesOddFrames(t *testing.T) {
	cam := NewCamera(&stubInput{}, 32, 32)
	cur := &stubCursor{pos: cp.Vector{X: 600, Y: 500}, w: 33, h: 33}
	cam.FocusOnCursor(cur)

	cam.Update(801, 601, stubMap{w: 10000, h: 10000})

	// 33/2 and 801/2 truncate: 600+16-400, 500+16-300.
	if cam.Position.X != 216 || cam.Position.Y != 216 {
		t.Fatalf("expected (216, 216), got (%v, %v)", cam.Position.X, cam.Position.Y)
	}
}

func TestUnitFocusUsesTileDimensions(t *testing.T) {
	cam := NewCamera(&stubInput{}, 32, 32)
	u := &stubUnit{pos: cp.Vector{X: 600, Y: 500}}
	cam.FocusOnUnit(u)

	cam.Update(800, 600, stubMap{w: 10000, h: 10000})

	if cam.Position.X != 600+16-400 || cam.Position.Y != 500+16-300 {
		t.Fatalf("expected (216, 216), got (%v, %v)", cam.Position.X, cam.Position.Y)
	}
}

func TestUnsetFocusResumesPanningFromLastPosition(t *testing.T) {
	in := &stubInput{}
	cam := NewCamera(in, 32, 32)
	cam.SetSpeed(5)
	m := stubMap{w: 10000, h: 10000}

	cam.FocusOnUnit(&stubUnit{pos: cp.Vector{X: 600, Y: 500}})
	cam.Update(800, 600, m)
	wantX, wantY := cam.Position.X, cam.Position.Y

	cam.UnsetFocus()
	if cam.IsFocused() {
		t.Fatal("expected unfocused after UnsetFocus")
	}

	in.right = true
	cam.Update(800, 600, m)
	if cam.Position.X != wantX+5 || cam.Position.Y != wantY {
		t.Fatalf("expected (%v, %v), got (%v, %v)", wantX+5, wantY, cam.Position.X, cam.Position.Y)
	}
}

func TestFocusPriorityAndToggle(t *testing.T) {
	cam := NewCamera(&stubInput{}, 32, 32)
	m := stubMap{w: 10000, h: 10000}
	u := &stubUnit{pos: cp.Vector{X: 600, Y: 500}}
	cur := &stubCursor{pos: cp.Vector{X: 2000, Y: 1500}, w: 32, h: 32}

	// Unit first, then cursor: cursor becomes active, unit ref survives.
	cam.FocusOnUnit(u)
	cam.FocusOnCursor(cur)
	if !cam.IsFocused() {
		t.Fatal("expected focused")
	}

	cam.Update(800, 600, m)
	if cam.Position.X != 2000+16-400 || cam.Position.Y != 1500+16-300 {
		t.Fatalf("expected cursor branch, got (%v, %v)", cam.Position.X, cam.Position.Y)
	}

	// Toggle flips both stored kinds: cursor off, unit on.
	cam.ToggleFocus()
	if !cam.IsFocused() {
		t.Fatal("expected still focused after toggle")
	}
	cam.Update(800, 600, m)
	if cam.Position.X != 600+16-400 || cam.Position.Y != 500+16-300 {
		t.Fatalf("expected unit branch after toggle, got (%v, %v)", cam.Position.X, cam.Position.Y)
	}

	// Toggle again: both active at once; the cursor branch wins.
	cam.ToggleFocus()
	cam.Update(800, 600, m)
	if cam.Position.X != 2000+16-400 || cam.Position.Y != 1500+16-300 {
		t.Fatalf("expected cursor priority with both active, got (%v, %v)", cam.Position.X, cam.Position.Y)
	}
}

func TestToggleFocusWithoutTargetsIsNoop(t *testing.T) {
	cam := NewCamera(&stubInput{}, 32, 32)
	cam.ToggleFocus()
	if cam.IsFocused() {
		t.Fatal("toggle with no stored targets should not focus")
	}
}

func TestTransformTranslatesByNegativePosition(t *testing.T) {
	cam := NewCamera(&stubInput{}, 32, 32)
	cam.Position = cp.Vector{X: 300, Y: 120}

	g := cam.Transform()
	x, y := g.Apply(300, 120)
	if x != 0 || y != 0 {
		t.Fatalf("expected world position to map to origin, got (%v, %v)", x, y)
	}
	x, y = g.Apply(350, 200)
	if x != 50 || y != 80 {
		t.Fatalf("expected (50, 80), got (%v, %v)", x, y)
	}
}
