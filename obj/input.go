package obj

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Input holds the current input state for camera scrolling and the focus
// hotkeys. Poll once per tick with Update, then read the fields.
type Input struct {
	// Up/Down/Left/Right are true while a scroll key is held.
	Up    bool
	Down  bool
	Left  bool
	Right bool

	// FocusCursorPressed is true on the frame the focus-cursor key (1) was pressed.
	FocusCursorPressed bool
	// FocusUnitPressed is true on the frame the focus-unit key (2) was pressed.
	FocusUnitPressed bool
	// ToggleFocusPressed is true on the frame the toggle key (T) was pressed.
	ToggleFocusPressed bool
	// UnsetFocusPressed is true on the frame the unset key (0) was pressed.
	UnsetFocusPressed bool
	// PausePressed is true on the frame Escape was pressed.
	PausePressed bool
}

func NewInput() *Input {
	return &Input{}
}

// Update polls the keyboard and gamepad into the scroll and hotkey state.
func (i *Input) Update() {
	const stickDeadzone = 0.3

	i.Up = ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp)
	i.Down = ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown)
	i.Left = ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft)
	i.Right = ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight)

	if ids := ebiten.GamepadIDs(); len(ids) > 0 {
		id := ids[0]
		lx := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		ly := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
		if math.Abs(lx) > stickDeadzone {
			i.Left = i.Left || lx < 0
			i.Right = i.Right || lx > 0
		}
		if math.Abs(ly) > stickDeadzone {
			i.Up = i.Up || ly < 0
			i.Down = i.Down || ly > 0
		}
	}

	i.FocusCursorPressed = inpututil.IsKeyJustPressed(ebiten.KeyDigit1)
	i.FocusUnitPressed = inpututil.IsKeyJustPressed(ebiten.KeyDigit2)
	i.ToggleFocusPressed = inpututil.IsKeyJustPressed(ebiten.KeyT)
	i.UnsetFocusPressed = inpututil.IsKeyJustPressed(ebiten.KeyDigit0)
	i.PausePressed = inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}

// ScrollUp implements InputSource.
func (i *Input) ScrollUp() bool { return i.Up }

// ScrollDown implements InputSource.
func (i *Input) ScrollDown() bool { return i.Down }

// ScrollLeft implements InputSource.
func (i *Input) ScrollLeft() bool { return i.Left }

// ScrollRight implements InputSource.
func (i *Input) ScrollRight() bool { return i.Right }
