package main

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/rodaine/triumph-cap4053sp2011/common"
	"github.com/rodaine/triumph-cap4053sp2011/levels"
	"github.com/rodaine/triumph-cap4053sp2011/obj"
	"github.com/rodaine/triumph-cap4053sp2011/prefabs"
)

type Game struct {
	frames int
	debug  bool

	paused  bool
	quit    bool
	pauseUI *ebitenui.UI

	input  *obj.Input
	level  *obj.Level
	cursor *obj.Cursor
	unit   *obj.Unit
	camera *obj.Camera

	watcher *prefabs.Watcher
}

func NewGame(levelName string, debug bool) (*Game, error) {
	lvl, err := loadLevel(levelName)
	if err != nil {
		return nil, fmt.Errorf("game: load level: %w", err)
	}

	cameraSpec, err := prefabs.LoadCameraSpec()
	if err != nil {
		return nil, fmt.Errorf("game: load camera spec: %w", err)
	}
	cursorSpec, err := prefabs.LoadCursorSpec()
	if err != nil {
		return nil, fmt.Errorf("game: load cursor spec: %w", err)
	}
	unitSpec, err := prefabs.LoadUnitSpec()
	if err != nil {
		return nil, fmt.Errorf("game: load unit spec: %w", err)
	}

	unit, err := obj.NewUnit(unitSpec)
	if err != nil {
		return nil, fmt.Errorf("game: build unit: %w", err)
	}

	input := obj.NewInput()
	camera := obj.NewCamera(input, common.TileWidth, common.TileHeight)
	camera.SetSpeed(cameraSpec.Speed)

	g := &Game{
		debug:  debug,
		input:  input,
		level:  lvl,
		cursor: obj.NewCursor(cursorSpec),
		unit:   unit,
		camera: camera,
	}
	g.pauseUI = NewPauseUI(g)

	if debug {
		watcher, err := prefabs.NewWatcher("prefabs")
		if err != nil {
			log.Printf("game: prefab watcher disabled: %v", err)
		} else {
			g.watcher = watcher
		}
	}

	return g, nil
}

func loadLevel(name string) (*obj.Level, error) {
	if name == "" {
		return obj.LoadLevelFromFS(levels.LevelsFS, levels.Default)
	}
	if filepath.Ext(name) == "" {
		name += ".json"
	}
	// Prefer a level on disk so edited maps load without a rebuild.
	if lvl, err := obj.LoadLevel(filepath.Join("levels", name)); err == nil {
		return lvl, nil
	}
	return obj.LoadLevelFromFS(levels.LevelsFS, name)
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}

	g.frames++
	g.drainPrefabEvents()

	g.input.Update()

	if g.input.PausePressed {
		g.paused = !g.paused
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	switch {
	case g.input.FocusCursorPressed:
		g.camera.FocusOnCursor(g.cursor)
	case g.input.FocusUnitPressed:
		g.camera.FocusOnUnit(g.unit)
	case g.input.ToggleFocusPressed:
		g.camera.ToggleFocus()
	case g.input.UnsetFocusPressed:
		g.camera.UnsetFocus()
	}

	g.cursor.Update(g.camera)
	g.unit.Update(g.level)
	g.camera.Update(common.BaseWidth, common.BaseHeight, g.level)

	return nil
}

// drainPrefabEvents re-applies prefab specs edited on disk while running
// with -debug. Unit edits need a restart since the patrol script is
// compiled at startup.
func (g *Game) drainPrefabEvents() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case path, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			switch filepath.Base(path) {
			case "camera.yaml":
				if spec, err := prefabs.LoadCameraSpec(); err != nil {
					log.Printf("game: reload camera spec: %v", err)
				} else {
					g.camera.SetSpeed(spec.Speed)
				}
			case "cursor.yaml":
				if spec, err := prefabs.LoadCursorSpec(); err != nil {
					log.Printf("game: reload cursor spec: %v", err)
				} else {
					g.cursor.ApplySpec(spec)
				}
			}
		case err := <-g.watcher.Errors:
			if err != nil {
				log.Printf("game: prefab watcher: %v", err)
			}
		default:
			return
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.level.Draw(screen, g.camera, common.BaseWidth, common.BaseHeight)
	g.unit.Draw(screen, g.camera)
	g.cursor.Draw(screen, g.camera)

	if g.paused {
		g.pauseUI.Draw(screen)
	}

	if g.debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf(
			"FPS: %.2f  pos: (%.1f, %.1f)  speed: %.1f  focused: %v",
			ebiten.ActualFPS(), g.camera.Position.X, g.camera.Position.Y,
			g.camera.Speed(), g.camera.IsFocused()))
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return common.BaseWidth, common.BaseHeight
}
