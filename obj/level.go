package obj

import (
	"encoding/json"
	"fmt"
	"image/color"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rodaine/triumph-cap4053sp2011/common"
)

// Level is a tile map stored as JSON: dimensions in tiles plus flat
// row-major layer arrays. Layer 0 draws first (bottom), then layer 1, etc.
type Level struct {
	Name   string  `json:"name,omitempty"`
	Width  int     `json:"width"`
	Height int     `json:"height"`
	Layers [][]int `json:"layers"`

	tileImgs map[int]*ebiten.Image
}

// tilePalette maps tile values to flat colors. Unknown non-zero values
// draw magenta so bad level data is visible.
var tilePalette = map[int]color.RGBA{
	1: {R: 0x3c, G: 0x8c, B: 0x3c, A: 0xff}, // grass
	2: {R: 0x2b, G: 0x5c, B: 0xc8, A: 0xff}, // water
	3: {R: 0x78, G: 0x78, B: 0x78, A: 0xff}, // stone
}

var missingTileColor = color.RGBA{R: 0xff, G: 0x00, B: 0xff, A: 0xff}

// LoadLevel loads a level from a JSON file at path.
func LoadLevel(path string) (*Level, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return loadLevelFromBytes(b)
}

// LoadLevelFromFS loads a level JSON from an fs.FS (e.g. embedded levels).
func LoadLevelFromFS(fsys fs.FS, path string) (*Level, error) {
	clean := strings.TrimPrefix(filepath.ToSlash(path), "levels/")
	b, err := fs.ReadFile(fsys, clean)
	if err != nil {
		return nil, err
	}
	return loadLevelFromBytes(b)
}

func loadLevelFromBytes(b []byte) (*Level, error) {
	var lvl Level
	if err := json.Unmarshal(b, &lvl); err != nil {
		return nil, fmt.Errorf("level: unmarshal: %w", err)
	}

	if lvl.Width <= 0 || lvl.Height <= 0 {
		return nil, fmt.Errorf("level: invalid dimensions: %dx%d", lvl.Width, lvl.Height)
	}
	for i, layer := range lvl.Layers {
		if len(layer) != lvl.Width*lvl.Height {
			return nil, fmt.Errorf("level: layer %d has %d cells, want %d", i, len(layer), lvl.Width*lvl.Height)
		}
	}

	return &lvl, nil
}

// WidthInPixels returns the map's total scrollable width.
func (l *Level) WidthInPixels() int {
	return l.Width * common.TileWidth
}

// HeightInPixels returns the map's total scrollable height.
func (l *Level) HeightInPixels() int {
	return l.Height * common.TileHeight
}

// TileAt returns the topmost non-zero tile value at the given tile
// coordinates, or 0 if nothing is there.
func (l *Level) TileAt(x, y int) int {
	if x < 0 || y < 0 || x >= l.Width || y >= l.Height {
		return 0
	}
	for i := len(l.Layers) - 1; i >= 0; i-- {
		if v := l.Layers[i][y*l.Width+x]; v != 0 {
			return v
		}
	}
	return 0
}

// Draw renders the visible tile range through the camera transform.
// Tile images are flat colors built on first use.
func (l *Level) Draw(screen *ebiten.Image, cam *Camera, viewportW, viewportH int) {
	if l.tileImgs == nil {
		l.tileImgs = make(map[int]*ebiten.Image)
	}

	minX := int(math.Floor(cam.Position.X / common.TileWidth))
	minY := int(math.Floor(cam.Position.Y / common.TileHeight))
	maxX := int(math.Ceil((cam.Position.X + float64(viewportW)) / common.TileWidth))
	maxY := int(math.Ceil((cam.Position.Y + float64(viewportH)) / common.TileHeight))
	if minX < 0 {
		minX = 0
	}
	if minY < 0 {
		minY = 0
	}
	if maxX > l.Width {
		maxX = l.Width
	}
	if maxY > l.Height {
		maxY = l.Height
	}

	base := cam.Transform()
	for _, layer := range l.Layers {
		for y := minY; y < maxY; y++ {
			for x := minX; x < maxX; x++ {
				v := layer[y*l.Width+x]
				if v == 0 {
					continue
				}
				op := &ebiten.DrawImageOptions{}
				op.GeoM.Translate(float64(x*common.TileWidth), float64(y*common.TileHeight))
				op.GeoM.Concat(base)
				screen.DrawImage(l.tileImage(v), op)
			}
		}
	}
}

func (l *Level) tileImage(v int) *ebiten.Image {
	if img, ok := l.tileImgs[v]; ok {
		return img
	}
	c, ok := tilePalette[v]
	if !ok {
		c = missingTileColor
	}
	img := ebiten.NewImage(common.TileWidth, common.TileHeight)
	img.Fill(c)
	l.tileImgs[v] = img
	return img
}
