package obj

import (
	"image/color"
	"strconv"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// parseHexColor decodes "#rrggbb" into an opaque RGBA, falling back to
// magenta on bad input so misconfigured prefabs are visible in game.
func parseHexColor(s string) color.RGBA {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return missingTileColor
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return missingTileColor
	}
	return color.RGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 0xff,
	}
}

func solidImage(w, h int, c color.RGBA) *ebiten.Image {
	img := ebiten.NewImage(w, h)
	img.Fill(c)
	return img
}
