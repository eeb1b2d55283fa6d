package common

// Logical viewport size used by the game's Layout.
const (
	BaseWidth  = 800
	BaseHeight = 600
)

// Engine-wide tile dimensions in pixels. Units are centered with these,
// not with their own sprite size.
const (
	TileWidth  = 32
	TileHeight = 32
)
