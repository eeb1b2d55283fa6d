// Package levels embeds the game's tile map JSON files.
package levels

import "embed"

//go:embed *.json
var LevelsFS embed.FS

// Default is the level loaded when no -level flag is given.
const Default = "demo.json"
