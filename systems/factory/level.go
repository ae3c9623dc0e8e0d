package factory

import (
	"github.com/kyberchelik/platformer/assets"
	cfg "github.com/kyberchelik/platformer/config"
	"github.com/yohamta/donburi/ecs"
)

// BuildLevel spawns one solid tile per '#' in the level map. Tile positions
// are tuned in centered, y-up world coordinates and converted to screen space
// here, once.
func BuildLevel(ecs *ecs.ECS) {
	tile := cfg.Level.TileSize
	cols := len(assets.LevelMap[0])

	originX := float64(cfg.C.Width)/2 - tile*float64(cols)/2
	originY := float64(cfg.C.Height)/2 - cfg.Level.OriginY

	for row, line := range assets.LevelMap {
		for col, ch := range line {
			if ch != '#' {
				continue
			}
			x := originX + float64(col)*tile
			y := originY + float64(row)*tile - tile/2
			CreateTile(ecs, x, y, tile, tile)
		}
	}
}

// SpaceHeight returns the vertical extent the collision space needs to hold
// every level row, including the ones below the visible window.
func SpaceHeight() int {
	tile := cfg.Level.TileSize
	originY := float64(cfg.C.Height)/2 - cfg.Level.OriginY
	return int(originY + tile*float64(len(assets.LevelMap)))
}
