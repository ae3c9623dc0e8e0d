package factory

import (
	"github.com/kyberchelik/platformer/archetypes"
	"github.com/kyberchelik/platformer/components"
	"github.com/kyberchelik/platformer/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateTile(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	tile := archetypes.Tile.Spawn(ecs)

	obj := resolv.NewObject(x, y, w, h, tags.ResolvSolid)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = tile

	components.Object.SetValue(tile, components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return tile
}
