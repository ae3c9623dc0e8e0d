package archetypes

import (
	"github.com/kyberchelik/platformer/components"
	cfg "github.com/kyberchelik/platformer/config"
	"github.com/kyberchelik/platformer/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Physics,
		components.State,
		components.Dash,
		components.Animation,
		components.SquashStretch,
	)
	Tile = newArchetype(
		tags.Tile,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	Fade = newArchetype(
		components.Fade,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
