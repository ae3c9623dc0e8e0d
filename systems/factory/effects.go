package factory

import (
	"github.com/kyberchelik/platformer/archetypes"
	"github.com/kyberchelik/platformer/components"
	cfg "github.com/kyberchelik/platformer/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateFade spawns the scene fade-in overlay, fully opaque at first.
func CreateFade(ecs *ecs.ECS) *donburi.Entry {
	fade := archetypes.Fade.Spawn(ecs)

	components.Fade.SetValue(fade, components.FadeData{
		Tween: gween.New(1, 0, float32(cfg.Effects.FadeInDuration), ease.Linear),
		Alpha: 1,
	})

	return fade
}
