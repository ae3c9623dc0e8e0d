package systems

import (
	"github.com/kyberchelik/platformer/components"
	cfg "github.com/kyberchelik/platformer/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects lerps squash/stretch scales back toward their targets.
func UpdateEffects(ecs *ecs.ECS) {
	components.SquashStretch.Each(ecs.World, func(e *donburi.Entry) {
		ss := components.SquashStretch.Get(e)
		ss.ScaleX += (ss.TargetX - ss.ScaleX) * ss.LerpSpeed
		ss.ScaleY += (ss.TargetY - ss.ScaleY) * ss.LerpSpeed
	})
}

// TriggerSquashStretch kicks an entity's sprite scale away from normal;
// UpdateEffects pulls it back to 1.0 over the following frames.
func TriggerSquashStretch(entry *donburi.Entry, scaleX, scaleY float64) {
	if !entry.HasComponent(components.SquashStretch) {
		return
	}
	ss := components.SquashStretch.Get(entry)
	ss.ScaleX = scaleX
	ss.ScaleY = scaleY
	ss.TargetX = 1.0
	ss.TargetY = 1.0
	ss.LerpSpeed = cfg.Effects.LerpSpeed
}

// UpdateFade advances the scene fade-in overlay. Runs even while paused.
func UpdateFade(ecs *ecs.ECS) {
	fadeEntry, ok := components.Fade.First(ecs.World)
	if !ok {
		return
	}
	fade := components.Fade.Get(fadeEntry)
	if fade.Tween == nil {
		return
	}

	alpha, finished := fade.Tween.Update(float32(cfg.Dt))
	fade.Alpha = alpha
	if finished {
		fade.Tween = nil
	}
}
