package factory

import (
	"github.com/kyberchelik/platformer/archetypes"
	"github.com/kyberchelik/platformer/assets/animations"
	"github.com/kyberchelik/platformer/components"
	cfg "github.com/kyberchelik/platformer/config"
	"github.com/kyberchelik/platformer/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreatePlayer(ecs *ecs.ECS) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	// Spawn point is tuned in centered, y-up world coordinates; the
	// collision object lives in screen space with a top-left anchor.
	x := float64(cfg.C.Width)/2 + cfg.Player.SpawnX - cfg.Player.Width/2
	y := float64(cfg.C.Height)/2 - cfg.Player.SpawnY - cfg.Player.Height/2

	obj := resolv.NewObject(x, y, cfg.Player.Width, cfg.Player.Height, tags.ResolvPlayer)
	obj.SetShape(resolv.NewRectangle(0, 0, cfg.Player.Width, cfg.Player.Height))
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})

	components.Player.SetValue(player, components.PlayerData{
		Direction: components.Vector{X: cfg.DirectionRight, Y: 0},
	})
	components.State.SetValue(player, components.StateData{
		CurrentState:  cfg.Standing,
		PreviousState: cfg.StateNone,
	})
	components.Physics.SetValue(player, components.PhysicsData{
		Gravity:      cfg.Physics.Gravity,
		MaxFallSpeed: cfg.Physics.MaxFallSpeed,
	})
	components.Dash.SetValue(player, components.DashData{
		Duration: components.NewTimer(cfg.Player.DashDuration, false),
		Cooldown: components.NewTimer(cfg.Player.DashCooldown, false),
	})
	components.SquashStretch.SetValue(player, components.SquashStretchData{
		ScaleX:    1,
		ScaleY:    1,
		TargetX:   1,
		TargetY:   1,
		LerpSpeed: cfg.Effects.LerpSpeed,
	})

	animData := newPlayerAnimations()
	animData.CurrentState = cfg.Standing
	animData.CurrentAnimation = animData.Animations[cfg.Standing]
	components.Animation.Set(player, animData)

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return player
}

func newPlayerAnimations() *components.AnimationData {
	speed := float32(cfg.Animation.FrameInterval * cfg.TPS)

	anims := make(map[cfg.StateID]*animations.Animation, len(cfg.Animation.StateFrames))
	for state, r := range cfg.Animation.StateFrames {
		anims[state] = animations.NewAnimation(r.First, r.Last, speed)
	}

	return &components.AnimationData{Animations: anims}
}
