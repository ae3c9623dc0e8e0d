package systems

import (
	"math"

	"github.com/kyberchelik/platformer/components"
	cfg "github.com/kyberchelik/platformer/config"
	"github.com/kyberchelik/platformer/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayerState recomputes the grounded flag and advances the movement
// state machine. Runs after collision resolution so contacts are current.
func UpdatePlayerState(ecs *ecs.ECS) {
	playerEntry := MustPlayerEntry(ecs.World)

	player := components.Player.Get(playerEntry)
	physics := components.Physics.Get(playerEntry)
	state := components.State.Get(playerEntry)
	obj := components.Object.Get(playerEntry)

	player.Grounded = isGrounded(obj.Object)

	switch state.CurrentState {
	case cfg.Standing:
		if !player.Grounded {
			state.CurrentState = cfg.Falling
		}
	case cfg.Jumping:
		if physics.SpeedY >= 0 {
			state.CurrentState = cfg.Falling
		}
	case cfg.Falling:
		if player.Grounded {
			state.CurrentState = cfg.Standing
			TriggerSquashStretch(playerEntry, cfg.Effects.LandScaleX, cfg.Effects.LandScaleY)
		}
	case cfg.Dashing:
		// Dash timing is owned by the input system.
	}

	syncStateTags(playerEntry, state)
}

// isGrounded approximates "some contact normal points up": a touching tile
// counts as ground when its center sits below the player's center by more
// than the configured fraction of the player height.
func isGrounded(object *resolv.Object) bool {
	check := object.Check(0, 1, tags.ResolvSolid)
	if check == nil {
		return false
	}

	threshold := object.Y + object.H/2 + object.H*cfg.Player.GroundedFraction
	for _, tile := range check.ObjectsByTags(tags.ResolvSolid) {
		if tile.Y+tile.H/2 > threshold {
			return true
		}
	}
	return false
}

// ApplyGroundSnap rounds the player's vertical position while grounded. This
// only masks floating-point jitter from the solver; it never moves the player
// more than half a pixel.
func ApplyGroundSnap(ecs *ecs.ECS) {
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		if !player.Grounded {
			return
		}
		obj := components.Object.Get(e)
		obj.Y = math.Round(obj.Y)
	})
}

// syncStateTags mirrors StateData into the per-state marker components so
// entities stay queryable by movement state.
func syncStateTags(e *donburi.Entry, state *components.StateData) {
	if state.CurrentState == state.PreviousState {
		return
	}

	removeAllStateTags(e)

	switch state.CurrentState {
	case cfg.Standing:
		donburi.Add(e, components.Standing, &components.StandingState{})
	case cfg.Jumping:
		donburi.Add(e, components.Jumping, &components.JumpingState{})
	case cfg.Falling:
		donburi.Add(e, components.Falling, &components.FallingState{})
	case cfg.Dashing:
		donburi.Add(e, components.Dashing, &components.DashingState{})
	}

	state.PreviousState = state.CurrentState
}

func removeAllStateTags(e *donburi.Entry) {
	if e.HasComponent(components.Standing) {
		donburi.Remove[components.StandingState](e, components.Standing)
	}
	if e.HasComponent(components.Jumping) {
		donburi.Remove[components.JumpingState](e, components.Jumping)
	}
	if e.HasComponent(components.Falling) {
		donburi.Remove[components.FallingState](e, components.Falling)
	}
	if e.HasComponent(components.Dashing) {
		donburi.Remove[components.DashingState](e, components.Dashing)
	}
}
