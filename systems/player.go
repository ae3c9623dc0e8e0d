package systems

import (
	"fmt"
	"math"

	"github.com/kyberchelik/platformer/components"
	cfg "github.com/kyberchelik/platformer/config"
	"github.com/kyberchelik/platformer/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer applies movement, jump and dash input to the player. Runs
// before the physics step; the grounded flag it reads was computed at the end
// of the previous frame.
func UpdatePlayer(ecs *ecs.ECS) {
	playerEntry := MustPlayerEntry(ecs.World)

	input := getOrCreateInput(ecs)
	player := components.Player.Get(playerEntry)
	physics := components.Physics.Get(playerEntry)
	state := components.State.Get(playerEntry)
	dash := components.Dash.Get(playerEntry)

	axis := input.AxisX

	desiredSpeed := cfg.Player.MoveSpeed
	if !player.Grounded {
		desiredSpeed *= cfg.Player.AirControl
	}
	physics.SpeedX = axis * desiredSpeed

	if math.Abs(axis) > cfg.Input.AnalogDeadzone {
		if axis < 0 {
			player.Direction.X = cfg.DirectionLeft
		} else {
			player.Direction.X = cfg.DirectionRight
		}
	}

	dash.Cooldown.Tick(cfg.Dt)

	if player.Grounded && GetAction(input, cfg.ActionJump).JustPressed {
		physics.SpeedY = -cfg.Player.JumpSpeed
		state.CurrentState = cfg.Jumping
		TriggerSquashStretch(playerEntry, cfg.Effects.JumpScaleX, cfg.Effects.JumpScaleY)
	}

	if GetAction(input, cfg.ActionDash).JustPressed && dash.Cooldown.Finished() {
		dash.Duration.Reset()
		dash.Cooldown.Reset()
		state.CurrentState = cfg.Dashing
		physics.SpeedY = 0
		physics.SpeedX = player.Direction.X * cfg.Player.DashSpeed
	}

	// A grounded jump above can leave Dashing early; the duration timer then
	// simply stops ticking, matching the original ordering.
	if state.CurrentState == cfg.Dashing {
		dash.Duration.Tick(cfg.Dt)
		if dash.Duration.Finished() {
			state.CurrentState = cfg.Falling
		} else {
			physics.SpeedY = 0
			physics.SpeedX = player.Direction.X * cfg.Player.DashSpeed
		}
	}
}

// MustPlayerEntry returns the single entity carrying the player tag. The
// entity population is fixed at startup, so zero or multiple matches mean the
// world is miswired and the program aborts.
func MustPlayerEntry(w donburi.World) *donburi.Entry {
	var found *donburi.Entry
	count := 0
	tags.Player.Each(w, func(entry *donburi.Entry) {
		found = entry
		count++
	})
	if count != 1 {
		panic(fmt.Sprintf("expected exactly one player entity, found %d", count))
	}
	return found
}
