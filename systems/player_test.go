package systems

import (
	"testing"

	"github.com/kyberchelik/platformer/components"
	cfg "github.com/kyberchelik/platformer/config"
	"github.com/kyberchelik/platformer/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// newPlayerWorld creates an ECS with just the player entity. Collision tests
// use newLevelWorld instead.
func newPlayerWorld() (*ecs.ECS, *donburi.Entry) {
	e := ecs.NewECS(donburi.NewWorld())
	player := factory.CreatePlayer(e)
	return e, player
}

// press marks an action as held this frame. JustPressed falls out of the
// current/previous diff inside GetAction.
func press(input *components.InputData, id cfg.ActionID) {
	input.Current[id] = true
}

// step runs UpdatePlayer once and rolls the input buffers like UpdateInput
// would on the following frame.
func step(e *ecs.ECS, input *components.InputData) {
	UpdatePlayer(e)
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
	input.AxisX = 0
}

func TestJumpRequiresGround(t *testing.T) {
	e, playerEntry := newPlayerWorld()
	input := getOrCreateInput(e)
	player := components.Player.Get(playerEntry)
	physics := components.Physics.Get(playerEntry)
	state := components.State.Get(playerEntry)

	player.Grounded = false
	state.CurrentState = cfg.Falling
	press(input, cfg.ActionJump)
	step(e, input)

	if physics.SpeedY != 0 {
		t.Errorf("Expected airborne jump press to be ignored, got SpeedY %.1f", physics.SpeedY)
	}
	if state.CurrentState != cfg.Falling {
		t.Errorf("Expected state to stay Falling, got %v", state.CurrentState)
	}

	// Release for a frame so the next press registers as just-pressed.
	step(e, input)

	player.Grounded = true
	state.CurrentState = cfg.Standing
	press(input, cfg.ActionJump)
	step(e, input)

	if physics.SpeedY != -cfg.Player.JumpSpeed {
		t.Errorf("Expected grounded jump to set SpeedY to %.1f, got %.1f", -cfg.Player.JumpSpeed, physics.SpeedY)
	}
	if state.CurrentState != cfg.Jumping {
		t.Errorf("Expected state Jumping, got %v", state.CurrentState)
	}
}

func TestAirControlReducesMoveSpeed(t *testing.T) {
	tests := []struct {
		name     string
		grounded bool
		want     float64
	}{
		{"Grounded full speed", true, cfg.Player.MoveSpeed},
		{"Airborne reduced speed", false, cfg.Player.MoveSpeed * cfg.Player.AirControl},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, playerEntry := newPlayerWorld()
			input := getOrCreateInput(e)
			player := components.Player.Get(playerEntry)
			physics := components.Physics.Get(playerEntry)

			player.Grounded = tt.grounded
			input.AxisX = 1
			UpdatePlayer(e)

			if physics.SpeedX != tt.want {
				t.Errorf("Expected SpeedX %.1f, got %.1f", tt.want, physics.SpeedX)
			}
		})
	}
}

func TestFacingFollowsAxis(t *testing.T) {
	e, playerEntry := newPlayerWorld()
	input := getOrCreateInput(e)
	player := components.Player.Get(playerEntry)

	input.AxisX = -1
	step(e, input)
	if player.Direction.X != cfg.DirectionLeft {
		t.Errorf("Expected facing left, got %.1f", player.Direction.X)
	}

	// Below the deadzone the facing must hold.
	input.AxisX = 0.05
	step(e, input)
	if player.Direction.X != cfg.DirectionLeft {
		t.Errorf("Expected deadzone axis to keep facing left, got %.1f", player.Direction.X)
	}

	input.AxisX = 1
	step(e, input)
	if player.Direction.X != cfg.DirectionRight {
		t.Errorf("Expected facing right, got %.1f", player.Direction.X)
	}
}

func TestDashWaitsForInitialCooldown(t *testing.T) {
	e, playerEntry := newPlayerWorld()
	input := getOrCreateInput(e)
	state := components.State.Get(playerEntry)

	press(input, cfg.ActionDash)
	step(e, input)

	if state.CurrentState == cfg.Dashing {
		t.Fatal("Expected dash to be unavailable before the cooldown has run")
	}

	// Let the cooldown run out, comfortably past its duration.
	for i := 0; i < 30; i++ {
		step(e, input)
	}

	press(input, cfg.ActionDash)
	step(e, input)

	if state.CurrentState != cfg.Dashing {
		t.Fatalf("Expected dash after cooldown, got %v", state.CurrentState)
	}
}

func TestDashLocksVelocityAndExpires(t *testing.T) {
	e, playerEntry := newPlayerWorld()
	input := getOrCreateInput(e)
	physics := components.Physics.Get(playerEntry)
	state := components.State.Get(playerEntry)

	for i := 0; i < 30; i++ {
		step(e, input)
	}

	press(input, cfg.ActionDash)
	step(e, input)
	if state.CurrentState != cfg.Dashing {
		t.Fatalf("Expected dash to trigger, got %v", state.CurrentState)
	}
	if physics.SpeedX != cfg.Player.DashSpeed {
		t.Errorf("Expected dash SpeedX %.1f, got %.1f", cfg.Player.DashSpeed, physics.SpeedX)
	}
	if physics.SpeedY != 0 {
		t.Errorf("Expected dash to zero SpeedY, got %.1f", physics.SpeedY)
	}

	// Nine more frames: 10 duration ticks total, still inside 0.18s.
	for i := 0; i < 9; i++ {
		step(e, input)
	}
	if state.CurrentState != cfg.Dashing {
		t.Fatalf("Expected dash to still be active after 10 ticks, got %v", state.CurrentState)
	}
	if physics.SpeedX != cfg.Player.DashSpeed {
		t.Errorf("Expected dash to hold SpeedX with no axis input, got %.1f", physics.SpeedX)
	}

	// The 11th tick crosses 0.18s and ends the dash.
	step(e, input)
	if state.CurrentState != cfg.Falling {
		t.Errorf("Expected dash to expire into Falling, got %v", state.CurrentState)
	}
}

func TestDashRetriggersAfterCooldown(t *testing.T) {
	e, playerEntry := newPlayerWorld()
	input := getOrCreateInput(e)
	state := components.State.Get(playerEntry)

	for i := 0; i < 30; i++ {
		step(e, input)
	}

	press(input, cfg.ActionDash)
	step(e, input)
	if state.CurrentState != cfg.Dashing {
		t.Fatal("Expected first dash to trigger")
	}

	// Pressing again right away must not restart the dash timers.
	press(input, cfg.ActionDash)
	step(e, input)
	dash := components.Dash.Get(playerEntry)
	if dash.Cooldown.Finished() {
		t.Fatal("Expected cooldown to be running after the first dash")
	}

	for i := 0; i < 30; i++ {
		step(e, input)
	}

	press(input, cfg.ActionDash)
	step(e, input)
	if state.CurrentState != cfg.Dashing {
		t.Errorf("Expected dash to retrigger once the cooldown ran out, got %v", state.CurrentState)
	}
}

func TestMustPlayerEntryPanics(t *testing.T) {
	tests := []struct {
		name    string
		players int
	}{
		{"No players", 0},
		{"Two players", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := ecs.NewECS(donburi.NewWorld())
			for i := 0; i < tt.players; i++ {
				factory.CreatePlayer(e)
			}

			defer func() {
				if recover() == nil {
					t.Errorf("Expected panic with %d players", tt.players)
				}
			}()
			MustPlayerEntry(e.World)
		})
	}
}
