package systems

import (
	"math"
	"testing"

	"github.com/kyberchelik/platformer/components"
	cfg "github.com/kyberchelik/platformer/config"
	"github.com/kyberchelik/platformer/systems/factory"
)

func TestFallingPlayerLandsOnFloor(t *testing.T) {
	e, playerEntry := newLevelWorld()
	physics := components.Physics.Get(playerEntry)
	player := components.Player.Get(playerEntry)
	state := components.State.Get(playerEntry)
	obj := components.Object.Get(playerEntry)

	setPos(playerEntry, 96, 300)
	physics.SpeedY = 0

	for i := 0; i < 120; i++ {
		UpdatePhysics(e)
		UpdateCollisions(e)
		UpdateObjects(e)
		UpdatePlayerState(e)
	}

	if !player.Grounded {
		t.Fatal("Expected the player to land within two seconds")
	}
	if physics.SpeedY != 0 {
		t.Errorf("Expected vertical speed to zero on contact, got %.3f", physics.SpeedY)
	}
	if state.CurrentState != cfg.Standing {
		t.Errorf("Expected Standing after landing, got %v", state.CurrentState)
	}
	if bottom := obj.Y + obj.H; math.Abs(bottom-432) > 1 {
		t.Errorf("Expected player bottom to rest on the floor at 432, got %.3f", bottom)
	}
}

func TestWallStopsHorizontalMovement(t *testing.T) {
	e, playerEntry := newLevelWorld()
	factory.CreateTile(e, 192, 384, 48, 48)

	physics := components.Physics.Get(playerEntry)
	obj := components.Object.Get(playerEntry)

	setPos(playerEntry, 96, 384)

	for i := 0; i < 30; i++ {
		physics.SpeedX = cfg.Player.MoveSpeed
		UpdateCollisions(e)
		UpdateObjects(e)
	}

	if physics.SpeedX != 0 {
		t.Errorf("Expected horizontal speed to zero on wall contact, got %.3f", physics.SpeedX)
	}
	if right := obj.X + obj.W; math.Abs(right-192) > 1 {
		t.Errorf("Expected player to stop at the wall face at 192, got %.3f", right)
	}
}

func TestMaxFallSpeedClamp(t *testing.T) {
	e, playerEntry := newLevelWorld()
	physics := components.Physics.Get(playerEntry)

	// High in the air, far above the floor.
	setPos(playerEntry, 96, -4000)

	for i := 0; i < 120; i++ {
		UpdatePhysics(e)
	}

	if physics.SpeedY != cfg.Physics.MaxFallSpeed {
		t.Errorf("Expected fall speed to clamp at %.0f, got %.3f", cfg.Physics.MaxFallSpeed, physics.SpeedY)
	}
}
