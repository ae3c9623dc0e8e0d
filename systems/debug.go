package systems

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/kyberchelik/platformer/components"
	cfg "github.com/kyberchelik/platformer/config"
	"github.com/kyberchelik/platformer/tags"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines every collision object and prints the player state
// readout. Enabled with F1.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !GetOrCreateSettings(ecs).Debug {
		return
	}

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		space := components.Space.Get(spaceEntry)

		for _, obj := range space.Objects() {
			c := cfg.DebugSolidColor
			if obj.HasTags(tags.ResolvPlayer) {
				c = cfg.DebugPlayerColor
			}

			x, y := float32(obj.X), float32(obj.Y)
			w, h := float32(obj.W), float32(obj.H)

			// Draw outline
			vector.FillRect(screen, x, y, w, 1, c, false)     // Top
			vector.FillRect(screen, x, y+h-1, w, 1, c, false) // Bottom
			vector.FillRect(screen, x, y, 1, h, c, false)     // Left
			vector.FillRect(screen, x+w-1, y, 1, h, c, false) // Right
		}
	}

	playerEntry := MustPlayerEntry(ecs.World)
	player := components.Player.Get(playerEntry)
	physics := components.Physics.Get(playerEntry)
	state := components.State.Get(playerEntry)
	obj := components.Object.Get(playerEntry)

	readout := fmt.Sprintf(
		"state: %s\ngrounded: %v\npos: %.1f, %.1f\nspeed: %.1f, %.1f",
		state.CurrentState, player.Grounded, obj.X, obj.Y, physics.SpeedX, physics.SpeedY,
	)
	ebitenutil.DebugPrintAt(screen, readout, 10, 10)
}
