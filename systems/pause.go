package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/kyberchelik/platformer/components"
	cfg "github.com/kyberchelik/platformer/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePause toggles the pause flag. Runs after UpdateInput and before the
// wrapped gameplay systems.
func UpdatePause(ecs *ecs.ECS) {
	pause := GetOrCreatePause(ecs)
	input := getOrCreateInput(ecs)

	if GetAction(input, cfg.ActionPause).JustPressed {
		pause.IsPaused = !pause.IsPaused
	}
}

// WithGameplayChecks wraps a system so it is skipped while the game is paused.
func WithGameplayChecks(system func(*ecs.ECS)) func(*ecs.ECS) {
	return func(e *ecs.ECS) {
		if GetOrCreatePause(e).IsPaused {
			return
		}
		system(e)
	}
}

// GetOrCreatePause returns the singleton pause state, creating if needed.
func GetOrCreatePause(ecs *ecs.ECS) *components.PauseData {
	entry, ok := components.Pause.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Pause))
	}
	return components.Pause.Get(entry)
}

// DrawPause renders the pause overlay.
func DrawPause(ecs *ecs.ECS, screen *ebiten.Image) {
	if !GetOrCreatePause(ecs).IsPaused {
		return
	}

	width := screen.Bounds().Dx()
	height := screen.Bounds().Dy()

	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.PauseOverlay, false)
	ebitenutil.DebugPrintAt(screen, "PAUSED", width/2-20, height/2-8)
}
