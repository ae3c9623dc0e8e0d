package scenes

import (
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	cfg "github.com/kyberchelik/platformer/config"
	"github.com/kyberchelik/platformer/systems"
	"github.com/kyberchelik/platformer/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type PlatformerScene struct {
	ecs  *ecs.ECS
	once sync.Once
}

func NewPlatformerScene() *PlatformerScene {
	return &PlatformerScene{}
}

func (ps *PlatformerScene) Update() {
	ps.once.Do(ps.configure)
	ps.ecs.Update()
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.BackgroundColor)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

func (ps *PlatformerScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Systems that always run
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdatePause)
	ecs.AddSystem(systems.UpdateSettings)

	// Game systems skipped while paused
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdatePlayer))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdatePhysics))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateCollisions))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateObjects))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdatePlayerState))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateAnimations))
	ecs.AddSystem(systems.WithGameplayChecks(systems.ApplyGroundSnap))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateEffects))

	// The fade keeps resolving even while paused
	ecs.AddSystem(systems.UpdateFade)

	ecs.AddRenderer(cfg.Default, systems.DrawLevel)
	ecs.AddRenderer(cfg.Default, systems.DrawPlayer)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.Default, systems.DrawPause)
	ecs.AddRenderer(cfg.Default, systems.DrawFade)

	ps.ecs = ecs

	// The space has to cover every level row, including the ones below the
	// visible window.
	factory.CreateSpace(ps.ecs, cfg.C.Width, factory.SpaceHeight(), 16, 16)
	factory.BuildLevel(ps.ecs)
	factory.CreatePlayer(ps.ecs)
	factory.CreateFade(ps.ecs)
}
