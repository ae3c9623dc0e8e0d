package systems

import (
	"testing"

	cfg "github.com/kyberchelik/platformer/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func TestPauseToggles(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	input := getOrCreateInput(e)
	pause := GetOrCreatePause(e)

	press(input, cfg.ActionPause)
	UpdatePause(e)
	if !pause.IsPaused {
		t.Fatal("Expected pause press to pause the game")
	}

	// Holding the key must not flicker the flag.
	input.Previous = input.Current
	UpdatePause(e)
	if !pause.IsPaused {
		t.Fatal("Expected held pause key to keep the game paused")
	}

	// Release, then press again to unpause.
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
	UpdatePause(e)
	input.Previous = input.Current
	press(input, cfg.ActionPause)
	UpdatePause(e)
	if pause.IsPaused {
		t.Fatal("Expected second pause press to unpause the game")
	}
}

func TestWithGameplayChecksSkipsWhilePaused(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	pause := GetOrCreatePause(e)

	calls := 0
	system := WithGameplayChecks(func(*ecs.ECS) { calls++ })

	system(e)
	if calls != 1 {
		t.Fatalf("Expected wrapped system to run while unpaused, ran %d times", calls)
	}

	pause.IsPaused = true
	system(e)
	if calls != 1 {
		t.Fatalf("Expected wrapped system to be skipped while paused, ran %d times", calls)
	}

	pause.IsPaused = false
	system(e)
	if calls != 2 {
		t.Fatalf("Expected wrapped system to resume after unpausing, ran %d times", calls)
	}
}

func TestDebugToggle(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	input := getOrCreateInput(e)
	settings := GetOrCreateSettings(e)

	if settings.Debug {
		t.Fatal("Expected debug overlay to start disabled")
	}

	press(input, cfg.ActionDebug)
	UpdateSettings(e)
	if !settings.Debug {
		t.Error("Expected debug toggle to enable the overlay")
	}

	input.Previous = input.Current
	press(input, cfg.ActionDebug)
	UpdateSettings(e)
	if !settings.Debug {
		t.Error("Expected held debug key to not re-toggle")
	}
}
