package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/kyberchelik/platformer/components"
	cfg "github.com/kyberchelik/platformer/config"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdateInput polls raw input into the singleton InputData. Must run before
// every gameplay system.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
	input.AxisX = 0

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}
	}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])
	if gpID, ok := firstStandardGamepad(gamepadIDs); ok {
		for actionID, binding := range cfg.Input.Bindings {
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
				}
			}
		}

		// Raw stick value, no deadzone: it adds to the keyboard axis below
		// instead of replacing it.
		input.AxisX = ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
	}

	if input.Current[cfg.ActionMoveLeft] {
		input.AxisX -= 1
	}
	if input.Current[cfg.ActionMoveRight] {
		input.AxisX += 1
	}
}

// firstStandardGamepad returns the first connected gamepad with a standard
// layout. Only that one feeds movement.
func firstStandardGamepad(gamepads []ebiten.GamepadID) (ebiten.GamepadID, bool) {
	for _, gpID := range gamepads {
		if ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			return gpID, true
		}
	}
	return 0, false
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}
