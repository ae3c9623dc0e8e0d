package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID identifies a game action that input can be bound to
type ActionID int

const (
	ActionMoveLeft ActionID = iota
	ActionMoveRight
	ActionJump
	ActionDash
	ActionPause
	ActionDebug

	ActionCount
)

// ActionBinding maps an action to its physical inputs
type ActionBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// InputConfig contains input binding configuration
type InputConfig struct {
	Bindings map[ActionID]ActionBinding

	// AnalogDeadzone is the stick magnitude below which facing is not updated.
	// The raw axis value still feeds movement, matching the original's
	// additive keyboard+stick behavior.
	AnalogDeadzone float64
}

var Input InputConfig

func init() {
	Input = InputConfig{
		AnalogDeadzone: 0.1,
		Bindings: map[ActionID]ActionBinding{
			ActionMoveLeft: {
				Keys: []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA},
			},
			ActionMoveRight: {
				Keys: []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD},
			},
			ActionJump: {
				Keys:                   []ebiten.Key{ebiten.KeySpace, ebiten.KeyW},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom},
			},
			ActionDash: {
				Keys:                   []ebiten.Key{ebiten.KeyShiftLeft, ebiten.KeyShiftRight},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightRight},
			},
			ActionPause: {
				Keys: []ebiten.Key{ebiten.KeyEscape},
			},
			ActionDebug: {
				Keys: []ebiten.Key{ebiten.KeyF1},
			},
		},
	}
}
