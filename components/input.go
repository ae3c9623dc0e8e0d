package components

import (
	cfg "github.com/kyberchelik/platformer/config"
	"github.com/yohamta/donburi"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all
// actions, plus the merged horizontal axis. JustPressed/JustReleased are
// computed on demand by comparing frames.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool

	// AxisX is keyboard direction plus the first gamepad's raw stick value.
	// The two sources add together rather than excluding each other.
	AxisX float64
}

var Input = donburi.NewComponentType[InputData]()
