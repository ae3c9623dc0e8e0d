package components

import (
	"github.com/kyberchelik/platformer/config"
	"github.com/yohamta/donburi"
)

type StateData struct {
	CurrentState  config.StateID
	PreviousState config.StateID
}

var State = donburi.NewComponentType[StateData]()

// Per-state marker components kept in sync with StateData so entities can be
// queried by movement state.
type StandingState struct{}
type JumpingState struct{}
type FallingState struct{}
type DashingState struct{}

var Standing = donburi.NewComponentType[StandingState]()
var Jumping = donburi.NewComponentType[JumpingState]()
var Falling = donburi.NewComponentType[FallingState]()
var Dashing = donburi.NewComponentType[DashingState]()
