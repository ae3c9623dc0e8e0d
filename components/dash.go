package components

import "github.com/yohamta/donburi"

// DashData carries the two dash countdowns. Both start unelapsed, so the very
// first dash only becomes available once the cooldown has run.
type DashData struct {
	Duration Timer
	Cooldown Timer
}

var Dash = donburi.NewComponentType[DashData]()
