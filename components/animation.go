package components

import (
	"github.com/kyberchelik/platformer/assets/animations"
	"github.com/kyberchelik/platformer/config"
	"github.com/yohamta/donburi"
)

type AnimationData struct {
	CurrentAnimation *animations.Animation
	CurrentState     config.StateID
	Animations       map[config.StateID]*animations.Animation
}

// SetAnimation swaps to the frame range for the given state, restarting it on
// entry. Re-selecting the active state is a no-op so multi-frame ranges keep
// cycling.
func (a *AnimationData) SetAnimation(state config.StateID) {
	if a.CurrentState == state {
		return
	}

	anim, ok := a.Animations[state]
	if ok {
		if a.CurrentAnimation != anim {
			a.CurrentAnimation = anim
			a.CurrentAnimation.Restart()
		}
	} else {
		a.CurrentAnimation = nil
	}
	a.CurrentState = state
}

var Animation = donburi.NewComponentType[AnimationData]()
