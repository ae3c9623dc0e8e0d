package systems

import (
	"github.com/kyberchelik/platformer/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateAnimations selects each entity's frame range from its movement state
// and advances it.
func UpdateAnimations(ecs *ecs.ECS) {
	components.Animation.Each(ecs.World, func(e *donburi.Entry) {
		state := components.State.Get(e)
		animData := components.Animation.Get(e)

		animData.SetAnimation(state.CurrentState)
		if animData.CurrentAnimation != nil {
			animData.CurrentAnimation.Update()
		}
	})
}
