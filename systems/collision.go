package systems

import (
	"github.com/kyberchelik/platformer/components"
	cfg "github.com/kyberchelik/platformer/config"
	"github.com/kyberchelik/platformer/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCollisions integrates velocities against the solid tiles, one axis at
// a time, zeroing the blocked axis on contact.
func UpdateCollisions(ecs *ecs.ECS) {
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)
		obj := components.Object.Get(e)

		resolveHorizontalCollision(physics, obj.Object)
		resolveVerticalCollision(physics, obj.Object)
	})
}

func resolveHorizontalCollision(physics *components.PhysicsData, object *resolv.Object) {
	dx := physics.SpeedX * cfg.Dt
	if dx == 0 {
		return
	}

	if check := object.Check(dx, 0, tags.ResolvSolid); check != nil {
		if solids := check.ObjectsByTags(tags.ResolvSolid); len(solids) > 0 {
			dx = check.ContactWithObject(solids[0]).X()
			physics.SpeedX = 0
		}
	}

	object.X += dx
}

func resolveVerticalCollision(physics *components.PhysicsData, object *resolv.Object) {
	dy := physics.SpeedY * cfg.Dt

	// Check one extra pixel downward so resting contact keeps registering.
	checkDistance := dy
	if dy >= 0 {
		checkDistance++
	}

	if check := object.Check(0, checkDistance, tags.ResolvSolid); check != nil {
		if solids := check.ObjectsByTags(tags.ResolvSolid); len(solids) > 0 {
			dy = check.ContactWithObject(solids[0]).Y()
			physics.SpeedY = 0
		}
	}

	object.Y += dy
}
