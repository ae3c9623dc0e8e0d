package components

import (
	"github.com/yohamta/donburi"
)

// Vector represents a 2D vector.
type Vector struct {
	X, Y float64
}

// PhysicsData holds the velocity state owned by the physics step. Speeds are
// in px/s and integrated with the frame delta during collision resolution.
type PhysicsData struct {
	SpeedX       float64
	SpeedY       float64
	Gravity      float64
	MaxFallSpeed float64
}

var Physics = donburi.NewComponentType[PhysicsData]()
