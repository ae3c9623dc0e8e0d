package components

import (
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Direction Vector // X is the facing sign, +1 right / -1 left

	// Grounded is the heuristic resting-on-tile flag, recomputed by the state
	// system each frame after collision resolution. Input handling reads the
	// previous frame's value, same as the original system ordering.
	Grounded bool
}

var Player = donburi.NewComponentType[PlayerData]()
