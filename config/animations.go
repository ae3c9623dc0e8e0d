package config

// FrameRange is a closed range of strip indices used by a player state.
type FrameRange struct {
	First int
	Last  int
}

// AnimationConfig contains sprite animation tuning
type AnimationConfig struct {
	FrameInterval float64 // seconds between steps on multi-frame ranges
	StateFrames   map[StateID]FrameRange
}

var Animation AnimationConfig

func init() {
	Animation = AnimationConfig{
		FrameInterval: 0.14,
		StateFrames: map[StateID]FrameRange{
			Standing: {First: 0, Last: 0},
			Jumping:  {First: 1, Last: 1},
			Falling:  {First: 2, Last: 2},
			Dashing:  {First: 2, Last: 3},
		},
	}
}
