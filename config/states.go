package config

// StateID identifies a player movement state.
type StateID int

const (
	StateNone StateID = iota

	Standing
	Jumping
	Falling
	Dashing
)

func (s StateID) String() string {
	switch s {
	case Standing:
		return "Standing"
	case Jumping:
		return "Jumping"
	case Falling:
		return "Falling"
	case Dashing:
		return "Dashing"
	default:
		return "None"
	}
}
