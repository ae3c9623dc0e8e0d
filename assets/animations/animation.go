package animations

// Animation steps through a closed range of strip indices at a fixed tick
// interval. Single-frame ranges never advance.
type Animation struct {
	First        int
	Last         int
	SpeedInTps   float32 // how many ticks before the next frame
	frameCounter float32
	frame        int
}

func NewAnimation(first, last int, speed float32) *Animation {
	return &Animation{
		First:        first,
		Last:         last,
		SpeedInTps:   speed,
		frameCounter: speed,
		frame:        first,
	}
}

func (a *Animation) Update() {
	if a.First == a.Last {
		return
	}
	a.frameCounter -= 1.0
	if a.frameCounter < 0.0 {
		a.frameCounter = a.SpeedInTps
		a.frame++
		if a.frame > a.Last {
			// loop back to the beginning
			a.frame = a.First
		}
	}
}

func (a *Animation) Frame() int {
	return a.frame
}

// Traveling reports whether the range cycles through more than one frame.
func (a *Animation) Traveling() bool {
	return a.First != a.Last
}

func (a *Animation) Restart() {
	a.frame = a.First
	a.frameCounter = a.SpeedInTps
}
