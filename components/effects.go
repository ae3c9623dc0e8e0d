package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// SquashStretchData tracks sprite scale deformation for jump/land feel
type SquashStretchData struct {
	ScaleX, ScaleY   float64 // current scale
	TargetX, TargetY float64 // lerp target (usually 1.0, 1.0)
	LerpSpeed        float64 // how fast to return to normal
}

var SquashStretch = donburi.NewComponentType[SquashStretchData]()

// FadeData drives the scene fade-in overlay. Tween is nil once the fade has
// completed.
type FadeData struct {
	Tween *gween.Tween
	Alpha float32
}

var Fade = donburi.NewComponentType[FadeData]()
