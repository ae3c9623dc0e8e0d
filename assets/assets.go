package assets

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Strip frame indices. The whole character sheet is a generated 4x1 pixel
// strip; each pixel is one "frame" scaled up to the player quad at draw time.
const (
	FrameIdle = iota
	FrameJump
	FrameFall
	FrameDash

	FrameCount
)

var stripPixels = [FrameCount]color.RGBA{
	{R: 255, G: 255, B: 255, A: 255}, // idle
	{R: 120, G: 180, B: 255, A: 255}, // jump
	{R: 255, G: 200, B: 120, A: 255}, // fall
	{R: 255, G: 120, B: 160, A: 255}, // dash
}

var (
	strip  *ebiten.Image
	frames [FrameCount]*ebiten.Image
)

// PlayerFrame returns the sub-image for one frame of the player strip. The
// strip is built lazily so headless code paths never touch the graphics
// device.
func PlayerFrame(index int) *ebiten.Image {
	if strip == nil {
		buildStrip()
	}
	return frames[index]
}

func buildStrip() {
	data := make([]byte, 0, FrameCount*4)
	for _, c := range stripPixels {
		data = append(data, c.R, c.G, c.B, c.A)
	}

	strip = ebiten.NewImage(FrameCount, 1)
	strip.WritePixels(data)

	for i := range frames {
		frames[i] = strip.SubImage(image.Rect(i, 0, i+1, 1)).(*ebiten.Image)
	}
}
