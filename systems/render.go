package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/kyberchelik/platformer/assets"
	"github.com/kyberchelik/platformer/components"
	cfg "github.com/kyberchelik/platformer/config"
	"github.com/kyberchelik/platformer/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var drawOp = &ebiten.DrawImageOptions{}

// DrawLevel paints every tile collider as a flat-color square.
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	tags.Tile.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		vector.FillRect(screen,
			float32(obj.X), float32(obj.Y),
			float32(obj.W), float32(obj.H),
			cfg.Level.TileColor, false)
	})
}

// DrawPlayer renders the current strip frame scaled to the player's collision
// box, flipped to match facing. The traveling dash range gets the warm tint.
func DrawPlayer(ecs *ecs.ECS, screen *ebiten.Image) {
	playerEntry := MustPlayerEntry(ecs.World)

	player := components.Player.Get(playerEntry)
	obj := components.Object.Get(playerEntry)
	animData := components.Animation.Get(playerEntry)

	anim := animData.CurrentAnimation
	if anim == nil {
		return
	}

	frame := assets.PlayerFrame(anim.Frame())

	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()

	// Each frame is a single pixel. Scale it to the collision box around a
	// bottom-center anchor so squash/stretch keeps the feet planted.
	drawOp.GeoM.Translate(-0.5, -1)
	drawOp.GeoM.Scale(obj.W, obj.H)

	if player.Direction.X < 0 {
		drawOp.GeoM.Scale(-1, 1)
	}

	ss := components.SquashStretch.Get(playerEntry)
	drawOp.GeoM.Scale(ss.ScaleX, ss.ScaleY)

	drawOp.GeoM.Translate(obj.X+obj.W/2, obj.Y+obj.H)

	if anim.Traveling() {
		drawOp.ColorScale.Scale(
			float32(cfg.SpriteTint.R)/255,
			float32(cfg.SpriteTint.G)/255,
			float32(cfg.SpriteTint.B)/255,
			1,
		)
	}

	screen.DrawImage(frame, drawOp)
}

// DrawFade draws the scene fade-in overlay on top of everything else.
func DrawFade(ecs *ecs.ECS, screen *ebiten.Image) {
	fadeEntry, ok := components.Fade.First(ecs.World)
	if !ok {
		return
	}
	fade := components.Fade.Get(fadeEntry)
	if fade.Alpha <= 0 {
		return
	}

	width := screen.Bounds().Dx()
	height := screen.Bounds().Dy()
	overlay := color.RGBA{A: uint8(fade.Alpha * 255)}
	vector.FillRect(screen, 0, 0, float32(width), float32(height), overlay, false)
}
