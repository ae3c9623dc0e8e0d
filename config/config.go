package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Frame timing. Ebiten drives Update at a fixed 60 ticks per second, so every
// per-second tuning value is integrated with Dt once per frame.
const (
	TPS = 60
	Dt  = 1.0 / TPS
)

// Default is the single render layer every renderer registers on.
const Default ecs.LayerID = 0

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// PlayerConfig contains all player-related tuning values
type PlayerConfig struct {
	// Movement (px/s)
	MoveSpeed  float64
	JumpSpeed  float64
	DashSpeed  float64
	AirControl float64 // horizontal speed multiplier while airborne

	// Dash timing (seconds)
	DashDuration float64
	DashCooldown float64

	// Dimensions
	Width  float64
	Height float64

	// Spawn point in the original centered, y-up world coordinates.
	// Converted to screen space once, when the player is created.
	SpawnX float64
	SpawnY float64

	// GroundedFraction is the share of the player height a touching tile's
	// center must sit below the player's center to count as ground.
	GroundedFraction float64
}

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	Gravity      float64 // px/s^2, downward
	MaxFallSpeed float64 // px/s clamp to keep collision checks coherent
}

// LevelConfig contains level geometry configuration
type LevelConfig struct {
	TileSize float64

	// OriginY anchors row 0 of the tile map in the original y-up world
	// coordinates; rows extend downward from it.
	OriginY float64

	TileColor color.RGBA
}

// EffectsConfig contains visual juice tuning (squash/stretch, scene fade)
type EffectsConfig struct {
	JumpScaleX float64 // horizontal scale on jump (< 1 = narrower)
	JumpScaleY float64 // vertical scale on jump (> 1 = taller)
	LandScaleX float64 // horizontal scale on land (> 1 = wider)
	LandScaleY float64 // vertical scale on land (< 1 = shorter)
	LerpSpeed  float64 // how fast scale returns to normal

	FadeInDuration float64 // seconds for the scene fade from black
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Physics PhysicsConfig
var Level LevelConfig
var Effects EffectsConfig

// Shared RGBA color constants
var (
	BackgroundColor  = color.RGBA{R: 20, G: 23, B: 31, A: 255}
	SpriteTint       = color.RGBA{R: 255, G: 204, B: 204, A: 255}
	PauseOverlay     = color.RGBA{A: 180}
	DebugSolidColor  = color.RGBA{R: 100, G: 100, B: 100, A: 255}
	DebugPlayerColor = color.RGBA{B: 255, A: 255}
)

// Direction constants for player facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	C = &Config{
		Width:  1280,
		Height: 720,
		Title:  "KyberCheliK Platformer",
	}

	Player = PlayerConfig{
		MoveSpeed:  360.0,
		JumpSpeed:  640.0,
		DashSpeed:  820.0,
		AirControl: 0.6,

		DashDuration: 0.18,
		DashCooldown: 0.35,

		Width:  32.0,
		Height: 48.0,

		SpawnX: -400.0,
		SpawnY: 200.0,

		GroundedFraction: 0.45,
	}

	Physics = PhysicsConfig{
		Gravity:      1500.0,
		MaxFallSpeed: 1600.0,
	}

	Level = LevelConfig{
		TileSize:  48.0,
		OriginY:   -160.0,
		TileColor: color.RGBA{R: 51, G: 56, B: 64, A: 255},
	}

	Effects = EffectsConfig{
		JumpScaleX: 0.8,
		JumpScaleY: 1.2,
		LandScaleX: 1.25,
		LandScaleY: 0.75,
		LerpSpeed:  0.2,

		FadeInDuration: 0.5,
	}
}
