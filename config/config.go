package config

import (
	"image/color"

	"github.com/automoto/bounce/shared/gamestate"
	"github.com/automoto/bounce/shared/physics"
	"github.com/automoto/bounce/shared/tunables"
	"github.com/yohamta/donburi/ecs"
)

// Default is the only render layer.
const Default ecs.LayerID = 0

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	TPS    int
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	FollowSmoothing float64 // How fast camera follows the ball (0.0-1.0)
}

// ThemeConfig holds the playfield palette
type ThemeConfig struct {
	SkyTop      color.RGBA
	SkyBottom   color.RGBA
	Land        color.RGBA
	LandEdge    color.RGBA
	Wall        color.RGBA
	Platform    color.RGBA
	PlatformTop color.RGBA
	Spike       color.RGBA
	Star        color.RGBA
	Goal        color.RGBA
	GoalFlag    color.RGBA
	Ball        color.RGBA
	BallShine   color.RGBA
}

// HUDConfig contains in-game HUD layout
type HUDConfig struct {
	Margin    float64
	LineGap   float64
	TextColor color.RGBA
	Shadow    color.RGBA
}

// TouchConfig sizes the on-screen controls
type TouchConfig struct {
	ButtonSize   float64
	Margin       float64
	Gap          float64
	ButtonColor  color.RGBA
	PressedColor color.RGBA
	IconColor    color.RGBA
}

// OverlayConfig is shared by the pause and game over overlays
type OverlayConfig struct {
	OverlayColor color.RGBA
	TitleColor   color.RGBA
	TextColor    color.RGBA
	TitleY       float64
	MessageY     float64
	HintY        float64
	Title        string
	Hint         string
}

// LevelCompleteConfig contains level complete banner configuration values
type LevelCompleteConfig struct {
	OverlayColor color.RGBA
	TitleColor   color.RGBA
	TextColor    color.RGBA
	Title        string
	ContinueHint string
	FinalHint    string
	SlideSeconds float32
	RestY        float64
	BannerHeight float64
	ScoreOffsetY float64
	HintOffsetY  float64
}

// MenuConfig contains title screen configuration values
type MenuConfig struct {
	BackgroundColor  color.RGBA
	TitleColor       color.RGBA
	TextColor        color.RGBA
	ButtonColor      color.RGBA
	ButtonHover      color.RGBA
	ButtonPressed    color.RGBA
	Title            string
	CampaignComplete string
}

// EffectsConfig contains pickup text, squash and shake tuning
type EffectsConfig struct {
	PickupRise       float32 // pixels the "+N" text floats up
	PickupSeconds    float32
	PickupColor      color.RGBA
	LandScaleX       float64
	LandScaleY       float64
	JumpScaleX       float64
	JumpScaleY       float64
	SquashLerp       float64
	LandMinSpeed     float64 // impact speed that triggers a squash
	DeathShake       float64
	DeathShakeFrames int
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu   bool // Skip menu and go directly to game
	Overlay    bool // Draw collision boxes and avatar state
	StartLevel int  // Level id to start at; 0 means the first level
	LevelsDir  string
	Watch      bool
}

// Global configuration instances
var C *Config
var Physics physics.Params
var World physics.WorldParams
var Scoring gamestate.Scoring
var Camera CameraConfig
var Theme ThemeConfig
var HUD HUDConfig
var Touch TouchConfig
var Pause OverlayConfig
var GameOver OverlayConfig
var LevelComplete LevelCompleteConfig
var Menu MenuConfig
var Effects EffectsConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 215, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	Red          = color.RGBA{R: 220, G: 40, B: 40, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	BrightGreen  = color.RGBA{R: 0, G: 255, B: 60, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}
)

// Apply replaces the simulation tunables.
func Apply(t tunables.Tunables) {
	Physics = t.Physics
	World = t.World
	Scoring = t.Scoring
}

// Tunables returns the simulation tunables currently in effect.
func Tunables() tunables.Tunables {
	return tunables.Tunables{Physics: Physics, World: World, Scoring: Scoring}
}

func init() {
	C = &Config{
		Width:  960,
		Height: 700,
		TPS:    60,
	}

	Apply(tunables.Default())

	Camera = CameraConfig{
		FollowSmoothing: 0.12,
	}

	Theme = ThemeConfig{
		SkyTop:      color.RGBA{R: 120, G: 190, B: 255, A: 255},
		SkyBottom:   color.RGBA{R: 200, G: 235, B: 255, A: 255},
		Land:        color.RGBA{R: 90, G: 160, B: 70, A: 255},
		LandEdge:    color.RGBA{R: 60, G: 120, B: 50, A: 255},
		Wall:        color.RGBA{R: 70, G: 70, B: 90, A: 255},
		Platform:    color.RGBA{R: 150, G: 100, B: 60, A: 255},
		PlatformTop: color.RGBA{R: 110, G: 190, B: 80, A: 255},
		Spike:       color.RGBA{R: 90, G: 90, B: 100, A: 255},
		Star:        Yellow,
		Goal:        color.RGBA{R: 240, G: 240, B: 240, A: 255},
		GoalFlag:    Red,
		Ball:        color.RGBA{R: 230, G: 50, B: 50, A: 255},
		BallShine:   color.RGBA{R: 255, G: 170, B: 170, A: 255},
	}

	HUD = HUDConfig{
		Margin:    20,
		LineGap:   26,
		TextColor: White,
		Shadow:    color.RGBA{R: 0, G: 0, B: 0, A: 140},
	}

	Touch = TouchConfig{
		ButtonSize:   72,
		Margin:       24,
		Gap:          16,
		ButtonColor:  color.RGBA{R: 255, G: 255, B: 255, A: 60},
		PressedColor: color.RGBA{R: 255, G: 255, B: 255, A: 130},
		IconColor:    color.RGBA{R: 255, G: 255, B: 255, A: 200},
	}

	Pause = OverlayConfig{
		OverlayColor: BlackOverlay,
		TitleColor:   White,
		TextColor:    White,
		TitleY:       300,
		MessageY:     350,
		HintY:        400,
		Title:        "Paused",
		Hint:         "Press P or Enter to resume",
	}

	GameOver = OverlayConfig{
		OverlayColor: color.RGBA{R: 40, G: 10, B: 10, A: 200},
		TitleColor:   LightRed,
		TextColor:    White,
		TitleY:       280,
		MessageY:     340,
		HintY:        400,
		Title:        "Game Over",
		Hint:         "Press R or Enter to restart",
	}

	LevelComplete = LevelCompleteConfig{
		OverlayColor: BlackOverlay,
		TitleColor:   BrightGreen,
		TextColor:    White,
		Title:        "Level Complete!",
		ContinueHint: "Press Enter for the next level",
		FinalHint:    "Press Enter to finish",
		SlideSeconds: 0.45,
		RestY:        240,
		BannerHeight: 200,
		ScoreOffsetY: 110,
		HintOffsetY:  160,
	}

	Menu = MenuConfig{
		BackgroundColor:  color.RGBA{R: 15, G: 25, B: 50, A: 255},
		TitleColor:       Orange,
		TextColor:        White,
		ButtonColor:      DarkBlue,
		ButtonHover:      LightBlue,
		ButtonPressed:    color.RGBA{R: 40, G: 70, B: 120, A: 255},
		Title:            "BOUNCE",
		CampaignComplete: "You beat every level!",
	}

	Effects = EffectsConfig{
		PickupRise:       40,
		PickupSeconds:    0.8,
		PickupColor:      Yellow,
		LandScaleX:       1.3,
		LandScaleY:       0.75,
		JumpScaleX:       0.8,
		JumpScaleY:       1.25,
		SquashLerp:       0.15,
		LandMinSpeed:     4,
		DeathShake:       8,
		DeathShakeFrames: 12,
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{}
}
