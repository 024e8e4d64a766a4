package config

import (
	"fmt"
	"image/color"
	"os"

	"github.com/automoto/dino/shared/rules"
	"github.com/yohamta/donburi/ecs"
)

// Default is the only render layer; renderers run in registration order.
const Default ecs.LayerID = 0

// Config holds the window size in logical pixels.
type Config struct {
	Width  int
	Height int
}

// HUDConfig contains the top bar layout.
type HUDConfig struct {
	BorderColor     color.RGBA
	BackgroundColor color.RGBA
	TextColor       color.RGBA
	Border          int
	ScoreX          int
	LivesX          int
	TextY           int
	ScoreWidth      int // digits, zero padded
	LivesWidth      int
}

// BackgroundConfig contains the parallax sky and hills.
type BackgroundConfig struct {
	DayColor      color.RGBA
	NightColor    color.RGBA
	FarColor      color.RGBA
	NearColor     color.RGBA
	SnowFarColor  color.RGBA
	SnowNearColor color.RGBA
	CycleFrames   int // sky alternates every CycleFrames
	FarWidth      int // far layer spans 1.5 screens
	NearWidth     int // near layer spans 3 screens
	FarTravel     int // pixels the far layer scrolls across the whole level
	NearTravel    int
}

// WeatherConfig contains rain and lightning.
type WeatherConfig struct {
	DropColor      color.RGBA
	FlashColor     color.RGBA
	Drops          int
	DropLength     float32
	FrameEvery     int // rain alternates frames every FrameEvery
	LightningOdds  int // one in LightningOdds per frame
	FlashFrames    int
	SplashLifetime int
}

// WipeConfig contains the death iris.
type WipeConfig struct {
	Frames     int // total death frames, first half is a pause
	MaxRadius  float32
	Exponent   float64
	ShadeColor color.RGBA
}

// IntroConfig contains the level intro card.
type IntroConfig struct {
	BackgroundColor color.RGBA
	TextColor       color.RGBA
	SlideSeconds    float32
}

// EffectsConfig contains cosmetic particles and score popups.
type EffectsConfig struct {
	PopupFrames    int
	PopupRise      float64
	BurstFrames    int
	BurstParticles int
	BurstSpeed     float64
	GemColor       color.RGBA
	LifeColor      color.RGBA
	StompColor     color.RGBA
	CrackColor     color.RGBA
}

// MenuConfig contains title screen configuration values.
type MenuConfig struct {
	BackgroundColor color.RGBA
	TitleColor      color.RGBA
	TextColor       color.RGBA
	ButtonColor     color.RGBA
	ButtonHover     color.RGBA
	Title           string
	HighScores      int
}

// GameOverConfig contains game over and finish screen values.
type GameOverConfig struct {
	BackgroundColor   color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	TitleY            float64
	ScoreY            float64
	MenuStartY        float64
	MenuItemHeight    float64
	MenuItemGap       float64
	MenuOptions       []string
}

// ScreenShakeConfig contains screen shake effect configuration
type ScreenShakeConfig struct {
	StompIntensity   float64 // pixels
	StompDuration    int     // frames
	DeathIntensity   float64
	DeathDuration    int
	ThunderIntensity float64
	ThunderDuration  int
}

// DebugConfig contains start-up switches, normally set from flags.
type DebugConfig struct {
	SkipMenu bool
	Overlay  bool
}

// LevelSourceConfig says where levels are loaded from.
type LevelSourceConfig struct {
	Dir   string // empty uses the embedded set
	Watch bool
}

var C *Config
var HUD HUDConfig
var Background BackgroundConfig
var Weather WeatherConfig
var Wipe WipeConfig
var Intro IntroConfig
var Effects EffectsConfig
var Menu MenuConfig
var GameOver GameOverConfig
var ScreenShake ScreenShakeConfig
var Debug DebugConfig
var Levels LevelSourceConfig

// Simulation tuning lives in shared/rules so the headless tool sees the
// same values. These point at the live sections.
var (
	World    = &rules.World
	Player   = &rules.Player
	Entities = &rules.Entities
	Session  = &rules.Session
)

var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 165, B: 0, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 200, B: 50, A: 255}
	LightRed     = color.RGBA{R: 255, G: 80, B: 80, A: 255}
	BrightGreen  = color.RGBA{R: 80, G: 255, B: 120, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:  rules.World.ScreenWidth,
		Height: rules.World.ScreenHeight + rules.World.HUDHeight,
	}

	HUD = HUDConfig{
		BorderColor:     White,
		BackgroundColor: Black,
		TextColor:       White,
		Border:          4,
		ScoreX:          40,
		LivesX:          450,
		TextY:           42,
		ScoreWidth:      7,
		LivesWidth:      2,
	}

	Background = BackgroundConfig{
		DayColor:      color.RGBA{R: 120, G: 180, B: 235, A: 255},
		NightColor:    color.RGBA{R: 20, G: 24, B: 60, A: 255},
		FarColor:      color.RGBA{R: 70, G: 120, B: 90, A: 255},
		NearColor:     color.RGBA{R: 40, G: 90, B: 50, A: 255},
		SnowFarColor:  color.RGBA{R: 200, G: 210, B: 230, A: 255},
		SnowNearColor: color.RGBA{R: 235, G: 240, B: 250, A: 255},
		CycleFrames:   120,
		FarWidth:      960,
		NearWidth:     1920,
		FarTravel:     320,
		NearTravel:    640,
	}

	Weather = WeatherConfig{
		DropColor:      color.RGBA{R: 170, G: 190, B: 255, A: 160},
		FlashColor:     White,
		Drops:          90,
		DropLength:     10,
		FrameEvery:     10,
		LightningOdds:  200,
		FlashFrames:    2,
		SplashLifetime: 6,
	}

	Wipe = WipeConfig{
		Frames:     rules.Session.DeathFrames,
		MaxRadius:  720,
		Exponent:   6,
		ShadeColor: Black,
	}

	Intro = IntroConfig{
		BackgroundColor: Black,
		TextColor:       White,
		SlideSeconds:    0.5,
	}

	Effects = EffectsConfig{
		PopupFrames:    40,
		PopupRise:      0.75,
		BurstFrames:    24,
		BurstParticles: 8,
		BurstSpeed:     2.5,
		GemColor:       color.RGBA{R: 80, G: 230, B: 255, A: 255},
		LifeColor:      color.RGBA{R: 255, G: 90, B: 160, A: 255},
		StompColor:     color.RGBA{R: 255, G: 230, B: 120, A: 255},
		CrackColor:     color.RGBA{R: 220, G: 240, B: 255, A: 255},
	}

	Menu = MenuConfig{
		BackgroundColor: color.RGBA{R: 15, G: 25, B: 50, A: 255},
		TitleColor:      Orange,
		TextColor:       White,
		ButtonColor:     color.RGBA{R: 40, G: 100, B: 40, A: 255},
		ButtonHover:     color.RGBA{R: 60, G: 140, B: 60, A: 255},
		Title:           "DINO",
		HighScores:      5,
	}

	GameOver = GameOverConfig{
		BackgroundColor:   color.RGBA{R: 40, G: 10, B: 10, A: 255},
		TitleColor:        LightRed,
		TextColorNormal:   White,
		TextColorSelected: BrightOrange,
		TitleY:            120,
		ScoreY:            170,
		MenuStartY:        220,
		MenuItemHeight:    30,
		MenuItemGap:       15,
		MenuOptions:       []string{"Retry", "Main Menu"},
	}

	ScreenShake = ScreenShakeConfig{
		StompIntensity:   2.0,
		StompDuration:    5,
		DeathIntensity:   6.0,
		DeathDuration:    12,
		ThunderIntensity: 3.0,
		ThunderDuration:  8,
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		SkipMenu: false,
	}
}

// LoadTuning overlays a YAML tuning file onto the simulation rules. Fields
// the file leaves out keep their defaults.
func LoadTuning(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open tuning %s: %w", path, err)
	}
	defer f.Close()
	if err := rules.Apply(f); err != nil {
		return fmt.Errorf("tuning %s: %w", path, err)
	}
	// Death frames drive the wipe length.
	Wipe.Frames = rules.Session.DeathFrames
	return nil
}
