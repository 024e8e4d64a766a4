// Package rules holds the simulation tuning shared by the game client and the
// headless tools. It must not import ebiten so the simulation can be run and
// tested without a display.
package rules

// WorldConfig contains screen, grid and streaming constants.
type WorldConfig struct {
	TileSize     int `yaml:"tileSize"`
	ScreenWidth  int `yaml:"screenWidth"`
	ScreenHeight int `yaml:"screenHeight"`
	HUDHeight    int `yaml:"hudHeight"`

	// View range in tiles around the focus tile
	ViewH int `yaml:"viewH"`
	ViewV int `yaml:"viewV"`

	SampleStride int `yaml:"sampleStride"`

	// Protect test origin. Both axes use the same value.
	ProtectOrigin int `yaml:"protectOrigin"`

	// Snowballs retire outside this horizontal screen band
	ScreenMarginMin int `yaml:"screenMarginMin"`
	ScreenMarginMax int `yaml:"screenMarginMax"`
}

// PlayerConfig contains player movement tuning.
type PlayerConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	MaxSpeed        float64 `yaml:"maxSpeed"`
	Acceleration    float64 `yaml:"acceleration"`
	AirDecelDivisor float64 `yaml:"airDecelDivisor"`
	JumpSpeed       float64 `yaml:"jumpSpeed"`
	JumpRelease     float64 `yaml:"jumpRelease"`
	Gravity         float64 `yaml:"gravity"`

	PounceMargin  int     `yaml:"pounceMargin"`
	BounceHigh    float64 `yaml:"bounceHigh"`
	BounceLow     float64 `yaml:"bounceLow"`
	RunFrameEvery int     `yaml:"runFrameEvery"`

	SpawnColumn int `yaml:"spawnColumn"`
}

// SurfaceConfig contains traction values for solids.
type SurfaceConfig struct {
	DefaultTraction float64 `yaml:"defaultTraction"`
	IceTraction     float64 `yaml:"iceTraction"`
}

// ThinIceConfig controls cracking and refreezing.
type ThinIceConfig struct {
	CrackLimit     int `yaml:"crackLimit"`
	MeltFrames     int `yaml:"meltFrames"`
	DecayEvery     int `yaml:"decayEvery"`
	CracksPerStage int `yaml:"cracksPerStage"`
}

// PatrolConfig is used by the snake.
type PatrolConfig struct {
	Width     int `yaml:"width"`
	StepEvery int `yaml:"stepEvery"`
	Speed     int `yaml:"speed"`
	Score     int `yaml:"score"`
}

// FlyerConfig is used by the ptero.
type FlyerConfig struct {
	Interval     int     `yaml:"interval"`
	Acceleration float64 `yaml:"acceleration"`
	StopBelow    float64 `yaml:"stopBelow"`
	FlapEvery    int     `yaml:"flapEvery"`
	Score        int     `yaml:"score"`
}

// HopperConfig is used by the frog.
type HopperConfig struct {
	JumpEvery  int     `yaml:"jumpEvery"`
	LaunchSpd  float64 `yaml:"launchSpeed"`
	Gravity    float64 `yaml:"gravity"`
	AimOffsetX int     `yaml:"aimOffsetX"`
	AimOffsetY int     `yaml:"aimOffsetY"`
	Score      int     `yaml:"score"`
}

// SpawnerConfig is used by the plant, spit and yeti.
type SpawnerConfig struct {
	PlantEvery int `yaml:"plantEvery"`

	SpitMinRange  float64 `yaml:"spitMinRange"`
	SpitMaxRange  float64 `yaml:"spitMaxRange"`
	SpitShakeMax  int     `yaml:"spitShakeMax"`
	SpitShakeStep int     `yaml:"spitShakeStep"`
	SpitFireDelay int     `yaml:"spitFireDelay"`
	SpitEvery     int     `yaml:"spitEvery"`
	SpitSpeed     float64 `yaml:"spitSpeed"`
	SpitAimX      int     `yaml:"spitAimX"` // target offset from the player's corner
	SpitAimY      int     `yaml:"spitAimY"`

	YetiRange float64 `yaml:"yetiRange"`
	YetiEvery int     `yaml:"yetiEvery"`
	YetiSpeed float64 `yaml:"yetiSpeed"`

	ProjectileSize    int     `yaml:"projectileSize"`
	ProjectileGravity float64 `yaml:"projectileGravity"`
}

// BigWalkerConfig is used by the mammoth.
type BigWalkerConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	OffsetY   int `yaml:"offsetY"`
	Speed     int `yaml:"speed"`
	StepEvery int `yaml:"stepEvery"`
	Score     int `yaml:"score"`
}

// PickupConfig is used by gems and the bounce pad.
type PickupConfig struct {
	GemSize       int `yaml:"gemSize"`
	GemScore      int `yaml:"gemScore"`
	GemBlinkEvery int `yaml:"gemBlinkEvery"`
	SquishFrames  int `yaml:"squishFrames"`
	WaveEvery     int `yaml:"waveEvery"`
}

// EntitiesConfig groups per-kind tuning.
type EntitiesConfig struct {
	Surface  SurfaceConfig   `yaml:"surface"`
	ThinIce  ThinIceConfig   `yaml:"thinIce"`
	Snake    PatrolConfig    `yaml:"snake"`
	Ptero    FlyerConfig     `yaml:"ptero"`
	Frog     HopperConfig    `yaml:"frog"`
	Spawners SpawnerConfig   `yaml:"spawners"`
	Mammoth  BigWalkerConfig `yaml:"mammoth"`
	Pickups  PickupConfig    `yaml:"pickups"`
}

// SessionConfig contains lives and timing of the attempt lifecycle.
type SessionConfig struct {
	StartingLives int `yaml:"startingLives"`
	IntroFrames   int `yaml:"introFrames"`
	DeathFrames   int `yaml:"deathFrames"`
}

// Tuning is the document shape accepted by Apply.
type Tuning struct {
	World    WorldConfig    `yaml:"world"`
	Player   PlayerConfig   `yaml:"player"`
	Entities EntitiesConfig `yaml:"entities"`
	Session  SessionConfig  `yaml:"session"`
}

var World WorldConfig
var Player PlayerConfig
var Entities EntitiesConfig
var Session SessionConfig

func init() {
	Defaults()
}

// Defaults resets every section to the built-in values.
func Defaults() {
	World = WorldConfig{
		TileSize:     32,
		ScreenWidth:  640,
		ScreenHeight: 416,
		HUDHeight:    64,

		ViewH: 10,
		ViewV: 8,

		SampleStride:  8,
		ProtectOrigin: 320,

		ScreenMarginMin: -8,
		ScreenMarginMax: 648,
	}

	Player = PlayerConfig{
		Width:  28,
		Height: 32,

		MaxSpeed:        4,
		Acceleration:    0.25,
		AirDecelDivisor: 3,
		JumpSpeed:       -10,
		JumpRelease:     0.5,
		Gravity:         0.3,

		PounceMargin:  16,
		BounceHigh:    -10,
		BounceLow:     -4,
		RunFrameEvery: 6,

		SpawnColumn: 2,
	}

	Entities = EntitiesConfig{
		Surface: SurfaceConfig{
			DefaultTraction: 0.5,
			IceTraction:     0.1,
		},
		ThinIce: ThinIceConfig{
			CrackLimit:     40,
			MeltFrames:     100,
			DecayEvery:     20,
			CracksPerStage: 10,
		},
		Snake: PatrolConfig{
			Width:     16,
			StepEvery: 10,
			Speed:     2,
			Score:     50,
		},
		Ptero: FlyerConfig{
			Interval:     80,
			Acceleration: -0.125,
			StopBelow:    0.05,
			FlapEvery:    10,
			Score:        100,
		},
		Frog: HopperConfig{
			JumpEvery:  50,
			LaunchSpd:  10,
			Gravity:    0.3,
			AimOffsetX: 16,
			AimOffsetY: 16,
			Score:      100,
		},
		Spawners: SpawnerConfig{
			PlantEvery: 150,

			SpitMinRange:  64,
			SpitMaxRange:  272,
			SpitShakeMax:  5,
			SpitShakeStep: 2,
			SpitFireDelay: 5,
			SpitEvery:     40,
			SpitSpeed:     10,
			SpitAimX:      16,
			SpitAimY:      16,

			YetiRange: 272,
			YetiEvery: 100,
			YetiSpeed: 8,

			ProjectileSize:    16,
			ProjectileGravity: 0.3,
		},
		Mammoth: BigWalkerConfig{
			Width:     64,
			Height:    44,
			OffsetY:   18,
			Speed:     1,
			StepEvery: 10,
			Score:     50,
		},
		Pickups: PickupConfig{
			GemSize:       16,
			GemScore:      100,
			GemBlinkEvery: 10,
			SquishFrames:  10,
			WaveEvery:     40,
		},
	}

	Session = SessionConfig{
		StartingLives: 3,
		IntroFrames:   160,
		DeathFrames:   200,
	}
}
