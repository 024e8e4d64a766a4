package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	// Player sounds
	SoundJump
	SoundGem
	SoundExtraLife
	SoundStomp
	SoundDeath
	// World sounds
	SoundSpore
	SoundSnowball
	SoundCrack
	SoundThunder
	// UI sounds
	SoundMenuNavigate
	SoundMenuSelect
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate        int
	DefaultMusicVol   float64
	DefaultSFXVol     float64
	MusicFadeDuration int // frames for music fade out (60 = 1 second at 60fps)
}

// SoundConfig maps sound IDs and music tracks to embedded files
type SoundConfig struct {
	MenuTrack         int
	DeathMusic        string
	Tracks            []string // indexed by the level header track digit
	SFXPaths          map[SoundID]string
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:        44100,
		DefaultMusicVol:   0.5,
		DefaultSFXVol:     0.75,
		MusicFadeDuration: 60,
	}

	Sound = SoundConfig{
		MenuTrack:  0,
		DeathMusic: "audio/music/death.wav",
		Tracks: []string{
			"audio/music/journey.wav",
			"audio/music/march.wav",
		},
		SFXPaths: map[SoundID]string{
			SoundJump:         "audio/sfx/jump.wav",
			SoundGem:          "audio/sfx/gem.wav",
			SoundExtraLife:    "audio/sfx/life.wav",
			SoundStomp:        "audio/sfx/stomp.wav",
			SoundDeath:        "audio/sfx/death.wav",
			SoundSpore:        "audio/sfx/spore.wav",
			SoundSnowball:     "audio/sfx/snowball.wav",
			SoundCrack:        "audio/sfx/crack.wav",
			SoundThunder:      "audio/sfx/thunder.wav",
			SoundMenuNavigate: "audio/sfx/menu_navigate.wav",
			SoundMenuSelect:   "audio/sfx/menu_select.wav",
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundSpore:    0.5,
			SoundSnowball: 0.5,
			SoundCrack:    0.4,
			SoundThunder:  1.5,
		},
	}
}

// TrackPath returns the music file for a level track, wrapping unknown
// indices onto the available tracks.
func TrackPath(track int) string {
	n := len(Sound.Tracks)
	if n == 0 {
		return ""
	}
	return Sound.Tracks[((track%n)+n)%n]
}
