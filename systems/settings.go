package systems

import (
	"github.com/automoto/dino/components"
	cfg "github.com/automoto/dino/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateSettings returns the singleton Settings component, seeded from
// the start-up flags and the saved volumes.
func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Settings))
		components.Settings.SetValue(entry, components.SettingsData{
			Debug:       cfg.Debug.Overlay,
			MusicVolume: GetMusicVolume(),
			SFXVolume:   GetSFXVolume(),
			Fullscreen:  ebiten.IsFullscreen(),
		})
	}
	return components.Settings.Get(entry)
}

// CycleMusicVolume steps the music volume and saves it.
func CycleMusicVolume() float64 {
	v := cfg.NextVolume(GetMusicVolume())
	SetMusicVolume(v)
	SaveCurrentSettings()
	return v
}

// CycleSFXVolume steps the effects volume and saves it.
func CycleSFXVolume() float64 {
	v := cfg.NextVolume(GetSFXVolume())
	SetSFXVolume(v)
	SaveCurrentSettings()
	return v
}

// ToggleFullscreen flips the window mode and saves it.
func ToggleFullscreen() bool {
	on := !ebiten.IsFullscreen()
	ebiten.SetFullscreen(on)
	SaveCurrentSettings()
	return on
}
