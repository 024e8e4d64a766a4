package components

import "github.com/yohamta/donburi"

// SettingsData stores the runtime switches and volumes.
type SettingsData struct {
	Debug       bool
	MusicVolume float64
	SFXVolume   float64
	Fullscreen  bool
}

var Settings = donburi.NewComponentType[SettingsData]()
