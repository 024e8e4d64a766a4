package components

import "github.com/yohamta/donburi"

// Raindrop is one streak of rain in screen space.
type Raindrop struct {
	X, Y  float32
	Speed float32
}

// WeatherData holds the rain layer for levels with weather.
type WeatherData struct {
	Raining bool
	Drops   []Raindrop
	Frame   int // alternates every few frames like a two-image loop
}

var Weather = donburi.NewComponentType[WeatherData]()
