package components

import "github.com/yohamta/donburi"

// CameraData offsets the world layer. The sim owns the actual view
// position; this only adds screen shake on top.
type CameraData struct {
	ShakeIntensity float64 // max offset in pixels
	ShakeFrames    int     // frames remaining
	Elapsed        int     // frames elapsed (for oscillation)
	OffsetX        float64
	OffsetY        float64
}

var Camera = donburi.NewComponentType[CameraData]()
