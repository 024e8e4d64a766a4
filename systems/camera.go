package systems

import (
	"math"

	"github.com/automoto/dino/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera advances the screen shake. The view itself follows the
// player inside the simulation.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	updateScreenShake(components.Camera.Get(cameraEntry))
}

// updateScreenShake sets the draw offset and decrements the duration
func updateScreenShake(camera *components.CameraData) {
	if camera.ShakeFrames <= 0 {
		camera.OffsetX, camera.OffsetY = 0, 0
		return
	}
	camera.Elapsed++
	total := camera.Elapsed + camera.ShakeFrames

	// Calculate decaying intensity
	progress := float64(camera.ShakeFrames) / float64(total)
	intensity := camera.ShakeIntensity * progress

	camera.OffsetX = math.Sin(float64(camera.Elapsed)*1.1) * intensity
	camera.OffsetY = math.Cos(float64(camera.Elapsed)*1.3) * intensity

	camera.ShakeFrames--
	if camera.ShakeFrames == 0 {
		camera.ShakeIntensity = 0
	}
}

// TriggerScreenShake starts a screen shake effect
func TriggerScreenShake(e *ecs.ECS, intensity float64, duration int) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	// Only override if new shake is stronger
	if camera.ShakeFrames > 0 && intensity <= camera.ShakeIntensity {
		return
	}
	camera.ShakeIntensity = intensity
	camera.ShakeFrames = duration
	camera.Elapsed = 0
}
