package systems

import (
	"math"

	"github.com/automoto/bounce/components"
	"github.com/automoto/bounce/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera follows the ball horizontally and keeps the view inside the
// world.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	updateScreenShake(cameraEntry, camera)

	targetX, targetY, ok := cameraTarget(e)
	if !ok {
		return
	}

	camera.Position.X += (targetX - camera.Position.X) * config.Camera.FollowSmoothing
	camera.Position.Y = targetY
}

// SnapCamera moves the camera straight onto its target, used when a level
// attempt begins.
func SnapCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	targetX, targetY, ok := cameraTarget(e)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	camera.Position.X = targetX
	camera.Position.Y = targetY
}

func cameraTarget(e *ecs.ECS) (x, y float64, ok bool) {
	data, ok := GetSession(e)
	if !ok {
		return 0, 0, false
	}
	bounds := data.Session.Bounds()
	screenWidth := float64(config.C.Width)
	screenHeight := float64(config.C.Height)
	x = CameraX(data.Session.Avatar().Position.X, bounds.Width, screenWidth)
	y = math.Min(screenHeight, bounds.Height) / 2
	return x, y, true
}

// CameraX clamps a follow target so the view never shows past either end of
// a world of the given width. Worlds narrower than the screen are centred.
func CameraX(targetX, worldWidth, screenWidth float64) float64 {
	if worldWidth <= screenWidth {
		return worldWidth / 2
	}
	return math.Max(screenWidth/2, math.Min(worldWidth-screenWidth/2, targetX))
}

// updateScreenShake computes the shake offset for this frame and decrements duration
func updateScreenShake(cameraEntry *donburi.Entry, camera *components.CameraData) {
	camera.Shake.X, camera.Shake.Y = 0, 0
	if !cameraEntry.HasComponent(components.ScreenShake) {
		return
	}

	shake := components.ScreenShake.Get(cameraEntry)
	shake.Elapsed++

	// Calculate decaying intensity
	progress := float64(shake.Duration-shake.Elapsed) / float64(shake.Duration)
	if progress < 0 {
		progress = 0
	}
	currentIntensity := shake.Intensity * progress

	// Apply oscillating offset using sine/cosine for smooth shake
	camera.Shake.X = math.Sin(float64(shake.Elapsed)*1.1) * currentIntensity
	camera.Shake.Y = math.Cos(float64(shake.Elapsed)*1.3) * currentIntensity

	// Remove component when shake is complete
	if shake.Elapsed >= shake.Duration {
		cameraEntry.RemoveComponent(components.ScreenShake)
	}
}

// TriggerScreenShake starts a screen shake effect
func TriggerScreenShake(ecs *ecs.ECS, intensity float64, duration int) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}

	if cameraEntry.HasComponent(components.ScreenShake) {
		shake := components.ScreenShake.Get(cameraEntry)
		// Only override if new shake is stronger
		if intensity > shake.Intensity {
			shake.Intensity = intensity
			shake.Duration = duration
			shake.Elapsed = 0
		}
	} else {
		cameraEntry.AddComponent(components.ScreenShake)
		components.ScreenShake.Set(cameraEntry, &components.ScreenShakeData{
			Intensity: intensity,
			Duration:  duration,
		})
	}
}

// cameraOffset converts world coordinates to screen coordinates: screen = world + offset.
func cameraOffset(e *ecs.ECS, screenWidth, screenHeight int) (float64, float64) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return 0, 0
	}
	camera := components.Camera.Get(cameraEntry)
	return float64(screenWidth)/2 - camera.Position.X + camera.Shake.X,
		float64(screenHeight)/2 - camera.Position.Y + camera.Shake.Y
}
