package systems

import (
	"github.com/rs/zerolog"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"ebiten-calendar/components"
	"ebiten-calendar/config"
	"ebiten-calendar/ecs"
)

// CameraSystem animates the camera scale and converts between world and
// screen coordinates. The camera centres its transform position on the
// middle of the screen; world Y grows upward, screen Y downward.
type CameraSystem struct {
	logger       zerolog.Logger
	screenWidth  float64
	screenHeight float64
	zoom         *gween.Tween
}

// NewCameraSystem creates a new camera system
func NewCameraSystem(logger zerolog.Logger) *CameraSystem {
	w, h := config.GetScreenDimensions()
	return &CameraSystem{
		logger:       logger.With().Str("system", "camera").Logger(),
		screenWidth:  float64(w),
		screenHeight: float64(h),
	}
}

// SetScreenSize updates the logical screen size used for projection
func (s *CameraSystem) SetScreenSize(width, height int) {
	s.screenWidth = float64(width)
	s.screenHeight = float64(height)
}

// ZoomTo eases the camera scale from its current value to target over the
// given number of seconds. A non-positive duration snaps immediately on
// the next Update.
func (s *CameraSystem) ZoomTo(world *ecs.World, target, seconds float64) {
	_, transform, ok := ActiveCamera(world)
	if !ok {
		return
	}
	if seconds <= 0 {
		transform.ScaleX, transform.ScaleY = target, target
		s.zoom = nil
		return
	}
	s.zoom = gween.New(float32(transform.ScaleX), float32(target), float32(seconds), ease.OutCubic)
}

// Zooming reports whether a zoom animation is in progress
func (s *CameraSystem) Zooming() bool {
	return s.zoom != nil
}

// Update advances any running zoom animation
func (s *CameraSystem) Update(world *ecs.World, dt float64) {
	if s.zoom == nil {
		return
	}
	cameraID, transform, ok := ActiveCamera(world)
	if !ok {
		s.zoom = nil
		return
	}

	scale, finished := s.zoom.Update(float32(dt))
	transform.ScaleX, transform.ScaleY = float64(scale), float64(scale)
	if finished {
		s.zoom = nil
		s.logger.Debug().Float64("scale", transform.ScaleX).Msg("zoom settled")
	}

	world.EmitEvent(CameraUpdateEvent{
		CameraID: cameraID,
		Scale:    transform.ScaleX,
		Settled:  finished,
	})
}

// ActiveCamera returns the first camera entity and its transform
func ActiveCamera(world *ecs.World) (ecs.EntityID, *components.TransformComponent, bool) {
	for _, e := range world.GetEntitiesWithTag("camera") {
		if !world.HasComponent(e.ID, components.Camera) {
			continue
		}
		if t, ok := ecs.Get[*components.TransformComponent](world, e.ID, components.Transform); ok {
			return e.ID, t, true
		}
	}
	return 0, nil, false
}

// Zoom returns the screen pixels per world unit. Without a camera the
// world is drawn 1:1.
func (s *CameraSystem) Zoom(world *ecs.World) float64 {
	_, t, ok := ActiveCamera(world)
	if !ok || t.ScaleX <= 0 {
		return 1
	}
	return 1 / t.ScaleX
}

// WorldToScreen converts world coordinates to screen coordinates
func (s *CameraSystem) WorldToScreen(world *ecs.World, worldX, worldY float64) (screenX, screenY float64) {
	camX, camY := 0.0, 0.0
	if _, t, ok := ActiveCamera(world); ok {
		camX, camY = t.X, t.Y
	}
	zoom := s.Zoom(world)
	screenX = (worldX-camX)*zoom + s.screenWidth/2
	screenY = s.screenHeight/2 - (worldY-camY)*zoom
	return screenX, screenY
}

// ScreenToWorld converts screen coordinates to world coordinates
func (s *CameraSystem) ScreenToWorld(world *ecs.World, screenX, screenY float64) (worldX, worldY float64) {
	camX, camY := 0.0, 0.0
	if _, t, ok := ActiveCamera(world); ok {
		camX, camY = t.X, t.Y
	}
	zoom := s.Zoom(world)
	worldX = (screenX-s.screenWidth/2)/zoom + camX
	worldY = (s.screenHeight/2-screenY)/zoom + camY
	return worldX, worldY
}
