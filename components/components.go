package components

import (
	"image/color"

	"ebiten-calendar/input"
)

// TransformComponent places an entity in world space. Y grows upward.
type TransformComponent struct {
	X, Y, Z        float64
	ScaleX, ScaleY float64
}

// NewTransform creates a transform at the given position with unit scale.
func NewTransform(x, y, z float64) *TransformComponent {
	return &TransformComponent{X: x, Y: y, Z: z, ScaleX: 1, ScaleY: 1}
}

// CameraComponent marks the entity the scene is viewed through. The
// camera's transform scale sets how much world fits on screen: 0.5 shows
// half as much, so everything appears twice as large.
type CameraComponent struct {
	ClearColor color.Color
}

// NewCameraComponent creates a camera that clears to black.
func NewCameraComponent() *CameraComponent {
	return &CameraComponent{ClearColor: color.RGBA{0, 0, 0, 255}}
}

// NameComponent stores the display name for entities
type NameComponent struct {
	Name string
}

// NewNameComponent creates a new name component
func NewNameComponent(name string) *NameComponent {
	return &NameComponent{Name: name}
}

// PlayerComponent indicates that an entity is controlled by the player
type PlayerComponent struct{}

// InputMapComponent binds keys to actions for one entity.
type InputMapComponent struct {
	Map *input.InputMap
}

// ActionStateComponent holds the action state the input system derives
// from the entity's InputMapComponent.
type ActionStateComponent struct {
	State *input.ActionState
}
