package components

import (
	"ebiten-calendar/ecs"
)

// Define component IDs for the calendar scene
const (
	Transform ecs.ComponentID = iota
	Camera
	Tilemap // Tile grid storage and geometry, one per layer
	Tile    // A single cell of a tilemap
	Name    // Display name shown by the inspector
	Player
	InputMap    // Key bindings for player actions
	ActionState // Per-frame action state derived from InputMap
)
