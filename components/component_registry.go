package components

import (
	"ebiten-calendar/ecs"
	"strings"
)

// componentNameMap maps string component names to their IDs
var componentNameMap = map[string]ecs.ComponentID{
	"Transform":   Transform,
	"Camera":      Camera,
	"Tilemap":     Tilemap,
	"Tile":        Tile,
	"Name":        Name,
	"Player":      Player,
	"InputMap":    InputMap,
	"ActionState": ActionState,
}

// GetComponentIDByName returns the ComponentID for a given component name string
// The lookup is case-insensitive
func GetComponentIDByName(name string) (ecs.ComponentID, bool) {
	// Try exact match first
	if id, exists := componentNameMap[name]; exists {
		return id, true
	}

	for compName, id := range componentNameMap {
		if strings.EqualFold(compName, name) {
			return id, true
		}
	}

	return 0, false
}

// ComponentName returns the registered name for a component ID.
func ComponentName(id ecs.ComponentID) string {
	for name, cid := range componentNameMap {
		if cid == id {
			return name
		}
	}
	return "Unknown"
}
