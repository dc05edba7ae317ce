package systems

import (
	"ebiten-calendar/ecs"
	"ebiten-calendar/input"
)

// Event type constants
const (
	EventCameraUpdate  ecs.EventType = "camera_update"
	EventTilemapReady  ecs.EventType = "tilemap_ready"
	EventActionPressed ecs.EventType = "action_pressed"
)

// CameraUpdateEvent is emitted when the camera's scale changes
type CameraUpdateEvent struct {
	CameraID ecs.EntityID
	Scale    float64
	Settled  bool // true once a zoom animation has finished
}

// Type returns the event type
func (e CameraUpdateEvent) Type() ecs.EventType {
	return EventCameraUpdate
}

// TilemapReadyEvent is emitted once a tilemap and all of its tiles exist
type TilemapReadyEvent struct {
	TilemapID ecs.EntityID
	Tiles     int
}

// Type returns the event type
func (e TilemapReadyEvent) Type() ecs.EventType {
	return EventTilemapReady
}

// ActionPressedEvent is emitted when an action goes down on an entity
type ActionPressedEvent struct {
	EntityID ecs.EntityID
	Action   input.Action
}

// Type returns the event type
func (e ActionPressedEvent) Type() ecs.EventType {
	return EventActionPressed
}
