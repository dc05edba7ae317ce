package ecs

// EntityID is a unique identifier for an entity.
// Zero is never handed out and means "no entity".
type EntityID uint64

// Entity represents a game object in the ECS architecture
type Entity struct {
	ID EntityID
	// Tags can be used for quick identification (e.g., "camera", "tilemap")
	Tags map[string]bool
}

// newEntity creates an entity with the given ID
func newEntity(id EntityID) *Entity {
	return &Entity{
		ID:   id,
		Tags: make(map[string]bool),
	}
}

// AddTag adds a tag to the entity. Use World.TagEntity to keep the
// world's tag lookup in sync.
func (e *Entity) AddTag(tag string) {
	e.Tags[tag] = true
}

// HasTag checks if the entity has a specific tag
func (e *Entity) HasTag(tag string) bool {
	return e.Tags[tag]
}

// RemoveTag removes a tag from the entity
func (e *Entity) RemoveTag(tag string) {
	delete(e.Tags, tag)
}
