package ecs

// ComponentID is a unique identifier for component types
type ComponentID uint

// Component is the base interface for all components
type Component interface{}

// ComponentMap stores components by their type ID
type ComponentMap map[ComponentID]Component

// Get looks up a component and asserts it to T. The second result is false
// when the entity lacks the component or holds a value of another type.
func Get[T any](w *World, entityID EntityID, componentID ComponentID) (T, bool) {
	var zero T
	comp, exists := w.GetComponent(entityID, componentID)
	if !exists {
		return zero, false
	}
	typed, ok := comp.(T)
	if !ok {
		return zero, false
	}
	return typed, true
}
