package ecs

import "sort"

// World manages all entities and components
type World struct {
	entities map[EntityID]*Entity
	// Store components as map[EntityID]map[ComponentID]Component
	components map[EntityID]ComponentMap
	// Update-stage systems, run every frame in registration order
	systems []System
	// Startup-stage functions, run once
	startup    []StartupFunc
	startupRan bool
	// Tag-based entity lookup for quick access
	entityTags map[string]map[EntityID]bool
	// Parent/child links
	parents  map[EntityID]EntityID
	children map[EntityID][]EntityID
	// Event manager for system communication
	eventManager *EventManager
	lastID       EntityID
}

// NewWorld creates a new ECS world
func NewWorld() *World {
	return &World{
		entities:     make(map[EntityID]*Entity),
		components:   make(map[EntityID]ComponentMap),
		systems:      make([]System, 0),
		entityTags:   make(map[string]map[EntityID]bool),
		parents:      make(map[EntityID]EntityID),
		children:     make(map[EntityID][]EntityID),
		eventManager: NewEventManager(),
	}
}

// CreateEntity creates a new entity and adds it to the world.
// IDs are allocated per world starting at 1.
func (w *World) CreateEntity() *Entity {
	w.lastID++
	entity := newEntity(w.lastID)
	w.entities[entity.ID] = entity
	w.components[entity.ID] = make(ComponentMap)
	return entity
}

// RemoveEntity removes an entity, its components and all of its
// descendants from the world.
func (w *World) RemoveEntity(entityID EntityID) {
	entity, exists := w.entities[entityID]
	if !exists {
		return
	}

	for _, child := range w.Children(entityID) {
		w.RemoveEntity(child)
	}
	delete(w.children, entityID)

	if parent, ok := w.parents[entityID]; ok {
		w.detach(parent, entityID)
	}

	// Remove entity from tag lookups
	for tag := range entity.Tags {
		delete(w.entityTags[tag], entityID)
		if len(w.entityTags[tag]) == 0 {
			delete(w.entityTags, tag)
		}
	}

	delete(w.components, entityID)
	delete(w.entities, entityID)
}

// SetParent makes child a child of parent, detaching it from any previous
// parent. Both entities must exist.
func (w *World) SetParent(child, parent EntityID) {
	if _, ok := w.entities[child]; !ok {
		return
	}
	if _, ok := w.entities[parent]; !ok {
		return
	}
	if old, ok := w.parents[child]; ok {
		if old == parent {
			return
		}
		w.detach(old, child)
	}
	w.parents[child] = parent
	w.children[parent] = append(w.children[parent], child)
}

// Parent returns the parent of an entity, if any.
func (w *World) Parent(entityID EntityID) (EntityID, bool) {
	parent, ok := w.parents[entityID]
	return parent, ok
}

// Children returns a copy of the entity's children in insertion order.
func (w *World) Children(entityID EntityID) []EntityID {
	kids := w.children[entityID]
	out := make([]EntityID, len(kids))
	copy(out, kids)
	return out
}

func (w *World) detach(parent, child EntityID) {
	kids := w.children[parent]
	for i, id := range kids {
		if id == child {
			w.children[parent] = append(kids[:i:i], kids[i+1:]...)
			break
		}
	}
	if len(w.children[parent]) == 0 {
		delete(w.children, parent)
	}
	delete(w.parents, child)
}

// AddComponent adds a component to an entity
func (w *World) AddComponent(entityID EntityID, componentID ComponentID, component Component) {
	if _, exists := w.entities[entityID]; !exists {
		return
	}

	if _, exists := w.components[entityID]; !exists {
		w.components[entityID] = make(ComponentMap)
	}

	w.components[entityID][componentID] = component
}

// GetComponent retrieves a component from an entity
func (w *World) GetComponent(entityID EntityID, componentID ComponentID) (Component, bool) {
	if componentMap, exists := w.components[entityID]; exists {
		component, exists := componentMap[componentID]
		return component, exists
	}
	return nil, false
}

// HasComponent checks if an entity has a specific component
func (w *World) HasComponent(entityID EntityID, componentID ComponentID) bool {
	if componentMap, exists := w.components[entityID]; exists {
		_, exists := componentMap[componentID]
		return exists
	}
	return false
}

// RemoveComponent removes a component from an entity
func (w *World) RemoveComponent(entityID EntityID, componentID ComponentID) {
	if componentMap, exists := w.components[entityID]; exists {
		delete(componentMap, componentID)
	}
}

// ComponentIDs returns the IDs of all components on an entity, ascending.
func (w *World) ComponentIDs(entityID EntityID) []ComponentID {
	componentMap := w.components[entityID]
	ids := make([]ComponentID, 0, len(componentMap))
	for id := range componentMap {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// AddSystem adds an Update-stage system to the world
func (w *World) AddSystem(system System) {
	w.systems = append(w.systems, system)
}

// AddStartupSystem registers a function for the Startup stage.
func (w *World) AddStartupSystem(fn StartupFunc) {
	w.startup = append(w.startup, fn)
}

// RunStartup runs the Startup stage. Only the first call has any effect.
func (w *World) RunStartup() {
	if w.startupRan {
		return
	}
	w.startupRan = true
	for _, fn := range w.startup {
		fn(w)
	}
}

// Update runs the Startup stage if it has not run yet, then all systems.
func (w *World) Update(dt float64) {
	w.RunStartup()
	for _, system := range w.systems {
		system.Update(w, dt)
	}
}

// GetSystems returns all systems registered in the world
func (w *World) GetSystems() []System {
	return w.systems
}

// TagEntity adds a tag to an entity and updates the tag lookup
func (w *World) TagEntity(entityID EntityID, tag string) {
	entity, exists := w.entities[entityID]
	if !exists {
		return
	}

	entity.AddTag(tag)

	if _, exists := w.entityTags[tag]; !exists {
		w.entityTags[tag] = make(map[EntityID]bool)
	}

	w.entityTags[tag][entityID] = true
}

// GetEntitiesWithTag returns all entities with a specific tag, ordered by ID
func (w *World) GetEntitiesWithTag(tag string) []*Entity {
	entities := make([]*Entity, 0)

	for entityID := range w.entityTags[tag] {
		if entity, ok := w.entities[entityID]; ok {
			entities = append(entities, entity)
		}
	}

	sortByID(entities)
	return entities
}

// GetAllEntities returns a slice of all entities in the world, ordered by ID
func (w *World) GetAllEntities() []*Entity {
	entities := make([]*Entity, 0, len(w.entities))
	for _, entity := range w.entities {
		entities = append(entities, entity)
	}
	sortByID(entities)
	return entities
}

// EntityCount returns the number of live entities.
func (w *World) EntityCount() int {
	return len(w.entities)
}

// GetEventManager returns the world's event manager
func (w *World) GetEventManager() *EventManager {
	return w.eventManager
}

// EmitEvent is a convenience method to emit an event
func (w *World) EmitEvent(event Event) {
	w.eventManager.Emit(event)
}

// GetEntity returns an entity by its ID
func (w *World) GetEntity(entityID EntityID) *Entity {
	entity, exists := w.entities[entityID]
	if !exists {
		return nil
	}
	return entity
}

// GetEntitiesWithComponent returns all entities that have a specific component, ordered by ID
func (w *World) GetEntitiesWithComponent(componentID ComponentID) []*Entity {
	entities := make([]*Entity, 0)

	for id, componentMap := range w.components {
		if _, hasComponent := componentMap[componentID]; hasComponent {
			if entity, ok := w.entities[id]; ok {
				entities = append(entities, entity)
			}
		}
	}

	sortByID(entities)
	return entities
}

func sortByID(entities []*Entity) {
	sort.Slice(entities, func(i, j int) bool { return entities[i].ID < entities[j].ID })
}
