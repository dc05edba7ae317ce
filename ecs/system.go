package ecs

// System defines an interface for processing entities with specific components
type System interface {
	// Update is called each frame to process entities
	Update(world *World, dt float64)
}

// SystemFunc adapts a plain function to the System interface.
type SystemFunc func(world *World, dt float64)

// Update calls f(world, dt).
func (f SystemFunc) Update(world *World, dt float64) {
	f(world, dt)
}

// StartupFunc builds initial world state. Startup functions run once, in
// registration order, before the first Update.
type StartupFunc func(world *World)
