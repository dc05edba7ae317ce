package systems

import (
	"ebiten-calendar/components"
	"ebiten-calendar/ecs"
	"ebiten-calendar/input"
)

// InputSystem refreshes the ActionState of every entity that carries an
// InputMap. Entities without an ActionState get one on first sight.
type InputSystem struct {
	keys input.KeySource
}

// NewInputSystem creates an input system reading from keys
func NewInputSystem(keys input.KeySource) *InputSystem {
	return &InputSystem{keys: keys}
}

// Update implements ecs.System
func (s *InputSystem) Update(world *ecs.World, dt float64) {
	for _, e := range world.GetEntitiesWithComponent(components.InputMap) {
		bindings, ok := ecs.Get[*components.InputMapComponent](world, e.ID, components.InputMap)
		if !ok || bindings.Map == nil {
			continue
		}

		stateComp, ok := ecs.Get[*components.ActionStateComponent](world, e.ID, components.ActionState)
		if !ok {
			stateComp = &components.ActionStateComponent{State: input.NewActionState()}
			world.AddComponent(e.ID, components.ActionState, stateComp)
		}

		stateComp.State.Update(bindings.Map, s.keys)
		for _, a := range input.Actions() {
			if stateComp.State.JustPressed(a) {
				world.EmitEvent(ActionPressedEvent{EntityID: e.ID, Action: a})
			}
		}
	}
}
