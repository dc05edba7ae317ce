package systems

import (
	"ebiten-calendar/components"
	"ebiten-calendar/ecs"
	"ebiten-calendar/input"
)

// MovementSystem reads the player's actions. Nothing moves yet and the
// game does not register it.
type MovementSystem struct{}

// NewMovementSystem creates a new movement system
func NewMovementSystem() *MovementSystem {
	return &MovementSystem{}
}

// Update implements ecs.System
func (s *MovementSystem) Update(world *ecs.World, dt float64) {
	action, ok := s.ReadIntent(world)
	if !ok {
		return
	}
	switch action {
	case input.MoveUp:
	case input.MoveDown:
	case input.MoveLeft:
	case input.MoveRight:
	}
}

// ReadIntent returns the first held move action of the player, checked in
// up, down, left, right order.
func (s *MovementSystem) ReadIntent(world *ecs.World) (input.Action, bool) {
	players := world.GetEntitiesWithTag("player")
	if len(players) == 0 {
		return 0, false
	}
	player := players[0]
	if _, ok := ecs.Get[*components.TransformComponent](world, player.ID, components.Transform); !ok {
		return 0, false
	}
	stateComp, ok := ecs.Get[*components.ActionStateComponent](world, player.ID, components.ActionState)
	if !ok {
		return 0, false
	}

	state := stateComp.State
	switch {
	case state.Pressed(input.MoveUp):
		return input.MoveUp, true
	case state.Pressed(input.MoveDown):
		return input.MoveDown, true
	case state.Pressed(input.MoveLeft):
		return input.MoveLeft, true
	case state.Pressed(input.MoveRight):
		return input.MoveRight, true
	}
	return 0, false
}
