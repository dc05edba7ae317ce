// Package input maps physical keys to abstract player actions. Systems read
// an ActionState instead of polling the keyboard, so bindings can change
// without touching gameplay code.
package input

import (
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
)

// Action is something the player can do.
type Action uint8

const (
	MoveUp Action = iota
	MoveDown
	MoveLeft
	MoveRight
	actionCount
)

// Actions returns every action in declaration order.
func Actions() []Action {
	out := make([]Action, 0, actionCount)
	for a := Action(0); a < actionCount; a++ {
		out = append(out, a)
	}
	return out
}

func (a Action) String() string {
	switch a {
	case MoveUp:
		return "MoveUp"
	case MoveDown:
		return "MoveDown"
	case MoveLeft:
		return "MoveLeft"
	case MoveRight:
		return "MoveRight"
	default:
		return "Action(?)"
	}
}

// InputMap binds each action to zero or more keys.
type InputMap struct {
	bindings map[Action][]ebiten.Key
}

// NewInputMap creates an empty map.
func NewInputMap() *InputMap {
	return &InputMap{bindings: make(map[Action][]ebiten.Key)}
}

// DefaultInputMap binds the arrow keys and WASD to the move actions.
func DefaultInputMap() *InputMap {
	m := NewInputMap()
	m.Insert(MoveUp, ebiten.KeyArrowUp, ebiten.KeyW)
	m.Insert(MoveDown, ebiten.KeyArrowDown, ebiten.KeyS)
	m.Insert(MoveLeft, ebiten.KeyArrowLeft, ebiten.KeyA)
	m.Insert(MoveRight, ebiten.KeyArrowRight, ebiten.KeyD)
	return m
}

// Insert adds key bindings for an action. Duplicate keys are ignored.
func (m *InputMap) Insert(action Action, keys ...ebiten.Key) *InputMap {
	for _, k := range keys {
		if !containsKey(m.bindings[action], k) {
			m.bindings[action] = append(m.bindings[action], k)
		}
	}
	return m
}

// Clear removes every binding for an action.
func (m *InputMap) Clear(action Action) {
	delete(m.bindings, action)
}

// Keys returns the keys bound to an action, sorted.
func (m *InputMap) Keys(action Action) []ebiten.Key {
	keys := append([]ebiten.Key(nil), m.bindings[action]...)
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

func containsKey(keys []ebiten.Key, k ebiten.Key) bool {
	for _, existing := range keys {
		if existing == k {
			return true
		}
	}
	return false
}
