package input

import "github.com/hajimehoshi/ebiten/v2"

// KeySource reports whether a key is currently held.
type KeySource interface {
	IsKeyPressed(key ebiten.Key) bool
}

// EbitenKeys reads the live keyboard through ebiten.
type EbitenKeys struct{}

// IsKeyPressed implements KeySource.
func (EbitenKeys) IsKeyPressed(key ebiten.Key) bool {
	return ebiten.IsKeyPressed(key)
}

type buttonState struct {
	pressed      bool
	justPressed  bool
	justReleased bool
}

// ActionState holds the per-frame state of every action.
type ActionState struct {
	buttons [actionCount]buttonState
}

// NewActionState creates a state with every action released.
func NewActionState() *ActionState {
	return &ActionState{}
}

// Update refreshes every action from the bound keys. An action is pressed
// while any of its keys is held.
func (s *ActionState) Update(m *InputMap, keys KeySource) {
	for _, a := range Actions() {
		held := false
		for _, k := range m.bindings[a] {
			if keys.IsKeyPressed(k) {
				held = true
				break
			}
		}
		s.set(a, held)
	}
}

func (s *ActionState) set(a Action, held bool) {
	b := &s.buttons[a]
	b.justPressed = held && !b.pressed
	b.justReleased = !held && b.pressed
	b.pressed = held
}

// Pressed reports whether the action is held this frame.
func (s *ActionState) Pressed(a Action) bool {
	return a < actionCount && s.buttons[a].pressed
}

// JustPressed reports whether the action went down this frame.
func (s *ActionState) JustPressed(a Action) bool {
	return a < actionCount && s.buttons[a].justPressed
}

// JustReleased reports whether the action went up this frame.
func (s *ActionState) JustReleased(a Action) bool {
	return a < actionCount && s.buttons[a].justReleased
}
