package input

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
)

type fakeKeys map[ebiten.Key]bool

func (f fakeKeys) IsKeyPressed(k ebiten.Key) bool { return f[k] }

func TestActionsClosedSet(t *testing.T) {
	assert.Equal(t, []Action{MoveUp, MoveDown, MoveLeft, MoveRight}, Actions())
	names := make([]string, 0, 4)
	for _, a := range Actions() {
		names = append(names, a.String())
	}
	assert.Equal(t, []string{"MoveUp", "MoveDown", "MoveLeft", "MoveRight"}, names)
	assert.Equal(t, "Action(?)", actionCount.String())
}

func TestDefaultInputMap(t *testing.T) {
	m := DefaultInputMap()
	assert.ElementsMatch(t, []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}, m.Keys(MoveUp))
	assert.ElementsMatch(t, []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}, m.Keys(MoveRight))
}

func TestInsertIgnoresDuplicates(t *testing.T) {
	m := NewInputMap().Insert(MoveLeft, ebiten.KeyA, ebiten.KeyA)
	assert.Len(t, m.Keys(MoveLeft), 1)
	m.Clear(MoveLeft)
	assert.Empty(t, m.Keys(MoveLeft))
}

func TestActionStateTransitions(t *testing.T) {
	m := DefaultInputMap()
	s := NewActionState()
	keys := fakeKeys{}

	steps := []struct {
		name                               string
		held                               bool
		pressed, justPressed, justReleased bool
	}{
		{"idle", false, false, false, false},
		{"press", true, true, true, false},
		{"hold", true, true, false, false},
		{"release", false, false, false, true},
		{"idle again", false, false, false, false},
	}
	for _, st := range steps {
		keys[ebiten.KeyW] = st.held
		s.Update(m, keys)
		assert.Equal(t, st.pressed, s.Pressed(MoveUp), st.name)
		assert.Equal(t, st.justPressed, s.JustPressed(MoveUp), st.name)
		assert.Equal(t, st.justReleased, s.JustReleased(MoveUp), st.name)
		assert.False(t, s.Pressed(MoveDown), st.name)
	}
}

func TestAnyBoundKeyPresses(t *testing.T) {
	m := DefaultInputMap()
	s := NewActionState()
	s.Update(m, fakeKeys{ebiten.KeyArrowLeft: true})
	assert.True(t, s.Pressed(MoveLeft))
	assert.False(t, s.Pressed(actionCount))
}
