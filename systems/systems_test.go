package systems

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ebiten-calendar/components"
	"ebiten-calendar/ecs"
	"ebiten-calendar/generation"
	"ebiten-calendar/input"
	"ebiten-calendar/spawners"
	"ebiten-calendar/tilemap"
)

type fakeKeys map[ebiten.Key]bool

func (f fakeKeys) IsKeyPressed(k ebiten.Key) bool { return f[k] }

func newCameraWorld(t *testing.T, scale float64) (*ecs.World, *CameraSystem) {
	t.Helper()
	world := ecs.NewWorld()
	spawners.NewEntitySpawner(world, zerolog.Nop()).CreateCamera(scale)
	cam := NewCameraSystem(zerolog.Nop())
	cam.SetScreenSize(800, 600)
	return world, cam
}

func TestCameraZoomFromScale(t *testing.T) {
	world, cam := newCameraWorld(t, 0.5)
	assert.InDelta(t, 2.0, cam.Zoom(world), 1e-9)

	empty := NewCameraSystem(zerolog.Nop())
	assert.InDelta(t, 1.0, empty.Zoom(ecs.NewWorld()), 1e-9)
}

func TestWorldToScreenFlipsY(t *testing.T) {
	world, cam := newCameraWorld(t, 1)

	x, y := cam.WorldToScreen(world, 0, 0)
	assert.InDelta(t, 400, x, 1e-9)
	assert.InDelta(t, 300, y, 1e-9)

	// Up in the world is up on screen.
	_, y = cam.WorldToScreen(world, 0, 10)
	assert.InDelta(t, 290, y, 1e-9)
}

func TestScreenWorldRoundTrip(t *testing.T) {
	world, cam := newCameraWorld(t, 0.3)
	_, tr, ok := ActiveCamera(world)
	require.True(t, ok)
	tr.X, tr.Y = 12, -7

	points := [][2]float64{{0, 0}, {-120, 96}, {33.5, -2.25}}
	for _, p := range points {
		t.Run(fmt.Sprint(p), func(t *testing.T) {
			sx, sy := cam.WorldToScreen(world, p[0], p[1])
			wx, wy := cam.ScreenToWorld(world, sx, sy)
			assert.InDelta(t, p[0], wx, 1e-9)
			assert.InDelta(t, p[1], wy, 1e-9)
		})
	}
}

func TestZoomToEasesAndSettles(t *testing.T) {
	world, cam := newCameraWorld(t, 1)
	var events []CameraUpdateEvent
	world.GetEventManager().Subscribe(EventCameraUpdate, func(e ecs.Event) {
		events = append(events, e.(CameraUpdateEvent))
	})

	cam.ZoomTo(world, 0.3, 1)
	require.True(t, cam.Zooming())

	cam.Update(world, 0.5)
	_, tr, _ := ActiveCamera(world)
	assert.Less(t, tr.ScaleX, 1.0)
	assert.Greater(t, tr.ScaleX, 0.3)

	cam.Update(world, 0.6)
	assert.False(t, cam.Zooming())
	assert.InDelta(t, 0.3, tr.ScaleX, 1e-6)

	require.Len(t, events, 2)
	assert.False(t, events[0].Settled)
	assert.True(t, events[1].Settled)
}

func TestZoomToWithoutDurationSnaps(t *testing.T) {
	world, cam := newCameraWorld(t, 1)
	cam.ZoomTo(world, 0.25, 0)
	assert.False(t, cam.Zooming())
	_, tr, _ := ActiveCamera(world)
	assert.InDelta(t, 0.25, tr.ScaleX, 1e-9)
}

func TestInputSystemUpdatesActionState(t *testing.T) {
	world := ecs.NewWorld()
	player := spawners.NewEntitySpawner(world, zerolog.Nop()).CreatePlayer(0, 0)
	keys := fakeKeys{}
	sys := NewInputSystem(keys)

	var pressed []input.Action
	world.GetEventManager().Subscribe(EventActionPressed, func(e ecs.Event) {
		pressed = append(pressed, e.(ActionPressedEvent).Action)
	})

	keys[ebiten.KeyD] = true
	sys.Update(world, 1.0/60.0)
	sys.Update(world, 1.0/60.0)

	state, ok := ecs.Get[*components.ActionStateComponent](world, player.ID, components.ActionState)
	require.True(t, ok)
	assert.True(t, state.State.Pressed(input.MoveRight))
	assert.Equal(t, []input.Action{input.MoveRight}, pressed)
}

func TestInputSystemAddsMissingActionState(t *testing.T) {
	world := ecs.NewWorld()
	e := world.CreateEntity()
	world.AddComponent(e.ID, components.InputMap, &components.InputMapComponent{Map: input.DefaultInputMap()})

	NewInputSystem(fakeKeys{}).Update(world, 0)
	assert.True(t, world.HasComponent(e.ID, components.ActionState))
}

func TestMovementReadsIntent(t *testing.T) {
	world := ecs.NewWorld()
	spawners.NewEntitySpawner(world, zerolog.Nop()).CreatePlayer(0, 0)
	keys := fakeKeys{}
	in := NewInputSystem(keys)
	mv := NewMovementSystem()

	_, ok := mv.ReadIntent(world)
	assert.False(t, ok)

	keys[ebiten.KeyArrowLeft] = true
	keys[ebiten.KeyArrowDown] = true
	in.Update(world, 0)
	action, ok := mv.ReadIntent(world)
	require.True(t, ok)
	assert.Equal(t, input.MoveDown, action, "down wins over left")

	// The reader never mutates the world.
	before := world.EntityCount()
	mv.Update(world, 0)
	assert.Equal(t, before, world.EntityCount())
}

func TestMovementWithoutPlayer(t *testing.T) {
	_, ok := NewMovementSystem().ReadIntent(ecs.NewWorld())
	assert.False(t, ok)
}

func TestMessageLogAsLogSink(t *testing.T) {
	ml := NewMessageLog(3)
	logger := zerolog.New(ml)
	for i := 0; i < 5; i++ {
		logger.Info().Int("n", i).Msg("tick")
	}

	msgs := ml.Snapshot()
	require.Len(t, msgs, 3)
	assert.Contains(t, msgs[0], `"n":2`)
	assert.Contains(t, ml.RecentMessages(1)[0], `"n":4`)

	ml.Clear()
	assert.Empty(t, ml.Snapshot())
}

func TestMessageLogSplitsLines(t *testing.T) {
	ml := NewMessageLog(10)
	n, err := ml.Write([]byte("one\r\ntwo\n\nthree"))
	require.NoError(t, err)
	assert.Equal(t, len("one\r\ntwo\n\nthree"), n)
	assert.Equal(t, []string{"one", "two", "three"}, ml.Snapshot())
}

func TestTileScreenPositionCentresCalendar(t *testing.T) {
	world, cam := newCameraWorld(t, 1)
	tm := spawners.NewEntitySpawner(world, zerolog.Nop()).
		CreateCalendarTilemap(generation.NewCalendarGenerator().Generate(), "calendar.png", tilemap.TileSize{X: 16, Y: 16})
	rs := NewRenderSystem(cam, zerolog.Nop())

	lx, ly := rs.TileScreenPosition(world, tm.ID, tilemap.NewPos(0, 0))
	hx, hy := rs.TileScreenPosition(world, tm.ID, tilemap.NewPos(generation.GridWidth-1, generation.GridHeight-1))
	assert.InDelta(t, 400, (lx+hx)/2, 1e-9)
	assert.InDelta(t, 300, (ly+hy)/2, 1e-9)

	// The header row sits above the body on screen.
	_, headerY := rs.TileScreenPosition(world, tm.ID, tilemap.NewPos(0, generation.HeaderRow))
	_, bodyY := rs.TileScreenPosition(world, tm.ID, generation.BodyOrigin)
	assert.Less(t, headerY, bodyY)
}

func TestReportMissingLogsOnce(t *testing.T) {
	var buf bytes.Buffer
	cam := NewCameraSystem(zerolog.Nop())
	rs := NewRenderSystem(cam, zerolog.New(&buf))

	rs.reportMissing("calendar.png", 42, "texture index outside atlas")
	rs.reportMissing("calendar.png", 42, "texture index outside atlas")
	assert.Equal(t, 1, bytes.Count(buf.Bytes(), []byte("\n")))
}

func TestParseColoredMessage(t *testing.T) {
	cases := []struct {
		line  string
		level zerolog.Level
	}{
		{"3:04PM INF calendar tilemap spawned tiles=208", zerolog.InfoLevel},
		{"3:04PM WRN texture index outside atlas index=42", zerolog.WarnLevel},
		{"3:04PM DBG zoom settled scale=0.3", zerolog.DebugLevel},
		{"3:04PM ERR load failed", zerolog.ErrorLevel},
		{"plain line", zerolog.InfoLevel},
		// The first marker wins, later text may mention other levels.
		{"3:04PM DBG saw ERR in payload", zerolog.DebugLevel},
	}
	for _, c := range cases {
		t.Run(c.line, func(t *testing.T) {
			msg := ParseColoredMessage(c.line)
			assert.Equal(t, c.level, msg.Level)
			assert.Equal(t, c.line, msg.Text)
		})
	}

	assert.NotEqual(t,
		ParseColoredMessage("x WRN y").GetColor(),
		ParseColoredMessage("x INF y").GetColor())
}
