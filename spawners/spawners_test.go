package spawners

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ebiten-calendar/components"
	"ebiten-calendar/ecs"
	"ebiten-calendar/generation"
	"ebiten-calendar/tilemap"
)

var tileSize = tilemap.TileSize{X: 16, Y: 16}

func spawnCalendar(t *testing.T) (*ecs.World, *ecs.Entity) {
	t.Helper()
	world := ecs.NewWorld()
	s := NewEntitySpawner(world, zerolog.Nop())
	tm := s.CreateCalendarTilemap(generation.NewCalendarGenerator().Generate(), "calendar.png", tileSize)
	return world, tm
}

// snapshot returns texture index and tint per slot, row-major.
func snapshot(t *testing.T, world *ecs.World, tm *ecs.Entity) []components.TileComponent {
	t.Helper()
	mapComp, ok := ecs.Get[*components.TilemapComponent](world, tm.ID, components.Tilemap)
	require.True(t, ok)

	var out []components.TileComponent
	mapComp.Storage.Each(func(_ tilemap.Pos, id ecs.EntityID) bool {
		tile, ok := ecs.Get[*components.TileComponent](world, id, components.Tile)
		require.True(t, ok)
		c := *tile
		c.TilemapID = 0
		out = append(out, c)
		return true
	})
	return out
}

func TestCalendarTilemapMatchesLayout(t *testing.T) {
	world, tm := spawnCalendar(t)
	layout := generation.NewCalendarGenerator().Generate()

	mapComp, ok := ecs.Get[*components.TilemapComponent](world, tm.ID, components.Tilemap)
	require.True(t, ok)
	assert.Equal(t, layout.Size, mapComp.Size)
	assert.Equal(t, "calendar.png", mapComp.Texture)

	for _, p := range layout.Resolve() {
		id, ok := mapComp.Storage.Get(p.Pos)
		require.True(t, ok, "empty slot %+v", p.Pos)
		tile, ok := ecs.Get[*components.TileComponent](world, id, components.Tile)
		require.True(t, ok)
		assert.Equal(t, p.Pos, tile.Position)
		assert.Equal(t, p.Texture, tile.TextureIndex)
		assert.Equal(t, p.Color, tile.Color)
		assert.Equal(t, tm.ID, tile.TilemapID)
	}
}

func TestReplacedTilesAreDespawned(t *testing.T) {
	world, tm := spawnCalendar(t)

	tiles := world.GetEntitiesWithComponent(components.Tile)
	assert.Len(t, tiles, generation.GridWidth*generation.GridHeight)
	assert.Len(t, world.Children(tm.ID), generation.GridWidth*generation.GridHeight)
	// tilemap + one tile per slot
	assert.Equal(t, 1+generation.GridWidth*generation.GridHeight, world.EntityCount())

	seen := make(map[tilemap.Pos]bool)
	for _, e := range tiles {
		tile, _ := ecs.Get[*components.TileComponent](world, e.ID, components.Tile)
		assert.False(t, seen[tile.Position], "two tiles at %+v", tile.Position)
		seen[tile.Position] = true
	}
}

func TestTilemapIsCentred(t *testing.T) {
	world, tm := spawnCalendar(t)
	tr, ok := ecs.Get[*components.TransformComponent](world, tm.ID, components.Transform)
	require.True(t, ok)
	assert.InDelta(t, -120, tr.X, 1e-9)
	assert.InDelta(t, -96, tr.Y, 1e-9)
}

func TestSpawnIsDeterministic(t *testing.T) {
	worldA, tmA := spawnCalendar(t)
	worldB, tmB := spawnCalendar(t)
	assert.Equal(t, snapshot(t, worldA, tmA), snapshot(t, worldB, tmB))
}

func TestCreateCamera(t *testing.T) {
	world := ecs.NewWorld()
	cam := NewEntitySpawner(world, zerolog.Nop()).CreateCamera(0.3)

	assert.True(t, cam.HasTag(TagCamera))
	tr, ok := ecs.Get[*components.TransformComponent](world, cam.ID, components.Transform)
	require.True(t, ok)
	assert.InDelta(t, 0.3, tr.ScaleX, 1e-9)
	assert.InDelta(t, 0.3, tr.ScaleY, 1e-9)
	assert.True(t, world.HasComponent(cam.ID, components.Camera))
}

func TestCreatePlayerHasInput(t *testing.T) {
	world := ecs.NewWorld()
	p := NewEntitySpawner(world, zerolog.Nop()).CreatePlayer(1, 2)
	assert.True(t, world.HasComponent(p.ID, components.InputMap))
	assert.True(t, world.HasComponent(p.ID, components.ActionState))
	assert.Len(t, world.GetEntitiesWithTag(TagPlayer), 1)
}
