package spawners

import (
	"github.com/rs/zerolog"

	"ebiten-calendar/components"
	"ebiten-calendar/ecs"
	"ebiten-calendar/generation"
	"ebiten-calendar/input"
	"ebiten-calendar/tilemap"
)

// Entity tags
const (
	TagCamera  = "camera"
	TagTilemap = "tilemap"
	TagTile    = "tile"
	TagPlayer  = "player"
)

// EntitySpawner manages the creation of scene entities
type EntitySpawner struct {
	world  *ecs.World
	logger zerolog.Logger
}

// NewEntitySpawner creates a new entity spawner
func NewEntitySpawner(world *ecs.World, logger zerolog.Logger) *EntitySpawner {
	return &EntitySpawner{
		world:  world,
		logger: logger.With().Str("component", "spawner").Logger(),
	}
}

// CreateCamera creates the 2D camera. scale is the camera transform scale:
// below 1 zooms in.
func (s *EntitySpawner) CreateCamera(scale float64) *ecs.Entity {
	camera := s.world.CreateEntity()
	s.world.TagEntity(camera.ID, TagCamera)

	transform := components.NewTransform(0, 0, 999)
	transform.ScaleX, transform.ScaleY = scale, scale
	s.world.AddComponent(camera.ID, components.Transform, transform)
	s.world.AddComponent(camera.ID, components.Camera, components.NewCameraComponent())
	s.world.AddComponent(camera.ID, components.Name, components.NewNameComponent("Camera2d"))

	s.logger.Debug().Uint64("entity", uint64(camera.ID)).Float64("scale", scale).Msg("camera spawned")
	return camera
}

// CreateCalendarTilemap spawns a tilemap entity for the layout and one child
// tile entity per slot. Fills are applied in order; a tile replaced by a
// later fill is despawned, so every slot ends up with exactly one tile.
func (s *EntitySpawner) CreateCalendarTilemap(layout generation.Layout, texture string, tileSize tilemap.TileSize) *ecs.Entity {
	// The tilemap entity exists first so every tile can point back at it.
	tilemapEntity := s.world.CreateEntity()
	s.world.TagEntity(tilemapEntity.ID, TagTilemap)
	s.world.AddComponent(tilemapEntity.ID, components.Name, components.NewNameComponent("CalendarTilemap"))

	storage := tilemap.NewStorage(layout.Size)
	despawn := func(id ecs.EntityID) { s.world.RemoveEntity(id) }

	for _, fill := range layout.Fills {
		spawn := func(pos tilemap.Pos) ecs.EntityID {
			return s.spawnTile(tilemapEntity.ID, pos, fill)
		}
		tilemap.FillRect(fill.Origin, fill.Size, storage, spawn, despawn)
	}

	tm := components.NewTilemapComponent(layout.Size, tileSize, storage, texture)
	x, y, z := tilemap.CenterTransform(tm.Size, tm.GridSize, 0)
	s.world.AddComponent(tilemapEntity.ID, components.Tilemap, tm)
	s.world.AddComponent(tilemapEntity.ID, components.Transform, components.NewTransform(x, y, z))

	s.logger.Info().
		Uint64("entity", uint64(tilemapEntity.ID)).
		Uint32("width", layout.Size.X).
		Uint32("height", layout.Size.Y).
		Int("tiles", storage.Len()).
		Msg("calendar tilemap spawned")
	return tilemapEntity
}

func (s *EntitySpawner) spawnTile(tilemapID ecs.EntityID, pos tilemap.Pos, fill generation.Fill) ecs.EntityID {
	tile := s.world.CreateEntity()
	s.world.TagEntity(tile.ID, TagTile)
	s.world.SetParent(tile.ID, tilemapID)

	comp := components.NewTileComponent(pos, tilemapID, fill.Texture)
	comp.Color = fill.Color
	s.world.AddComponent(tile.ID, components.Tile, comp)
	return tile.ID
}

// CreatePlayer creates an entity driven by the default input map
func (s *EntitySpawner) CreatePlayer(x, y float64) *ecs.Entity {
	player := s.world.CreateEntity()
	s.world.TagEntity(player.ID, TagPlayer)

	s.world.AddComponent(player.ID, components.Transform, components.NewTransform(x, y, 1))
	s.world.AddComponent(player.ID, components.Player, &components.PlayerComponent{})
	s.world.AddComponent(player.ID, components.Name, components.NewNameComponent("Player"))
	s.world.AddComponent(player.ID, components.InputMap, &components.InputMapComponent{Map: input.DefaultInputMap()})
	s.world.AddComponent(player.ID, components.ActionState, &components.ActionStateComponent{State: input.NewActionState()})
	return player
}
