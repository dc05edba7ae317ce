package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"

	"ebiten-calendar/components"
	"ebiten-calendar/ecs"
	"ebiten-calendar/tilemap"
)

// RenderSystem draws tilemaps through the active camera
type RenderSystem struct {
	tilesets     map[string]*Tileset
	cameraSystem *CameraSystem
	logger       zerolog.Logger
	// texture indices already reported as missing, per atlas
	missing map[string]map[tilemap.TextureIndex]bool
}

// NewRenderSystem creates a new rendering system
func NewRenderSystem(cameraSystem *CameraSystem, logger zerolog.Logger) *RenderSystem {
	return &RenderSystem{
		tilesets:     make(map[string]*Tileset),
		cameraSystem: cameraSystem,
		logger:       logger.With().Str("system", "render").Logger(),
		missing:      make(map[string]map[tilemap.TextureIndex]bool),
	}
}

// AddTileset registers an atlas under the key tilemaps reference it by
func (s *RenderSystem) AddTileset(key string, tileset *Tileset) {
	s.tilesets[key] = tileset
}

// Update is a no-op; drawing happens in Draw
func (s *RenderSystem) Update(world *ecs.World, dt float64) {}

// Draw clears the screen with the camera colour and draws every tilemap
func (s *RenderSystem) Draw(world *ecs.World, screen *ebiten.Image) {
	bg := color.Color(color.RGBA{0, 0, 0, 255})
	if camID, _, ok := ActiveCamera(world); ok {
		if cam, ok := ecs.Get[*components.CameraComponent](world, camID, components.Camera); ok && cam.ClearColor != nil {
			bg = cam.ClearColor
		}
	}
	screen.Fill(bg)

	for _, e := range world.GetEntitiesWithComponent(components.Tilemap) {
		s.drawTilemap(world, screen, e.ID)
	}
}

func (s *RenderSystem) drawTilemap(world *ecs.World, screen *ebiten.Image, mapID ecs.EntityID) {
	mapComp, ok := ecs.Get[*components.TilemapComponent](world, mapID, components.Tilemap)
	if !ok || mapComp.Storage == nil {
		return
	}
	tileset, ok := s.tilesets[mapComp.Texture]
	if !ok {
		s.reportMissing(mapComp.Texture, 0, "no tileset registered for tilemap")
		return
	}

	zoom := s.cameraSystem.Zoom(world)
	mapComp.Storage.Each(func(pos tilemap.Pos, tileID ecs.EntityID) bool {
		tile, ok := ecs.Get[*components.TileComponent](world, tileID, components.Tile)
		if !ok || !tile.Visible {
			return true
		}
		sx, sy := s.TileScreenPosition(world, mapID, pos)
		if !tileset.DrawTile(screen, tile.TextureIndex, sx, sy, zoom*mapComp.GridSize.X/float64(tileset.TileSize), tile.Color) {
			s.reportMissing(mapComp.Texture, tile.TextureIndex, "texture index outside atlas")
		}
		return true
	})
}

// TileScreenPosition returns the screen position of the centre of a tile
func (s *RenderSystem) TileScreenPosition(world *ecs.World, mapID ecs.EntityID, pos tilemap.Pos) (float64, float64) {
	var originX, originY float64
	if t, ok := ecs.Get[*components.TransformComponent](world, mapID, components.Transform); ok {
		originX, originY = t.X, t.Y
	}
	grid := tilemap.GridSize{X: 1, Y: 1}
	if m, ok := ecs.Get[*components.TilemapComponent](world, mapID, components.Tilemap); ok {
		grid = m.GridSize
	}
	lx, ly := pos.CenterInWorld(grid)
	return s.cameraSystem.WorldToScreen(world, originX+lx, originY+ly)
}

func (s *RenderSystem) reportMissing(texture string, index tilemap.TextureIndex, msg string) {
	seen := s.missing[texture]
	if seen == nil {
		seen = make(map[tilemap.TextureIndex]bool)
		s.missing[texture] = seen
	}
	if seen[index] {
		return
	}
	seen[index] = true
	s.logger.Warn().Str("texture", texture).Uint32("index", uint32(index)).Msg(msg)
}
