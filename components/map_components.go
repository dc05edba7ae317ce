package components

import (
	"image/color"

	"ebiten-calendar/ecs"
	"ebiten-calendar/tilemap"
)

// TilemapComponent describes one tile layer: its dimensions, the atlas it
// draws from and the storage that maps grid slots to tile entities.
type TilemapComponent struct {
	Size     tilemap.Size
	TileSize tilemap.TileSize
	GridSize tilemap.GridSize
	Spacing  tilemap.Spacing
	Type     tilemap.MapType
	Storage  *tilemap.Storage
	Texture  string // atlas key, resolved by the render system
}

// NewTilemapComponent creates a square tilemap with no tile gaps.
func NewTilemapComponent(size tilemap.Size, tileSize tilemap.TileSize, storage *tilemap.Storage, texture string) *TilemapComponent {
	return &TilemapComponent{
		Size:     size,
		TileSize: tileSize,
		GridSize: tilemap.GridSizeFromTileSize(tileSize),
		Type:     tilemap.MapTypeSquare,
		Storage:  storage,
		Texture:  texture,
	}
}

// TileComponent is a single tile. Color tints the atlas texture; white
// leaves it unchanged.
type TileComponent struct {
	Position     tilemap.Pos
	TilemapID    ecs.EntityID
	TextureIndex tilemap.TextureIndex
	Color        color.RGBA
	Visible      bool
}

// NewTileComponent creates a visible, untinted tile.
func NewTileComponent(pos tilemap.Pos, tilemapID ecs.EntityID, index tilemap.TextureIndex) *TileComponent {
	return &TileComponent{
		Position:     pos,
		TilemapID:    tilemapID,
		TextureIndex: index,
		Color:        color.RGBA{255, 255, 255, 255},
		Visible:      true,
	}
}
