// Package tilemap provides the grid types shared by the calendar scene:
// sizes, tile positions, the slot storage that maps positions to tile
// entities, and helpers for filling rectangles and centring a map.
//
// Tile positions use a bottom-left origin with Y growing upward. Renderers
// flip Y when projecting onto the screen.
package tilemap

import "ebiten-calendar/ecs"

// Size is a map size in tiles.
type Size struct {
	X, Y uint32
}

// Count returns the number of slots in a map of this size.
func (s Size) Count() int {
	return int(s.X) * int(s.Y)
}

// Pos is a tile position within a map.
type Pos struct {
	X, Y uint32
}

// NewPos creates a tile position.
func NewPos(x, y uint32) Pos {
	return Pos{X: x, Y: y}
}

// Within reports whether the position lies inside a map of the given size.
func (p Pos) Within(size Size) bool {
	return p.X < size.X && p.Y < size.Y
}

// index returns the row-major slot index for p. The caller checks bounds.
func (p Pos) index(size Size) int {
	return int(p.Y)*int(size.X) + int(p.X)
}

// TileSize is the pixel size of a single tile in the atlas.
type TileSize struct {
	X, Y float64
}

// GridSize is the distance between neighbouring tile centres in pixels.
type GridSize struct {
	X, Y float64
}

// GridSizeFromTileSize returns a grid with no gaps between tiles.
func GridSizeFromTileSize(ts TileSize) GridSize {
	return GridSize(ts)
}

// Spacing is the gap in pixels between tiles inside the atlas.
type Spacing struct {
	X, Y float64
}

// MapType selects the tile projection. Only square grids are supported.
type MapType uint8

const (
	MapTypeSquare MapType = iota
)

// TextureIndex selects a tile from the atlas.
type TextureIndex uint32

// CenterTransform returns the translation that puts the centre of a map
// at the world origin. Tile centres sit at pos*grid, so the first and last
// tile centres end up symmetric around zero.
func CenterTransform(size Size, grid GridSize, z float64) (x, y, zOut float64) {
	x = -float64(size.X-1) * grid.X / 2
	y = -float64(size.Y-1) * grid.Y / 2
	return x, y, z
}

// CenterInWorld returns the local position of a tile's centre relative to
// the map origin.
func (p Pos) CenterInWorld(grid GridSize) (x, y float64) {
	return float64(p.X) * grid.X, float64(p.Y) * grid.Y
}

// Storage is a fixed-size grid of tile entity slots. Each slot holds at
// most one tile entity.
type Storage struct {
	size  Size
	slots []ecs.EntityID
}

// NewStorage creates an empty storage for a map of the given size.
func NewStorage(size Size) *Storage {
	return &Storage{
		size:  size,
		slots: make([]ecs.EntityID, size.Count()),
	}
}

// Size returns the storage dimensions.
func (s *Storage) Size() Size {
	return s.size
}

// Set places a tile entity at pos and returns the entity it replaced, if
// any. Positions outside the map are ignored.
func (s *Storage) Set(pos Pos, entity ecs.EntityID) (previous ecs.EntityID, replaced bool) {
	if !pos.Within(s.size) {
		return 0, false
	}
	i := pos.index(s.size)
	previous = s.slots[i]
	s.slots[i] = entity
	return previous, previous != 0
}

// Get returns the tile entity at pos.
func (s *Storage) Get(pos Pos) (ecs.EntityID, bool) {
	if !pos.Within(s.size) {
		return 0, false
	}
	id := s.slots[pos.index(s.size)]
	return id, id != 0
}

// Remove clears the slot at pos and returns what was there.
func (s *Storage) Remove(pos Pos) (ecs.EntityID, bool) {
	if !pos.Within(s.size) {
		return 0, false
	}
	i := pos.index(s.size)
	id := s.slots[i]
	s.slots[i] = 0
	return id, id != 0
}

// Len returns the number of occupied slots.
func (s *Storage) Len() int {
	n := 0
	for _, id := range s.slots {
		if id != 0 {
			n++
		}
	}
	return n
}

// Each calls fn for every occupied slot in row-major order starting at
// (0, 0). Iteration stops early when fn returns false.
func (s *Storage) Each(fn func(pos Pos, entity ecs.EntityID) bool) {
	for i, id := range s.slots {
		if id == 0 {
			continue
		}
		pos := Pos{X: uint32(i % int(s.size.X)), Y: uint32(i / int(s.size.X))}
		if !fn(pos, id) {
			return
		}
	}
}
