package tilemap

import "ebiten-calendar/ecs"

// TileSpawner creates a tile entity at pos and returns its ID.
type TileSpawner func(pos Pos) ecs.EntityID

// FillRect spawns one tile for every slot of the rectangle starting at
// origin and records them in storage. The rectangle is clipped to the map.
// Any tile previously stored in a filled slot is handed to replaced so the
// caller can despawn it. replaced may be nil.
func FillRect(origin Pos, size Size, storage *Storage, spawn TileSpawner, replaced func(ecs.EntityID)) {
	for y := uint32(0); y < size.Y; y++ {
		for x := uint32(0); x < size.X; x++ {
			pos := Pos{X: origin.X + x, Y: origin.Y + y}
			if !pos.Within(storage.Size()) {
				continue
			}
			if prev, ok := storage.Set(pos, spawn(pos)); ok && replaced != nil {
				replaced(prev)
			}
		}
	}
}
