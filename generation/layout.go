package generation

import (
	"image/color"

	"ebiten-calendar/tilemap"
)

// Region names the part of the calendar a tile belongs to.
type Region uint8

const (
	RegionBackground Region = iota // blank fill covering the whole grid
	RegionHeader                   // weekday label row
	RegionBody                     // day cells
)

func (r Region) String() string {
	switch r {
	case RegionBackground:
		return "background"
	case RegionHeader:
		return "header"
	case RegionBody:
		return "body"
	default:
		return "unknown"
	}
}

// Fill paints a rectangle of the grid with one texture and tint.
type Fill struct {
	Region  Region
	Origin  tilemap.Pos
	Size    tilemap.Size
	Texture tilemap.TextureIndex
	Color   color.RGBA
}

// Placement is the tile that ends up in one slot once every fill is applied.
type Placement struct {
	Pos     tilemap.Pos
	Texture tilemap.TextureIndex
	Color   color.RGBA
	Region  Region
}

// Layout is an ordered list of fills over a grid of the given size. Later
// fills replace earlier ones slot by slot.
type Layout struct {
	Size  tilemap.Size
	Fills []Fill
}

// Resolve applies the fills in order and returns one placement per painted
// slot in row-major order starting at (0, 0). Fills are clipped to Size.
func (l Layout) Resolve() []Placement {
	grid := make([]*Placement, l.Size.Count())
	for _, f := range l.Fills {
		for y := uint32(0); y < f.Size.Y; y++ {
			for x := uint32(0); x < f.Size.X; x++ {
				pos := tilemap.NewPos(f.Origin.X+x, f.Origin.Y+y)
				if !pos.Within(l.Size) {
					continue
				}
				grid[int(pos.Y)*int(l.Size.X)+int(pos.X)] = &Placement{
					Pos:     pos,
					Texture: f.Texture,
					Color:   f.Color,
					Region:  f.Region,
				}
			}
		}
	}

	out := make([]Placement, 0, len(grid))
	for _, p := range grid {
		if p != nil {
			out = append(out, *p)
		}
	}
	return out
}

// At returns the resolved placement for one slot.
func (l Layout) At(pos tilemap.Pos) (Placement, bool) {
	if !pos.Within(l.Size) {
		return Placement{}, false
	}
	var (
		found Placement
		ok    bool
	)
	for _, f := range l.Fills {
		if pos.X >= f.Origin.X && pos.X < f.Origin.X+f.Size.X &&
			pos.Y >= f.Origin.Y && pos.Y < f.Origin.Y+f.Size.Y {
			found = Placement{Pos: pos, Texture: f.Texture, Color: f.Color, Region: f.Region}
			ok = true
		}
	}
	return found, ok
}
