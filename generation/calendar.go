package generation

import (
	"image/color"

	"ebiten-calendar/calendar"
	"ebiten-calendar/tilemap"
)

// Calendar grid shape. The grid leaves room for two month views side by
// side with a one-tile gutter, plus the header row above them.
const (
	Weekdays   = calendar.DaysPerWeek
	GridWidth  = Weekdays + 1 + Weekdays + 1
	GridHeight = 1 + 6 + 6

	// HeaderRow is the row of weekday labels (Y grows upward).
	HeaderRow = 11

	// BlankTexture is the plain tile in the atlas, after the seven labels.
	BlankTexture tilemap.TextureIndex = 7
)

var (
	// BodyOrigin and BodySize describe the day cells under the header.
	BodyOrigin = tilemap.NewPos(0, 6)
	BodySize   = tilemap.Size{X: Weekdays, Y: 5}

	// BackgroundColor tints the blank tile black behind the calendar.
	BackgroundColor = color.RGBA{0, 0, 0, 255}
	// NoTint leaves the atlas colours untouched.
	NoTint = color.RGBA{255, 255, 255, 255}
)

var _ MapGenerator = (*CalendarGenerator)(nil)

// CalendarGenerator lays out the weekday header and the day-cell body.
type CalendarGenerator struct{}

// NewCalendarGenerator creates a calendar layout generator.
func NewCalendarGenerator() *CalendarGenerator {
	return &CalendarGenerator{}
}

// GridSize returns the dimensions of the calendar grid.
func (g *CalendarGenerator) GridSize() tilemap.Size {
	return tilemap.Size{X: GridWidth, Y: GridHeight}
}

// Generate builds the calendar layout: a black background over the whole
// grid, one label tile per weekday on HeaderRow, then the body block.
func (g *CalendarGenerator) Generate() Layout {
	size := g.GridSize()
	fills := make([]Fill, 0, 2+Weekdays)

	fills = append(fills, Fill{
		Region:  RegionBackground,
		Origin:  tilemap.NewPos(0, 0),
		Size:    size,
		Texture: BlankTexture,
		Color:   BackgroundColor,
	})

	for day := range calendar.Take(calendar.Monday.CycleForward(), Weekdays) {
		id := uint32(day.Ordinal() - 1)
		fills = append(fills, Fill{
			Region:  RegionHeader,
			Origin:  tilemap.NewPos(id, HeaderRow),
			Size:    tilemap.Size{X: 1, Y: 1},
			Texture: tilemap.TextureIndex(id),
			Color:   NoTint,
		})
	}

	fills = append(fills, Fill{
		Region:  RegionBody,
		Origin:  BodyOrigin,
		Size:    BodySize,
		Texture: BlankTexture,
		Color:   NoTint,
	})

	return Layout{Size: size, Fills: fills}
}

// HeaderWeekday returns the weekday labelled at column x of the header row.
func HeaderWeekday(x uint32) (calendar.Weekday, bool) {
	if x >= Weekdays {
		return 0, false
	}
	return calendar.Weekday(x + 1), true
}
