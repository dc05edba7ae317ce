package generation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ebiten-calendar/calendar"
	"ebiten-calendar/tilemap"
)

func TestGridDimensions(t *testing.T) {
	assert.Equal(t, 16, GridWidth)
	assert.Equal(t, 13, GridHeight)

	layout := NewCalendarGenerator().Generate()
	assert.Equal(t, tilemap.Size{X: 16, Y: 13}, layout.Size)
}

func TestHeaderTilesFollowWeekdayOrdinal(t *testing.T) {
	layout := NewCalendarGenerator().Generate()

	for _, day := range calendar.Week() {
		t.Run(day.String(), func(t *testing.T) {
			want := uint32((day.Ordinal() - 1) % 7)
			p, ok := layout.At(tilemap.NewPos(want, HeaderRow))
			require.True(t, ok)
			assert.Equal(t, RegionHeader, p.Region)
			assert.Equal(t, tilemap.TextureIndex(want), p.Texture)

			back, ok := HeaderWeekday(want)
			require.True(t, ok)
			assert.Equal(t, day, back)
		})
	}

	_, ok := HeaderWeekday(7)
	assert.False(t, ok)
}

func TestHeaderOccupiesSingleRow(t *testing.T) {
	placements := NewCalendarGenerator().Generate().Resolve()

	headers := 0
	for _, p := range placements {
		if p.Region == RegionHeader {
			headers++
			assert.Equal(t, uint32(HeaderRow), p.Pos.Y)
			assert.Less(t, p.Pos.X, uint32(Weekdays))
		}
	}
	assert.Equal(t, Weekdays, headers)
}

func TestResolveCoversEverySlotExactlyOnce(t *testing.T) {
	layout := NewCalendarGenerator().Generate()
	placements := layout.Resolve()

	require.Len(t, placements, GridWidth*GridHeight)
	seen := make(map[tilemap.Pos]bool, len(placements))
	for _, p := range placements {
		assert.True(t, p.Pos.Within(layout.Size), "out of bounds: %+v", p.Pos)
		assert.False(t, seen[p.Pos], "slot %+v placed twice", p.Pos)
		seen[p.Pos] = true
	}
}

// The background is laid over the whole grid first and the header replaces
// it, so the rest of the header row (columns 7..15) stays background. What
// must hold is that no other tile shares a header slot and the body never
// reaches the header row.
func TestRegionsDoNotOverlapHeader(t *testing.T) {
	placements := NewCalendarGenerator().Generate().Resolve()

	headerSlots := make(map[tilemap.Pos]bool)
	for _, p := range placements {
		if p.Region == RegionHeader {
			headerSlots[p.Pos] = true
		}
	}
	for _, p := range placements {
		if p.Region == RegionHeader {
			continue
		}
		assert.False(t, headerSlots[p.Pos], "%s tile on header slot %+v", p.Region, p.Pos)
		if p.Region == RegionBody {
			assert.NotEqual(t, uint32(HeaderRow), p.Pos.Y)
		}
	}
}

func TestBodyBlock(t *testing.T) {
	layout := NewCalendarGenerator().Generate()

	body := 0
	for _, p := range layout.Resolve() {
		inBody := p.Pos.X < BodySize.X && p.Pos.Y >= BodyOrigin.Y && p.Pos.Y < BodyOrigin.Y+BodySize.Y
		if inBody {
			assert.Equal(t, RegionBody, p.Region, "%+v", p.Pos)
			assert.Equal(t, BlankTexture, p.Texture)
			assert.Equal(t, NoTint, p.Color)
			body++
		}
	}
	assert.Equal(t, 35, body)
}

func TestBackgroundIsBlackBlank(t *testing.T) {
	p, ok := NewCalendarGenerator().Generate().At(tilemap.NewPos(15, 0))
	require.True(t, ok)
	assert.Equal(t, RegionBackground, p.Region)
	assert.Equal(t, BlankTexture, p.Texture)
	assert.Equal(t, BackgroundColor, p.Color)

	_, ok = NewCalendarGenerator().Generate().At(tilemap.NewPos(16, 0))
	assert.False(t, ok)
}

func TestGenerateIsDeterministic(t *testing.T) {
	a := NewCalendarGenerator().Generate()
	b := NewCalendarGenerator().Generate()
	assert.Equal(t, a, b)
	assert.Equal(t, a.Resolve(), b.Resolve())
}

func TestAtAgreesWithResolve(t *testing.T) {
	layout := NewCalendarGenerator().Generate()
	for _, p := range layout.Resolve() {
		got, ok := layout.At(p.Pos)
		require.True(t, ok)
		assert.Equal(t, p, got)
	}
}
