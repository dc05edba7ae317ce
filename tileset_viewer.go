package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"ebiten-calendar/generation"
	"ebiten-calendar/systems"
	"ebiten-calendar/tilemap"
)

const (
	viewerColumns = 8
	viewerRows    = 4
	viewerHeader  = 100
)

// TilesetViewer implements ebiten.Game interface.
type TilesetViewer struct {
	tileset      *systems.Tileset
	tileSize     int // display size of one tile in pixels
	screenWidth  int
	screenHeight int
	offset       int // first visible atlas row
}

// NewTilesetViewer creates a viewer that shows tiles at tileSize pixels
func NewTilesetViewer(tileset *systems.Tileset, tileSize int) *TilesetViewer {
	return &TilesetViewer{
		tileset:      tileset,
		tileSize:     tileSize,
		screenWidth:  viewerColumns*tileSize + 20,
		screenHeight: viewerRows*(tileSize+16) + viewerHeader + 40,
	}
}

// Update handles input for scrolling
func (t *TilesetViewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		t.scroll(1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		t.scroll(-1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyPageDown) {
		t.scroll(viewerRows)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyPageUp) {
		t.scroll(-viewerRows)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	return nil
}

func (t *TilesetViewer) scroll(delta int) {
	t.offset = max(min(t.offset+delta, t.maxOffset()), 0)
}

// maxOffset is the last row offset that still fills the view
func (t *TilesetViewer) maxOffset() int {
	total := (t.tileset.Count() + viewerColumns - 1) / viewerColumns
	return max(total-viewerRows, 0)
}

// tileLabel names a tile by index and, where it has one, its calendar role
func tileLabel(index tilemap.TextureIndex) string {
	if index == generation.BlankTexture {
		return fmt.Sprintf("#%d blank", index)
	}
	if day, ok := generation.HeaderWeekday(uint32(index)); ok {
		return fmt.Sprintf("#%d %s", index, day.Short())
	}
	return fmt.Sprintf("#%d", index)
}

// Draw displays the tiles with their indices
func (t *TilesetViewer) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{30, 30, 30, 255})

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Tileset: %s", t.tileset.Name), 10, 10)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Size: %dx%d tiles of %dpx", t.tileset.Columns, t.tileset.Rows, t.tileset.TileSize), 10, 30)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Viewing from row %d", t.offset), 10, 50)

	scale := float64(t.tileSize) / float64(t.tileset.TileSize)
	for row := 0; row < viewerRows; row++ {
		for col := 0; col < viewerColumns; col++ {
			index := tilemap.TextureIndex((row+t.offset)*viewerColumns + col)
			if int(index) >= t.tileset.Count() {
				continue
			}

			screenX := 10 + col*t.tileSize
			screenY := viewerHeader + row*(t.tileSize+16)
			vector.DrawFilledRect(screen, float32(screenX), float32(screenY),
				float32(t.tileSize-2), float32(t.tileSize-2), color.RGBA{60, 60, 60, 255}, false)

			cx := float64(screenX) + float64(t.tileSize)/2
			cy := float64(screenY) + float64(t.tileSize)/2
			t.tileset.DrawTile(screen, index, cx, cy, scale, nil)
			ebitenutil.DebugPrintAt(screen, tileLabel(index), screenX+2, screenY+t.tileSize)
		}
	}

	ebitenutil.DebugPrintAt(screen, "ESC: Quit | Arrow keys: Scroll | Page Up/Down: Fast scroll", 10, t.screenHeight-20)
}

// Layout implements ebiten.Game's Layout.
func (t *TilesetViewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return t.screenWidth, t.screenHeight
}
