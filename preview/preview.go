// Package preview renders a calendar layout in a terminal.
package preview

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rotisserie/eris"

	"ebiten-calendar/generation"
	"ebiten-calendar/tilemap"
)

// CellsPerTile is the number of terminal columns one tile occupies
const CellsPerTile = 2

// Canvas is the part of tcell.Screen the preview draws on
type Canvas interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (width, height int)
}

var (
	headerStyle     = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorWhite).Bold(true)
	bodyStyle       = tcell.StyleDefault.Foreground(tcell.ColorGray).Background(tcell.ColorWhite)
	backgroundStyle = tcell.StyleDefault.Background(tcell.ColorBlack)
)

// Cell returns the two-character text and style for a grid slot
func Cell(layout generation.Layout, pos tilemap.Pos) (string, tcell.Style) {
	p, ok := layout.At(pos)
	if !ok {
		return "  ", tcell.StyleDefault
	}
	switch p.Region {
	case generation.RegionHeader:
		if day, ok := generation.HeaderWeekday(uint32(p.Texture)); ok {
			return day.Short(), headerStyle
		}
		return "??", headerStyle
	case generation.RegionBody:
		return "··", bodyStyle
	default:
		return "  ", backgroundStyle
	}
}

// Lines returns the layout as text, top row first
func Lines(layout generation.Layout) []string {
	lines := make([]string, 0, layout.Size.Y)
	for y := int(layout.Size.Y) - 1; y >= 0; y-- {
		var b strings.Builder
		for x := uint32(0); x < layout.Size.X; x++ {
			text, _ := Cell(layout, tilemap.NewPos(x, uint32(y)))
			b.WriteString(text)
		}
		lines = append(lines, b.String())
	}
	return lines
}

// Draw paints the layout centred on the canvas, top row first. A canvas
// smaller than the layout clips it at the right and bottom.
func Draw(canvas Canvas, layout generation.Layout) {
	width, height := canvas.Size()
	cols := int(layout.Size.X) * CellsPerTile
	rows := int(layout.Size.Y)
	offX := max((width-cols)/2, 0)
	offY := max((height-rows)/2, 0)

	for row := 0; row < rows; row++ {
		y := int(layout.Size.Y) - 1 - row
		for x := 0; x < int(layout.Size.X); x++ {
			text, style := Cell(layout, tilemap.NewPos(uint32(x), uint32(y)))
			for i, r := range []rune(text) {
				cx, cy := offX+x*CellsPerTile+i, offY+row
				if cx >= width || cy >= height {
					continue
				}
				canvas.SetContent(cx, cy, r, nil, style)
			}
		}
	}
}

// Run shows the layout on the terminal until Esc, q or Ctrl-C is pressed
func Run(layout generation.Layout) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return eris.Wrap(err, "failed to create terminal screen")
	}
	if err := screen.Init(); err != nil {
		return eris.Wrap(err, "failed to initialise terminal screen")
	}
	defer screen.Fini()

	redraw := func() {
		screen.Clear()
		Draw(screen, layout)
		screen.Show()
	}
	redraw()

	for {
		switch ev := screen.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventResize:
			screen.Sync()
			redraw()
		case *tcell.EventKey:
			if Quits(ev) {
				return nil
			}
		}
	}
}

// Quits reports whether a key event ends the preview
func Quits(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}
