package screens

import (
	"fmt"
	"image/color"
	"sort"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/rotisserie/eris"

	"ebiten-calendar/components"
	"ebiten-calendar/ecs"
	"ebiten-calendar/systems"
)

const (
	inspectorTop        = 30
	inspectorLineHeight = 16
)

// inspectorFilters are the component names Tab cycles through; "" lists
// every entity
var inspectorFilters = []string{"", "Camera", "Tilemap", "Tile", "Transform", "Name"}

// InspectorLine is one row of the inspector listing
type InspectorLine struct {
	Text  string
	Color color.RGBA
}

// InspectorScreen lists the entities in the world and the recent log in a
// modal window
type InspectorScreen struct {
	*BaseScreen
	world        *ecs.World
	log          *systems.MessageLog
	scrollOffset int
	filterIndex  int
	filterName   string
	filterID     ecs.ComponentID
	width        int
	height       int
	background   color.Color
	textColor    color.Color
	justPressed  func(ebiten.Key) bool
}

// NewInspectorScreen creates an inspector over world and log
func NewInspectorScreen(world *ecs.World, log *systems.MessageLog) *InspectorScreen {
	return &InspectorScreen{
		BaseScreen:  NewBaseScreen(),
		world:       world,
		log:         log,
		width:       720,
		height:      480,
		background:  color.RGBA{0, 0, 0, 230},
		textColor:   color.White,
		justPressed: inpututil.IsKeyJustPressed,
	}
}

// Update handles scrolling and closing
func (s *InspectorScreen) Update() error {
	if s.justPressed(ebiten.KeyEscape) {
		return ErrCloseScreen
	}
	if s.justPressed(ebiten.KeyTab) {
		s.filterIndex = (s.filterIndex + 1) % len(inspectorFilters)
		if err := s.FilterEntities(inspectorFilters[s.filterIndex]); err != nil {
			return err
		}
	}
	if s.justPressed(ebiten.KeyArrowUp) {
		s.scroll(-1)
	}
	if s.justPressed(ebiten.KeyArrowDown) {
		s.scroll(1)
	}
	if s.justPressed(ebiten.KeyPageUp) {
		s.scroll(-s.maxLines())
	}
	if s.justPressed(ebiten.KeyPageDown) {
		s.scroll(s.maxLines())
	}
	return nil
}

// FilterEntities restricts the listing to entities carrying the named
// component. An empty name lists every entity.
func (s *InspectorScreen) FilterEntities(name string) error {
	if name == "" {
		s.filterName = ""
		s.scrollOffset = 0
		return nil
	}
	id, ok := components.GetComponentIDByName(name)
	if !ok {
		return eris.Errorf("unknown component %q", name)
	}
	s.filterName = components.ComponentName(id)
	s.filterID = id
	s.scrollOffset = 0
	return nil
}

// Filter returns the component name the listing is filtered by, if any
func (s *InspectorScreen) Filter() string {
	return s.filterName
}

func (s *InspectorScreen) scroll(delta int) {
	total := len(s.Lines())
	s.scrollOffset = clampOffset(s.scrollOffset+delta, total, s.maxLines())
}

func (s *InspectorScreen) maxLines() int {
	return (s.height - inspectorTop - 20) / inspectorLineHeight
}

// clampOffset keeps a scroll offset within [0, total-visible]
func clampOffset(offset, total, visible int) int {
	if offset > total-visible {
		offset = total - visible
	}
	if offset < 0 {
		offset = 0
	}
	return offset
}

// Lines returns the full listing: one line per entity, then the log
func (s *InspectorScreen) Lines() []InspectorLine {
	textRGBA := color.RGBAModel.Convert(s.textColor).(color.RGBA)

	entities := s.world.GetAllEntities()
	if s.filterName != "" {
		entities = s.world.GetEntitiesWithComponent(s.filterID)
	}

	var lines []InspectorLine
	for _, text := range EntityLines(s.world, entities) {
		lines = append(lines, InspectorLine{Text: text, Color: textRGBA})
	}
	if s.log == nil {
		return lines
	}
	lines = append(lines, InspectorLine{Text: "", Color: textRGBA})
	lines = append(lines, InspectorLine{Text: "-- log --", Color: textRGBA})
	for _, msg := range s.log.Snapshot() {
		cm := systems.ParseColoredMessage(msg)
		lines = append(lines, InspectorLine{Text: cm.Text, Color: cm.GetColor()})
	}
	return lines
}

// EntityLines describes each entity as "#id name [tags] components"
func EntityLines(world *ecs.World, entities []*ecs.Entity) []string {
	lines := make([]string, 0, len(entities))
	for _, e := range entities {
		tags := make([]string, 0, len(e.Tags))
		for tag := range e.Tags {
			tags = append(tags, tag)
		}
		sort.Strings(tags)

		ids := world.ComponentIDs(e.ID)
		names := make([]string, len(ids))
		for i, id := range ids {
			names[i] = components.ComponentName(id)
		}

		lines = append(lines, fmt.Sprintf("#%d %s [%s] %s",
			e.ID, entityLabel(world, e.ID), strings.Join(tags, ","), strings.Join(names, " ")))
	}
	return lines
}

func entityLabel(world *ecs.World, id ecs.EntityID) string {
	if n, ok := ecs.Get[*components.NameComponent](world, id, components.Name); ok {
		return n.Name
	}
	if tile, ok := ecs.Get[*components.TileComponent](world, id, components.Tile); ok {
		return fmt.Sprintf("Tile(%d,%d) tex=%d", tile.Position.X, tile.Position.Y, tile.TextureIndex)
	}
	return "-"
}

// Draw renders the inspector centred on the screen
func (s *InspectorScreen) Draw(screen *ebiten.Image) {
	bounds := screen.Bounds()
	x := float32(bounds.Dx()-s.width) / 2
	y := float32(bounds.Dy()-s.height) / 2
	w, h := float32(s.width), float32(s.height)

	vector.DrawFilledRect(screen, x, y, w, h, s.background, false)
	vector.StrokeRect(screen, x, y, w, h, 2, color.White, false)

	title := "INSPECTOR"
	if s.filterName != "" {
		title += " (" + s.filterName + ")"
	}
	s.drawLine(screen, title, (s.width-len(title)*7)/2, 8, x, y, s.textColor)

	lines := s.Lines()
	maxLines := s.maxLines()
	start := clampOffset(s.scrollOffset, len(lines), maxLines)
	for i := 0; i < maxLines && start+i < len(lines); i++ {
		line := lines[start+i]
		s.drawLine(screen, line.Text, 10, inspectorTop+i*inspectorLineHeight, x, y, line.Color)
	}

	if len(lines) > maxLines {
		track := float32(maxLines * inspectorLineHeight)
		barHeight := float32(maxLines) / float32(len(lines)) * track
		barY := y + inspectorTop + float32(start)/float32(len(lines))*track
		vector.DrawFilledRect(screen, x+w-10, barY, 5, barHeight, color.White, false)
	}

	s.drawLine(screen, "Up/Down PgUp/PgDn: Scroll  Tab: Filter  ESC: Close", 10, s.height-20, x, y, s.textColor)
}

// drawLine draws one line of text at (lx, ly) inside the window. The debug
// font is the fallback when the mono face cannot be loaded.
func (s *InspectorScreen) drawLine(screen *ebiten.Image, str string, lx, ly int, ox, oy float32, clr color.Color) {
	x := float64(ox) + float64(lx)
	y := float64(oy) + float64(ly)

	face, err := MonoFace()
	if err != nil {
		ebitenutil.DebugPrintAt(screen, str, int(x), int(y))
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, face, op)
}
