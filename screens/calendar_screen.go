package screens

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"ebiten-calendar/ecs"
	"ebiten-calendar/systems"
)

// CalendarScreen runs the calendar world and hosts the inspector overlay
type CalendarScreen struct {
	*BaseScreen
	world        *ecs.World
	renderSystem *systems.RenderSystem
	log          *systems.MessageLog
	overlays     *ScreenStack
	justPressed  func(ebiten.Key) bool
}

// NewCalendarScreen creates the main screen
func NewCalendarScreen(world *ecs.World, renderSystem *systems.RenderSystem, log *systems.MessageLog) *CalendarScreen {
	return &CalendarScreen{
		BaseScreen:   NewBaseScreen(),
		world:        world,
		renderSystem: renderSystem,
		log:          log,
		overlays:     NewScreenStack(),
		justPressed:  inpututil.IsKeyJustPressed,
	}
}

// Update toggles the inspector on F1 and steps the world while no overlay
// is open
func (s *CalendarScreen) Update() error {
	if s.justPressed(ebiten.KeyF1) {
		if s.overlays.Peek() != nil {
			s.overlays.Pop()
		} else {
			s.overlays.Push(NewInspectorScreen(s.world, s.log))
		}
		return nil
	}

	if s.overlays.Peek() != nil {
		return s.overlays.Update()
	}

	s.world.Update(1.0 / 60.0)
	return nil
}

// Draw draws the world and the newest log line, then any overlay
func (s *CalendarScreen) Draw(screen *ebiten.Image) {
	s.renderSystem.Draw(s.world, screen)
	if line := s.StatusLine(); line != "" {
		ebitenutil.DebugPrintAt(screen, line, 4, s.GetHeight()-16)
	}
	s.overlays.Draw(screen)
}

// StatusLine returns the most recent log line, or "" when there is none
func (s *CalendarScreen) StatusLine() string {
	if s.log == nil {
		return ""
	}
	if recent := s.log.RecentMessages(1); len(recent) > 0 {
		return recent[0]
	}
	return ""
}

// InspectorOpen reports whether the inspector overlay is showing
func (s *CalendarScreen) InspectorOpen() bool {
	return s.overlays.Len() > 0
}
