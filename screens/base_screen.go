package screens

import (
	"github.com/hajimehoshi/ebiten/v2"

	"ebiten-calendar/config"
)

// BaseScreen provides the fixed logical size shared by all screens
type BaseScreen struct {
	width  int
	height int
}

// NewBaseScreen creates a base screen with the configured logical size
func NewBaseScreen() *BaseScreen {
	w, h := config.GetScreenDimensions()
	return &BaseScreen{width: w, height: h}
}

// Update implements the Screen interface
func (s *BaseScreen) Update() error {
	return nil
}

// Draw implements the Screen interface
func (s *BaseScreen) Draw(screen *ebiten.Image) {}

// Layout ignores the window size; the scene is scaled to fit
func (s *BaseScreen) Layout(outsideWidth, outsideHeight int) (int, int) {
	return s.width, s.height
}

// GetWidth returns the logical screen width
func (s *BaseScreen) GetWidth() int {
	return s.width
}

// GetHeight returns the logical screen height
func (s *BaseScreen) GetHeight() int {
	return s.height
}
