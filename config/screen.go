package config

// Screen layout configuration
const (
	// Tile size in pixels, matching the calendar atlas
	TileSize = 16

	// Logical screen size in pixels. The calendar is drawn centred; the
	// camera scale decides how much of it fills the view.
	ScreenWidth  = 1024
	ScreenHeight = 768
)

// GetScreenDimensions returns the logical screen dimensions in pixels
func GetScreenDimensions() (width, height int) {
	return ScreenWidth, ScreenHeight
}
