package systems

import (
	"image/color"
	"strings"

	"github.com/rs/zerolog"
)

// ColoredMessage is a log line tagged with the level it was written at
type ColoredMessage struct {
	Text  string
	Level zerolog.Level
}

// console writer level markers, as written with NoColor set
var levelMarkers = []struct {
	marker string
	level  zerolog.Level
}{
	{" TRC ", zerolog.TraceLevel},
	{" DBG ", zerolog.DebugLevel},
	{" INF ", zerolog.InfoLevel},
	{" WRN ", zerolog.WarnLevel},
	{" ERR ", zerolog.ErrorLevel},
	{" FTL ", zerolog.FatalLevel},
	{" PNC ", zerolog.PanicLevel},
}

// ParseColoredMessage recovers the level of a console-formatted log line.
// Lines without a recognisable level are treated as info.
func ParseColoredMessage(line string) ColoredMessage {
	padded := " " + line + " "
	best, level := -1, zerolog.InfoLevel
	for _, m := range levelMarkers {
		if i := strings.Index(padded, m.marker); i >= 0 && (best < 0 || i < best) {
			best, level = i, m.level
		}
	}
	return ColoredMessage{Text: line, Level: level}
}

// GetColor returns the color for the message based on its level
func (cm ColoredMessage) GetColor() color.RGBA {
	switch cm.Level {
	case zerolog.TraceLevel, zerolog.DebugLevel:
		return color.RGBA{128, 128, 128, 255} // Gray
	case zerolog.WarnLevel:
		return color.RGBA{255, 255, 0, 255} // Bright Yellow
	case zerolog.ErrorLevel, zerolog.FatalLevel, zerolog.PanicLevel:
		return color.RGBA{255, 100, 100, 255} // Red
	default:
		return color.RGBA{200, 200, 200, 255} // Light Gray
	}
}
