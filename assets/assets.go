// Package assets embeds the default texture atlas so the binary runs from
// any working directory.
package assets

import "embed"

// CalendarAtlas is the file name of the calendar texture atlas.
const CalendarAtlas = "calendar.png"

//go:embed calendar.png
var FS embed.FS
