package art

import "strings"

var bandGlyphs = [...]string{"█", "▓", "▒"}

// Banding returns the default art: three horizontal bands of shading, each
// covering a third of the rows.
func Banding(width, height int) string {
	lines := make([]string, height)
	for row := range lines {
		band := row * len(bandGlyphs) / height
		lines[row] = strings.Repeat(bandGlyphs[band], width)
	}
	return strings.Join(lines, "\n")
}
