// Package art coerces ANSI art of any shape into a fixed grid and checks
// blocks against one.
package art

import (
	"regexp"
	"strings"

	"github.com/moltimon/cardsmith/internal/termtext"
)

// cursorVisibility matches the show/hide cursor sequences that image-to-text
// tools wrap around their output.
var cursorVisibility = regexp.MustCompile(`\x1b\[\?25[lh]`)

// Normalize returns art reshaped to exactly width columns by height lines.
// The input is never rejected: short lines are padded, long lines are cut
// with their colours closed, trailing blank lines are dropped and the line
// count is padded with blank rows or cut from the bottom.
func Normalize(raw string, width, height int) string {
	cleaned := cursorVisibility.ReplaceAllString(raw, "")
	cleaned = strings.TrimPrefix(cleaned, termtext.Reset)
	cleaned = strings.TrimSuffix(cleaned, termtext.Reset)

	lines := strings.Split(cleaned, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	for len(lines) > 0 && isBlank(lines[len(lines)-1]) {
		lines = lines[:len(lines)-1]
	}
	if len(lines) > height {
		lines = lines[:height]
	}

	out := make([]string, height)
	for i := range out {
		if i < len(lines) {
			out[i] = termtext.Fit(lines[i], width)
		} else {
			out[i] = strings.Repeat(" ", width)
		}
	}
	return strings.Join(out, "\n")
}

func isBlank(line string) bool {
	return strings.TrimSpace(termtext.Strip(line)) == ""
}
