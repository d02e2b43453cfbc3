package style

import (
	"strings"

	"github.com/fatih/color"
	"github.com/moltimon/cardsmith/internal/card"
)

// Color returns the terminal tint for r. Tints are applied on top of a
// rendered card and never take part in layout.
func Color(r card.Rarity) *color.Color {
	switch r.Normalize() {
	case card.Uncommon:
		return color.New(color.FgGreen)
	case card.Rare:
		return color.New(color.FgCyan)
	case card.Epic:
		return color.New(color.FgMagenta)
	case card.Legendary:
		return color.New(color.FgYellow)
	case card.Mythic:
		return color.New(color.FgRed)
	default:
		return color.New(color.FgWhite)
	}
}

// Tint colours every line of block with the tint for r. Each line is
// coloured on its own so the block can still be split on newlines.
func Tint(block string, r card.Rarity) string {
	c := Color(r)
	c.EnableColor()
	lines := strings.Split(block, "\n")
	for i, line := range lines {
		lines[i] = c.Sprint(line)
	}
	return strings.Join(lines, "\n")
}
