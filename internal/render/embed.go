package render

import (
	"strings"

	"github.com/moltimon/cardsmith/internal/card"
	"github.com/moltimon/cardsmith/internal/style"
	"github.com/moltimon/cardsmith/internal/termtext"
)

// EmbedArt frames normalized art (exactly ArtWidth x ArtHeight) in the art
// box for r, centres the box between the card's vertical borders and returns
// the ArtSectionHeight resulting lines.
func EmbedArt(normalized string, r card.Rarity) []string {
	box := style.ArtBoxFor(r)
	cv := style.OuterFor(r).V

	left, right := termtext.Split(contentWidth - (ArtWidth + 2))
	lpad, rpad := strings.Repeat(" ", left), strings.Repeat(" ", right)
	row := func(inner string) string {
		return cv + lpad + inner + rpad + cv
	}

	rule := strings.Repeat(box.H, ArtWidth)
	lines := make([]string, 0, ArtSectionHeight)
	lines = append(lines, row(box.TL+rule+box.TR))
	for _, line := range strings.Split(normalized, "\n") {
		lines = append(lines, row(box.V+line+box.V))
	}
	return append(lines, row(box.BL+rule+box.BR))
}
