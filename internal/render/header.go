package render

import (
	"fmt"
	"strings"

	"github.com/moltimon/cardsmith/internal/card"
	"github.com/moltimon/cardsmith/internal/style"
	"github.com/moltimon/cardsmith/internal/termtext"
)

// Header builds the HeaderHeight lines above the art: top border, name and
// mint number, rarity banner, class and the separator.
func Header(c *card.Card) []string {
	outer := style.OuterFor(c.Rarity)
	v := outer.V

	name := style.ElementGlyph(c.Element) + " " + c.AgentName
	mint := fmt.Sprintf("#%d", c.MintNumber)
	gap := contentWidth - termtext.Width(name) - termtext.Width(mint)
	if gap < 0 {
		gap = 0
	}

	return []string{
		termtext.HorizontalBorder(CardWidth, outer.TL, outer.TR, outer.H),
		termtext.BorderLine(name+strings.Repeat(" ", gap)+mint, v, v, CardWidth),
		termtext.BorderLine(termtext.Center(outer.Banner, contentWidth), v, v, CardWidth),
		termtext.BorderLine("Class: "+c.Class, v, v, CardWidth),
		separator(outer),
	}
}

func separator(outer style.Outer) string {
	return termtext.HorizontalBorder(CardWidth, outer.SepLeft, outer.SepRight, outer.H)
}
