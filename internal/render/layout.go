// Package render composes a card record and its art into a fixed
// CardWidth x CardHeight block of terminal text.
//
// The card is built from three fixed-height sections: a header, the art
// wrapped in its art box and a footer. Every line of every section is
// exactly CardWidth columns, and Compose refuses to return anything else.
// All functions are pure and safe for concurrent use.
package render

// Grid contract.
const (
	CardWidth  = 80
	CardHeight = 60
	ArtWidth   = 70
	ArtHeight  = 26

	HeaderHeight     = 5
	ArtSectionHeight = ArtHeight + 2
	FooterHeight     = 27

	// FooterFillTarget is the footer line count reached, with filler if
	// needed, before the template line and the bottom border.
	FooterFillTarget = FooterHeight - 2

	// contentWidth is the room between the two outer border glyphs.
	contentWidth = CardWidth - 2
	// wrapWidth is the room for wrapped text, which is indented one column.
	wrapWidth = CardWidth - 5
)

// Stat bar geometry.
const (
	StatBarWidth = 12
	BarFilled    = "█"
	BarEmpty     = "░"
)

// Compile-time check that the sections add up to the card height. Changing
// one height without the others makes this array index out of range.
var _ = [1]struct{}{}[HeaderHeight+ArtSectionHeight+FooterHeight-CardHeight]
