// Package style holds the glyph tables that give each rarity its look.
//
// Every lookup is a closed switch over the card.Rarity enumeration that
// returns a value copy, so nothing here can be mutated after start-up. An
// unrecognized rarity always falls back to the common entry.
package style

import "github.com/moltimon/cardsmith/internal/card"

// Border is a box drawn from six glyphs.
type Border struct {
	H, V           string
	TL, TR, BL, BR string
}

// Outer is the full style of a card's outer frame.
type Outer struct {
	Border
	Name     string
	Banner   string
	SepLeft  string
	SepRight string
}

// OuterFor returns the card frame style for r.
func OuterFor(r card.Rarity) Outer {
	switch r.Normalize() {
	case card.Uncommon:
		return Outer{
			Border:   Border{H: "─", V: "│", TL: "╭", TR: "╮", BL: "╰", BR: "╯"},
			Name:     "Uncommon",
			Banner:   "[ UNCOMMON ]",
			SepLeft:  "├",
			SepRight: "┤",
		}
	case card.Rare:
		return Outer{
			Border:   Border{H: "═", V: "║", TL: "╭", TR: "╮", BL: "╰", BR: "╯"},
			Name:     "Rare",
			Banner:   "◆ RARE ◆",
			SepLeft:  "╠",
			SepRight: "╣",
		}
	case card.Epic:
		return Outer{
			Border:   Border{H: "═", V: "║", TL: "╔", TR: "╗", BL: "╚", BR: "╝"},
			Name:     "Epic",
			Banner:   "♦ EPIC ♦",
			SepLeft:  "╠",
			SepRight: "╣",
		}
	case card.Legendary:
		return Outer{
			Border:   Border{H: "━", V: "┃", TL: "┏", TR: "┓", BL: "┗", BR: "┛"},
			Name:     "Legendary",
			Banner:   "♛ LEGENDARY ♛",
			SepLeft:  "┿",
			SepRight: "┾",
		}
	case card.Mythic:
		return Outer{
			Border:   Border{H: "█", V: "█", TL: "█", TR: "█", BL: "█", BR: "█"},
			Name:     "Mythic",
			Banner:   "✶ MYTHIC ✶",
			SepLeft:  "█",
			SepRight: "█",
		}
	default:
		return Outer{
			Border:   Border{H: "─", V: "│", TL: "┌", TR: "┐", BL: "└", BR: "┘"},
			Name:     "Common",
			Banner:   "[ COMMON ]",
			SepLeft:  "├",
			SepRight: "┤",
		}
	}
}

// ArtBoxFor returns the border drawn around the art for r.
func ArtBoxFor(r card.Rarity) Border {
	switch r.Normalize() {
	case card.Uncommon:
		return Border{H: "·", V: "│", TL: "╭", TR: "╮", BL: "╰", BR: "╯"}
	case card.Rare:
		return Border{H: "◇", V: "◇", TL: "◈", TR: "◈", BL: "◈", BR: "◈"}
	case card.Epic:
		return Border{H: "❖", V: "✦", TL: "❂", TR: "❂", BL: "❂", BR: "❂"}
	case card.Legendary:
		return Border{H: "◆", V: "◆", TL: "◈", TR: "◈", BL: "◈", BR: "◈"}
	case card.Mythic:
		return Border{H: "✧", V: "✧", TL: "✪", TR: "✪", BL: "✪", BR: "✪"}
	default:
		return Border{H: "·", V: "│", TL: "┌", TR: "┐", BL: "└", BR: "┘"}
	}
}
