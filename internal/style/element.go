package style

import "strings"

// DefaultElementGlyph marks elements without a glyph of their own.
const DefaultElementGlyph = "◆"

// Elements lists the elements that have a dedicated glyph.
var Elements = []string{"fire", "water", "earth", "air", "light", "dark", "nature", "electric"}

// ElementGlyph returns the symbol for an element name
func ElementGlyph(element string) string {
	switch strings.ToLower(strings.TrimSpace(element)) {
	case "fire":
		return "🔥"
	case "water":
		return "💧"
	case "earth":
		return "🌍"
	case "air":
		return "💨"
	case "light":
		return "✨"
	case "dark":
		return "🌑"
	case "nature":
		return "🌿"
	case "electric":
		return "⚡"
	default:
		return DefaultElementGlyph
	}
}

// KnownElement reports whether element has a dedicated glyph
func KnownElement(element string) bool {
	return ElementGlyph(element) != DefaultElementGlyph
}
