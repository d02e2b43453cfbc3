package style

import (
	"strings"
	"testing"

	"github.com/moltimon/cardsmith/internal/card"
	"github.com/moltimon/cardsmith/internal/termtext"
	"github.com/stretchr/testify/assert"
)

func TestOuterForEveryRarity(t *testing.T) {
	seen := map[string]bool{}
	for _, r := range card.Rarities {
		o := OuterFor(r)
		assert.NotEmpty(t, o.Banner, r)
		assert.Contains(t, strings.ToUpper(o.Banner), strings.ToUpper(string(r)))
		for _, g := range []string{o.H, o.V, o.TL, o.TR, o.BL, o.BR, o.SepLeft, o.SepRight} {
			assert.Equal(t, 1, termtext.Width(g), "%s glyph %q", r, g)
		}
		seen[o.Banner] = true
	}
	assert.Len(t, seen, len(card.Rarities), "every rarity has its own banner")
}

func TestArtBoxGlyphsAreNarrow(t *testing.T) {
	for _, r := range card.Rarities {
		b := ArtBoxFor(r)
		for _, g := range []string{b.H, b.V, b.TL, b.TR, b.BL, b.BR} {
			assert.Equal(t, 1, termtext.Width(g), "%s glyph %q", r, g)
		}
	}
}

func TestUnknownRarityFallsBackToCommon(t *testing.T) {
	assert.Equal(t, OuterFor(card.Common), OuterFor("holographic"))
	assert.Equal(t, ArtBoxFor(card.Common), ArtBoxFor(""))
	assert.Equal(t, OuterFor(card.Epic), OuterFor("EPIC"))
}

func TestSeparatorsDifferFromCorners(t *testing.T) {
	for _, r := range []card.Rarity{card.Common, card.Uncommon, card.Rare, card.Epic, card.Legendary} {
		o := OuterFor(r)
		assert.NotEqual(t, o.TL, o.SepLeft, r)
	}
}

func TestElementGlyph(t *testing.T) {
	for _, e := range Elements {
		assert.True(t, KnownElement(e), e)
		assert.Equal(t, 2, termtext.Width(ElementGlyph(e)), e)
	}
	assert.Equal(t, "🔥", ElementGlyph(" FIRE "))
	assert.Equal(t, DefaultElementGlyph, ElementGlyph("plasma"))
	assert.False(t, KnownElement("plasma"))
}

func TestTintKeepsLineStructure(t *testing.T) {
	block := "┌──┐\n│ab│\n└──┘"
	tinted := Tint(block, card.Legendary)
	lines := strings.Split(tinted, "\n")
	assert.Len(t, lines, 3)
	for i, line := range strings.Split(block, "\n") {
		assert.Equal(t, termtext.Width(line), termtext.Width(lines[i]))
		assert.Equal(t, line, termtext.Strip(lines[i]))
	}
}
