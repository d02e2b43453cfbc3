package render

import (
	"fmt"
	"strings"

	"github.com/moltimon/cardsmith/internal/card"
	"github.com/moltimon/cardsmith/internal/style"
	"github.com/moltimon/cardsmith/internal/termtext"
)

// Compact renders c as a single listing line:
//
//	[LEGENDARY] 🔥 Ember Knight (Warrior) #42
func Compact(c *card.Card) string {
	tag := strings.ToUpper(string(c.Rarity.Normalize()))
	line := fmt.Sprintf("[%-9s] %s %s", tag, style.ElementGlyph(c.Element), c.AgentName)
	if c.Class != "" {
		line += " (" + c.Class + ")"
	}
	return line + fmt.Sprintf(" #%d", c.MintNumber)
}

// Tally counts cards per rarity. Unknown rarities count as common.
type Tally struct {
	Total    int
	ByRarity map[card.Rarity]int
}

// Count tallies cards.
func Count(cards []*card.Card) Tally {
	t := Tally{ByRarity: make(map[card.Rarity]int, len(card.Rarities))}
	for _, c := range cards {
		t.Total++
		t.ByRarity[c.Rarity.Normalize()]++
	}
	return t
}

// Lines prints the tally, highest rarity first, skipping rarities with no
// cards.
func (t Tally) Lines() []string {
	lines := []string{fmt.Sprintf("%d cards", t.Total)}
	for i := len(card.Rarities) - 1; i >= 0; i-- {
		r := card.Rarities[i]
		n := t.ByRarity[r]
		if n == 0 {
			continue
		}
		label := termtext.Pad(style.OuterFor(r).Name, 10)
		lines = append(lines, fmt.Sprintf("  %s %3d", label, n))
	}
	return lines
}

// Summary is the printed tally of cards.
func Summary(cards []*card.Card) string {
	return strings.Join(Count(cards).Lines(), "\n")
}
