package render

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/moltimon/cardsmith/internal/card"
	"github.com/moltimon/cardsmith/internal/style"
	"github.com/moltimon/cardsmith/internal/termtext"
)

const (
	abilityMarker = "★"
	notesMarker   = "✎"
)

// statPair is one footer stat row: two labelled stats side by side.
type statPair struct {
	left, right       string
	leftVal, rightVal int
	rightMax          int
}

func statPairs(s card.Stats) []statPair {
	return []statPair{
		{"STR", "INT", s.STR, s.INT, card.MaxStandardStat},
		{"CHA", "WIS", s.CHA, s.WIS, card.MaxStandardStat},
		{"DEX", "KAR", s.DEX, s.KAR, card.MaxKarma},
	}
}

// Footer builds the FooterHeight lines below the art. The caller must have
// checked the card with CheckFieldLimits; longer free text would push the
// footer past its height.
func Footer(c *card.Card) []string {
	outer := style.OuterFor(c.Rarity)
	v := outer.V
	blank := termtext.BorderLine("", v, v, CardWidth)
	text := func(s string) string {
		return termtext.BorderLine(s, v, v, CardWidth)
	}

	lines := []string{separator(outer), blank, blank}

	for _, p := range statPairs(c.Stats) {
		lines = append(lines, text(termtext.Center(statRow(p), contentWidth)), blank)
	}
	lines = append(lines, blank)

	element := style.ElementGlyph(c.Element) + " " + strings.ToUpper(c.Element) + " Element"
	lines = append(lines, text(termtext.Center(element, contentWidth)), blank)

	lines = append(lines, separator(outer), blank)
	if c.SpecialAbility != "" {
		lines = append(lines, text(" "+abilityMarker+" "+c.SpecialAbility))
	} else {
		lines = append(lines, blank)
	}
	lines = append(lines, blank)

	if desc := termtext.Wrap(c.AbilityDescription, wrapWidth); len(desc) > 0 {
		for _, l := range desc {
			lines = append(lines, text(" "+l))
		}
	} else {
		lines = append(lines, blank)
	}

	if notes := termtext.Wrap(c.Notes, wrapWidth); len(notes) > 0 {
		lines = append(lines, blank, blank, text(" "+notesMarker+" Notes"), blank)
		for _, l := range notes {
			lines = append(lines, text(" "+l))
		}
	}

	for len(lines) < FooterFillTarget {
		lines = append(lines, blank)
	}

	lines = append(lines,
		text(fmt.Sprintf("Template: #%d | Mint: %d", c.TemplateID, c.MintNumber)),
		termtext.HorizontalBorder(CardWidth, outer.BL, outer.BR, outer.H),
	)
	return lines
}

// footerLinesBeforeText counts the footer lines above the ability
// description: separator, two blanks, three stat rows with a blank after
// each, a blank, the element line and its blank, the ability separator, a
// blank, the ability name and a blank.
const footerLinesBeforeText = 16

// notesOverhead is the two blanks, header and blank that precede notes text.
const notesOverhead = 4

func statRow(p statPair) string {
	return fmt.Sprintf("%s: %2s   %s          │          %s: %4s   %s",
		p.left, FormatStat(p.leftVal), StatBar(p.leftVal, card.MaxStandardStat, StatBarWidth),
		p.right, FormatStat(p.rightVal), StatBar(p.rightVal, p.rightMax, StatBarWidth))
}

// StatBar renders value as a run of width glyphs, filled in proportion to
// value/max after clamping value into [0, max].
func StatBar(value, max, width int) string {
	if max <= 0 {
		return strings.Repeat(BarEmpty, width)
	}
	clamped := math.Max(0, math.Min(float64(value), float64(max)))
	filled := int(math.Round(clamped / float64(max) * float64(width)))
	return strings.Repeat(BarFilled, filled) + strings.Repeat(BarEmpty, width-filled)
}

// FormatStat prints values of a thousand or more in thousands with one
// decimal ("1.2K", "10K").
func FormatStat(v int) string {
	if v < 1000 {
		return strconv.Itoa(v)
	}
	s := strconv.FormatFloat(float64(v)/1000, 'f', 1, 64)
	return strings.TrimSuffix(s, ".0") + "K"
}
