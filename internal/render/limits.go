package render

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/moltimon/cardsmith/internal/card"
	"github.com/moltimon/cardsmith/internal/termtext"
)

// Field limits. Short fields are capped in characters, free text in words.
const (
	MaxNameChars        = 30
	MaxClassChars       = 30
	MaxAbilityChars     = 30
	MaxElementChars     = 30
	MaxDescriptionWords = 15
	MaxNotesWords       = 15
)

// textBudget is the number of footer lines available to the ability
// description and the notes block together.
const textBudget = FooterFillTarget - footerLinesBeforeText

// CheckFieldLimits reports every field of c that would not fit the card
// layout. It returns nil or a *FieldTooLongError.
func CheckFieldLimits(c *card.Card) error {
	var violations []Violation

	// Single-line fields are drawn on one card line each, so they may not
	// carry control characters or line separators.
	chars := func(field, value string, limit int) {
		if n := utf8.RuneCountInString(value); n > limit {
			violations = append(violations, Violation{Field: field, Limit: limit, Actual: n, Unit: "characters"})
		}
		if n := controlChars(value); n > 0 {
			violations = append(violations, Violation{Field: field, Limit: 0, Actual: n, Unit: "control characters"})
		}
	}
	chars("agent_name", c.AgentName, MaxNameChars)
	chars("class", c.Class, MaxClassChars)
	chars("element", c.Element, MaxElementChars)
	chars("special_ability", c.SpecialAbility, MaxAbilityChars)

	textOK := true
	words := func(field, value string, limit int) {
		if n := termtext.WordCount(value); n > limit {
			violations = append(violations, Violation{Field: field, Limit: limit, Actual: n, Unit: "words"})
			textOK = false
		}
		if w := widestWord(value); w > wrapWidth {
			violations = append(violations, Violation{Field: field, Limit: wrapWidth, Actual: w, Unit: "columns"})
			textOK = false
		}
	}
	words("ability_description", c.AbilityDescription, MaxDescriptionWords)
	words("notes", c.Notes, MaxNotesWords)

	if textOK {
		if used := textLines(c); used > textBudget {
			for _, f := range []struct{ name, value string }{
				{"ability_description", c.AbilityDescription},
				{"notes", c.Notes},
			} {
				if termtext.WordCount(f.value) > 0 {
					violations = append(violations, Violation{Field: f.name, Limit: textBudget, Actual: used, Unit: "lines"})
				}
			}
		}
	}

	if len(violations) > 0 {
		return &FieldTooLongError{Violations: violations}
	}
	return nil
}

// textLines counts the footer lines the description and notes will take.
func textLines(c *card.Card) int {
	n := len(termtext.Wrap(c.AbilityDescription, wrapWidth))
	if n == 0 {
		n = 1
	}
	if notes := len(termtext.Wrap(c.Notes, wrapWidth)); notes > 0 {
		n += notesOverhead + notes
	}
	return n
}

func controlChars(s string) int {
	n := 0
	for _, r := range s {
		if unicode.IsControl(r) || unicode.In(r, unicode.Zl, unicode.Zp) {
			n++
		}
	}
	return n
}

func widestWord(text string) int {
	widest := 0
	for _, w := range strings.Fields(text) {
		if n := termtext.Width(w); n > widest {
			widest = n
		}
	}
	return widest
}
