// Package termtext measures and edits strings in terminal columns.
//
// Escape sequences are zero width. Glyphs in a fixed wide set count as two
// columns and everything else counts as one, so a measurement never depends
// on the locale or on the Unicode tables of the host terminal.
package termtext

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	esc = '\x1b'
	csi = '\u009b'
)

// Reset is the SGR sequence that clears every colour and style attribute.
const Reset = "\x1b[0m"

// wideTable lists the code points rendered two columns wide.
var wideTable = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x26a1, Hi: 0x26a1, Stride: 1}, // ⚡
		{Lo: 0x2728, Hi: 0x2728, Stride: 1}, // ✨
		{Lo: 0x2e80, Hi: 0x2eff, Stride: 1}, // CJK radicals supplement
		{Lo: 0x2f00, Hi: 0x2fdf, Stride: 1}, // Kangxi radicals
		{Lo: 0x3000, Hi: 0x303f, Stride: 1}, // CJK symbols and punctuation
		{Lo: 0x3040, Hi: 0x309f, Stride: 1}, // Hiragana
		{Lo: 0x30a0, Hi: 0x30ff, Stride: 1}, // Katakana
		{Lo: 0x3100, Hi: 0x312f, Stride: 1}, // Bopomofo
		{Lo: 0x31f0, Hi: 0x31ff, Stride: 1}, // Katakana phonetic extensions
		{Lo: 0x3200, Hi: 0x32ff, Stride: 1}, // enclosed CJK letters
		{Lo: 0x3300, Hi: 0x33ff, Stride: 1}, // CJK compatibility
		{Lo: 0x3400, Hi: 0x4dbf, Stride: 1}, // CJK extension A
		{Lo: 0x4e00, Hi: 0x9fff, Stride: 1}, // CJK unified ideographs
		{Lo: 0xac00, Hi: 0xd7af, Stride: 1}, // Hangul syllables
		{Lo: 0xf900, Hi: 0xfaff, Stride: 1}, // CJK compatibility ideographs
		{Lo: 0xff01, Hi: 0xff60, Stride: 1}, // fullwidth forms
		{Lo: 0xffe0, Hi: 0xffe6, Stride: 1}, // fullwidth signs
	},
	R32: []unicode.Range32{
		{Lo: 0x1f000, Hi: 0x1f02f, Stride: 1}, // mahjong tiles
		{Lo: 0x1f0a0, Hi: 0x1f0ff, Stride: 1}, // playing cards
		{Lo: 0x1f100, Hi: 0x1f1ff, Stride: 1}, // enclosed alphanumeric supplement
		{Lo: 0x1f300, Hi: 0x1f5ff, Stride: 1}, // symbols and pictographs
		{Lo: 0x1f600, Hi: 0x1f64f, Stride: 1}, // emoticons
		{Lo: 0x1f680, Hi: 0x1f6ff, Stride: 1}, // transport and map
		{Lo: 0x1f900, Hi: 0x1f9ff, Stride: 1}, // supplemental symbols
		{Lo: 0x1fa00, Hi: 0x1fa6f, Stride: 1}, // extended-A
		{Lo: 0x1fa70, Hi: 0x1faff, Stride: 1}, // extended-B
		{Lo: 0x20000, Hi: 0x2fa1f, Stride: 1}, // CJK extension B and later
	},
}

// IsWide reports whether r occupies two terminal columns.
func IsWide(r rune) bool {
	return unicode.Is(wideTable, r)
}

// RuneWidth returns 2 for wide glyphs and 1 for everything else.
func RuneWidth(r rune) int {
	if IsWide(r) {
		return 2
	}
	return 1
}

// Width returns the number of terminal columns s occupies.
func Width(s string) int {
	width := 0
	for i := 0; i < len(s); {
		if n := escapeLen(s, i); n > 0 {
			i += n
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		width += RuneWidth(r)
		i += size
	}
	return width
}

// Strip removes every recognized escape sequence from s. Unrecognized
// escape-like bytes are left in place.
func Strip(s string) string {
	if !strings.ContainsRune(s, esc) && !strings.ContainsRune(s, csi) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		if n := escapeLen(s, i); n > 0 {
			i += n
			continue
		}
		_, size := utf8.DecodeRuneInString(s[i:])
		b.WriteString(s[i : i+size])
		i += size
	}
	return b.String()
}

// escapeLen returns the byte length of the escape sequence starting at
// s[i], or 0 when no recognized sequence starts there. Recognized forms are
// CSI sequences (introducer, '[', optional '?', parameters of digits and
// ';', one final letter) and the designate-G0 form "(B".
func escapeLen(s string, i int) int {
	var j int
	switch {
	case s[i] == esc:
		j = i + 1
	case strings.HasPrefix(s[i:], string(csi)):
		j = i + utf8.RuneLen(csi)
	default:
		return 0
	}
	if j >= len(s) {
		return 0
	}

	if s[j] == '(' {
		if j+1 < len(s) && s[j+1] == 'B' {
			return j + 2 - i
		}
		return 0
	}
	if s[j] != '[' {
		return 0
	}
	j++
	if j < len(s) && s[j] == '?' {
		j++
	}
	for j < len(s) && (s[j] == ';' || (s[j] >= '0' && s[j] <= '9')) {
		j++
	}
	if j < len(s) && isLetter(s[j]) {
		return j + 1 - i
	}
	return 0
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
