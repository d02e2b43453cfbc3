package termtext

import (
	"strings"
	"unicode/utf8"
)

// Pad appends spaces to s until it is n columns wide. Strings already at or
// beyond n are returned unchanged.
func Pad(s string, n int) string {
	w := Width(s)
	if w >= n {
		return s
	}
	return s + strings.Repeat(" ", n-w)
}

// Truncate cuts s down to n columns. Escape sequences before the cut are
// copied whole, a reset is appended at the cut so colour does not bleed into
// what follows, and a wide glyph that would straddle the limit is replaced
// by spaces.
func Truncate(s string, n int) string {
	if n < 0 {
		n = 0
	}
	if Width(s) <= n {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + len(Reset))
	width := 0
	for i := 0; i < len(s); {
		if l := escapeLen(s, i); l > 0 {
			b.WriteString(s[i : i+l])
			i += l
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		rw := RuneWidth(r)
		if width+rw > n {
			break
		}
		b.WriteString(s[i : i+size])
		width += rw
		i += size
	}
	b.WriteString(Reset)
	if width < n {
		b.WriteString(strings.Repeat(" ", n-width))
	}
	return b.String()
}

// Fit returns s padded or truncated to exactly n columns.
func Fit(s string, n int) string {
	w := Width(s)
	switch {
	case w < n:
		return s + strings.Repeat(" ", n-w)
	case w > n:
		return Truncate(s, n)
	default:
		return s
	}
}

// Center places s in the middle of n columns. The left side gets the floor
// of half the slack and the right side the remainder. Content wider than n
// is truncated instead.
func Center(s string, n int) string {
	left, right := Split(n - Width(s))
	if left+right == 0 {
		return Fit(s, n)
	}
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}

// Split divides slack columns into left and right padding using the
// centering rule shared by every centered element of a card. Negative slack
// yields no padding.
func Split(slack int) (left, right int) {
	if slack <= 0 {
		return 0, 0
	}
	left = slack / 2
	return left, slack - left
}

// BorderLine frames content between two border glyphs so the result is
// exactly total columns wide.
func BorderLine(content, left, right string, total int) string {
	inner := total - Width(left) - Width(right)
	return left + Fit(content, inner) + right
}

// HorizontalBorder builds a total-column rule from two corners and a fill
// glyph.
func HorizontalBorder(total int, left, right, fill string) string {
	inner := total - Width(left) - Width(right)
	fw := Width(fill)
	if inner <= 0 || fw == 0 {
		return Fit(left+right, total)
	}
	return Fit(left+strings.Repeat(fill, inner/fw), total-Width(right)) + right
}
