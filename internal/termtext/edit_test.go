package termtext

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFitProducesExactWidth(t *testing.T) {
	inputs := []string{
		"",
		"short",
		strings.Repeat("x", 20),
		strings.Repeat("y", 45),
		"\x1b[31m" + strings.Repeat("r", 50) + "\x1b[0m",
		strings.Repeat("🔥", 30),
		"a" + strings.Repeat("漢", 30),
		"\x1b[?25l" + strings.Repeat("▓", 25),
	}
	for _, n := range []int{0, 1, 7, 20, 21, 40} {
		for _, in := range inputs {
			assert.Equal(t, n, Width(Fit(in, n)), "Fit(%q, %d)", in, n)
		}
	}
}

func TestPad(t *testing.T) {
	assert.Equal(t, "ab   ", Pad("ab", 5))
	assert.Equal(t, "\x1b[1mab\x1b[0m   ", Pad("\x1b[1mab\x1b[0m", 5))
	assert.Equal(t, "abcdef", Pad("abcdef", 3), "pad never shortens")
}

func TestTruncate(t *testing.T) {
	t.Run("plain", func(t *testing.T) {
		assert.Equal(t, "abc"+Reset, Truncate("abcdef", 3))
	})

	t.Run("fits unchanged", func(t *testing.T) {
		assert.Equal(t, "abc", Truncate("abc", 3))
	})

	t.Run("keeps escapes whole", func(t *testing.T) {
		got := Truncate("\x1b[38;5;208mabcdef", 2)
		assert.Equal(t, "\x1b[38;5;208mab"+Reset, got)
	})

	t.Run("never splits an escape", func(t *testing.T) {
		got := Truncate("ab\x1b[31mcd", 2)
		assert.Equal(t, "ab\x1b[31m"+Reset, got)
		assert.Equal(t, 2, Width(got))
	})

	t.Run("wide glyph at the cut becomes padding", func(t *testing.T) {
		got := Truncate("a🔥b", 2)
		assert.Equal(t, "a"+Reset+" ", got)
		assert.Equal(t, 2, Width(got))
	})

	t.Run("zero", func(t *testing.T) {
		assert.Equal(t, Reset, Truncate("abc", 0))
	})
}

func TestCenter(t *testing.T) {
	assert.Equal(t, "  ab  ", Center("ab", 6))
	assert.Equal(t, "  ab   ", Center("ab", 7), "odd slack goes right")
	assert.Equal(t, "abc", Center("abc", 3))
	assert.Equal(t, 4, Width(Center("abcdef", 4)))
	assert.Equal(t, 10, Width(Center("🔥 FIRE", 10)))
}

func TestSplit(t *testing.T) {
	tests := []struct {
		slack       int
		left, right int
	}{
		{-3, 0, 0},
		{0, 0, 0},
		{1, 0, 1},
		{6, 3, 3},
		{7, 3, 4},
	}
	for _, tt := range tests {
		l, r := Split(tt.slack)
		assert.Equal(t, tt.left, l, "slack %d", tt.slack)
		assert.Equal(t, tt.right, r, "slack %d", tt.slack)
	}
}

func TestBorderLine(t *testing.T) {
	assert.Equal(t, "│Hello             │", BorderLine("Hello", "│", "│", 20))
	assert.Equal(t, "│"+strings.Repeat("A", 18)+Reset+"│", BorderLine(strings.Repeat("A", 100), "│", "│", 20))
	assert.Equal(t, 20, Width(BorderLine("🔥🔥🔥🔥🔥🔥🔥🔥🔥🔥", "║", "║", 20)))
}

func TestHorizontalBorder(t *testing.T) {
	assert.Equal(t, "┌────────┐", HorizontalBorder(10, "┌", "┐", "─"))
	got := HorizontalBorder(80, "╔", "╗", "═")
	assert.Equal(t, 80, Width(got))
	assert.True(t, strings.HasPrefix(got, "╔"))
	assert.True(t, strings.HasSuffix(got, "╗"))
}
