package termtext

import "strings"

// Wrap greedily packs the words of text into lines no wider than width
// columns. A word wider than width gets a line of its own. Empty or
// whitespace-only text yields no lines.
func Wrap(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	current := words[0]
	currentWidth := Width(current)
	for _, word := range words[1:] {
		ww := Width(word)
		if currentWidth+1+ww <= width {
			current += " " + word
			currentWidth += 1 + ww
			continue
		}
		lines = append(lines, current)
		current = word
		currentWidth = ww
	}
	return append(lines, current)
}

// WordCount returns the number of whitespace-separated words in text.
func WordCount(text string) int {
	return len(strings.Fields(text))
}
