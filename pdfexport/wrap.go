package pdfexport

import (
	"strings"
	"unicode/utf8"
)

// WrapText breaks s into lines of at most width runes at whitespace.
// Runs of whitespace collapse to one space. A word longer than width gets a
// line of its own and is never split. Blank input yields one empty line.
func WrapText(s string, width int) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	current := words[0]
	currentLen := utf8.RuneCountInString(current)
	for _, word := range words[1:] {
		n := utf8.RuneCountInString(word)
		if currentLen+1+n <= width {
			current += " " + word
			currentLen += 1 + n
			continue
		}
		lines = append(lines, current)
		current, currentLen = word, n
	}
	return append(lines, current)
}

// WrapHeaders wraps every header and returns the tallest line count.
func WrapHeaders(headers []string, width int) ([][]string, int) {
	wrapped := make([][]string, len(headers))
	maxLines := 0
	for i, h := range headers {
		wrapped[i] = WrapText(h, width)
		if len(wrapped[i]) > maxLines {
			maxLines = len(wrapped[i])
		}
	}
	return wrapped, maxLines
}
