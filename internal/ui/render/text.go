// Package render provides text utilities for laying out quotes in the terminal.
package render

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// Sanitize removes control characters (except tab/space) and skips
// invalid UTF-8 bytes.
// This prevents broken terminal rendering from bad quote files.
func Sanitize(s string) string {
	if !needsSanitize(s) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size <= 1 {
			// Invalid byte, skip it
			i++
			continue
		}
		if r != '\t' && unicode.IsControl(r) {
			i += size
			continue
		}
		// Replace non-breaking space with regular space
		if r == '\u00a0' {
			b.WriteByte(' ')
			i += size
			continue
		}
		b.WriteString(s[i : i+size])
		i += size
	}
	return b.String()
}

// needsSanitize returns true if the string contains bytes that need sanitizing.
func needsSanitize(s string) bool {
	if !utf8.ValidString(s) {
		return true
	}
	for i := range len(s) {
		b := s[i]
		if b < 0x20 && b != '\t' { // ASCII control chars (except tab)
			return true
		}
		if b >= 0x80 && b <= 0x9f { // C1 control range / invalid lead bytes
			return true
		}
		if b == 0xc2 { // Potential 2-byte sequence for U+00A0 (NBSP) or C1 controls
			if i+1 < len(s) && s[i+1] == 0xa0 {
				return true
			}
		}
	}
	return false
}

// Wrap splits text into lines no wider than maxWidth cells, breaking only
// between words. Newlines in text are hard breaks and every natural line
// yields at least one output line, so blank lines survive. Each word keeps
// one trailing space. A word wider than maxWidth gets a line of its own; when
// it opens a natural line, the empty accumulator is flushed before it.
func Wrap(text string, maxWidth int) []string {
	maxWidth = max(maxWidth, 1)

	var lines []string
	var current strings.Builder
	currentWidth := 0

	flush := func() {
		lines = append(lines, current.String())
		current.Reset()
		currentWidth = 0
	}

	for natural := range strings.SplitSeq(text, "\n") {
		for _, word := range strings.Fields(Sanitize(natural)) {
			w := runewidth.StringWidth(word)
			if currentWidth+w > maxWidth {
				flush()
			}
			current.WriteString(word)
			current.WriteByte(' ')
			currentWidth += w + 1
		}
		flush()
	}
	return lines
}
