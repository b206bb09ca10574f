package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/nerdcli/internal/quotes"
	"github.com/llehouerou/nerdcli/internal/ui/layout"
	"github.com/llehouerou/nerdcli/internal/ui/styles"
)

func TestCursorTo(t *testing.T) {
	tests := []struct {
		row, col int
		want     string
	}{
		{12, 122, "\x1b[12;122H"},
		{1, 1, "\x1b[1;1H"},
		{0, -4, "\x1b[1;1H"},
	}
	for _, tt := range tests {
		if got := cursorTo(tt.row, tt.col); got != tt.want {
			t.Errorf("cursorTo(%d, %d) = %q, want %q", tt.row, tt.col, got, tt.want)
		}
	}
}

func TestDrawQuote(t *testing.T) {
	lines := []string{"The only way to do great work is to love what you ", "do. "}
	box := layout.QuoteBox{Lines: lines, X: 122, Y: 12}

	var buf bytes.Buffer
	next := drawQuote(&buf, styles.NewQuoteStyles(nil, nil, nil), box, quotes.Default())
	out := buf.String()

	// Longest line is 50 cells: author x = 122 + 50 - 1 - 10 - 3.
	for _, want := range []string{
		cursorTo(12, 122) + clearToEOL,
		cursorTo(13, 122) + clearToEOL,
		cursorTo(17, 158) + clearToEOL + "-- ",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
	if strings.Contains(out, "\x1b[16;") {
		t.Error("no source line expected without source or date")
	}
	if next != 18 {
		t.Errorf("drawQuote() = %d, want 18", next)
	}

	plain := ansi.Strip(out)
	for _, want := range []string{lines[0], "do.", "-- Steve Jobs"} {
		if !strings.Contains(plain, want) {
			t.Errorf("text missing %q in %q", want, plain)
		}
	}
}

func TestDrawQuote_WithSource(t *testing.T) {
	q := quotes.Quote{
		Text:   "Premature optimization is the root of all evil.",
		Author: "Donald Knuth",
		Source: "Computing Surveys",
		Date:   "1974",
	}
	lines := []string{"Premature optimization is the root of all evil. "}
	box := layout.QuoteBox{Lines: lines, X: 10, Y: 5}

	var buf bytes.Buffer
	drawQuote(&buf, styles.NewQuoteStyles(nil, nil, nil), box, q)
	out := buf.String()

	// Longest line is 48 cells, "Computing Surveys 1974" is 22.
	if want := cursorTo(8, 10+48-1-22-1) + " " + clearToEOL; !strings.Contains(out, want) {
		t.Errorf("source line missing %q", want)
	}
	if want := cursorTo(9, 10+48-1-12-3) + clearToEOL + "-- "; !strings.Contains(out, want) {
		t.Errorf("author line missing %q", want)
	}
	if !strings.Contains(ansi.Strip(out), "Computing Surveys 1974") {
		t.Error("source text missing")
	}
}
