package cli

import (
	"fmt"
	"io"

	"github.com/llehouerou/nerdcli/internal/quotes"
	"github.com/llehouerou/nerdcli/internal/ui/layout"
	"github.com/llehouerou/nerdcli/internal/ui/styles"
)

const (
	clearScreen = "\x1b[2J"
	clearToEOL  = "\x1b[K"
)

// cursorTo moves the cursor to a 1-based row and column. Values below 1
// are clamped to the first row or column.
func cursorTo(row, col int) string {
	return fmt.Sprintf("\x1b[%d;%dH", max(row, 1), max(col, 1))
}

// drawQuote writes the wrapped quote at box, then the source line and the
// author below it, right-aligned against the longest line. It returns the
// row after the author line.
func drawQuote(w io.Writer, st styles.QuoteStyles, box layout.QuoteBox, q quotes.Quote) int {
	for i, line := range box.Lines {
		fmt.Fprintf(w, "%s%s%s\n", cursorTo(box.Y+i, box.X), clearToEOL, st.Quote.Render(line))
	}

	source := q.SourceLine()
	anchors := layout.Attribution(box, source, q.Author)

	if source != "" {
		fmt.Fprintf(w, "%s %s%s\n", cursorTo(anchors.SourceY, anchors.SourceX), clearToEOL, st.Source.Render(source))
	}
	fmt.Fprintf(w, "%s%s-- %s\n", cursorTo(anchors.AuthorY, anchors.AuthorX), clearToEOL, st.Author.Render(q.Author))

	return max(anchors.AuthorY, 1) + 1
}
