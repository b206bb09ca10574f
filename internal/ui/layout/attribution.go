package layout

import "github.com/mattn/go-runewidth"

// Attribution offsets from the right edge of the longest quote line.
const (
	sourceRightInset = 1
	authorRightInset = 3
	sourceRowOffset  = 2
	authorRowOffset  = 3
)

// AttributionAnchors holds the cells where the source and author rows start.
type AttributionAnchors struct {
	SourceX, SourceY int
	AuthorX, AuthorY int
}

// LongestLine returns the widest line in cells.
func LongestLine(lines []string) int {
	longest := 0
	for _, l := range lines {
		longest = max(longest, runewidth.StringWidth(l))
	}
	return longest
}

// Attribution right-aligns the source and author rows under the quote box.
func Attribution(box QuoteBox, source, author string) AttributionAnchors {
	longest := LongestLine(box.Lines)
	n := len(box.Lines)

	return AttributionAnchors{
		SourceX: max(box.X+longest-1-runewidth.StringWidth(source)-sourceRightInset, 0),
		SourceY: box.Y + n + sourceRowOffset,
		AuthorX: max(box.X+longest-1-runewidth.StringWidth(author)-authorRightInset, 0),
		AuthorY: box.Y + n + authorRowOffset,
	}
}
