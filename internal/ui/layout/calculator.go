// Package layout provides pure functions for placing the picture and the quote
// inside the terminal cell grid.
package layout

import "math"

const (
	// MinQuoteWidth is the narrowest quote box, in cells, the solver leaves room for.
	MinQuoteWidth = 50

	// QuoteMargin is the gap between the picture and the quote box.
	QuoteMargin = 5

	// PromptHeight is the number of rows kept free below the render for the
	// shell prompt.
	PromptHeight = 16
)

// TerminalSize is the terminal grid in character cells.
type TerminalSize struct {
	Columns int
	Rows    int
}

// Aspect holds the pixel dimensions of a picture.
type Aspect struct {
	Width  int
	Height int
}

// Ratio returns height / width, or 0 when either dimension is unknown.
func (a Aspect) Ratio() float64 {
	if a.Width <= 0 || a.Height <= 0 {
		return 0
	}
	return float64(a.Height) / float64(a.Width)
}

func (a Aspect) ratio32() float32 {
	if a.Width <= 0 || a.Height <= 0 {
		return 0
	}
	return float32(a.Height) / float32(a.Width)
}

// Constraints bound the picture's share of the terminal.
type Constraints struct {
	MaxWidthPercent  int
	MaxHeightPercent int
	MarginLeft       int
	MarginTop        int // may be negative
}

// PlacedImage is the picture's width in cells and its top-left cell.
// The height follows from the aspect ratio.
type PlacedImage struct {
	Width int
	X     int
	Y     int
}

// QuoteBox is the wrapped quote anchored at its top-left cell.
type QuoteBox struct {
	Lines []string
	X     int
	Y     int
}

// Input gathers everything the solver needs for one render.
type Input struct {
	Aspect      Aspect
	Constraints Constraints
	Mode        Mode
	Terminal    TerminalSize
	QuoteLines  int
	ShowQuotes  bool
}

// Placement is the solver's result.
type Placement struct {
	Image  PlacedImage
	QuoteX int
	QuoteY int
}

// DrawableHeight returns the height available to the picture in half-cell
// units: two picture rows fit in one terminal row.
func DrawableHeight(term TerminalSize, marginTop int) float32 {
	return (float32(term.Rows) - PromptHeight - float32(marginTop)) * 2
}

// Boundary returns the largest width and height the percentage caps allow.
func Boundary(term TerminalSize, c Constraints) (width, height float32) {
	width = float32(term.Columns) * float32(c.MaxWidthPercent) / 100
	height = DrawableHeight(term, c.MarginTop) * float32(c.MaxHeightPercent) / 100
	return width, height
}

// Solve computes where the picture and the quote go.
// With quotes disabled it reports nothing to place.
//
// All arithmetic is single precision: the shrink loops stop on exact
// comparisons, so the precision decides the final width on ties.
func Solve(in Input) Placement {
	if !in.ShowQuotes {
		return Placement{}
	}
	if in.Mode.IsRow() {
		return solveRow(in)
	}
	return solveCol(in)
}

func solveRow(in Input) Placement {
	c := in.Constraints
	cols := float32(in.Terminal.Columns)
	ratio := in.Aspect.ratio32()
	drawable := DrawableHeight(in.Terminal, c.MarginTop)
	boundaryW, boundaryH := Boundary(in.Terminal, c)

	marginLeft := float32(c.MarginLeft)
	marginTop := float32(c.MarginTop)

	w := boundaryW
	h := w * ratio

	// Width and height shrink at different rates on purpose. The width may
	// go negative; only the returned cell values are clamped.
	for cols-w < MinQuoteWidth ||
		h > drawable ||
		h > boundaryH-marginTop*2 ||
		cols < w+MinQuoteWidth+QuoteMargin+marginLeft+marginLeft {
		if !shrink(&w, &h) {
			break
		}
	}

	h = w*ratio - marginTop
	quoteY := (h/2-float32(in.QuoteLines))/2 + marginTop

	x := marginLeft
	if in.Mode == ModeRowCentered {
		x = (cols - w - MinQuoteWidth - QuoteMargin) / 2
	}
	quoteX := w + x + QuoteMargin

	return Placement{
		Image: PlacedImage{
			Width: Cells(w),
			X:     Cells(x),
			Y:     Trunc(marginTop),
		},
		QuoteX: Cells(quoteX),
		QuoteY: Cells(quoteY),
	}
}

func solveCol(in Input) Placement {
	c := in.Constraints
	cols := float32(in.Terminal.Columns)
	ratio := in.Aspect.ratio32()
	boundaryW, boundaryH := Boundary(in.Terminal, c)

	marginLeft := float32(c.MarginLeft)
	marginTop := float32(c.MarginTop)

	quoteX := cols/2 - MinQuoteWidth/2

	// Without a ratio the width has no finite value.
	if ratio == 0 {
		return Placement{
			Image:  PlacedImage{X: Cells(marginLeft), Y: Trunc(marginTop)},
			QuoteX: Cells(quoteX),
			QuoteY: Cells(marginTop + QuoteMargin),
		}
	}

	h := boundaryH
	w := h / ratio
	for w > cols || w > boundaryW {
		if !shrink(&w, &h) {
			break
		}
	}
	w = h / ratio

	quoteY := h/2 + marginTop + QuoteMargin

	x := marginLeft
	if in.Mode == ModeColCentered {
		x = (cols - w) / 2
	}

	return Placement{
		Image: PlacedImage{
			Width: Cells(w),
			X:     Cells(x),
			Y:     Trunc(marginTop),
		},
		QuoteX: Cells(quoteX),
		QuoteY: Cells(quoteY),
	}
}

// shrink takes one step off the width and two off the height. It reports
// false once float32 can no longer represent the step, which bounds the
// loops for any input.
func shrink(w, h *float32) bool {
	nw, nh := *w-1, *h-2
	if nw == *w || nh == *h {
		return false
	}
	*w, *h = nw, nh
	return true
}

// Standalone places the picture alone, used when quotes are disabled.
// The width starts at the width cap and shrinks until the height cap holds.
func Standalone(aspect Aspect, c Constraints, term TerminalSize) PlacedImage {
	ratio := aspect.ratio32()
	boundaryW, boundaryH := Boundary(term, c)

	w := boundaryW
	for w > 0 && w*ratio > boundaryH {
		w--
	}

	return PlacedImage{
		Width: Cells(w),
		X:     max(c.MarginLeft, 0),
		Y:     c.MarginTop,
	}
}

// ImageRows returns how many terminal rows a picture of the given width
// occupies, with two picture rows per terminal row.
func ImageRows(width int, aspect Aspect) int {
	rows := int(float64(width) * aspect.Ratio() / 2)
	if width > 0 && rows < 1 {
		return 1
	}
	return rows
}

// Trunc converts to a cell coordinate, truncating toward zero.
// NaN becomes 0.
func Trunc(v float32) int {
	if math.IsNaN(float64(v)) {
		return 0
	}
	return int(v)
}

// Cells truncates toward zero and clamps negative results to 0.
func Cells(v float32) int {
	return max(Trunc(v), 0)
}
