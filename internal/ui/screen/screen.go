// Package screen queries the terminal for its grid and cell pixel size.
package screen

import (
	"os"
	"strconv"

	"github.com/llehouerou/nerdcli/internal/ui/layout"
)

// Fallbacks used when the terminal cannot be queried.
const (
	DefaultColumns    = 80
	DefaultRows       = 24
	DefaultCellWidth  = 8
	DefaultCellHeight = 16
)

// Size returns the terminal grid. It asks the terminal first, then reads
// $COLUMNS and $LINES, then falls back to 80x24.
func Size() layout.TerminalSize {
	if cols, rows, ok := querySize(); ok {
		return layout.TerminalSize{Columns: cols, Rows: rows}
	}
	return sizeFromEnv(os.Getenv)
}

// CellSize returns the pixel size of one character cell, 8x16 when unknown.
func CellSize() (width, height int) {
	if w, h, ok := queryCellSize(); ok {
		return w, h
	}
	return DefaultCellWidth, DefaultCellHeight
}

func sizeFromEnv(getenv func(string) string) layout.TerminalSize {
	size := layout.TerminalSize{Columns: DefaultColumns, Rows: DefaultRows}
	if n, err := strconv.Atoi(getenv("COLUMNS")); err == nil && n > 0 {
		size.Columns = n
	}
	if n, err := strconv.Atoi(getenv("LINES")); err == nil && n > 0 {
		size.Rows = n
	}
	return size
}
