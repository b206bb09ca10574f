//go:build !unix

package screen

func querySize() (cols, rows int, ok bool) {
	return 0, 0, false
}

func queryCellSize() (width, height int, ok bool) {
	return 0, 0, false
}
