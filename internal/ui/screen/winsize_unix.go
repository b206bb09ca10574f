//go:build unix

package screen

import (
	"os"

	"golang.org/x/sys/unix"
)

func winsize() (*unix.Winsize, bool) {
	for _, f := range []*os.File{os.Stdout, os.Stderr, os.Stdin} {
		ws, err := unix.IoctlGetWinsize(int(f.Fd()), unix.TIOCGWINSZ)
		if err == nil && ws.Col > 0 && ws.Row > 0 {
			return ws, true
		}
	}
	return nil, false
}

func querySize() (cols, rows int, ok bool) {
	ws, ok := winsize()
	if !ok {
		return 0, 0, false
	}
	return int(ws.Col), int(ws.Row), true
}

func queryCellSize() (width, height int, ok bool) {
	ws, ok := winsize()
	if !ok || ws.Xpixel == 0 || ws.Ypixel == 0 {
		return 0, 0, false
	}
	return int(ws.Xpixel) / int(ws.Col), int(ws.Ypixel) / int(ws.Row), true
}
