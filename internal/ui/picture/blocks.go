package picture

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"strings"
	"sync"

	"github.com/lucasb-eyer/go-colorful"
)

// upperHalf paints the top half of a cell in the foreground color and the
// bottom half in the background color.
const upperHalf = "▀"

// BlocksProtocol draws pictures with truecolor half blocks, two pixel rows
// per terminal row. It works in any terminal with 24-bit color.
type BlocksProtocol struct {
	mu     sync.RWMutex
	images map[uint32][]string
}

// NewBlocksProtocol returns a half-block protocol.
func NewBlocksProtocol() *BlocksProtocol {
	return &BlocksProtocol{images: make(map[uint32][]string)}
}

func (b *BlocksProtocol) Prepare(img image.Image, id uint32) (string, error) {
	rows := encodeBlocks(img)

	b.mu.Lock()
	b.images[id] = rows
	b.mu.Unlock()
	return "", nil
}

func (b *BlocksProtocol) PrepareFromPNG(pngData []byte, id uint32) (string, error) {
	img, err := png.Decode(bytes.NewReader(pngData))
	if err != nil {
		return "", fmt.Errorf("decode png: %w", err)
	}
	return b.Prepare(img, id)
}

// Place writes each row of blocks at its own cursor position.
func (b *BlocksProtocol) Place(id uint32, row, col, _, _ int) string {
	b.mu.RLock()
	rows, ok := b.images[id]
	b.mu.RUnlock()
	if !ok {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("\x1b[s")
	for i, line := range rows {
		fmt.Fprintf(&sb, "\x1b[%d;%dH%s", row+i, col, line)
	}
	sb.WriteString("\x1b[u")
	return sb.String()
}

func (b *BlocksProtocol) Delete(id uint32) string {
	b.mu.Lock()
	delete(b.images, id)
	b.mu.Unlock()
	return ""
}

// TargetPixelSize maps one pixel to a column and two pixels to a row.
func (b *BlocksProtocol) TargetPixelSize(widthCells, heightCells int) (pixelWidth, pixelHeight int) {
	return widthCells, heightCells * 2
}

// encodeBlocks turns img into terminal rows. An odd last pixel row is paired
// with the default background.
func encodeBlocks(img image.Image) []string {
	bounds := img.Bounds()
	var rows []string
	for y := bounds.Min.Y; y < bounds.Max.Y; y += 2 {
		var sb strings.Builder
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			top, _ := colorful.MakeColor(img.At(x, y))
			r, g, bl := top.RGB255()
			fmt.Fprintf(&sb, "\x1b[38;2;%d;%d;%dm", r, g, bl)
			if y+1 < bounds.Max.Y {
				bottom, _ := colorful.MakeColor(img.At(x, y+1))
				r, g, bl = bottom.RGB255()
				fmt.Fprintf(&sb, "\x1b[48;2;%d;%d;%dm", r, g, bl)
			} else {
				sb.WriteString("\x1b[49m")
			}
			sb.WriteString(upperHalf)
		}
		sb.WriteString("\x1b[0m")
		rows = append(rows, sb.String())
	}
	return rows
}
