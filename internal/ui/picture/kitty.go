package picture

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"strings"

	"github.com/llehouerou/nerdcli/internal/ui/screen"
)

// Kitty graphics protocol framing.
const (
	escStart = "\x1b_G"
	escEnd   = "\x1b\\"

	// Payloads are sent in base64 chunks of at most this size.
	chunkSize = 4096
)

// KittyProtocol transmits PNG data once and places it by image ID.
type KittyProtocol struct{}

// NewKittyProtocol returns a Kitty protocol.
func NewKittyProtocol() *KittyProtocol {
	return &KittyProtocol{}
}

func (k *KittyProtocol) Prepare(img image.Image, id uint32) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("encode png: %w", err)
	}
	return k.PrepareFromPNG(buf.Bytes(), id)
}

// PrepareFromPNG returns the transmit command (a=t, f=100) for pngData.
// Only the first chunk carries the image parameters; m=1 marks chunks that
// are followed by more.
func (k *KittyProtocol) PrepareFromPNG(pngData []byte, id uint32) (string, error) {
	encoded := base64.StdEncoding.EncodeToString(pngData)

	var sb strings.Builder
	for start := 0; ; start += chunkSize {
		end := min(start+chunkSize, len(encoded))
		more := 0
		if end < len(encoded) {
			more = 1
		}

		sb.WriteString(escStart)
		if start == 0 {
			fmt.Fprintf(&sb, "a=t,f=100,i=%d,q=2,m=%d;", id, more)
		} else {
			fmt.Fprintf(&sb, "m=%d;", more)
		}
		sb.WriteString(encoded[start:end])
		sb.WriteString(escEnd)

		if end >= len(encoded) {
			break
		}
	}
	return sb.String(), nil
}

// Place positions the cursor and displays the image scaled to width x height
// cells. The cursor is saved and restored around it.
func (k *KittyProtocol) Place(id uint32, row, col, width, height int) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "\x1b[s\x1b[%d;%dH", row, col)
	fmt.Fprintf(&sb, "%sa=p,i=%d,p=1,c=%d,r=%d,C=1,q=2;%s", escStart, id, width, height, escEnd)
	sb.WriteString("\x1b[u")
	return sb.String()
}

// Delete removes the image and all its placements from terminal memory.
func (k *KittyProtocol) Delete(id uint32) string {
	return fmt.Sprintf("%sa=d,d=I,i=%d,q=2;%s", escStart, id, escEnd)
}

// TargetPixelSize assumes the standard cell size: the terminal scales the
// picture into its cells anyway.
func (k *KittyProtocol) TargetPixelSize(widthCells, heightCells int) (pixelWidth, pixelHeight int) {
	return widthCells * screen.DefaultCellWidth, heightCells * screen.DefaultCellHeight
}
