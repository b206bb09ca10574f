// Package picture draws an image file into the terminal with the Kitty,
// Sixel or half-block protocol.
package picture

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"  // GIF decoder
	_ "image/jpeg" // JPEG decoder
	"image/png"
	"io"
	"os"
	"sync/atomic"

	"github.com/nfnt/resize"
	_ "golang.org/x/image/bmp"  // BMP decoder
	_ "golang.org/x/image/tiff" // TIFF decoder
	_ "golang.org/x/image/webp" // WebP decoder

	"github.com/llehouerou/nerdcli/internal/ui/layout"
)

// Renderer scales pictures to their placement and writes them out.
type Renderer struct {
	protocol ImageProtocol
	cache    *Cache
	nextID   atomic.Uint32
}

// NewRenderer creates a renderer. A nil protocol draws nothing; a nil cache
// disables caching.
func NewRenderer(protocol ImageProtocol, cache *Cache) *Renderer {
	return &Renderer{protocol: protocol, cache: cache}
}

// Protocol returns the protocol in use, nil when pictures are disabled.
func (r *Renderer) Protocol() ImageProtocol {
	return r.protocol
}

// Draw renders the picture at path with the width and top-left cell of
// placed. The row count follows from aspect. Cell coordinates are 0-based;
// negative ones are clamped to the first row or column.
func (r *Renderer) Draw(w io.Writer, path string, placed layout.PlacedImage, aspect layout.Aspect) error {
	if r.protocol == nil || placed.Width <= 0 {
		return nil
	}

	rows := layout.ImageRows(placed.Width, aspect)
	if rows <= 0 {
		return nil
	}

	id := r.nextID.Add(1)
	// Delete drops any stored data for id, so it must run before prepare.
	del := r.protocol.Delete(id)
	prepared, err := r.prepare(path, id, placed.Width, rows)
	if err != nil {
		return err
	}

	row := max(placed.Y, 0) + 1
	col := max(placed.X, 0) + 1
	out := del + prepared + r.protocol.Place(id, row, col, placed.Width, rows)
	if _, err := io.WriteString(w, out); err != nil {
		return fmt.Errorf("write picture: %w", err)
	}
	return nil
}

// prepare loads the scaled picture from the cache, or decodes and scales
// the original and caches the result.
func (r *Renderer) prepare(path string, id uint32, widthCells, heightCells int) (string, error) {
	pw, ph := r.protocol.TargetPixelSize(widthCells, heightCells)

	info, err := os.Stat(path)
	if err != nil {
		return "", err
	}
	key := Key{Path: path, ModTime: info.ModTime(), Width: pw, Height: ph}

	if data := r.cache.Get(key); data != nil {
		if cmd, err := r.protocol.PrepareFromPNG(data, id); err == nil {
			return cmd, nil
		}
	}

	img, err := decode(path)
	if err != nil {
		return "", err
	}

	scaled := fit(img, pw, ph)

	if r.cache != nil {
		var buf bytes.Buffer
		if err := png.Encode(&buf, scaled); err == nil {
			_ = r.cache.Put(key, buf.Bytes()) //nolint:errcheck // cache is best-effort
		}
	}

	return r.protocol.Prepare(scaled, id)
}

// fit scales img up or down to the largest size inside pw x ph that keeps
// its aspect ratio.
func fit(img image.Image, pw, ph int) image.Image {
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 || pw <= 0 || ph <= 0 {
		return img
	}

	scale := min(float64(pw)/float64(b.Dx()), float64(ph)/float64(b.Dy()))
	w := max(int(float64(b.Dx())*scale), 1)
	h := max(int(float64(b.Dy())*scale), 1)
	if w == b.Dx() && h == b.Dy() {
		return img
	}
	//nolint:gosec // w and h are at least 1
	return resize.Resize(uint(w), uint(h), img, resize.Lanczos3)
}

func decode(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}
