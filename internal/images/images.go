// Package images finds pictures on disk and reads their pixel size.
package images

import (
	"fmt"
	"image"
	_ "image/gif"  // GIF decoder
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder
	"os"

	_ "golang.org/x/image/bmp"  // BMP decoder
	_ "golang.org/x/image/tiff" // TIFF decoder
	_ "golang.org/x/image/webp" // WebP decoder

	"github.com/llehouerou/nerdcli/internal/scan"
	"github.com/llehouerou/nerdcli/internal/ui/layout"
)

// ListFiles returns every file below root whose extension is one of
// imageTypes, honoring includeFolders for subdirectories.
func ListFiles(root string, imageTypes, includeFolders []string) ([]string, error) {
	files, err := scan.Files(root, includeFolders, func(path string) bool {
		return scan.HasExtension(path, imageTypes)
	})
	if err != nil {
		return nil, fmt.Errorf("list images in %s: %w", root, err)
	}
	return files, nil
}

// Dimensions returns the pixel size of the picture at path.
// Unreadable or undecodable files yield a zero Aspect.
func Dimensions(path string) layout.Aspect {
	aspect, err := ReadDimensions(path)
	if err != nil {
		return layout.Aspect{}
	}
	return aspect
}

// ReadDimensions is Dimensions with the failure reported.
func ReadDimensions(path string) (layout.Aspect, error) {
	f, err := os.Open(path)
	if err != nil {
		return layout.Aspect{}, err
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return layout.Aspect{}, fmt.Errorf("decode %s: %w", path, err)
	}
	return layout.Aspect{Width: cfg.Width, Height: cfg.Height}, nil
}
