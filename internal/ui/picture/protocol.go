package picture

import "image"

// ImageProtocol abstracts how a picture reaches the terminal.
type ImageProtocol interface {
	// Prepare encodes the image and returns any one-time terminal command.
	// Kitty transmits to terminal memory; Sixel and blocks encode and keep
	// the result until Place.
	Prepare(img image.Image, id uint32) (string, error)

	// PrepareFromPNG is Prepare from already encoded PNG data.
	PrepareFromPNG(pngData []byte, id uint32) (string, error)

	// Place returns the sequence drawing the image with its top-left corner
	// at (row, col), both 1-based. width and height are in cells.
	Place(id uint32, row, col, width, height int) string

	// Delete forgets the image. Kitty also drops it from terminal memory.
	Delete(id uint32) string

	// TargetPixelSize returns the pixel box to resize into for a picture
	// covering the given cells.
	TargetPixelSize(widthCells, heightCells int) (pixelWidth, pixelHeight int)
}

// Protocol names accepted by NERDCLI_IMAGE_PROTOCOL.
const (
	NameKitty  = "kitty"
	NameSixel  = "sixel"
	NameBlocks = "blocks"
	NameNone   = "none"
)

// Name returns the protocol name of p.
func Name(p ImageProtocol) string {
	switch p.(type) {
	case *KittyProtocol:
		return NameKitty
	case *SixelProtocol:
		return NameSixel
	case *BlocksProtocol:
		return NameBlocks
	default:
		return NameNone
	}
}
