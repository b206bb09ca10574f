package images

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/llehouerou/nerdcli/internal/ui/layout"
)

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := range w {
		img.Set(x, 0, color.RGBA{R: 255, A: 255})
	}

	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))
}

func TestListFiles(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "a.png"))
	touch(t, filepath.Join(root, "b.JPG"))
	touch(t, filepath.Join(root, "notes.txt"))
	touch(t, filepath.Join(root, "anime", "c.gif"))
	touch(t, filepath.Join(root, "memes", "d.png"))

	t.Run("filters by extension", func(t *testing.T) {
		files, err := ListFiles(root, []string{"png", "jpg", "gif"}, nil)
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{
			filepath.Join(root, "a.png"),
			filepath.Join(root, "b.JPG"),
			filepath.Join(root, "anime", "c.gif"),
			filepath.Join(root, "memes", "d.png"),
		}, files)
	})

	t.Run("honors include folders", func(t *testing.T) {
		files, err := ListFiles(root, []string{"png", "gif"}, []string{"anime"})
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{
			filepath.Join(root, "a.png"),
			filepath.Join(root, "anime", "c.gif"),
		}, files)
	})

	t.Run("no matching types", func(t *testing.T) {
		files, err := ListFiles(root, []string{"webp"}, nil)
		require.NoError(t, err)
		assert.Empty(t, files)
	})

	t.Run("missing root", func(t *testing.T) {
		_, err := ListFiles(filepath.Join(root, "absent"), []string{"png"}, nil)
		assert.Error(t, err)
	})
}

func TestDimensions(t *testing.T) {
	dir := t.TempDir()
	wide := filepath.Join(dir, "wide.png")
	writePNG(t, wide, 40, 20)

	assert.Equal(t, layout.Aspect{Width: 40, Height: 20}, Dimensions(wide))
	assert.InDelta(t, 0.5, Dimensions(wide).Ratio(), 1e-9)
}

func TestReadDimensions_OtherFormats(t *testing.T) {
	dir := t.TempDir()
	img := image.NewRGBA(image.Rect(0, 0, 30, 12))

	tests := []struct {
		name   string
		encode func(f *os.File) error
	}{
		{"picture.bmp", func(f *os.File) error { return bmp.Encode(f, img) }},
		{"picture.tiff", func(f *os.File) error { return tiff.Encode(f, img, nil) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name)
			f, err := os.Create(path)
			require.NoError(t, err)
			require.NoError(t, tt.encode(f))
			require.NoError(t, f.Close())

			got, err := ReadDimensions(path)
			require.NoError(t, err)
			assert.Equal(t, layout.Aspect{Width: 30, Height: 12}, got)
		})
	}
}

func TestDimensions_Unreadable(t *testing.T) {
	dir := t.TempDir()
	junk := filepath.Join(dir, "junk.png")
	touch(t, junk)

	assert.Equal(t, layout.Aspect{}, Dimensions(junk))
	assert.Equal(t, layout.Aspect{}, Dimensions(filepath.Join(dir, "absent.png")))

	_, err := ReadDimensions(junk)
	assert.Error(t, err)
}
