package sheet

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestImage(t *testing.T, path string, w, h int) {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 5), G: uint8(y * 5), B: 128, A: 255})
		}
	}

	require.NoError(t, imgio.Save(path, img, imgio.JPEGEncoder(90)))
}

func TestRender(t *testing.T) {
	dir := t.TempDir()
	images := []string{}
	for _, name := range []string{"a.jpg", "b.jpg", "c.jpg"} {
		p := filepath.Join(dir, name)
		writeTestImage(t, p, 40, 30)
		images = append(images, p)
	}

	out := filepath.Join(dir, "sheet.jpg")
	opts := Opts{Columns: 2, CellWidth: 20, Gutter: 4, Quality: 80}
	require.NoError(t, Render(images, out, opts))

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	require.NoError(t, err)

	// 2 columns of 20px cells, 2 rows of 15px cells, 4px gutters all around.
	assert.Equal(t, 4+2*(20+4), cfg.Width)
	assert.Equal(t, 4+2*(15+4), cfg.Height)
}

func TestRenderSingleColumnClamp(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "only.jpg")
	writeTestImage(t, p, 40, 30)

	out := filepath.Join(dir, "sheet.jpg")
	require.NoError(t, Render([]string{p}, out, Opts{Columns: 6, CellWidth: 20, Gutter: 4}))

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, 4+1*(20+4), cfg.Width)
}

func TestRenderNoImages(t *testing.T) {
	assert.Error(t, Render(nil, "out.jpg", Opts{}))
}

func TestRenderMissingImage(t *testing.T) {
	assert.Error(t, Render([]string{"nope.jpg"}, "out.jpg", Opts{}))
}
