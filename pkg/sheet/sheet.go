// Package sheet renders a contact sheet of a roll's scanned frames.
package sheet

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/anthonynsimon/bild/transform"
	"k8s.io/klog/v2"
)

// Opts control the contact sheet layout.
type Opts struct {
	Columns   int
	CellWidth int
	Gutter    int
	Quality   int
}

var defaultOpts = Opts{Columns: 6, CellWidth: 320, Gutter: 8, Quality: 85}

var background = color.RGBA{R: 24, G: 24, B: 24, A: 255}

// Render resizes each image to the cell width and composites them row-major
// onto a dark canvas, saved as JPEG.
func Render(images []string, outPath string, o Opts) error {
	if len(images) == 0 {
		return fmt.Errorf("no images to render")
	}

	if o.Columns == 0 {
		o.Columns = defaultOpts.Columns
	}
	if o.CellWidth == 0 {
		o.CellWidth = defaultOpts.CellWidth
	}
	if o.Gutter == 0 {
		o.Gutter = defaultOpts.Gutter
	}
	if o.Quality == 0 {
		o.Quality = defaultOpts.Quality
	}

	thumbs := make([]image.Image, 0, len(images))
	cellHeight := 0

	for _, p := range images {
		img, err := imgio.Open(p)
		if err != nil {
			return fmt.Errorf("imgio.Open %s: %w", p, err)
		}

		if img.Bounds().Dx() == 0 || img.Bounds().Dy() == 0 {
			return fmt.Errorf("empty image: %s", p)
		}

		scale := float64(img.Bounds().Dx()) / float64(o.CellWidth)
		y := int(float64(img.Bounds().Dy()) / scale)

		t := transform.Resize(img, o.CellWidth, y, transform.Lanczos)
		thumbs = append(thumbs, t)
		if y > cellHeight {
			cellHeight = y
		}
	}

	cols := min(o.Columns, len(thumbs))
	rows := (len(thumbs) + cols - 1) / cols

	width := o.Gutter + cols*(o.CellWidth+o.Gutter)
	height := o.Gutter + rows*(cellHeight+o.Gutter)
	klog.Infof("rendering %d frames onto a %dx%d sheet (%d columns)", len(thumbs), width, height, cols)

	canvas := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)

	for i, t := range thumbs {
		x := o.Gutter + (i%cols)*(o.CellWidth+o.Gutter)
		y := o.Gutter + (i/cols)*(cellHeight+o.Gutter)

		// Center shorter thumbs vertically within the cell.
		y += (cellHeight - t.Bounds().Dy()) / 2

		r := image.Rect(x, y, x+t.Bounds().Dx(), y+t.Bounds().Dy())
		draw.Draw(canvas, r, t, t.Bounds().Min, draw.Src)
	}

	if err := imgio.Save(outPath, canvas, imgio.JPEGEncoder(o.Quality)); err != nil {
		return fmt.Errorf("save: %w", err)
	}

	return nil
}
