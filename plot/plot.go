// Package plot draws linedraw sequences onto images.
package plot

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"github.com/chewxy/math32"
	"github.com/nfnt/resize"
	"github.com/soypat/linedraw"
)

// Canvas draws cells onto an image. Cell (x, y) is pixel (x, y) of the
// image. Cells outside the image bounds are skipped.
type Canvas struct {
	img draw.Image
}

// NewCanvas returns a Canvas drawing onto img.
func NewCanvas(img draw.Image) *Canvas {
	return &Canvas{img: img}
}

// NewRGBA returns a Canvas over a new transparent w by h image.
func NewRGBA(w, h int) *Canvas {
	return NewCanvas(image.NewRGBA(image.Rect(0, 0, w, h)))
}

// Image returns the underlying image.
func (c *Canvas) Image() draw.Image { return c.img }

// Points sets every cell of it to col and returns the number of pixels set.
func (c *Canvas) Points(it linedraw.Line2, col color.Color) (n int) {
	bounds := c.img.Bounds()
	for p, ok := it.Next(); ok; p, ok = it.Next() {
		pt := image.Pt(p[0], p[1])
		if !pt.In(bounds) {
			continue
		}
		c.img.Set(pt.X, pt.Y, col)
		n++
	}
	return n
}

// Coverage blends col over each sample's pixel with an alpha proportional
// to the sample's coverage. It returns the number of pixels drawn.
func (c *Canvas) Coverage(it linedraw.Coverage, col color.Color) (n int) {
	bounds := c.img.Bounds()
	src := image.NewUniform(col)
	for s, ok := it.Next(); ok; s, ok = it.Next() {
		pt := image.Pt(s.P[0], s.P[1])
		if !pt.In(bounds) {
			continue
		}
		mask := image.NewUniform(color.Alpha{A: alpha(s.C)})
		r := image.Rectangle{Min: pt, Max: pt.Add(image.Pt(1, 1))}
		draw.DrawMask(c.img, r, src, image.Point{}, mask, image.Point{}, draw.Over)
		n++
	}
	return n
}

func alpha(coverage float64) uint8 {
	a := math32.Round(255 * float32(coverage))
	return uint8(math32.Max(0, math32.Min(255, a)))
}

// ScaleUp enlarges img by an integer factor with nearest neighbour
// sampling so every cell becomes a factor by factor block.
func ScaleUp(img image.Image, factor int) image.Image {
	if factor <= 1 {
		return img
	}
	b := img.Bounds()
	return resize.Resize(uint(b.Dx()*factor), uint(b.Dy()*factor), img, resize.NearestNeighbor)
}

// EncodePNG writes img to w in PNG format.
func EncodePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}
