package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"github.com/1broseidon/aura/internal/platform"
	"golang.org/x/image/vector"
)

// Raster is a software Surface backed by an RGBA image.
type Raster struct {
	bounds platform.Rect
	img    *image.RGBA
	z      *vector.Rasterizer
}

var _ Surface = (*Raster)(nil)

// NewRaster creates a transparent surface covering bounds.
func NewRaster(bounds platform.Rect) *Raster {
	w, h := max(bounds.Width, 0), max(bounds.Height, 0)
	return &Raster{
		bounds: bounds,
		img:    image.NewRGBA(image.Rect(0, 0, w, h)),
		z:      vector.NewRasterizer(w, h),
	}
}

func (r *Raster) Bounds() platform.Rect {
	return r.bounds
}

// Image returns the backing image.
func (r *Raster) Image() *image.RGBA {
	return r.img
}

// Clear resets every pixel to transparent.
func (r *Raster) Clear() {
	draw.Draw(r.img, r.img.Bounds(), image.Transparent, image.Point{}, draw.Src)
}

func (r *Raster) FillRect(rect platform.Rect, c color.NRGBA) {
	dst := image.Rect(rect.X, rect.Y, rect.X+rect.Width, rect.Y+rect.Height).Intersect(r.img.Bounds())
	if dst.Empty() {
		return
	}
	draw.Draw(r.img, dst, image.NewUniform(c), image.Point{}, draw.Over)
}

// StrokeRect fills the ring between the rect grown and shrunk by half the
// width. Outer corners are rounded; the inner contour winds the other way
// so the rasterizer leaves the middle empty.
func (r *Raster) StrokeRect(rect platform.Rect, width float64, c color.NRGBA) {
	if width <= 0 || rect.Empty() {
		return
	}
	b := r.img.Bounds()
	if b.Empty() {
		return
	}
	r.z.Reset(b.Dx(), b.Dy())
	r.z.DrawOp = draw.Over

	half := float32(width / 2)
	x0, y0 := float32(rect.X), float32(rect.Y)
	x1, y1 := x0+float32(rect.Width), y0+float32(rect.Height)

	// Outer contour, clockwise.
	ox0, oy0, ox1, oy1 := x0-half, y0-half, x1+half, y1+half
	r.z.MoveTo(ox0+half, oy0)
	r.z.LineTo(ox1-half, oy0)
	r.z.QuadTo(ox1, oy0, ox1, oy0+half)
	r.z.LineTo(ox1, oy1-half)
	r.z.QuadTo(ox1, oy1, ox1-half, oy1)
	r.z.LineTo(ox0+half, oy1)
	r.z.QuadTo(ox0, oy1, ox0, oy1-half)
	r.z.LineTo(ox0, oy0+half)
	r.z.QuadTo(ox0, oy0, ox0+half, oy0)
	r.z.ClosePath()

	// Inner contour, counter-clockwise.
	ix0, iy0, ix1, iy1 := x0+half, y0+half, x1-half, y1-half
	if ix1 > ix0 && iy1 > iy0 {
		r.z.MoveTo(ix0, iy0)
		r.z.LineTo(ix0, iy1)
		r.z.LineTo(ix1, iy1)
		r.z.LineTo(ix1, iy0)
		r.z.ClosePath()
	}

	r.z.Draw(r.img, b, image.NewUniform(c), image.Point{})
}

// WritePNG encodes the surface.
func (r *Raster) WritePNG(w io.Writer) error {
	if err := png.Encode(w, r.img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}
