package matting

import (
	"fmt"
	"image"
	"image/color"
)

// Raster is a dense W*H image with a flat, row-major RGBA byte buffer.
//
// Pix holds 4 bytes per pixel (R, G, B, A) with the pixel at (x, y) starting
// at offset (y*Width+x)*4. The pipeline treats its input raster as immutable
// and returns a freshly allocated raster as output.
type Raster struct {
	Width  int
	Height int
	Pix    []uint8
}

// NewRaster allocates a zeroed raster of the given dimensions.
func NewRaster(width, height int) *Raster {
	return &Raster{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height*4),
	}
}

// FromImage converts any image.Image into a Raster.
//
// Color values are reduced from Go's native 16-bit representation to 8-bit
// by right-shifting, matching how the rest of the pipeline reads channels.
// The raster origin is the image's Bounds().Min, so sub-images convert
// cleanly.
func FromImage(img image.Image) *Raster {
	bounds := img.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()
	r := NewRaster(w, h)

	// Fast path for NRGBA with a standard stride layout.
	if n, ok := img.(*image.NRGBA); ok && n.Stride == w*4 && bounds.Min == image.Pt(0, 0) {
		copy(r.Pix, n.Pix)
		return r
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			cr, cg, cb, ca := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			off := (y*w + x) * 4
			r.Pix[off] = uint8(cr >> 8)
			r.Pix[off+1] = uint8(cg >> 8)
			r.Pix[off+2] = uint8(cb >> 8)
			r.Pix[off+3] = uint8(ca >> 8)
		}
	}
	return r
}

// ToNRGBA converts the raster back into a standard library image, suitable
// for PNG encoding. Alpha is stored non-premultiplied, which preserves the
// RGB values of semi-transparent shadow pixels exactly.
func (r *Raster) ToNRGBA() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, r.Width, r.Height))
	copy(img.Pix, r.Pix)
	return img
}

// At returns the RGBA bytes of the pixel at (x, y). It panics if the
// coordinates are out of range, like a slice index would.
func (r *Raster) At(x, y int) (uint8, uint8, uint8, uint8) {
	off := (y*r.Width + x) * 4
	return r.Pix[off], r.Pix[off+1], r.Pix[off+2], r.Pix[off+3]
}

// SetRGBA writes the pixel at (x, y).
func (r *Raster) SetRGBA(x, y int, c color.NRGBA) {
	off := (y*r.Width + x) * 4
	r.Pix[off] = c.R
	r.Pix[off+1] = c.G
	r.Pix[off+2] = c.B
	r.Pix[off+3] = c.A
}

// validate checks that the raster can be fed to the pipeline.
func (r *Raster) validate() error {
	if r == nil {
		return fmt.Errorf("invalid input: nil raster")
	}
	if r.Width <= 0 || r.Height <= 0 {
		return fmt.Errorf("invalid input: empty raster (%dx%d)", r.Width, r.Height)
	}
	if want := r.Width * r.Height * 4; len(r.Pix) != want {
		return fmt.Errorf("invalid input: pixel buffer length %d, want %d", len(r.Pix), want)
	}
	return nil
}
