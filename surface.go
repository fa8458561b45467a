package sketch

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/gogpu/sketch/internal/blend"
)

// Surface is a fixed-size RGBA pixel buffer addressed in normalized
// coordinates.
//
// Normalized coordinates place (0, 0) at the bottom-left and (1, 1) at the
// top-right of the drawing area. The backing storage is row-major with
// row 0 at the top, so Write and WriteBlended flip the y axis.
//
// A Surface is not safe for concurrent use.
type Surface struct {
	width  int
	height int
	pix    []uint8 // RGBA, 4 bytes per pixel
}

// NewSurface allocates a width×height surface with every pixel set to
// background. It returns ErrInvalidDimensions if either dimension is not
// positive.
func NewSurface(width, height int, background Color) (*Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: width=%d, height=%d (both must be > 0)",
			ErrInvalidDimensions, width, height)
	}
	if width > math.MaxInt32/4/height {
		return nil, fmt.Errorf("%w: %dx%d is too large", ErrInvalidDimensions, width, height)
	}

	s := &Surface{
		width:  width,
		height: height,
		pix:    make([]uint8, width*height*4),
	}
	s.Fill(background)
	return s, nil
}

// Width returns the width of the surface in pixels.
func (s *Surface) Width() int {
	return s.width
}

// Height returns the height of the surface in pixels.
func (s *Surface) Height() int {
	return s.height
}

// Pix returns the raw pixel data: RGBA, row-major, row 0 at the top.
func (s *Surface) Pix() []uint8 {
	return s.pix
}

// Fill sets every pixel to c.
func (s *Surface) Fill(c Color) {
	for i := 0; i < len(s.pix); i += 4 {
		s.pix[i+0] = c.R
		s.pix[i+1] = c.G
		s.pix[i+2] = c.B
		s.pix[i+3] = c.A
	}
}

// device maps normalized coordinates to a pixel index. ok is false when
// the rounded position falls outside the buffer, which happens for
// coordinates outside [0, 1] and for the far edge itself (x = 1 rounds to
// column width).
func (s *Surface) device(x, y float64) (px, py int, ok bool) {
	fx := math.Round(x * float64(s.width))
	fy := math.Round((1 - y) * float64(s.height))
	// Written so that NaN fails the comparisons.
	if !(fx >= 0 && fx < float64(s.width) && fy >= 0 && fy < float64(s.height)) {
		return 0, 0, false
	}
	return int(fx), int(fy), true
}

// Write overwrites the pixel at normalized coordinates (x, y) with c.
// Positions outside the surface are silently discarded.
func (s *Surface) Write(x, y float64, c Color) {
	if px, py, ok := s.device(x, y); ok {
		s.SetPixel(px, py, c)
	}
}

// WriteBlended composites c over the pixel at normalized coordinates
// (x, y) using c.A as the weight: out = c*a + existing*(1-a).
// Positions outside the surface are silently discarded.
func (s *Surface) WriteBlended(x, y float64, c Color) {
	if px, py, ok := s.device(x, y); ok {
		i := (py*s.width + px) * 4
		blend.Over(s.pix[i:i+4], c.R, c.G, c.B, c.A)
	}
}

// SetPixel sets the pixel at device position (px, py), row 0 at the top.
func (s *Surface) SetPixel(px, py int, c Color) {
	if px < 0 || px >= s.width || py < 0 || py >= s.height {
		return
	}
	i := (py*s.width + px) * 4
	s.pix[i+0] = c.R
	s.pix[i+1] = c.G
	s.pix[i+2] = c.B
	s.pix[i+3] = c.A
}

// Pixel returns the pixel at device position (px, py), row 0 at the top.
// Out-of-range positions return Transparent.
func (s *Surface) Pixel(px, py int) Color {
	if px < 0 || px >= s.width || py < 0 || py >= s.height {
		return Transparent
	}
	i := (py*s.width + px) * 4
	return Color{R: s.pix[i+0], G: s.pix[i+1], B: s.pix[i+2], A: s.pix[i+3]}
}

// Clone returns an independent copy of s.
func (s *Surface) Clone() *Surface {
	return &Surface{
		width:  s.width,
		height: s.height,
		pix:    bytes.Clone(s.pix),
	}
}

// Equal reports whether s and o have the same size and pixels.
func (s *Surface) Equal(o *Surface) bool {
	return s.width == o.width && s.height == o.height && bytes.Equal(s.pix, o.pix)
}

// ToImage copies the surface into an *image.NRGBA.
func (s *Surface) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, s.width, s.height))
	copy(img.Pix, s.pix)
	return img
}

// ToGray converts the surface to an 8-bit luma image. Alpha is ignored.
func (s *Surface) ToGray() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, s.width, s.height))
	for i, j := 0, 0; i < len(s.pix); i, j = i+4, j+1 {
		c := Color{R: s.pix[i], G: s.pix[i+1], B: s.pix[i+2]}
		img.Pix[j] = c.Luma()
	}
	return img
}

// At implements the image.Image interface.
func (s *Surface) At(x, y int) color.Color {
	return s.Pixel(x, y).NRGBA()
}

// Bounds implements the image.Image interface.
func (s *Surface) Bounds() image.Rectangle {
	return image.Rect(0, 0, s.width, s.height)
}

// ColorModel implements the image.Image interface.
func (s *Surface) ColorModel() color.Model {
	return color.NRGBAModel
}
