package sketch

import (
	"math"
)

// Ellipse2D is an axis-aligned ellipse described by its bounding box in
// normalized coordinates. The corners may be given in any order.
type Ellipse2D struct {
	X0, Y0, X1, Y1 float64
}

// maxEllipseExtent bounds the device-space size of an ellipse box so the
// integer error terms cannot overflow.
const maxEllipseExtent = 1 << 18

// DrawEllipse draws the outline of an ellipse on the surface, overwriting
// pixels with Write.
func (s *Surface) DrawEllipse(e Ellipse2D, c Color) {
	RasterizeEllipse(e, s.width, s.height, c, s.Write)
}

// RasterizeEllipse emits the pixel writes of the four-way symmetric
// midpoint ellipse algorithm for the box e on a width×height grid.
// The outline is not antialiased; every write carries c unchanged.
//
// Corners are rounded to device pixels first. A box with zero width or
// height degenerates to a line or a single point. Boxes that lie entirely
// off the grid, or exceed maxEllipseExtent pixels, emit nothing.
//
// See http://members.chello.at/~easyfilter/bresenham.html
func RasterizeEllipse(e Ellipse2D, width, height int, c Color, plot PlotFunc) {
	w, h := float64(width), float64(height)
	fx0, fy0 := math.Round(e.X0*w), math.Round(e.Y0*h)
	fx1, fy1 := math.Round(e.X1*w), math.Round(e.Y1*h)

	if !finite(fx0) || !finite(fy0) || !finite(fx1) || !finite(fy1) {
		Logger().Debug("sketch: dropping ellipse with non-finite box",
			"x0", e.X0, "y0", e.Y0, "x1", e.X1, "y1", e.Y1)
		return
	}
	// Writes stay within one pixel of the box.
	if math.Max(fx0, fx1) < -2 || math.Min(fx0, fx1) > w+2 ||
		math.Max(fy0, fy1) < -2 || math.Min(fy0, fy1) > h+2 {
		Logger().Debug("sketch: culling off-surface ellipse",
			"x0", e.X0, "y0", e.Y0, "x1", e.X1, "y1", e.Y1)
		return
	}
	if math.Abs(fx1-fx0) > maxEllipseExtent || math.Abs(fy1-fy0) > maxEllipseExtent {
		Logger().Debug("sketch: dropping oversized ellipse",
			"x0", e.X0, "y0", e.Y0, "x1", e.X1, "y1", e.Y1)
		return
	}

	x0, y0 := int64(fx0), int64(fy0)
	x1, y1 := int64(fx1), int64(fy1)

	set := func(x, y int64) {
		plot(float64(x)/w, float64(y)/h, c)
	}

	a := abs64(x1 - x0)
	b := abs64(y1 - y0)
	b1 := b & 1

	dx := 4 * (1 - a) * b * b
	dy := 4 * (b1 + 1) * a * a
	err := dx + dy + b1*a*a

	if x0 > x1 {
		x0 = x1
		x1 += a
	}
	if y0 > y1 {
		y0 = y1
	}
	// start on the middle row(s); odd heights get two
	y0 += (b + 1) / 2
	y1 = y0 - b1

	a *= 8 * a
	b1 = 8 * b * b

	for {
		set(x1, y0)
		set(x0, y0)
		set(x0, y1)
		set(x1, y1)

		e2 := 2 * err
		if e2 <= dy {
			y0++
			y1--
			dy += a
			err += dy
		}
		if e2 >= dx || 2*err > dy {
			x0++
			x1--
			dx += b1
			err += dx
		}
		if x0 > x1 {
			break
		}
	}

	// flat ellipses: finish the tips
	for y0-y1 < b {
		set(x0-1, y0)
		set(x1+1, y0)
		y0++
		set(x0-1, y1)
		set(x1+1, y1)
		y1--
	}
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
