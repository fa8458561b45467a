package sketch

import (
	"math"
)

// Line2D is a line segment between two points in normalized coordinates.
type Line2D struct {
	X0, Y0, X1, Y1 float64
}

// PlotFunc receives one pixel write in normalized coordinates.
type PlotFunc func(x, y float64, c Color)

// fract returns the fractional part of x with the sign of x, so
// fract(-1.25) is -0.25.
func fract(x float64) float64 {
	_, f := math.Modf(x)
	return f
}

// rfpart returns 1 - fract(x).
func rfpart(x float64) float64 {
	return 1 - fract(x)
}

// coverageAlpha scales a coverage fraction to an alpha byte and modulates
// it by the stroke color's own alpha. Out-of-range coverage saturates.
func coverageAlpha(coverage float64, c Color) Color {
	v := math.Round(coverage * float64(c.A))
	switch {
	case !(v > 0):
		v = 0
	case v > 255:
		v = 255
	}
	c.A = uint8(v)
	return c
}

// DrawLine draws an antialiased line on the surface, compositing each
// pixel with WriteBlended.
func (s *Surface) DrawLine(l Line2D, c Color) {
	RasterizeLine(l, s.width, s.height, c, s.WriteBlended)
}

// RasterizeLine emits the pixel writes of Xiaolin Wu's antialiased line
// algorithm for l on a width×height grid. Every write carries c with its
// alpha replaced by the pixel's coverage times c.A.
//
// The segment is traversed along its major axis after transposing steep
// lines and ordering the endpoints left to right. Each endpoint produces
// a pair of pixels weighted by its horizontal coverage; the interior
// produces a pair per column for x in [xpxl1+1, xpxl2-1).
//
// Segments with non-finite endpoints are dropped.
func RasterizeLine(l Line2D, width, height int, c Color, plot PlotFunc) {
	w, h := float64(width), float64(height)
	x0, y0 := l.X0*w, l.Y0*h
	x1, y1 := l.X1*w, l.Y1*h

	if !finite(x0) || !finite(y0) || !finite(x1) || !finite(y1) {
		Logger().Debug("sketch: dropping line with non-finite endpoint",
			"x0", l.X0, "y0", l.Y0, "x1", l.X1, "y1", l.Y1)
		return
	}

	steep := math.Abs(y1-y0) > math.Abs(x1-x0)
	if steep {
		x0, y0 = y0, x0
		x1, y1 = y1, x1
	}
	if x0 > x1 {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
	}

	// Scale factors for mapping transposed device coordinates back to
	// normalized ones: the major axis was scaled by sx, the minor by sy.
	sx, sy := w, h
	if steep {
		sx, sy = h, w
	}
	emit := func(major, minor, coverage float64) {
		if steep {
			plot(minor/sy, major/sx, coverageAlpha(coverage, c))
		} else {
			plot(major/sx, minor/sy, coverageAlpha(coverage, c))
		}
	}

	dx := x1 - x0
	dy := y1 - y0
	gradient := dy / dx
	if dx == 0 {
		gradient = 1
	}

	// first endpoint
	xend := math.Floor(x0)
	yend := y0 + gradient*(xend-x0)
	xgap := rfpart(x0 + 0.5)
	xpxl1 := xend
	ypxl1 := math.Floor(yend)
	emit(xpxl1, ypxl1, rfpart(yend)*xgap)
	emit(xpxl1, ypxl1+1, fract(yend)*xgap)

	intery := yend + gradient

	// second endpoint
	xend = math.Floor(x1)
	yend = y1 + gradient*(xend-x1)
	xgap = fract(x1 + 0.5)
	xpxl2 := xend
	ypxl2 := math.Floor(yend)
	emit(xpxl2, ypxl2, rfpart(yend)*xgap)
	emit(xpxl2, ypxl2+1, fract(yend)*xgap)

	// Columns outside [-1, sx+1) can never land on the surface. Segments
	// starting further left fast-forward intery; segments inside the
	// surface iterate every column and accumulate intery step by step.
	x := xpxl1 + 1
	if x < -1 {
		intery += gradient * (-1 - x)
		x = -1
	}
	last := math.Min(xpxl2-1, sx+1)
	for ; x < last; x++ {
		fy := math.Floor(intery)
		emit(x, fy, rfpart(intery))
		emit(x, fy+1, fract(intery))
		intery += gradient
	}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
