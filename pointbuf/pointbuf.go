// Package pointbuf is the entry point for callers that hold point data as
// a flat array of doubles, typically across a foreign-function boundary.
//
// The buffer is validated once in NewView; everything after that works on
// an ordinary Go slice.
package pointbuf

import (
	"fmt"

	"github.com/gogpu/sketch"
)

// DefaultSize is the width and height of images produced by RenderFile.
const DefaultSize = 512

// DefaultPointColor is used by RenderFile when no color is given.
var DefaultPointColor = sketch.Black

// View is a validated, read-only view of 3*N doubles holding N points as
// consecutive (x, y, z) triples.
type View struct {
	data []float64
}

// NewView checks that buf holds exactly n points. A nil buffer is only
// accepted for n == 0.
func NewView(buf []float64, n int) (View, error) {
	switch {
	case n < 0:
		return View{}, fmt.Errorf("%w: negative point count %d", sketch.ErrInvalidBuffer, n)
	case buf == nil && n > 0:
		return View{}, fmt.Errorf("%w: nil buffer for %d points", sketch.ErrInvalidBuffer, n)
	case n > len(buf)/3 || len(buf) != 3*n:
		return View{}, fmt.Errorf("%w: %d values for %d points (want %d)",
			sketch.ErrInvalidBuffer, len(buf), n, 3*n)
	}
	return View{data: buf[:3*n:3*n]}, nil
}

// Len returns the number of points.
func (v View) Len() int {
	return len(v.data) / 3
}

// At returns point i.
func (v View) At(i int) sketch.Vec3 {
	return sketch.Vec3{X: v.data[3*i], Y: v.data[3*i+1], Z: v.data[3*i+2]}
}

// Points copies the view into a new slice.
func (v View) Points() []sketch.Vec3 {
	pts := make([]sketch.Vec3, v.Len())
	for i := range pts {
		pts[i] = v.At(i)
	}
	return pts
}

// Option configures RenderFile.
type Option func(*options)

type options struct {
	size       int
	background sketch.Color
	render     []sketch.RenderOption
}

// WithSize sets the width and height of the output image.
func WithSize(size int) Option {
	return func(o *options) {
		o.size = size
	}
}

// WithBackground sets the background color of the output image.
func WithBackground(c sketch.Color) Option {
	return func(o *options) {
		o.background = c
	}
}

// WithRenderOptions passes options through to Surface.Render.
func WithRenderOptions(opts ...sketch.RenderOption) Option {
	return func(o *options) {
		o.render = append(o.render, opts...)
	}
}

// RenderFile projects the points of v, draws them in color c (or
// DefaultPointColor when c is nil) on a white DefaultSize×DefaultSize
// surface and saves it to path.
func RenderFile(v View, c *sketch.Color, path string, opts ...Option) (sketch.RenderStats, error) {
	o := options{size: DefaultSize, background: sketch.White}
	for _, opt := range opts {
		opt(&o)
	}

	col := DefaultPointColor
	if c != nil {
		col = *c
	}

	s, err := sketch.NewSurface(o.size, o.size, o.background)
	if err != nil {
		return sketch.RenderStats{}, err
	}
	scene := sketch.NewScene3D(nil, sketch.PointCloud{Points: v.Points(), Color: col})
	stats, err := s.Render(scene, o.render...)
	if err != nil {
		return stats, err
	}
	return stats, s.Save(path)
}

// DemoScene returns the reference 2D scene: one line and one ellipse.
func DemoScene(c sketch.Color) sketch.Scene {
	return sketch.NewScene2D(
		sketch.Item2D{Shape: sketch.Line(0.1, 0.2, 0.9, 0.7), Color: c},
		sketch.Item2D{Shape: sketch.Ellipse(0.1, 0.1, 0.5, 0.9), Color: c},
	)
}

// RenderDemo renders DemoScene in black on a white DefaultSize×DefaultSize
// surface and saves it to path.
func RenderDemo(path string) error {
	s, err := sketch.NewSurface(DefaultSize, DefaultSize, sketch.White)
	if err != nil {
		return err
	}
	if _, err := s.Render(DemoScene(sketch.Black)); err != nil {
		return err
	}
	return s.Save(path)
}
