// Package sketch rasterizes antialiased lines, ellipse outlines and
// projected 3D point clouds onto an RGBA surface.
//
// # Overview
//
// sketch is a small, deterministic CPU renderer. It needs no GPU and no
// window system: a render pass is a single synchronous loop over the
// primitives of a scene, and rendering the same scene twice into two fresh
// surfaces yields identical pixels.
//
// # Quick Start
//
//	import "github.com/gogpu/sketch"
//
//	s, err := sketch.NewSurface(512, 512, sketch.White)
//	if err != nil {
//	    return err
//	}
//
//	scene := sketch.NewScene2D(
//	    sketch.Item2D{Shape: sketch.Line(0.1, 0.2, 0.9, 0.7), Color: sketch.Black},
//	    sketch.Item2D{Shape: sketch.Ellipse(0.1, 0.1, 0.5, 0.9), Color: sketch.Black},
//	)
//	if _, err := s.Render(scene); err != nil {
//	    return err
//	}
//	return s.Save("line.png")
//
// # Coordinate System
//
// Primitives are given in normalized coordinates:
//   - (0, 0) is the bottom-left corner, (1, 1) the top-right
//   - a normalized x maps to pixel column round(x*width)
//   - a normalized y maps to pixel row round((1-y)*height), row 0 on top
//
// Writes that land outside the surface are discarded.
//
// # Primitives
//
//   - Lines use Xiaolin Wu's algorithm and are alpha-blended.
//   - Ellipses use the midpoint algorithm and overwrite pixels.
//   - 3D points are rotated, perspective-projected through a Camera and
//     drawn as small ellipses.
//
// # Concurrency
//
// A Surface must not be written by more than one goroutine at a time.
// Separate surfaces may be rendered in parallel.
package sketch
