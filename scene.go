package sketch

import (
	"fmt"
)

// ShapeKind identifies the variant held by a Shape2D.
type ShapeKind uint8

const (
	ShapeLine ShapeKind = iota + 1
	ShapeEllipse
)

func (k ShapeKind) String() string {
	switch k {
	case ShapeLine:
		return "line"
	case ShapeEllipse:
		return "ellipse"
	default:
		return fmt.Sprintf("ShapeKind(%d)", uint8(k))
	}
}

// Shape2D is a 2D primitive. Kind selects how the four box coordinates are
// read: as the endpoints of a line or as the bounding box of an ellipse.
type Shape2D struct {
	Kind           ShapeKind
	X0, Y0, X1, Y1 float64
}

// Line returns a line shape from (x0, y0) to (x1, y1).
func Line(x0, y0, x1, y1 float64) Shape2D {
	return Shape2D{Kind: ShapeLine, X0: x0, Y0: y0, X1: x1, Y1: y1}
}

// Ellipse returns an ellipse shape inscribed in the box (x0, y0)-(x1, y1).
func Ellipse(x0, y0, x1, y1 float64) Shape2D {
	return Shape2D{Kind: ShapeEllipse, X0: x0, Y0: y0, X1: x1, Y1: y1}
}

// Line2D returns the shape's coordinates as a line segment.
func (sh Shape2D) Line2D() Line2D {
	return Line2D{X0: sh.X0, Y0: sh.Y0, X1: sh.X1, Y1: sh.Y1}
}

// Ellipse2D returns the shape's coordinates as an ellipse box.
func (sh Shape2D) Ellipse2D() Ellipse2D {
	return Ellipse2D{X0: sh.X0, Y0: sh.Y0, X1: sh.X1, Y1: sh.Y1}
}

// Item2D is a 2D shape with its color.
type Item2D struct {
	Shape Shape2D
	Color Color
}

// PointCloud is a set of 3D points drawn in a single color.
type PointCloud struct {
	Points []Vec3
	Color  Color
}

// SceneKind identifies the variant held by a Scene.
type SceneKind uint8

const (
	Scene2D SceneKind = iota + 1
	Scene3D
)

func (k SceneKind) String() string {
	switch k {
	case Scene2D:
		return "2d"
	case Scene3D:
		return "3d"
	default:
		return fmt.Sprintf("SceneKind(%d)", uint8(k))
	}
}

// Scene is either a list of 2D shapes or a list of 3D point clouds.
// Shapes is read for Scene2D, Clouds and Rotation for Scene3D.
type Scene struct {
	Kind   SceneKind
	Shapes []Item2D
	Clouds []PointCloud

	// Rotation applies to every cloud of a 3D scene. Nil means no
	// rotation.
	Rotation *Rotation
}

// NewScene2D returns a 2D scene.
func NewScene2D(items ...Item2D) Scene {
	return Scene{Kind: Scene2D, Shapes: items}
}

// NewScene3D returns a 3D scene. rot may be nil.
func NewScene3D(rot *Rotation, clouds ...PointCloud) Scene {
	return Scene{Kind: Scene3D, Clouds: clouds, Rotation: rot}
}

// RenderStats summarizes a render pass.
type RenderStats struct {
	Lines    int
	Ellipses int
	Points   int // projected points drawn
	Skipped  int // points that could not be projected
}

// Render draws every primitive of scene onto the surface in order.
//
// The scene is validated before anything is drawn: an unknown scene or
// shape kind, or a scene carrying both shapes and clouds, leaves the
// surface untouched and returns an error.
func (s *Surface) Render(scene Scene, opts ...RenderOption) (RenderStats, error) {
	o := defaultRenderOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if err := scene.validate(); err != nil {
		return RenderStats{}, err
	}

	var stats RenderStats
	switch scene.Kind {
	case Scene2D:
		for _, it := range scene.Shapes {
			switch it.Shape.Kind {
			case ShapeLine:
				s.DrawLine(it.Shape.Line2D(), it.Color)
				stats.Lines++
			case ShapeEllipse:
				s.DrawEllipse(it.Shape.Ellipse2D(), it.Color)
				stats.Ellipses++
			}
		}

	case Scene3D:
		var rot Rotation
		switch {
		case o.rotation != nil:
			rot = *o.rotation
		case scene.Rotation != nil:
			rot = *scene.Rotation
		}
		for _, cloud := range scene.Clouds {
			skipped := s.DrawPoints(cloud.Points, cloud.Color, rot, o.camera, o.radius)
			stats.Points += len(cloud.Points) - skipped
			stats.Skipped += skipped
		}
	}

	Logger().Debug("sketch: rendered scene",
		"kind", scene.Kind.String(),
		"lines", stats.Lines, "ellipses", stats.Ellipses,
		"points", stats.Points, "skipped", stats.Skipped)
	return stats, nil
}

func (sc Scene) validate() error {
	switch sc.Kind {
	case Scene2D:
		if len(sc.Clouds) > 0 {
			return ErrMixedScene
		}
		for i, it := range sc.Shapes {
			switch it.Shape.Kind {
			case ShapeLine, ShapeEllipse:
			default:
				return fmt.Errorf("%w: shape %d has kind %v", ErrUnknownShape, i, it.Shape.Kind)
			}
		}
		return nil
	case Scene3D:
		if len(sc.Shapes) > 0 {
			return ErrMixedScene
		}
		return nil
	default:
		return fmt.Errorf("%w: %v", ErrUnknownScene, sc.Kind)
	}
}
