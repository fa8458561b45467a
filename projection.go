package sketch

// Rotation is a Tait–Bryan rotation in radians. The zero value is no
// rotation.
type Rotation struct {
	Pitch float64 // about x
	Yaw   float64 // about y
	Roll  float64 // about z
}

// Matrix returns Rz(roll)·Ry(yaw)·Rx(pitch): applied to a point, the x
// rotation acts first, then y, then z.
func (r Rotation) Matrix() Mat3 {
	return RotateZ(r.Roll).Multiply(RotateY(r.Yaw)).Multiply(RotateX(r.Pitch))
}

// Camera is a pinhole camera looking down +z.
type Camera struct {
	// Origin is the object-space center, subtracted before rotating.
	Origin Vec3

	// Location is the camera position in rotated space.
	Location Vec3

	// Focal is the distance from the camera to the display plane.
	Focal float64

	// HalfWidth is the half-extent of the visible part of the display
	// plane. Projected coordinates are divided by it and shifted by 0.5.
	HalfWidth float64
}

// DefaultCamera returns the camera used when none is configured: objects
// centered at (0.5, 0.5, 0.5), camera at (0, 0, -2.5), display plane at
// distance 1 with half-width 0.5.
func DefaultCamera() Camera {
	return Camera{
		Origin:    Vec3{X: 0.5, Y: 0.5, Z: 0.5},
		Location:  Vec3{X: 0, Y: 0, Z: -2.5},
		Focal:     1,
		HalfWidth: 0.5,
	}
}

// Projection is the result of projecting a point set.
type Projection struct {
	// Points holds the projected points in normalized surface coordinates.
	Points []Point

	// Index maps each entry of Points to its position in the input.
	Index []int

	// Skipped counts input points that could not be projected because
	// they lie on the camera plane (z = 0 relative to the camera) or
	// projected to a non-finite position.
	Skipped int
}

// Project maps points to normalized surface coordinates. The steps are,
// in order: subtract cam.Origin, rotate by rot, subtract cam.Location,
// perspective-divide onto the display plane, then scale by 1/HalfWidth
// and shift by 0.5. The input slice is not modified.
func (cam Camera) Project(points []Vec3, rot Rotation) Projection {
	m := rot.Matrix()
	proj := Projection{
		Points: make([]Point, 0, len(points)),
		Index:  make([]int, 0, len(points)),
	}

	for i, p := range points {
		q := m.Apply(p.Sub(cam.Origin)).Sub(cam.Location)
		if q.Z == 0 {
			proj.Skipped++
			continue
		}
		k := cam.Focal / q.Z
		pt := Point{
			X: k*q.X/cam.HalfWidth + 0.5,
			Y: k*q.Y/cam.HalfWidth + 0.5,
		}
		if !finite(pt.X) || !finite(pt.Y) {
			proj.Skipped++
			continue
		}
		proj.Points = append(proj.Points, pt)
		proj.Index = append(proj.Index, i)
	}
	return proj
}

// DefaultMarkerRadius is the half-extent of the box drawn around each
// projected point.
const DefaultMarkerRadius = 0.01

// DrawPoints projects points through cam and draws each as a small
// ellipse with the given half-extent. It returns the number of points
// that were skipped.
func (s *Surface) DrawPoints(points []Vec3, c Color, rot Rotation, cam Camera, radius float64) int {
	proj := cam.Project(points, rot)
	for _, p := range proj.Points {
		s.DrawEllipse(Ellipse2D{
			X0: p.X - radius,
			Y0: p.Y - radius,
			X1: p.X + radius,
			Y1: p.Y + radius,
		}, c)
	}

	if proj.Skipped > 0 {
		Logger().Debug("sketch: skipped singular points",
			"skipped", proj.Skipped, "total", len(points))
		if len(proj.Points) == 0 {
			Logger().Warn("sketch: no point in cloud could be projected",
				"total", len(points))
		}
	}
	return proj.Skipped
}
