package sketch

// RenderOption configures Surface.Render.
//
// Example:
//
//	stats, err := s.Render(scene,
//	    sketch.WithRotation(sketch.Rotation{Yaw: math.Pi / 6}),
//	    sketch.WithMarkerRadius(0.005))
type RenderOption func(*renderOptions)

// renderOptions holds optional configuration for a render pass.
type renderOptions struct {
	camera   Camera
	rotation *Rotation
	radius   float64
}

// defaultRenderOptions returns the default render options.
func defaultRenderOptions() renderOptions {
	return renderOptions{
		camera: DefaultCamera(),
		radius: DefaultMarkerRadius,
	}
}

// WithCamera replaces the camera used for 3D scenes.
func WithCamera(cam Camera) RenderOption {
	return func(o *renderOptions) {
		o.camera = cam
	}
}

// WithRotation sets the rotation for 3D scenes. It takes precedence over
// Scene.Rotation.
func WithRotation(r Rotation) RenderOption {
	return func(o *renderOptions) {
		o.rotation = &r
	}
}

// WithMarkerRadius sets the half-extent of the ellipse drawn for each
// projected point. Non-positive values draw single-pixel markers.
func WithMarkerRadius(radius float64) RenderOption {
	return func(o *renderOptions) {
		o.radius = max(radius, 0)
	}
}
