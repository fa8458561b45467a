package sketch

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimensions is returned when a surface is created with a
	// non-positive width or height.
	ErrInvalidDimensions = errors.New("sketch: invalid surface dimensions")

	// ErrInvalidBuffer is returned when a raw point buffer is nil or its
	// length does not match the declared point count.
	ErrInvalidBuffer = errors.New("sketch: invalid point buffer")

	// ErrUnknownFormat is returned when no image codec matches the
	// requested format or file extension.
	ErrUnknownFormat = errors.New("sketch: unknown image format")

	// ErrUnknownShape is returned for a Shape2D with an unrecognized kind.
	ErrUnknownShape = errors.New("sketch: unknown shape kind")

	// ErrUnknownScene is returned for a Scene with an unrecognized kind.
	ErrUnknownScene = errors.New("sketch: unknown scene kind")

	// ErrMixedScene is returned when a scene carries both 2D shapes and
	// 3D point clouds.
	ErrMixedScene = errors.New("sketch: scene mixes 2D shapes and 3D points")
)

// EncodeError reports a failure while writing a surface to an image file.
// Err is the error returned by the filesystem or the codec, unchanged.
type EncodeError struct {
	Path   string
	Format Format
	Err    error
}

func (e *EncodeError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("sketch: encode %s: %v", e.Format, e.Err)
	}
	return fmt.Sprintf("sketch: encode %s to %s: %v", e.Format, e.Path, e.Err)
}

func (e *EncodeError) Unwrap() error {
	return e.Err
}
