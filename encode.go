package sketch

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Format identifies an image file format.
type Format uint8

const (
	FormatPNG Format = iota
	FormatBMP
	FormatTIFF
)

func (f Format) String() string {
	switch f {
	case FormatPNG:
		return "png"
	case FormatBMP:
		return "bmp"
	case FormatTIFF:
		return "tiff"
	default:
		return fmt.Sprintf("Format(%d)", uint8(f))
	}
}

// FormatFromPath picks an image format from the file extension of path.
func FormatFromPath(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		return FormatPNG, nil
	case ".bmp":
		return FormatBMP, nil
	case ".tif", ".tiff":
		return FormatTIFF, nil
	default:
		return 0, fmt.Errorf("%w: extension %q", ErrUnknownFormat, ext)
	}
}

// EncodeOption configures Encode and Save.
type EncodeOption func(*encodeOptions)

type encodeOptions struct {
	format    Format
	formatSet bool
	grayscale bool
}

// WithFormat forces the output format. Without it, Save infers the format
// from the file extension and Encode writes PNG.
func WithFormat(f Format) EncodeOption {
	return func(o *encodeOptions) {
		o.format = f
		o.formatSet = true
	}
}

// WithGrayscale encodes the luma of each pixel instead of RGBA.
func WithGrayscale() EncodeOption {
	return func(o *encodeOptions) {
		o.grayscale = true
	}
}

// Encode writes the surface to w. The default format is PNG.
func (s *Surface) Encode(w io.Writer, opts ...EncodeOption) error {
	o := encodeOptions{format: FormatPNG}
	for _, opt := range opts {
		opt(&o)
	}
	if err := s.encode(w, o); err != nil {
		return &EncodeError{Format: o.format, Err: err}
	}
	return nil
}

// Save writes the surface to the file at path. Unless WithFormat is given,
// the format is chosen from the file extension. Failures are reported as
// *EncodeError, except for an unrecognized extension which returns
// ErrUnknownFormat before the file is created.
func (s *Surface) Save(path string, opts ...EncodeOption) error {
	var o encodeOptions
	for _, opt := range opts {
		opt(&o)
	}
	if !o.formatSet {
		f, err := FormatFromPath(path)
		if err != nil {
			return err
		}
		o.format = f
	}

	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return &EncodeError{Path: path, Format: o.format, Err: err}
	}
	if err := s.encode(f, o); err != nil {
		_ = f.Close()
		return &EncodeError{Path: path, Format: o.format, Err: err}
	}
	if err := f.Close(); err != nil {
		return &EncodeError{Path: path, Format: o.format, Err: err}
	}

	Logger().Info("sketch: saved surface",
		"path", path, "format", o.format.String(),
		"width", s.width, "height", s.height, "grayscale", o.grayscale)
	return nil
}

func (s *Surface) encode(w io.Writer, o encodeOptions) error {
	var img image.Image = s.ToImage()
	if o.grayscale {
		img = s.ToGray()
	}

	switch o.format {
	case FormatPNG:
		return png.Encode(w, img)
	case FormatBMP:
		return bmp.Encode(w, img)
	case FormatTIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("%w: %v", ErrUnknownFormat, o.format)
	}
}
