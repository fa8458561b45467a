package sketch

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// patterned returns a small surface with distinct opaque pixels.
func patterned(t *testing.T) *Surface {
	t.Helper()
	s := newTestSurface(t, 7, 5, White)
	s.SetPixel(0, 0, Black)
	s.SetPixel(6, 4, RGB(200, 10, 30))
	s.SetPixel(3, 2, RGB(0, 128, 255))
	return s
}

func decodeFile(t *testing.T, path string, decode func(io.Reader) (image.Image, error)) image.Image {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	defer f.Close()
	img, err := decode(f)
	if err != nil {
		t.Fatalf("decode %s: %v", path, err)
	}
	return img
}

func assertSameImage(t *testing.T, s *Surface, img image.Image) {
	t.Helper()
	if img.Bounds() != s.Bounds() {
		t.Fatalf("bounds = %v, want %v", img.Bounds(), s.Bounds())
	}
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			got := FromColor(img.At(x, y))
			if want := s.Pixel(x, y); got != want {
				t.Errorf("pixel (%d, %d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestSave_RoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		file   string
		decode func(io.Reader) (image.Image, error)
	}{
		{"png", "out.png", png.Decode},
		{"bmp", "out.bmp", bmp.Decode},
		{"tiff", "out.tiff", tiff.Decode},
		{"tif upper", "OUT.TIF", tiff.Decode},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := patterned(t)
			path := filepath.Join(t.TempDir(), tt.file)
			if err := s.Save(path); err != nil {
				t.Fatalf("Save(%q) error: %v", path, err)
			}
			assertSameImage(t, s, decodeFile(t, path, tt.decode))
		})
	}
}

func TestSave_ForcedFormat(t *testing.T) {
	s := patterned(t)
	path := filepath.Join(t.TempDir(), "out.img")
	if err := s.Save(path, WithFormat(FormatBMP)); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	assertSameImage(t, s, decodeFile(t, path, bmp.Decode))
}

func TestSave_Grayscale(t *testing.T) {
	s := patterned(t)
	path := filepath.Join(t.TempDir(), "gray.png")
	if err := s.Save(path, WithGrayscale()); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	img := decodeFile(t, path, png.Decode)
	g, ok := img.(*image.Gray)
	if !ok {
		t.Fatalf("decoded %T, want *image.Gray", img)
	}
	if got, want := g.GrayAt(6, 4).Y, RGB(200, 10, 30).Luma(); got != want {
		t.Errorf("gray (6, 4) = %d, want %d", got, want)
	}
	if got := g.GrayAt(1, 1).Y; got != 255 {
		t.Errorf("gray background = %d, want 255", got)
	}
}

func TestSave_UnknownExtension(t *testing.T) {
	s := patterned(t)
	path := filepath.Join(t.TempDir(), "out.jpg")
	err := s.Save(path)
	if !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("Save(%q) error = %v, want ErrUnknownFormat", path, err)
	}
	if _, statErr := os.Stat(path); !errors.Is(statErr, fs.ErrNotExist) {
		t.Errorf("file created for unknown format: %v", statErr)
	}
}

func TestSave_MissingDirectory(t *testing.T) {
	s := patterned(t)
	path := filepath.Join(t.TempDir(), "missing", "out.png")
	err := s.Save(path)

	var encErr *EncodeError
	if !errors.As(err, &encErr) {
		t.Fatalf("Save() error = %v, want *EncodeError", err)
	}
	if encErr.Path != path || encErr.Format != FormatPNG {
		t.Errorf("EncodeError = %+v", encErr)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Save() error does not wrap fs.ErrNotExist: %v", err)
	}
}

type failWriter struct{}

var errWrite = errors.New("write refused")

func (failWriter) Write([]byte) (int, error) { return 0, errWrite }

func TestEncode(t *testing.T) {
	s := patterned(t)

	var buf bytes.Buffer
	if err := s.Encode(&buf); err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode() error: %v", err)
	}
	assertSameImage(t, s, img)

	err = s.Encode(failWriter{}, WithFormat(FormatTIFF))
	var encErr *EncodeError
	if !errors.As(err, &encErr) || encErr.Format != FormatTIFF {
		t.Fatalf("Encode(failWriter) error = %v, want *EncodeError for tiff", err)
	}
	if !errors.Is(err, errWrite) {
		t.Errorf("Encode(failWriter) error does not wrap the write error: %v", err)
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{path: "a.png", want: FormatPNG},
		{path: "dir/a.PNG", want: FormatPNG},
		{path: "a.bmp", want: FormatBMP},
		{path: "a.tif", want: FormatTIFF},
		{path: "a.tiff", want: FormatTIFF},
		{path: "a.jpeg", wantErr: true},
		{path: "noext", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := FormatFromPath(tt.path)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownFormat) {
					t.Errorf("FormatFromPath(%q) error = %v, want ErrUnknownFormat", tt.path, err)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Errorf("FormatFromPath(%q) = %v, %v; want %v", tt.path, got, err, tt.want)
			}
		})
	}
}

func TestSurfaceImplementsImage(t *testing.T) {
	var img image.Image = patterned(t)
	if img.ColorModel() != color.NRGBAModel {
		t.Error("ColorModel() is not NRGBAModel")
	}
	if got := FromColor(img.At(3, 2)); got != RGB(0, 128, 255) {
		t.Errorf("At(3, 2) = %v", got)
	}
}
