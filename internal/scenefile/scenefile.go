// Package scenefile loads scene descriptions for the demo command from
// YAML or TOML documents.
//
// A document describes either 2D shapes or 3D point clouds:
//
//	width: 512
//	height: 512
//	background: "#ffffff"
//	shapes:
//	  - kind: line
//	    box: [0.1, 0.2, 0.9, 0.7]
//	    color: "#000"
//	  - kind: ellipse
//	    box: [0.1, 0.1, 0.5, 0.9]
//
// or
//
//	rotation: [0.3, 0.5, 0]
//	clouds:
//	  - color: "#c00"
//	    points: [[0, 0, 0], [1, 1, 1]]
package scenefile

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/sketch"
)

// DefaultSize is used when a document does not set width or height.
const DefaultSize = 512

// ErrUnknownFormat is returned for files that are neither YAML nor TOML.
var ErrUnknownFormat = errors.New("scenefile: unknown format")

// Format is a scene document syntax.
type Format uint8

const (
	FormatYAML Format = iota
	FormatTOML
)

// FormatFromPath picks the document format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return 0, fmt.Errorf("%w: extension %q", ErrUnknownFormat, ext)
	}
}

// Document is the on-disk shape of a scene file.
type Document struct {
	Width      int          `yaml:"width" toml:"width"`
	Height     int          `yaml:"height" toml:"height"`
	Background string       `yaml:"background" toml:"background"`
	Rotation   []float64    `yaml:"rotation" toml:"rotation"`
	Shapes     []ShapeEntry `yaml:"shapes" toml:"shapes"`
	Clouds     []CloudEntry `yaml:"clouds" toml:"clouds"`
}

// ShapeEntry is one 2D shape.
type ShapeEntry struct {
	Kind  string    `yaml:"kind" toml:"kind"`
	Box   []float64 `yaml:"box" toml:"box"`
	Color string    `yaml:"color" toml:"color"`
}

// CloudEntry is one 3D point cloud.
type CloudEntry struct {
	Color  string      `yaml:"color" toml:"color"`
	Points [][]float64 `yaml:"points" toml:"points"`
}

// File is a decoded and validated scene file.
type File struct {
	Width      int
	Height     int
	Background sketch.Color
	Scene      sketch.Scene
}

// Load reads and parses the scene file at path.
func Load(path string) (*File, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, err
	}
	f, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Parse decodes a scene document. Unknown keys are rejected.
func Parse(data []byte, format Format) (*File, error) {
	var doc Document
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("scenefile: yaml: %w", err)
		}
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("scenefile: toml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownFormat, format)
	}
	return doc.build()
}

func (d *Document) build() (*File, error) {
	f := &File{
		Width:      d.Width,
		Height:     d.Height,
		Background: sketch.White,
	}
	if f.Width == 0 {
		f.Width = DefaultSize
	}
	if f.Height == 0 {
		f.Height = DefaultSize
	}
	if f.Width < 0 || f.Height < 0 {
		return nil, fmt.Errorf("scenefile: %w: %dx%d", sketch.ErrInvalidDimensions, f.Width, f.Height)
	}
	if d.Background != "" {
		c, err := sketch.ParseHex(d.Background)
		if err != nil {
			return nil, fmt.Errorf("scenefile: background: %w", err)
		}
		f.Background = c
	}

	// A rotation only applies to point clouds.
	if len(d.Shapes) > 0 && (len(d.Clouds) > 0 || d.Rotation != nil) {
		return nil, fmt.Errorf("scenefile: %w", sketch.ErrMixedScene)
	}

	if len(d.Clouds) > 0 || d.Rotation != nil {
		scene, err := d.build3D()
		if err != nil {
			return nil, err
		}
		f.Scene = scene
		return f, nil
	}

	scene, err := d.build2D()
	if err != nil {
		return nil, err
	}
	f.Scene = scene
	return f, nil
}

func (d *Document) build2D() (sketch.Scene, error) {
	items := make([]sketch.Item2D, 0, len(d.Shapes))
	for i, e := range d.Shapes {
		if len(e.Box) != 4 {
			return sketch.Scene{}, fmt.Errorf("scenefile: shape %d: box needs 4 values, got %d", i, len(e.Box))
		}
		c, err := parseColor(e.Color)
		if err != nil {
			return sketch.Scene{}, fmt.Errorf("scenefile: shape %d: %w", i, err)
		}

		var sh sketch.Shape2D
		switch strings.ToLower(e.Kind) {
		case "line":
			sh = sketch.Line(e.Box[0], e.Box[1], e.Box[2], e.Box[3])
		case "ellipse":
			sh = sketch.Ellipse(e.Box[0], e.Box[1], e.Box[2], e.Box[3])
		default:
			return sketch.Scene{}, fmt.Errorf("scenefile: shape %d: %w %q", i, sketch.ErrUnknownShape, e.Kind)
		}
		items = append(items, sketch.Item2D{Shape: sh, Color: c})
	}
	return sketch.NewScene2D(items...), nil
}

func (d *Document) build3D() (sketch.Scene, error) {
	var rot *sketch.Rotation
	if d.Rotation != nil {
		if len(d.Rotation) != 3 {
			return sketch.Scene{}, fmt.Errorf("scenefile: rotation needs 3 values, got %d", len(d.Rotation))
		}
		rot = &sketch.Rotation{Pitch: d.Rotation[0], Yaw: d.Rotation[1], Roll: d.Rotation[2]}
	}

	clouds := make([]sketch.PointCloud, 0, len(d.Clouds))
	for i, e := range d.Clouds {
		c, err := parseColor(e.Color)
		if err != nil {
			return sketch.Scene{}, fmt.Errorf("scenefile: cloud %d: %w", i, err)
		}
		pts := make([]sketch.Vec3, len(e.Points))
		for j, p := range e.Points {
			if len(p) != 3 {
				return sketch.Scene{}, fmt.Errorf("scenefile: cloud %d point %d: need 3 values, got %d", i, j, len(p))
			}
			pts[j] = sketch.V3(p[0], p[1], p[2])
		}
		clouds = append(clouds, sketch.PointCloud{Points: pts, Color: c})
	}
	return sketch.NewScene3D(rot, clouds...), nil
}

func parseColor(s string) (sketch.Color, error) {
	if s == "" {
		return sketch.Black, nil
	}
	return sketch.ParseHex(s)
}
