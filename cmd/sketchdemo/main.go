// Command sketchdemo renders a demo scene, or a scene file, with sketch.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/gogpu/sketch"
	"github.com/gogpu/sketch/internal/scenefile"
	"github.com/gogpu/sketch/pointbuf"
)

func main() {
	var (
		width     = flag.Int("width", pointbuf.DefaultSize, "image width")
		height    = flag.Int("height", pointbuf.DefaultSize, "image height")
		output    = flag.String("output", "line.png", "output file (.png, .bmp, .tif, .tiff)")
		sceneFile = flag.String("scene", "", "scene description (.yaml, .yml, .toml)")
		mode      = flag.String("mode", "2d", "built-in demo scene: 2d or 3d")
		pitch     = flag.Float64("pitch", 0, "rotation about x in radians (3d)")
		yaw       = flag.Float64("yaw", 0, "rotation about y in radians (3d)")
		roll      = flag.Float64("roll", 0, "rotation about z in radians (3d)")
		bg        = flag.String("bg", "#ffffff", "background color")
		fg        = flag.String("fg", "#000000", "drawing color for built-in scenes")
		gray      = flag.Bool("gray", false, "write a grayscale image")
		verbose   = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if err := checkSceneFlags(*sceneFile, set); err != nil {
		log.Fatal(err)
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	sketch.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	cfg := config{
		width:  *width,
		height: *height,
		mode:   *mode,
		rot:    sketch.Rotation{Pitch: *pitch, Yaw: *yaw, Roll: *roll},
	}
	var err error
	if cfg.background, err = sketch.ParseHex(*bg); err != nil {
		log.Fatalf("-bg: %v", err)
	}
	if cfg.foreground, err = sketch.ParseHex(*fg); err != nil {
		log.Fatalf("-fg: %v", err)
	}

	s, stats, err := render(cfg, *sceneFile)
	if err != nil {
		log.Fatalf("Failed to render: %v", err)
	}

	var opts []sketch.EncodeOption
	if *gray {
		opts = append(opts, sketch.WithGrayscale())
	}
	if err := s.Save(*output, opts...); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Saved %s (%dx%d): %d lines, %d ellipses, %d points, %d skipped\n",
		*output, s.Width(), s.Height(), stats.Lines, stats.Ellipses, stats.Points, stats.Skipped)
}

// sceneOverridden lists the flags whose values come from the scene file
// when -scene is given.
var sceneOverridden = []string{"width", "height", "bg", "mode", "fg", "pitch", "yaw", "roll"}

// checkSceneFlags rejects flags that a scene file would silently override.
func checkSceneFlags(sceneFile string, set map[string]bool) error {
	if sceneFile == "" {
		return nil
	}
	var conflicts []string
	for _, name := range sceneOverridden {
		if set[name] {
			conflicts = append(conflicts, "-"+name)
		}
	}
	if len(conflicts) > 0 {
		return fmt.Errorf("-scene cannot be combined with %s; set them in the scene file",
			strings.Join(conflicts, ", "))
	}
	return nil
}

type config struct {
	width, height int
	mode          string
	rot           sketch.Rotation
	background    sketch.Color
	foreground    sketch.Color
}

func render(cfg config, sceneFile string) (*sketch.Surface, sketch.RenderStats, error) {
	var scene sketch.Scene
	var opts []sketch.RenderOption

	if sceneFile != "" {
		f, err := scenefile.Load(sceneFile)
		if err != nil {
			return nil, sketch.RenderStats{}, err
		}
		cfg.width, cfg.height, cfg.background = f.Width, f.Height, f.Background
		scene = f.Scene
	} else {
		switch cfg.mode {
		case "2d":
			scene = pointbuf.DemoScene(cfg.foreground)
		case "3d":
			scene = sketch.NewScene3D(nil, sketch.PointCloud{Points: cube(3), Color: cfg.foreground})
			opts = append(opts, sketch.WithRotation(cfg.rot))
		default:
			return nil, sketch.RenderStats{}, fmt.Errorf("unknown mode %q (want 2d or 3d)", cfg.mode)
		}
	}

	s, err := sketch.NewSurface(cfg.width, cfg.height, cfg.background)
	if err != nil {
		return nil, sketch.RenderStats{}, err
	}
	stats, err := s.Render(scene, opts...)
	return s, stats, err
}

// cube returns an n×n×n lattice of points spanning [0, 1]³.
func cube(n int) []sketch.Vec3 {
	if n < 2 {
		return []sketch.Vec3{sketch.V3(0.5, 0.5, 0.5)}
	}
	step := 1 / float64(n-1)
	pts := make([]sketch.Vec3, 0, n*n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			for k := 0; k < n; k++ {
				pts = append(pts, sketch.V3(float64(i)*step, float64(j)*step, float64(k)*step))
			}
		}
	}
	return pts
}
