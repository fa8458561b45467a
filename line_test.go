package sketch

import (
	"math"
	"testing"
)

// plotRecord is one write emitted by a rasterizer, in device coordinates.
type plotRecord struct {
	x, y  float64
	alpha uint8
}

func recordLine(l Line2D, w, h int) []plotRecord {
	var out []plotRecord
	RasterizeLine(l, w, h, Black, func(x, y float64, c Color) {
		out = append(out, plotRecord{x: x * float64(w), y: y * float64(h), alpha: c.A})
	})
	return out
}

var testLines = []struct {
	name string
	line Line2D
}{
	{"shallow", Line2D{0.1, 0.2, 0.9, 0.7}},
	{"steep", Line2D{0.3, 0.1, 0.35, 0.9}},
	{"vertical", Line2D{0.5, 0.1, 0.5, 0.9}},
	{"horizontal", Line2D{0.1, 0.5, 0.9, 0.5}},
	{"diagonal", Line2D{0, 0, 1, 1}},
	{"descending", Line2D{0.9, 0.1, 0.2, 0.8}},
	{"short", Line2D{0.41, 0.42, 0.43, 0.44}},
	{"zero length", Line2D{0.5, 0.5, 0.5, 0.5}},
}

func TestRasterizeLine_WithinBoundingBox(t *testing.T) {
	const w, h = 200, 100
	for _, tt := range testLines {
		t.Run(tt.name, func(t *testing.T) {
			l := tt.line
			xmin := math.Floor(math.Min(l.X0, l.X1)*w) - 1
			xmax := math.Max(l.X0, l.X1)*w + 1
			ymin := math.Floor(math.Min(l.Y0, l.Y1)*h) - 1
			ymax := math.Max(l.Y0, l.Y1)*h + 1
			const eps = 1e-9

			writes := recordLine(l, w, h)
			if len(writes) < 4 {
				t.Fatalf("got %d writes, want at least the 4 endpoint writes", len(writes))
			}
			for _, p := range writes {
				if p.alpha == 0 {
					continue
				}
				if p.x < xmin-eps || p.x > xmax+eps || p.y < ymin-eps || p.y > ymax+eps {
					t.Errorf("write at (%.3f, %.3f) outside [%.1f, %.1f]x[%.1f, %.1f]",
						p.x, p.y, xmin, xmax, ymin, ymax)
				}
			}
		})
	}
}

func TestRasterizeLine_EndcapCoverage(t *testing.T) {
	for _, tt := range testLines {
		t.Run(tt.name, func(t *testing.T) {
			writes := recordLine(tt.line, 512, 512)
			// The first four writes are the two endpoint pairs.
			for i := 0; i < 4; i += 2 {
				sum := int(writes[i].alpha) + int(writes[i+1].alpha)
				if sum > 256 {
					t.Errorf("endcap %d coverage sum = %d, want <= 255 (+1 rounding)", i/2, sum)
				}
			}
			// Interior pairs split full coverage between two pixels.
			for i := 4; i+1 < len(writes); i += 2 {
				sum := int(writes[i].alpha) + int(writes[i+1].alpha)
				if sum < 254 || sum > 256 {
					t.Errorf("interior pair %d coverage sum = %d, want 255 +/- 1", (i-4)/2, sum)
				}
			}
		})
	}
}

func TestRasterizeLine_OrderIndependent(t *testing.T) {
	for _, tt := range testLines {
		t.Run(tt.name, func(t *testing.T) {
			l := tt.line
			rev := Line2D{X0: l.X1, Y0: l.Y1, X1: l.X0, Y1: l.Y0}

			a := recordLine(l, 300, 200)
			b := recordLine(rev, 300, 200)
			if len(a) != len(b) {
				t.Fatalf("got %d writes forward and %d reversed", len(a), len(b))
			}
			set := make(map[plotRecord]int, len(a))
			for _, p := range a {
				set[p]++
			}
			for _, p := range b {
				set[p]--
			}
			for p, n := range set {
				if n != 0 {
					t.Errorf("write %+v differs between directions (count %d)", p, n)
				}
			}
		})
	}
}

func TestRasterizeLine_ZeroLength(t *testing.T) {
	writes := recordLine(Line2D{0.5, 0.5, 0.5, 0.5}, 10, 10)
	if len(writes) != 4 {
		t.Fatalf("got %d writes, want 4 endpoint writes", len(writes))
	}
	// xgap is 0.5 at both ends and the point sits on a pixel corner.
	want := []plotRecord{
		{5, 5, 128}, {5, 6, 0},
		{5, 5, 128}, {5, 6, 0},
	}
	for i, p := range writes {
		if math.Abs(p.x-want[i].x) > 1e-9 || math.Abs(p.y-want[i].y) > 1e-9 || p.alpha != want[i].alpha {
			t.Errorf("write %d = %+v, want %+v", i, p, want[i])
		}
	}
}

func TestRasterizeLine_Steep(t *testing.T) {
	writes := recordLine(Line2D{0.5, 0.1, 0.6, 0.9}, 100, 100)
	// Transposed the segment runs from (10, 50) to (90, 60); the first
	// endpoint write is swapped back to device (50, 10).
	first := writes[0]
	if math.Abs(first.x-50) > 1e-9 || math.Abs(first.y-10) > 1e-9 {
		t.Errorf("first write at (%v, %v), want (50, 10)", first.x, first.y)
	}
	if first.alpha != 128 {
		t.Errorf("first write alpha = %d, want 128", first.alpha)
	}
	// Interior columns step along y, one row per write pair.
	for i := 4; i+1 < len(writes); i += 2 {
		if writes[i].y != writes[i+1].y {
			t.Fatalf("steep pair %d spans rows %v and %v", (i-4)/2, writes[i].y, writes[i+1].y)
		}
		if d := writes[i+1].x - writes[i].x; math.Abs(d-1) > 1e-9 {
			t.Fatalf("steep pair %d columns %v and %v are not adjacent", (i-4)/2, writes[i].x, writes[i+1].x)
		}
	}
}

func TestRasterizeLine_InteriorRange(t *testing.T) {
	// Endpoints at x = 51.2 and 460.8 on a 512 grid: xpxl1 = 51, xpxl2 = 460.
	// The interior covers columns 52 through 458.
	writes := recordLine(Line2D{0.1, 0.2, 0.9, 0.7}, 512, 512)
	interior := writes[4:]
	if got, want := len(interior), 2*(459-52); got != want {
		t.Fatalf("interior writes = %d, want %d", got, want)
	}
	if interior[0].x != 52 || interior[len(interior)-1].x != 458 {
		t.Errorf("interior spans columns %v..%v, want 52..458", interior[0].x, interior[len(interior)-1].x)
	}
}

func TestRasterizeLine_ReferenceCoverage(t *testing.T) {
	// Line (0.1, 0.2)-(0.9, 0.7) on 512x512: gradient 0.625.
	writes := recordLine(Line2D{0.1, 0.2, 0.9, 0.7}, 512, 512)
	tests := []struct {
		name  string
		index int
		want  plotRecord
	}{
		// yend = 102.275, xgap = 0.3
		{"first endcap low", 0, plotRecord{51, 102, 55}},
		{"first endcap high", 1, plotRecord{51, 103, 21}},
		// yend = 357.9, xgap = 0.3
		{"second endcap low", 2, plotRecord{460, 357, 8}},
		{"second endcap high", 3, plotRecord{460, 358, 69}},
		// x = 53: intery = 103.525
		{"interior low", 6, plotRecord{53, 103, 121}},
		{"interior high", 7, plotRecord{53, 104, 134}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := writes[tt.index]
			if math.Abs(got.x-tt.want.x) > 1e-9 || math.Abs(got.y-tt.want.y) > 1e-9 || got.alpha != tt.want.alpha {
				t.Errorf("write %d = %+v, want %+v", tt.index, got, tt.want)
			}
		})
	}
}

func TestRasterizeLine_NonFinite(t *testing.T) {
	n := 0
	RasterizeLine(Line2D{math.NaN(), 0, 1, 1}, 10, 10, Black, func(float64, float64, Color) { n++ })
	RasterizeLine(Line2D{0, 0, math.Inf(1), 1}, 10, 10, Black, func(float64, float64, Color) { n++ })
	if n != 0 {
		t.Errorf("got %d writes for non-finite lines, want 0", n)
	}
}

func TestRasterizeLine_FarOffSurfaceIsBounded(t *testing.T) {
	n := 0
	RasterizeLine(Line2D{-1e9, 0.5, 1e9, 0.5}, 100, 100, Black, func(float64, float64, Color) { n++ })
	if n > 2*(100+4)+4 {
		t.Errorf("got %d writes, want the interior limited to the surface", n)
	}
}

func TestRasterizeLine_ColorAlphaModulates(t *testing.T) {
	var full, none []uint8
	RasterizeLine(Line2D{0.1, 0.2, 0.9, 0.7}, 64, 64, Black, func(_, _ float64, c Color) { full = append(full, c.A) })
	RasterizeLine(Line2D{0.1, 0.2, 0.9, 0.7}, 64, 64, Black.WithAlpha(0), func(_, _ float64, c Color) { none = append(none, c.A) })
	if len(full) != len(none) {
		t.Fatalf("write counts differ: %d vs %d", len(full), len(none))
	}
	for i, a := range none {
		if a != 0 {
			t.Errorf("write %d alpha = %d for a transparent color, want 0", i, a)
		}
	}
}

func TestDrawLine_BlendsOverBackground(t *testing.T) {
	s := newTestSurface(t, 512, 512, White)
	s.DrawLine(Line2D{0.1, 0.2, 0.9, 0.7}, Black)

	// device (51, 102) alpha 55 lands on row 512-102 = 410.
	if got, want := s.Pixel(51, 410), Gray(200); got != want {
		t.Errorf("Pixel(51, 410) = %v, want %v", got, want)
	}
	if got, want := s.Pixel(51, 409), Gray(234); got != want {
		t.Errorf("Pixel(51, 409) = %v, want %v", got, want)
	}
	// Far from the line the background is untouched.
	if got := s.Pixel(500, 10); got != White {
		t.Errorf("Pixel(500, 10) = %v, want White", got)
	}
}
